package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/playback"
	"github.com/jsphweid/fretdex/sound"
	"github.com/jsphweid/fretdex/triad"
	"github.com/jsphweid/fretdex/util"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen [major|minor]",
	Short: "Plays triads for roots arriving on a MIDI input",
	Long:  `Listens on a MIDI input port; each held note selects a root position and its triad voicing is strummed back on a MIDI output port. Defaults to major.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := model.Major
		if len(args) == 1 {
			var err error
			q, err = triad.ParseQuality(args[0])
			if err != nil {
				return err
			}
		}
		return listen(q)
	},
}

func listen(q model.TriadQuality) error {
	defer midi.CloseDriver()

	in, err := playback.SelectInPort()
	if err != nil {
		return err
	}
	out, err := playback.SelectOutPort()
	if err != nil {
		return err
	}
	if err := out.Open(); err != nil {
		return fmt.Errorf("opening MIDI out: %w", err)
	}
	defer out.Close()

	logger := slog.Default()
	player := playback.NewPlayer(out, logger)

	// A chord arriving on the input lands as several note-ons in quick
	// succession; debounce so only the settled set picks the root.
	var mu sync.Mutex
	onNotes := make(map[uint8]bool)
	debounced := debounce.New(150 * time.Millisecond)

	strumRoot := func() {
		mu.Lock()
		keys := util.GetSortedKeys(onNotes)
		mu.Unlock()
		if len(keys) == 0 {
			return
		}
		pos, ok := playback.Position(int(keys[0]))
		if !ok {
			logger.Warn("listen: note not reachable on the board", "midi_note", keys[0])
			return
		}
		shape, ok := triad.Shape(pos, q)
		if !ok {
			logger.Warn("listen: no playable shape", "string", pos.String, "fret", pos.Fret)
			return
		}
		if err := player.Strum(sound.PlanFor(shape)); err != nil {
			logger.Error("listen: playback failed", "err", err)
		}
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			onNotes[key] = true
			mu.Unlock()
			debounced(strumRoot)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(onNotes, key)
			mu.Unlock()
		}
	})
	if err != nil {
		return fmt.Errorf("listening on MIDI in: %w", err)
	}
	defer stop()

	fmt.Printf("listening for %v triad roots (ctrl-c to quit)\n", q)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}
