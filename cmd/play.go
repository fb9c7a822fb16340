package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/playback"
	"github.com/jsphweid/fretdex/sound"
	"github.com/jsphweid/fretdex/triad"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <string> <fret> [major|minor]",
	Short: "Plays a note or triad over MIDI",
	Long:  `Plays the cell's note, or with a quality the selected triad voicing as a strum, on a MIDI output port.`,
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var events []model.SoundEvent
		if len(args) == 2 {
			pos, _, err := parseTriadArgs(append(args, "major"))
			if err != nil {
				return err
			}
			events = []model.SoundEvent{sound.PlanForSingleNote(pos)}
		} else {
			pos, q, err := parseTriadArgs(args)
			if err != nil {
				return err
			}
			shape, ok := triad.Shape(pos, q)
			if !ok {
				return fmt.Errorf("no playable shape at string %v fret %v", pos.String, pos.Fret)
			}
			events = sound.PlanFor(shape)
		}

		defer midi.CloseDriver()
		out, err := playback.SelectOutPort()
		if err != nil {
			return err
		}
		if err := out.Open(); err != nil {
			return fmt.Errorf("opening MIDI out: %w", err)
		}
		defer out.Close()

		return playback.NewPlayer(out, nil).Strum(events)
	},
}
