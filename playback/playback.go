// Package playback sounds strum plans through a MIDI output port. It is the
// tone-generating collaborator of the engine: the engine hands it frequencies
// and delays and never touches timing itself.
package playback

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/manifoldco/promptui"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
)

const channel = 0
const velocity = 80

// holdDuration is how long strummed notes ring after the last one starts.
const holdDuration = 1200 * time.Millisecond

// openMidiPitch is the MIDI note number of each open string, low-to-high:
// E2(40) A2(45) D3(50) G3(55) B3(59) E4(64).
var openMidiPitch = [constants.NumStrings]int{40, 45, 50, 55, 59, 64}

// MidiNote converts a fretboard cell to its MIDI note number.
func MidiNote(pos model.FretPosition) int {
	if !fretboard.ValidPosition(pos.String, pos.Fret) {
		panic(fmt.Sprintf("position out of range: string %v fret %v", pos.String, pos.Fret))
	}
	return openMidiPitch[pos.String] + pos.Fret
}

// Position maps a MIDI note number back to its lowest-fret position,
// preferring lower strings. The second result is false when the pitch is not
// reachable on the board.
func Position(midiNote int) (model.FretPosition, bool) {
	for s := 0; s < constants.NumStrings; s++ {
		fret := midiNote - openMidiPitch[s]
		if fret >= 0 && fret <= constants.MaxFret {
			return model.FretPosition{String: s, Fret: fret}, true
		}
	}
	return model.FretPosition{}, false
}

// SelectOutPort picks a MIDI output. With a single port available it is used
// directly; otherwise the user chooses interactively.
func SelectOutPort() (drivers.Out, error) {
	outPorts := midi.GetOutPorts()
	if len(outPorts) == 0 {
		return nil, errors.New("no output MIDI devices found")
	}
	if len(outPorts) == 1 {
		return outPorts[0], nil
	}
	prompt := promptui.Select{
		Label: "Output Device",
		Items: outPorts,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return outPorts[idx], nil
}

// SelectInPort picks a MIDI input the same way.
func SelectInPort() (drivers.In, error) {
	inPorts := midi.GetInPorts()
	if len(inPorts) == 0 {
		return nil, errors.New("no input MIDI devices found")
	}
	if len(inPorts) == 1 {
		return inPorts[0], nil
	}
	prompt := promptui.Select{
		Label: "Input Device",
		Items: inPorts,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return inPorts[idx], nil
}

// Player schedules sound events on a MIDI out port.
type Player struct {
	out    drivers.Out
	logger *slog.Logger
}

func NewPlayer(out drivers.Out, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{out: out, logger: logger}
}

// Strum plays a plan, sleeping out the delay between events and letting the
// chord ring before releasing. Events are assumed ordered by delay, which is
// how the engine emits them.
func (p *Player) Strum(events []model.SoundEvent) error {
	var elapsed time.Duration
	for _, ev := range events {
		at := time.Duration(ev.DelaySec * float64(time.Second))
		if at > elapsed {
			time.Sleep(at - elapsed)
			elapsed = at
		}
		note := uint8(MidiNote(ev.Pos))
		p.logger.Debug("playback: note on",
			"string", ev.Pos.String,
			"fret", ev.Pos.Fret,
			"midi_note", note,
			"frequency_hz", ev.FrequencyHz,
		)
		if err := p.out.Send(midi.NoteOn(channel, note, velocity)); err != nil {
			return fmt.Errorf("note on: %w", err)
		}
	}

	time.Sleep(holdDuration)

	for _, ev := range events {
		note := uint8(MidiNote(ev.Pos))
		if err := p.out.Send(midi.NoteOff(channel, note)); err != nil {
			return fmt.Errorf("note off: %w", err)
		}
	}
	return nil
}
