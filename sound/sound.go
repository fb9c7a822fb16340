// Package sound turns selected fretboard positions into timed frequency
// events for an external tone generator. It produces data only; scheduling
// and synthesis belong to the collaborator that consumes the plan.
package sound

import (
	"fmt"
	"math"
	"sort"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
)

// openFrequencies is the frequency in Hz of each open string, low-to-high:
// E2 A2 D3 G3 B3 E4.
var openFrequencies = [constants.NumStrings]float64{82.41, 110.00, 146.83, 196.00, 246.94, 329.63}

// Frequency returns the equal-tempered frequency of a fretboard cell.
func Frequency(pos model.FretPosition) float64 {
	if !fretboard.ValidPosition(pos.String, pos.Fret) {
		panic(fmt.Sprintf("position out of range: string %v fret %v", pos.String, pos.Fret))
	}
	return openFrequencies[pos.String] * math.Pow(2, float64(pos.Fret)/12)
}

// PlanFor converts a voicing into a downward strum: one event per note,
// ordered low string to high string, each delayed one strum step after the
// previous. Note that a strum runs across strings, not pitches, so the
// frequencies are only monotonic when pitch order matches string order.
func PlanFor(shape model.TriadShape) []model.SoundEvent {
	sorted := make([]model.ShapeNote, len(shape.Notes))
	copy(sorted, shape.Notes[:])
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Pos.String < sorted[j].Pos.String
	})

	res := make([]model.SoundEvent, 0, len(sorted))
	for i, n := range sorted {
		res = append(res, model.SoundEvent{
			Pos:         n.Pos,
			FrequencyHz: Frequency(n.Pos),
			DelaySec:    float64(i) * constants.StrumDelaySec,
		})
	}
	return res
}

// PlanForSingleNote is the one-cell plan used when a bare root is played.
func PlanForSingleNote(pos model.FretPosition) model.SoundEvent {
	return model.SoundEvent{
		Pos:         pos,
		FrequencyHz: Frequency(pos),
		DelaySec:    0,
	}
}
