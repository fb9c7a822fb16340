package sound

import (
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/triad"
	"github.com/stretchr/testify/assert"
)

func TestOpenStringFrequencies(t *testing.T) {
	want := []float64{82.41, 110.00, 146.83, 196.00, 246.94, 329.63}
	for s, hz := range want {
		assert.InDelta(t, hz, Frequency(model.FretPosition{String: s, Fret: 0}), 0.001)
	}
}

func TestFretRaisesFrequencyBySemitones(t *testing.T) {
	assert := assert.New(t)
	// fret 12 doubles the open frequency
	assert.InDelta(2*82.41, Frequency(model.FretPosition{String: 0, Fret: 12}), 0.01)
	// A string fret 0 is A2 (110 Hz), low E fret 5 is the same pitch
	assert.InDelta(110.0, Frequency(model.FretPosition{String: 0, Fret: 5}), 0.05)
}

func TestFrequencyPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Frequency(model.FretPosition{String: 6, Fret: 0}) })
	assert.Panics(t, func() { Frequency(model.FretPosition{String: 0, Fret: 23}) })
}

func TestPlanForStrumsLowStringFirst(t *testing.T) {
	shape, ok := triad.Shape(model.FretPosition{String: 0, Fret: 3}, model.Major)
	assert := assert.New(t)
	assert.True(ok)

	events := PlanFor(shape)
	assert.Len(events, 3)
	assert.InDelta(0.0, events[0].DelaySec, 1e-9)
	assert.InDelta(0.08, events[1].DelaySec, 1e-9)
	assert.InDelta(0.16, events[2].DelaySec, 1e-9)

	for i := 1; i < len(events); i++ {
		assert.Greater(events[i].Pos.String, events[i-1].Pos.String)
	}
	// G major rooted on the low E string happens to rise in pitch across
	// the strum as well.
	for i := 1; i < len(events); i++ {
		assert.Greater(events[i].FrequencyHz, events[i-1].FrequencyHz)
	}
}

func TestPlanOrdersByStringNotPitch(t *testing.T) {
	// A hand-built shape where a high fret on a low string out-pitches the
	// next string: the strum must still run in string order.
	shape := model.TriadShape{
		Quality: model.Major,
		Notes: [3]model.ShapeNote{
			{Pos: model.FretPosition{String: 1, Fret: 19}, Role: model.Third},
			{Pos: model.FretPosition{String: 0, Fret: 20}, Role: model.Root},
			{Pos: model.FretPosition{String: 2, Fret: 2}, Role: model.Fifth},
		},
	}
	events := PlanFor(shape)
	assert := assert.New(t)
	assert.Equal(0, events[0].Pos.String)
	assert.Equal(1, events[1].Pos.String)
	assert.Equal(2, events[2].Pos.String)
	// strings 0 and 1 at high frets out-pitch string 2 at fret 2
	assert.Greater(events[1].FrequencyHz, events[2].FrequencyHz)
}

func TestPlanForSingleNote(t *testing.T) {
	ev := PlanForSingleNote(model.FretPosition{String: 5, Fret: 0})
	assert := assert.New(t)
	assert.InDelta(329.63, ev.FrequencyHz, 0.001)
	assert.InDelta(0.0, ev.DelaySec, 1e-9)
}
