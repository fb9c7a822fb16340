package playback

import (
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
)

func TestMidiNoteOpenStrings(t *testing.T) {
	want := []int{40, 45, 50, 55, 59, 64}
	for s, n := range want {
		assert.Equal(t, n, MidiNote(model.FretPosition{String: s, Fret: 0}))
	}
}

func TestMidiNoteFretted(t *testing.T) {
	// low E fret 5 sounds the same pitch as the open A string
	assert.Equal(t,
		MidiNote(model.FretPosition{String: 1, Fret: 0}),
		MidiNote(model.FretPosition{String: 0, Fret: 5}))
	// G3 + 4 frets = B3
	assert.Equal(t, 59, MidiNote(model.FretPosition{String: 3, Fret: 4}))
}

func TestPositionRoundTrip(t *testing.T) {
	for note := 40; note <= 64+22; note++ {
		pos, ok := Position(note)
		assert.True(t, ok, "note %v", note)
		assert.Equal(t, note, MidiNote(pos), "note %v", note)
	}
}

func TestPositionPrefersLowerStrings(t *testing.T) {
	// A2 could be string 1 fret 0, but the low E string reaches it first.
	pos, ok := Position(45)
	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(model.FretPosition{String: 0, Fret: 5}, pos)
}

func TestPositionOutOfRange(t *testing.T) {
	_, ok := Position(39)
	assert.False(t, ok)
	_, ok = Position(64 + 23)
	assert.False(t, ok)
}
