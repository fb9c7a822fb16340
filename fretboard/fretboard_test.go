package fretboard

import (
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/stretchr/testify/assert"
)

func TestOpenPitchesAreStandardTuning(t *testing.T) {
	want := []string{"E", "A", "D", "G", "B", "E"}
	for s, name := range want {
		assert.Equal(t, name, pitch.Name(OpenPitch(s)), "string %v", s)
	}
}

func TestPitchAtKnownCells(t *testing.T) {
	assert := assert.New(t)
	// low E string, fret 3 = G
	assert.Equal("G", pitch.Name(PitchAt(0, 3)))
	// A string, fret 2 = B
	assert.Equal("B", pitch.Name(PitchAt(1, 2)))
	// every string repeats its open pitch at fret 12
	for s := 0; s < 6; s++ {
		assert.Equal(OpenPitch(s), PitchAt(s, 12))
	}
}

func TestPitchAtPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { PitchAt(6, 0) })
	assert.Panics(t, func() { PitchAt(-1, 0) })
	assert.Panics(t, func() { PitchAt(0, 23) })
	assert.Panics(t, func() { PitchAt(0, -1) })
	assert.Panics(t, func() { OpenPitch(6) })
}

func TestAllPositionsCoversBoard(t *testing.T) {
	positions := AllPositions()
	assert.Len(t, positions, 6*23)
	seen := make(map[model.FretPosition]bool)
	for _, p := range positions {
		assert.True(t, ValidPosition(p.String, p.Fret))
		seen[p] = true
	}
	assert.Len(t, seen, 6*23)
}

func TestIntervalLabelsForCMajorRoles(t *testing.T) {
	root, err := pitch.Parse("C")
	assert.NoError(t, err)
	labels := IntervalLabels(root)
	assert.Len(t, labels, 6*23)

	for pos, label := range labels {
		switch pitch.Name(label.Pitch) {
		case "C":
			assert.True(t, label.IsRoot, "pos %v", pos)
			assert.Equal(t, "U", label.Interval)
		case "E":
			assert.Equal(t, "M3", label.Interval)
			assert.False(t, label.IsRoot)
		case "G":
			assert.Equal(t, "P5", label.Interval)
			assert.False(t, label.IsRoot)
		case "D#":
			assert.Equal(t, "m3", label.Interval)
		}
	}
}

func TestIntervalLabelsIdempotent(t *testing.T) {
	a := IntervalLabels(7)
	b := IntervalLabels(7)
	assert.Equal(t, a, b)
}
