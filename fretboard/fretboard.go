// Package fretboard maps positions on a six-string fretboard in standard
// tuning to pitch classes, and labels every cell relative to a chosen root.
package fretboard

import (
	"fmt"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
)

// tuning is the open pitch class of each string, low-to-high: E A D G B E.
var tuning = [constants.NumStrings]model.PitchClass{4, 9, 2, 7, 11, 4}

// ValidPosition reports whether a (string, fret) pair is on the board.
// Boundary layers call this before handing positions to the engine.
func ValidPosition(stringIndex, fret int) bool {
	return stringIndex >= 0 && stringIndex < constants.NumStrings &&
		fret >= 0 && fret <= constants.MaxFret
}

// OpenPitch returns the pitch class of an unfretted string. An out-of-range
// index is a caller bug, not a runtime condition.
func OpenPitch(stringIndex int) model.PitchClass {
	if stringIndex < 0 || stringIndex >= constants.NumStrings {
		panic(fmt.Sprintf("string index out of range: %v", stringIndex))
	}
	return tuning[stringIndex]
}

// PitchAt returns the pitch class sounded at a fretboard cell.
func PitchAt(stringIndex, fret int) model.PitchClass {
	if !ValidPosition(stringIndex, fret) {
		panic(fmt.Sprintf("position out of range: string %v fret %v", stringIndex, fret))
	}
	return pitch.Up(tuning[stringIndex], fret)
}

// AllPositions enumerates every cell, low string first, nut to bridge.
func AllPositions() []model.FretPosition {
	res := make([]model.FretPosition, 0, constants.NumStrings*constants.NumFrets)
	for s := 0; s < constants.NumStrings; s++ {
		for f := 0; f <= constants.MaxFret; f++ {
			res = append(res, model.FretPosition{String: s, Fret: f})
		}
	}
	return res
}

// IntervalLabels labels every cell with its pitch class and its interval name
// relative to root. Pure: same root always yields the same map.
func IntervalLabels(root model.PitchClass) map[model.FretPosition]model.CellLabel {
	res := make(map[model.FretPosition]model.CellLabel)
	for _, pos := range AllPositions() {
		p := PitchAt(pos.String, pos.Fret)
		steps := pitch.IntervalSteps(p, root)
		res[pos] = model.CellLabel{
			Pitch:    p,
			Interval: pitch.IntervalName(steps),
			IsRoot:   steps == 0,
		}
	}
	return res
}
