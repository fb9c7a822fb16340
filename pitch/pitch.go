// Package pitch implements 12-tone pitch-class arithmetic and interval naming.
package pitch

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/model"
)

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var intervalNames = [12]string{"U", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7"}

// Up transposes a pitch class by steps semitones. Steps may be negative;
// the result is always reduced into [0,11] with a proper modulo.
func Up(base model.PitchClass, steps int) model.PitchClass {
	v := (int(base) + steps) % 12
	if v < 0 {
		v += 12
	}
	return model.PitchClass(v)
}

// IntervalSteps returns the semitone distance from root up to note, in [0,11].
func IntervalSteps(note, root model.PitchClass) int {
	return (int(note) - int(root) + 12) % 12
}

// IntervalName returns the standard abbreviation for a semitone distance.
// The argument is reduced mod 12 first, so any non-negative step count works.
func IntervalName(steps int) string {
	return intervalNames[steps%12]
}

func Name(p model.PitchClass) string {
	return names[p%12]
}

// Parse reads a note name like "C", "f#" or "Bb" into a pitch class.
func Parse(s string) (model.PitchClass, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, fmt.Errorf("empty note name")
	}
	var base int
	switch strings.ToUpper(t[:1]) {
	case "C":
		base = 0
	case "D":
		base = 2
	case "E":
		base = 4
	case "F":
		base = 5
	case "G":
		base = 7
	case "A":
		base = 9
	case "B":
		base = 11
	default:
		return 0, fmt.Errorf("unrecognized note name: %q", s)
	}
	switch t[1:] {
	case "":
	case "#":
		base++
	case "b":
		base--
	default:
		return 0, fmt.Errorf("unrecognized note name: %q", s)
	}
	return Up(0, base), nil
}
