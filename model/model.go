package model

// PitchClass is one of the 12 equal-tempered note names, octave-independent.
// Always in [0,11]: 0=C, 1=C#, ... 11=B.
type PitchClass uint8

// FretPosition is a single cell on the fretboard. Strings are indexed
// low-to-high: 0 = low E, 5 = high e. Frets run 0 (open) through 22.
type FretPosition struct {
	String int `json:"string"`
	Fret   int `json:"fret"`
}

type TriadQuality uint8

const (
	Major TriadQuality = iota
	Minor
)

// ThirdOffset is the semitone offset of the quality's third above the root.
// The fifth is always 7.
func (q TriadQuality) ThirdOffset() int {
	if q == Minor {
		return 3
	}
	return 4
}

func (q TriadQuality) String() string {
	if q == Minor {
		return "minor"
	}
	return "major"
}

type Role uint8

const (
	Root Role = iota
	Third
	Fifth
)

// ShapeNote is one note of a selected voicing: where it sits and what it is.
type ShapeNote struct {
	Pos   FretPosition `json:"pos"`
	Pitch PitchClass   `json:"pitch"`
	Role  Role         `json:"role"`

	// Label is the display string for the role: "R", "3", "b3" or "5".
	Label string `json:"label"`
}

// TriadShape is exactly one playable closed voicing: three notes on three
// distinct adjacent strings, ordered Root, Third, Fifth.
type TriadShape struct {
	Quality TriadQuality `json:"quality"`
	Notes   [3]ShapeNote `json:"notes"`
}

// CellLabel describes one fretboard cell relative to a chosen root.
type CellLabel struct {
	Pitch    PitchClass `json:"pitch"`
	Interval string     `json:"interval"`
	IsRoot   bool       `json:"is_root"`
}

// SoundEvent is one note of a strum plan for the tone-generating collaborator.
type SoundEvent struct {
	Pos         FretPosition `json:"pos"`
	FrequencyHz float64      `json:"frequency_hz"`
	DelaySec    float64      `json:"delay_sec"`
}
