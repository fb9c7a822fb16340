// Package triad selects a single playable closed voicing for a major or minor
// triad rooted at an arbitrary fretboard position.
//
// Highlighting every cell whose pitch class belongs to the triad produces a
// scale-like cloud nobody can finger. Instead the selector commits to one
// shape per root string: three notes on three adjacent strings within a small
// fret window. The fret offsets between strings depend on the tuning's
// adjacent-string gaps (G to B is 4 semitones, every other pair is 5), so the
// candidate tables are solved once from the tuning at init and reused for
// every fret.
package triad

import (
	"fmt"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
)

// Fret offsets relative to the root fret must stay inside this window for a
// voicing to be fingerable, and the overall fret span must not exceed maxSpan.
const (
	minDelta = -4
	maxDelta = 3
	maxSpan  = 4
)

type placement struct {
	str   int // absolute string index
	delta int // fret offset relative to the root fret
	role  model.Role
}

// voicing is one candidate layout, ordered root, third, fifth.
type voicing [3]placement

// candidates[quality][rootString] lists voicings in preference order:
// the trio with the root on its lowest string first, then root-middle, then
// root-top, smaller fret spans first within a trio.
var candidates [2][constants.NumStrings][]voicing

func init() {
	for _, q := range []model.TriadQuality{model.Major, model.Minor} {
		for s := 0; s < constants.NumStrings; s++ {
			candidates[q][s] = buildCandidates(s, q)
		}
	}
}

// stringInterval is the signed semitone distance between two open strings.
func stringInterval(from, to int) int {
	d := pitch.IntervalSteps(fretboard.OpenPitch(to), fretboard.OpenPitch(from))
	if to < from {
		return d - 12
	}
	return d
}

// normDelta reduces a required semitone offset to the fret delta inside the
// ergonomic window that produces the same pitch class, if one exists.
func normDelta(x int) (int, bool) {
	d := ((x % 12) + 12) % 12
	if d > maxDelta {
		d -= 12
	}
	return d, d >= minDelta
}

func span(v voicing) int {
	min, max := 0, 0
	for _, p := range v {
		if p.delta < min {
			min = p.delta
		}
		if p.delta > max {
			max = p.delta
		}
	}
	return max - min
}

func buildCandidates(rootString int, q model.TriadQuality) []voicing {
	third := q.ThirdOffset()

	trios := [][3]int{
		{rootString, rootString + 1, rootString + 2},
		{rootString - 1, rootString, rootString + 1},
		{rootString - 2, rootString - 1, rootString},
	}

	var res []voicing
	for _, trio := range trios {
		if trio[0] < 0 || trio[2] >= constants.NumStrings {
			continue
		}
		var others [2]int
		n := 0
		for _, s := range trio {
			if s != rootString {
				others[n] = s
				n++
			}
		}

		var found []voicing
		// two ways to assign third and fifth to the non-root strings
		for _, assign := range [2][2]int{{others[0], others[1]}, {others[1], others[0]}} {
			d3, ok3 := normDelta(third - stringInterval(rootString, assign[0]))
			d5, ok5 := normDelta(7 - stringInterval(rootString, assign[1]))
			if !ok3 || !ok5 {
				continue
			}
			v := voicing{
				{str: rootString, delta: 0, role: model.Root},
				{str: assign[0], delta: d3, role: model.Third},
				{str: assign[1], delta: d5, role: model.Fifth},
			}
			if span(v) > maxSpan {
				continue
			}
			found = append(found, v)
		}
		if len(found) == 2 && span(found[1]) < span(found[0]) {
			found[0], found[1] = found[1], found[0]
		}
		res = append(res, found...)
	}
	return res
}

// NoteLabel is the display string for a shape role: "R", "3" or "b3", "5".
func NoteLabel(role model.Role, q model.TriadQuality) string {
	switch role {
	case model.Root:
		return "R"
	case model.Third:
		if q == model.Minor {
			return "b3"
		}
		return "3"
	case model.Fifth:
		return "5"
	}
	panic(fmt.Sprintf("unknown role: %v", role))
}

// Shape picks the voicing for a triad of the given quality rooted at rootPos.
// It is deterministic: candidates are tried in preference order, first at the
// clicked fret, then with the whole shape shifted an octave up and an octave
// down for positions too close to the nut or the last fret. The second result
// is false when no candidate fits the board; callers must treat that as an
// explicit no-shape outcome.
func Shape(rootPos model.FretPosition, q model.TriadQuality) (model.TriadShape, bool) {
	if !fretboard.ValidPosition(rootPos.String, rootPos.Fret) {
		panic(fmt.Sprintf("position out of range: string %v fret %v", rootPos.String, rootPos.Fret))
	}

	for _, shift := range []int{0, 12, -12} {
		for _, v := range candidates[q][rootPos.String] {
			if shape, ok := realize(v, rootPos.Fret+shift, q); ok {
				return shape, true
			}
		}
	}
	return model.TriadShape{}, false
}

// realize pins a candidate voicing at an absolute root fret, rejecting it if
// any note falls off the board.
func realize(v voicing, rootFret int, q model.TriadQuality) (model.TriadShape, bool) {
	var shape model.TriadShape
	shape.Quality = q
	for i, p := range v {
		fret := rootFret + p.delta
		if fret < 0 || fret > constants.MaxFret {
			return model.TriadShape{}, false
		}
		pos := model.FretPosition{String: p.str, Fret: fret}
		shape.Notes[i] = model.ShapeNote{
			Pos:   pos,
			Pitch: fretboard.PitchAt(p.str, fret),
			Role:  p.role,
			Label: NoteLabel(p.role, q),
		}
	}
	return shape, true
}

// ParseQuality reads "major" or "minor" (case-sensitive, matching the CLI and
// HTTP boundary vocabulary).
func ParseQuality(s string) (model.TriadQuality, error) {
	switch s {
	case "major":
		return model.Major, nil
	case "minor":
		return model.Minor, nil
	}
	return 0, fmt.Errorf("unknown triad quality: %q", s)
}
