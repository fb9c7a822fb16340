package constants

import "os"

// Fixed six-string instrument in standard tuning: strings are indexed
// low-to-high everywhere in this repo (0 = low E, 5 = high e).
const NumStrings = 6

// Frets run 0 (open) through MaxFret inclusive.
const MaxFret = 22
const NumFrets = MaxFret + 1

// StrumDelaySec is the spacing between successive notes of a strum plan.
const StrumDelaySec = 0.08

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}
