package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/triad"
)

func init() {
	rootCmd.AddCommand(triadCmd)
}

var triadCmd = &cobra.Command{
	Use:   "triad <string> <fret> <major|minor>",
	Short: "Prints the playable triad voicing rooted at a position",
	Long:  `Selects the one ergonomic closed voicing for a triad rooted at the given cell. Strings are numbered 0 (low E) to 5 (high e).`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, q, err := parseTriadArgs(args)
		if err != nil {
			return err
		}

		shape, ok := triad.Shape(pos, q)
		if !ok {
			fmt.Println("no playable shape at this position")
			return nil
		}
		printShape(shape)
		return nil
	},
}

func parseTriadArgs(args []string) (model.FretPosition, model.TriadQuality, error) {
	stringIndex, err := strconv.Atoi(args[0])
	if err != nil {
		return model.FretPosition{}, 0, fmt.Errorf("bad string index: %w", err)
	}
	fret, err := strconv.Atoi(args[1])
	if err != nil {
		return model.FretPosition{}, 0, fmt.Errorf("bad fret: %w", err)
	}
	if !fretboard.ValidPosition(stringIndex, fret) {
		return model.FretPosition{}, 0, fmt.Errorf("position off the board: string %v fret %v", stringIndex, fret)
	}
	q, err := triad.ParseQuality(args[2])
	if err != nil {
		return model.FretPosition{}, 0, err
	}
	return model.FretPosition{String: stringIndex, Fret: fret}, q, nil
}

func printShape(shape model.TriadShape) {
	rootName := pitch.Name(shape.Notes[0].Pitch)
	fmt.Printf("%v %v\n", rootName, shape.Quality)
	for _, n := range shape.Notes {
		fmt.Printf("  %-2s %-2s string %v fret %v\n",
			n.Label, pitch.Name(n.Pitch), n.Pos.String, n.Pos.Fret)
	}
}
