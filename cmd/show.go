package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <root>",
	Short: "Prints the interval map for a root note",
	Long:  `Prints every fretboard cell labeled with its interval relative to the given root, high string on top.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := pitch.Parse(args[0])
		if err != nil {
			return err
		}
		show(root)
		return nil
	},
}

func show(root model.PitchClass) {
	labels := fretboard.IntervalLabels(root)

	fmt.Printf("intervals relative to %v\n", pitch.Name(root))
	for s := constants.NumStrings - 1; s >= 0; s-- {
		var cells []string
		for f := 0; f <= constants.MaxFret; f++ {
			label := labels[model.FretPosition{String: s, Fret: f}]
			text := label.Interval
			if label.IsRoot {
				text = "R"
			}
			cells = append(cells, fmt.Sprintf("%-3s", text))
		}
		fmt.Printf("%s|%s\n", pitch.Name(fretboard.OpenPitch(s)), strings.Join(cells, " "))
	}
}
