package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Fretboard triad explorer",
	Long:  `Computes interval maps and playable triad voicings on a six-string fretboard, and plays them over MIDI.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
