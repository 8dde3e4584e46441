package cmd

import (
	"fmt"

	"github.com/jsphweid/voicelead/chord"
	"github.com/jsphweid/voicelead/midi"
	"github.com/jsphweid/voicelead/solver"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect file.mid",
	Short: "Prints the chords in a MIDI file",
	Long:  `Prints the chords in a MIDI file and how far the voices move between them`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(inspect(args[0]))
	},
}

func inspect(path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	chords := chord.GetChords(s)
	for i, notes := range chords {
		var moved float64
		if i > 0 {
			moved = solver.Distance(chords[i-1], notes)
		}
		fmt.Printf("%3d  %-24v moved %v\n", i+1, chord.CreateChordKey(notes), moved)
	}
	fmt.Printf("total movement: %v\n", solver.Movement(chords))
	return nil
}
