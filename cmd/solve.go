package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/voicelead/chord"
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/progression"
	"github.com/jsphweid/voicelead/solver"
	"github.com/spf13/cobra"
)

var saveSettings bool

func init() {
	addSolveFlags(solveCmd)
	solveCmd.Flags().BoolVar(&saveSettings, "save", false, "write the chosen settings back into --file")
	rootCmd.AddCommand(solveCmd)
}

var solveCmd = &cobra.Command{
	Use:   "solve [chord...]",
	Short: "Picks a voicing for every chord",
	Long: `Picks a voicing for every chord so that voices move as little as possible.
Chords are ROOT[:MOD,MOD...][@OCTAVE], e.g. "D:m,7 G:7 C:maj7", or come from a
YAML file given with --file.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(solve(cmd, args))
	},
}

type solved struct {
	specs  []model.ChordSpec
	result solver.Result
	notes  []model.Notes
}

func solveProgression(p *progression.Progression) solved {
	s := solver.New(nil)
	specs := p.Specs()
	res := s.Solve(specs, p.SolveOptions())
	notes := make([]model.Notes, len(specs))
	for i, spec := range specs {
		notes[i] = s.Materialize(spec, res.Settings[i])
	}
	return solved{specs: specs, result: res, notes: notes}
}

func solve(cmd *cobra.Command, args []string) error {
	p, err := loadProgression(cmd, args)
	if err != nil {
		return err
	}
	out := solveProgression(p)
	if out.result.Fallback {
		fmt.Println("Could not voice every chord, using stored or default settings")
	}

	for i, spec := range out.specs {
		s := out.result.Settings[i]
		fmt.Printf("%-8v %-15v inv=%v spread=%v drop=%v octave=%v  %v\n",
			chordName(spec), s.Style, s.Inversion, s.Spread, s.DroppedNotes, s.Octave,
			chord.CreateChordKey(out.notes[i]))
	}
	fmt.Printf("movement: %v (%v comparisons)\n", solver.Movement(out.notes), out.result.Comparisons)

	if !saveSettings {
		return nil
	}
	if progressionFile == "" {
		return fmt.Errorf("--save needs --file")
	}
	for i := range p.Chords {
		settings := out.result.Settings[i]
		p.Chords[i].Settings = &settings
	}
	data, err := progression.Marshal(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(progressionFile, data, 0644); err != nil {
		return fmt.Errorf("could not save %v: %w", progressionFile, err)
	}
	fmt.Printf("Saved settings to %v\n", progressionFile)
	return nil
}
