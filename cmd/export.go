package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/midi"
	"github.com/spf13/cobra"
)

var (
	exportPath string
	exportBpm  float64
)

func init() {
	addSolveFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportPath, "out", "o", "", "output .mid file (defaults to a new file in VOICING_OUT_DIR)")
	exportCmd.Flags().Float64Var(&exportBpm, "bpm", 120, "tempo")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [chord...]",
	Short: "Voices a progression and writes it as a MIDI file",
	Long:  `Voices a progression and writes it as a MIDI file, one bar per chord.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(export(cmd, args))
	},
}

func export(cmd *cobra.Command, args []string) error {
	p, err := loadProgression(cmd, args)
	if err != nil {
		return err
	}
	out := solveProgression(p)

	path := exportPath
	if path == "" {
		dir := constants.GetOutDir()
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("could not create %v: %w", dir, err)
		}
		path = filepath.Join(dir, uuid.New().String()+".mid")
	}
	fmt.Printf("Writing %v chords to %v\n", len(out.notes), path)
	return midi.WriteVoicingFile(path, out.notes, exportBpm)
}
