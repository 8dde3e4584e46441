package cmd

import (
	"fmt"

	"github.com/jsphweid/voicelead/chord"
	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/progression"
	"github.com/jsphweid/voicelead/tones"
	"github.com/jsphweid/voicelead/voicing"
	"github.com/spf13/cobra"
)

var constrain bool

func init() {
	styleCmd.Flags().BoolVar(&constrain, "register", false, "move each voicing into its style's register")
	rootCmd.AddCommand(styleCmd)
}

var styleCmd = &cobra.Command{
	Use:   "style chord [style]",
	Short: "Shows a chord in one or every voicing style",
	Long:  `Shows a chord in one or every voicing style`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(showStyles(args))
	},
}

func styleVoicings(c progression.Chord, styles []model.Style, register bool) ([]model.StyleResponse, error) {
	octave := c.Octave
	if octave == 0 {
		octave = constants.GetDefaultOctave()
	}
	closeChord, ok := tones.Default.BuildCloseChord(c.Root, c.Modifiers, octave)
	if !ok {
		return nil, fmt.Errorf("chord has no root")
	}
	var res []model.StyleResponse
	for _, style := range styles {
		notes := voicing.Apply(style, closeChord)
		if register {
			notes = voicing.ConstrainToRegister(notes, style)
		}
		res = append(res, model.StyleResponse{Style: style, Notes: notes, Penalty: voicing.Penalty(notes, style)})
	}
	return res, nil
}

func showStyles(args []string) error {
	c, err := progression.ParseToken(args[0])
	if err != nil {
		return err
	}
	styles := model.AllStyles()
	if len(args) == 2 {
		style, err := model.ParseStyle(args[1])
		if err != nil {
			return err
		}
		styles = []model.Style{style}
	}

	voicings, err := styleVoicings(c, styles, constrain)
	if err != nil {
		return err
	}
	for _, v := range voicings {
		fmt.Printf("%-15v %-20v penalty %.1f\n", v.Style, chord.CreateChordKey(v.Notes), v.Penalty)
	}
	return nil
}
