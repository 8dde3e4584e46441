package cmd

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/progression"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "voicelead",
	Short: "Voices chord progressions",
	Long: `Voices chord progressions with smooth voice leading and jazz
voicing styles (rootless, shell, quartal, drop and upper structure).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a .env file is optional
		_ = godotenv.Load()
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// flags shared by the commands that solve a progression
var (
	progressionFile string
	targetOctave    int
	jazz            bool
	spreadPref      float64
	styleNames      []string
	useRegister     bool
)

func addSolveFlags(c *cobra.Command) {
	c.Flags().StringVarP(&progressionFile, "file", "f", "", "YAML progression file")
	c.Flags().IntVar(&targetOctave, "octave", 4, "target octave for every chord")
	c.Flags().BoolVar(&jazz, "jazz", false, "favour sevenths resolving down to thirds")
	c.Flags().Float64Var(&spreadPref, "spread", 0, "spread preference from -1 (tight) to 1 (wide)")
	c.Flags().StringSliceVar(&styleNames, "styles", nil, "allowed voicing styles, e.g. drop2,rootlessA")
	c.Flags().BoolVar(&useRegister, "register", false, "keep voicings inside each style's register")
}

// loadProgression reads chords from --file or from args. Flags that were set
// explicitly override the file's options.
func loadProgression(c *cobra.Command, args []string) (*progression.Progression, error) {
	var p *progression.Progression
	var err error
	if progressionFile != "" {
		p, err = progression.Load(progressionFile)
	} else {
		p, err = progression.FromTokens(args)
	}
	if err != nil {
		return nil, err
	}

	flags := c.Flags()
	if flags.Changed("octave") {
		octave := targetOctave
		p.Options.TargetOctave = &octave
	}
	if flags.Changed("jazz") {
		p.Options.JazzVoiceLeading = jazz
	}
	if flags.Changed("spread") {
		p.Options.SpreadPreference = spreadPref
	}
	if flags.Changed("register") {
		p.Options.UseRegisterConstraints = useRegister
	}
	if flags.Changed("styles") {
		styles, err := parseStyles(styleNames)
		if err != nil {
			return nil, err
		}
		p.Options.AllowedStyles = styles
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func parseStyles(names []string) ([]model.Style, error) {
	var styles []model.Style
	for _, name := range names {
		style, err := model.ParseStyle(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		styles = append(styles, style)
	}
	return styles, nil
}

func chordName(spec model.ChordSpec) string {
	var mods []string
	for _, m := range spec.Modifiers {
		mods = append(mods, string(m))
	}
	return fmt.Sprintf("%v%v", spec.Root, strings.Join(mods, ""))
}
