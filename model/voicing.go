package model

import (
	"fmt"
	"strings"
)

type Style int

const (
	Close Style = iota
	RootlessA
	RootlessB
	Shell
	Quartal
	Drop2
	Drop3
	Drop24
	UpperStructure

	NumStyles = int(UpperStructure) + 1
)

var styleNames = [NumStyles]string{
	Close:          "close",
	RootlessA:      "rootlessA",
	RootlessB:      "rootlessB",
	Shell:          "shell",
	Quartal:        "quartal",
	Drop2:          "drop2",
	Drop3:          "drop3",
	Drop24:         "drop24",
	UpperStructure: "upperStructure",
}

func AllStyles() []Style {
	res := make([]Style, NumStyles)
	for i := range res {
		res[i] = Style(i)
	}
	return res
}

func (s Style) Valid() bool {
	return s >= 0 && int(s) < NumStyles
}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			return Style(i), nil
		}
	}
	return Close, fmt.Errorf("unknown voicing style %q", name)
}

func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid voicing style %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(text []byte) error {
	style, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// VoicingSettings together with its ChordSpec fully determines the notes
// that get played. DroppedNotes is the legacy progressive drop.
type VoicingSettings struct {
	Inversion    int   `json:"inversion" yaml:"inversion"`
	Spread       int   `json:"spread" yaml:"spread"`
	DroppedNotes int   `json:"droppedNotes" yaml:"droppedNotes"`
	Style        Style `json:"voicingStyle" yaml:"voicingStyle"`
	Octave       int   `json:"octave" yaml:"octave"`
}

func DefaultSettings(octave int) VoicingSettings {
	return VoicingSettings{Style: Close, Octave: octave}
}

type Candidate struct {
	Settings VoicingSettings
	Notes    Notes
	// per-candidate cost added before pairwise distances
	Cost float64
}

type SolveOptions struct {
	TargetOctave           *int
	JazzVoiceLeading       bool
	SpreadPreference       float64
	AllowedStyles          []Style
	UseRegisterConstraints bool
}

func (o SolveOptions) Allows(s Style) bool {
	if len(o.AllowedStyles) == 0 {
		return true
	}
	for _, a := range o.AllowedStyles {
		if a == s {
			return true
		}
	}
	return false
}
