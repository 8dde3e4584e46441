// Package progression reads chord progressions and solve options from YAML
// or JSON documents and from command line tokens.
package progression

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/model"
)

var ErrNoChords = errors.New("progression has no chords")

type Chord struct {
	Root      model.PitchClass       `json:"root" yaml:"root"`
	Modifiers []model.Modifier       `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Octave    int                    `json:"octave,omitempty" yaml:"octave,omitempty"`
	Settings  *model.VoicingSettings `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// chordFields has Chord's fields without its decode methods.
type chordFields Chord

// UnmarshalJSON leaves Root as model.NoRoot when the document omits it.
func (c *Chord) UnmarshalJSON(data []byte) error {
	f := chordFields{Root: model.NoRoot}
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = Chord(f)
	return nil
}

// UnmarshalYAML leaves Root as model.NoRoot when the document omits it.
func (c *Chord) UnmarshalYAML(data []byte) error {
	f := chordFields{Root: model.NoRoot}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = Chord(f)
	return nil
}

type Options struct {
	TargetOctave           *int          `json:"targetOctave,omitempty" yaml:"targetOctave,omitempty"`
	JazzVoiceLeading       bool          `json:"jazzVoiceLeading,omitempty" yaml:"jazzVoiceLeading,omitempty"`
	SpreadPreference       float64       `json:"spreadPreference,omitempty" yaml:"spreadPreference,omitempty"`
	AllowedStyles          []model.Style `json:"allowedStyles,omitempty" yaml:"allowedStyles,omitempty"`
	UseRegisterConstraints bool          `json:"useRegisterConstraints,omitempty" yaml:"useRegisterConstraints,omitempty"`
}

type Progression struct {
	Chords  []Chord `json:"chords" yaml:"chords"`
	Options Options `json:"options,omitempty" yaml:"options,omitempty"`
}

func Load(path string) (*Progression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// Parse reads a YAML document. JSON documents parse too.
func Parse(data []byte) (*Progression, error) {
	var p Progression
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func Marshal(p *Progression) ([]byte, error) {
	return yaml.Marshal(p)
}

// ParseToken reads ROOT[:MOD,MOD...][@OCTAVE], e.g. "D:m,7@3" or "G:7".
func ParseToken(tok string) (Chord, error) {
	var c Chord
	rest := strings.TrimSpace(tok)

	if at := strings.LastIndex(rest, "@"); at >= 0 {
		octave, err := strconv.Atoi(rest[at+1:])
		if err != nil {
			return c, fmt.Errorf("bad octave in %q: %w", tok, err)
		}
		c.Octave = octave
		rest = rest[:at]
	}

	rootPart, modPart, hasMods := strings.Cut(rest, ":")
	root, err := model.ParsePitchClass(rootPart)
	if err != nil {
		return c, err
	}
	c.Root = root
	if hasMods {
		for _, m := range strings.Split(modPart, ",") {
			if m = strings.TrimSpace(m); m != "" {
				c.Modifiers = append(c.Modifiers, model.Modifier(m))
			}
		}
	}
	return c, nil
}

func FromTokens(toks []string) (*Progression, error) {
	var p Progression
	for _, tok := range toks {
		c, err := ParseToken(tok)
		if err != nil {
			return nil, err
		}
		p.Chords = append(p.Chords, c)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Progression) Validate() error {
	if len(p.Chords) == 0 {
		return ErrNoChords
	}
	for i, c := range p.Chords {
		if c.Octave != 0 && (c.Octave < constants.MinOctave || c.Octave > constants.MaxOctave) {
			return fmt.Errorf("chord %d: octave %d out of range", i, c.Octave)
		}
		if c.Settings != nil && !c.Settings.Style.Valid() {
			return fmt.Errorf("chord %d: invalid voicing style", i)
		}
	}
	o := p.Options
	if o.SpreadPreference < -1 || o.SpreadPreference > 1 {
		return fmt.Errorf("spreadPreference %v must be within [-1, 1]", o.SpreadPreference)
	}
	for _, s := range o.AllowedStyles {
		if !s.Valid() {
			return fmt.Errorf("invalid voicing style %d", int(s))
		}
	}
	return nil
}

// Specs fills in the default octave for chords that do not name one.
func (p *Progression) Specs() []model.ChordSpec {
	specs := make([]model.ChordSpec, len(p.Chords))
	for i, c := range p.Chords {
		octave := c.Octave
		if octave == 0 {
			octave = constants.GetDefaultOctave()
		}
		specs[i] = model.ChordSpec{
			Root:       c.Root,
			Modifiers:  c.Modifiers,
			BaseOctave: octave,
			Stored:     c.Settings,
		}
	}
	return specs
}

func (p *Progression) SolveOptions() *model.SolveOptions {
	o := p.Options
	return &model.SolveOptions{
		TargetOctave:           o.TargetOctave,
		JazzVoiceLeading:       o.JazzVoiceLeading,
		SpreadPreference:       o.SpreadPreference,
		AllowedStyles:          o.AllowedStyles,
		UseRegisterConstraints: o.UseRegisterConstraints,
	}
}
