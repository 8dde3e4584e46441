package progression

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoFiveOne = `
options:
  targetOctave: 3
  jazzVoiceLeading: true
  spreadPreference: -0.5
  allowedStyles: [drop2, rootlessA]
chords:
  - root: D
    modifiers: ["m", "7"]
  - root: G
    modifiers: ["7", "#9"]
    octave: 3
  - root: C
    modifiers: ["maj7"]
    settings:
      inversion: 1
      voicingStyle: shell
      octave: 4
`

func TestParse(t *testing.T) {
	t.Setenv("VOICING_DEFAULT_OCTAVE", "5")

	p, err := Parse([]byte(twoFiveOne))
	require.NoError(t, err)

	assert := assert.New(t)
	specs := p.Specs()
	require.Len(t, specs, 3)
	assert.Equal(model.PitchClass(2), specs[0].Root)
	assert.Equal(model.Modifiers{model.Minor, model.Seventh}, specs[0].Modifiers)
	assert.Equal(5, specs[0].BaseOctave)
	assert.Equal(3, specs[1].BaseOctave)
	assert.Equal(model.Modifiers{model.Seventh, model.SharpNinth}, specs[1].Modifiers)
	require.NotNil(t, specs[2].Stored)
	assert.Equal(model.Shell, specs[2].Stored.Style)
	assert.Equal(1, specs[2].Stored.Inversion)

	opts := p.SolveOptions()
	require.NotNil(t, opts.TargetOctave)
	assert.Equal(3, *opts.TargetOctave)
	assert.True(opts.JazzVoiceLeading)
	assert.Equal(-0.5, opts.SpreadPreference)
	assert.Equal([]model.Style{model.Drop2, model.RootlessA}, opts.AllowedStyles)
	assert.False(opts.UseRegisterConstraints)
}

func TestParseJSON(t *testing.T) {
	p, err := Parse([]byte(`{"chords": [{"root": "Bb", "modifiers": ["7"], "octave": 3}]}`))
	require.NoError(t, err)
	assert.Equal(t, model.PitchClass(10), p.Chords[0].Root)
}

func TestChordWithoutRootHasNoRoot(t *testing.T) {
	const doc = `{"chords": [{"modifiers": ["m"]}, {"root": "G", "modifiers": ["7"]}]}`

	fromYAML, err := Parse([]byte(doc))
	require.NoError(t, err)
	var fromJSON Progression
	require.NoError(t, json.Unmarshal([]byte(doc), &fromJSON))

	for _, p := range []*Progression{fromYAML, &fromJSON} {
		require.Len(t, p.Chords, 2)
		assert.Equal(t, model.NoRoot, p.Chords[0].Root)
		assert.Equal(t, model.PitchClass(7), p.Chords[1].Root)

		specs := p.Specs()
		res := solver.New(nil).Solve(specs, p.SolveOptions())
		assert.True(t, res.Fallback)
		assert.Empty(t, solver.Materialize(specs[0], res.Settings[0]))
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"no chords":      `options: {jazzVoiceLeading: true}`,
		"unknown style":  "chords: [{root: C}]\noptions: {allowedStyles: [drop5]}",
		"spread too big": "chords: [{root: C}]\noptions: {spreadPreference: 2}",
		"bad octave":     "chords: [{root: C, octave: 12}]",
		"bad root":       "chords: [{root: H}]",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoFiveOne), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Chords, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseToken(t *testing.T) {
	cases := []struct {
		tok  string
		want Chord
	}{
		{"C", Chord{Root: 0}},
		{"D:m,7@3", Chord{Root: 2, Modifiers: []model.Modifier{model.Minor, model.Seventh}, Octave: 3}},
		{"F#:7,b9", Chord{Root: 6, Modifiers: []model.Modifier{model.Seventh, model.FlatNinth}}},
		{"none", Chord{Root: model.NoRoot}},
	}
	for _, tc := range cases {
		t.Run(tc.tok, func(t *testing.T) {
			c, err := ParseToken(tc.tok)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c)
		})
	}

	_, err := ParseToken("C@high")
	assert.Error(t, err)
	_, err = ParseToken("X:7")
	assert.Error(t, err)
}

func TestFromTokens(t *testing.T) {
	p, err := FromTokens([]string{"D:m,7", "G:7", "C:maj7"})
	require.NoError(t, err)
	assert.Len(t, p.Specs(), 3)

	_, err = FromTokens(nil)
	assert.ErrorIs(t, err, ErrNoChords)
}

func TestLoadBundledProgression(t *testing.T) {
	p, err := Load(filepath.Join("..", "progressions", "rhythm-changes-a.yaml"))
	require.NoError(t, err)
	require.Len(t, p.Chords, 8)

	o := p.SolveOptions()
	assert.True(t, o.JazzVoiceLeading)
	assert.True(t, o.UseRegisterConstraints)
	assert.Equal(t, []model.Style{model.RootlessA, model.RootlessB}, o.AllowedStyles)
}
