// Package solver picks a voicing for every chord of a progression so that
// the voices move as little as possible from chord to chord.
package solver

import (
	"math"

	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/tones"
	"github.com/jsphweid/voicelead/util"
	"github.com/jsphweid/voicelead/voicing"
)

type Solver struct {
	Provider tones.Provider
}

func New(p tones.Provider) *Solver {
	if p == nil {
		p = tones.Default
	}
	return &Solver{Provider: p}
}

var defaultSolver = New(tones.Default)

// Result is a solve plus the numbers behind it.
type Result struct {
	Settings []model.VoicingSettings
	// candidates generated per chord, empty when no search ran
	CandidateCounts []int
	Comparisons     int
	Cost            float64
	// Fallback is set when some chord had no candidates and every chord
	// got its stored or default settings instead.
	Fallback bool
}

func SolveSequence(specs []model.ChordSpec, opts *model.SolveOptions) []model.VoicingSettings {
	return defaultSolver.SolveSequence(specs, opts)
}

func Materialize(spec model.ChordSpec, settings model.VoicingSettings) model.Notes {
	return defaultSolver.Materialize(spec, settings)
}

// SolveSequence returns one settings value per spec. It never fails; see
// Result.Fallback for how it degrades.
func (s *Solver) SolveSequence(specs []model.ChordSpec, opts *model.SolveOptions) []model.VoicingSettings {
	return s.Solve(specs, opts).Settings
}

func (s *Solver) Solve(specs []model.ChordSpec, opts *model.SolveOptions) Result {
	var o model.SolveOptions
	if opts != nil {
		o = *opts
	}

	switch len(specs) {
	case 0:
		return Result{Settings: []model.VoicingSettings{}}
	case 1:
		settings := storedOrDefault(specs[0], o)
		if o.TargetOctave != nil {
			settings.Octave = *o.TargetOctave
		}
		return Result{Settings: []model.VoicingSettings{settings}}
	}

	n := len(specs)
	layers := make([][]model.Candidate, n)
	chords := make([]model.CloseChord, n)
	counts := make([]int, n)
	for i, spec := range specs {
		layers[i], chords[i] = s.candidates(spec, o)
		counts[i] = len(layers[i])
		if counts[i] == 0 {
			return fallback(specs, o, counts)
		}
	}

	res := Result{CandidateCounts: counts}

	cost := make([][]float64, n)
	parent := make([][]int, n)
	cost[0] = make([]float64, len(layers[0]))
	for j, c := range layers[0] {
		cost[0][j] = c.Cost
	}
	for i := 1; i < n; i++ {
		prev, cur := layers[i-1], layers[i]
		cost[i] = make([]float64, len(cur))
		parent[i] = make([]int, len(cur))
		for j, b := range cur {
			best, bestK := math.Inf(1), 0
			for k, a := range prev {
				d := cost[i-1][k] + s.transition(a, b, chords[i-1], chords[i], o)
				res.Comparisons++
				if d < best {
					best, bestK = d, k
				}
			}
			cost[i][j] = best + b.Cost
			parent[i][j] = bestK
		}
	}

	last := 0
	for j := range cost[n-1] {
		if cost[n-1][j] < cost[n-1][last] {
			last = j
		}
	}
	res.Cost = cost[n-1][last]

	res.Settings = make([]model.VoicingSettings, n)
	for i, j := n-1, last; i >= 0; i-- {
		res.Settings[i] = layers[i][j].Settings
		if i > 0 {
			j = parent[i][j]
		}
	}
	return res
}

func (s *Solver) transition(a, b model.Candidate, from, to model.CloseChord, o model.SolveOptions) float64 {
	d := Distance(a.Notes, b.Notes)
	if o.JazzVoiceLeading {
		d -= resolutionBonus(a.Notes, b.Notes, from, to)
	}
	return d
}

func storedOrDefault(spec model.ChordSpec, o model.SolveOptions) model.VoicingSettings {
	var settings model.VoicingSettings
	if spec.Stored != nil {
		settings = *spec.Stored
	} else {
		octave := util.Clamp(requestedOctave(spec, o), constants.MinOctave, constants.MaxOctave)
		settings = model.DefaultSettings(octave)
	}
	if !o.Allows(settings.Style) {
		settings.Style = o.AllowedStyles[0]
		settings.Inversion, settings.Spread, settings.DroppedNotes = 0, 0, 0
	}
	return settings
}

func fallback(specs []model.ChordSpec, o model.SolveOptions, counts []int) Result {
	res := Result{
		Settings:        make([]model.VoicingSettings, len(specs)),
		CandidateCounts: counts,
		Fallback:        true,
	}
	for i, spec := range specs {
		res.Settings[i] = storedOrDefault(spec, o)
	}
	return res
}

// Materialize renders stored settings into notes the same way the solver
// generated them: drop, spread, invert for close voicings, the style
// transform otherwise.
func (s *Solver) Materialize(spec model.ChordSpec, settings model.VoicingSettings) model.Notes {
	chord, ok := s.Provider.BuildCloseChord(spec.Root, spec.Modifiers, settings.Octave)
	if !ok || len(chord.Tones) == 0 {
		return model.Notes{}
	}
	if settings.Style != model.Close {
		return voicing.Apply(settings.Style, chord)
	}
	n := len(chord.Tones)
	inv := util.Clamp(settings.Inversion, 0, n-1)
	spread := util.Clamp(settings.Spread, 0, constants.MaxSpread)
	drop := util.Clamp(settings.DroppedNotes, 0, n-1)
	return voicing.Arrange(chord.Tones, drop, spread, inv)
}
