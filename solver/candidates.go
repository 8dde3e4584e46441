package solver

import (
	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/util"
	"github.com/jsphweid/voicelead/voicing"
	"golang.org/x/exp/slices"
)

func requestedOctave(spec model.ChordSpec, o model.SolveOptions) int {
	if o.TargetOctave != nil {
		return *o.TargetOctave
	}
	return spec.BaseOctave
}

// octaves lists the requested octave first so that ties keep it.
func octaves(req int) []int {
	var res []int
	for _, o := range []int{req, req - 1, req + 1} {
		o = util.Clamp(o, constants.MinOctave, constants.MaxOctave)
		if !slices.Contains(res, o) {
			res = append(res, o)
		}
	}
	return res
}

func unaryCost(c model.Candidate, o model.SolveOptions) float64 {
	cost := -constants.SpreadWeight * o.SpreadPreference * float64(c.Settings.Spread)
	if o.UseRegisterConstraints {
		cost += voicing.Penalty(c.Notes, c.Settings.Style)
	}
	return cost
}

// Candidates enumerates every voicing the solver considers for one chord.
func (s *Solver) Candidates(spec model.ChordSpec, o model.SolveOptions) []model.Candidate {
	res, _ := s.candidates(spec, o)
	return res
}

// candidates also returns the chord as built at the first usable octave.
func (s *Solver) candidates(spec model.ChordSpec, o model.SolveOptions) ([]model.Candidate, model.CloseChord) {
	var res []model.Candidate
	var first model.CloseChord
	var haveFirst bool
	seen := make(map[model.VoicingSettings]bool)

	add := func(settings model.VoicingSettings, notes model.Notes) {
		if len(notes) == 0 || seen[settings] {
			return
		}
		seen[settings] = true
		c := model.Candidate{Settings: settings, Notes: notes}
		c.Cost = unaryCost(c, o)
		res = append(res, c)
	}

	for _, octave := range octaves(requestedOctave(spec, o)) {
		chord, ok := s.Provider.BuildCloseChord(spec.Root, spec.Modifiers, octave)
		if !ok || len(chord.Tones) == 0 {
			continue
		}
		if !haveFirst {
			first, haveFirst = chord, true
		}

		if len(o.AllowedStyles) > 0 {
			for _, style := range o.AllowedStyles {
				if !style.Valid() {
					continue
				}
				settings := model.VoicingSettings{Style: style, Octave: octave}
				notes := voicing.Apply(style, chord)
				// the nearest fitting octave keeps the requested octave whenever
				// it fits, so a higher target never yields lower voicings
				if o.UseRegisterConstraints {
					target := octave + voicing.FitShift(notes, style)/12
					if target != octave && target >= constants.MinOctave && target <= constants.MaxOctave {
						settings.Octave = target
						notes = s.Materialize(spec, settings)
					}
				}
				add(settings, notes)
			}
			continue
		}

		n := len(chord.Tones)
		maxSpread := constants.MaxSpread
		if n < 2 {
			maxSpread = 0
		}
		for inv := 0; inv < n; inv++ {
			for spread := 0; spread <= maxSpread; spread++ {
				for drop := 0; drop < n; drop++ {
					settings := model.VoicingSettings{
						Inversion:    inv,
						Spread:       spread,
						DroppedNotes: drop,
						Style:        model.Close,
						Octave:       octave,
					}
					add(settings, voicing.Arrange(chord.Tones, drop, spread, inv))
				}
			}
		}
	}
	return res, first
}
