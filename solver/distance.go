package solver

import (
	"math"

	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/util"
	"golang.org/x/exp/slices"
)

// Distance is the voice movement between two voicings: tones are paired
// bottom-up and every unpaired tone costs an octave.
func Distance(a, b model.Notes) float64 {
	if len(a) == 0 || len(b) == 0 {
		return math.Inf(1)
	}
	x := slices.Clone(a)
	y := slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)

	var d float64
	n := util.Min(len(x), len(y))
	for i := 0; i < n; i++ {
		d += float64(util.Abs(x[i] - y[i]))
	}
	d += constants.UnmatchedVoicePenalty * float64(util.Abs(len(x)-len(y)))
	return d
}

// Movement sums Distance over consecutive voicings.
func Movement(seq []model.Notes) float64 {
	var total float64
	for i := 1; i < len(seq); i++ {
		total += Distance(seq[i-1], seq[i])
	}
	return total
}

func thirdClass(c model.CloseChord) (int, bool) {
	for _, offset := range []int{4, 3} {
		for _, tone := range c.Tones {
			if util.Mod(tone-c.RootPitch, 12) == offset {
				return util.Mod(tone, 12), true
			}
		}
	}
	return 0, false
}

// resolutionBonus rewards a dominant's seventh stepping down onto the next
// chord's third.
func resolutionBonus(a, b model.Notes, from, to model.CloseChord) float64 {
	if !from.DominantSeventh {
		return 0
	}
	third, ok := thirdClass(to)
	if !ok {
		return 0
	}
	seventh := util.Mod(from.RootPitch+10, 12)
	for _, p := range a {
		if util.Mod(p, 12) != seventh {
			continue
		}
		for _, q := range b {
			if step := p - q; (step == 1 || step == 2) && util.Mod(q, 12) == third {
				return constants.JazzResolutionBonus
			}
		}
	}
	return 0
}
