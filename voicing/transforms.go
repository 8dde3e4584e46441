package voicing

import (
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/util"
	"golang.org/x/exp/slices"
)

// ApplyProgressiveDrop moves the top n tones down an octave, working from
// the top inward. The lowest tone always stays where it is.
func ApplyProgressiveDrop(tones model.Notes, n int) model.Notes {
	notes := sorted(tones)
	k := util.Min(n, len(notes)-1)
	for i := 0; i < k; i++ {
		j := len(notes) - 1 - i
		notes[j] = clampPitch(notes[j] - 12)
	}
	slices.Sort(notes)
	return notes
}

// ApplySpread raises every tone at an odd sorted index by k octaves.
func ApplySpread(tones model.Notes, k int) model.Notes {
	notes := sorted(tones)
	if k <= 0 {
		return notes
	}
	for i := 1; i < len(notes); i += 2 {
		notes[i] = clampPitch(notes[i] + 12*k)
	}
	slices.Sort(notes)
	return notes
}

// Invert moves the lowest tone up an octave, inversion times.
func Invert(tones model.Notes, inversion int) model.Notes {
	notes := sorted(tones)
	if len(notes) == 0 || inversion <= 0 {
		return notes
	}
	for i := 0; i < inversion%len(notes); i++ {
		notes[0] = clampPitch(notes[0] + 12)
		slices.Sort(notes)
	}
	return notes
}

// Arrange runs the fixed drop, spread, invert pipeline.
func Arrange(tones model.Notes, drop, spread, inversion int) model.Notes {
	return Invert(ApplySpread(ApplyProgressiveDrop(tones, drop), spread), inversion)
}
