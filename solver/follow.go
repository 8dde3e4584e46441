package solver

import (
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/voicing"
)

// Nearest returns the index of the option closest to prev, or -1 when there
// are no options. Ties go to the earlier option.
func Nearest(prev model.Notes, options []model.Notes) int {
	best := -1
	var bestDist float64
	for i, o := range options {
		d := Distance(prev, o)
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Follow re-voices notes, by inversion and octave, to sit as close as it can
// to prev. Used when chords arrive one at a time and no sequence is known.
func Follow(prev, notes model.Notes) model.Notes {
	if len(prev) == 0 || len(notes) == 0 {
		return notes
	}
	var options []model.Notes
	for _, shift := range []int{0, -12, 12} {
		for inv := 0; inv < len(notes); inv++ {
			options = append(options, voicing.Transpose(voicing.Invert(notes, inv), shift))
		}
	}
	return options[Nearest(prev, options)]
}
