package voicing

import (
	"math"

	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/util"
)

type Register struct {
	Min         int
	Max         int
	IdealCenter int
}

var registers = [model.NumStyles]Register{
	model.Close:          {Min: 48, Max: 84, IdealCenter: 64},
	model.RootlessA:      {Min: 50, Max: 79, IdealCenter: 64},
	model.RootlessB:      {Min: 50, Max: 79, IdealCenter: 64},
	model.Shell:          {Min: 36, Max: 72, IdealCenter: 55},
	model.Quartal:        {Min: 48, Max: 84, IdealCenter: 66},
	model.Drop2:          {Min: 43, Max: 84, IdealCenter: 62},
	model.Drop3:          {Min: 40, Max: 84, IdealCenter: 60},
	model.Drop24:         {Min: 38, Max: 86, IdealCenter: 60},
	model.UpperStructure: {Min: 52, Max: 91, IdealCenter: 72},
}

func RegisterFor(style model.Style) Register {
	if !style.Valid() {
		style = model.Close
	}
	return registers[style]
}

func bounds(notes model.Notes) (int, int) {
	lo, hi := notes[0], notes[0]
	for _, n := range notes[1:] {
		lo = util.Min(lo, n)
		hi = util.Max(hi, n)
	}
	return lo, hi
}

// Penalty scores how far a voicing sits from its style's register.
func Penalty(notes model.Notes, style model.Style) float64 {
	if len(notes) == 0 {
		return 0
	}
	r := RegisterFor(style)
	lo, hi := bounds(notes)

	var p float64
	if lo < r.Min {
		p += constants.RegisterPenaltyPerSemitone * float64(r.Min-lo)
	}
	if hi > r.Max {
		p += constants.RegisterPenaltyPerSemitone * float64(hi-r.Max)
	}
	center := float64(lo+hi) / 2
	p += constants.CenterPenaltyPerSemitone * math.Abs(center-float64(r.IdealCenter))
	return p
}

// RegisterShift returns the octave shift, in semitones, that ConstrainToRegister
// applies to notes.
func RegisterShift(notes model.Notes, style model.Style) int {
	if len(notes) == 0 {
		return 0
	}
	r := RegisterFor(style)
	lo, hi := bounds(notes)
	if hi-lo > r.Max-r.Min {
		return 0
	}

	best := 0
	bestFits := false
	bestScore := math.Inf(1)
	for s := -120; s <= 120; s += 12 {
		if lo+s < constants.MinPitch || hi+s > constants.MaxPitch {
			continue
		}
		fits := lo+s >= r.Min && hi+s <= r.Max
		if bestFits && !fits {
			continue
		}
		var score float64
		if fits {
			score = math.Abs(float64(lo+hi+2*s)/2 - float64(r.IdealCenter))
		} else {
			score = Penalty(Transpose(notes, s), style)
		}
		better := score < bestScore || (score == bestScore && util.Abs(s) < util.Abs(best))
		if (fits && !bestFits) || better {
			best, bestScore, bestFits = s, score, fits
		}
	}
	return best
}

// FitShift returns the smallest octave shift, in semitones, that puts notes
// inside the style's register. It is 0 when they already fit. When no shift
// fits, it falls back to RegisterShift.
func FitShift(notes model.Notes, style model.Style) int {
	if len(notes) == 0 {
		return 0
	}
	r := RegisterFor(style)
	lo, hi := bounds(notes)
	for s := 0; s <= 120; s += 12 {
		for _, shift := range []int{-s, s} {
			if lo+shift >= r.Min && hi+shift <= r.Max {
				return shift
			}
		}
	}
	return RegisterShift(notes, style)
}

// ConstrainToRegister moves the voicing by whole octaves into its style's
// register. Voicings wider than the register are left alone.
func ConstrainToRegister(notes model.Notes, style model.Style) model.Notes {
	return Transpose(notes, RegisterShift(notes, style))
}

// Transpose returns a shifted copy, clamped to the MIDI range.
func Transpose(notes model.Notes, semitones int) model.Notes {
	res := make(model.Notes, len(notes))
	for i, n := range notes {
		res[i] = clampPitch(n + semitones)
	}
	return res
}
