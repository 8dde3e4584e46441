// Package voicing rearranges close-position chords into jazz voicing styles
// and keeps voicings inside a playable register.
package voicing

import (
	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/util"
	"golang.org/x/exp/slices"
)

type transform func(c model.CloseChord) model.Notes

var transforms = [model.NumStyles]transform{
	model.Close:          closePosition,
	model.RootlessA:      rootlessA,
	model.RootlessB:      rootlessB,
	model.Shell:          shell,
	model.Quartal:        quartal,
	model.Drop2:          drop2,
	model.Drop3:          drop3,
	model.Drop24:         drop24,
	model.UpperStructure: upperStructure,
}

// semitone offsets above the root, in order of preference
var (
	thirdOffsets   = []int{4, 3}
	fifthOffsets   = []int{7, 6, 8}
	seventhOffsets = []int{11, 10, 9}
	ninthOffsets   = []int{2, 1, 3}
)

// Apply returns the chord's tones rearranged in the given style. The result
// is never empty for a chord with tones, and every pitch is within 0-127.
// Styles that cannot be realized with the chord's tones return them unchanged.
func Apply(style model.Style, c model.CloseChord) model.Notes {
	if len(c.Tones) == 0 {
		return model.Notes{}
	}
	if !style.Valid() {
		style = model.Close
	}
	notes := transforms[style](c)
	if len(notes) == 0 {
		notes = slices.Clone(c.Tones)
	}
	return clampAll(notes)
}

func clampPitch(p int) int {
	return util.Clamp(p, constants.MinPitch, constants.MaxPitch)
}

func clampAll(notes model.Notes) model.Notes {
	for i := range notes {
		notes[i] = clampPitch(notes[i])
	}
	return notes
}

func sorted(notes model.Notes) model.Notes {
	res := slices.Clone(notes)
	slices.Sort(res)
	return res
}

// findTone returns the lowest tone whose interval above the root matches one
// of offsets, skipping the pitches in exclude.
func findTone(c model.CloseChord, offsets []int, exclude ...int) (int, bool) {
	for _, offset := range offsets {
		for _, tone := range c.Tones {
			if slices.Contains(exclude, tone) {
				continue
			}
			if util.Mod(tone-c.RootPitch, 12) == offset {
				return tone, true
			}
		}
	}
	return 0, false
}

func closePosition(c model.CloseChord) model.Notes {
	return slices.Clone(c.Tones)
}

func rootlessA(c model.CloseChord) model.Notes {
	return rootless(c, false)
}

func rootlessB(c model.CloseChord) model.Notes {
	return rootless(c, true)
}

// rootless builds a Bill Evans style voicing: 3-5-7-9 for type A, 7-9-3-5
// for type B. The ninth is added when the chord does not carry one.
func rootless(c model.CloseChord, typeB bool) model.Notes {
	third, hasThird := findTone(c, thirdOffsets)
	fifth, hasFifth := findTone(c, fifthOffsets)
	seventh, hasSeventh := findTone(c, seventhOffsets)
	ninth, hasNinth := findTone(c, ninthOffsets, third)

	found := 0
	for _, ok := range []bool{hasThird, hasFifth, hasSeventh, hasNinth} {
		if ok {
			found++
		}
	}
	if found < 3 {
		return slices.Clone(c.Tones)
	}
	if !hasNinth {
		ninth = clampPitch(c.RootPitch + 14)
	}

	var notes model.Notes
	if hasThird {
		notes = append(notes, third)
	}
	if hasFifth {
		notes = append(notes, fifth)
	}
	if hasSeventh {
		notes = append(notes, seventh)
	}
	notes = append(notes, ninth)

	lead, hasLead := third, hasThird
	if typeB {
		lead, hasLead = seventh, hasSeventh
	}
	slices.Sort(notes)
	if !hasLead {
		return notes
	}
	return rotateUntilLowest(notes, lead)
}

// rotateUntilLowest raises the notes under lead by an octave until lead is
// the bass note.
func rotateUntilLowest(notes model.Notes, lead int) model.Notes {
	for i := 0; i < len(notes) && notes[0] != lead; i++ {
		notes[0] = clampPitch(notes[0] + 12)
		slices.Sort(notes)
	}
	return notes
}

func shell(c model.CloseChord) model.Notes {
	notes := model.Notes{c.RootPitch}
	if third, ok := findTone(c, thirdOffsets); ok {
		notes = append(notes, third)
	}
	if seventh, ok := findTone(c, []int{11, 10}); ok {
		notes = append(notes, seventh)
	} else if sixth, ok := findTone(c, []int{9}); ok {
		notes = append(notes, sixth)
	}
	if len(notes) < 2 {
		return slices.Clone(c.Tones)
	}
	slices.Sort(notes)
	return notes
}

func fourths(start, count int) model.Notes {
	notes := make(model.Notes, 0, count+1)
	for i := 0; i < count; i++ {
		notes = append(notes, clampPitch(start+5*i))
	}
	return notes
}

func quartal(c model.CloseChord) model.Notes {
	switch {
	case c.IsMinor():
		third, ok := findTone(c, []int{3})
		if !ok {
			third = c.RootPitch + 3
		}
		notes := fourths(third, 4)
		return append(notes, clampPitch(third+19))
	case c.DominantSeventh:
		seventh, ok := findTone(c, []int{10})
		if !ok {
			seventh = c.RootPitch + 10
		}
		return fourths(seventh, 4)
	}
	notes := fourths(c.RootPitch, 4)
	if c.Quality == model.Major {
		notes = append(notes, clampPitch(c.RootPitch+19))
	}
	return notes
}

// upperStructure puts a major triad a minor third above the root over the
// chord's tritone.
func upperStructure(c model.CloseChord) model.Notes {
	var notes model.Notes
	if third, ok := findTone(c, []int{4}); ok {
		notes = append(notes, third)
	}
	if seventh, ok := findTone(c, []int{10, 11}); ok {
		notes = append(notes, seventh)
	}

	usRoot := c.RootPitch + 3
	if len(notes) > 0 {
		top := util.Max(notes[0], notes[len(notes)-1])
		for usRoot <= top {
			usRoot += 12
		}
	}
	notes = append(notes, clampPitch(usRoot), clampPitch(usRoot+4), clampPitch(usRoot+7))
	slices.Sort(notes)
	notes = slices.Compact(notes)
	if len(notes) < 4 {
		return slices.Clone(c.Tones)
	}
	return notes
}

// dropVoices lowers the tones at the given positions, counted from the top
// (2 is the second highest), by an octave.
func dropVoices(c model.CloseChord, positions ...int) model.Notes {
	if len(c.Tones) < 4 {
		return slices.Clone(c.Tones)
	}
	notes := sorted(c.Tones)
	for _, pos := range positions {
		i := len(notes) - pos
		notes[i] = clampPitch(notes[i] - 12)
	}
	slices.Sort(notes)
	return notes
}

func drop2(c model.CloseChord) model.Notes {
	return dropVoices(c, 2)
}

func drop3(c model.CloseChord) model.Notes {
	return dropVoices(c, 3)
}

func drop24(c model.CloseChord) model.Notes {
	return dropVoices(c, 2, 4)
}
