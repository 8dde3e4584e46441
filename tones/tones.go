// Package tones builds close-position chords from a root and its modifiers.
package tones

import (
	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/util"
	"golang.org/x/exp/slices"
)

// Provider turns a chord description into a close chord. ok is false when
// the chord has no root.
type Provider interface {
	BuildCloseChord(root model.PitchClass, mods model.Modifiers, octave int) (model.CloseChord, bool)
}

type ProviderFunc func(root model.PitchClass, mods model.Modifiers, octave int) (model.CloseChord, bool)

func (f ProviderFunc) BuildCloseChord(root model.PitchClass, mods model.Modifiers, octave int) (model.CloseChord, bool) {
	return f(root, mods, octave)
}

var Default Provider = ProviderFunc(BuildCloseChord)

// RootPitch puts C4 at 60.
func RootPitch(root model.PitchClass, octave int) int {
	return util.Clamp((octave+1)*12+int(root), constants.MinPitch, constants.MaxPitch)
}

func quality(mods model.Modifiers) model.Quality {
	switch {
	case mods.Has(model.Diminished):
		return model.DiminishedQuality
	case mods.Has(model.Augmented):
		return model.AugmentedQuality
	case mods.HasAny(model.Sus2, model.Sus4):
		return model.Suspended
	case mods.Has(model.Minor):
		return model.MinorQuality
	}
	return model.Major
}

func intervals(mods model.Modifiers) []int {
	q := quality(mods)

	third := 4
	switch {
	case mods.Has(model.Sus2):
		third = 2
	case mods.Has(model.Sus4):
		third = 5
	case q == model.MinorQuality || q == model.DiminishedQuality:
		third = 3
	}

	fifth := 7
	switch {
	case q == model.DiminishedQuality || mods.Has(model.FlatFive):
		fifth = 6
	case q == model.AugmentedQuality:
		fifth = 8
	}

	res := []int{0, third, fifth}

	if mods.Has(model.Sixth) {
		res = append(res, 9)
	}

	// 9, 11 and 13 imply a seventh unless asked for as add9
	extended := mods.HasAny(model.Ninth, model.Eleventh, model.Thirteenth)
	switch {
	case mods.Has(model.MajorSeventh):
		res = append(res, 11)
	case mods.Has(model.Seventh) && q == model.DiminishedQuality:
		res = append(res, 9)
	case mods.Has(model.Seventh) || extended:
		res = append(res, 10)
	}

	switch {
	case mods.Has(model.FlatNinth):
		res = append(res, 13)
	case mods.Has(model.SharpNinth):
		res = append(res, 15)
	case mods.HasAny(model.Ninth, model.AddNine, model.Eleventh, model.Thirteenth):
		res = append(res, 14)
	}
	switch {
	case mods.Has(model.SharpEleventh):
		res = append(res, 18)
	case mods.HasAny(model.Eleventh, model.Thirteenth) && third != 4:
		res = append(res, 17)
	}
	if mods.Has(model.Thirteenth) {
		res = append(res, 21)
	}
	return res
}

// BuildCloseChord is the default Provider.
func BuildCloseChord(root model.PitchClass, mods model.Modifiers, octave int) (model.CloseChord, bool) {
	if root < 0 || root > 11 {
		return model.CloseChord{}, false
	}
	octave = util.Clamp(octave, constants.MinOctave, constants.MaxOctave)
	rootPitch := RootPitch(root, octave)

	var notes model.Notes
	for _, interval := range intervals(mods) {
		notes = append(notes, util.Clamp(rootPitch+interval, constants.MinPitch, constants.MaxPitch))
	}
	slices.Sort(notes)
	notes = slices.Compact(notes)

	return model.CloseChord{
		RootPitch:       rootPitch,
		Tones:           notes,
		Quality:         quality(mods),
		DominantSeventh: isDominant(mods),
	}, true
}

func isDominant(mods model.Modifiers) bool {
	if mods.HasAny(model.MajorSeventh, model.Minor, model.Diminished, model.Sus2, model.Sus4) {
		return false
	}
	return mods.HasAny(model.Seventh, model.Ninth, model.FlatNinth, model.SharpNinth, model.Eleventh, model.Thirteenth)
}

// FromNotes reads held keys as a close chord rooted on the lowest key.
func FromNotes(held []uint8) (model.CloseChord, bool) {
	if len(held) == 0 {
		return model.CloseChord{}, false
	}
	var notes model.Notes
	for _, n := range held {
		notes = append(notes, util.Clamp(int(n), constants.MinPitch, constants.MaxPitch))
	}
	slices.Sort(notes)
	notes = slices.Compact(notes)

	root := notes[0]
	offsets := make(map[int]bool)
	for _, n := range notes {
		offsets[util.Mod(n-root, 12)] = true
	}

	c := model.CloseChord{RootPitch: root, Tones: notes, Quality: model.Major}
	switch {
	case offsets[3] && offsets[6] && !offsets[4] && !offsets[7]:
		c.Quality = model.DiminishedQuality
	case offsets[3] && !offsets[4]:
		c.Quality = model.MinorQuality
	case offsets[4] && offsets[8] && !offsets[7]:
		c.Quality = model.AugmentedQuality
	case !offsets[3] && !offsets[4] && (offsets[2] || offsets[5]):
		c.Quality = model.Suspended
	}
	c.DominantSeventh = offsets[4] && offsets[10] && !offsets[11]
	return c, true
}
