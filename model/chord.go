package model

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Notes are MIDI pitch values, always kept within 0-127.
type Notes = []int

type PitchClass int

const NoRoot PitchClass = -1

var pitchClassNames = [12]string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

var letterClasses = map[byte]PitchClass{'A': 9, 'B': 11, 'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7}

func (p PitchClass) String() string {
	if p < 0 || p > 11 {
		return "none"
	}
	return pitchClassNames[p]
}

func (p PitchClass) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PitchClass) UnmarshalText(text []byte) error {
	pc, err := ParsePitchClass(string(text))
	if err != nil {
		return err
	}
	*p = pc
	return nil
}

func ParsePitchClass(s string) (PitchClass, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return NoRoot, nil
	}
	pc, ok := letterClasses[strings.ToUpper(s[:1])[0]]
	if !ok {
		return NoRoot, fmt.Errorf("unknown pitch class %q", s)
	}
	for _, r := range s[1:] {
		switch r {
		case '#':
			pc++
		case 'b':
			pc--
		default:
			return NoRoot, fmt.Errorf("unknown pitch class %q", s)
		}
	}
	return PitchClass((int(pc)%12 + 12) % 12), nil
}

type Modifier string

const (
	Minor         Modifier = "m"
	Diminished    Modifier = "dim"
	Augmented     Modifier = "aug"
	Sus2          Modifier = "sus2"
	Sus4          Modifier = "sus4"
	FlatFive      Modifier = "b5"
	Sixth         Modifier = "6"
	Seventh       Modifier = "7"
	MajorSeventh  Modifier = "maj7"
	Ninth         Modifier = "9"
	FlatNinth     Modifier = "b9"
	SharpNinth    Modifier = "#9"
	AddNine       Modifier = "add9"
	Eleventh      Modifier = "11"
	SharpEleventh Modifier = "#11"
	Thirteenth    Modifier = "13"
)

type Modifiers []Modifier

func (m Modifiers) Has(mod Modifier) bool {
	return slices.Contains(m, mod)
}

func (m Modifiers) HasAny(mods ...Modifier) bool {
	for _, mod := range mods {
		if m.Has(mod) {
			return true
		}
	}
	return false
}

// ChordSpec is what the key/touch layer hands over for one chord. Stored
// holds the settings a preset saved for it, if any.
type ChordSpec struct {
	Root       PitchClass
	Modifiers  Modifiers
	BaseOctave int
	Stored     *VoicingSettings
}

type Quality int

const (
	Major Quality = iota
	MinorQuality
	DiminishedQuality
	AugmentedQuality
	Suspended
)

func (q Quality) String() string {
	switch q {
	case MinorQuality:
		return "minor"
	case DiminishedQuality:
		return "diminished"
	case AugmentedQuality:
		return "augmented"
	case Suspended:
		return "suspended"
	}
	return "major"
}

// CloseChord is a close-position chord. Tones[0] is the lowest root
// occurrence and Tones is ascending.
type CloseChord struct {
	RootPitch       int
	Tones           Notes
	Quality         Quality
	DominantSeventh bool
}

func (c CloseChord) IsMinor() bool {
	return c.Quality == MinorQuality
}
