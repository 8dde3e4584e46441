package constants

import (
	"os"
	"strconv"
)

func GetDefaultOctave() int {
	v := os.Getenv("VOICING_DEFAULT_OCTAVE")
	if v != "" {
		if octave, err := strconv.Atoi(v); err == nil && octave >= MinOctave && octave <= MaxOctave {
			return octave
		}
	}
	return 4
}

func GetPort() string {
	port := os.Getenv("VOICING_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetOutDir() string {
	path := os.Getenv("VOICING_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

// GetMidiInPort and GetMidiOutPort return port numbers for the live driver.
func GetMidiInPort() int {
	return getIntEnv("VOICING_MIDI_IN", 0)
}

func GetMidiOutPort() int {
	return getIntEnv("VOICING_MIDI_OUT", 0)
}

func getIntEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

const (
	MinPitch = 0
	MaxPitch = 127

	MinOctave = 1
	MaxOctave = 7

	MaxSpread = 3
)

// cost weights used by the solver
const (
	// every tone one voicing has over the other costs an octave
	UnmatchedVoicePenalty = 12.0

	SpreadWeight = 2.0

	JazzResolutionBonus = 3.0

	RegisterPenaltyPerSemitone = 3.0
	CenterPenaltyPerSemitone   = 0.5
)

const DefaultVelocity = 100
