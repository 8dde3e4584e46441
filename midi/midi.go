package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const resolution = smf.MetricTicks(960)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// CreateVoicingFile lays the voicings out one bar each. An empty voicing is
// a bar of rest.
func CreateVoicingFile(voicings []model.Notes, bpm float64) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = resolution
	bar := resolution.Ticks4th() * 4

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(bpm))

	var rest uint32
	for _, notes := range voicings {
		if len(notes) == 0 {
			rest += bar
			continue
		}
		for i, n := range notes {
			var delta uint32
			if i == 0 {
				delta, rest = rest, 0
			}
			tr.Add(delta, midi.NoteOn(0, pitch(n), constants.DefaultVelocity))
		}
		for i, n := range notes {
			var delta uint32
			if i == 0 {
				delta = bar
			}
			tr.Add(delta, midi.NoteOff(0, pitch(n)))
		}
	}
	tr.Close(rest)

	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("could not add track: %w", err)
	}
	return s, nil
}

func WriteVoicingFile(path string, voicings []model.Notes, bpm float64) error {
	s, err := CreateVoicingFile(voicings, bpm)
	if err != nil {
		return err
	}
	return s.WriteFile(path)
}

func WriteVoicings(w io.Writer, voicings []model.Notes, bpm float64) error {
	s, err := CreateVoicingFile(voicings, bpm)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func pitch(n int) uint8 {
	return uint8(util.Clamp(n, constants.MinPitch, constants.MaxPitch))
}
