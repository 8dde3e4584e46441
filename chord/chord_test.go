package chord

import (
	"testing"

	"github.com/jsphweid/voicelead/model"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestCreateChordKey(t *testing.T) {
	notes := model.Notes{71, 55, 64, 60}

	assert := assert.New(t)
	assert.Equal("55-60-64-71", CreateChordKey(notes))
	// input is left alone
	assert.Equal(model.Notes{71, 55, 64, 60}, notes)
	assert.Equal("", CreateChordKey(nil))
}

func TestGetChords(t *testing.T) {
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	tr.Add(0, midi.NoteOn(0, 67, 100))
	tr.Add(480, midi.NoteOff(0, 64))
	tr.Add(0, midi.NoteOff(0, 67))
	tr.Add(0, midi.NoteOn(0, 65, 100))
	tr.Add(0, midi.NoteOn(0, 69, 100))
	// a note on with velocity 0 ends a note
	tr.Add(480, midi.NoteOn(0, 60, 0))
	tr.Add(0, midi.NoteOff(0, 65))
	tr.Add(0, midi.NoteOff(0, 69))
	tr.Close(0)

	s := smf.New()
	assert.NoError(t, s.Add(tr))

	assert.Equal(t, []model.Notes{{60, 64, 67}, {60, 65, 69}}, GetChords(s))
}
