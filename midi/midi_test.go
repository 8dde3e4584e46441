package midi

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jsphweid/voicelead/chord"
	"github.com/jsphweid/voicelead/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

var voicings = []model.Notes{{62, 65, 69, 72}, {}, {59, 65, 67, 71}, {60, 64, 67, 71}}

func TestWriteVoicingFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voicings.mid")
	require.NoError(t, WriteVoicingFile(path, voicings, 120))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	assert.Equal(t, []model.Notes{{62, 65, 69, 72}, {59, 65, 67, 71}, {60, 64, 67, 71}}, chord.GetChords(s))
}

func TestWriteVoicingsKeepsBarsForRests(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVoicings(&buf, voicings, 90))

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)

	var total int64
	for _, evt := range s.Tracks[0] {
		total += int64(evt.Delta)
	}
	assert.Equal(t, int64(4*4*960), total)
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
}
