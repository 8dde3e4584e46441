package live

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/jsphweid/voicelead/model"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
)

type recorder struct {
	ons, offs []uint8
	err       error
}

func (r *recorder) send(msg midi.Message) error {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		r.ons = append(r.ons, key)
	case msg.GetNoteEnd(&ch, &key):
		r.offs = append(r.offs, key)
	}
	return r.err
}

func TestRevoice(t *testing.T) {
	r := &recorder{}
	v := NewVoicer(model.Drop2, r.send)
	for _, key := range []uint8{60, 64, 67, 71} {
		v.Press(key)
	}
	v.Revoice()

	assert := assert.New(t)
	assert.Equal(model.Notes{55, 60, 64, 71}, v.Sounding())
	assert.Equal([]uint8{55, 60, 64, 71}, r.ons)
	assert.Empty(r.offs)

	for _, key := range []uint8{60, 64, 67, 71} {
		v.Release(key)
	}
	v.Revoice()
	assert.Empty(v.Sounding())
	assert.Equal([]uint8{55, 60, 64, 71}, r.offs)
}

func TestRevoiceLogsEverySendFailure(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	r := &recorder{err: errors.New("port closed")}
	v := NewVoicer(model.Close, r.send)
	for _, key := range []uint8{60, 64, 67} {
		v.Press(key)
	}
	v.Revoice()
	assert.Equal(t, 3, strings.Count(buf.String(), "[ERROR]"))

	// three note offs and three note ons
	v.Revoice()
	assert.Equal(t, 9, strings.Count(buf.String(), "[ERROR]"))
	assert.Len(t, r.offs, 3)
}
