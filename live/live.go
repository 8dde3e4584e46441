// Package live turns held MIDI keys into voiced chords for the listen command.
package live

import (
	"log"
	"sync"

	"github.com/jsphweid/voicelead/constants"
	"github.com/jsphweid/voicelead/model"
	"github.com/jsphweid/voicelead/solver"
	"github.com/jsphweid/voicelead/tones"
	"github.com/jsphweid/voicelead/util"
	"github.com/jsphweid/voicelead/voicing"
	"gitlab.com/gomidi/midi/v2"
)

type Voicer struct {
	// Lead voices each chord close to the previous one.
	Lead bool
	// Register keeps voicings inside the style's register.
	Register bool

	mu       sync.Mutex
	held     map[uint8]bool
	sounding model.Notes
	previous model.Notes
	style    model.Style
	send     func(msg midi.Message) error
}

func NewVoicer(style model.Style, send func(msg midi.Message) error) *Voicer {
	return &Voicer{held: make(map[uint8]bool), style: style, send: send}
}

func (v *Voicer) Press(key uint8) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.held[key] = true
}

func (v *Voicer) Release(key uint8) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.held, key)
}

// Sounding returns the notes currently playing.
func (v *Voicer) Sounding() model.Notes {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append(model.Notes(nil), v.sounding...)
}

// Revoice silences the sounding chord and plays the held keys in the
// voicer's style.
func (v *Voicer) Revoice() {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, n := range v.sounding {
		v.emit(midi.NoteOff(0, uint8(n)))
	}
	v.sounding = nil

	c, ok := tones.FromNotes(util.GetKeys(v.held))
	if !ok {
		return
	}
	notes := voicing.Apply(v.style, c)
	if v.Register {
		notes = voicing.ConstrainToRegister(notes, v.style)
	}
	if v.Lead {
		notes = solver.Follow(v.previous, notes)
	}
	for _, n := range notes {
		v.emit(midi.NoteOn(0, uint8(n), constants.DefaultVelocity))
	}
	v.sounding = notes
	v.previous = notes
}

func (v *Voicer) emit(msg midi.Message) {
	if err := v.send(msg); err != nil {
		log.Printf("[ERROR] could not send %v: %v", msg, err)
	}
}
