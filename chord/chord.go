package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/voicelead/model"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

// CreateChordKey renders notes as "55-60-64-71", lowest first.
func CreateChordKey(notes model.Notes) string {
	sorted := slices.Clone(notes)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, note := range sorted {
		parts[i] = fmt.Sprintf("%v", note)
	}
	return strings.Join(parts, "-")
}

type reducedEvent struct {
	tick      int64
	isNoteOff bool
	note      uint8
}

func getChord(pressed map[uint8]bool) model.Notes {
	var notes model.Notes
	for note := range pressed {
		notes = append(notes, int(note))
	}
	slices.Sort(notes)
	return notes
}

// GetChords returns the notes sounding at every tick where a note starts,
// in time order.
func GetChords(s *smf.SMF) []model.Notes {
	var reducedEvents []reducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{tick: absTicks, isNoteOff: velocity == 0, note: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{tick: absTicks, isNoteOff: true, note: key})
			}
		}
	}

	// earlier ticks first, note offs before note ons
	slices.SortStableFunc(reducedEvents, func(a, b reducedEvent) bool {
		if a.tick != b.tick {
			return a.tick < b.tick
		}
		return a.isNoteOff && !b.isNoteOff
	})

	var chords []model.Notes
	pressed := make(map[uint8]bool)
	for i, evt := range reducedEvents {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = true
		}
		lastAtTick := i == len(reducedEvents)-1 || reducedEvents[i+1].tick != evt.tick
		if lastAtTick && !evt.isNoteOff && len(pressed) > 0 {
			chords = append(chords, getChord(pressed))
		}
	}
	return chords
}
