package midi

import (
	"sort"

	"github.com/jsphweid/fretdex/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// TimedNotes is what was sounding at Offset microseconds into the file, in
// the order the keys went down.
type TimedNotes struct {
	Offset int64
	Notes  model.Notes
}

type reducedEvent struct {
	offset    int64
	seq       int
	isNoteOff bool
	note      int
}

// ExtractChords lists every distinct set of held notes in time order. Events
// at the same instant are applied together, note offs first.
func ExtractChords(s *smf.SMF) []TimedNotes {
	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			msg := gomidi.Message(event.Message)
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				events = append(events, reducedEvent{offset: s.TimeAt(absTicks), seq: len(events), note: int(key)})
			case msg.GetNoteEnd(&channel, &key):
				events = append(events, reducedEvent{offset: s.TimeAt(absTicks), seq: len(events), isNoteOff: true, note: int(key)})
			}
		}
	}

	// prioritize smaller offset values then note off, then file order
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		if events[i].isNoteOff != events[j].isNoteOff {
			return events[i].isNoteOff
		}
		return events[i].seq < events[j].seq
	})

	var res []TimedNotes
	var pressed []int
	for i, evt := range events {
		if evt.isNoteOff {
			pressed = remove(pressed, evt.note)
		} else {
			pressed = append(pressed, evt.note)
		}

		last := i == len(events)-1 || events[i+1].offset != evt.offset
		if last && len(pressed) > 0 {
			notes := make(model.Notes, len(pressed))
			copy(notes, pressed)
			res = append(res, TimedNotes{Offset: evt.offset, Notes: notes})
		}
	}
	return res
}

func remove(s []int, note int) []int {
	for i, v := range s {
		if v == note {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
