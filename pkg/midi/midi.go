// Package midi bridges hardware MIDI input into the host's lossy note
// queues. A Source listens on a gomidi input port and translates note
// messages into event.Note values; everything else on the wire is
// ignored here and left to the engine's event ports.
package midi

import (
	"gitlab.com/gomidi/midi/v2"

	"github.com/justyntemme/hostgo/pkg/framework/event"
)

// Sink receives translated notes. event.NoteQueue satisfies this; Append
// reports false when the note was dropped.
type Sink interface {
	Append(n event.Note) bool
}

// Translate converts a wire message into a note. Note-off arrives as
// velocity zero, matching the queue convention. The second return is
// false for anything that is not a note message.
func Translate(msg midi.Message) (event.Note, bool) {
	var ch, key, vel uint8
	if msg.GetNoteStart(&ch, &key, &vel) {
		return event.Note{Channel: int8(ch), Note: key, Velocity: vel}, true
	}
	if msg.GetNoteEnd(&ch, &key) {
		return event.Note{Channel: int8(ch), Note: key, Velocity: 0}, true
	}
	return event.Note{}, false
}
