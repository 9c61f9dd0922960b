// Package event provides the cross-thread event queues of the host core:
// notes flowing into the real-time thread and postponed notifications
// flowing out of it.
//
// During a process cycle the real-time thread cannot lock for long,
// allocate, or call into UI/network code, so anything it wants to tell the
// host is queued here and played back later on the plugin's worker.
package event

import "fmt"

// PostKind identifies a postponed real-time event.
type PostKind int32

const (
	// PostNull is the zero value, never queued.
	PostNull PostKind = iota
	// PostDebug carries a diagnostic with no payload semantics.
	PostDebug
	// PostParameterChange carries param index, suppress-echo flag, value.
	PostParameterChange
	// PostProgramChange carries the new program index.
	PostProgramChange
	// PostMidiProgramChange carries the new midi-program index.
	PostMidiProgramChange
	// PostNoteOn carries channel, note and velocity.
	PostNoteOn
	// PostNoteOff carries channel and note.
	PostNoteOff
)

// String returns the kind name for diagnostics.
func (k PostKind) String() string {
	switch k {
	case PostNull:
		return "Null"
	case PostDebug:
		return "Debug"
	case PostParameterChange:
		return "ParameterChange"
	case PostProgramChange:
		return "ProgramChange"
	case PostMidiProgramChange:
		return "MidiProgramChange"
	case PostNoteOn:
		return "NoteOn"
	case PostNoteOff:
		return "NoteOff"
	default:
		return "Unknown"
	}
}

// PostEvent is a notification generated inside the real-time callback and
// handled later on the worker thread.
//
// For PostParameterChange, Value1 is the parameter index, Value2 non-zero
// means the change must not be echoed back through the host callback, and
// Value3 is the new value.
type PostEvent struct {
	Kind   PostKind
	Value1 int32
	Value2 int32
	Value3 float32
}

func (e PostEvent) String() string {
	return fmt.Sprintf("PostEvent{%s, %d, %d, %g}", e.Kind, e.Value1, e.Value2, e.Value3)
}

// Note is an external MIDI note entering the processing graph.
type Note struct {
	Channel  int8  // -1 means no channel
	Note     uint8 // 0 to 127
	Velocity uint8 // 0 means note-off
}
