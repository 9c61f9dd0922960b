// Package host provides the protected per-plugin state aggregate and the
// synchronization protocol between the engine's real-time callback and the
// plugin's worker thread.
//
// Two locks rule everything here. The master lock guards whole-plugin
// reconfiguration: port geometry, parameter and program tables, activation
// and destruction. The single-iteration lock guards exactly one invocation
// of the processing path and is only ever try-acquired by the real-time
// thread; a skipped cycle is always preferable to a blocked audio thread.
package host

// CallbackKind identifies a host notification delivered through the
// engine's callback channel.
type CallbackKind int32

const (
	// CallbackDebug carries diagnostics, including real-time anomalies.
	CallbackDebug CallbackKind = iota
	// CallbackParameterValueChanged reports a new parameter value.
	CallbackParameterValueChanged
	// CallbackProgramChanged reports a new current program.
	CallbackProgramChanged
	// CallbackMidiProgramChanged reports a new current midi-program.
	CallbackMidiProgramChanged
	// CallbackNoteOn reports a note played by the plugin.
	CallbackNoteOn
	// CallbackNoteOff reports a note released by the plugin.
	CallbackNoteOff
	// CallbackError reports a user-visible failure with a readable message.
	CallbackError
)

// Engine is the host core's view of the surrounding audio engine.
// Callback delivery happens on the worker thread, never the real-time one.
type Engine interface {
	// Callback delivers a host-level notification.
	Callback(kind CallbackKind, pluginID uint32, value1, value2 int32, value3 float32, msg string)
	// SampleRate returns the engine sample rate.
	SampleRate() float64
	// BufferSize returns the fixed process block size in frames.
	BufferSize() uint32
}
