// Package param provides the parameter data model of a hosted plugin:
// per-index metadata, live ranges and the special bindings driven by host
// state rather than user input.
package param

// Hints describe parameter behavior.
type Hints uint32

const (
	// HintEnabled marks the parameter as usable.
	HintEnabled Hints = 1 << iota
	// HintAutomable allows automation to drive the parameter.
	HintAutomable
	// HintReadOnly marks output parameters the host may not set.
	HintReadOnly
	// HintBoolean restricts the value to min or max.
	HintBoolean
	// HintInteger restricts the value to whole steps.
	HintInteger
	// HintLogarithmic marks a log-scaled range.
	HintLogarithmic
	// HintUsesSampleRate marks values expressed relative to the sample rate.
	HintUsesSampleRate
	// HintUsesScalePoints marks parameters with discrete labeled values.
	HintUsesScalePoints
	// HintUsesCustomText marks parameters rendered by the plugin itself.
	HintUsesCustomText
)

// Data is the per-index parameter record.
type Data struct {
	// Index is the host-visible parameter id.
	Index int32
	// RIndex maps to the plugin's own parameter list.
	RIndex int32
	// Hints carry behavioral flags.
	Hints Hints
	// MidiChannel is the channel bound for MIDI control, 0-15.
	MidiChannel uint8
	// MidiCC is the bound controller, or -1 when unbound.
	MidiCC int16
}
