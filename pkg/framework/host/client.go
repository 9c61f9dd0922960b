package host

import "github.com/justyntemme/hostgo/pkg/framework/port"

// Client is the engine-side object representing one plugin instance in
// the audio graph. It creates the engine ports the plugin's containers
// own and controls graph activation.
type Client interface {
	// Activate inserts the client into the running graph.
	Activate() error
	// Deactivate removes the client from the running graph.
	Deactivate() error
	// IsActive reports graph membership.
	IsActive() bool
	// AddAudioPort creates an engine audio port owned by the caller.
	AddAudioPort(input bool, name string) (port.AudioPort, error)
	// AddCVPort creates an engine CV port owned by the caller.
	AddCVPort(input bool, name string) (port.CVPort, error)
	// AddEventPort creates an engine event port owned by the caller.
	AddEventPort(input bool, name string) (port.EventPort, error)
	// Close destroys the client. Called exactly once, during teardown,
	// after every port created through it has been closed.
	Close() error
}

// Backend is the plugin-format adapter behind a hosted instance. The core
// never parses plugin binaries; it sizes its containers from what the
// backend reports and moves values through this narrow surface.
type Backend interface {
	// ParameterValue reads the live value of a parameter.
	ParameterValue(id uint32) float32
	// SetParameterValue writes a parameter. Callers pass values already
	// clamped through the parameter tables.
	SetParameterValue(id uint32, value float32)
}
