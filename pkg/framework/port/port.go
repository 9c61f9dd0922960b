// Package port provides the typed port collections a plugin instance owns:
// audio, CV and event ports, each pairing the plugin's own port index with
// the engine-level port object backing it.
//
// Containers are single-shot: CreateNew may run once while empty, Clear
// destroys every owned port and is idempotent, InitBuffers runs at the top
// of every process cycle and never allocates. All three are called only
// under the plugin's master lock except InitBuffers, which the real-time
// thread calls on a geometry that was fully constructed before it could
// acquire the single-iteration lock.
package port

// AudioPort is an engine-level audio port owned by a container.
type AudioPort interface {
	// InitBuffer resets per-cycle scratch state. Real-time safe.
	InitBuffer()
	// Buffer exposes the sample buffer for the current cycle.
	Buffer() []float32
	// Close destroys the engine object. Called exactly once, by Clear.
	Close()
}

// CVPort is an engine-level control-voltage port.
type CVPort interface {
	InitBuffer()
	Buffer() []float32
	Close()
}

// EventPort is an engine-level event port.
type EventPort interface {
	InitBuffer()
	Close()
}

// AudioPortEntry binds a routing index into the plugin's own port list to
// the engine port carrying it.
type AudioPortEntry struct {
	RIndex uint32
	Port   AudioPort
}

// AudioData owns a plugin's audio ports for one direction.
type AudioData struct {
	ports []AudioPortEntry
}

// CreateNew allocates n entries. Single-shot: a populated container or
// n==0 makes this a safe no-op.
func (d *AudioData) CreateNew(n uint32) {
	if d.ports != nil || n == 0 {
		return
	}
	d.ports = make([]AudioPortEntry, n)
}

// Clear closes every owned port and resets to empty. Idempotent.
func (d *AudioData) Clear() {
	for i := range d.ports {
		if d.ports[i].Port != nil {
			d.ports[i].Port.Close()
			d.ports[i].Port = nil
		}
	}
	d.ports = nil
}

// InitBuffers resets per-cycle state on every port. Real-time safe.
func (d *AudioData) InitBuffers() {
	for i := range d.ports {
		if d.ports[i].Port != nil {
			d.ports[i].Port.InitBuffer()
		}
	}
}

// Count returns the number of entries.
func (d *AudioData) Count() uint32 {
	return uint32(len(d.ports))
}

// At returns the entry at index i for binding during port setup.
func (d *AudioData) At(i uint32) *AudioPortEntry {
	if i >= uint32(len(d.ports)) {
		return nil
	}
	return &d.ports[i]
}
