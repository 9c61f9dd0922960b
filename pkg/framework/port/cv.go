package port

// CVPortEntry binds a routing index and the parameter driven by the CV
// signal to the engine port carrying it.
type CVPortEntry struct {
	RIndex uint32
	Param  uint32
	Port   CVPort
}

// CVData owns a plugin's CV ports for one direction.
type CVData struct {
	ports []CVPortEntry
}

// CreateNew allocates n entries. Single-shot: a populated container or
// n==0 makes this a safe no-op.
func (d *CVData) CreateNew(n uint32) {
	if d.ports != nil || n == 0 {
		return
	}
	d.ports = make([]CVPortEntry, n)
}

// Clear closes every owned port and resets to empty. Idempotent.
func (d *CVData) Clear() {
	for i := range d.ports {
		if d.ports[i].Port != nil {
			d.ports[i].Port.Close()
			d.ports[i].Port = nil
		}
	}
	d.ports = nil
}

// InitBuffers resets per-cycle state on every port. Real-time safe.
func (d *CVData) InitBuffers() {
	for i := range d.ports {
		if d.ports[i].Port != nil {
			d.ports[i].Port.InitBuffer()
		}
	}
}

// Count returns the number of entries.
func (d *CVData) Count() uint32 {
	return uint32(len(d.ports))
}

// At returns the entry at index i for binding during port setup.
func (d *CVData) At(i uint32) *CVPortEntry {
	if i >= uint32(len(d.ports)) {
		return nil
	}
	return &d.ports[i]
}
