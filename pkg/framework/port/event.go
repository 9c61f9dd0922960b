package port

// EventData owns a plugin's event ports, one per direction.
type EventData struct {
	In  EventPort
	Out EventPort
}

// Clear closes both ports. Idempotent.
func (d *EventData) Clear() {
	if d.In != nil {
		d.In.Close()
		d.In = nil
	}
	if d.Out != nil {
		d.Out.Close()
		d.Out = nil
	}
}

// InitBuffers resets per-cycle state on both ports. Real-time safe.
func (d *EventData) InitBuffers() {
	if d.In != nil {
		d.In.InitBuffer()
	}
	if d.Out != nil {
		d.Out.InitBuffer()
	}
}
