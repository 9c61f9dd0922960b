package host

// OSCData holds the remote OSC connection endpoints of a plugin UI or
// bridge. Wire encoding and the session loop live outside the core; the
// aggregate only owns the storage and clears it during teardown.
type OSCData struct {
	// Source is the remote address the plugin registered from.
	Source string
	// TargetTCP is the address host notifications are sent to over TCP.
	TargetTCP string
	// TargetUDP is the address host notifications are sent to over UDP.
	TargetUDP string
}

// Valid reports whether any target endpoint is registered.
func (o *OSCData) Valid() bool {
	return o.TargetTCP != "" || o.TargetUDP != ""
}

// Clear forgets the registered endpoints.
func (o *OSCData) Clear() {
	o.Source = ""
	o.TargetTCP = ""
	o.TargetUDP = ""
}
