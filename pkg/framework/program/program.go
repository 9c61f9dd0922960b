// Package program provides the program and MIDI-program name tables of a
// hosted plugin, each with a current-selection cursor where -1 means no
// selection.
package program

// ProgramData is a plugin's program name table.
type ProgramData struct {
	names   []string
	current int32
}

// NewProgramData returns an empty table with no selection.
func NewProgramData() *ProgramData {
	return &ProgramData{current: -1}
}

// CreateNew allocates n name slots. Single-shot: a populated table or n==0
// makes this a safe no-op.
func (p *ProgramData) CreateNew(n uint32) {
	if p.names != nil || n == 0 {
		return
	}
	p.names = make([]string, n)
}

// Clear drops all names and the selection. Idempotent.
func (p *ProgramData) Clear() {
	p.names = nil
	p.current = -1
}

// Count returns the number of programs.
func (p *ProgramData) Count() uint32 {
	return uint32(len(p.names))
}

// SetName stores a program name. Out-of-range indices are ignored.
func (p *ProgramData) SetName(i uint32, name string) {
	if i >= uint32(len(p.names)) {
		return
	}
	p.names[i] = name
}

// Name returns the name at i, empty for out-of-range indices.
func (p *ProgramData) Name(i uint32) string {
	if i >= uint32(len(p.names)) {
		return ""
	}
	return p.names[i]
}

// SetCurrent moves the cursor. Out-of-range indices other than -1 are
// rejected, leaving the cursor unchanged. Returns false on rejection.
func (p *ProgramData) SetCurrent(i int32) bool {
	if i != -1 && (i < 0 || i >= int32(len(p.names))) {
		return false
	}
	p.current = i
	return true
}

// Current returns the cursor position, -1 when nothing is selected.
func (p *ProgramData) Current() int32 {
	return p.current
}

// CurrentName returns the selected program name. ok is false when nothing
// is selected; callers must check Current() != -1 before relying on the
// name.
func (p *ProgramData) CurrentName() (name string, ok bool) {
	if p.current < 0 || p.current >= int32(len(p.names)) {
		return "", false
	}
	return p.names[p.current], true
}
