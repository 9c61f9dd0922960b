package program

// MidiProgram is one bank/program pair with its display name.
type MidiProgram struct {
	Bank    uint32
	Program uint32
	Name    string
}

// MidiProgramData is a plugin's MIDI-program table.
type MidiProgramData struct {
	data    []MidiProgram
	current int32
}

// NewMidiProgramData returns an empty table with no selection.
func NewMidiProgramData() *MidiProgramData {
	return &MidiProgramData{current: -1}
}

// CreateNew allocates n entries. Single-shot: a populated table or n==0
// makes this a safe no-op.
func (p *MidiProgramData) CreateNew(n uint32) {
	if p.data != nil || n == 0 {
		return
	}
	p.data = make([]MidiProgram, n)
}

// Clear drops all entries and the selection. Idempotent.
func (p *MidiProgramData) Clear() {
	p.data = nil
	p.current = -1
}

// Count returns the number of entries.
func (p *MidiProgramData) Count() uint32 {
	return uint32(len(p.data))
}

// Set stores an entry. Out-of-range indices are ignored.
func (p *MidiProgramData) Set(i uint32, mp MidiProgram) {
	if i >= uint32(len(p.data)) {
		return
	}
	p.data[i] = mp
}

// At returns the entry at i, zero for out-of-range indices.
func (p *MidiProgramData) At(i uint32) MidiProgram {
	if i >= uint32(len(p.data)) {
		return MidiProgram{}
	}
	return p.data[i]
}

// SetCurrent moves the cursor. Out-of-range indices other than -1 are
// rejected, leaving the cursor unchanged. Returns false on rejection.
func (p *MidiProgramData) SetCurrent(i int32) bool {
	if i != -1 && (i < 0 || i >= int32(len(p.data))) {
		return false
	}
	p.current = i
	return true
}

// Current returns the cursor position, -1 when nothing is selected.
func (p *MidiProgramData) Current() int32 {
	return p.current
}

// CurrentProgram returns the selected entry. ok is false when nothing is
// selected; callers must check Current() != -1 before relying on it.
func (p *MidiProgramData) CurrentProgram() (mp MidiProgram, ok bool) {
	if p.current < 0 || p.current >= int32(len(p.data)) {
		return MidiProgram{}, false
	}
	return p.data[p.current], true
}
