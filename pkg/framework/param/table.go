package param

// Special marks parameter indices driven by host state instead of the
// normal parameter-set path.
type Special int32

const (
	// SpecialNone is an ordinary parameter.
	SpecialNone Special = iota
	// SpecialLatency reports the plugin's processing delay in frames.
	SpecialLatency
	// SpecialSampleRate reports the engine sample rate.
	SpecialSampleRate
	// SpecialFreewheel reports offline-rendering mode.
	SpecialFreewheel
	// SpecialTime reports transport time and position.
	SpecialTime
)

// ParamData owns a plugin's parameter tables. The data, ranges and
// optional special tables are allocated together and always share the same
// length.
type ParamData struct {
	data    []Data
	ranges  []Ranges
	special []Special
}

// CreateNew allocates n entries, with the special table only when asked
// for. Single-shot: a populated container or n==0 makes this a safe no-op.
func (p *ParamData) CreateNew(n uint32, withSpecial bool) {
	if p.data != nil || n == 0 {
		return
	}
	p.data = make([]Data, n)
	p.ranges = make([]Ranges, n)
	if withSpecial {
		p.special = make([]Special, n)
	}
	for i := range p.data {
		p.data[i].Index = -1
		p.data[i].RIndex = -1
		p.data[i].MidiCC = -1
	}
}

// Clear drops all tables. Idempotent.
func (p *ParamData) Clear() {
	p.data = nil
	p.ranges = nil
	p.special = nil
}

// Count returns the number of parameters.
func (p *ParamData) Count() uint32 {
	return uint32(len(p.data))
}

// DataAt returns the record at id, or nil when out of range.
func (p *ParamData) DataAt(id uint32) *Data {
	if id >= uint32(len(p.data)) {
		return nil
	}
	return &p.data[id]
}

// RangesAt returns the ranges at id, or nil when out of range.
func (p *ParamData) RangesAt(id uint32) *Ranges {
	if id >= uint32(len(p.ranges)) {
		return nil
	}
	return &p.ranges[id]
}

// SpecialAt returns the special binding at id. SpecialNone when the table
// was not allocated or id is out of range.
func (p *ParamData) SpecialAt(id uint32) Special {
	if p.special == nil || id >= uint32(len(p.special)) {
		return SpecialNone
	}
	return p.special[id]
}

// SetSpecial records a host-driven binding. No-op without a special table.
func (p *ParamData) SetSpecial(id uint32, s Special) {
	if p.special == nil || id >= uint32(len(p.special)) {
		return
	}
	p.special[id] = s
}

// FixedValue clamps v into the range at id, quantizing stepped parameters.
// Out-of-range ids return 0 without touching state; real callers check
// id < Count() first.
func (p *ParamData) FixedValue(id uint32, v float32) float32 {
	if id >= uint32(len(p.data)) {
		return 0
	}
	r := &p.ranges[id]
	if p.data[id].Hints&(HintInteger|HintBoolean|HintUsesScalePoints) != 0 {
		return r.Quantize(v)
	}
	return r.FixValue(v)
}
