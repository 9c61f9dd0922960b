package host

import (
	"github.com/justyntemme/hostgo/pkg/framework/state"
)

// SaveSnapshot captures the instance into a serializable image. Master
// lock held by caller, so every table read here is internally consistent.
func (p *Plugin) SaveSnapshot() *state.Snapshot {
	s := state.NewSnapshot()
	s.Name = p.name
	s.Label = p.identifier
	s.Binary = p.filename
	s.Active = p.active
	s.DryWet = p.PostProc.DryWet
	s.Volume = p.PostProc.Volume
	s.BalanceLeft = p.PostProc.BalanceLeft
	s.BalanceRight = p.PostProc.BalanceRight
	s.Panning = p.PostProc.Panning
	s.CtrlChannel = p.ctrlChannel

	s.CurrentProgramIndex = p.Prog.Current()
	if name, ok := p.Prog.CurrentName(); ok {
		s.CurrentProgramName = name
	}
	if mp, ok := p.MidiProg.CurrentProgram(); ok {
		s.CurrentMidiBank = int32(mp.Bank)
		s.CurrentMidiProgram = int32(mp.Program)
	}

	count := p.Param.Count()
	if count > 0 && p.backend != nil {
		s.Parameters = make([]state.ParameterState, 0, count)
		for i := uint32(0); i < count; i++ {
			d := p.Param.DataAt(i)
			s.Parameters = append(s.Parameters, state.ParameterState{
				Index:       d.Index,
				Value:       p.backend.ParameterValue(i),
				MidiChannel: d.MidiChannel,
				MidiCC:      d.MidiCC,
			})
		}
	}

	s.CustomData = p.Custom.All()
	return s
}

// RestoreSnapshot re-applies a saved image. Master lock held by caller.
// Values pass through the parameter ranges before reaching the backend,
// and out-of-range program selections are dropped rather than applied.
func (p *Plugin) RestoreSnapshot(s *state.Snapshot) {
	p.PostProc.DryWet = s.DryWet
	p.PostProc.Volume = s.Volume
	p.PostProc.BalanceLeft = s.BalanceLeft
	p.PostProc.BalanceRight = s.BalanceRight
	p.PostProc.Panning = s.Panning
	p.ctrlChannel = s.CtrlChannel

	if p.backend != nil {
		count := p.Param.Count()
		for _, ps := range s.Parameters {
			if ps.Index < 0 || uint32(ps.Index) >= count {
				continue
			}
			id := uint32(ps.Index)
			p.backend.SetParameterValue(id, p.Param.FixedValue(id, ps.Value))
			d := p.Param.DataAt(id)
			d.MidiChannel = ps.MidiChannel
			d.MidiCC = ps.MidiCC
		}
	}

	p.Prog.SetCurrent(s.CurrentProgramIndex)
	if s.CurrentMidiBank >= 0 && s.CurrentMidiProgram >= 0 {
		for i := uint32(0); i < p.MidiProg.Count(); i++ {
			mp := p.MidiProg.At(i)
			if mp.Bank == uint32(s.CurrentMidiBank) && mp.Program == uint32(s.CurrentMidiProgram) {
				p.MidiProg.SetCurrent(int32(i))
				break
			}
		}
	}

	for _, cd := range s.CustomData {
		if cd.Valid() {
			p.Custom.Set(cd)
		}
	}
}
