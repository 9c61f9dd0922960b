package host

import (
	"github.com/justyntemme/hostgo/pkg/dsp"
)

// ProcessPostOps applies the per-instance post-processing chain to the
// output buffers: dry/wet blend against the saved input signal, stereo
// balance and panning on the first output pair, then master volume.
// Runs inside the process iteration and never allocates; scratch must be
// one block long and comes from the caller.
func (p *Plugin) ProcessPostOps(outputs, dry [][]float32, scratch []float32) {
	pp := &p.PostProc

	if pp.DryWet != 1 && dry != nil {
		for i := range outputs {
			if i < len(dry) {
				dsp.Mix(outputs[i], dry[i], outputs[i], pp.DryWet)
			}
		}
	}

	if len(outputs) >= 2 {
		if pp.BalanceLeft != -1 || pp.BalanceRight != 1 {
			dsp.ApplyBalance(outputs[0], outputs[1], scratch, pp.BalanceLeft, pp.BalanceRight)
		}
		if pp.Panning != 0 {
			dsp.ApplyPanning(outputs[0], outputs[1], pp.Panning)
		}
	}

	dsp.ApplyVolume(outputs, pp.Volume)
}

// PushLatencyBuffers shifts the latency delay lines and appends the
// newest input block, keeping the most recent latency frames of each
// audio output's dry signal available for the dry/wet blend.
func (p *Plugin) PushLatencyBuffers(inputs [][]float32) {
	if p.latency == 0 {
		return
	}
	for i, lb := range p.latencyBuffers {
		if i >= len(inputs) {
			break
		}
		in := inputs[i]
		if uint32(len(in)) >= p.latency {
			dsp.Copy(lb, in[uint32(len(in))-p.latency:])
			continue
		}
		keep := p.latency - uint32(len(in))
		dsp.Copy(lb, lb[uint32(len(lb))-keep:])
		dsp.Copy(lb[keep:], in)
	}
}
