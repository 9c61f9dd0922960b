package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessPostOpsDefaultsPassThrough(t *testing.T) {
	eng := &mockEngine{}
	p := New(eng, 1)

	out := [][]float32{{0.5, 0.5}, {-0.5, -0.5}}
	dry := [][]float32{{1, 1}, {1, 1}}
	scratch := make([]float32, 2)

	p.ProcessPostOps(out, dry, scratch)
	assert.InDelta(t, 0.5, out[0][0], 1e-6)
	assert.InDelta(t, -0.5, out[1][0], 1e-6)
}

func TestProcessPostOpsDryWetAndVolume(t *testing.T) {
	eng := &mockEngine{}
	p := New(eng, 1)
	p.PostProc.DryWet = 0.5
	p.PostProc.Volume = 0.5

	out := [][]float32{{0, 0}, {0, 0}}
	dry := [][]float32{{1, 1}, {1, 1}}
	scratch := make([]float32, 2)

	// Blend of silence and unity dry at 0.5 gives 0.5, halved by volume.
	p.ProcessPostOps(out, dry, scratch)
	assert.InDelta(t, 0.25, out[0][0], 1e-6)
	assert.InDelta(t, 0.25, out[1][1], 1e-6)
}

func TestProcessPostOpsBalance(t *testing.T) {
	eng := &mockEngine{}
	p := New(eng, 1)
	p.PostProc.BalanceLeft = -1
	p.PostProc.BalanceRight = -1

	out := [][]float32{{0.5}, {0.25}}
	scratch := make([]float32, 1)

	p.ProcessPostOps(out, nil, scratch)
	assert.InDelta(t, 0.75, out[0][0], 1e-6)
	assert.InDelta(t, 0, out[1][0], 1e-6)
}

func TestPushLatencyBuffers(t *testing.T) {
	eng := &mockEngine{}
	p := New(eng, 1)
	c := &mockClient{}
	buildPorts(t, p, c)

	p.SetLatency(4)
	p.RecreateLatencyBuffers()

	// A block longer than the latency keeps only its tail.
	p.PushLatencyBuffers([][]float32{{1, 2, 3, 4, 5, 6}, {0, 0, 0, 0, 0, 0}})
	assert.Equal(t, []float32{3, 4, 5, 6}, p.LatencyBuffer(0))

	// A short block shifts the line and appends.
	p.PushLatencyBuffers([][]float32{{7, 8}, {0, 0}})
	assert.Equal(t, []float32{5, 6, 7, 8}, p.LatencyBuffer(0))
}
