package dsp

// Post-processing stages applied to plugin output after the plugin has
// run: dry/wet blend, stereo balance, then volume. All in place, no
// allocations; scratch buffers come from the caller.

// ApplyBalance rebalances a stereo pair. balanceLeft and balanceRight
// range -1 (hard left) to 1 (hard right); the neutral pair is (-1, 1).
// scratch must be at least as long as left and holds a copy of the
// pre-balance left channel while the right channel is rewritten.
func ApplyBalance(left, right, scratch []float32, balanceLeft, balanceRight float32) {
	n := min(len(left), min(len(right), len(scratch)))
	rangeL := (balanceLeft + 1) / 2
	rangeR := (balanceRight + 1) / 2
	for i := 0; i < n; i++ {
		scratch[i] = left[i]
		left[i] = scratch[i]*(1-rangeL) + right[i]*(1-rangeR)
		right[i] = right[i]*rangeR + scratch[i]*rangeL
	}
}

// ApplyPanning pans a stereo pair. pan ranges -1 (left) to 1 (right);
// 0 leaves both channels untouched.
func ApplyPanning(left, right []float32, pan float32) {
	switch {
	case pan > 0:
		Scale(left, 1-pan)
	case pan < 0:
		Scale(right, 1+pan)
	}
}

// ApplyVolume scales every channel by the master volume.
func ApplyVolume(channels [][]float32, volume float32) {
	if volume == 1 {
		return
	}
	for _, ch := range channels {
		Scale(ch, volume)
	}
}
