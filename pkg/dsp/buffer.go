// Package dsp holds the buffer math used on the audio thread. Every
// function here works in place on caller-owned slices and never
// allocates.
package dsp

import "math"

// Clear zeroes a buffer.
func Clear(buf []float32) {
	for i := range buf {
		buf[i] = 0
	}
}

// Copy copies src into dst up to the shorter length.
func Copy(dst, src []float32) {
	copy(dst, src)
}

// Add accumulates src into dst up to the shorter length.
func Add(dst, src []float32) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] += src[i]
	}
}

// AddScaled accumulates src*gain into dst up to the shorter length.
func AddScaled(dst, src []float32, gain float32) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] += src[i] * gain
	}
}

// Scale multiplies every sample by gain.
func Scale(buf []float32, gain float32) {
	for i := range buf {
		buf[i] *= gain
	}
}

// Mix blends dry and wet into dst. wet=0 passes dry through, wet=1
// passes the processed signal through.
func Mix(dst, dry, processed []float32, wet float32) {
	n := min(len(dst), min(len(dry), len(processed)))
	inv := 1 - wet
	for i := 0; i < n; i++ {
		dst[i] = dry[i]*inv + processed[i]*wet
	}
}

// Peak returns the largest absolute sample value.
func Peak(buf []float32) float32 {
	peak := float32(0)
	for _, s := range buf {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

// RMS returns the root mean square of the buffer, 0 for an empty one.
func RMS(buf []float32) float32 {
	if len(buf) == 0 {
		return 0
	}
	sum := float32(0)
	for _, s := range buf {
		sum += s * s
	}
	return float32(math.Sqrt(float64(sum / float32(len(buf)))))
}
