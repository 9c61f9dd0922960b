package param

import "math"

// Ranges holds the live value bounds of one parameter.
type Ranges struct {
	Def       float32
	Min       float32
	Max       float32
	Step      float32
	StepSmall float32
	StepLarge float32
}

// FixDefault clamps the default into [Min, Max].
func (r *Ranges) FixDefault() {
	r.Def = r.FixValue(r.Def)
}

// FixValue clamps v into [Min, Max].
func (r *Ranges) FixValue(v float32) float32 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Quantize clamps v and snaps it to the nearest step from Min.
func (r *Ranges) Quantize(v float32) float32 {
	v = r.FixValue(v)
	if r.Step <= 0 {
		return v
	}
	steps := math.Round(float64(v-r.Min) / float64(r.Step))
	return r.FixValue(r.Min + float32(steps)*r.Step)
}

// Normalized maps v into 0-1 over the range, clamped.
func (r *Ranges) Normalized(v float32) float32 {
	if r.Max <= r.Min {
		return 0
	}
	n := (v - r.Min) / (r.Max - r.Min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// Unnormalized maps a 0-1 value back into the range.
func (r *Ranges) Unnormalized(n float32) float32 {
	return r.Min + n*(r.Max-r.Min)
}
