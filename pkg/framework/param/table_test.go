package param

import (
	"testing"
)

func TestCreateNewAllocatesTogether(t *testing.T) {
	var p ParamData

	p.CreateNew(3, true)
	if p.Count() != 3 {
		t.Fatalf("expected count 3, got %d", p.Count())
	}
	for i := uint32(0); i < 3; i++ {
		if p.SpecialAt(i) != SpecialNone {
			t.Errorf("index %d: expected SpecialNone default", i)
		}
		if p.DataAt(i).MidiCC != -1 {
			t.Errorf("index %d: expected MidiCC -1 default", i)
		}
	}

	// Double create is a no-op.
	p.CreateNew(10, false)
	if p.Count() != 3 {
		t.Errorf("expected count unchanged after double create, got %d", p.Count())
	}

	p.Clear()
	if p.Count() != 0 {
		t.Errorf("expected count 0 after clear, got %d", p.Count())
	}
	p.Clear() // idempotent
}

func TestCreateNewWithoutSpecial(t *testing.T) {
	var p ParamData
	p.CreateNew(2, false)

	if p.SpecialAt(0) != SpecialNone {
		t.Error("missing special table must read as SpecialNone")
	}
	p.SetSpecial(0, SpecialLatency) // no table, silently ignored
	if p.SpecialAt(0) != SpecialNone {
		t.Error("SetSpecial without table must be a no-op")
	}
}

func TestSpecialBinding(t *testing.T) {
	var p ParamData
	p.CreateNew(2, true)

	p.SetSpecial(1, SpecialSampleRate)
	if p.SpecialAt(1) != SpecialSampleRate {
		t.Error("special binding lost")
	}
	if p.SpecialAt(0) != SpecialNone {
		t.Error("unrelated index changed")
	}
	if p.SpecialAt(5) != SpecialNone {
		t.Error("out-of-range index must read as SpecialNone")
	}
}

func TestFixedValueClamps(t *testing.T) {
	var p ParamData
	p.CreateNew(1, false)
	*p.RangesAt(0) = Ranges{Def: 0, Min: -1, Max: 1, Step: 0.01}

	tests := []struct {
		in, want float32
	}{
		{0.5, 0.5},
		{-5, -1},
		{5, 1},
		{1, 1},
		{-1, -1},
	}
	for _, tt := range tests {
		if got := p.FixedValue(0, tt.in); got != tt.want {
			t.Errorf("FixedValue(0, %g): expected %g, got %g", tt.in, tt.want, got)
		}
	}
}

func TestFixedValueOutOfRange(t *testing.T) {
	var p ParamData
	p.CreateNew(2, false)
	*p.RangesAt(0) = Ranges{Min: 0, Max: 10}

	if got := p.FixedValue(7, 5); got != 0 {
		t.Errorf("expected 0 for out-of-range id, got %g", got)
	}
	// State untouched.
	if p.Count() != 2 {
		t.Errorf("count changed: %d", p.Count())
	}
}

func TestFixedValueQuantizesSteppedParams(t *testing.T) {
	var p ParamData
	p.CreateNew(1, false)
	p.DataAt(0).Hints = HintEnabled | HintInteger
	*p.RangesAt(0) = Ranges{Min: 0, Max: 10, Step: 1}

	tests := []struct {
		in, want float32
	}{
		{3.2, 3},
		{3.7, 4},
		{-2, 0},
		{12, 10},
	}
	for _, tt := range tests {
		if got := p.FixedValue(0, tt.in); got != tt.want {
			t.Errorf("FixedValue(0, %g): expected %g, got %g", tt.in, tt.want, got)
		}
	}
}

func TestRangesNormalized(t *testing.T) {
	r := Ranges{Min: -1, Max: 1}

	if got := r.Normalized(0); got != 0.5 {
		t.Errorf("expected 0.5, got %g", got)
	}
	if got := r.Normalized(-3); got != 0 {
		t.Errorf("expected clamp to 0, got %g", got)
	}
	if got := r.Unnormalized(0.75); got != 0.5 {
		t.Errorf("expected 0.5, got %g", got)
	}

	degenerate := Ranges{Min: 1, Max: 1}
	if got := degenerate.Normalized(1); got != 0 {
		t.Errorf("degenerate range must normalize to 0, got %g", got)
	}
}

func TestFixDefault(t *testing.T) {
	r := Ranges{Def: 20, Min: 0, Max: 10}
	r.FixDefault()
	if r.Def != 10 {
		t.Errorf("expected default clamped to 10, got %g", r.Def)
	}
}
