package rtlist

import (
	"testing"
)

func TestPoolExhaustion(t *testing.T) {
	p := NewPool[int](4)
	l := NewList(p)

	for i := 0; i < 4; i++ {
		if !l.Append(i) {
			t.Fatalf("append %d: pool exhausted too early", i)
		}
	}
	if l.Append(99) {
		t.Error("expected append to fail on exhausted pool")
	}
	if p.Available() != 0 {
		t.Errorf("expected 0 available, got %d", p.Available())
	}

	var got []int
	l.Drain(func(v int) { got = append(got, v) })

	want := []int{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: expected %d, got %d", i, want[i], got[i])
		}
	}
	if p.Available() != 4 {
		t.Errorf("expected 4 available after drain, got %d", p.Available())
	}
}

func TestListFIFO(t *testing.T) {
	p := NewPool[string](8)
	l := NewList(p)

	inputs := []string{"a", "b", "c", "d", "e"}
	for _, s := range inputs {
		l.Append(s)
	}
	if l.Len() != len(inputs) {
		t.Errorf("expected len %d, got %d", len(inputs), l.Len())
	}

	i := 0
	l.Drain(func(v string) {
		if v != inputs[i] {
			t.Errorf("position %d: expected %q, got %q", i, inputs[i], v)
		}
		i++
	})
	if l.Len() != 0 {
		t.Errorf("expected empty list after drain, got len %d", l.Len())
	}
}

func TestNodeReuse(t *testing.T) {
	p := NewPool[int](2)
	l := NewList(p)

	// Cycle through the pool several times its capacity.
	for round := 0; round < 10; round++ {
		l.Append(round)
		l.Append(round + 100)
		count := 0
		l.Drain(func(int) { count++ })
		if count != 2 {
			t.Fatalf("round %d: expected 2 values, got %d", round, count)
		}
	}
}

func TestSpliceTo(t *testing.T) {
	p := NewPool[int](8)
	src := NewList(p)
	dst := NewList(p)

	dst.Append(1)
	dst.Append(2)
	src.Append(3)
	src.Append(4)

	src.SpliceTo(dst)

	if src.Len() != 0 {
		t.Errorf("expected source empty after splice, got len %d", src.Len())
	}
	if dst.Len() != 4 {
		t.Errorf("expected dest len 4, got %d", dst.Len())
	}

	var got []int
	dst.Drain(func(v int) { got = append(got, v) })
	want := []int{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestSpliceEmpty(t *testing.T) {
	p := NewPool[int](4)
	src := NewList(p)
	dst := NewList(p)

	dst.Append(7)
	src.SpliceTo(dst)

	if dst.Len() != 1 {
		t.Errorf("expected dest unchanged, got len %d", dst.Len())
	}
}

func TestClear(t *testing.T) {
	p := NewPool[int](4)
	l := NewList(p)

	l.Append(1)
	l.Append(2)
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("expected empty list, got len %d", l.Len())
	}
	if p.Available() != 4 {
		t.Errorf("expected all nodes back in pool, got %d", p.Available())
	}

	// Clearing twice is a no-op.
	l.Clear()
	if p.Available() != 4 {
		t.Errorf("double clear changed pool state: %d", p.Available())
	}
}
