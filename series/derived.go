package series

import (
	"fmt"
	"time"
)

// Derived is a numeric series aligned 1:1 with the timestamps of the input
// Series it was computed from. Warm-up positions at the head remain
// undefined; every derived series is full-length so downstream alignment
// checks stay trivial.
type Derived struct {
	name    string
	times   []time.Time
	values  []float64
	defined []bool
}

// NewDerived returns an all-undefined derived series over the given
// timestamps. The times slice is retained; callers pass a fresh copy
// (Series.Times already does).
func NewDerived(name string, times []time.Time) *Derived {
	return &Derived{
		name:    name,
		times:   times,
		values:  make([]float64, len(times)),
		defined: make([]bool, len(times)),
	}
}

// Name returns a stable identifier like "SMA(20)" or "RSI(14)".
func (d *Derived) Name() string { return d.name }

// Len returns the number of positions (equal to the source series length).
func (d *Derived) Len() int { return len(d.times) }

// Time returns the timestamp at index i.
func (d *Derived) Time(i int) time.Time { return d.times[i] }

// Set defines the value at index i.
func (d *Derived) Set(i int, v float64) {
	d.values[i] = v
	d.defined[i] = true
}

// At returns the value at index i and whether it is defined.
func (d *Derived) At(i int) (float64, bool) {
	return d.values[i], d.defined[i]
}

// Defined reports whether position i carries a value.
func (d *Derived) Defined(i int) bool { return d.defined[i] }

// FirstDefined returns the index of the first defined position, or -1 when
// the series is entirely undefined.
func (d *Derived) FirstDefined() int {
	for i, ok := range d.defined {
		if ok {
			return i
		}
	}
	return -1
}

// DefinedCount returns how many positions carry a value.
func (d *Derived) DefinedCount() int {
	n := 0
	for _, ok := range d.defined {
		if ok {
			n++
		}
	}
	return n
}

// Align verifies that all derived series share one common timestamp index.
// It returns ErrAlignment naming the first mismatch.
func Align(ds ...*Derived) error {
	if len(ds) < 2 {
		return nil
	}
	ref := ds[0]
	for _, d := range ds[1:] {
		if d.Len() != ref.Len() {
			return fmt.Errorf("%w: %s has %d positions, %s has %d",
				ErrAlignment, d.name, d.Len(), ref.name, ref.Len())
		}
		for i := range d.times {
			if !d.times[i].Equal(ref.times[i]) {
				return fmt.Errorf("%w: %s and %s differ at position %d",
					ErrAlignment, d.name, ref.name, i)
			}
		}
	}
	return nil
}
