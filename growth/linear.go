package growth

// LinearPolicy grows capacity by a fixed number of slots.
//
// Appends become O(n) amortised, so it only fits lists whose final size is known to be small or
// that are pre-sized with EnsureCapacity.
type LinearPolicy struct {
	step int
}

var _ Policy = (*LinearPolicy)(nil)

func Linear(step int) *LinearPolicy {
	if step < 1 {
		panic("step can't be < 1")
	}
	return &LinearPolicy{
		step: step,
	}
}

func (p *LinearPolicy) Grow(capacity int) int {
	return capacity + p.step
}
