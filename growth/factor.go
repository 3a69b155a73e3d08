package growth

import "math"

type FactorPolicy struct {
	factor  float64
	minStep int
}

var _ Policy = (*FactorPolicy)(nil)

func Factor(factor float64) *FactorPolicy {
	if factor <= 1 {
		panic("factor can't be <= 1")
	}
	return &FactorPolicy{
		factor:  factor,
		minStep: 1,
	}
}

// WithMinStep sets the minimum number of slots added by a single growth. It matters for small
// capacities, where c*factor rounds to barely more than c.
func (p *FactorPolicy) WithMinStep(step int) *FactorPolicy {
	if step < 1 {
		panic("min step can't be < 1")
	}
	p.minStep = step
	return p
}

func (p *FactorPolicy) Grow(capacity int) int {
	grown := int(math.Ceil(float64(capacity) * p.factor))
	return max(grown, capacity+p.minStep)
}
