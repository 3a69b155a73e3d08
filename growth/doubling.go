package growth

// DoublingPolicy grows capacity from c to 2*c + 1.
//
// The extra slot lets a list with zero capacity grow, and doubling keeps appends amortised O(1).
type DoublingPolicy struct{}

var _ Policy = (*DoublingPolicy)(nil)

func Doubling() *DoublingPolicy {
	return &DoublingPolicy{}
}

func (p *DoublingPolicy) Grow(capacity int) int {
	return 2*capacity + 1
}
