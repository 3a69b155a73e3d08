package arraylist

// GrowthPolicy computes the capacity a list reallocates to once its current capacity is
// exhausted. One policy may be shared by many lists. See the growth package for implementations.
type GrowthPolicy interface {
	Grow(capacity int) int
}
