// This package contains the main [Policy] interface and several implementations.
package growth

// Policy defines how a list computes its next capacity once the current one is exhausted.
//
// Implementations must be deterministic and free of side effects, since one instance may be
// shared by many lists.
type Policy interface {
	// Grow returns the capacity to reallocate to from the given capacity.
	//
	// The list always takes the maximum of the returned value and the capacity it actually needs,
	// so returning a value <= capacity is safe but defeats amortisation.
	Grow(capacity int) int
}
