package growth_test

import (
	"testing"

	"github.com/teenjuna/arraylist/internal/testing/require"
)

func run(t *testing.T, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		t.Helper()
		t.Parallel()
		fn(t)
	})
}

type growCase struct {
	capacity int
	expected int
}

func expectGrowth(t *testing.T, grow func(int) int, cases ...growCase) {
	t.Helper()
	for _, c := range cases {
		require.Equal(t, grow(c.capacity), c.expected)
	}
}
