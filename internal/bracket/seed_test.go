package bracket

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcBracketSize(t *testing.T) {
	testCases := []struct {
		count    int
		expected int
	}{
		{count: 0, expected: 0},
		{count: 1, expected: 1},
		{count: 2, expected: 2},
		{count: 3, expected: 4},
		{count: 5, expected: 8},
		{count: 16, expected: 16},
		{count: 17, expected: 32},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d entrants", tc.count), func(t *testing.T) {
			assert.Equal(t, tc.expected, BracketSize(tc.count))
		})
	}
}

func TestSeedOrder(t *testing.T) {
	testCases := []struct {
		name     string
		n        int
		expected []int
	}{
		{name: "1 entrant", n: 1, expected: []int{1}},
		{name: "2 entrants", n: 2, expected: []int{1, 2}},
		{name: "3 entrants", n: 3, expected: []int{1, 0, 3, 2}},
		{name: "4 entrants", n: 4, expected: []int{1, 4, 3, 2}},
		{name: "5 entrants", n: 5, expected: []int{1, 0, 5, 4, 3, 0, 0, 2}},
		{name: "8 entrants", n: 8, expected: []int{1, 8, 5, 4, 3, 6, 7, 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Seed(tc.n))
		})
	}
}

func TestSeedProperties(t *testing.T) {
	for n := 1; n <= 70; n++ {
		order := Seed(n)

		expectedLen := int(math.Pow(2, math.Ceil(math.Log2(float64(n)))))
		require.Len(t, order, expectedLen, "n=%d", n)

		seen := make(map[int]int)
		for _, s := range order {
			seen[s]++
		}
		for s := 1; s <= n; s++ {
			assert.Equal(t, 1, seen[s], "seed %d should appear once for n=%d", s, n)
		}
		assert.Equal(t, expectedLen-n, seen[0], "n=%d", n)

		// No first-round pair is two byes.
		for i := 0; i+1 < len(order); i += 2 {
			assert.False(t, order[i] == 0 && order[i+1] == 0, "n=%d slot %d", n, i)
		}

		// The top two seeds sit in opposite halves.
		if n >= 2 {
			half := len(order) / 2
			assert.Equal(t, 1, order[0])
			assert.Contains(t, order[half:], 2, "n=%d", n)
		}
	}
}

func TestSeedEmpty(t *testing.T) {
	assert.Empty(t, Seed(0))
}
