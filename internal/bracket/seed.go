package bracket

import "math"

// Gets the nearest power of 2 while rounding up, so with input 5 it returns 8 and so on
func BracketSize(count int) int {
	if count <= 0 {
		return 0
	}

	// Log2 -> Ceil -> 2^^log2 to round up
	log2 := math.Ceil(math.Log2(float64(count)))
	return int(math.Pow(2, log2))
}

// Seed returns the slot order for n entrants. Every seed e of the half-size
// bracket is paired with size+1-e; odd pairs are mirrored so the bottom half
// reads 1,4,3,2 rather than 1,4,2,3. Seeds above n become 0 (a bye).
func Seed(n int) []int {
	if n <= 0 {
		return []int{}
	}

	order := []int{1}
	for len(order) < n {
		size := len(order) * 2
		next := make([]int, 0, size)

		for i, s := range order {
			high, low := s, size+1-s
			if i%2 == 1 {
				high, low = low, high
			}
			next = append(next, high, low)
		}
		order = next
	}

	for i, s := range order {
		if s > n {
			order[i] = 0
		}
	}
	return order
}
