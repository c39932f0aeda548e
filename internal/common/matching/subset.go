package matching

import (
	"math/bits"
)

// maxBucketBits is the hard ceiling on bucket size, a subset is a uint64 mask.
const maxBucketBits = 64

// searchSubsets calls fn with every k-element subset of vals whose sum lies
// in [lo, hi]. vals must be sorted ascending; bit i of mask selects vals[i].
// Enumeration is depth first with bounds from the k smallest and k largest
// remaining values.
func searchSubsets(vals []int64, k int, lo, hi int64, fn func(mask uint64, sum int64)) {
	n := len(vals)
	if k <= 0 || k > n || n > maxBucketBits || lo > hi {
		return
	}

	prefix := make([]int64, n+1)
	for i, v := range vals {
		prefix[i+1] = prefix[i] + v
	}

	var walk func(start, remaining int, sum int64, mask uint64)
	walk = func(start, remaining int, sum int64, mask uint64) {
		if remaining == 0 {
			if sum >= lo && sum <= hi {
				fn(mask, sum)
			}
			return
		}
		if sum+prefix[n]-prefix[n-remaining] < lo {
			return
		}
		for i := start; i <= n-remaining; i++ {
			if sum+prefix[i+remaining]-prefix[i] > hi {
				break
			}
			walk(i+1, remaining-1, sum+vals[i], mask|1<<uint(i))
		}
	}
	walk(0, k, 0, 0)
}

// maskIndexes lists the set bits of mask in ascending order.
func maskIndexes(mask uint64) []int {
	out := make([]int, 0, bits.OnesCount64(mask))
	for mask != 0 {
		i := bits.TrailingZeros64(mask)
		out = append(out, i)
		mask &= mask - 1
	}
	return out
}
