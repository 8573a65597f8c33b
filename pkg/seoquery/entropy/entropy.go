// Package entropy holds the information-theoretic helpers shared by the
// analysis stages. All entropies are Shannon entropies in bits.
package entropy

import (
	"math"
	"slices"
)

// Shannon returns the entropy of a frequency distribution.
// Zero and negative counts are ignored; an empty or all-zero
// distribution has entropy 0.
func Shannon(counts []int) float64 {
	var total float64
	for _, c := range counts {
		if c > 0 {
			total += float64(c)
		}
	}
	if total == 0 {
		return 0
	}
	var h float64
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		p := float64(c) / total
		h -= p * math.Log2(p)
	}
	return h
}

// OfMap returns the entropy of a keyed frequency distribution. Counts are
// summed in sorted order so the result does not depend on map iteration.
func OfMap[K comparable](counts map[K]int) float64 {
	values := make([]int, 0, len(counts))
	for _, c := range counts {
		values = append(values, c)
	}
	slices.Sort(values)
	return Shannon(values)
}

// Buckets distributes positions in [0, span) into n equal-width buckets
// and returns the per-bucket counts. Positions outside the range are
// clamped into the first or last bucket.
func Buckets(positions []int, span, n int) []int {
	if n <= 0 {
		return nil
	}
	counts := make([]int, n)
	if span <= 0 {
		return counts
	}
	width := float64(span) / float64(n)
	for _, p := range positions {
		idx := int(float64(p) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= n {
			idx = n - 1
		}
		counts[idx]++
	}
	return counts
}
