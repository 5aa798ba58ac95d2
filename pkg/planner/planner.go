// Package planner computes the per-user article presentation order.
package planner

import "math/rand"

// priorityWindow bounds the leading slice of dataset indices that counts as
// priority articles: indices 1..min(n,6)-1. Index 0 is intentionally excluded.
const priorityWindow = 6

// PrioritySet returns the set of priority article indices for a dataset of n rows.
func PrioritySet(n int) map[int]bool {
	upper := n
	if upper > priorityWindow {
		upper = priorityWindow
	}
	p := make(map[int]bool)
	for i := 1; i < upper; i++ {
		p[i] = true
	}
	return p
}

// Plan returns a random permutation of [0, n) with one placement rule: at least
// one of the first two positions holds a priority index, provided the dataset
// has more than one article and the priority set is non-empty.
//
// When the shuffle violates the rule, the first priority value found from
// position 2 onward is swapped into position 1. Only slot 1 is ever touched;
// the rest of the permutation is left as shuffled. If no priority value exists
// past position 1 the order is returned unconstrained.
func Plan(rng *rand.Rand, n int) []int {
	order := rng.Perm(n)

	p := PrioritySet(n)
	if n <= 1 || len(p) == 0 {
		return order
	}

	if p[order[0]] || p[order[1]] {
		return order
	}

	for j := 2; j < n; j++ {
		if p[order[j]] {
			order[1], order[j] = order[j], order[1]
			break
		}
	}
	return order
}
