package builder

// lcgPermutation deterministically permutes the integers [0,n) using seed.
// It backs Options.StartEdgeSeed, the "debug rotation" hook spec.md S4.E
// requires so that assembly order is testable: a non-zero seed changes
// which eligible starting edge is tried first (and the order thereafter)
// without changing the set of eligible edges.
//
// Seed 0 is the identity permutation, matching the store's natural
// enumeration order.
func lcgPermutation(n int, seed int64) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if seed == 0 || n <= 1 {
		return idx
	}
	state := uint64(seed)
	for i := n - 1; i > 0; i-- {
		state = state*6364136223846793005 + 1442695040888963407
		j := int(state>>33) % (i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}
