// SPDX-License-Identifier: MIT

package symfn

// Partitions returns every partition of n with parts in descending
// order, enumerated largest-first: [n], [n−1,1], …, [1,1,…,1].
// Partitions(0) is the single empty partition.
func Partitions(n int) [][]int {
	if n < 0 {
		panic("symfn: negative partition target")
	}
	var out [][]int
	var build func(remaining, max int, prefix []int)
	build = func(remaining, max int, prefix []int) {
		if remaining == 0 {
			cp := make([]int, len(prefix))
			copy(cp, prefix)
			out = append(out, cp)
			return
		}
		for part := min(remaining, max); part >= 1; part-- {
			build(remaining-part, part, append(prefix, part))
		}
	}
	build(n, n, nil)
	return out
}
