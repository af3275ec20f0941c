// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

// The outer level of SA-IS over the byte alphabet. The bucket array has
// 256+2 entries: index 1 is reserved for the single sentinel slot, and the
// bucket for byte c spans SA[buckets[c+1]:buckets[c+2]] after the prefix sum.

func computeSA_byte(T []byte, SA []int) {
	buckets := make([]int, 258)
	types := make([]int8, len(T)+1)
	classifySuffixes_byte(T, types, buckets)
	induceSort_byte(T, SA, types, buckets)
	reduce_byte(T, SA, types, buckets)
}

// classifySuffixes_byte tags every suffix as L, S, or LMS with a single
// right-to-left scan, counting character occurrences into buckets along the
// way. On ties the type propagates from the suffix one position to the right.
func classifySuffixes_byte(T []byte, types []int8, buckets []int) {
	buckets[1]++ // The sentinel gets a bucket of its own

	prev := -1 // The sentinel is smaller than any real byte
	for i := len(types) - 2; i >= 0; i-- {
		cur := int(T[i])
		buckets[cur+2]++
		if cur > prev {
			types[i] = typeL
		} else if cur == prev && types[i+1] == typeL {
			types[i] = typeL
		}
		if types[i] == typeL && types[i+1] == typeS {
			types[i+1] = typeLMS
		}
		prev = cur
	}

	for i := 1; i < len(buckets); i++ {
		buckets[i] += buckets[i-1]
	}
}

// induceSort_byte seeds SA with the LMS positions at the tails of their
// buckets and induces the order of all remaining suffixes with an L-pass over
// the bucket heads and an S-pass over the bucket tails.
func induceSort_byte(T []byte, SA []int, types []int8, buckets []int) {
	n := len(T)
	boundaries := make([]int, len(buckets))

	SA[0] = n

	copy(boundaries, buckets)
	for i := len(types) - 2; i >= 1; i-- {
		if types[i] == typeLMS {
			boundaries[int(T[i])+2]--
			SA[boundaries[int(T[i])+2]] = i
		}
	}

	copy(boundaries, buckets)
	for i := 0; i < n; i++ {
		j := SA[i]
		if j > 0 && types[j-1] == typeL {
			SA[boundaries[int(T[j-1])+1]] = j - 1
			boundaries[int(T[j-1])+1]++
		}
	}

	copy(boundaries, buckets)
	for i := n; i >= 1; i-- {
		j := SA[i]
		if j > 0 && types[j-1] != typeL {
			boundaries[int(T[j-1])+2]--
			SA[boundaries[int(T[j-1])+2]] = j - 1
		}
	}
}

// reduce_byte names the now sorted LMS substrings, forms the reduced string,
// obtains its suffix array either directly or by recursing, and finally
// re-induces the full suffix array from the sorted LMS suffixes.
func reduce_byte(T []byte, SA []int, types []int8, buckets []int) {
	n := len(T)

	// Compact the sorted LMS substrings into SA[:numLMS].
	numLMS := 0
	for i := 0; i <= n; i++ {
		if types[SA[i]] == typeLMS {
			SA[numLMS] = SA[i]
			numLMS++
		}
	}

	// The rest of SA doubles as the name buffer for the reduced string.
	for i := numLMS; i <= n; i++ {
		SA[i] = -1
	}

	// Assign lexicographic names in sorted order. Consecutive LMS substrings
	// share a name only if they are equal character- and type-wise up to and
	// including their closing LMS position. The name of the LMS substring
	// starting at pos lands at SA[numLMS+pos/2]; no two LMS positions are
	// adjacent, so the slots never collide.
	SA[numLMS+n/2] = 0 // The sentinel substring is always named 0
	prevID := 0
	prevPos := n
	for i := 1; i < numLMS; i++ {
		pos := SA[i]
		if !lmsEqual_byte(T, types, prevPos, pos) {
			prevID++
		}
		SA[numLMS+pos/2] = prevID
		prevPos = pos
	}

	// Compact the named string into SA[numLMS : 2*numLMS].
	ptr := numLMS
	for i := numLMS; i <= n; i++ {
		if SA[i] >= 0 {
			SA[ptr] = SA[i]
			ptr++
		}
	}

	if prevID+1 == numLMS {
		// All LMS substrings are unique, so the reduced string is already a
		// permutation and its suffix array follows directly.
		for i := 0; i < numLMS; i++ {
			SA[SA[numLMS+i]] = i
		}
	} else {
		computeSA_int(SA[numLMS:2*numLMS], SA[:numLMS], prevID)
	}
	induceSortReduced_byte(T, SA, types, buckets, numLMS)
}

// lmsEqual_byte reports whether the LMS substrings starting at p1 and p2 are
// identical, comparing characters and types until both reach an LMS boundary.
func lmsEqual_byte(T []byte, types []int8, p1, p2 int) bool {
	n := len(T)
	if p1 == n || p2 == n || T[p1] != T[p2] {
		return false
	}
	p1++
	p2++
	for i := 0; i <= n; i++ {
		if p1 == n || p2 == n || T[p1] != T[p2] {
			return false
		}
		if types[p1] == typeLMS || types[p2] == typeLMS {
			break
		}
		p1++
		p2++
	}
	return types[p1] == typeLMS && types[p2] == typeLMS
}

// induceSortReduced_byte maps the sorted reduced suffix array back to LMS
// positions of T and repeats the three induce passes to settle every suffix.
func induceSortReduced_byte(T []byte, SA []int, types []int8, buckets []int, numLMS int) {
	n := len(T)

	// List the LMS positions in left-to-right order so that the reduced
	// suffix array can be remapped onto positions of T.
	ptr := numLMS
	for i := 0; i <= n; i++ {
		if types[i] == typeLMS {
			SA[ptr] = i
			ptr++
		}
	}
	for i := 0; i < numLMS; i++ {
		SA[i] = SA[numLMS+SA[i]]
	}
	for i := numLMS; i <= n; i++ {
		SA[i] = -1
	}

	boundaries := make([]int, len(buckets))

	SA[0] = n

	// Place the sorted LMS suffixes at the tails of their buckets. Walking
	// right-to-left lets each slot be vacated before its target is written.
	copy(boundaries, buckets)
	for i := numLMS - 1; i >= 1; i-- {
		j := SA[i]
		SA[i] = -1
		boundaries[int(T[j])+2]--
		SA[boundaries[int(T[j])+2]] = j
	}

	copy(boundaries, buckets)
	for i := 0; i < n; i++ {
		j := SA[i]
		if j > 0 && types[j-1] == typeL {
			SA[boundaries[int(T[j-1])+1]] = j - 1
			boundaries[int(T[j-1])+1]++
		}
	}

	copy(boundaries, buckets)
	for i := n; i >= 1; i-- {
		j := SA[i]
		if j > 0 && types[j-1] != typeL {
			boundaries[int(T[j-1])+2]--
			SA[boundaries[int(T[j-1])+2]] = j - 1
		}
	}
}
