// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwzip

// The Burrows-Wheeler Transform implementation used here is based on the
// Suffix Array by Induced Sorting (SA-IS) methodology by Nong, Zhang, and
// Chan. The suffix array is built over the input augmented with a virtual
// sentinel that sorts before every real byte, and the transform is the last
// column read off in suffix array order: the byte preceding each suffix,
// with the sentinel standing in for the suffix that starts at position zero.
//
// On the wire the sentinel is stored as 0xFF, which collides with a
// legitimate input byte. The 4-byte primary index that precedes the column
// is what identifies the sentinel slot; decoding never matches on the byte
// value.

import (
	"encoding/binary"

	"github.com/dsnet/bwzip/internal/sais"
)

const sentinelByte = 0xFF

type burrowsWheelerTransform struct{}

// Encode computes the BWT wire form of src: a big-endian primary index
// followed by the len(src)+1 bytes of the last column.
func (burrowsWheelerTransform) Encode(src []byte) []byte {
	sa := make([]int, len(src)+1)
	sais.ComputeSA(src, sa)

	primary := 0
	for sa[primary] != 0 {
		primary++
	}

	dst := make([]byte, len(src)+5)
	binary.BigEndian.PutUint32(dst, uint32(primary))
	col := dst[4:]
	for i := 0; i < primary; i++ {
		col[i] = src[sa[i]-1]
	}
	col[primary] = sentinelByte
	for i := primary + 1; i <= len(src); i++ {
		col[i] = src[sa[i]-1]
	}
	return dst
}

// Decode inverts the wire form produced by Encode.
//
// The sorted first column is never materialized. Instead next[i] holds the
// index in the last column of the character that occupies rank i of the
// first column, built with a stable counting sort that treats the primary
// slot as the minimum. Following next from the primary index replays the
// original text one byte at a time.
func (burrowsWheelerTransform) Decode(wire []byte) ([]byte, error) {
	if len(wire) < 5 {
		return nil, ErrCorrupt
	}
	primary := int(binary.BigEndian.Uint32(wire))
	col := wire[4:]
	if primary < 0 || primary >= len(col) {
		return nil, ErrCorrupt
	}

	// Bucket starts with the sentinel occupying rank 0. count[c+1] ends up
	// as the first rank of byte c.
	var count [257]int
	count[0] = 1
	for i, c := range col {
		if i != primary {
			count[int(c)+1]++
		}
	}
	count[256] = len(col) - count[256]
	for i := 255; i >= 0; i-- {
		count[i] = count[i+1] - count[i]
	}

	next := make([]int, len(col))
	next[0] = primary
	for i, c := range col {
		if i != primary {
			next[count[int(c)+1]] = i
			count[int(c)+1]++
		}
	}

	dst := make([]byte, len(col)-1)
	idx := primary
	for i := range dst {
		idx = next[idx]
		dst[i] = col[idx]
	}
	return dst, nil
}
