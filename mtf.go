// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwzip

// moveToFront implements the move-to-front transform over the full byte
// alphabet. The dictionary starts as the identity permutation and every
// symbol encountered is hoisted to the front, so repeated symbols encode as
// runs of small indices. Output length always equals input length.
//
// The lookup is a naive linear scan, O(n*R) in the worst case. On the
// clustered output of the BWT the hoisted symbols sit near the front, which
// keeps the scan short in practice.
type moveToFront struct {
	dictBuf [256]uint8
}

// Init resets the dictionary to the identity permutation.
func (m *moveToFront) Init() {
	for i := range m.dictBuf {
		m.dictBuf[i] = uint8(i)
	}
}

func (m *moveToFront) Encode(vals []byte) []uint8 {
	dict := m.dictBuf[:]
	idxs := make([]uint8, len(vals))
	for vi, val := range vals {
		var idx uint8 // Reverse lookup of val in dict
		for di, dv := range dict {
			if dv == val {
				idx = uint8(di)
				break
			}
		}
		idxs[vi] = idx
		copy(dict[1:], dict[:idx])
		dict[0] = val
	}
	return idxs
}

func (m *moveToFront) Decode(idxs []uint8) []byte {
	dict := m.dictBuf[:]
	vals := make([]byte, len(idxs))
	for vi, idx := range idxs {
		val := dict[idx] // Forward lookup of idx in dict
		vals[vi] = val
		copy(dict[1:], dict[:idx])
		dict[0] = val
	}
	return vals
}
