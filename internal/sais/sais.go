// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais implements a linear time suffix array algorithm.
package sais

// This package implements the SA-IS methodology by Nong, Zhang, and Chan.
// The outer level in sais_byte.go sorts the suffixes of a byte string that is
// conceptually terminated by a virtual sentinel smaller than any real byte.
// Recursion levels operate over an integer alphabet of named LMS substrings;
// that logic lives in sais_int.go and is a near copy of sais_byte.go with the
// types changed and the sentinel materialized as the last element.
//
// All levels share the one SA buffer: a level working on a reduced string of
// length m reads its input from SA[m:2m] and writes its output to SA[:m].
// The two regions never overlap, which is what makes the reuse sound; the
// recursive calls receive them as disjoint subslices.
//
// References:
//	https://ieeexplore.ieee.org/document/5582081
//	https://sites.google.com/site/yuta256/sais

const (
	typeL   = -1
	typeS   = 0
	typeLMS = +1
)

// ComputeSA computes the suffix array of T and places the result in SA.
// The length of SA must be len(T)+1; SA[0] always holds len(T), the position
// of the implicit sentinel suffix, which sorts before every other suffix.
func ComputeSA(T []byte, SA []int) {
	if len(SA) != len(T)+1 {
		panic("mismatching sizes")
	}
	for i := range SA {
		SA[i] = 0
	}
	if len(T) == 0 {
		return
	}
	computeSA_byte(T, SA)
}
