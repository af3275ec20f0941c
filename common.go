// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwzip implements the Burrows-Wheeler compressed data format.
//
// The format processes the input as a single block: the Burrows-Wheeler
// transform rearranges the bytes so that equal characters cluster, the
// move-to-front transform turns those clusters into runs of small indices,
// and a static Huffman code packs the result onto a bit stream. Each stage
// is inverted in reverse order on expansion.
package bwzip

// The archive layout is a single bit stream:
//
//	[ Huffman trie, serialized preorder ]
//	[ 32-bit big-endian count of coded symbols ]
//	[ Huffman coded symbols ]
//	[ zero padding to a byte boundary ]
//
// The coded symbols are the move-to-front encoding of the BWT wire form,
// which itself starts with a 4-byte big-endian primary index. There is no
// integrity check: a corrupted archive that still parses will expand to
// garbage without diagnosis.

const fileSuffix = ".burrows"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "bwzip: " + string(e) }

var (
	ErrCorrupt   error = Error("archive is corrupted")
	ErrBadSuffix error = Error("filename has no suffix to strip")
)
