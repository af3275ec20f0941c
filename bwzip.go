// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwzip

import (
	"io"
	"os"
	"strings"

	"github.com/dsnet/bwzip/internal/bitio"
)

// Compress encodes data as a single block and writes the archive to w.
// An empty block produces an empty archive.
func Compress(w io.Writer, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	var bwt burrowsWheelerTransform
	var mtf moveToFront
	mtf.Init()

	bw := bitio.NewWriter(w)
	if err := huffmanCompress(bw, mtf.Encode(bwt.Encode(data))); err != nil {
		return err
	}
	return bw.Close()
}

// Expand decodes an archive produced by Compress and returns the original
// block. An empty archive yields an empty block.
func Expand(r io.Reader) ([]byte, error) {
	br := bitio.NewReader(r)
	if br.IsEmpty() {
		return nil, br.Close()
	}

	idxs, err := huffmanExpand(br)
	if err != nil {
		return nil, err
	}
	if err := br.Close(); err != nil {
		return nil, err
	}

	var mtf moveToFront
	mtf.Init()
	var bwt burrowsWheelerTransform
	return bwt.Decode(mtf.Decode(idxs))
}

// CompressFile compresses the named file into name+".burrows".
func CompressFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	f, err := os.Create(name + fileSuffix)
	if err != nil {
		return err
	}
	if err := Compress(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExpandFile expands the named archive, writing the output to the same path
// with the last dot-separated suffix stripped. The name must carry such a
// suffix; ErrBadSuffix is returned otherwise.
func ExpandFile(name string) error {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ErrBadSuffix
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	data, err := Expand(f)
	f.Close()
	if err != nil {
		return err
	}
	return os.WriteFile(name[:i], data, 0666)
}
