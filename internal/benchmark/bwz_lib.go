// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package benchmark

import (
	"bytes"
	"io"

	"github.com/dsnet/bwzip"
)

// The bwzip codec operates on whole blocks, so the streaming interface used
// by the registry is emulated: writes accumulate and the block is compressed
// on Close, while reads are served from an eagerly expanded block.

type blockWriter struct {
	w   io.Writer
	buf bytes.Buffer
}

func (bw *blockWriter) Write(p []byte) (int, error) {
	return bw.buf.Write(p)
}

func (bw *blockWriter) Close() error {
	return bwzip.Compress(bw.w, bw.buf.Bytes())
}

type blockReader struct {
	rd  io.Reader
	err error
}

func (br *blockReader) Read(p []byte) (int, error) {
	if br.err != nil {
		return 0, br.err
	}
	return br.rd.Read(p)
}

func (br *blockReader) Close() error {
	if br.err != nil {
		return br.err
	}
	return nil
}

func init() {
	RegisterEncoder(FormatBWZ, "ds",
		func(w io.Writer, lvl int) io.WriteCloser {
			return &blockWriter{w: w}
		})
	RegisterDecoder(FormatBWZ, "ds",
		func(r io.Reader) io.ReadCloser {
			data, err := bwzip.Expand(r)
			if err != nil {
				return &blockReader{err: err}
			}
			return &blockReader{rd: bytes.NewReader(data)}
		})
}
