// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package benchmark compares the performance of this library against other
// compression implementations with respect to encode speed, decode speed,
// and ratio.
package benchmark

import (
	"bytes"
	"io"
	"runtime"
	"testing"
)

const (
	FormatBWZ = iota
	FormatFlate
	FormatZstd
	FormatXZ
)

const (
	TestEncodeRate = iota
	TestDecodeRate
	TestCompressRatio
)

type Encoder func(io.Writer, int) io.WriteCloser
type Decoder func(io.Reader) io.ReadCloser

var (
	Encoders map[int]map[string]Encoder
	Decoders map[int]map[string]Decoder
)

func RegisterEncoder(format int, name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[int]map[string]Encoder)
	}
	if Encoders[format] == nil {
		Encoders[format] = make(map[string]Encoder)
	}
	Encoders[format][name] = enc
}

func RegisterDecoder(format int, name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[int]map[string]Decoder)
	}
	if Decoders[format] == nil {
		Decoders[format] = make(map[string]Decoder)
	}
	Decoders[format][name] = dec
}

// BenchmarkEncoder benchmarks a single encoder on the given input data using
// the selected compression level and reports the result.
func BenchmarkEncoder(input []byte, enc Encoder, lvl int) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			wr := enc(io.Discard, lvl)
			if _, err := wr.Write(input); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err := wr.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkDecoder benchmarks a single decoder on pre-compressed input data
// produced by the matching encoder and reports the result.
func BenchmarkDecoder(input []byte, enc Encoder, dec Decoder, lvl int) testing.BenchmarkResult {
	compressed := MustCompress(input, enc, lvl)
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			rd := dec(bytes.NewReader(compressed))
			if _, err := io.Copy(io.Discard, rd); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err := rd.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// Ratio reports the compression ratio rawSize/compSize achieved on input.
func Ratio(input []byte, enc Encoder, lvl int) float64 {
	if len(input) == 0 {
		return 0
	}
	compressed := MustCompress(input, enc, lvl)
	return float64(len(input)) / float64(len(compressed))
}

// MustCompress compresses input through enc or else panics.
func MustCompress(input []byte, enc Encoder, lvl int) []byte {
	var buf bytes.Buffer
	wr := enc(&buf, lvl)
	if _, err := wr.Write(input); err != nil {
		panic(err)
	}
	if err := wr.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// MustDecompress expands input through dec or else panics.
func MustDecompress(input []byte, dec Decoder) []byte {
	rd := dec(bytes.NewReader(input))
	b, err := io.ReadAll(rd)
	if err != nil {
		panic(err)
	}
	if err := rd.Close(); err != nil {
		panic(err)
	}
	return b
}
