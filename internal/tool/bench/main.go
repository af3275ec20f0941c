// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// bench compares the performance of this library against other compression
// implementations on a set of input files. For every registered codec it
// reports the encode rate, the decode rate, and the compression ratio.
//
// Example usage:
//	go run main.go -formats bwz,fl -size 1MiB testdata/twain.txt
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/dsnet/bwzip/internal/benchmark"
	"github.com/dsnet/golib/strconv"
)

var fmtToEnum = map[string]int{
	"bwz":  benchmark.FormatBWZ,
	"fl":   benchmark.FormatFlate,
	"zstd": benchmark.FormatZstd,
	"xz":   benchmark.FormatXZ,
}

func main() {
	formats := flag.String("formats", "bwz,fl,zstd,xz", "comma separated list of formats to benchmark")
	level := flag.Int("level", 6, "compression level for codecs that support one")
	size := flag.String("size", "1MiB", "maximum number of bytes to load from each file")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "no input files")
		os.Exit(1)
	}

	maxSize, err := strconv.ParsePrefix(*size, strconv.AutoParse)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid size %q: %v\n", *size, err)
		os.Exit(1)
	}

	for _, file := range flag.Args() {
		input, err := loadFile(file, int(maxSize))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			os.Exit(1)
		}
		fmt.Printf("%s (%sB)\n", file, strconv.FormatPrefix(float64(len(input)), strconv.Base1024, 2))
		for _, f := range strings.Split(*formats, ",") {
			format, ok := fmtToEnum[f]
			if !ok {
				fmt.Fprintf(os.Stderr, "unknown format %q\n", f)
				os.Exit(1)
			}
			benchFormat(f, format, input, *level)
		}
	}
}

func benchFormat(name string, format int, input []byte, level int) {
	var codecs []string
	for c := range benchmark.Encoders[format] {
		codecs = append(codecs, c)
	}
	sort.Strings(codecs)

	for _, c := range codecs {
		enc := benchmark.Encoders[format][c]
		dec := benchmark.Decoders[format][c]

		encResult := benchmark.BenchmarkEncoder(input, enc, level)
		decResult := benchmark.BenchmarkDecoder(input, enc, dec, level)
		ratio := benchmark.Ratio(input, enc, level)

		fmt.Printf("  %-8s enc:%8.2f MB/s  dec:%8.2f MB/s  ratio:%7.3fx\n",
			name+":"+c, rate(encResult), rate(decResult), ratio)
	}
}

func rate(r testing.BenchmarkResult) float64 {
	if r.N == 0 || r.T == 0 {
		return 0
	}
	us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
	return float64(r.Bytes) / us
}

// loadFile loads up to n bytes from the named file.
func loadFile(file string, n int) ([]byte, error) {
	input, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if len(input) > n {
		input = input[:n]
	}
	return input, nil
}
