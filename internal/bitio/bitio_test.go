// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/dsnet/bwzip/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// op is a single action against a Writer or Reader. The same script drives
// both directions: the writer emits the values, the reader must recover them.
type op struct {
	kind string // "bit", "byte", "u32"
	bit  bool
	b    byte
	u32  uint32
}

func TestWriteRead(t *testing.T) {
	var vectors = []struct {
		ops    []op
		output []byte // Expected byte stream after Close
	}{{
		ops:    []op{},
		output: []byte{},
	}, {
		ops:    []op{{kind: "bit", bit: true}, {kind: "bit"}, {kind: "bit", bit: true}, {kind: "bit", bit: true}},
		output: testutil.MustDecodeHex("b0"),
	}, {
		ops:    []op{{kind: "byte", b: 0xab}},
		output: testutil.MustDecodeHex("ab"),
	}, {
		// A byte written on a non-aligned cursor splits across the boundary.
		ops:    []op{{kind: "bit", bit: true}, {kind: "bit"}, {kind: "bit", bit: true}, {kind: "byte", b: 0xff}},
		output: testutil.MustDecodeHex("bfe0"),
	}, {
		ops:    []op{{kind: "u32", u32: 0xdeadbeef}},
		output: testutil.MustDecodeHex("deadbeef"),
	}, {
		ops:    []op{{kind: "bit", bit: true}, {kind: "u32", u32: 0x01020304}},
		output: testutil.MustDecodeHex("8081018200"),
	}, {
		ops: []op{
			{kind: "bit"}, {kind: "byte", b: 0xff},
			{kind: "u32", u32: 0x00000001}, {kind: "bit", bit: true},
		},
		output: testutil.MustDecodeHex("7f80000000c0"),
	}}

	for i, v := range vectors {
		var buf bytes.Buffer
		bw := NewWriter(&buf)
		for j, o := range v.ops {
			var err error
			switch o.kind {
			case "bit":
				err = bw.WriteBit(o.bit)
			case "byte":
				err = bw.WriteByte(o.b)
			case "u32":
				err = bw.WriteUint32(o.u32)
			}
			if err != nil {
				t.Fatalf("test %d, op %d, unexpected write error: %v", i, j, err)
			}
		}
		if err := bw.Close(); err != nil {
			t.Fatalf("test %d, unexpected close error: %v", i, err)
		}
		if diff := cmp.Diff(buf.Bytes(), v.output, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("test %d, output mismatch (-got +want):\n%s", i, diff)
		}

		br := NewReader(bytes.NewReader(v.output))
		for j, o := range v.ops {
			switch o.kind {
			case "bit":
				bit, err := br.ReadBit()
				if err != nil {
					t.Fatalf("test %d, op %d, unexpected read error: %v", i, j, err)
				}
				if bit != o.bit {
					t.Errorf("test %d, op %d, ReadBit() = %v, want %v", i, j, bit, o.bit)
				}
			case "byte":
				b, err := br.ReadByte()
				if err != nil {
					t.Fatalf("test %d, op %d, unexpected read error: %v", i, j, err)
				}
				if b != o.b {
					t.Errorf("test %d, op %d, ReadByte() = %#02x, want %#02x", i, j, b, o.b)
				}
			case "u32":
				u, err := br.ReadUint32()
				if err != nil {
					t.Fatalf("test %d, op %d, unexpected read error: %v", i, j, err)
				}
				if u != o.u32 {
					t.Errorf("test %d, op %d, ReadUint32() = %#08x, want %#08x", i, j, u, o.u32)
				}
			}
		}
	}
}

func TestWriterClose(t *testing.T) {
	var buf bytes.Buffer
	bw := NewWriter(&buf)
	if err := bw.WriteBit(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Errorf("double close error: got %v, want nil", err)
	}
	if err := bw.WriteBit(true); err != ErrClosed {
		t.Errorf("write after close: got %v, want %v", err, ErrClosed)
	}
	if err := bw.WriteByte(0x00); err != ErrClosed {
		t.Errorf("write after close: got %v, want %v", err, ErrClosed)
	}
	if got := buf.Bytes(); !bytes.Equal(got, []byte{0x80}) {
		t.Errorf("output mismatch: got %x, want 80", got)
	}
}

func TestReaderEnd(t *testing.T) {
	br := NewReader(bytes.NewReader(nil))
	if !br.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true")
	}
	if _, err := br.ReadBit(); err != io.ErrUnexpectedEOF {
		t.Errorf("ReadBit() error: got %v, want %v", err, io.ErrUnexpectedEOF)
	}
	if _, err := br.ReadByte(); err != io.ErrUnexpectedEOF {
		t.Errorf("ReadByte() error: got %v, want %v", err, io.ErrUnexpectedEOF)
	}

	br = NewReader(bytes.NewReader([]byte{0x5a}))
	if br.IsEmpty() {
		t.Errorf("IsEmpty() = true, want false")
	}
	if b, err := br.ReadByte(); b != 0x5a || err != nil {
		t.Errorf("ReadByte() = (%#02x, %v), want (0x5a, nil)", b, err)
	}
	if !br.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true")
	}

	// A non-aligned byte read needs a successor byte to compose from.
	br = NewReader(bytes.NewReader([]byte{0xff}))
	if _, err := br.ReadBit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := br.ReadByte(); err != io.ErrUnexpectedEOF {
		t.Errorf("ReadByte() error: got %v, want %v", err, io.ErrUnexpectedEOF)
	}

	if err := br.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if _, err := br.ReadBit(); err != ErrClosed {
		t.Errorf("read after close: got %v, want %v", err, ErrClosed)
	}
}

func TestWriterFailure(t *testing.T) {
	errFault := errors.New("fault")
	bw := NewWriter(&testutil.BuggyWriter{W: io.Discard, N: 2, Err: errFault})
	for i := 0; i < 1<<16; i++ {
		if err := bw.WriteByte(0xaa); err != nil {
			if err != errFault {
				t.Fatalf("write error: got %v, want %v", err, errFault)
			}
			return
		}
	}
	if err := bw.Close(); err != errFault {
		t.Fatalf("close error: got %v, want %v", err, errFault)
	}
}

func TestReaderFailure(t *testing.T) {
	errFault := errors.New("fault")
	br := NewReader(&testutil.BuggyReader{R: bytes.NewReader(make([]byte, 1<<16)), N: 2, Err: errFault})
	for i := 0; i < 1<<16; i++ {
		if _, err := br.ReadByte(); err != nil {
			if err != errFault {
				t.Fatalf("read error: got %v, want %v", err, errFault)
			}
			return
		}
	}
	t.Fatal("expected read failure")
}
