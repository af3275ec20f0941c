// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwzip

import (
	"container/heap"

	"github.com/dsnet/bwzip/internal/bitio"
)

// The Huffman stage uses a static code built from the symbol frequencies of
// the whole block. The code trie itself is serialized onto the stream in
// preorder, so the decoder reconstructs exactly the trie the encoder used and
// tie-breaks during construction are not observable on the wire.

// huffmanNode is a node of the code trie. Leaves carry a symbol; internal
// nodes always have two children. The frequency is only meaningful while the
// trie is being built.
type huffmanNode struct {
	sym         byte
	freq        int
	left, right *huffmanNode
}

func (n *huffmanNode) isLeaf() bool { return n.left == nil && n.right == nil }

// nodeHeap is a min-heap of trie nodes keyed by frequency.
type nodeHeap []*huffmanNode

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].freq < h[j].freq }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*huffmanNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}

// huffmanCompress writes the trie, the symbol count, and the coded symbols
// of data onto bw. An empty block writes nothing at all.
func huffmanCompress(bw *bitio.Writer, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	root := buildTrie(data)
	var codes [256][]bool
	buildCodes(root, &codes, nil)

	if err := writeTrie(bw, root); err != nil {
		return err
	}
	if err := bw.WriteUint32(uint32(len(data))); err != nil {
		return err
	}
	for _, b := range data {
		for _, bit := range codes[b] {
			if err := bw.WriteBit(bit); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildTrie combines the two lightest subtrees until one root remains.
func buildTrie(data []byte) *huffmanNode {
	var freqs [256]int
	for _, b := range data {
		freqs[b]++
	}

	h := make(nodeHeap, 0, 256)
	for sym, freq := range freqs {
		if freq > 0 {
			h = append(h, &huffmanNode{sym: byte(sym), freq: freq})
		}
	}
	heap.Init(&h)
	for h.Len() > 1 {
		left := heap.Pop(&h).(*huffmanNode)
		right := heap.Pop(&h).(*huffmanNode)
		heap.Push(&h, &huffmanNode{freq: left.freq + right.freq, left: left, right: right})
	}
	return heap.Pop(&h).(*huffmanNode)
}

// buildCodes records the root-to-leaf path of every symbol. A trie whose
// root is a leaf yields a zero-length code; the symbol count alone then
// carries the payload.
func buildCodes(n *huffmanNode, codes *[256][]bool, prefix []bool) {
	if n.isLeaf() {
		codes[n.sym] = append([]bool(nil), prefix...)
		return
	}
	buildCodes(n.left, codes, append(prefix, false))
	buildCodes(n.right, codes, append(prefix, true))
}

// writeTrie serializes the trie preorder: a 0 bit introduces an internal
// node followed by its children, a 1 bit introduces a leaf followed by its
// 8-bit symbol.
func writeTrie(bw *bitio.Writer, n *huffmanNode) error {
	if n.isLeaf() {
		if err := bw.WriteBit(true); err != nil {
			return err
		}
		return bw.WriteByte(n.sym)
	}
	if err := bw.WriteBit(false); err != nil {
		return err
	}
	if err := writeTrie(bw, n.left); err != nil {
		return err
	}
	return writeTrie(bw, n.right)
}

// huffmanExpand parses the trie and symbol count from br and decodes that
// many symbols. Walking the trie consumes no bits at all when the root is a
// leaf, so the count is the only thing bounding the loop.
func huffmanExpand(br *bitio.Reader) ([]byte, error) {
	numNodes := 0
	root, err := readTrie(br, &numNodes)
	if err != nil {
		return nil, err
	}
	n, err := br.ReadUint32()
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, min(int64(n), 1<<20))
	for i := uint32(0); i < n; i++ {
		node := root
		for !node.isLeaf() {
			bit, err := br.ReadBit()
			if err != nil {
				return nil, err
			}
			if bit {
				node = node.right
			} else {
				node = node.left
			}
		}
		data = append(data, node.sym)
	}
	return data, nil
}

// readTrie parses the preorder serialization. A valid trie over a 256-symbol
// alphabet has at most 511 nodes; anything larger is a corrupt stream and is
// rejected before the recursion can run away.
func readTrie(br *bitio.Reader, numNodes *int) (*huffmanNode, error) {
	if *numNodes++; *numNodes > 511 {
		return nil, ErrCorrupt
	}
	bit, err := br.ReadBit()
	if err != nil {
		return nil, err
	}
	if bit {
		sym, err := br.ReadByte()
		if err != nil {
			return nil, err
		}
		return &huffmanNode{sym: sym}, nil
	}
	left, err := readTrie(br, numNodes)
	if err != nil {
		return nil, err
	}
	right, err := readTrie(br, numNodes)
	if err != nil {
		return nil, err
	}
	return &huffmanNode{left: left, right: right}, nil
}
