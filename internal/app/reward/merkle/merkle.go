// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

// Package merkle builds the binary hash tree committing to an ordered holder
// list. The tree is a pure function of the list: identical order and
// balances always reproduce the same root, and any holder can verify their
// inclusion with a sibling-hash path against the published root.
package merkle

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/cognosis-network/reward-engine/internal/app/reward"
)

const HashSize = sha256.Size

// Domain separation between leaf and interior hashes rules out
// second-preimage ambiguity between the two layers.
const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// Tree is the full layer stack: layers[0] are the leaf hashes in snapshot
// order, each next layer halves by pairwise hashing, the top layer is the
// single root.
type Tree struct {
	layers [][][]byte
}

// LeafHash is the canonical holder leaf:
//
//	sha256(0x00 || uint16be(len(address)) || address || uint64be(balance))
//
// The length prefix and fixed-width balance make the encoding unambiguous:
// no two distinct (address, balance) pairs serialize to the same bytes.
func LeafHash(h reward.Holder) []byte {
	buf := make([]byte, 0, 3+len(h.Address)+8)
	buf = append(buf, leafPrefix)
	var l [2]byte
	binary.BigEndian.PutUint16(l[:], uint16(len(h.Address)))
	buf = append(buf, l[:]...)
	buf = append(buf, h.Address...)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(h.Balance))
	buf = append(buf, b[:]...)
	sum := sha256.Sum256(buf)
	return sum[:]
}

func nodeHash(left, right []byte) []byte {
	buf := make([]byte, 0, 1+2*HashSize)
	buf = append(buf, nodePrefix)
	buf = append(buf, left...)
	buf = append(buf, right...)
	sum := sha256.Sum256(buf)
	return sum[:]
}

// duplicateOdd is the pairing rule for layers of odd length: the trailing
// node is paired with itself. The rule is part of the public commitment
// scheme; changing it changes every root retroactively.
func duplicateOdd(layer [][]byte, i int) []byte {
	if i >= len(layer) {
		return layer[len(layer)-1]
	}
	return layer[i]
}

// Build derives the commitment tree from the ordered holder list.
func Build(holders []reward.Holder) (*Tree, error) {
	if len(holders) == 0 {
		return nil, errors.New("cannot build tree over zero leaves")
	}
	leaves := make([][]byte, len(holders))
	for i, h := range holders {
		leaves[i] = LeafHash(h)
	}
	layers := [][][]byte{leaves}
	for current := leaves; len(current) > 1; {
		next := make([][]byte, (len(current)+1)/2)
		for i := range next {
			left := current[2*i]
			right := duplicateOdd(current, 2*i+1)
			next[i] = nodeHash(left, right)
		}
		layers = append(layers, next)
		current = next
	}
	return &Tree{layers: layers}, nil
}

func (t *Tree) Root() []byte {
	top := t.layers[len(t.layers)-1]
	return top[0]
}

func (t *Tree) LeafCount() int {
	return len(t.layers[0])
}

// Proof is the sibling-hash path for the leaf at Index. The direction at
// level k follows from bit k of Index: bit set means the leaf-side hash is
// the right child at that level.
type Proof struct {
	Index    int
	Siblings [][]byte
}

// Prove produces the inclusion proof for the holder at index i.
func (t *Tree) Prove(i int) (Proof, error) {
	if i < 0 || i >= t.LeafCount() {
		return Proof{}, errors.Errorf("leaf index %d out of range [0, %d)", i, t.LeafCount())
	}
	proof := Proof{Index: i}
	idx := i
	for _, layer := range t.layers[:len(t.layers)-1] {
		proof.Siblings = append(proof.Siblings, duplicateOdd(layer, idx^1))
		idx >>= 1
	}
	return proof, nil
}

// Verify replays the pairing rule from leaf to root and compares the result
// with the claimed root.
func Verify(root, leaf []byte, p Proof) bool {
	cur := leaf
	idx := p.Index
	for _, sibling := range p.Siblings {
		if idx&1 == 1 {
			cur = nodeHash(sibling, cur)
		} else {
			cur = nodeHash(cur, sibling)
		}
		idx >>= 1
	}
	if len(cur) != len(root) {
		return false
	}
	for i := range cur {
		if cur[i] != root[i] {
			return false
		}
	}
	return true
}
