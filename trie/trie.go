// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package trie implements the Merkle-Patricia trie used to derive the
// transactions, receipts and withdrawals roots embedded in a block header
// (spec §6, "trie" external collaborator: "Trie<K,V> with trie_set(k, v) and
// root(trie)"). The trie is held entirely in memory and built fresh per
// call -- spec §6 notes these are ephemeral values, never persisted -- so
// this trades the disk-backed node database of a long-lived state trie for a
// plain in-memory node tree, which is all a per-block ordered-list
// commitment needs.
package trie

import (
	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/crypto"
	"github.com/erigontech/execution-core/rlp"
)

// Trie is a generic bytes-to-bytes Merkle-Patricia trie. The zero value is an
// empty trie ready to use.
type Trie struct {
	entries map[string][]byte
	order   []string
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{entries: make(map[string][]byte)}
}

// Set inserts or overwrites the value at key. Matches spec §6's trie_set(k, v).
func (t *Trie) Set(key, value []byte) {
	if t.entries == nil {
		t.entries = make(map[string][]byte)
	}
	k := string(key)
	if _, ok := t.entries[k]; !ok {
		t.order = append(t.order, k)
	}
	t.entries[k] = value
}

// Root computes the Merkle-Patricia root of the trie's contents. Keys are
// used as given; they are not hashed first, as they are in a secure trie.
// Matches spec §6's root(trie) -> 32 bytes. Insertion order does not affect
// the result -- the root is a pure function of the (key, value) set -- but
// swapping which index maps to which value does, since keys are rlp(index).
func (t *Trie) Root() common.Hash {
	if len(t.order) == 0 {
		return EmptyRootHash
	}
	n := &node{}
	for _, k := range t.order {
		n = n.insert([]byte(k), t.entries[k])
	}
	return common.BytesToHash(hashNode(n))
}

// EmptyRootHash is the root hash of a trie with no entries: keccak256(rlp("")).
var EmptyRootHash = crypto.Keccak256Hash(rlp.EncodeBytes(nil))

// DeriveRoot encodes each item in items via encode, keys it by rlp(index) the
// way spec §6.2 specifies ("Keys are always rlp(index)"), and returns the
// resulting root. This is the helper apply_body uses to build the
// transactions, receipts and withdrawals roots.
func DeriveRoot(count int, encode func(i int) []byte) common.Hash {
	tr := New()
	for i := 0; i < count; i++ {
		tr.Set(rlp.EncodeUint64(uint64(i)), encode(i))
	}
	return tr.Root()
}

// node is a trie node over nibble paths. Exactly one of value/children/leaf
// is meaningfully populated at a time, mirroring the classic four MPT node
// shapes (empty, leaf, extension, branch) collapsed into one struct so
// insertion can rewrite a node's kind in place.
type node struct {
	// path holds the remaining nibble path shared by this node's subtree
	// (used by both leaf and extension nodes).
	path []byte
	// value is set on leaf nodes (and on a branch's 17th slot).
	value []byte
	// children is non-nil on branch nodes: 16 nibble-indexed child pointers.
	children []*node
	// isLeaf distinguishes a leaf (path+value) from an extension (path+single child).
	isLeaf bool
	// child is the extension node's single descendant.
	child *node
}

func newLeaf(path, value []byte) *node { return &node{path: path, value: value, isLeaf: true} }

func newBranch() *node { return &node{children: make([]*node, 16)} }

// insert adds (key, value) -- key already nibble-path-free, i.e. raw bytes --
// into the subtree rooted at n, returning the new subtree root.
func (n *node) insert(key, value []byte) *node {
	nibbles := toNibbles(key)
	return n.insertNibbles(nibbles, value)
}

func (n *node) insertNibbles(path, value []byte) *node {
	switch {
	case n.isEmpty():
		return newLeaf(path, value)

	case n.isLeaf:
		common := commonPrefixLen(n.path, path)
		if common == len(n.path) && common == len(path) {
			return newLeaf(n.path, value)
		}
		branch := newBranch()
		if common == len(n.path) {
			branch.value = n.value
		} else {
			branch.children[n.path[common]] = newLeaf(n.path[common+1:], n.value)
		}
		if common == len(path) {
			branch.value = value
		} else {
			branch.children[path[common]] = newLeaf(path[common+1:], value)
		}
		if common == 0 {
			return branch
		}
		return &node{path: path[:common], child: branch}

	case n.child != nil: // extension
		common := commonPrefixLen(n.path, path)
		if common == len(n.path) {
			newChild := n.child.insertNibbles(path[common:], value)
			return &node{path: n.path, child: newChild}
		}
		branch := newBranch()
		if common == len(n.path)-1 {
			branch.children[n.path[common]] = n.child
		} else {
			branch.children[n.path[common]] = &node{path: n.path[common+1:], child: n.child}
		}
		if common == len(path) {
			branch.value = value
		} else {
			branch.children[path[common]] = newLeaf(path[common+1:], value)
		}
		if common == 0 {
			return branch
		}
		return &node{path: path[:common], child: branch}

	default: // branch
		if len(path) == 0 {
			n.value = value
			return n
		}
		idx := path[0]
		child := n.children[idx]
		if child == nil {
			n.children[idx] = newLeaf(path[1:], value)
		} else {
			n.children[idx] = child.insertNibbles(path[1:], value)
		}
		return n
	}
}

func (n *node) isEmpty() bool {
	return n.path == nil && n.value == nil && n.children == nil && n.child == nil
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func toNibbles(key []byte) []byte {
	nibbles := make([]byte, len(key)*2)
	for i, b := range key {
		nibbles[i*2] = b >> 4
		nibbles[i*2+1] = b & 0x0f
	}
	return nibbles
}

// hexPrefix applies the standard hex-prefix encoding used to pack a nibble
// path plus a leaf/extension flag back into bytes.
func hexPrefix(nibbles []byte, leaf bool) []byte {
	oddLen := len(nibbles)%2 == 1
	var flag byte
	if leaf {
		flag = 2
	}
	if oddLen {
		flag++
	}
	out := make([]byte, 0, len(nibbles)/2+1)
	if oddLen {
		out = append(out, flag<<4|nibbles[0])
		nibbles = nibbles[1:]
	} else {
		out = append(out, flag<<4)
	}
	for i := 0; i < len(nibbles); i += 2 {
		out = append(out, nibbles[i]<<4|nibbles[i+1])
	}
	return out
}

// encodeNode returns the RLP encoding of n's on-disk representation.
func encodeNode(n *node) []byte {
	switch {
	case n == nil || n.isEmpty():
		return rlp.EncodeBytes(nil)

	case n.isLeaf:
		return rlp.EncodeList(
			rlp.EncodeBytes(hexPrefix(n.path, true)),
			rlp.EncodeBytes(n.value),
		)

	case n.child != nil:
		return rlp.EncodeList(
			rlp.EncodeBytes(hexPrefix(n.path, false)),
			childReference(n.child),
		)

	default:
		items := make([][]byte, 0, 17)
		for _, c := range n.children {
			if c == nil || c.isEmpty() {
				items = append(items, rlp.EncodeBytes(nil))
			} else {
				items = append(items, childReference(c))
			}
		}
		items = append(items, rlp.EncodeBytes(n.value))
		return rlp.EncodeList(items...)
	}
}

// childReference returns the RLP representation of a reference to child: the
// child's own encoding inline if it is under 32 bytes, otherwise its hash.
func childReference(child *node) []byte {
	enc := encodeNode(child)
	if len(enc) < 32 {
		return enc
	}
	return rlp.EncodeBytes(crypto.Keccak256(enc))
}

// hashNode returns keccak256 of n's RLP encoding: the trie root the header
// embeds is always a hash, even when the encoding itself would fit inline.
func hashNode(n *node) []byte {
	return crypto.Keccak256(encodeNode(n))
}
