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

// Package common holds the fixed-width value types shared across the
// state-transition core: Address, Hash and Bloom.
package common

import (
	"encoding/hex"
	"fmt"
)

const (
	AddressLength = 20
	HashLength    = 32
	BloomLength   = 256
)

// Address represents the 20-byte address of an Ethereum account.
type Address [AddressLength]byte

func BytesToAddress(b []byte) (a Address) {
	copy(a[AddressLength-len(b):], b)
	return a
}

// HexToAddress parses a 0x-prefixed (or bare) hex string into an Address.
// Invalid input decodes as many leading bytes as it can and zero-fills the
// rest; callers passing literal constants are expected to pass valid hex.
func HexToAddress(s string) Address {
	return BytesToAddress(fromHex(s))
}

func (a Address) Bytes() []byte { return a[:] }

func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

func (a Address) String() string { return a.Hex() }

func (a Address) IsZero() bool { return a == Address{} }

// Hash represents a 32-byte keccak256 hash or Merkle-Patricia root.
type Hash [HashLength]byte

func BytesToHash(b []byte) (h Hash) {
	copy(h[HashLength-len(b):], b)
	return h
}

func (h Hash) Bytes() []byte { return h[:] }

func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash) String() string { return h.Hex() }

// HexToHash parses a 0x-prefixed (or bare) hex string into a Hash.
func HexToHash(s string) Hash {
	return BytesToHash(fromHex(s))
}

// fromHex strips an optional "0x"/"0X" prefix and decodes the remaining hex
// digits, tolerating an odd-length input by left-padding a zero nibble the
// way most hex-literal helpers in this ecosystem do.
func fromHex(s string) []byte {
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}

// Root is a Merkle-Patricia trie root; an alias kept distinct for readability
// at call sites the way the spec's data model names it separately from Hash.
type Root = Hash

// Bloom represents a 2048-bit (256-byte) log bloom filter.
type Bloom [BloomLength]byte

func (b *Bloom) SetBytes(d []byte) {
	if len(b) < len(d) {
		panic(fmt.Sprintf("bloom bytes too big %d %d", len(b), len(d)))
	}
	copy(b[BloomLength-len(d):], d)
}

func (b Bloom) Bytes() []byte { return b[:] }

// OrBloom ORs other into b in place.
func (b *Bloom) OrBloom(other Bloom) {
	for i := range b {
		b[i] |= other[i]
	}
}
