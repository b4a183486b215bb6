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

// Package rlp implements the Recursive Length Prefix encoding used to derive
// canonical byte representations for hashing headers, transactions and
// receipts (spec §6, "rlp" external collaborator). Types participate by
// writing their fields through the builder-style Encoder and reading them
// back through a Stream, rather than through struct-tag reflection; every
// caller here controls its own
// field order and optional-field handling (access lists, blob fields,
// authorization tuples) explicitly, which the handful of struct shapes this
// module needs does not justify a general reflective encoder for.
package rlp

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// ErrExpectedString is returned when a list is found where a string was expected.
var ErrExpectedString = errors.New("rlp: expected string or byte")

// ErrExpectedList is returned when a string is found where a list was expected.
var ErrExpectedList = errors.New("rlp: expected list")

// ErrMoreThanOneValue is returned when there is more data after the value.
var ErrMoreThanOneValue = errors.New("rlp: input contains more than one value")

// Encoder builds up an RLP-encoded byte string incrementally.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// Bytes returns the accumulated encoding.
func (e *Encoder) Bytes() []byte { return e.buf.Bytes() }

// WriteBytes appends the RLP encoding of a byte string.
func (e *Encoder) WriteBytes(b []byte) { e.buf.Write(EncodeBytes(b)) }

// WriteUint64 appends the RLP encoding of x as a minimal big-endian byte string.
func (e *Encoder) WriteUint64(x uint64) { e.buf.Write(EncodeUint64(x)) }

// WriteBigInt appends the RLP encoding of x as a minimal big-endian byte string.
func (e *Encoder) WriteBigInt(x *big.Int) { e.buf.Write(EncodeBigInt(x)) }

// WriteUint256 appends the RLP encoding of x as a minimal big-endian byte string.
func (e *Encoder) WriteUint256(x *uint256.Int) { e.buf.Write(EncodeUint256(x)) }

// WriteBool appends the RLP encoding of a boolean, represented as 0x01/empty string.
func (e *Encoder) WriteBool(b bool) { e.buf.Write(EncodeBool(b)) }

// WriteRaw appends an already-encoded RLP item verbatim (used to splice in a
// nested value produced by another Encoder or Encode* helper).
func (e *Encoder) WriteRaw(encoded []byte) { e.buf.Write(encoded) }

// WriteList encodes build's output as the contents of a list and appends it.
func (e *Encoder) WriteList(build func(*Encoder)) {
	inner := NewEncoder()
	build(inner)
	e.buf.Write(wrapList(inner.Bytes()))
}

// EncodeBytes returns the canonical RLP encoding of a byte string.
func EncodeBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return []byte{b[0]}
	}
	return append(header(0x80, len(b)), b...)
}

// EncodeBool returns the canonical RLP encoding of a boolean.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{0x01}
	}
	return []byte{0x80}
}

// EncodeUint64 returns the canonical RLP encoding of x: the minimal
// big-endian byte representation, with 0 encoded as the empty string.
func EncodeUint64(x uint64) []byte {
	if x == 0 {
		return []byte{0x80}
	}
	var b [8]byte
	for i := 7; i >= 0; i-- {
		b[i] = byte(x)
		x >>= 8
		if x == 0 {
			return EncodeBytes(b[i:])
		}
	}
	return EncodeBytes(b[:])
}

// EncodeBigInt returns the canonical RLP encoding of x.
func EncodeBigInt(x *big.Int) []byte {
	if x == nil || x.Sign() == 0 {
		return []byte{0x80}
	}
	return EncodeBytes(x.Bytes())
}

// EncodeUint256 returns the canonical RLP encoding of x.
func EncodeUint256(x *uint256.Int) []byte {
	if x == nil || x.IsZero() {
		return []byte{0x80}
	}
	return EncodeBytes(x.Bytes())
}

// EncodeList wraps already RLP-encoded items as the contents of a list.
func EncodeList(items ...[]byte) []byte {
	return wrapList(bytes.Join(items, nil))
}

func wrapList(content []byte) []byte {
	return append(header(0xc0, len(content)), content...)
}

// header builds the length-prefix for a string (base 0x80) or list (base 0xc0).
func header(base byte, size int) []byte {
	if size < 56 {
		return []byte{base + byte(size)}
	}
	sizeBytes := minimalBigEndian(uint64(size))
	return append([]byte{base + 55 + byte(len(sizeBytes))}, sizeBytes...)
}

func minimalBigEndian(x uint64) []byte {
	var b [8]byte
	for i := 7; i >= 0; i-- {
		b[i] = byte(x)
		x >>= 8
		if x == 0 {
			return b[i:]
		}
	}
	return b[:]
}

// Kind identifies whether a decoded item is a byte string or a list.
type Kind int

const (
	String Kind = iota
	List
)

// Stream is a cursor-based reader over an RLP byte slice.
type Stream struct {
	data []byte
	pos  int
}

// NewStream wraps data for sequential decoding from the start.
func NewStream(data []byte) *Stream { return &Stream{data: data} }

// Len reports the number of unconsumed bytes.
func (s *Stream) Len() int { return len(s.data) - s.pos }

// AtEnd reports whether the stream has been fully consumed.
func (s *Stream) AtEnd() bool { return s.Len() == 0 }

// Kind peeks at the next item's kind, content length and the size of its
// header, without consuming anything.
func (s *Stream) Kind() (kind Kind, contentLen int, headerLen int, err error) {
	if s.AtEnd() {
		return 0, 0, 0, errors.New("rlp: unexpected end of stream")
	}
	b := s.data[s.pos]
	switch {
	case b < 0x80:
		return String, 1, 0, nil
	case b < 0xb8:
		return String, int(b - 0x80), 1, nil
	case b < 0xc0:
		n := int(b - 0xb7)
		l, err := s.readSize(s.pos+1, n)
		return String, l, 1 + n, err
	case b < 0xf8:
		return List, int(b - 0xc0), 1, nil
	default:
		n := int(b - 0xf7)
		l, err := s.readSize(s.pos+1, n)
		return List, l, 1 + n, err
	}
}

func (s *Stream) readSize(pos, n int) (int, error) {
	if pos+n > len(s.data) {
		return 0, errors.New("rlp: length prefix runs past end of input")
	}
	var size uint64
	for _, b := range s.data[pos : pos+n] {
		size = size<<8 | uint64(b)
	}
	return int(size), nil
}

// Bytes decodes the next item as a byte string and advances past it.
func (s *Stream) Bytes() ([]byte, error) {
	kind, contentLen, headerLen, err := s.Kind()
	if err != nil {
		return nil, err
	}
	if kind != String {
		return nil, ErrExpectedString
	}
	start := s.pos + headerLen
	if start+contentLen > len(s.data) {
		return nil, errors.New("rlp: string runs past end of input")
	}
	out := s.data[start : start+contentLen]
	s.pos = start + contentLen
	return out, nil
}

// Uint64 decodes the next item as an unsigned integer.
func (s *Stream) Uint64() (uint64, error) {
	b, err := s.Bytes()
	if err != nil {
		return 0, err
	}
	if len(b) > 8 {
		return 0, fmt.Errorf("rlp: uint64 overflow, %d bytes", len(b))
	}
	var x uint64
	for _, bb := range b {
		x = x<<8 | uint64(bb)
	}
	return x, nil
}

// BigInt decodes the next item as an arbitrary-precision unsigned integer.
func (s *Stream) BigInt() (*big.Int, error) {
	b, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

// Uint256 decodes the next item as a 256-bit unsigned integer.
func (s *Stream) Uint256() (*uint256.Int, error) {
	b, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) > 32 {
		return nil, errors.New("rlp: uint256 overflow")
	}
	return new(uint256.Int).SetBytes(b), nil
}

// Bool decodes the next item as a boolean.
func (s *Stream) Bool() (bool, error) {
	b, err := s.Bytes()
	if err != nil {
		return false, err
	}
	switch {
	case len(b) == 0:
		return false, nil
	case len(b) == 1 && b[0] == 1:
		return true, nil
	default:
		return false, errors.New("rlp: invalid boolean")
	}
}

// List enters a nested list, returning a Stream scoped to its contents.
func (s *Stream) List() (*Stream, error) {
	kind, contentLen, headerLen, err := s.Kind()
	if err != nil {
		return nil, err
	}
	if kind != List {
		return nil, ErrExpectedList
	}
	start := s.pos + headerLen
	if start+contentLen > len(s.data) {
		return nil, errors.New("rlp: list runs past end of input")
	}
	s.pos = start + contentLen
	return &Stream{data: s.data[start : start+contentLen]}, nil
}

// Raw returns the next item's full encoding (header and content) without
// interpreting it, and advances past it.
func (s *Stream) Raw() ([]byte, error) {
	_, contentLen, headerLen, err := s.Kind()
	if err != nil {
		return nil, err
	}
	total := headerLen + contentLen
	if s.pos+total > len(s.data) {
		return nil, errors.New("rlp: item runs past end of input")
	}
	out := s.data[s.pos : s.pos+total]
	s.pos += total
	return out, nil
}
