// Copyright 2024 The go-ethereum Authors
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

package types

import (
	"fmt"
	"math/big"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/crypto"
	"github.com/erigontech/execution-core/rlp"
)

// DelegationPrefix marks an EOA's code as a delegation designator rather
// than ordinary bytecode (EIP-7702): exactly DelegationPrefix followed by a
// 20-byte address.
var DelegationPrefix = []byte{0xef, 0x01, 0x00}

// IsValidDelegation reports whether code is either empty or a well-formed
// delegation designator, the shape C4 step 10 requires of a sending EOA.
func IsValidDelegation(code []byte) bool {
	if len(code) == 0 {
		return true
	}
	return len(code) == 23 && hasPrefix(code, DelegationPrefix)
}

// ParseDelegation extracts the delegated-to address from code, if any.
func ParseDelegation(code []byte) (common.Address, bool) {
	if len(code) != 23 || !hasPrefix(code, DelegationPrefix) {
		return common.Address{}, false
	}
	return common.BytesToAddress(code[3:]), true
}

func hasPrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Authorization is one EIP-7702 authorization tuple: a signed statement by
// the authority (the account whose key produced V/R/S, see RecoverSigner)
// permitting that account to delegate execution to the code found at
// Address, valid for the given ChainID and the authority's Nonce.
type Authorization struct {
	ChainID *big.Int
	Address common.Address
	Nonce   uint64
	V       uint8
	R       *big.Int
	S       *big.Int
}

// SigningHash returns the digest an authorization's signature covers:
// keccak256(0x05 || rlp([chain_id, address, nonce])).
func (a *Authorization) SigningHash() common.Hash {
	e := rlp.NewEncoder()
	e.WriteBigInt(a.ChainID)
	e.WriteBytes(a.Address.Bytes())
	e.WriteUint64(a.Nonce)
	payload := rlp.EncodeList(e.Bytes())
	return crypto.Keccak256Hash(append([]byte{0x05}, payload...))
}

// RecoverSigner recovers the account that authorized the delegation.
func (a *Authorization) RecoverSigner() (common.Address, error) {
	if a.V > 1 {
		return common.Address{}, fmt.Errorf("%w: authorization recovery id must be 0 or 1, got %d", ErrInvalidSignature, a.V)
	}
	sig := make([]byte, 65)
	writeBigIntPadded(sig[0:32], a.R)
	writeBigIntPadded(sig[32:64], a.S)
	sig[64] = a.V

	hash := a.SigningHash()
	pub, err := crypto.Ecrecover(hash.Bytes(), sig)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(pub), nil
}

func writeBigIntPadded(dst []byte, x *big.Int) {
	if x == nil {
		return
	}
	b := x.Bytes()
	copy(dst[len(dst)-len(b):], b)
}

func (a *Authorization) encodeRLP(e *rlp.Encoder) {
	e.WriteList(func(e *rlp.Encoder) {
		e.WriteBigInt(a.ChainID)
		e.WriteBytes(a.Address.Bytes())
		e.WriteUint64(a.Nonce)
		e.WriteUint64(uint64(a.V))
		e.WriteBigInt(a.R)
		e.WriteBigInt(a.S)
	})
}

func decodeAuthorization(s *rlp.Stream) (*Authorization, error) {
	tupleStream, err := s.List()
	if err != nil {
		return nil, err
	}
	a := &Authorization{}
	if a.ChainID, err = tupleStream.BigInt(); err != nil {
		return nil, err
	}
	addrBytes, err := tupleStream.Bytes()
	if err != nil {
		return nil, err
	}
	a.Address = common.BytesToAddress(addrBytes)
	if a.Nonce, err = tupleStream.Uint64(); err != nil {
		return nil, err
	}
	v, err := tupleStream.Uint64()
	if err != nil {
		return nil, err
	}
	a.V = uint8(v)
	if a.R, err = tupleStream.BigInt(); err != nil {
		return nil, err
	}
	if a.S, err = tupleStream.BigInt(); err != nil {
		return nil, err
	}
	return a, nil
}

func decodeAuthorizationList(s *rlp.Stream) ([]Authorization, error) {
	listStream, err := s.List()
	if err != nil {
		return nil, err
	}
	var out []Authorization
	for !listStream.AtEnd() {
		a, err := decodeAuthorization(listStream)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}
