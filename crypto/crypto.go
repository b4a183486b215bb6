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

// Package crypto implements the two cryptographic primitives the spec names
// as external collaborators (§6): keccak256 and secp256k1 recovery. Both are
// pure functions over bytes; no key management or signing lives here, since
// the core never signs anything, only verifies.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/erigontech/execution-core/common"
)

// DigestLength is the length in bytes of a Keccak256 digest.
const DigestLength = 32

// Keccak256 computes the Keccak256 hash of the concatenated inputs.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash computes the Keccak256 hash of the concatenated inputs and
// returns it as a common.Hash.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

var ErrInvalidSignature = errors.New("invalid signature")

// PubkeyToAddress derives the 20-byte address from a 64-byte uncompressed
// public key (X‖Y, no leading 0x04 prefix), matching spec §4.2:
// keccak256(pubkey)[12:32].
func PubkeyToAddress(pubkey []byte) common.Address {
	return common.BytesToAddress(Keccak256(pubkey)[12:])
}

// signatureLength is 65 bytes: 32-byte R, 32-byte S, 1-byte recovery id.
const signatureLength = 64 + 1

// errInvalidRecoveryID flags a recovery id outside {0,1,2,3}; the spec only
// ever supplies {0,1} (y_parity / v-27 / v-35-2*chainid), but the underlying
// library accepts the wider secp256k1 convention.
var errInvalidRecoveryID = errors.New("invalid recovery id")

// Ecrecover recovers the 64-byte uncompressed public key (X‖Y) that produced
// sig (r‖s‖recoveryID, 65 bytes) over hash. This is the `secp256k1_recover`
// collaborator of spec §6, built the way go-ethereum's pure-Go
// crypto/signature_nocgo.go builds one: wrap (r,s,v) into the 65-byte
// "compact" format btcec expects and call its ECDSA recovery routine.
func Ecrecover(hash, sig []byte) ([]byte, error) {
	pub, err := SigToPub(hash, sig)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// SigToPub recovers the public key from hash and sig (r‖s‖recoveryID).
func SigToPub(hash, sig []byte) ([]byte, error) {
	if len(sig) != signatureLength {
		return nil, fmt.Errorf("%w: signature must be %d bytes long", ErrInvalidSignature, signatureLength)
	}
	if sig[64] >= 4 {
		return nil, errInvalidRecoveryID
	}
	return recoverCompact(hash, sig)
}
