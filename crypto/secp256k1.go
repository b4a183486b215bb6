// Copyright 2021 The go-ethereum Authors
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

package crypto

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// recoverCompact mirrors go-ethereum's pure-Go signature_nocgo.go: it
// reshuffles our (r, s, recoveryID) layout into the "compact signature"
// layout btcec's ECDSA recovery expects -- a leading recovery byte followed
// by r and s -- and recovers the public key, returning it in the 64-byte
// uncompressed X‖Y form used throughout this package.
func recoverCompact(hash, sig []byte) ([]byte, error) {
	var compact [signatureLength]byte
	compact[0] = sig[64] + 27
	copy(compact[1:33], sig[:32])
	copy(compact[33:], sig[32:64])

	pub, _, err := ecdsa.RecoverCompact(compact[:], hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return serializeUncompressed(pub), nil
}

// serializeUncompressed strips the leading 0x04 prefix btcec's uncompressed
// serialization uses, since go-ethereum style addressing hashes the bare
// 64-byte X‖Y coordinate pair.
func serializeUncompressed(pub *btcec.PublicKey) []byte {
	full := pub.SerializeUncompressed()
	return full[1:]
}
