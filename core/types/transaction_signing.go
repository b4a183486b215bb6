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
)

// secp256k1N is the order of the secp256k1 curve group.
var secp256k1N, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

// secp256k1halfN is SECP256K1N / 2, the low-S enforcement boundary.
var secp256k1halfN = new(big.Int).Rsh(secp256k1N, 1)

// RecoverSender derives the sending address of tx, per spec §4.2: validates
// (r, s) are in canonical range (0 < r < SECP256K1N, 0 < s <= SECP256K1N/2,
// low-S enforced for every type), computes the type-specific signing hash
// and recovery id, and recovers keccak256(pubkey)[12:32].
func RecoverSender(tx *Transaction, chainID *big.Int) (common.Address, error) {
	v, r, s := tx.RawSignatureValues()
	if r == nil || s == nil {
		return common.Address{}, fmt.Errorf("%w: missing signature", ErrInvalidSignature)
	}
	if r.Sign() <= 0 || r.Cmp(secp256k1N) >= 0 {
		return common.Address{}, fmt.Errorf("%w: r out of range", ErrInvalidSignature)
	}
	if s.Sign() <= 0 || s.Cmp(secp256k1halfN) > 0 {
		return common.Address{}, fmt.Errorf("%w: s out of range (not low-S)", ErrInvalidSignature)
	}

	recoveryID, signingChainID, err := recoveryParams(tx, v)
	if err != nil {
		return common.Address{}, err
	}
	if tx.Type() != LegacyTxType {
		signingChainID = chainID
	} else if signingChainID != nil && chainID != nil && signingChainID.Cmp(chainID) != 0 {
		return common.Address{}, fmt.Errorf("%w: legacy v encodes chain id %v, want %v", ErrInvalidBlock, signingChainID, chainID)
	}

	hash := tx.inner.signingHash(signingChainID)
	sig := make([]byte, 65)
	writeBigIntPadded(sig[0:32], r)
	writeBigIntPadded(sig[32:64], s)
	sig[64] = recoveryID

	pub, err := crypto.Ecrecover(hash.Bytes(), sig)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(pub), nil
}

// recoveryParams extracts the 0/1 recovery id encoded in v, and the chain id
// implied by it for legacy transactions (spec §4.2: y_parity directly for
// typed transactions; v-27 for pre-155 legacy; v-35-2c for EIP-155 legacy,
// with any other v failing InvalidBlock).
func recoveryParams(tx *Transaction, v *big.Int) (byte, *big.Int, error) {
	if tx.Type() != LegacyTxType {
		if v == nil || (v.Cmp(big.NewInt(0)) != 0 && v.Cmp(big.NewInt(1)) != 0) {
			return 0, nil, fmt.Errorf("%w: invalid y_parity %v", ErrInvalidBlock, v)
		}
		return uint8(v.Uint64()), tx.ChainID(), nil
	}
	if v == nil {
		return 0, nil, fmt.Errorf("%w: missing v", ErrInvalidBlock)
	}
	switch {
	case v.Cmp(big.NewInt(27)) == 0:
		return 0, nil, nil
	case v.Cmp(big.NewInt(28)) == 0:
		return 1, nil, nil
	case v.Cmp(big.NewInt(35)) >= 0:
		vc := new(big.Int).Sub(v, big.NewInt(35))
		chainID := new(big.Int).Rsh(vc, 1)
		recoveryID := byte(new(big.Int).And(vc, big.NewInt(1)).Uint64())
		return recoveryID, chainID, nil
	default:
		return 0, nil, fmt.Errorf("%w: invalid legacy v value %v", ErrInvalidBlock, v)
	}
}
