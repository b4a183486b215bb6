// Copyright 2015 The go-ethereum Authors
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

package core

import (
	"fmt"
	"math/big"

	"github.com/erigontech/execution-core/consensus/misc"
	"github.com/erigontech/execution-core/core/types"
)

const maxExtraDataSize = 32

// ValidateHeader checks header's shape and its linkage to parent (C3):
// gas accounting, fee-market fields, monotonic number/timestamp, and the
// fixed-value fields a valid post-merge, ommer-less header must carry.
func ValidateHeader(header, parent *types.Header) error {
	if header.GasUsed > header.GasLimit {
		return fmt.Errorf("%w: gasUsed %d exceeds gasLimit %d", types.ErrInvalidBlock, header.GasUsed, header.GasLimit)
	}
	if err := misc.VerifyEip1559Header(parent, header); err != nil {
		return err
	}
	if header.Time <= parent.Time {
		return fmt.Errorf("%w: timestamp %d not after parent timestamp %d", types.ErrInvalidBlock, header.Time, parent.Time)
	}
	expectedNumber := new(big.Int).Add(parent.Number, big.NewInt(1))
	if header.Number.Cmp(expectedNumber) != 0 {
		return fmt.Errorf("%w: number %s is not parent number %s + 1", types.ErrInvalidBlock, header.Number, parent.Number)
	}
	if len(header.Extra) > maxExtraDataSize {
		return fmt.Errorf("%w: extra-data too long: %d > %d", types.ErrInvalidBlock, len(header.Extra), maxExtraDataSize)
	}
	if header.Difficulty == nil || header.Difficulty.Sign() != 0 {
		return fmt.Errorf("%w: non-zero difficulty", types.ErrInvalidBlock)
	}
	if header.Nonce != ([8]byte{}) {
		return fmt.Errorf("%w: non-zero nonce", types.ErrInvalidBlock)
	}
	if header.UncleHash != types.EmptyUncleHash {
		return fmt.Errorf("%w: %w", types.ErrInvalidBlock, ErrOmmersNotAllowed)
	}
	wantParentHash := parent.Hash()
	if header.ParentHash != wantParentHash {
		return fmt.Errorf("%w: parentHash mismatch: have %s, want %s", types.ErrInvalidBlock, header.ParentHash, wantParentHash)
	}
	excessBlobGas := misc.CalcExcessBlobGas(parent.ExcessBlobGas, parent.BlobGasUsed)
	if header.ExcessBlobGas != excessBlobGas {
		return fmt.Errorf("%w: excessBlobGas mismatch: have %d, want %d", types.ErrInvalidBlock, header.ExcessBlobGas, excessBlobGas)
	}
	return nil
}
