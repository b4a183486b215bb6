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
	"math/big"
	"testing"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/consensus/misc"
	"github.com/erigontech/execution-core/core/types"
)

func validParentHeader() *types.Header {
	return &types.Header{
		UncleHash:     types.EmptyUncleHash,
		Difficulty:    new(big.Int),
		Number:        big.NewInt(10),
		GasLimit:      30_000_000,
		GasUsed:       15_000_000, // == target, so base fee carries over unchanged
		Time:          1000,
		BaseFee:       big.NewInt(1_000_000_000),
		ExcessBlobGas: 0,
		BlobGasUsed:   0,
	}
}

func childOf(parent *types.Header) *types.Header {
	return &types.Header{
		ParentHash:    parent.Hash(),
		UncleHash:     types.EmptyUncleHash,
		Difficulty:    new(big.Int),
		Number:        big.NewInt(11),
		GasLimit:      30_000_000,
		Time:          1001,
		BaseFee:       misc.CalcBaseFee(parent),
		ExcessBlobGas: misc.CalcExcessBlobGas(parent.ExcessBlobGas, parent.BlobGasUsed),
	}
}

func TestValidateHeaderAccepts(t *testing.T) {
	parent := validParentHeader()
	header := childOf(parent)
	if err := ValidateHeader(header, parent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateHeaderRejectsNonIncreasingTime(t *testing.T) {
	parent := validParentHeader()
	header := childOf(parent)
	header.Time = parent.Time
	if err := ValidateHeader(header, parent); err == nil {
		t.Fatal("expected error for non-increasing timestamp")
	}
}

func TestValidateHeaderRejectsWrongNumber(t *testing.T) {
	parent := validParentHeader()
	header := childOf(parent)
	header.Number = big.NewInt(13)
	if err := ValidateHeader(header, parent); err == nil {
		t.Fatal("expected error for non-sequential number")
	}
}

func TestValidateHeaderRejectsOversizedExtra(t *testing.T) {
	parent := validParentHeader()
	header := childOf(parent)
	header.Extra = make([]byte, maxExtraDataSize+1)
	if err := ValidateHeader(header, parent); err == nil {
		t.Fatal("expected error for oversized extra data")
	}
}

func TestValidateHeaderRejectsNonZeroDifficulty(t *testing.T) {
	parent := validParentHeader()
	header := childOf(parent)
	header.Difficulty = big.NewInt(1)
	if err := ValidateHeader(header, parent); err == nil {
		t.Fatal("expected error for non-zero difficulty")
	}
}

func TestValidateHeaderRejectsNonZeroNonce(t *testing.T) {
	parent := validParentHeader()
	header := childOf(parent)
	header.Nonce = [8]byte{1}
	if err := ValidateHeader(header, parent); err == nil {
		t.Fatal("expected error for non-zero nonce")
	}
}

func TestValidateHeaderRejectsOmmers(t *testing.T) {
	parent := validParentHeader()
	header := childOf(parent)
	header.UncleHash = common.Hash{} // zero value, not EmptyUncleHash
	if err := ValidateHeader(header, parent); err == nil {
		t.Fatal("expected error for non-empty uncle hash")
	}
}

func TestValidateHeaderRejectsParentHashMismatch(t *testing.T) {
	parent := validParentHeader()
	header := childOf(parent)
	header.ParentHash[0] ^= 0xff
	if err := ValidateHeader(header, parent); err == nil {
		t.Fatal("expected error for parent hash mismatch")
	}
}

func TestValidateHeaderRejectsExcessBlobGasMismatch(t *testing.T) {
	parent := validParentHeader()
	header := childOf(parent)
	header.ExcessBlobGas++
	if err := ValidateHeader(header, parent); err == nil {
		t.Fatal("expected error for excess blob gas mismatch")
	}
}

func TestValidateHeaderRejectsGasUsedAboveLimit(t *testing.T) {
	parent := validParentHeader()
	header := childOf(parent)
	header.GasUsed = header.GasLimit + 1
	if err := ValidateHeader(header, parent); err == nil {
		t.Fatal("expected error for gasUsed exceeding gasLimit")
	}
}
