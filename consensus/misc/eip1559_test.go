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

package misc

import (
	"math/big"
	"testing"

	"github.com/erigontech/execution-core/core/types"
)

const initialBaseFee = 1_000_000_000

// TestBlockGasLimits tests the gasLimit checks for blocks.
func TestBlockGasLimits(t *testing.T) {
	initial := big.NewInt(initialBaseFee)

	for i, tc := range []struct {
		pGasLimit uint64
		gasLimit  uint64
		ok        bool
	}{
		{20000000, 20000000, true}, // No change
		{20000000, 20019530, true}, // Upper limit
		{20000000, 20019531, false},
		{20000000, 19980470, true}, // Lower limit
		{20000000, 19980469, false},
		{40000000, 40039061, true},
		{40000000, 40039062, false},
		{40000000, 39960939, true},
		{40000000, 39960938, false},
	} {
		parent := &types.Header{
			GasUsed:  tc.pGasLimit / 2,
			GasLimit: tc.pGasLimit,
			BaseFee:  initial,
			Number:   big.NewInt(5),
		}
		header := &types.Header{
			GasUsed:  tc.gasLimit / 2,
			GasLimit: tc.gasLimit,
			BaseFee:  CalcBaseFee(parent),
			Number:   big.NewInt(6),
		}
		err := VerifyEip1559Header(parent, header)
		if tc.ok && err != nil {
			t.Errorf("test %d: expected valid header: %s", i, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("test %d: expected invalid header", i)
		}
	}
}

// TestCalcBaseFee assumes all blocks are 1559-blocks.
func TestCalcBaseFee(t *testing.T) {
	tests := []struct {
		parentBaseFee   int64
		parentGasLimit  uint64
		parentGasUsed   uint64
		expectedBaseFee int64
	}{
		{initialBaseFee, 20000000, 10000000, initialBaseFee}, // usage == target
		{initialBaseFee, 20000000, 9000000, 987500000},       // usage below target
		{initialBaseFee, 20000000, 11000000, 1012500000},     // usage above target
	}
	for i, test := range tests {
		parent := &types.Header{
			Number:   big.NewInt(32),
			GasLimit: test.parentGasLimit,
			GasUsed:  test.parentGasUsed,
			BaseFee:  big.NewInt(test.parentBaseFee),
		}
		if have, want := CalcBaseFee(parent), big.NewInt(test.expectedBaseFee); have.Cmp(want) != 0 {
			t.Errorf("test %d: have %d want %d", i, have, want)
		}
	}
}

func TestCalcExcessBlobGas(t *testing.T) {
	tests := []struct {
		parentExcess uint64
		parentUsed   uint64
		want         uint64
	}{
		{0, 0, 0},
		{0, 393216, 0},         // exactly target, 3 blobs
		{0, 786432, 393216},    // 6 blobs, one target over
		{393216, 0, 0},         // excess decays away with no usage
	}
	for i, test := range tests {
		if have := CalcExcessBlobGas(test.parentExcess, test.parentUsed); have != test.want {
			t.Errorf("test %d: have %d want %d", i, have, test.want)
		}
	}
}
