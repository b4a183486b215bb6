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

// Package math holds the arbitrary-precision integer helpers the fee and gas
// arithmetic (spec §4.1, §9 "Arbitrary-precision Uint") is built on. Base-fee
// deltas are computed as parent_base_fee*gas_delta before dividing by the gas
// target; that intermediate product can exceed 64 bits even though every
// final quantity fits, so these helpers operate on *big.Int rather than
// uint64 with overflow checks.
package math

import "math/big"

var (
	Big0 = big.NewInt(0)
	Big1 = big.NewInt(1)
)

// BigMax returns the larger of x or y.
func BigMax(x, y *big.Int) *big.Int {
	if x.Cmp(y) < 0 {
		return y
	}
	return x
}

// BigMin returns the smaller of x or y.
func BigMin(x, y *big.Int) *big.Int {
	if x.Cmp(y) > 0 {
		return y
	}
	return x
}
