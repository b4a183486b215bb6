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

// Package misc holds the fee-market and gas-limit arithmetic shared between
// header validation (C3) and block assembly: base fee adjustment, gas limit
// bounds checking, and blob gas pricing.
package misc

import (
	"fmt"
	"math/big"

	"github.com/erigontech/execution-core/common/math"
	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/params"
)

// VerifyGasLimit checks that gasLimit is within GasLimitBoundDivisor of
// parentGasLimit and at least MinGasLimit (spec §3, "check_gas_limit").
func VerifyGasLimit(parentGasLimit, gasLimit uint64) error {
	if gasLimit < params.MinGasLimit {
		return fmt.Errorf("%w: gas limit %d below minimum %d", types.ErrInvalidBlock, gasLimit, params.MinGasLimit)
	}
	maxDelta := parentGasLimit / params.GasLimitBoundDivisor
	if gasLimit > parentGasLimit && gasLimit-parentGasLimit >= maxDelta {
		return fmt.Errorf("%w: gas limit increased too much, parent %d, current %d, max delta %d", types.ErrInvalidBlock, parentGasLimit, gasLimit, maxDelta)
	}
	if gasLimit < parentGasLimit && parentGasLimit-gasLimit >= maxDelta {
		return fmt.Errorf("%w: gas limit decreased too much, parent %d, current %d, max delta %d", types.ErrInvalidBlock, parentGasLimit, gasLimit, maxDelta)
	}
	return nil
}

// VerifyEip1559Header checks the gas limit bound and the base fee recomputed
// from parent against the value the header claims (spec §3).
func VerifyEip1559Header(parent, header *types.Header) error {
	if err := VerifyGasLimit(parent.GasLimit, header.GasLimit); err != nil {
		return err
	}
	if header.BaseFee == nil {
		return fmt.Errorf("%w: header is missing baseFee", types.ErrInvalidBlock)
	}
	expected := CalcBaseFee(parent)
	if header.BaseFee.Cmp(expected) != 0 {
		return fmt.Errorf("%w: invalid baseFee: have %s, want %s, parentBaseFee %s, parentGasUsed %d",
			types.ErrInvalidBlock, header.BaseFee, expected, parent.BaseFee, parent.GasUsed)
	}
	return nil
}

// CalcBaseFee computes the base fee per gas of a block built on top of
// parent, following spec §4.1's calculate_base_fee_per_gas: unchanged at
// target, increased by up to 1/denominator above target, decreased by up to
// 1/denominator below target, floored at zero.
func CalcBaseFee(parent *types.Header) *big.Int {
	var (
		parentGasTarget          = parent.GasLimit / params.ElasticityMultiplier
		parentGasTargetBig       = new(big.Int).SetUint64(parentGasTarget)
		baseFeeChangeDenominator = new(big.Int).SetUint64(params.BaseFeeChangeDenominator)
	)
	if parent.GasUsed == parentGasTarget {
		return new(big.Int).Set(parent.BaseFee)
	}
	if parent.GasUsed > parentGasTarget {
		// Parent used more gas than its target: base fee increases.
		gasUsedDelta := new(big.Int).SetUint64(parent.GasUsed - parentGasTarget)
		x := new(big.Int).Mul(parent.BaseFee, gasUsedDelta)
		y := x.Div(x, parentGasTargetBig)
		baseFeeDelta := math.BigMax(x.Div(y, baseFeeChangeDenominator), math.Big1)
		return x.Add(parent.BaseFee, baseFeeDelta)
	}
	// Parent used less gas than its target: base fee decreases, floored at zero.
	gasUsedDelta := new(big.Int).SetUint64(parentGasTarget - parent.GasUsed)
	x := new(big.Int).Mul(parent.BaseFee, gasUsedDelta)
	y := x.Div(x, parentGasTargetBig)
	baseFeeDelta := x.Div(y, baseFeeChangeDenominator)
	return math.BigMax(x.Sub(parent.BaseFee, baseFeeDelta), math.Big0)
}
