// Copyright 2022 The go-ethereum Authors
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

	"github.com/erigontech/execution-core/params"
)

// CalcExcessBlobGas computes the block's excess_blob_gas field (EIP-4844):
// the accumulated blob gas usage above target, which feeds the blob base
// fee. Matches spec §4.9's calculate_excess_blob_gas.
func CalcExcessBlobGas(parentExcessBlobGas, parentBlobGasUsed uint64) uint64 {
	excess := parentExcessBlobGas + parentBlobGasUsed
	if excess < params.TargetBlobGasPerBlock {
		return 0
	}
	return excess - params.TargetBlobGasPerBlock
}

// CalcBlobFee returns the blob base fee (in wei per blob-gas-unit) implied by
// excessBlobGas, following the fake-exponential curve EIP-4844 defines.
func CalcBlobFee(excessBlobGas uint64) *big.Int {
	return fakeExponential(
		new(big.Int).SetUint64(params.MinBlobGasPrice),
		new(big.Int).SetUint64(excessBlobGas),
		new(big.Int).SetUint64(params.BlobBaseFeeUpdateFraction),
	)
}

// fakeExponential approximates factor * e**(numerator/denominator) using the
// integer Taylor-series expansion specified by EIP-4844, avoiding floating
// point in a consensus-critical computation.
func fakeExponential(factor, numerator, denominator *big.Int) *big.Int {
	i := big.NewInt(1)
	output := new(big.Int)
	numeratorAccum := new(big.Int).Mul(factor, denominator)
	for numeratorAccum.Sign() > 0 {
		output.Add(output, numeratorAccum)
		numeratorAccum.Mul(numeratorAccum, numerator)
		numeratorAccum.Div(numeratorAccum, denominator)
		numeratorAccum.Div(numeratorAccum, i)
		i.Add(i, big.NewInt(1))
	}
	return output.Div(output, denominator)
}
