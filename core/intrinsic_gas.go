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

package core

import (
	"fmt"

	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/params"
)

// initCodeWordGas is charged per 32-byte word of a contract-creation
// transaction's init code, on top of TxGasContractCreation.
const initCodeWordGas uint64 = 2

// toWordSize rounds size up to the nearest multiple of 32, expressed in
// whole words.
func toWordSize(size uint64) uint64 {
	if size > (1<<64-1)-31 {
		return (1<<64 - 1) / 32
	}
	return (size + 31) / 32
}

// IntrinsicGas computes the gas a transaction must pay before any execution
// begins (spec §4.3): a flat per-transaction base, a per-byte cost for
// calldata, a creation surcharge plus init-code word cost, access-list
// costs, and a per-authorization surcharge for EIP-7702 transactions.
func IntrinsicGas(data []byte, accessList types.AccessList, authorizationList []types.Authorization, isContractCreation bool) (uint64, error) {
	gas := params.TxGas

	var nz uint64
	for _, b := range data {
		if b != 0 {
			nz++
		}
	}
	if (1<<64-1-gas)/params.TxDataNonZeroGasEIP2028 < nz {
		return 0, fmt.Errorf("%w: calldata gas overflow", types.ErrInvalidBlock)
	}
	gas += nz * params.TxDataNonZeroGasEIP2028

	z := uint64(len(data)) - nz
	if (1<<64-1-gas)/params.TxDataZeroGas < z {
		return 0, fmt.Errorf("%w: calldata gas overflow", types.ErrInvalidBlock)
	}
	gas += z * params.TxDataZeroGas

	if isContractCreation {
		gas += params.TxGasContractCreation - params.TxGas
		words := toWordSize(uint64(len(data)))
		if (1<<64-1-gas)/initCodeWordGas < words {
			return 0, fmt.Errorf("%w: init code gas overflow", types.ErrInvalidBlock)
		}
		gas += words * initCodeWordGas
	}

	gas += accessList.Gas()

	gas += uint64(len(authorizationList)) * params.PerEmptyAccountCost

	return gas, nil
}
