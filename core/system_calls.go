// Copyright 2023 The go-ethereum Authors
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

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/core/state"
	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/core/vm"
	"github.com/erigontech/execution-core/params"
)

// systemCall drives a synthetic message call the way spec §4.5 requires:
// SYSTEM_ADDRESS as both caller and origin, a fixed 30,000,000 gas
// allowance, no value transfer, and gas_price pinned to the block's base
// fee. It never charges SYSTEM_ADDRESS, never produces a receipt, and never
// counts toward the block's gas usage; any empty accounts the call touches
// are destroyed once it returns.
func systemCall(st state.IntraBlockState, e vm.EVM, header *types.Header, to common.Address, data []byte) {
	msg := vm.Message{
		From:         params.SystemAddress,
		To:           &to,
		Value:        new(big.Int),
		Data:         data,
		Gas:          params.SystemTransactionGas,
		IsSystemCall: true,
	}
	env := vm.Env{
		Coinbase:    header.Coinbase,
		GasLimit:    header.GasLimit,
		BlockNumber: new(big.Int).Set(header.Number),
		Time:        header.Time,
		Difficulty:  new(big.Int),
		BaseFee:     header.BaseFee,
		GasPrice:    header.BaseFee,
		Random:      header.MixDigest,
	}
	e.PrepareMessage(msg, env)
	out := e.ProcessMessageCall(msg, env)
	st.DestroyTouchedEmptyAccounts(out.TouchedAccounts)
}

// RunBeaconRootsCall invokes the EIP-4788 beacon-roots predeploy with the
// header's parent beacon block root (invocation site 1 of spec §4.5).
func RunBeaconRootsCall(st state.IntraBlockState, e vm.EVM, header *types.Header) {
	systemCall(st, e, header, params.BeaconRootsAddress, header.ParentBeaconRoot.Bytes())
}

// RunHistoryStorageCall invokes the EIP-2935 history-storage predeploy with
// parentHash, the last entry of block_hashes (invocation site 2).
func RunHistoryStorageCall(st state.IntraBlockState, e vm.EVM, header *types.Header, parentHash common.Hash) {
	systemCall(st, e, header, params.HistoryStorageAddress, parentHash.Bytes())
}

// RunWithdrawalRequestsCall invokes the EIP-7002 withdrawal request
// predeploy with empty calldata, after all transactions and withdrawals
// (invocation site 3). It returns the predeploy's encoded output, the
// source withdrawal requests get assembled from.
func RunWithdrawalRequestsCall(st state.IntraBlockState, e vm.EVM, header *types.Header) []byte {
	return runRequestCall(st, e, header, params.WithdrawalRequestPredeployAddress)
}

// RunConsolidationRequestsCall invokes the EIP-7251 consolidation request
// predeploy with empty calldata, immediately after the withdrawal request
// call (invocation site 4).
func RunConsolidationRequestsCall(st state.IntraBlockState, e vm.EVM, header *types.Header) []byte {
	return runRequestCall(st, e, header, params.ConsolidationRequestPredeployAddress)
}

func runRequestCall(st state.IntraBlockState, e vm.EVM, header *types.Header, to common.Address) []byte {
	msg := vm.Message{
		From:         params.SystemAddress,
		To:           &to,
		Value:        new(big.Int),
		Data:         nil,
		Gas:          params.SystemTransactionGas,
		IsSystemCall: true,
	}
	env := vm.Env{
		Coinbase:    header.Coinbase,
		GasLimit:    header.GasLimit,
		BlockNumber: new(big.Int).Set(header.Number),
		Time:        header.Time,
		Difficulty:  new(big.Int),
		BaseFee:     header.BaseFee,
		GasPrice:    header.BaseFee,
		Random:      header.MixDigest,
	}
	e.PrepareMessage(msg, env)
	out := e.ProcessMessageCall(msg, env)
	st.DestroyTouchedEmptyAccounts(out.TouchedAccounts)
	return out.ReturnData
}
