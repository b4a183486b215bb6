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
	"math/big"

	"github.com/erigontech/execution-core/consensus/misc"
	"github.com/erigontech/execution-core/core/state"
	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/core/vm"
)

/*
The State Transitioning Model

A state transition is the change a single transaction makes to the current
world state (spec §4.6): debit the sender the fee it committed to at
admission, run the message through the EVM, refund unused gas, and tip the
coinbase.
*/

// ExecutionResult is what ApplyMessage hands back to the body applier (C7):
// net gas used after refunds, the logs the call emitted, and any execution
// error (which, unlike an admission failure, does not invalidate the block).
type ExecutionResult struct {
	NetGasUsed uint64
	Logs       []*types.Log
	Err        error
}

// ApplyMessage executes an admitted transaction against st via e, following
// the eight ordered steps of spec §4.6. admitted and header must already
// reflect a transaction that passed AdmitTx.
func ApplyMessage(st state.IntraBlockState, e vm.EVM, header *types.Header, tx *types.Transaction, admitted *AdmittedTx, excessBlobGas uint64) (*ExecutionResult, error) {
	// Step 1: blob gas fee, zero for non-blob types.
	blobGasFee := new(big.Int)
	if tx.Type() == types.BlobTxType {
		blobBaseFee := misc.CalcBlobFee(excessBlobGas)
		blobGasFee = new(big.Int).Mul(new(big.Int).SetUint64(tx.TotalBlobGas()), blobBaseFee)
	}

	// Step 2: effective_gas_fee = tx.gas * env.gas_price.
	effectiveGasFee := new(big.Int).Mul(new(big.Int).SetUint64(tx.Gas()), admitted.EffectiveGasPrice)

	// Step 3: execution_gas = tx.gas - intrinsic_cost(tx).
	intrinsic, err := IntrinsicGas(tx.Data(), tx.AccessList(), tx.AuthorizationList(), tx.IsContractCreation())
	if err != nil {
		return nil, err
	}
	executionGas := tx.Gas() - intrinsic

	// Step 4: increment sender nonce, debit effective_gas_fee + blob_gas_fee.
	st.IncrementNonce(admitted.Sender)
	sender := st.GetAccount(admitted.Sender)
	debit := new(big.Int).Add(effectiveGasFee, blobGasFee)
	st.SetAccountBalance(admitted.Sender, new(big.Int).Sub(sender.Balance, debit))

	// Steps 5-6: build the message (access list seeding is the EVM
	// collaborator's responsibility, driven off msg.AccessList) and invoke it.
	msg := vm.Message{
		From:              admitted.Sender,
		To:                tx.To(),
		Value:             tx.Value(),
		Data:              tx.Data(),
		Gas:               executionGas,
		AccessList:        tx.AccessList(),
		AuthorizationList: tx.AuthorizationList(),
	}
	env := vm.Env{
		Coinbase:            header.Coinbase,
		GasLimit:            header.GasLimit,
		BlockNumber:         new(big.Int).Set(header.Number),
		Time:                header.Time,
		Difficulty:          new(big.Int),
		BaseFee:             header.BaseFee,
		GasPrice:            admitted.EffectiveGasPrice,
		BlobVersionedHashes: admitted.BlobVersionedHashes,
		BlobBaseFee:         misc.CalcBlobFee(excessBlobGas),
		Random:              header.MixDigest,
	}
	e.PrepareMessage(msg, env)
	out := e.ProcessMessageCall(msg, env)

	// Step 7: refund unused gas, tip the coinbase, clean up destroyed accounts.
	gasUsedBeforeRefund := tx.Gas() - out.GasLeft
	gasRefund := minUint64(gasUsedBeforeRefund/5, out.RefundCounter)

	senderRefund := new(big.Int).Mul(new(big.Int).SetUint64(out.GasLeft+gasRefund), admitted.EffectiveGasPrice)
	sender = st.GetAccount(admitted.Sender)
	st.SetAccountBalance(admitted.Sender, new(big.Int).Add(sender.Balance, senderRefund))

	// Priority fee uses env.gas_price - env.base_fee_per_gas directly; the
	// min(tip, feecap-base) clamp already happened when EffectiveGasPrice
	// was computed during admission.
	tipPerGas := new(big.Int).Sub(admitted.EffectiveGasPrice, header.BaseFee)
	gasForCoinbase := new(big.Int).SetUint64(gasUsedBeforeRefund - gasRefund)
	priorityFee := new(big.Int).Mul(gasForCoinbase, tipPerGas)

	coinbase := st.GetAccount(header.Coinbase)
	coinbaseBalanceAfter := new(big.Int).Add(coinbase.Balance, priorityFee)
	if coinbaseBalanceAfter.Sign() != 0 {
		st.SetAccountBalance(header.Coinbase, coinbaseBalanceAfter)
	} else if st.AccountExistsAndIsEmpty(header.Coinbase) {
		st.DestroyAccount(header.Coinbase)
	}

	for addr := range out.AccountsToDelete {
		st.DestroyAccount(addr)
	}
	st.DestroyTouchedEmptyAccounts(out.TouchedAccounts)

	// Step 8.
	return &ExecutionResult{
		NetGasUsed: gasUsedBeforeRefund - gasRefund,
		Logs:       out.Logs,
		Err:        out.Err,
	}, nil
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
