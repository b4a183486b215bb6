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

// Package vmtest is a minimal stand-in for vm.EVM: it does not interpret
// general bytecode, but it implements the four fixed predeploy contracts
// (spec §4.5) directly in Go, which is enough to drive the system-call and
// transaction-executor tests end to end without a real interpreter.
package vmtest

import (
	"math/big"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/core/state"
	"github.com/erigontech/execution-core/core/vm"
	"github.com/erigontech/execution-core/params"
)

// EVM is a predeploy-aware test double for vm.EVM.
type EVM struct {
	State state.IntraBlockState
}

func New(s state.IntraBlockState) *EVM { return &EVM{State: s} }

func (e *EVM) PrepareMessage(vm.Message, vm.Env) {}

func (e *EVM) ProcessMessageCall(msg vm.Message, env vm.Env) vm.MessageCallOutput {
	touched := map[common.Address]struct{}{}
	if msg.To != nil {
		touched[*msg.To] = struct{}{}
	}
	out := vm.MessageCallOutput{
		GasLeft:         msg.Gas,
		AccountsToDelete: map[common.Address]struct{}{},
		TouchedAccounts: touched,
	}

	if msg.Value != nil && msg.Value.Sign() != 0 && msg.To != nil {
		from := e.State.GetAccount(msg.From)
		to := e.State.GetAccount(*msg.To)
		e.State.SetAccountBalance(msg.From, new(big.Int).Sub(from.Balance, msg.Value))
		e.State.SetAccountBalance(*msg.To, new(big.Int).Add(to.Balance, msg.Value))
	}

	if msg.To == nil {
		out.ReturnData = []byte{}
		return out
	}

	switch *msg.To {
	case params.BeaconRootsAddress:
		out.ReturnData = e.runBeaconRoots(msg.Data)
	case params.HistoryStorageAddress:
		out.ReturnData = e.runHistoryStorage(msg.Data)
	case params.WithdrawalRequestPredeployAddress:
		out.ReturnData = e.runRequestQueue(params.WithdrawalRequestPredeployAddress, msg.Data)
	case params.ConsolidationRequestPredeployAddress:
		out.ReturnData = e.runRequestQueue(params.ConsolidationRequestPredeployAddress, msg.Data)
	default:
		out.ReturnData = []byte{}
	}
	return out
}

const historyBufferLen = 8191

// runBeaconRoots stores the parent beacon block root in a two-part ring
// buffer shaped like EIP-4788's: slot idx holds idx itself and slot
// idx + historyBufferLen holds the root, where idx is the next value of the
// contract's write cursor rather than a block timestamp.
func (e *EVM) runBeaconRoots(data []byte) []byte {
	if len(data) != 32 {
		return nil
	}
	root := common.BytesToHash(data)
	// The caller supplies only the root; the timestamp slot is whatever the
	// ring buffer's write cursor is at, tracked via a dedicated counter key
	// so repeated calls within a test still land at distinct slots.
	idx := e.nextSlot(params.BeaconRootsAddress)
	timestampKey := common.BytesToHash(big.NewInt(int64(idx)).Bytes())
	rootKey := common.BytesToHash(big.NewInt(int64(idx) + historyBufferLen).Bytes())
	e.State.SetStorage(params.BeaconRootsAddress, timestampKey, common.BytesToHash(big.NewInt(int64(idx)).Bytes()))
	e.State.SetStorage(params.BeaconRootsAddress, rootKey, root)
	return []byte{}
}

// runHistoryStorage appends parentHash to the ring buffer the way
// EIP-2935's reference implementation does: one slot per recent block.
func (e *EVM) runHistoryStorage(data []byte) []byte {
	if len(data) != 32 {
		return nil
	}
	hash := common.BytesToHash(data)
	idx := e.nextSlot(params.HistoryStorageAddress)
	key := common.BytesToHash(big.NewInt(int64(idx) % int64(params.HistoryServeWindow)).Bytes())
	e.State.SetStorage(params.HistoryStorageAddress, key, hash)
	return []byte{}
}

// runRequestQueue returns whatever has been queued at addr via QueueRequest
// and clears the queue, modeling the withdrawal/consolidation request
// predeploys' "dequeue on system call" behavior closely enough for tests.
func (e *EVM) runRequestQueue(addr common.Address, _ []byte) []byte {
	key := common.BytesToHash([]byte("queued-request"))
	v := e.State.GetStorage(addr, key)
	if v == (common.Hash{}) {
		return []byte{}
	}
	e.State.SetStorage(addr, key, common.Hash{})
	return v.Bytes()
}

// QueueRequest lets a test pre-load the withdrawal or consolidation
// predeploy's next return value, standing in for state that a real
// contract would have accumulated via earlier user transactions.
func QueueRequest(s state.IntraBlockState, addr common.Address, payload []byte) {
	key := common.BytesToHash([]byte("queued-request"))
	s.SetStorage(addr, key, common.BytesToHash(payload))
}

func (e *EVM) nextSlot(addr common.Address) uint64 {
	key := common.BytesToHash([]byte("slot-cursor"))
	cur := e.State.GetStorage(addr, key)
	n := new(big.Int).SetBytes(cur.Bytes()).Uint64()
	e.State.SetStorage(addr, key, common.BytesToHash(big.NewInt(int64(n)+1).Bytes()))
	return n
}
