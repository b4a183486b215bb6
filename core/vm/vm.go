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

// Package vm declares the EVM contract the core is built against (spec §6):
// process_message_call and prepare_message. The core never interprets
// bytecode itself; it is injected an EVM implementation, the same way it is
// injected a State.
package vm

import (
	"math/big"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/core/types"
)

// Message is a call into the EVM: sender, optional recipient (nil means
// contract creation), value, calldata, gas, and the pending EIP-7702
// delegations a SetCode transaction installs before execution.
type Message struct {
	From              common.Address
	To                *common.Address
	Value             *big.Int
	Data              []byte
	Gas               uint64
	AccessList        types.AccessList
	AuthorizationList []types.Authorization
	IsSystemCall      bool
}

// Env carries the block-level and gas-price context a message executes
// against; it is held constant across every message call within a block
// except gas_price/blob hashes, which the caller fills in per transaction.
type Env struct {
	Coinbase         common.Address
	GasLimit         uint64
	BlockNumber      *big.Int
	Time             uint64
	Difficulty       *big.Int
	BaseFee          *big.Int
	GasPrice         *big.Int
	BlobVersionedHashes []common.Hash
	BlobBaseFee      *big.Int
	Random           common.Hash
}

// MessageCallOutput is everything process_message_call returns (spec §6).
type MessageCallOutput struct {
	GasLeft         uint64
	RefundCounter   uint64
	Logs            []*types.Log
	AccountsToDelete map[common.Address]struct{}
	TouchedAccounts map[common.Address]struct{}
	Err             error
	ReturnData      []byte
}

// EVM is the message-call interpreter contract.
type EVM interface {
	// PrepareMessage seeds any interpreter-side warm/cold access-list
	// bookkeeping for msg before ProcessMessageCall executes it.
	PrepareMessage(msg Message, env Env)
	ProcessMessageCall(msg Message, env Env) MessageCallOutput
}
