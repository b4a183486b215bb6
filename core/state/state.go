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

// Package state declares the persistent world-state contract the core is
// built against (spec §6's "State" collaborator). The core never depends on
// a concrete store; it is injected one satisfying this interface, letting a
// caller back it with a real trie-backed database or, as memstate does, a
// flat map for tests.
package state

import (
	"math/big"

	"github.com/erigontech/execution-core/common"
)

// Account is the subset of account state the core reads directly.
type Account struct {
	Nonce   uint64
	Balance *big.Int
	Code    []byte
}

// IntraBlockState is the world-state contract: get_account,
// set_account_balance, increment_nonce, destroy_account,
// destroy_touched_empty_accounts, account_exists_and_is_empty,
// process_withdrawal, state_root, as named in spec §6.
type IntraBlockState interface {
	GetAccount(addr common.Address) Account
	SetAccountBalance(addr common.Address, balance *big.Int)
	IncrementNonce(addr common.Address)
	DestroyAccount(addr common.Address)
	DestroyTouchedEmptyAccounts(touched map[common.Address]struct{})
	AccountExistsAndIsEmpty(addr common.Address) bool
	ProcessWithdrawal(addr common.Address, amountWei *big.Int)
	StateRoot() common.Hash

	// GetCode and SetCode back the EIP-7702 delegation designator and the
	// predeploy contracts' own code, both read by the EVM collaborator.
	GetCode(addr common.Address) []byte
	SetCode(addr common.Address, code []byte)

	// GetStorage and SetStorage back predeploy contract execution (ring
	// buffers for beacon roots / history storage, request queues).
	GetStorage(addr common.Address, key common.Hash) common.Hash
	SetStorage(addr common.Address, key common.Hash, value common.Hash)
}
