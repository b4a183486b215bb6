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

// Package memstate is a flat in-memory implementation of state.IntraBlockState,
// used by tests and by tools that exercise the core without a real
// trie-backed database.
package memstate

import (
	"math/big"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/core/state"
	"github.com/erigontech/execution-core/rlp"
	"github.com/erigontech/execution-core/trie"
)

type account struct {
	nonce   uint64
	balance *big.Int
	code    []byte
	storage map[common.Hash]common.Hash
}

func newAccount() *account {
	return &account{balance: new(big.Int), storage: make(map[common.Hash]common.Hash)}
}

// State is a flat, non-persistent implementation of state.IntraBlockState.
type State struct {
	accounts map[common.Address]*account
}

// New returns an empty State.
func New() *State {
	return &State{accounts: make(map[common.Address]*account)}
}

func (s *State) get(addr common.Address) *account {
	a, ok := s.accounts[addr]
	if !ok {
		a = newAccount()
		s.accounts[addr] = a
	}
	return a
}

func (s *State) GetAccount(addr common.Address) state.Account {
	a := s.get(addr)
	return state.Account{Nonce: a.nonce, Balance: new(big.Int).Set(a.balance), Code: a.code}
}

func (s *State) SetAccountBalance(addr common.Address, balance *big.Int) {
	s.get(addr).balance = new(big.Int).Set(balance)
}

func (s *State) IncrementNonce(addr common.Address) {
	s.get(addr).nonce++
}

func (s *State) DestroyAccount(addr common.Address) {
	delete(s.accounts, addr)
}

func (s *State) DestroyTouchedEmptyAccounts(touched map[common.Address]struct{}) {
	for addr := range touched {
		if s.AccountExistsAndIsEmpty(addr) {
			delete(s.accounts, addr)
		}
	}
}

func (s *State) AccountExistsAndIsEmpty(addr common.Address) bool {
	a, ok := s.accounts[addr]
	if !ok {
		return false
	}
	return a.nonce == 0 && a.balance.Sign() == 0 && len(a.code) == 0
}

func (s *State) ProcessWithdrawal(addr common.Address, amountWei *big.Int) {
	a := s.get(addr)
	a.balance = new(big.Int).Add(a.balance, amountWei)
}

func (s *State) GetCode(addr common.Address) []byte {
	return s.get(addr).code
}

func (s *State) SetCode(addr common.Address, code []byte) {
	s.get(addr).code = code
}

func (s *State) GetStorage(addr common.Address, key common.Hash) common.Hash {
	return s.get(addr).storage[key]
}

func (s *State) SetStorage(addr common.Address, key, value common.Hash) {
	s.get(addr).storage[key] = value
}

// StateRoot computes a Merkle-Patricia root over every known account,
// keyed by address and valued by a minimal RLP account record
// [nonce, balance, code] (the raw code, not its hash). This is not
// go-ethereum's real secure state trie (accounts are keyed by address
// directly, not keccak256(address), and storage tries are not modeled) --
// acceptable for an in-memory test double whose only job is to give
// state_root() a value that changes when the account set or any account's
// nonce, balance or code changes. Storage does not affect the root.
func (s *State) StateRoot() common.Hash {
	tr := trie.New()
	for addr, a := range s.accounts {
		e := rlp.NewEncoder()
		e.WriteUint64(a.nonce)
		e.WriteBigInt(a.balance)
		e.WriteBytes(a.code)
		tr.Set(addr.Bytes(), rlp.EncodeList(e.Bytes()))
	}
	return tr.Root()
}
