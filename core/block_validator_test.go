// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.

package core

import (
	"math/big"
	"testing"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/core/state/memstate"
	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/core/vm/vmtest"
	"github.com/erigontech/execution-core/trie"
)

func TestStateTransitionEmptyBlock(t *testing.T) {
	st := memstate.New()
	e := vmtest.New(st)
	bc := NewBlockChain(st, big.NewInt(1))

	header := &types.Header{
		Coinbase:         common.HexToAddress("0x00000000000000000000000000000000000c0b"),
		Root:             st.StateRoot(),
		TxHash:           trie.EmptyRootHash,
		ReceiptHash:      trie.EmptyRootHash,
		Difficulty:       new(big.Int),
		Number:           big.NewInt(1),
		GasLimit:         30_000_000,
		GasUsed:          0,
		Time:             1,
		BaseFee:          big.NewInt(1_000_000_000),
		WithdrawalsHash:  trie.EmptyRootHash,
		RequestsHash:     hashRequests(nil),
		UncleHash:        types.EmptyUncleHash,
	}
	block := &types.Block{Header: header}

	if err := bc.StateTransition(e, block); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bc.LastBlock() != block {
		t.Fatal("block was not appended")
	}
}

func TestStateTransitionRejectsOmmers(t *testing.T) {
	st := memstate.New()
	e := vmtest.New(st)
	bc := NewBlockChain(st, big.NewInt(1))

	header := &types.Header{
		Root:            st.StateRoot(),
		TxHash:          trie.EmptyRootHash,
		ReceiptHash:     trie.EmptyRootHash,
		Difficulty:      new(big.Int),
		Number:          big.NewInt(1),
		GasLimit:        30_000_000,
		BaseFee:         big.NewInt(1_000_000_000),
		WithdrawalsHash: trie.EmptyRootHash,
		// UncleHash left zero, not EmptyUncleHash: simulates a block that
		// claims to carry an ommer.
	}
	block := &types.Block{Header: header}

	if err := bc.StateTransition(e, block); err == nil {
		t.Fatal("expected ommer rejection")
	}
}
