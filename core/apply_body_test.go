// Copyright 2015 The go-ethereum Authors
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
	"testing"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/core/state/memstate"
	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/core/vm/vmtest"
)

func TestApplyBodyRunsTransactionsAndWithdrawals(t *testing.T) {
	st := memstate.New()
	e := vmtest.New(st)

	sender := testSender()
	st.SetAccountBalance(sender, big.NewInt(1_000_000_000_000_000))

	header := &types.Header{
		Coinbase: common.HexToAddress("0x00000000000000000000000000000000000c0b"),
		Number:   big.NewInt(1),
		GasLimit: 30_000_000,
		Time:     100,
		BaseFee:  big.NewInt(1_000_000_000),
	}

	inner := &types.LegacyTx{
		Nonce:    0,
		GasPrice: big.NewInt(2_000_000_000),
		Gas:      21000,
		To:       &testRecipient,
		Value:    big.NewInt(1000),
	}
	signLegacy(inner)
	tx := types.NewTx(inner)

	withdrawalAddr := common.HexToAddress("0x0000000000000000000000000000000000beef")
	withdrawals := []*types.Withdrawal{
		{Index: 0, ValidatorIndex: 0, Address: withdrawalAddr, Amount: 5},
	}

	out, err := ApplyBody(st, e, header, []*types.Transaction{tx}, withdrawals, nil, common.Hash{})
	if err != nil {
		t.Fatalf("ApplyBody: %v", err)
	}

	if out.BlockGasUsed != 21000 {
		t.Errorf("have BlockGasUsed %d, want 21000", out.BlockGasUsed)
	}
	if out.TransactionsRoot == (common.Hash{}) {
		t.Error("expected non-empty transactions root")
	}
	if out.WithdrawalsRoot == (common.Hash{}) {
		t.Error("expected non-empty withdrawals root")
	}

	withdrawalAccount := st.GetAccount(withdrawalAddr)
	wantWithdrawn := new(big.Int).Mul(big.NewInt(5), big.NewInt(1_000_000_000))
	if withdrawalAccount.Balance.Cmp(wantWithdrawn) != 0 {
		t.Errorf("have withdrawal balance %s, want %s", withdrawalAccount.Balance, wantWithdrawn)
	}

	recipient := st.GetAccount(testRecipient)
	if recipient.Balance.Cmp(big.NewInt(1000)) != 0 {
		t.Errorf("have recipient balance %s, want 1000", recipient.Balance)
	}

	// No deposit/withdrawal/consolidation requests were queued, so the
	// request list is empty and its hash is keccak256 of the empty input.
	if out.RequestsHash != hashRequests(nil) {
		t.Errorf("have requestsHash %s, want hash of empty request list", out.RequestsHash)
	}
}
