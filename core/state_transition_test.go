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

func TestApplyMessageSimpleTransfer(t *testing.T) {
	st := memstate.New()
	e := vmtest.New(st)

	sender := testSender()
	const initialBalance = 1_000_000_000_000_000
	const value = 1000
	st.SetAccountBalance(sender, big.NewInt(initialBalance))

	header := &types.Header{
		Coinbase: common.HexToAddress("0x00000000000000000000000000000000000c0b"),
		Number:   big.NewInt(1),
		GasLimit: 30_000_000,
		BaseFee:  big.NewInt(1_000_000_000),
	}

	inner := &types.LegacyTx{
		Nonce:    0,
		GasPrice: big.NewInt(2_000_000_000),
		Gas:      21000,
		To:       &testRecipient,
		Value:    big.NewInt(value),
	}
	signLegacy(inner)
	tx := types.NewTx(inner)

	admitted, err := AdmitTx(st, tx, header.GasLimit, nil, header.BaseFee, 0)
	if err != nil {
		t.Fatalf("AdmitTx: %v", err)
	}

	result, err := ApplyMessage(st, e, header, tx, admitted, 0)
	if err != nil {
		t.Fatalf("ApplyMessage: %v", err)
	}
	if result.Err != nil {
		t.Fatalf("unexpected execution error: %v", result.Err)
	}
	if result.NetGasUsed != 21000 {
		t.Errorf("have NetGasUsed %d, want 21000", result.NetGasUsed)
	}

	const gasCost = 21000 * 2_000_000_000
	wantSenderBalance := big.NewInt(initialBalance - gasCost - value)
	got := st.GetAccount(sender)
	if got.Balance.Cmp(wantSenderBalance) != 0 {
		t.Errorf("have sender balance %s, want %s", got.Balance, wantSenderBalance)
	}
	if got.Nonce != 1 {
		t.Errorf("have sender nonce %d, want 1", got.Nonce)
	}

	recipient := st.GetAccount(testRecipient)
	if recipient.Balance.Cmp(big.NewInt(value)) != 0 {
		t.Errorf("have recipient balance %s, want %d", recipient.Balance, value)
	}

	const wantTip = 21000 * 1_000_000_000 // effective tip per gas is gasPrice - baseFee
	coinbase := st.GetAccount(header.Coinbase)
	if coinbase.Balance.Cmp(big.NewInt(wantTip)) != 0 {
		t.Errorf("have coinbase balance %s, want %d", coinbase.Balance, wantTip)
	}
}
