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
	"bytes"
	"math/big"
	"testing"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/core/state/memstate"
	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/core/vm/vmtest"
	"github.com/erigontech/execution-core/params"
)

func testHeader() *types.Header {
	return &types.Header{
		Coinbase:         common.HexToAddress("0x00000000000000000000000000000000000c0b"),
		Number:           big.NewInt(1),
		GasLimit:         30_000_000,
		Time:             100,
		BaseFee:          big.NewInt(1_000_000_000),
		ParentBeaconRoot: common.HexToHash("0x01"),
	}
}

func TestRunBeaconRootsCallStoresRoot(t *testing.T) {
	st := memstate.New()
	e := vmtest.New(st)
	header := testHeader()
	// A deployed predeploy carries code; without it the account is empty and
	// the post-call sweep of touched empty accounts removes it with its storage.
	st.SetCode(params.BeaconRootsAddress, []byte{0x00})

	RunBeaconRootsCall(st, e, header)

	const beaconRootsRingLen = 8191 // mirrors vmtest's own ring buffer length
	rootKey := common.BytesToHash(big.NewInt(beaconRootsRingLen).Bytes())
	got := st.GetStorage(params.BeaconRootsAddress, rootKey)
	if got != header.ParentBeaconRoot {
		t.Errorf("have %s, want %s", got, header.ParentBeaconRoot)
	}
}

func TestRunHistoryStorageCallAppendsHash(t *testing.T) {
	st := memstate.New()
	e := vmtest.New(st)
	header := testHeader()
	parentHash := common.HexToHash("0xabc")
	st.SetCode(params.HistoryStorageAddress, []byte{0x00})

	RunHistoryStorageCall(st, e, header, parentHash)

	key := common.BytesToHash(big.NewInt(0).Bytes())
	got := st.GetStorage(params.HistoryStorageAddress, key)
	if got != parentHash {
		t.Errorf("have %s, want %s", got, parentHash)
	}
}

func TestRunWithdrawalRequestsCallReturnsQueuedPayload(t *testing.T) {
	st := memstate.New()
	e := vmtest.New(st)
	header := testHeader()

	payload := bytes.Repeat([]byte{0xAB}, 12)
	vmtest.QueueRequest(st, params.WithdrawalRequestPredeployAddress, payload)

	want := common.BytesToHash(payload).Bytes()
	got := RunWithdrawalRequestsCall(st, e, header)
	if !bytes.Equal(got, want) {
		t.Errorf("have %x, want %x", got, want)
	}

	// A second call with nothing queued returns nothing.
	if got := RunWithdrawalRequestsCall(st, e, header); len(got) != 0 {
		t.Errorf("expected empty return on second call, got %x", got)
	}
}

func TestRunConsolidationRequestsCallReturnsQueuedPayload(t *testing.T) {
	st := memstate.New()
	e := vmtest.New(st)
	header := testHeader()

	payload := bytes.Repeat([]byte{0xCD}, 16)
	vmtest.QueueRequest(st, params.ConsolidationRequestPredeployAddress, payload)

	want := common.BytesToHash(payload).Bytes()
	got := RunConsolidationRequestsCall(st, e, header)
	if !bytes.Equal(got, want) {
		t.Errorf("have %x, want %x", got, want)
	}
}
