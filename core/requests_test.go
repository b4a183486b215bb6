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

package core

import (
	"bytes"
	"testing"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/params"
)

// depositLog builds a synthetic deposit-contract log with the five dynamic
// fields placed at the ABI offsets extractDepositRequest reads, each filled
// with a distinct repeated byte so a misaligned slice is easy to spot.
func depositLog(pubkey, withdrawalCreds, amount, signature, index byte) *types.Log {
	data := make([]byte, depositLogDataLen)
	fill := func(off int, n int, b byte) {
		for i := 0; i < n; i++ {
			data[off+i] = b
		}
	}
	fill(192, 48, pubkey)
	fill(288, 32, withdrawalCreds)
	fill(352, 8, amount)
	fill(416, 96, signature)
	fill(544, 8, index)
	return &types.Log{
		Address: params.DepositContractAddress,
		Topics:  []common.Hash{depositEventSignature},
		Data:    data,
	}
}

func TestExtractDepositRequestPacksFixedOffsets(t *testing.T) {
	log := depositLog(0x11, 0x22, 0x33, 0x44, 0x55)
	got := extractDepositRequest(log)
	if len(got) != 192 {
		t.Fatalf("have length %d, want 192", len(got))
	}
	var want []byte
	want = append(want, bytesOf(0x11, 48)...)
	want = append(want, bytesOf(0x22, 32)...)
	want = append(want, bytesOf(0x33, 8)...)
	want = append(want, bytesOf(0x44, 96)...)
	want = append(want, bytesOf(0x55, 8)...)
	if !bytes.Equal(got, want) {
		t.Errorf("have %x, want %x", got, want)
	}
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestExtractDepositRequestIgnoresWrongAddress(t *testing.T) {
	log := depositLog(1, 2, 3, 4, 5)
	log.Address[0] ^= 0xff
	if got := extractDepositRequest(log); got != nil {
		t.Errorf("expected nil, got %x", got)
	}
}

func TestExtractDepositRequestIgnoresWrongTopic(t *testing.T) {
	log := depositLog(1, 2, 3, 4, 5)
	log.Topics[0][0] ^= 0xff
	if got := extractDepositRequest(log); got != nil {
		t.Errorf("expected nil, got %x", got)
	}
}

func TestExtractDepositRequestsConcatenatesMultiple(t *testing.T) {
	logs := []*types.Log{
		depositLog(1, 1, 1, 1, 1),
		depositLog(2, 2, 2, 2, 2),
	}
	got := extractDepositRequests(logs)
	if len(got) != 384 {
		t.Fatalf("have length %d, want 384", len(got))
	}
}
