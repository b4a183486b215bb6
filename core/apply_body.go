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

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/core/state"
	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/core/vm"
	"github.com/erigontech/execution-core/crypto"
	"github.com/erigontech/execution-core/params"
	"github.com/erigontech/execution-core/trie"
)

// ApplyBodyOutput is everything the body applier computes that must match
// the candidate header byte-for-byte (spec §4.7 step 7).
type ApplyBodyOutput struct {
	BlockGasUsed     uint64
	TransactionsRoot common.Hash
	ReceiptRoot      common.Hash
	BlockLogsBloom   common.Bloom
	StateRoot        common.Hash
	WithdrawalsRoot  common.Hash
	BlobGasUsed      uint64
	RequestsHash     common.Hash
}

// ApplyBody runs the full block body (C7): the beacon-roots and
// history-storage system calls, every transaction in order, every
// withdrawal in order, and the withdrawal/consolidation request system
// calls, then assembles the commitments the header must match.
func ApplyBody(
	st state.IntraBlockState,
	e vm.EVM,
	header *types.Header,
	txs []*types.Transaction,
	withdrawals []*types.Withdrawal,
	chainID *big.Int,
	parentHash common.Hash,
) (*ApplyBodyOutput, error) {
	gasAvailable := new(GasPool).AddGas(header.GasLimit)
	var blobGasUsed uint64
	var blockLogs []*types.Log
	var depositBytes []byte

	// Step 1: beacon-roots, then history-storage.
	RunBeaconRootsCall(st, e, header)
	RunHistoryStorageCall(st, e, header, parentHash)

	txEncoded := make([][]byte, len(txs))
	receiptEncoded := make([][]byte, len(txs))

	// Step 2: each transaction in order.
	for i, tx := range txs {
		txEncoded[i] = tx.EncodeRLP()

		admitted, err := AdmitTx(st, tx, gasAvailable.Gas(), chainID, header.BaseFee, header.ExcessBlobGas)
		if err != nil {
			return nil, err
		}
		result, err := ApplyMessage(st, e, header, tx, admitted, header.ExcessBlobGas)
		if err != nil {
			return nil, err
		}
		if err := gasAvailable.SubGas(result.NetGasUsed); err != nil {
			return nil, err
		}

		receipt := &types.Receipt{
			Type:              tx.Type(),
			Succeeded:         result.Err == nil,
			CumulativeGasUsed: header.GasLimit - gasAvailable.Gas(),
			Bloom:             types.CreateBloom(result.Logs),
			Logs:              result.Logs,
		}
		receiptEncoded[i] = receipt.EncodeRLP()

		depositBytes = append(depositBytes, extractDepositRequests(result.Logs)...)
		blockLogs = append(blockLogs, result.Logs...)
		blobGasUsed += tx.TotalBlobGas()
	}

	blockGasUsed := header.GasLimit - gasAvailable.Gas()
	blockLogsBloom := types.CreateBloom(blockLogs)

	transactionsRoot := trie.DeriveRoot(len(txs), func(i int) []byte { return txEncoded[i] })
	receiptRoot := trie.DeriveRoot(len(txs), func(i int) []byte { return receiptEncoded[i] })

	// Step 4: withdrawals, crediting each address and destroying it if left empty.
	withdrawalEncoded := make([][]byte, len(withdrawals))
	for i, w := range withdrawals {
		withdrawalEncoded[i] = w.EncodeRLP()
		st.ProcessWithdrawal(w.Address, w.AmountWei())
		if st.AccountExistsAndIsEmpty(w.Address) {
			st.DestroyAccount(w.Address)
		}
	}
	withdrawalsRoot := trie.DeriveRoot(len(withdrawals), func(i int) []byte { return withdrawalEncoded[i] })

	// Step 5: request list, type-ascending, empty entries omitted.
	var requests [][]byte
	if len(depositBytes) > 0 {
		requests = append(requests, append([]byte{params.DepositRequestType}, depositBytes...))
	}
	withdrawalReqData := RunWithdrawalRequestsCall(st, e, header)
	if len(withdrawalReqData) > 0 {
		requests = append(requests, append([]byte{params.WithdrawalRequestType}, withdrawalReqData...))
	}
	consolidationReqData := RunConsolidationRequestsCall(st, e, header)
	if len(consolidationReqData) > 0 {
		requests = append(requests, append([]byte{params.ConsolidationRequestType}, consolidationReqData...))
	}

	// Step 6: requests_hash = keccak256(concat_i keccak256(requests[i])).
	requestsHash := hashRequests(requests)

	return &ApplyBodyOutput{
		BlockGasUsed:     blockGasUsed,
		TransactionsRoot: transactionsRoot,
		ReceiptRoot:      receiptRoot,
		BlockLogsBloom:   blockLogsBloom,
		StateRoot:        st.StateRoot(),
		WithdrawalsRoot:  withdrawalsRoot,
		BlobGasUsed:      blobGasUsed,
		RequestsHash:     requestsHash,
	}, nil
}

func hashRequests(requests [][]byte) common.Hash {
	var concat []byte
	for _, r := range requests {
		concat = append(concat, crypto.Keccak256(r)...)
	}
	return crypto.Keccak256Hash(concat)
}
