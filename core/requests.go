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
	"github.com/erigontech/erigon-lib/log/v3"

	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/crypto"
	"github.com/erigontech/execution-core/params"
)

// depositEventSignature is keccak256("DepositEvent(bytes,bytes,bytes,bytes,bytes)"),
// the first topic every deposit-contract log carries.
var depositEventSignature = crypto.Keccak256Hash([]byte("DepositEvent(bytes,bytes,bytes,bytes,bytes)"))

// depositLogDataLen is the ABI-encoded length of the deposit event's five
// dynamic bytes fields (pubkey, withdrawal_credentials, amount, signature,
// index), each padded to a 32-byte boundary plus its own length word.
const depositLogDataLen = 576

// extractDepositRequest reads the EIP-6110 deposit-request payload out of a
// single deposit-contract log, re-packing the ABI-encoded dynamic-bytes
// tuple into the compact 192-byte request form (pubkey(48) ||
// withdrawal_credentials(32) || amount(8) || signature(96) || index(8)).
// The deposit contract's log layout is fixed-width, so the fields sit at
// constant offsets and no general ABI decoder is required.
func extractDepositRequest(rec *types.Log) []byte {
	if rec.Address != params.DepositContractAddress {
		return nil
	}
	if len(rec.Topics) == 0 || rec.Topics[0] != depositEventSignature {
		log.Debug("deposit contract log carries unexpected topic, skipping", "address", rec.Address, "topics", len(rec.Topics))
		return nil
	}
	if len(rec.Data) != depositLogDataLen {
		log.Debug("deposit event log has unexpected data length, skipping", "want", depositLogDataLen, "got", len(rec.Data))
		return nil
	}
	out := make([]byte, 0, 192)
	out = append(out, rec.Data[192:240]...) // pubkey
	out = append(out, rec.Data[288:320]...) // withdrawal_credentials
	out = append(out, rec.Data[352:360]...) // amount (8 bytes, little-endian gwei)
	out = append(out, rec.Data[416:512]...) // signature
	out = append(out, rec.Data[544:552]...) // index (8 bytes, little-endian)
	return out
}

// extractDepositRequests scans every log a transaction's receipt produced
// and concatenates the raw deposit-request payloads found (spec §4.7 step 2,
// §4.9).
func extractDepositRequests(logs []*types.Log) []byte {
	var out []byte
	for _, l := range logs {
		if payload := extractDepositRequest(l); payload != nil {
			out = append(out, payload...)
		}
	}
	return out
}
