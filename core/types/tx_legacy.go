// Copyright 2014 The go-ethereum Authors
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

package types

import (
	"math/big"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/crypto"
	"github.com/erigontech/execution-core/rlp"
)

// LegacyTx is the original transaction format, signed either with a bare
// recovery id (pre-EIP-155, v in {27,28}) or with the chain-id-bound
// encoding (v = 35+2*chainid or 36+2*chainid).
type LegacyTx struct {
	Nonce    uint64
	GasPrice *big.Int
	Gas      uint64
	To       *common.Address
	Value    *big.Int
	Data     []byte
	V, R, S  *big.Int
}

func (tx *LegacyTx) txType() byte            { return LegacyTxType }
func (tx *LegacyTx) nonce() uint64           { return tx.Nonce }
func (tx *LegacyTx) gasPrice() *big.Int      { return tx.GasPrice }
func (tx *LegacyTx) gasTipCap() *big.Int     { return tx.GasPrice }
func (tx *LegacyTx) gasFeeCap() *big.Int     { return tx.GasPrice }
func (tx *LegacyTx) gas() uint64             { return tx.Gas }
func (tx *LegacyTx) to() *common.Address     { return tx.To }
func (tx *LegacyTx) value() *big.Int         { return tx.Value }
func (tx *LegacyTx) data() []byte            { return tx.Data }
func (tx *LegacyTx) accessList() AccessList  { return nil }
func (tx *LegacyTx) blobGasFeeCap() *big.Int { return nil }
func (tx *LegacyTx) blobHashes() []common.Hash {
	return nil
}
func (tx *LegacyTx) authorizationList() []Authorization { return nil }

// chainID recovers the chain id an EIP-155 legacy signature is bound to;
// returns nil for a pre-EIP-155 signature (v in {27,28}), which is bound to
// no chain.
func (tx *LegacyTx) chainID() *big.Int {
	if tx.V == nil {
		return nil
	}
	if tx.V.Cmp(big.NewInt(35)) < 0 {
		return nil
	}
	// v = 35 + 2*chainid + recovery_id, recovery_id in {0,1}
	v := new(big.Int).Sub(tx.V, big.NewInt(35))
	return v.Rsh(v, 1)
}

func (tx *LegacyTx) rawSignatureValues() (v, r, s *big.Int) { return tx.V, tx.R, tx.S }

func (tx *LegacyTx) setSignatureValues(v, r, s *big.Int) {
	tx.V, tx.R, tx.S = v, r, s
}

// signingHash computes the digest the signature was produced over. If
// chainID is non-nil, EIP-155's chain-bound form is used
// (keccak(rlp([...,chainid,0,0]))); otherwise the bare pre-155 form
// (keccak(rlp([...]))). Matches spec §4.2's two legacy cases.
func (tx *LegacyTx) signingHash(chainID *big.Int) common.Hash {
	e := rlp.NewEncoder()
	tx.encodeFields(e)
	if chainID != nil && chainID.Sign() != 0 {
		e.WriteBigInt(chainID)
		e.WriteUint64(0)
		e.WriteUint64(0)
	}
	return crypto.Keccak256Hash(rlp.EncodeList(e.Bytes()))
}

func (tx *LegacyTx) encodeFields(e *rlp.Encoder) {
	e.WriteUint64(tx.Nonce)
	e.WriteBigInt(tx.GasPrice)
	e.WriteUint64(tx.Gas)
	writeToAddress(e, tx.To)
	e.WriteBigInt(tx.Value)
	e.WriteBytes(tx.Data)
}

func (tx *LegacyTx) encodePayload(e *rlp.Encoder) {
	tx.encodeFields(e)
	e.WriteBigInt(tx.V)
	e.WriteBigInt(tx.R)
	e.WriteBigInt(tx.S)
}

// writeToAddress encodes the `to` field: the empty string for contract
// creation, otherwise the 20-byte address.
func writeToAddress(e *rlp.Encoder, to *common.Address) {
	if to == nil {
		e.WriteBytes(nil)
		return
	}
	e.WriteBytes(to.Bytes())
}

func decodeToAddress(s *rlp.Stream) (*common.Address, error) {
	b, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	addr := common.BytesToAddress(b)
	return &addr, nil
}

func decodeLegacyTx(s *rlp.Stream) (*LegacyTx, error) {
	listStream, err := s.List()
	if err != nil {
		return nil, err
	}
	tx := &LegacyTx{}
	if tx.Nonce, err = listStream.Uint64(); err != nil {
		return nil, err
	}
	if tx.GasPrice, err = listStream.BigInt(); err != nil {
		return nil, err
	}
	if tx.Gas, err = listStream.Uint64(); err != nil {
		return nil, err
	}
	if tx.To, err = decodeToAddress(listStream); err != nil {
		return nil, err
	}
	if tx.Value, err = listStream.BigInt(); err != nil {
		return nil, err
	}
	if tx.Data, err = listStream.Bytes(); err != nil {
		return nil, err
	}
	if tx.V, err = listStream.BigInt(); err != nil {
		return nil, err
	}
	if tx.R, err = listStream.BigInt(); err != nil {
		return nil, err
	}
	if tx.S, err = listStream.BigInt(); err != nil {
		return nil, err
	}
	return tx, nil
}
