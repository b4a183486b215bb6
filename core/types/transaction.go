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
	"fmt"
	"math/big"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/crypto"
	"github.com/erigontech/execution-core/rlp"
)

// Transaction type bytes (spec §2 "Five transaction type variants").
const (
	LegacyTxType     = 0x00
	AccessListTxType = 0x01
	DynamicFeeTxType = 0x02
	BlobTxType       = 0x03
	SetCodeTxType    = 0x04
)

// TxData is the set of accessors every concrete transaction variant
// implements. Transaction wraps one of these the way go-ethereum's
// Transaction wraps a TxData, so callers work against a single type while
// encoding/signing/admission logic dispatches on the variant underneath.
type TxData interface {
	txType() byte
	chainID() *big.Int
	nonce() uint64
	gasPrice() *big.Int  // legacy/access-list: the single gas price
	gasTipCap() *big.Int // dynamic-fee and later: max_priority_fee_per_gas
	gasFeeCap() *big.Int // dynamic-fee and later: max_fee_per_gas
	gas() uint64
	to() *common.Address
	value() *big.Int
	data() []byte
	accessList() AccessList
	blobGasFeeCap() *big.Int
	blobHashes() []common.Hash
	authorizationList() []Authorization
	rawSignatureValues() (v, r, s *big.Int)
	setSignatureValues(v, r, s *big.Int)
	signingHash(chainID *big.Int) common.Hash
	encodePayload(e *rlp.Encoder)
}

// Transaction is an immutable, type-dispatching wrapper around one of the
// five transaction variants.
type Transaction struct {
	inner TxData
}

func NewTx(inner TxData) *Transaction { return &Transaction{inner: inner} }

func (tx *Transaction) Type() byte                   { return tx.inner.txType() }
func (tx *Transaction) ChainID() *big.Int            { return tx.inner.chainID() }
func (tx *Transaction) Nonce() uint64                { return tx.inner.nonce() }
func (tx *Transaction) GasPrice() *big.Int           { return tx.inner.gasPrice() }
func (tx *Transaction) GasTipCap() *big.Int          { return tx.inner.gasTipCap() }
func (tx *Transaction) GasFeeCap() *big.Int          { return tx.inner.gasFeeCap() }
func (tx *Transaction) Gas() uint64                  { return tx.inner.gas() }
func (tx *Transaction) To() *common.Address          { return tx.inner.to() }
func (tx *Transaction) Value() *big.Int              { return tx.inner.value() }
func (tx *Transaction) Data() []byte                 { return tx.inner.data() }
func (tx *Transaction) AccessList() AccessList        { return tx.inner.accessList() }
func (tx *Transaction) BlobGasFeeCap() *big.Int      { return tx.inner.blobGasFeeCap() }
func (tx *Transaction) BlobHashes() []common.Hash    { return tx.inner.blobHashes() }
func (tx *Transaction) AuthorizationList() []Authorization {
	return tx.inner.authorizationList()
}
func (tx *Transaction) RawSignatureValues() (v, r, s *big.Int) { return tx.inner.rawSignatureValues() }

// IsContractCreation reports whether tx has no `to` address.
func (tx *Transaction) IsContractCreation() bool { return tx.To() == nil }

// TotalBlobGas returns the transaction's total blob gas usage: BlobGasPerBlob
// per versioned hash, zero for non-blob types (spec §4.1 "calculate_total_blob_gas").
func (tx *Transaction) TotalBlobGas() uint64 {
	return uint64(len(tx.BlobHashes())) * blobGasPerBlob
}

const blobGasPerBlob = 131072

// SigningHash returns the digest the transaction's signature was produced
// over, per spec §4.2.
func (tx *Transaction) SigningHash(chainID *big.Int) common.Hash {
	return tx.inner.signingHash(chainID)
}

// EncodeRLP returns the transaction's canonical wire encoding: the bare RLP
// list for legacy transactions, or the type byte followed by the RLP list
// for every typed transaction (spec §6's "encode_transaction").
func (tx *Transaction) EncodeRLP() []byte {
	e := rlp.NewEncoder()
	tx.inner.encodePayload(e)
	payload := rlp.EncodeList(e.Bytes())
	if tx.Type() == LegacyTxType {
		return payload
	}
	return append([]byte{tx.Type()}, payload...)
}

// Hash returns the transaction's canonical hash: keccak256 of its wire encoding.
func (tx *Transaction) Hash() common.Hash {
	return crypto.Keccak256Hash(tx.EncodeRLP())
}

// DecodeTransaction decodes a wire-encoded transaction, dispatching on the
// leading type byte the way spec §6's "decode_transaction" collaborator
// does: a byte below 0xc0 selects a typed transaction, everything else is
// the bare RLP list of a legacy transaction.
func DecodeTransaction(data []byte) (*Transaction, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty transaction payload", ErrInvalidBlock)
	}
	if data[0] >= 0xc0 {
		inner, err := decodeLegacyTx(rlp.NewStream(data))
		if err != nil {
			return nil, err
		}
		return NewTx(inner), nil
	}
	s := rlp.NewStream(data[1:])
	var (
		inner TxData
		err   error
	)
	switch data[0] {
	case AccessListTxType:
		inner, err = decodeAccessListTx(s)
	case DynamicFeeTxType:
		inner, err = decodeDynamicFeeTx(s)
	case BlobTxType:
		inner, err = decodeBlobTx(s)
	case SetCodeTxType:
		inner, err = decodeSetCodeTx(s)
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %d", ErrInvalidBlock, data[0])
	}
	if err != nil {
		return nil, err
	}
	return NewTx(inner), nil
}
