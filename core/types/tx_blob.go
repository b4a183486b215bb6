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

package types

import (
	"math/big"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/crypto"
	"github.com/erigontech/execution-core/rlp"
)

// BlobTx is the EIP-4844 transaction (type 0x03): a dynamic-fee transaction
// additionally bidding for blob gas and carrying the versioned hashes of the
// blobs it references. `To` is always a concrete address -- blob
// transactions may not create contracts.
type BlobTx struct {
	ChainID       *big.Int
	Nonce         uint64
	GasTipCap     *big.Int
	GasFeeCap     *big.Int
	Gas           uint64
	To            common.Address
	Value         *big.Int
	Data          []byte
	AccessList    AccessList
	BlobFeeCap    *big.Int
	BlobHashes    []common.Hash
	V, R, S       *big.Int
}

func (tx *BlobTx) txType() byte           { return BlobTxType }
func (tx *BlobTx) chainID() *big.Int      { return tx.ChainID }
func (tx *BlobTx) nonce() uint64          { return tx.Nonce }
func (tx *BlobTx) gasPrice() *big.Int     { return nil }
func (tx *BlobTx) gasTipCap() *big.Int    { return tx.GasTipCap }
func (tx *BlobTx) gasFeeCap() *big.Int    { return tx.GasFeeCap }
func (tx *BlobTx) gas() uint64            { return tx.Gas }
func (tx *BlobTx) to() *common.Address    { to := tx.To; return &to }
func (tx *BlobTx) value() *big.Int        { return tx.Value }
func (tx *BlobTx) data() []byte           { return tx.Data }
func (tx *BlobTx) accessList() AccessList { return tx.AccessList }
func (tx *BlobTx) blobGasFeeCap() *big.Int {
	return tx.BlobFeeCap
}
func (tx *BlobTx) blobHashes() []common.Hash           { return tx.BlobHashes }
func (tx *BlobTx) authorizationList() []Authorization { return nil }
func (tx *BlobTx) rawSignatureValues() (v, r, s *big.Int) {
	return tx.V, tx.R, tx.S
}
func (tx *BlobTx) setSignatureValues(v, r, s *big.Int) { tx.V, tx.R, tx.S = v, r, s }

func (tx *BlobTx) encodeFields(e *rlp.Encoder) {
	e.WriteBigInt(tx.ChainID)
	e.WriteUint64(tx.Nonce)
	e.WriteBigInt(tx.GasTipCap)
	e.WriteBigInt(tx.GasFeeCap)
	e.WriteUint64(tx.Gas)
	e.WriteBytes(tx.To.Bytes())
	e.WriteBigInt(tx.Value)
	e.WriteBytes(tx.Data)
	tx.AccessList.encodeRLP(e)
	e.WriteBigInt(tx.BlobFeeCap)
	e.WriteList(func(e *rlp.Encoder) {
		for _, h := range tx.BlobHashes {
			e.WriteBytes(h.Bytes())
		}
	})
}

func (tx *BlobTx) signingHash(chainID *big.Int) common.Hash {
	e := rlp.NewEncoder()
	tx.encodeFields(e)
	payload := rlp.EncodeList(e.Bytes())
	return crypto.Keccak256Hash(append([]byte{BlobTxType}, payload...))
}

func (tx *BlobTx) encodePayload(e *rlp.Encoder) {
	tx.encodeFields(e)
	e.WriteBigInt(tx.V)
	e.WriteBigInt(tx.R)
	e.WriteBigInt(tx.S)
}

func decodeBlobTx(s *rlp.Stream) (*BlobTx, error) {
	listStream, err := s.List()
	if err != nil {
		return nil, err
	}
	tx := &BlobTx{}
	if tx.ChainID, err = listStream.BigInt(); err != nil {
		return nil, err
	}
	if tx.Nonce, err = listStream.Uint64(); err != nil {
		return nil, err
	}
	if tx.GasTipCap, err = listStream.BigInt(); err != nil {
		return nil, err
	}
	if tx.GasFeeCap, err = listStream.BigInt(); err != nil {
		return nil, err
	}
	if tx.Gas, err = listStream.Uint64(); err != nil {
		return nil, err
	}
	toBytes, err := listStream.Bytes()
	if err != nil {
		return nil, err
	}
	tx.To = common.BytesToAddress(toBytes)
	if tx.Value, err = listStream.BigInt(); err != nil {
		return nil, err
	}
	if tx.Data, err = listStream.Bytes(); err != nil {
		return nil, err
	}
	if tx.AccessList, err = decodeAccessList(listStream); err != nil {
		return nil, err
	}
	if tx.BlobFeeCap, err = listStream.BigInt(); err != nil {
		return nil, err
	}
	hashesStream, err := listStream.List()
	if err != nil {
		return nil, err
	}
	for !hashesStream.AtEnd() {
		b, err := hashesStream.Bytes()
		if err != nil {
			return nil, err
		}
		tx.BlobHashes = append(tx.BlobHashes, common.BytesToHash(b))
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
