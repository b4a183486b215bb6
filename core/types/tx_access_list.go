// Copyright 2021 The go-ethereum Authors
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

// AccessListTx is the EIP-2930 transaction (type 0x01): a legacy-shaped
// transaction carrying an access list and a y_parity signature, bound to a
// chain id.
type AccessListTx struct {
	ChainID    *big.Int
	Nonce      uint64
	GasPrice   *big.Int
	Gas        uint64
	To         *common.Address
	Value      *big.Int
	Data       []byte
	AccessList AccessList
	V, R, S    *big.Int
}

func (tx *AccessListTx) txType() byte                      { return AccessListTxType }
func (tx *AccessListTx) chainID() *big.Int                 { return tx.ChainID }
func (tx *AccessListTx) nonce() uint64                      { return tx.Nonce }
func (tx *AccessListTx) gasPrice() *big.Int                { return tx.GasPrice }
func (tx *AccessListTx) gasTipCap() *big.Int               { return tx.GasPrice }
func (tx *AccessListTx) gasFeeCap() *big.Int               { return tx.GasPrice }
func (tx *AccessListTx) gas() uint64                        { return tx.Gas }
func (tx *AccessListTx) to() *common.Address                { return tx.To }
func (tx *AccessListTx) value() *big.Int                    { return tx.Value }
func (tx *AccessListTx) data() []byte                       { return tx.Data }
func (tx *AccessListTx) accessList() AccessList              { return tx.AccessList }
func (tx *AccessListTx) blobGasFeeCap() *big.Int            { return nil }
func (tx *AccessListTx) blobHashes() []common.Hash           { return nil }
func (tx *AccessListTx) authorizationList() []Authorization { return nil }
func (tx *AccessListTx) rawSignatureValues() (v, r, s *big.Int) {
	return tx.V, tx.R, tx.S
}
func (tx *AccessListTx) setSignatureValues(v, r, s *big.Int) { tx.V, tx.R, tx.S = v, r, s }

func (tx *AccessListTx) encodeFields(e *rlp.Encoder) {
	e.WriteBigInt(tx.ChainID)
	e.WriteUint64(tx.Nonce)
	e.WriteBigInt(tx.GasPrice)
	e.WriteUint64(tx.Gas)
	writeToAddress(e, tx.To)
	e.WriteBigInt(tx.Value)
	e.WriteBytes(tx.Data)
	tx.AccessList.encodeRLP(e)
}

func (tx *AccessListTx) signingHash(chainID *big.Int) common.Hash {
	e := rlp.NewEncoder()
	tx.encodeFields(e)
	payload := rlp.EncodeList(e.Bytes())
	return crypto.Keccak256Hash(append([]byte{AccessListTxType}, payload...))
}

func (tx *AccessListTx) encodePayload(e *rlp.Encoder) {
	tx.encodeFields(e)
	e.WriteBigInt(tx.V)
	e.WriteBigInt(tx.R)
	e.WriteBigInt(tx.S)
}

func decodeAccessListTx(s *rlp.Stream) (*AccessListTx, error) {
	listStream, err := s.List()
	if err != nil {
		return nil, err
	}
	tx := &AccessListTx{}
	if tx.ChainID, err = listStream.BigInt(); err != nil {
		return nil, err
	}
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
	if tx.AccessList, err = decodeAccessList(listStream); err != nil {
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
