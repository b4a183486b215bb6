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

package types

import (
	"math/big"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/crypto"
	"github.com/erigontech/execution-core/rlp"
)

// SetCodeTx is the EIP-7702 transaction (type 0x04): a dynamic-fee
// transaction carrying a non-empty list of authorizations that temporarily
// delegate an EOA's execution to a contract's code. `To` is always a
// concrete address.
type SetCodeTx struct {
	ChainID        *big.Int
	Nonce          uint64
	GasTipCap      *big.Int
	GasFeeCap      *big.Int
	Gas            uint64
	To             common.Address
	Value          *big.Int
	Data           []byte
	AccessList     AccessList
	AuthorizationList []Authorization
	V, R, S        *big.Int
}

func (tx *SetCodeTx) txType() byte           { return SetCodeTxType }
func (tx *SetCodeTx) chainID() *big.Int      { return tx.ChainID }
func (tx *SetCodeTx) nonce() uint64          { return tx.Nonce }
func (tx *SetCodeTx) gasPrice() *big.Int     { return nil }
func (tx *SetCodeTx) gasTipCap() *big.Int    { return tx.GasTipCap }
func (tx *SetCodeTx) gasFeeCap() *big.Int    { return tx.GasFeeCap }
func (tx *SetCodeTx) gas() uint64            { return tx.Gas }
func (tx *SetCodeTx) to() *common.Address    { to := tx.To; return &to }
func (tx *SetCodeTx) value() *big.Int        { return tx.Value }
func (tx *SetCodeTx) data() []byte           { return tx.Data }
func (tx *SetCodeTx) accessList() AccessList { return tx.AccessList }
func (tx *SetCodeTx) blobGasFeeCap() *big.Int {
	return nil
}
func (tx *SetCodeTx) blobHashes() []common.Hash { return nil }
func (tx *SetCodeTx) authorizationList() []Authorization {
	return tx.AuthorizationList
}
func (tx *SetCodeTx) rawSignatureValues() (v, r, s *big.Int) {
	return tx.V, tx.R, tx.S
}
func (tx *SetCodeTx) setSignatureValues(v, r, s *big.Int) { tx.V, tx.R, tx.S = v, r, s }

func (tx *SetCodeTx) encodeFields(e *rlp.Encoder) {
	e.WriteBigInt(tx.ChainID)
	e.WriteUint64(tx.Nonce)
	e.WriteBigInt(tx.GasTipCap)
	e.WriteBigInt(tx.GasFeeCap)
	e.WriteUint64(tx.Gas)
	e.WriteBytes(tx.To.Bytes())
	e.WriteBigInt(tx.Value)
	e.WriteBytes(tx.Data)
	tx.AccessList.encodeRLP(e)
	e.WriteList(func(e *rlp.Encoder) {
		for i := range tx.AuthorizationList {
			tx.AuthorizationList[i].encodeRLP(e)
		}
	})
}

func (tx *SetCodeTx) signingHash(chainID *big.Int) common.Hash {
	e := rlp.NewEncoder()
	tx.encodeFields(e)
	payload := rlp.EncodeList(e.Bytes())
	return crypto.Keccak256Hash(append([]byte{SetCodeTxType}, payload...))
}

func (tx *SetCodeTx) encodePayload(e *rlp.Encoder) {
	tx.encodeFields(e)
	e.WriteBigInt(tx.V)
	e.WriteBigInt(tx.R)
	e.WriteBigInt(tx.S)
}

func decodeSetCodeTx(s *rlp.Stream) (*SetCodeTx, error) {
	listStream, err := s.List()
	if err != nil {
		return nil, err
	}
	tx := &SetCodeTx{}
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
	if tx.AuthorizationList, err = decodeAuthorizationList(listStream); err != nil {
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
