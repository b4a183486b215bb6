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
	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/params"
	"github.com/erigontech/execution-core/rlp"
)

// AccessTuple is one entry of an EIP-2930 access list: an address plus the
// storage keys within it the transaction pre-declares access to.
type AccessTuple struct {
	Address     common.Address
	StorageKeys []common.Hash
}

// AccessList is the EIP-2930 access list carried by every non-legacy
// transaction type.
type AccessList []AccessTuple

// Gas returns the intrinsic gas contribution of the access list (spec §4.3).
func (al AccessList) Gas() uint64 {
	var gas uint64
	for _, tuple := range al {
		gas += params.TxAccessListAddressGas
		gas += uint64(len(tuple.StorageKeys)) * params.TxAccessListStorageKeyGas
	}
	return gas
}

func (al AccessList) encodeRLP(e *rlp.Encoder) {
	e.WriteList(func(e *rlp.Encoder) {
		for _, tuple := range al {
			e.WriteList(func(e *rlp.Encoder) {
				e.WriteBytes(tuple.Address.Bytes())
				e.WriteList(func(e *rlp.Encoder) {
					for _, key := range tuple.StorageKeys {
						e.WriteBytes(key.Bytes())
					}
				})
			})
		}
	})
}

func decodeAccessList(s *rlp.Stream) (AccessList, error) {
	listStream, err := s.List()
	if err != nil {
		return nil, err
	}
	var al AccessList
	for !listStream.AtEnd() {
		tupleStream, err := listStream.List()
		if err != nil {
			return nil, err
		}
		addrBytes, err := tupleStream.Bytes()
		if err != nil {
			return nil, err
		}
		keysStream, err := tupleStream.List()
		if err != nil {
			return nil, err
		}
		var keys []common.Hash
		for !keysStream.AtEnd() {
			kb, err := keysStream.Bytes()
			if err != nil {
				return nil, err
			}
			keys = append(keys, common.BytesToHash(kb))
		}
		al = append(al, AccessTuple{Address: common.BytesToAddress(addrBytes), StorageKeys: keys})
	}
	return al, nil
}
