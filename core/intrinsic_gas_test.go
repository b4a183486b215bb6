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

package core

import (
	"testing"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/params"
)

func TestIntrinsicGas(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		accessList types.AccessList
		authLen    int
		creation   bool
		want       uint64
	}{
		{name: "empty call", data: nil, want: params.TxGas},
		{
			name: "zero and non-zero bytes",
			data: []byte{0x00, 0x00, 0x01, 0x02},
			want: params.TxGas + 2*params.TxDataZeroGas + 2*params.TxDataNonZeroGasEIP2028,
		},
		{
			name:     "contract creation, no data",
			data:     nil,
			creation: true,
			want:     params.TxGasContractCreation,
		},
		{
			name:     "contract creation, one word of init code",
			data:     make([]byte, 32),
			creation: true,
			want:     params.TxGasContractCreation + 32*params.TxDataZeroGas + initCodeWordGas,
		},
		{
			name: "access list",
			data: nil,
			accessList: types.AccessList{
				{StorageKeys: make([]common.Hash, 2)},
			},
			want: params.TxGas + params.TxAccessListAddressGas + 2*params.TxAccessListStorageKeyGas,
		},
		{
			name:    "setcode authorizations",
			data:    nil,
			authLen: 3,
			want:    params.TxGas + 3*params.PerEmptyAccountCost,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var auths []types.Authorization
			if tc.authLen > 0 {
				auths = make([]types.Authorization, tc.authLen)
			}
			got, err := IntrinsicGas(tc.data, tc.accessList, auths, tc.creation)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("have %d want %d", got, tc.want)
			}
		})
	}
}
