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

import "github.com/erigontech/execution-core/common"

// Block is a header plus its body: the transactions to apply and the
// withdrawals to process. Ommers are never carried -- spec §4.8 rejects any
// block that has one, so there is no field for them to occupy.
type Block struct {
	Header       *Header
	Transactions []*Transaction
	Withdrawals  []*Withdrawal
}

// Hash returns the block's hash: its header's hash.
func (b *Block) Hash() common.Hash { return b.Header.Hash() }

// NumberU64 returns the block number.
func (b *Block) NumberU64() uint64 { return b.Header.Number.Uint64() }
