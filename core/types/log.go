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

// Log is a single event emitted by a message call, as returned in
// MessageCallOutput.logs by the EVM collaborator.
type Log struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte

	// BlockNumber, TxHash, TxIndex, Index and Removed are derived metadata
	// filled in by the caller once a log's position in the block is known;
	// they play no part in the log's own RLP encoding or its consensus hash.
	BlockNumber uint64
	TxHash      common.Hash
	TxIndex     uint
	Index       uint
	Removed     bool
}
