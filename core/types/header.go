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

// EmptyUncleHash is keccak256(rlp([])), the canonical sha3Uncles value for a
// block with no ommers. The core rejects any header whose uncle hash
// differs from this, since spec §4.8 rejects blocks with any ommer outright.
var EmptyUncleHash = crypto.Keccak256Hash(rlp.EncodeList())

// Header is a block header. Every post-Prague field is mandatory -- this
// core only ever builds or validates Prague-and-later headers -- unlike
// go-ethereum's Header, which carries earlier forks' optional pointers.
type Header struct {
	ParentHash       common.Hash
	UncleHash        common.Hash
	Coinbase         common.Address
	Root             common.Hash // state root
	TxHash           common.Hash
	ReceiptHash      common.Hash
	Bloom            common.Bloom
	Difficulty       *big.Int
	Number           *big.Int
	GasLimit         uint64
	GasUsed          uint64
	Time             uint64
	Extra            []byte
	MixDigest        common.Hash
	Nonce            [8]byte
	BaseFee          *big.Int
	WithdrawalsHash  common.Hash
	BlobGasUsed      uint64
	ExcessBlobGas    uint64
	ParentBeaconRoot common.Hash
	RequestsHash     common.Hash
}

// EncodeRLP returns the canonical RLP encoding of the header, in Yellow
// Paper field order extended by EIP-1559/4895/4844/4788/7685.
func (h *Header) EncodeRLP() []byte {
	e := rlp.NewEncoder()
	e.WriteBytes(h.ParentHash.Bytes())
	e.WriteBytes(h.UncleHash.Bytes())
	e.WriteBytes(h.Coinbase.Bytes())
	e.WriteBytes(h.Root.Bytes())
	e.WriteBytes(h.TxHash.Bytes())
	e.WriteBytes(h.ReceiptHash.Bytes())
	e.WriteBytes(h.Bloom.Bytes())
	e.WriteBigInt(h.Difficulty)
	e.WriteBigInt(h.Number)
	e.WriteUint64(h.GasLimit)
	e.WriteUint64(h.GasUsed)
	e.WriteUint64(h.Time)
	e.WriteBytes(h.Extra)
	e.WriteBytes(h.MixDigest.Bytes())
	e.WriteBytes(h.Nonce[:])
	e.WriteBigInt(h.BaseFee)
	e.WriteBytes(h.WithdrawalsHash.Bytes())
	e.WriteUint64(h.BlobGasUsed)
	e.WriteUint64(h.ExcessBlobGas)
	e.WriteBytes(h.ParentBeaconRoot.Bytes())
	e.WriteBytes(h.RequestsHash.Bytes())
	return rlp.EncodeList(e.Bytes())
}

// Hash returns keccak256(rlp(header)), the block hash.
func (h *Header) Hash() common.Hash {
	return crypto.Keccak256Hash(h.EncodeRLP())
}
