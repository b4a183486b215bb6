// Copyright 2022 The go-ethereum Authors
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
	"github.com/erigontech/execution-core/rlp"
)

// gweiToWei converts a Gwei amount to wei (1 Gwei = 1e9 wei).
var gweiToWei = big.NewInt(1_000_000_000)

// Withdrawal is a validator withdrawal credited to an execution-layer
// address as part of block application (spec §4.7 step 4).
type Withdrawal struct {
	Index          uint64
	ValidatorIndex uint64
	Address        common.Address
	// Amount is denominated in Gwei on the wire and in the withdrawal
	// itself; the credited balance delta is Amount * 1e9 wei.
	Amount uint64
}

// EncodeRLP returns the canonical RLP encoding of the withdrawal.
func (w *Withdrawal) EncodeRLP() []byte {
	e := rlp.NewEncoder()
	e.WriteUint64(w.Index)
	e.WriteUint64(w.ValidatorIndex)
	e.WriteBytes(w.Address.Bytes())
	e.WriteUint64(w.Amount)
	return rlp.EncodeList(e.Bytes())
}

// AmountWei returns the withdrawal's Gwei amount converted to wei.
func (w *Withdrawal) AmountWei() *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(w.Amount), gweiToWei)
}
