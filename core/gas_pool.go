// Copyright 2015 The go-ethereum Authors
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
	"fmt"

	"github.com/erigontech/execution-core/core/types"
)

// GasPool tracks the gas available within a block (spec §4.7's
// gas_available), shrinking as transactions are admitted and never growing
// back beyond the block's gas limit.
type GasPool uint64

// AddGas makes gas available for execution.
func (gp *GasPool) AddGas(amount uint64) *GasPool {
	*gp += GasPool(amount)
	return gp
}

// SubGas deducts the given amount from the pool if enough gas is available,
// returning an InvalidBlock error otherwise.
func (gp *GasPool) SubGas(amount uint64) error {
	if uint64(*gp) < amount {
		return fmt.Errorf("%w: %w", types.ErrInvalidBlock, ErrGasLimitReached)
	}
	*gp -= GasPool(amount)
	return nil
}

// Gas returns the amount of gas remaining in the pool.
func (gp *GasPool) Gas() uint64 { return uint64(*gp) }
