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
	"errors"
	"testing"

	"github.com/erigontech/execution-core/core/types"
)

func TestGasPoolSubGas(t *testing.T) {
	gp := new(GasPool).AddGas(1000)
	if err := gp.SubGas(600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gp.Gas() != 400 {
		t.Errorf("have %d want %d", gp.Gas(), 400)
	}
	if err := gp.SubGas(500); err == nil {
		t.Fatal("expected error for over-spend")
	} else if !errors.Is(err, types.ErrInvalidBlock) {
		t.Errorf("error %v does not wrap ErrInvalidBlock", err)
	}
}

func TestGasPoolAddGas(t *testing.T) {
	gp := new(GasPool)
	gp.AddGas(100).AddGas(50)
	if gp.Gas() != 150 {
		t.Errorf("have %d want %d", gp.Gas(), 150)
	}
}
