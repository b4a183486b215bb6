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
	"math/big"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/consensus/misc"
	"github.com/erigontech/execution-core/core/state"
	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/core/vm"
)

// maxStoredBlocks bounds BlockChain.blocks to the retention window spec §4.8
// actually enforces: the name "last-256 block hashes" is kept, but the
// implementation truncates to 255 stored blocks, not 256.
const maxStoredBlocks = 255

// BlockChain owns the current world state and the trailing window of
// accepted blocks (spec §2's BlockChain: "ordered blocks ... state;
// chain_id"). Appending a block mutates the state in place.
type BlockChain struct {
	State   state.IntraBlockState
	ChainID *big.Int
	blocks  []*types.Block
}

// NewBlockChain returns an empty chain over st.
func NewBlockChain(st state.IntraBlockState, chainID *big.Int) *BlockChain {
	return &BlockChain{State: st, ChainID: chainID}
}

// LastBlock returns the chain's tip, or nil if the chain is empty.
func (bc *BlockChain) LastBlock() *types.Block {
	if len(bc.blocks) == 0 {
		return nil
	}
	return bc.blocks[len(bc.blocks)-1]
}

// GetLast256BlockHashes returns, oldest first, the parent_hash of every
// stored block followed by the hash of the chain's own tip header (spec
// §4.8's "last-256 block hashes": at most 255 parent-hashes plus one
// computed hash, despite the name).
func (bc *BlockChain) GetLast256BlockHashes() []common.Hash {
	if len(bc.blocks) == 0 {
		return nil
	}
	hashes := make([]common.Hash, 0, len(bc.blocks)+1)
	for _, b := range bc.blocks {
		hashes = append(hashes, b.Header.ParentHash)
	}
	hashes = append(hashes, bc.blocks[len(bc.blocks)-1].Header.Hash())
	return hashes
}

// StateTransition is the top-level entry point (C8): validates header
// linkage, rejects any block carrying ommers, applies the body, and checks
// every header commitment against the applier's output before appending the
// block and pruning the stored-blocks window.
func (bc *BlockChain) StateTransition(e vm.EVM, block *types.Block) error {
	if block.Header.UncleHash != types.EmptyUncleHash {
		return fmt.Errorf("%w: %w", types.ErrInvalidBlock, ErrOmmersNotAllowed)
	}

	parent := bc.LastBlock()
	var parentHeader *types.Header
	var parentHash common.Hash
	if parent != nil {
		parentHeader = parent.Header
		parentHash = parentHeader.Hash()
	} else {
		parentHeader = block.Header
	}

	expectedExcessBlobGas := misc.CalcExcessBlobGas(parentHeader.ExcessBlobGas, parentHeader.BlobGasUsed)
	if block.Header.ExcessBlobGas != expectedExcessBlobGas {
		return fmt.Errorf("%w: excessBlobGas mismatch: have %d, want %d", types.ErrInvalidBlock, block.Header.ExcessBlobGas, expectedExcessBlobGas)
	}

	if parent != nil {
		if err := ValidateHeader(block.Header, parentHeader); err != nil {
			return err
		}
	}

	out, err := ApplyBody(bc.State, e, block.Header, block.Transactions, block.Withdrawals, bc.ChainID, parentHash)
	if err != nil {
		return err
	}

	if err := compareHeaderToOutput(block.Header, out); err != nil {
		return err
	}

	bc.blocks = append(bc.blocks, block)
	if len(bc.blocks) > maxStoredBlocks {
		bc.blocks = bc.blocks[len(bc.blocks)-maxStoredBlocks:]
	}
	return nil
}

func compareHeaderToOutput(header *types.Header, out *ApplyBodyOutput) error {
	if header.GasUsed != out.BlockGasUsed {
		return fmt.Errorf("%w: gasUsed mismatch: have %d, want %d", types.ErrInvalidBlock, header.GasUsed, out.BlockGasUsed)
	}
	if header.TxHash != out.TransactionsRoot {
		return fmt.Errorf("%w: transactionsRoot mismatch: have %s, want %s", types.ErrInvalidBlock, header.TxHash, out.TransactionsRoot)
	}
	if header.Root != out.StateRoot {
		return fmt.Errorf("%w: stateRoot mismatch: have %s, want %s", types.ErrInvalidBlock, header.Root, out.StateRoot)
	}
	if header.ReceiptHash != out.ReceiptRoot {
		return fmt.Errorf("%w: receiptRoot mismatch: have %s, want %s", types.ErrInvalidBlock, header.ReceiptHash, out.ReceiptRoot)
	}
	if header.Bloom != out.BlockLogsBloom {
		return fmt.Errorf("%w: bloom mismatch", types.ErrInvalidBlock)
	}
	if header.WithdrawalsHash != out.WithdrawalsRoot {
		return fmt.Errorf("%w: withdrawalsRoot mismatch: have %s, want %s", types.ErrInvalidBlock, header.WithdrawalsHash, out.WithdrawalsRoot)
	}
	if header.BlobGasUsed != out.BlobGasUsed {
		return fmt.Errorf("%w: blobGasUsed mismatch: have %d, want %d", types.ErrInvalidBlock, header.BlobGasUsed, out.BlobGasUsed)
	}
	if header.RequestsHash != out.RequestsHash {
		return fmt.Errorf("%w: requestsHash mismatch: have %s, want %s", types.ErrInvalidBlock, header.RequestsHash, out.RequestsHash)
	}
	return nil
}
