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
	"math"
	"math/big"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/consensus/misc"
	"github.com/erigontech/execution-core/core/state"
	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/params"
)

// AdmittedTx is what the admission check hands the executor: the recovered
// sender, the fee actually charged per unit gas, and the blob versioned
// hashes carried by the transaction (spec §4.4).
type AdmittedTx struct {
	Sender             common.Address
	EffectiveGasPrice  *big.Int
	BlobVersionedHashes []common.Hash
}

// AdmitTx runs the ten ordered checks spec §4.4 requires before a
// transaction may be executed: intrinsic gas, nonce bound, creation size
// cap, block gas availability, signature recovery, fee-market checks
// specific to the transaction's type, and the sender account's own
// nonce/balance/code-delegation state.
func AdmitTx(st state.IntraBlockState, tx *types.Transaction, gasAvailable uint64, chainID *big.Int, baseFee *big.Int, excessBlobGas uint64) (*AdmittedTx, error) {
	intrinsic, err := IntrinsicGas(tx.Data(), tx.AccessList(), tx.AuthorizationList(), tx.IsContractCreation())
	if err != nil {
		return nil, err
	}
	if intrinsic > tx.Gas() {
		return nil, fmt.Errorf("%w: %w: have %d, want at least %d", types.ErrInvalidBlock, ErrIntrinsicGas, tx.Gas(), intrinsic)
	}

	if tx.Nonce() >= math.MaxUint64 {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidBlock, ErrNonceTooHigh)
	}

	if tx.IsContractCreation() && len(tx.Data()) > 2*params.MaxCodeSize {
		return nil, fmt.Errorf("%w: %w: %d > %d", types.ErrInvalidBlock, ErrMaxInitCodeSizeExceeded, len(tx.Data()), 2*params.MaxCodeSize)
	}

	if tx.Gas() > gasAvailable {
		return nil, fmt.Errorf("%w: %w: want %d, have %d", types.ErrInvalidBlock, ErrGasLimitReached, tx.Gas(), gasAvailable)
	}

	sender, err := types.RecoverSender(tx, chainID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidBlock, err)
	}

	var (
		effectiveGasPrice *big.Int
		maxGasFee         *big.Int
	)

	switch tx.Type() {
	case types.LegacyTxType, types.AccessListTxType:
		if tx.GasPrice().Cmp(baseFee) < 0 {
			return nil, fmt.Errorf("%w: %w: gasPrice %s, baseFee %s", types.ErrInvalidBlock, ErrGasPriceBelowBaseFee, tx.GasPrice(), baseFee)
		}
		effectiveGasPrice = new(big.Int).Set(tx.GasPrice())
		maxGasFee = new(big.Int).Mul(new(big.Int).SetUint64(tx.Gas()), tx.GasPrice())

	default: // DynamicFeeTxType, BlobTxType, SetCodeTxType
		if tx.GasFeeCap().Cmp(tx.GasTipCap()) < 0 {
			return nil, fmt.Errorf("%w: %w: tip %s, fee cap %s", types.ErrInvalidBlock, ErrFeeCapTooLow, tx.GasTipCap(), tx.GasFeeCap())
		}
		if tx.GasFeeCap().Cmp(baseFee) < 0 {
			return nil, fmt.Errorf("%w: %w: fee cap %s, baseFee %s", types.ErrInvalidBlock, ErrFeeCapBelowBaseFee, tx.GasFeeCap(), baseFee)
		}
		tipAfterBaseFee := new(big.Int).Sub(tx.GasFeeCap(), baseFee)
		priorityFee := minBig(tx.GasTipCap(), tipAfterBaseFee)
		effectiveGasPrice = new(big.Int).Add(priorityFee, baseFee)
		maxGasFee = new(big.Int).Mul(new(big.Int).SetUint64(tx.Gas()), tx.GasFeeCap())
	}

	if tx.Type() == types.BlobTxType {
		for _, h := range tx.BlobHashes() {
			if h[0] != params.VersionedHashVersionKZG {
				return nil, fmt.Errorf("%w: %w: versioned hash %s", types.ErrInvalidBlock, ErrBlobTxInvalidHash, h)
			}
		}
		blobBaseFee := misc.CalcBlobFee(excessBlobGas)
		if tx.BlobGasFeeCap().Cmp(blobBaseFee) < 0 {
			return nil, fmt.Errorf("%w: %w: have %s, want at least %s", types.ErrInvalidBlock, ErrBlobFeeCapTooLow, tx.BlobGasFeeCap(), blobBaseFee)
		}
		if tx.To() == nil {
			return nil, fmt.Errorf("%w: %w", types.ErrInvalidBlock, ErrBlobTxCreate)
		}
		blobCost := new(big.Int).Mul(new(big.Int).SetUint64(tx.TotalBlobGas()), tx.BlobGasFeeCap())
		maxGasFee = new(big.Int).Add(maxGasFee, blobCost)
	}

	if tx.Type() == types.SetCodeTxType {
		if tx.To() == nil {
			return nil, fmt.Errorf("%w: %w", types.ErrInvalidBlock, ErrSetCodeTxCreate)
		}
		if len(tx.AuthorizationList()) == 0 {
			return nil, fmt.Errorf("%w: %w", types.ErrInvalidBlock, ErrSetCodeTxEmptyAuth)
		}
	}

	account := st.GetAccount(sender)
	if account.Nonce != tx.Nonce() {
		return nil, fmt.Errorf("%w: %w: have %d, want %d", types.ErrInvalidBlock, ErrNonceMismatch, tx.Nonce(), account.Nonce)
	}
	required := new(big.Int).Add(maxGasFee, tx.Value())
	if account.Balance.Cmp(required) < 0 {
		return nil, fmt.Errorf("%w: %w: have %s, want %s", types.ErrInvalidBlock, ErrInsufficientFunds, account.Balance, required)
	}
	if len(account.Code) > 0 {
		if _, ok := types.ParseDelegation(account.Code); !ok {
			return nil, fmt.Errorf("%w: %w", types.ErrInvalidBlock, ErrInvalidDelegation)
		}
	}

	return &AdmittedTx{
		Sender:              sender,
		EffectiveGasPrice:   effectiveGasPrice,
		BlobVersionedHashes: tx.BlobHashes(),
	}, nil
}

func minBig(a, b *big.Int) *big.Int {
	if a.Cmp(b) < 0 {
		return a
	}
	return b
}
