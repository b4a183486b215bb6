// Copyright 2024 The go-ethereum Authors
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

import "errors"

// These describe specific admission/validation failures; every one of them
// is always surfaced wrapped in types.ErrInvalidBlock; the core has exactly
// one rejection outcome (spec §7), these just make %w message text readable.
var (
	ErrGasLimitReached       = errors.New("gas limit reached")
	ErrNonceTooHigh          = errors.New("nonce exceeds maximum")
	ErrIntrinsicGas          = errors.New("intrinsic gas too low")
	ErrInsufficientGas       = errors.New("insufficient gas for transaction")
	ErrInsufficientFunds     = errors.New("insufficient funds for gas * price + value")
	ErrMaxInitCodeSizeExceeded = errors.New("max initcode size exceeded")
	ErrFeeCapTooLow          = errors.New("max fee per gas below max priority fee per gas")
	ErrFeeCapBelowBaseFee    = errors.New("max fee per gas below block base fee")
	ErrGasPriceBelowBaseFee  = errors.New("gas price below block base fee")
	ErrBlobFeeCapTooLow      = errors.New("max fee per blob gas below block blob base fee")
	ErrBlobTxMissingHashes   = errors.New("blob transaction missing blob hashes")
	ErrBlobTxInvalidHash     = errors.New("blob transaction contains invalid versioned hash")
	ErrBlobTxCreate          = errors.New("blob transaction has no recipient")
	ErrSetCodeTxCreate       = errors.New("setcode transaction has no recipient")
	ErrSetCodeTxEmptyAuth    = errors.New("setcode transaction has empty authorization list")
	ErrNonceMismatch         = errors.New("sender account nonce mismatch")
	ErrInvalidDelegation     = errors.New("sender account code is not empty or a valid delegation")
	ErrOmmersNotAllowed      = errors.New("block has non-empty ommers")
)
