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

// Package params collects the protocol constants the state-transition core
// is built against: gas schedule, fee-market tuning knobs, predeploy
// addresses and the system-call gas allowance.
package params

import "github.com/erigontech/execution-core/common"

// Gas limit / fee market tuning (spec §4.1).
const (
	ElasticityMultiplier           = 2
	BaseFeeChangeDenominator       = 8
	GasLimitBoundDivisor     uint64 = 1024
	MinGasLimit              uint64 = 5000
)

// Intrinsic gas schedule (spec §4.3).
const (
	TxGas                     uint64 = 21000
	TxGasContractCreation     uint64 = 53000
	TxDataZeroGas             uint64 = 4
	TxDataNonZeroGasEIP2028   uint64 = 16
	TxAccessListAddressGas    uint64 = 2400
	TxAccessListStorageKeyGas uint64 = 1900
	PerEmptyAccountCost       uint64 = 25000
	PerAuthBaseCost           uint64 = 12500
)

// MaxCodeSize is the maximum size in bytes a contract's bytecode may have.
const MaxCodeSize = 24576

// System-call machinery (spec §4.5).
const (
	// SystemTransactionGas is the gas allowance given to every system call.
	SystemTransactionGas uint64 = 30_000_000

	// HistoryServeWindow is the length of the history storage contract's
	// ring buffer of recent block hashes. GetLast256BlockHashes does not use
	// it; it returns at most 255 hashes from the stored chain.
	HistoryServeWindow uint64 = 8192
)

// Predeploy and synthetic-sender addresses (spec §4.5, §4.9).
var (
	SystemAddress                           = common.HexToAddress("0xfffffffffffffffffffffffffffffffffffffffe")
	BeaconRootsAddress                       = common.HexToAddress("0x000F3df6D732807Ef1319fB7B8bB8522d0Beac02")
	HistoryStorageAddress                    = common.HexToAddress("0x0aae40965e6800cd9b1f4b05ff21581047e3f91e")
	WithdrawalRequestPredeployAddress        = common.HexToAddress("0x09Fc772D0857550724b07B850a4323f39112aAaA")
	ConsolidationRequestPredeployAddress     = common.HexToAddress("0x01aBEa29659e5e97C95107F20bb753cD3e09bBBb")
)

// VersionedHashVersionKZG is the leading byte of an EIP-4844 blob versioned hash.
const VersionedHashVersionKZG byte = 0x01

// Blob gas market (EIP-4844, spec §4.9).
const (
	BlobGasPerBlob           uint64 = 131072
	TargetBlobGasPerBlock    uint64 = 3 * BlobGasPerBlob
	MaxBlobGasPerBlock       uint64 = 6 * BlobGasPerBlob
	BlobBaseFeeUpdateFraction uint64 = 5007716
	MinBlobGasPrice          uint64 = 1
)

// Request type prefixes, used to tag entries in the concatenated requests
// list before hashing (spec §4.9).
const (
	DepositRequestType       byte = 0x00
	WithdrawalRequestType    byte = 0x01
	ConsolidationRequestType byte = 0x02
)

// DepositContractAddress is the canonical beacon deposit contract whose logs
// are scanned to build deposit requests (spec §4.9).
var DepositContractAddress = common.HexToAddress("0x00000000219ab540356cBB839Cbe05303d7705Fa")
