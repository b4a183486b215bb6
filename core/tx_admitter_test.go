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
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/core/state/memstate"
	"github.com/erigontech/execution-core/core/types"
	"github.com/erigontech/execution-core/crypto"
	"github.com/erigontech/execution-core/params"
)

// testKey is a secp256k1 key generated afresh on each test run, used only
// to sign transactions for admission tests; it is not tied to any real
// account.
var testKey, _ = btcec.NewPrivateKey()

var testRecipient = common.HexToAddress("0x0000000000000000000000000000000000dEaD")

func testSender() common.Address {
	return crypto.PubkeyToAddress(testKey.PubKey().SerializeUncompressed()[1:])
}

// signLegacy fills in V/R/S on tx using the pre-EIP-155 encoding (v in
// {27,28}), following the reverse of the compact-signature layout the
// core's own Ecrecover path expects.
func signLegacy(tx *types.LegacyTx) {
	hash := types.NewTx(tx).SigningHash(nil)
	sig := ecdsa.SignCompact(testKey, hash.Bytes(), false)
	recoveryID := uint64(sig[0] - 27)
	tx.R = new(big.Int).SetBytes(sig[1:33])
	tx.S = new(big.Int).SetBytes(sig[33:65])
	tx.V = new(big.Int).SetUint64(27 + recoveryID)
}

// signDynamicFee fills in V/R/S on tx using the typed-transaction
// convention: V carries the bare y_parity (0 or 1), not the legacy 27/28
// offset.
func signDynamicFee(tx *types.DynamicFeeTx) {
	hash := types.NewTx(tx).SigningHash(tx.ChainID)
	sig := ecdsa.SignCompact(testKey, hash.Bytes(), false)
	recoveryID := uint64(sig[0] - 27)
	tx.R = new(big.Int).SetBytes(sig[1:33])
	tx.S = new(big.Int).SetBytes(sig[33:65])
	tx.V = new(big.Int).SetUint64(recoveryID)
}

func TestAdmitTxRejectsLowIntrinsicGas(t *testing.T) {
	st := memstate.New()
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    0,
		GasPrice: big.NewInt(1_000_000_000),
		Gas:      100, // below the 21000 base intrinsic cost
		To:       &testRecipient,
		Value:    new(big.Int),
	})
	_, err := AdmitTx(st, tx, 30_000_000, nil, big.NewInt(1_000_000_000), 0)
	if !errors.Is(err, ErrIntrinsicGas) {
		t.Fatalf("have %v, want ErrIntrinsicGas", err)
	}
}

func TestAdmitTxRejectsInitCodeTooLarge(t *testing.T) {
	st := memstate.New()
	inner := &types.LegacyTx{
		Nonce:    0,
		GasPrice: big.NewInt(1_000_000_000),
		Gas:      10_000_000,
		To:       nil,
		Value:    new(big.Int),
		Data:     make([]byte, 2*params.MaxCodeSize+1),
	}
	signLegacy(inner)
	tx := types.NewTx(inner)
	_, err := AdmitTx(st, tx, 30_000_000, nil, big.NewInt(1_000_000_000), 0)
	if !errors.Is(err, ErrMaxInitCodeSizeExceeded) {
		t.Fatalf("have %v, want ErrMaxInitCodeSizeExceeded", err)
	}
}

func TestAdmitTxRejectsGasAboveAvailable(t *testing.T) {
	st := memstate.New()
	inner := &types.LegacyTx{
		Nonce:    0,
		GasPrice: big.NewInt(1_000_000_000),
		Gas:      21000,
		To:       &testRecipient,
		Value:    new(big.Int),
	}
	signLegacy(inner)
	tx := types.NewTx(inner)
	_, err := AdmitTx(st, tx, 10_000, nil, big.NewInt(1_000_000_000), 0)
	if !errors.Is(err, ErrGasLimitReached) {
		t.Fatalf("have %v, want ErrGasLimitReached", err)
	}
}

func TestAdmitTxRejectsGasPriceBelowBaseFee(t *testing.T) {
	st := memstate.New()
	inner := &types.LegacyTx{
		Nonce:    0,
		GasPrice: big.NewInt(100),
		Gas:      21000,
		To:       &testRecipient,
		Value:    new(big.Int),
	}
	signLegacy(inner)
	tx := types.NewTx(inner)
	_, err := AdmitTx(st, tx, 30_000_000, nil, big.NewInt(1_000_000_000), 0)
	if !errors.Is(err, ErrGasPriceBelowBaseFee) {
		t.Fatalf("have %v, want ErrGasPriceBelowBaseFee", err)
	}
}

func TestAdmitTxRejectsFeeCapBelowTip(t *testing.T) {
	st := memstate.New()
	inner := &types.DynamicFeeTx{
		ChainID:   big.NewInt(1),
		Nonce:     0,
		GasTipCap: big.NewInt(2_000_000_000),
		GasFeeCap: big.NewInt(1_000_000_000),
		Gas:       21000,
		To:        &testRecipient,
		Value:     new(big.Int),
	}
	signDynamicFee(inner)
	tx := types.NewTx(inner)
	_, err := AdmitTx(st, tx, 30_000_000, big.NewInt(1), big.NewInt(1_000_000_000), 0)
	if !errors.Is(err, ErrFeeCapTooLow) {
		t.Fatalf("have %v, want ErrFeeCapTooLow", err)
	}
}

func TestAdmitTxAcceptsWellFormedLegacyTx(t *testing.T) {
	st := memstate.New()
	sender := testSender()
	st.SetAccountBalance(sender, big.NewInt(1_000_000_000_000_000))

	inner := &types.LegacyTx{
		Nonce:    0,
		GasPrice: big.NewInt(2_000_000_000),
		Gas:      21000,
		To:       &testRecipient,
		Value:    big.NewInt(100),
	}
	signLegacy(inner)
	tx := types.NewTx(inner)

	admitted, err := AdmitTx(st, tx, 30_000_000, nil, big.NewInt(1_000_000_000), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admitted.Sender != sender {
		t.Errorf("have sender %s, want %s", admitted.Sender, sender)
	}
	if admitted.EffectiveGasPrice.Cmp(inner.GasPrice) != 0 {
		t.Errorf("have effective gas price %s, want %s", admitted.EffectiveGasPrice, inner.GasPrice)
	}
}

func TestAdmitTxRejectsInsufficientBalance(t *testing.T) {
	st := memstate.New()
	inner := &types.LegacyTx{
		Nonce:    0,
		GasPrice: big.NewInt(2_000_000_000),
		Gas:      21000,
		To:       &testRecipient,
		Value:    big.NewInt(100),
	}
	signLegacy(inner)
	tx := types.NewTx(inner)

	_, err := AdmitTx(st, tx, 30_000_000, nil, big.NewInt(1_000_000_000), 0)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("have %v, want ErrInsufficientFunds", err)
	}
}
