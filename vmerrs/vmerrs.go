// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vmerrs

import (
	"errors"

	"github.com/ava-labs/libevm/core/vm"
)

// List evm execution errors. The aliased errors keep identity with the
// host interpreter, which compares against them to decide whether the
// remaining gas of a failed call is refunded.
var (
	ErrOutOfGas            = vm.ErrOutOfGas
	ErrExecutionReverted   = vm.ErrExecutionReverted
	ErrWriteProtection     = vm.ErrWriteProtection
	ErrInsufficientBalance = vm.ErrInsufficientBalance
	ErrGasUintOverflow     = vm.ErrGasUintOverflow
	ErrInvalidJump         = vm.ErrInvalidJump

	ErrAddrProhibited = errors.New("prohibited address cannot be sender or created contract address")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrStackOverflow  = errors.New("stack limit reached")
	ErrInvalidInput   = errors.New("invalid precompile input")
	// ErrGasAccounting is returned when an extension reports more gas
	// remaining than it was handed. The enclosing transaction fails.
	ErrGasAccounting = errors.New("gas accounting violation")
)
