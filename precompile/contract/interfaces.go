// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Defines the interface for the configuration and execution of a precompile contract
package contract

import (
	"math/big"

	"github.com/ava-labs/libevm/common"
	"github.com/holiman/uint256"
)

// StatefulPrecompiledContract is the interface for executing a precompiled contract
type StatefulPrecompiledContract interface {
	// RequiredGas returns the gas charged for [input] before Run is called.
	RequiredGas(input []byte) uint64
	// Run executes the precompiled contract. [suppliedGas] is what is left
	// after RequiredGas has been charged.
	Run(accessibleState AccessibleState, caller common.Address, addr common.Address, input []byte, suppliedGas uint64, readOnly bool) (ret []byte, remainingGas uint64, err error)
}

// StateDB is the interface for accessing EVM state. It is the only path by
// which a precompile or opcode may observe or mutate state.
type StateDB interface {
	GetState(common.Address, common.Hash) common.Hash
	SetState(common.Address, common.Hash, common.Hash)

	GetBalance(common.Address) *uint256.Int
	AddBalance(common.Address, *uint256.Int)
	SubBalance(common.Address, *uint256.Int)

	GetNonce(common.Address) uint64
	SetNonce(common.Address, uint64)
	GetCode(common.Address) []byte

	CreateAccount(common.Address)
	Exist(common.Address) bool
	Empty(common.Address) bool

	AddressInAccessList(addr common.Address) bool
	AddAddressToAccessList(addr common.Address)

	Snapshot() int
	RevertToSnapshot(int)
}

// AccessibleState defines the interface exposed to stateful precompile contracts
type AccessibleState interface {
	GetStateDB() StateDB
	GetBlockContext() BlockContext
}

// BlockContext defines an interface that provides information to a stateful precompile
// about the current block.
type BlockContext interface {
	Number() *big.Int
	Timestamp() uint64
}
