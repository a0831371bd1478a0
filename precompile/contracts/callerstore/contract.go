// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package callerstore implements a stateful precompile giving every caller
// a private key/value namespace inside the precompile's own storage.
//
// Input is a one byte selector followed by its arguments:
//
//	0x00 ‖ slot            read the caller's slot, returns 32 bytes
//	0x01 ‖ slot ‖ value    write the caller's slot, returns nothing
package callerstore

import (
	"fmt"

	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/crypto"
	"github.com/ava-labs/libevm/params"

	"github.com/traverse-labs/traverse/precompile/contract"
	"github.com/traverse-labs/traverse/vmerrs"
)

const (
	SelectorRead  byte = 0x00
	SelectorWrite byte = 0x01

	ReadGasCost uint64 = params.ColdSloadCostEIP2929
	// WriteGasCost is charged for every write. Writing a non-zero value to
	// an empty slot additionally costs SetGasCost.
	WriteGasCost uint64 = params.SstoreResetGasEIP2200 - params.ColdSloadCostEIP2929
	SetGasCost   uint64 = params.SstoreSetGasEIP2200 - WriteGasCost

	readArgsLen  = common.HashLength
	writeArgsLen = 2 * common.HashLength
)

var _ contract.StatefulPrecompiledContract = CallerStore{}

type CallerStore struct{}

// StorageKey returns the storage slot of the precompile that backs [slot]
// of [caller].
func StorageKey(caller common.Address, slot common.Hash) common.Hash {
	return crypto.Keccak256Hash(caller.Bytes(), slot.Bytes())
}

func (CallerStore) RequiredGas(input []byte) uint64 {
	if len(input) == 0 {
		return 0
	}
	switch input[0] {
	case SelectorRead:
		return ReadGasCost
	case SelectorWrite:
		return WriteGasCost
	default:
		return 0
	}
}

func (CallerStore) Run(accessibleState contract.AccessibleState, caller common.Address, addr common.Address, input []byte, suppliedGas uint64, readOnly bool) ([]byte, uint64, error) {
	if len(input) == 0 {
		return nil, suppliedGas, fmt.Errorf("%w: empty input", vmerrs.ErrInvalidInput)
	}
	stateDB := accessibleState.GetStateDB()

	switch input[0] {
	case SelectorRead:
		_, args, err := contract.ParseSelector(input, readArgsLen)
		if err != nil {
			return nil, suppliedGas, err
		}
		value := stateDB.GetState(addr, StorageKey(caller, common.BytesToHash(args)))
		return value.Bytes(), suppliedGas, nil

	case SelectorWrite:
		if readOnly {
			return nil, suppliedGas, vmerrs.ErrWriteProtection
		}
		_, args, err := contract.ParseSelector(input, writeArgsLen)
		if err != nil {
			return nil, suppliedGas, err
		}
		key := StorageKey(caller, common.BytesToHash(args[:common.HashLength]))
		value := common.BytesToHash(args[common.HashLength:])

		remainingGas := suppliedGas
		if value != (common.Hash{}) && stateDB.GetState(addr, key) == (common.Hash{}) {
			if remainingGas, err = contract.DeductGas(remainingGas, SetGasCost); err != nil {
				return nil, 0, err
			}
		}
		// A non-zero nonce keeps the precompile account from being removed
		// as empty when the state is finalised.
		if stateDB.GetNonce(addr) == 0 {
			stateDB.SetNonce(addr, 1)
		}
		stateDB.SetState(addr, key, value)
		return nil, remainingGas, nil

	default:
		return nil, suppliedGas, fmt.Errorf("%w: unknown selector 0x%02x", vmerrs.ErrInvalidInput, input[0])
	}
}
