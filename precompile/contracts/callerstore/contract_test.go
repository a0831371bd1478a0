// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package callerstore

import (
	"testing"

	"github.com/ava-labs/libevm/common"
	"github.com/stretchr/testify/require"

	"github.com/traverse-labs/traverse/core/extstate"
	"github.com/traverse-labs/traverse/precompile/contract"
	"github.com/traverse-labs/traverse/vmerrs"
)

var (
	alice = common.HexToAddress("0x1000000000000000000000000000000000000001")
	bob   = common.HexToAddress("0x1000000000000000000000000000000000000002")
	slot  = common.HexToHash("0x2a")
	value = common.HexToHash("0xbeef")
)

type harness struct {
	db    *extstate.TestStateDB
	state contract.AccessibleState
}

func newHarness(t *testing.T) *harness {
	db := extstate.NewTest(t)
	return &harness{
		db:    db,
		state: contract.NewAccessibleState(db, contract.NewBlockContext(common.Big1, 10)),
	}
}

func (h *harness) call(caller common.Address, input []byte, gas uint64, readOnly bool) ([]byte, uint64, error) {
	return contract.Run(CallerStore{}, h.state, caller, ContractAddress, input, gas, readOnly)
}

func TestCallerStore(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(h *harness)
		caller       common.Address
		input        []byte
		suppliedGas  uint64
		readOnly     bool
		expectedRes  []byte
		expectedGas  uint64
		expectedErr  error
		expectedSlot common.Hash
	}{
		{
			name:        "read empty slot",
			caller:      alice,
			input:       PackRead(slot),
			suppliedGas: ReadGasCost + 5,
			readOnly:    true,
			expectedRes: make([]byte, 32),
			expectedGas: 5,
		},
		{
			name:         "write empty slot",
			caller:       alice,
			input:        PackWrite(slot, value),
			suppliedGas:  WriteGasCost + SetGasCost + 1,
			expectedGas:  1,
			expectedSlot: value,
		},
		{
			name: "overwrite charges reset cost only",
			setup: func(h *harness) {
				h.db.SetState(ContractAddress, StorageKey(alice, slot), common.HexToHash("0x01"))
			},
			caller:       alice,
			input:        PackWrite(slot, value),
			suppliedGas:  WriteGasCost,
			expectedGas:  0,
			expectedSlot: value,
		},
		{
			name:        "write in read only call",
			caller:      alice,
			input:       PackWrite(slot, value),
			suppliedGas: WriteGasCost + SetGasCost,
			readOnly:    true,
			expectedErr: vmerrs.ErrWriteProtection,
		},
		{
			name:        "write below static cost",
			caller:      alice,
			input:       PackWrite(slot, value),
			suppliedGas: WriteGasCost - 1,
			expectedErr: vmerrs.ErrOutOfGas,
		},
		{
			name:        "write below set cost",
			caller:      alice,
			input:       PackWrite(slot, value),
			suppliedGas: WriteGasCost + SetGasCost - 1,
			expectedErr: vmerrs.ErrOutOfGas,
		},
		{
			name:        "short input",
			caller:      alice,
			input:       []byte{SelectorRead, 0x01},
			suppliedGas: ReadGasCost,
			expectedErr: vmerrs.ErrInvalidInput,
		},
		{
			name:        "unknown selector",
			caller:      alice,
			input:       []byte{0x07},
			suppliedGas: 100,
			expectedErr: vmerrs.ErrInvalidInput,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := newHarness(t)
			if test.setup != nil {
				test.setup(h)
			}
			root := h.db.Inner.IntermediateRoot(true)

			ret, remaining, err := h.call(test.caller, test.input, test.suppliedGas, test.readOnly)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				require.Zero(t, remaining)
				require.Equal(t, root, h.db.Inner.IntermediateRoot(true), "failed call mutated state")
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expectedRes, ret)
			require.Equal(t, test.expectedGas, remaining)
			if test.expectedSlot != (common.Hash{}) {
				require.Equal(t, test.expectedSlot, h.db.GetState(ContractAddress, StorageKey(test.caller, slot)))
			}
		})
	}
}

func TestCallerStoreNamespaces(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.call(alice, PackWrite(slot, value), WriteGasCost+SetGasCost, false)
	require.NoError(t, err)

	ret, _, err := h.call(alice, PackRead(slot), ReadGasCost, true)
	require.NoError(t, err)
	require.Equal(t, value.Bytes(), ret)

	ret, _, err = h.call(bob, PackRead(slot), ReadGasCost, true)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 32), ret)
}

func TestWriteKeepsAccount(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.call(alice, PackWrite(slot, value), WriteGasCost+SetGasCost, false)
	require.NoError(t, err)
	require.Equal(t, uint64(1), h.db.GetNonce(ContractAddress))

	h.db.Inner.Finalise(true)
	require.Equal(t, value, h.db.GetState(ContractAddress, StorageKey(alice, slot)))
}
