// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract_test

import (
	"errors"
	"testing"

	"github.com/ava-labs/libevm/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/traverse-labs/traverse/core/extstate"
	"github.com/traverse-labs/traverse/precompile/contract"
	"github.com/traverse-labs/traverse/vmerrs"
)

var (
	caller = common.HexToAddress("0x1000000000000000000000000000000000000001")
	self   = common.HexToAddress("0x0300000000000000000000000000000000000001")
	key    = common.HexToHash("0x01")
)

// writer charges [required] up front, writes a slot and credits the caller,
// then returns whatever [result] decides.
type writer struct {
	required uint64
	runs     int
	result   func(suppliedGas uint64) (uint64, error)
}

func (w *writer) RequiredGas([]byte) uint64 { return w.required }

func (w *writer) Run(state contract.AccessibleState, caller common.Address, addr common.Address, input []byte, suppliedGas uint64, readOnly bool) ([]byte, uint64, error) {
	w.runs++
	db := state.GetStateDB()
	db.SetState(addr, key, common.HexToHash("0xff"))
	db.AddBalance(caller, uint256.NewInt(1))
	remaining, err := w.result(suppliedGas)
	return []byte{0x01}, remaining, err
}

func succeed(suppliedGas uint64) (uint64, error) { return suppliedGas, nil }

func newState(t *testing.T) (*extstate.TestStateDB, contract.AccessibleState) {
	db := extstate.NewTest(t)
	return db, contract.NewAccessibleState(db, contract.NewBlockContext(common.Big1, 1))
}

func TestRunSuccess(t *testing.T) {
	db, state := newState(t)
	w := &writer{required: 100, result: succeed}

	ret, remaining, err := contract.Run(w, state, caller, self, nil, 150, false)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01}, ret)
	require.Equal(t, uint64(50), remaining)
	require.Equal(t, common.HexToHash("0xff"), db.GetState(self, key))
	require.Equal(t, uint256.NewInt(1), db.GetBalance(caller))
}

func TestRunOutOfGasDoesNotRun(t *testing.T) {
	db, state := newState(t)
	root := db.Inner.IntermediateRoot(true)
	w := &writer{required: 100, result: succeed}

	ret, remaining, err := contract.Run(w, state, caller, self, nil, 99, false)
	require.ErrorIs(t, err, vmerrs.ErrOutOfGas)
	require.Nil(t, ret)
	require.Zero(t, remaining)
	require.Zero(t, w.runs)
	require.Equal(t, root, db.Inner.IntermediateRoot(true))
}

func TestRunRevertsOnError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedGas uint64
	}{
		{
			name:        "revert keeps remaining gas",
			err:         vmerrs.ErrExecutionReverted,
			expectedGas: 40,
		},
		{
			name:        "failure consumes all gas",
			err:         errors.New("boom"),
			expectedGas: 0,
		},
		{
			name:        "out of gas inside run",
			err:         vmerrs.ErrOutOfGas,
			expectedGas: 0,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			db, state := newState(t)
			root := db.Inner.IntermediateRoot(true)
			w := &writer{required: 10, result: func(suppliedGas uint64) (uint64, error) {
				return suppliedGas - 50, test.err
			}}

			_, remaining, err := contract.Run(w, state, caller, self, nil, 100, false)
			require.ErrorIs(t, err, test.err)
			require.Equal(t, test.expectedGas, remaining)
			require.Equal(t, root, db.Inner.IntermediateRoot(true))
		})
	}
}

func TestRunReadOnlyRefusesWrites(t *testing.T) {
	db, state := newState(t)
	root := db.Inner.IntermediateRoot(true)
	w := &writer{required: 10, result: succeed}

	ret, remaining, err := contract.Run(w, state, caller, self, nil, 100, true)
	require.ErrorIs(t, err, vmerrs.ErrWriteProtection)
	require.Nil(t, ret)
	require.Zero(t, remaining)
	require.Equal(t, 1, w.runs)
	require.Equal(t, root, db.Inner.IntermediateRoot(true))
}

func TestRunGasAccountingViolation(t *testing.T) {
	db, state := newState(t)
	root := db.Inner.IntermediateRoot(true)
	w := &writer{required: 10, result: func(suppliedGas uint64) (uint64, error) {
		return suppliedGas + 1, nil
	}}

	ret, remaining, err := contract.Run(w, state, caller, self, nil, 100, false)
	require.ErrorIs(t, err, vmerrs.ErrGasAccounting)
	require.Nil(t, ret)
	require.Zero(t, remaining)
	require.Equal(t, root, db.Inner.IntermediateRoot(true))
}

func TestRunDeterministic(t *testing.T) {
	run := func() (common.Hash, uint64) {
		db, state := newState(t)
		_, remaining, err := contract.Run(&writer{required: 10, result: succeed}, state, caller, self, nil, 100, false)
		require.NoError(t, err)
		return db.Inner.IntermediateRoot(true), remaining
	}
	root1, gas1 := run()
	root2, gas2 := run()
	require.Equal(t, root1, root2)
	require.Equal(t, gas1, gas2)
}

type identity struct{}

func (identity) RequiredGas(input []byte) uint64 { return 15 + 3*uint64(len(input)) }

func (identity) Run(input []byte) ([]byte, error) { return input, nil }

func TestStateless(t *testing.T) {
	_, state := newState(t)
	p := contract.Stateless(identity{})
	require.Equal(t, uint64(21), p.RequiredGas([]byte{1, 2}))

	ret, remaining, err := contract.Run(p, state, caller, self, []byte{1, 2}, 30, true)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, ret)
	require.Equal(t, uint64(9), remaining)
}

func TestDeductGas(t *testing.T) {
	remaining, err := contract.DeductGas(10, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(6), remaining)

	_, err = contract.DeductGas(3, 4)
	require.ErrorIs(t, err, vmerrs.ErrOutOfGas)
}

func TestParseSelector(t *testing.T) {
	selector, args, err := contract.ParseSelector([]byte{0x01, 0xaa, 0xbb}, 2)
	require.NoError(t, err)
	require.Equal(t, byte(0x01), selector)
	require.Equal(t, []byte{0xaa, 0xbb}, args)

	_, _, err = contract.ParseSelector(nil, 0)
	require.ErrorIs(t, err, vmerrs.ErrInvalidInput)

	_, _, err = contract.ParseSelector([]byte{0x01, 0xaa}, 2)
	require.ErrorIs(t, err, vmerrs.ErrInvalidInput)
}
