// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"errors"

	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/log"
	"github.com/holiman/uint256"

	"github.com/traverse-labs/traverse/metrics"
	"github.com/traverse-labs/traverse/vmerrs"
)

var (
	precompileCalls     = metrics.NewCounter("traverse/precompile/calls")
	precompileOutOfGas  = metrics.NewCounter("traverse/precompile/outofgas")
	precompileFailures  = metrics.NewCounter("traverse/precompile/failures")
	precompileViolation = metrics.NewCounter("traverse/precompile/violations")
)

// Run executes [c] under the gas and state guard:
//
//   - RequiredGas is charged before the contract runs. If [suppliedGas] does
//     not cover it the contract is never run and no state is touched.
//   - All state access goes through a snapshot taken before Run. Any error
//     reverts to it, and errors other than a revert consume all gas.
//   - In a read-only call every write is refused and reported as
//     [vmerrs.ErrWriteProtection].
//   - A contract that returns more gas than it was handed violates gas
//     accounting; its effects are reverted and the call fails with
//     [vmerrs.ErrGasAccounting].
func Run(c StatefulPrecompiledContract, state AccessibleState, caller common.Address, addr common.Address, input []byte, suppliedGas uint64, readOnly bool) ([]byte, uint64, error) {
	precompileCalls.Inc(1)

	remainingGas, err := DeductGas(suppliedGas, c.RequiredGas(input))
	if err != nil {
		precompileOutOfGas.Inc(1)
		return nil, 0, err
	}

	db := &guardedStateDB{StateDB: state.GetStateDB(), readOnly: readOnly}
	snapshot := db.Snapshot()

	ret, leftOver, err := c.Run(&guardedState{AccessibleState: state, db: db}, caller, addr, input, remainingGas, readOnly)
	switch {
	case leftOver > remainingGas:
		precompileViolation.Inc(1)
		log.Error("precompile reported more gas than supplied", "addr", addr, "supplied", remainingGas, "remaining", leftOver)
		db.RevertToSnapshot(snapshot)
		return nil, 0, vmerrs.ErrGasAccounting
	case db.refusedWrite:
		precompileFailures.Inc(1)
		db.RevertToSnapshot(snapshot)
		return nil, 0, vmerrs.ErrWriteProtection
	case err != nil:
		precompileFailures.Inc(1)
		log.Debug("precompile failed", "addr", addr, "caller", caller, "err", err)
		db.RevertToSnapshot(snapshot)
		if !errors.Is(err, vmerrs.ErrExecutionReverted) {
			leftOver = 0
		}
		return ret, leftOver, err
	}
	return ret, leftOver, nil
}

type guardedState struct {
	AccessibleState
	db *guardedStateDB
}

func (g *guardedState) GetStateDB() StateDB {
	return g.db
}

// guardedStateDB refuses mutations while read-only. Refused writes are
// remembered so the guard can fail the call after the contract returns.
type guardedStateDB struct {
	StateDB
	readOnly     bool
	refusedWrite bool
}

func (g *guardedStateDB) allowWrite() bool {
	if g.readOnly {
		g.refusedWrite = true
		return false
	}
	return true
}

func (g *guardedStateDB) SetState(addr common.Address, key common.Hash, value common.Hash) {
	if g.allowWrite() {
		g.StateDB.SetState(addr, key, value)
	}
}

func (g *guardedStateDB) AddBalance(addr common.Address, amount *uint256.Int) {
	if g.allowWrite() {
		g.StateDB.AddBalance(addr, amount)
	}
}

func (g *guardedStateDB) SubBalance(addr common.Address, amount *uint256.Int) {
	if g.allowWrite() {
		g.StateDB.SubBalance(addr, amount)
	}
}

func (g *guardedStateDB) CreateAccount(addr common.Address) {
	if g.allowWrite() {
		g.StateDB.CreateAccount(addr)
	}
}

func (g *guardedStateDB) SetNonce(addr common.Address, nonce uint64) {
	if g.allowWrite() {
		g.StateDB.SetNonce(addr, nonce)
	}
}
