// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package extstate

import (
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core/vm"
	"github.com/holiman/uint256"

	"github.com/traverse-labs/traverse/precompile/contract"
)

var _ contract.StateDB = (*StateDB)(nil)

// StateDB exposes the host [vm.StateDB] as the accessor used by precompiles
// and opcode handlers. Journaling is left to the host: Snapshot and
// RevertToSnapshot are forwarded unchanged.
type StateDB struct {
	vm.StateDB
}

// New wraps db.
func New(db vm.StateDB) *StateDB {
	return &StateDB{StateDB: db}
}

func (s *StateDB) GetState(addr common.Address, key common.Hash) common.Hash {
	return s.StateDB.GetState(addr, key)
}

func (s *StateDB) SetState(addr common.Address, key common.Hash, value common.Hash) {
	s.StateDB.SetState(addr, key, value)
}

func (s *StateDB) GetBalance(addr common.Address) *uint256.Int {
	return s.StateDB.GetBalance(addr)
}

func (s *StateDB) AddBalance(addr common.Address, amount *uint256.Int) {
	s.StateDB.AddBalance(addr, amount)
}

func (s *StateDB) SubBalance(addr common.Address, amount *uint256.Int) {
	s.StateDB.SubBalance(addr, amount)
}
