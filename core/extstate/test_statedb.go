// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package extstate

import (
	"testing"

	"github.com/ava-labs/libevm/core/rawdb"
	"github.com/ava-labs/libevm/core/state"
	"github.com/ava-labs/libevm/core/types"
	"github.com/stretchr/testify/require"
)

type TestStateDB struct {
	*StateDB

	// Inner is the backing in-memory state, for root comparisons.
	Inner *state.StateDB
}

// NewTest returns an empty in-memory state.
func NewTest(t testing.TB) *TestStateDB {
	db := rawdb.NewMemoryDatabase()
	statedb, err := state.New(types.EmptyRootHash, state.NewDatabase(db), nil)
	require.NoError(t, err)
	return &TestStateDB{
		StateDB: New(statedb),
		Inner:   statedb,
	}
}
