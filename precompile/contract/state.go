// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import "math/big"

type accessibleState struct {
	stateDB      StateDB
	blockContext BlockContext
}

// NewAccessibleState returns an AccessibleState over [stateDB] and [blockContext].
func NewAccessibleState(stateDB StateDB, blockContext BlockContext) AccessibleState {
	return &accessibleState{
		stateDB:      stateDB,
		blockContext: blockContext,
	}
}

func (a *accessibleState) GetStateDB() StateDB {
	return a.stateDB
}

func (a *accessibleState) GetBlockContext() BlockContext {
	return a.blockContext
}

type blockContext struct {
	number *big.Int
	time   uint64
}

func NewBlockContext(number *big.Int, time uint64) BlockContext {
	return &blockContext{
		number: number,
		time:   time,
	}
}

func (b *blockContext) Number() *big.Int {
	return b.number
}

func (b *blockContext) Timestamp() uint64 {
	return b.time
}
