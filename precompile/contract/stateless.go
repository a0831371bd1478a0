// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import "github.com/ava-labs/libevm/common"

// PrecompiledContract is a precompile that neither reads nor writes state.
type PrecompiledContract interface {
	RequiredGas(input []byte) uint64
	Run(input []byte) ([]byte, error)
}

var _ StatefulPrecompiledContract = (*wrappedPrecompiledContract)(nil)

// wrappedPrecompiledContract implements StatefulPrecompiledContract by wrapping stateless precompiled contracts.
type wrappedPrecompiledContract struct {
	p PrecompiledContract
}

// Stateless adapts [p] so it can be registered next to stateful contracts.
func Stateless(p PrecompiledContract) StatefulPrecompiledContract {
	return &wrappedPrecompiledContract{p: p}
}

func (w *wrappedPrecompiledContract) RequiredGas(input []byte) uint64 {
	return w.p.RequiredGas(input)
}

func (w *wrappedPrecompiledContract) Run(_ AccessibleState, _ common.Address, _ common.Address, input []byte, suppliedGas uint64, _ bool) ([]byte, uint64, error) {
	ret, err := w.p.Run(input)
	return ret, suppliedGas, err
}
