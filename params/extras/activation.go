// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package extras

import (
	"github.com/ava-labs/libevm/common"
	"golang.org/x/exp/slices"

	"github.com/traverse-labs/traverse/core/overlay"
	"github.com/traverse-labs/traverse/precompile/registry"
)

var emptyActivationSet = &ActivationSet{}

// ActivationSet is the set of features active in one block, together with
// the precompiles and opcode handlers they contribute. It is shared
// read-only between all blocks with the same active features.
type ActivationSet struct {
	// features is sorted by name.
	features    []string
	precompiles *registry.Registry
	opcodes     *overlay.Table
}

// Features returns the names of the active features in ascending order.
func (a *ActivationSet) Features() []string {
	if a == nil {
		return nil
	}
	return slices.Clone(a.features)
}

func (a *ActivationSet) IsActive(name string) bool {
	if a == nil {
		return false
	}
	_, ok := slices.BinarySearch(a.features, name)
	return ok
}

// Precompiles returns the live precompile registry. The result is nil-safe.
func (a *ActivationSet) Precompiles() *registry.Registry {
	if a == nil {
		return nil
	}
	return a.precompiles
}

// Opcodes returns the live opcode table. The result is nil-safe.
func (a *ActivationSet) Opcodes() *overlay.Table {
	if a == nil {
		return nil
	}
	return a.opcodes
}

// Lookup returns the precompile at [addr] if one is live.
func (a *ActivationSet) Lookup(addr common.Address) (registry.Entry, bool) {
	return a.Precompiles().Lookup(addr)
}

// Empty returns whether no feature is active.
func (a *ActivationSet) Empty() bool {
	return a == nil || len(a.features) == 0
}

// Equal returns whether a and b hold the same active features.
func (a *ActivationSet) Equal(b *ActivationSet) bool {
	return slices.Equal(a.Features(), b.Features())
}

// Dispatch runs [op] against [frame], using the handlers of [set] and
// falling back to [base] for every opcode the set does not claim.
func Dispatch(op byte, set *ActivationSet, base overlay.Interpreter, frame *overlay.Frame) error {
	return overlay.NewDispatcher(set.Opcodes(), base).Dispatch(op, frame)
}
