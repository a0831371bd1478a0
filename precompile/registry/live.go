// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"errors"
	"fmt"

	"github.com/ava-labs/libevm/common"

	"github.com/traverse-labs/traverse/precompile/contract"
	"github.com/traverse-labs/traverse/precompile/modules"
)

// ErrAddressClaimed is returned when two entries claim the same address.
var ErrAddressClaimed = errors.New("precompile address already claimed")

// Entry is a precompile reachable in a given block.
type Entry struct {
	Feature  string
	Address  common.Address
	Contract contract.StatefulPrecompiledContract
}

// Registry holds the precompiles of one activation set. It is immutable
// once built and safe for concurrent use.
type Registry struct {
	entries   map[common.Address]Entry
	addresses []common.Address
}

// New builds a Registry from entries.
func New(entries ...Entry) (*Registry, error) {
	r := &Registry{entries: make(map[common.Address]Entry, len(entries))}
	addrs := make([]common.Address, 0, len(entries))
	for _, e := range entries {
		if existing, ok := r.entries[e.Address]; ok {
			return nil, fmt.Errorf("%w: %s by %q and %q", ErrAddressClaimed, e.Address, existing.Feature, e.Feature)
		}
		r.entries[e.Address] = e
		addrs = append(addrs, e.Address)
	}
	r.addresses = modules.SortedAddresses(addrs)
	return r, nil
}

// Lookup returns the entry at addr, if any.
func (r *Registry) Lookup(addr common.Address) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	e, ok := r.entries[addr]
	return e, ok
}

// Addresses returns the registered addresses in ascending order.
func (r *Registry) Addresses() []common.Address {
	if r == nil {
		return nil
	}
	return append([]common.Address(nil), r.addresses...)
}

// Len returns the number of registered precompiles.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.addresses)
}

// Invoke runs entry under the gas and state guard.
func Invoke(entry Entry, state contract.AccessibleState, caller common.Address, input []byte, suppliedGas uint64, readOnly bool) ([]byte, uint64, error) {
	return contract.Run(entry.Contract, state, caller, entry.Address, input, suppliedGas, readOnly)
}
