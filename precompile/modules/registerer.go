// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modules

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ava-labs/libevm/common"
)

var (
	errEmptyName     = errors.New("module name cannot be empty")
	errDuplicateName = errors.New("module name already registered")
	errNilContract   = errors.New("module precompile has no contract")
	errSelfConflict  = errors.New("module claims the same value twice")
	errEmptyModule   = errors.New("module claims no precompile or opcode")

	lock sync.RWMutex
	// registeredModules is a list of Module to preserve order
	// for deterministic iteration
	registeredModules = make([]Module, 0)
)

// RegisterModule adds [stm] to the catalogue. Modules are registered from
// init functions. Two modules may claim the same address or opcode; such
// modules are alternatives and cannot be enabled together, which is checked
// when the chain config is loaded.
func RegisterModule(stm Module) error {
	if err := verifyModule(stm); err != nil {
		return err
	}

	lock.Lock()
	defer lock.Unlock()
	for _, registered := range registeredModules {
		if registered.Name == stm.Name {
			return fmt.Errorf("%w: %q", errDuplicateName, stm.Name)
		}
	}
	registeredModules = insertSortedByName(registeredModules, stm)
	return nil
}

func verifyModule(stm Module) error {
	if stm.Name == "" {
		return errEmptyName
	}
	if len(stm.Precompiles) == 0 && len(stm.Opcodes) == 0 {
		return fmt.Errorf("%w: %q", errEmptyModule, stm.Name)
	}
	addrs := make(map[common.Address]struct{}, len(stm.Precompiles))
	for _, p := range stm.Precompiles {
		if p.Contract == nil {
			return fmt.Errorf("%w: %q at %s", errNilContract, stm.Name, p.Address)
		}
		if _, ok := addrs[p.Address]; ok {
			return fmt.Errorf("%w: %q claims address %s twice", errSelfConflict, stm.Name, p.Address)
		}
		addrs[p.Address] = struct{}{}
	}
	var ops [256]bool
	for _, h := range stm.Opcodes {
		if err := h.Verify(); err != nil {
			return fmt.Errorf("module %q: %w", stm.Name, err)
		}
		if ops[h.Opcode] {
			return fmt.Errorf("%w: %q claims opcode 0x%02x twice", errSelfConflict, stm.Name, h.Opcode)
		}
		ops[h.Opcode] = true
	}
	return nil
}

// GetModule returns the module registered under [name].
func GetModule(name string) (Module, bool) {
	lock.RLock()
	defer lock.RUnlock()
	for _, stm := range registeredModules {
		if stm.Name == name {
			return stm, true
		}
	}
	return Module{}, false
}

// GetModulesByAddress returns every registered module claiming [address],
// in name order.
func GetModulesByAddress(address common.Address) []Module {
	lock.RLock()
	defer lock.RUnlock()
	var found []Module
	for _, stm := range registeredModules {
		for _, p := range stm.Precompiles {
			if p.Address == address {
				found = append(found, stm)
				break
			}
		}
	}
	return found
}

// RegisteredModules returns a copy of the catalogue sorted by name.
func RegisteredModules() []Module {
	lock.RLock()
	defer lock.RUnlock()
	return append([]Module(nil), registeredModules...)
}

func insertSortedByName(data []Module, stm Module) []Module {
	data = append(data, stm)
	sort.Sort(moduleArray(data))
	return data
}

// SortedAddresses returns addrs in ascending byte order.
func SortedAddresses(addrs []common.Address) []common.Address {
	sorted := append([]common.Address(nil), addrs...)
	sort.Slice(sorted, func(i, j int) bool { return lessAddress(sorted[i], sorted[j]) })
	return sorted
}
