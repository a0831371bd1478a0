// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modules

import (
	"bytes"

	"github.com/ava-labs/libevm/common"

	"github.com/traverse-labs/traverse/core/overlay"
	"github.com/traverse-labs/traverse/precompile/contract"
)

// Precompile binds a contract to the fixed address it is reachable at.
type Precompile struct {
	Address  common.Address
	Contract contract.StatefulPrecompiledContract
}

// Module is one experimental feature as it appears in the catalogue: the
// precompiles and opcodes it introduces once its activation threshold is
// reached. Its Name is the key used in the chain config.
type Module struct {
	// Name is the unique key of the feature.
	Name string
	// Precompiles claimed by the feature.
	Precompiles []Precompile
	// Opcodes claimed by the feature.
	Opcodes []*overlay.Handler
}

// Addresses returns the precompile addresses claimed by the module.
func (m Module) Addresses() []common.Address {
	addrs := make([]common.Address, 0, len(m.Precompiles))
	for _, p := range m.Precompiles {
		addrs = append(addrs, p.Address)
	}
	return addrs
}

// OpcodeValues returns the opcode values claimed by the module.
func (m Module) OpcodeValues() []byte {
	ops := make([]byte, 0, len(m.Opcodes))
	for _, h := range m.Opcodes {
		ops = append(ops, h.Opcode)
	}
	return ops
}

type moduleArray []Module

func (u moduleArray) Len() int {
	return len(u)
}

func (u moduleArray) Swap(i, j int) {
	u[i], u[j] = u[j], u[i]
}

func (m moduleArray) Less(i, j int) bool {
	return m[i].Name < m[j].Name
}

func lessAddress(a, b common.Address) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
