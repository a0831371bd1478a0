// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package overlay implements the opcode table extension: a sparse table of
// handlers composed in front of a base interpreter. Opcodes without a
// handler are passed to the base interpreter untouched.
package overlay

import (
	"errors"
	"fmt"

	"github.com/ava-labs/libevm/common"
	"github.com/holiman/uint256"

	"github.com/traverse-labs/traverse/precompile/contract"
)

// StackLimit is the maximum depth of the EVM stack.
const StackLimit = 1024

var (
	errMissingExecute  = errors.New("handler has no Execute function")
	errNegativeStack   = errors.New("handler stack effect is negative")
	errMissingHandler  = errors.New("nil handler")
	errStackEffectSize = errors.New("handler stack effect exceeds stack limit")
)

// Stack is the operand stack of the executing frame.
type Stack interface {
	Len() int
	Pop() uint256.Int
	Push(*uint256.Int)
	// Back returns the n'th item from the top without removing it.
	Back(n int) *uint256.Int
}

// Memory is the linear memory of the executing frame. Set must stay within
// Len; memory is grown only through [Handler.MemorySize], before Execute.
type Memory interface {
	Len() int
	GetCopy(offset, size uint64) []byte
	Set(offset, size uint64, value []byte)
	Resize(size uint64)
}

// GasMeter tracks the gas left in the executing frame.
type GasMeter interface {
	Gas() uint64
	// UseGas deducts amount and reports whether enough gas was left.
	UseGas(amount uint64) bool
}

// Frame is the execution context an opcode handler operates on. It is
// built by the host adapter and never retained past one dispatch.
type Frame struct {
	Stack    Stack
	Memory   Memory
	Gas      GasMeter
	State    contract.StateDB
	Self     common.Address
	Caller   common.Address
	ReadOnly bool
}

// Handler describes one opcode added or overridden by a feature.
type Handler struct {
	Name   string
	Opcode byte

	// Pops and Pushes are the stack effect, validated before the handler
	// runs.
	Pops, Pushes int
	// Writes marks handlers that mutate state; they fail in a static
	// context.
	Writes bool

	ConstantGas uint64
	// DynamicGas, if set, is charged together with ConstantGas before
	// Execute. It must not mutate state beyond access list warming.
	DynamicGas func(*Frame) (uint64, error)
	// MemorySize, if set, returns the memory size in bytes the handler
	// needs and whether computing it overflowed. It may only read the
	// stack. Expansion is charged with the gas and done before Execute.
	MemorySize func(*Frame) (uint64, bool)
	Execute    func(*Frame) error
}

// MinStack is the stack depth required to run the handler.
func (h *Handler) MinStack() int {
	return h.Pops
}

// MaxStack is the deepest stack the handler may start from without
// overflowing.
func (h *Handler) MaxStack() int {
	return StackLimit + h.Pops - h.Pushes
}

// Verify checks that h is well formed.
func (h *Handler) Verify() error {
	switch {
	case h == nil:
		return errMissingHandler
	case h.Execute == nil:
		return fmt.Errorf("%w: opcode 0x%02x (%s)", errMissingExecute, h.Opcode, h.Name)
	case h.Pops < 0 || h.Pushes < 0:
		return fmt.Errorf("%w: opcode 0x%02x (%s)", errNegativeStack, h.Opcode, h.Name)
	case h.Pops > StackLimit || h.Pushes > StackLimit:
		return fmt.Errorf("%w: opcode 0x%02x (%s)", errStackEffectSize, h.Opcode, h.Name)
	}
	return nil
}
