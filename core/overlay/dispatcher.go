// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package overlay

import (
	"fmt"

	"github.com/ava-labs/libevm/common/math"
	"github.com/ava-labs/libevm/log"
	"github.com/ava-labs/libevm/params"

	"github.com/traverse-labs/traverse/metrics"
	"github.com/traverse-labs/traverse/vmerrs"
)

var (
	opcodeDispatches = metrics.NewCounter("traverse/opcode/dispatches")
	opcodeFailures   = metrics.NewCounter("traverse/opcode/failures")
)

// Interpreter executes a single opcode with base EVM semantics.
type Interpreter interface {
	Step(op byte, frame *Frame) error
}

// InterpreterFunc adapts a function to [Interpreter].
type InterpreterFunc func(op byte, frame *Frame) error

func (f InterpreterFunc) Step(op byte, frame *Frame) error {
	return f(op, frame)
}

// Dispatcher routes opcodes claimed by its table to their handlers and
// everything else to the base interpreter.
type Dispatcher struct {
	table *Table
	base  Interpreter
}

func NewDispatcher(table *Table, base Interpreter) *Dispatcher {
	return &Dispatcher{table: table, base: base}
}

// Dispatch runs op against frame.
func (d *Dispatcher) Dispatch(op byte, frame *Frame) error {
	h, ok := d.table.Lookup(op)
	if !ok {
		return d.base.Step(op, frame)
	}
	return Execute(h, frame)
}

// Execute validates the stack effect of h, charges its gas (memory
// expansion included), grows memory and runs it.
// Any failure leaves the state as it was before the call; gas charged
// before a failing Execute stays charged.
func Execute(h *Handler, frame *Frame) error {
	opcodeDispatches.Inc(1)
	if err := CheckStack(h, frame.Stack.Len()); err != nil {
		opcodeFailures.Inc(1)
		return err
	}

	snapshot, hasState := takeSnapshot(frame)
	err := charge(h, frame)
	if err == nil {
		err = run(h, frame)
	}
	if err != nil {
		opcodeFailures.Inc(1)
		if hasState {
			frame.State.RevertToSnapshot(snapshot)
		}
		log.Trace("opcode handler failed", "op", fmt.Sprintf("0x%02x", h.Opcode), "name", h.Name, "err", err)
	}
	return err
}

// Apply runs h with write protection and reverts its state changes on
// failure. It is used by hosts that validate the stack and charge gas
// themselves before calling into the handler.
func Apply(h *Handler, frame *Frame) error {
	opcodeDispatches.Inc(1)
	snapshot, hasState := takeSnapshot(frame)
	if err := run(h, frame); err != nil {
		opcodeFailures.Inc(1)
		if hasState {
			frame.State.RevertToSnapshot(snapshot)
		}
		return err
	}
	return nil
}

// CheckStack reports whether a stack of depth stackLen satisfies the stack
// effect of h.
func CheckStack(h *Handler, stackLen int) error {
	if stackLen < h.MinStack() {
		return fmt.Errorf("%w (%d <=> %d) for %s", vmerrs.ErrStackUnderflow, stackLen, h.MinStack(), h.Name)
	}
	if stackLen > h.MaxStack() {
		return fmt.Errorf("%w (%d <=> %d) for %s", vmerrs.ErrStackOverflow, stackLen, h.MaxStack(), h.Name)
	}
	return nil
}

// GasCost returns the total gas h charges when run against frame.
func GasCost(h *Handler, frame *Frame) (uint64, error) {
	cost := h.ConstantGas
	if h.DynamicGas == nil {
		return cost, nil
	}
	dynamic, err := h.DynamicGas(frame)
	if err != nil {
		return 0, err
	}
	cost, overflow := math.SafeAdd(cost, dynamic)
	if overflow {
		return 0, vmerrs.ErrGasUintOverflow
	}
	return cost, nil
}

// MemorySize returns the word-aligned memory size h needs against frame,
// or 0 if h does not use memory.
func MemorySize(h *Handler, frame *Frame) (uint64, error) {
	if h.MemorySize == nil {
		return 0, nil
	}
	size, overflow := h.MemorySize(frame)
	if overflow {
		return 0, vmerrs.ErrGasUintOverflow
	}
	words, overflow := math.SafeAdd(size, 31)
	if overflow {
		return 0, vmerrs.ErrGasUintOverflow
	}
	words /= 32
	size, overflow = math.SafeMul(words, 32)
	if overflow {
		return 0, vmerrs.ErrGasUintOverflow
	}
	return size, nil
}

// MemoryGasCost returns the gas for growing memory from currentSize to
// newSize bytes, both word aligned. Growth is charged on the quadratic
// memory fee of the total size, less the fee already paid for currentSize.
func MemoryGasCost(currentSize, newSize uint64) (uint64, error) {
	if newSize <= currentSize {
		return 0, nil
	}
	// Above this size the quadratic term overflows a uint64.
	if newSize > 0x1FFFFFFFE0 {
		return 0, vmerrs.ErrGasUintOverflow
	}
	return memoryFee(newSize) - memoryFee(currentSize), nil
}

func memoryFee(size uint64) uint64 {
	words := (size + 31) / 32
	return words*params.MemoryGas + words*words/params.QuadCoeffDiv
}

func charge(h *Handler, frame *Frame) error {
	memSize, err := MemorySize(h, frame)
	if err != nil {
		return err
	}
	cost, err := GasCost(h, frame)
	if err != nil {
		return err
	}
	if memSize > 0 {
		memCost, err := MemoryGasCost(uint64(frame.Memory.Len()), memSize)
		if err != nil {
			return err
		}
		var overflow bool
		if cost, overflow = math.SafeAdd(cost, memCost); overflow {
			return vmerrs.ErrGasUintOverflow
		}
	}
	if !frame.Gas.UseGas(cost) {
		return vmerrs.ErrOutOfGas
	}
	if memSize > 0 && memSize > uint64(frame.Memory.Len()) {
		frame.Memory.Resize(memSize)
	}
	return nil
}

func run(h *Handler, frame *Frame) error {
	if h.Writes && frame.ReadOnly {
		return vmerrs.ErrWriteProtection
	}
	return h.Execute(frame)
}

func takeSnapshot(frame *Frame) (int, bool) {
	if frame.State == nil {
		return 0, false
	}
	return frame.State.Snapshot(), true
}
