// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package overlaytest provides in-memory frame components for testing
// opcode handlers without a host interpreter.
package overlaytest

import (
	"github.com/holiman/uint256"
)

// Stack is a slice-backed operand stack. The last element is the top.
type Stack struct {
	Data []uint256.Int
}

// NewStack returns a stack holding items, the last being the top.
func NewStack(items ...uint64) *Stack {
	s := &Stack{}
	for _, item := range items {
		s.Push(uint256.NewInt(item))
	}
	return s
}

func (s *Stack) Len() int { return len(s.Data) }

func (s *Stack) Push(v *uint256.Int) { s.Data = append(s.Data, *v) }

func (s *Stack) Pop() uint256.Int {
	v := s.Data[len(s.Data)-1]
	s.Data = s.Data[:len(s.Data)-1]
	return v
}

func (s *Stack) Back(n int) *uint256.Int {
	return &s.Data[len(s.Data)-n-1]
}

// GasMeter is a plain counter of remaining gas.
type GasMeter struct {
	Remaining uint64
}

func NewGasMeter(gas uint64) *GasMeter { return &GasMeter{Remaining: gas} }

func (g *GasMeter) Gas() uint64 { return g.Remaining }

func (g *GasMeter) UseGas(amount uint64) bool {
	if g.Remaining < amount {
		return false
	}
	g.Remaining -= amount
	return true
}

// Memory is a byte slice grown only by Resize. Set panics outside Len, as
// the host memory does.
type Memory struct {
	Data []byte
}

func (m *Memory) Len() int { return len(m.Data) }

func (m *Memory) GetCopy(offset, size uint64) []byte {
	out := make([]byte, size)
	if offset < uint64(len(m.Data)) {
		copy(out, m.Data[offset:])
	}
	return out
}

func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	if offset+size > uint64(len(m.Data)) {
		panic("invalid memory: store empty")
	}
	copy(m.Data[offset:offset+size], value)
}

func (m *Memory) Resize(size uint64) {
	if size > uint64(len(m.Data)) {
		m.Data = append(m.Data, make([]byte, size-uint64(len(m.Data)))...)
	}
}
