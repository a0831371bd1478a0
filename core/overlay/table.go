// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package overlay

import (
	"errors"
	"fmt"
)

// ErrOpcodeClaimed is returned when two handlers claim the same opcode.
var ErrOpcodeClaimed = errors.New("opcode already claimed")

// Table maps opcode values to optional override handlers. A Table is
// immutable once built and safe for concurrent use.
type Table struct {
	handlers [256]*Handler
	opcodes  []byte
}

// NewTable builds a Table from handlers. Two handlers for the same opcode
// are an error; there is no silent override.
func NewTable(handlers ...*Handler) (*Table, error) {
	t := &Table{}
	for _, h := range handlers {
		if err := h.Verify(); err != nil {
			return nil, err
		}
		if existing := t.handlers[h.Opcode]; existing != nil {
			return nil, fmt.Errorf("%w: 0x%02x by %q and %q", ErrOpcodeClaimed, h.Opcode, existing.Name, h.Name)
		}
		t.handlers[h.Opcode] = h
	}
	for op, h := range t.handlers {
		if h != nil {
			t.opcodes = append(t.opcodes, byte(op))
		}
	}
	return t, nil
}

// Lookup returns the handler claiming op, if any.
func (t *Table) Lookup(op byte) (*Handler, bool) {
	if t == nil {
		return nil, false
	}
	h := t.handlers[op]
	return h, h != nil
}

// Opcodes returns the claimed opcode values in ascending order.
func (t *Table) Opcodes() []byte {
	if t == nil {
		return nil
	}
	return append([]byte(nil), t.opcodes...)
}

// Len returns the number of claimed opcodes.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.opcodes)
}
