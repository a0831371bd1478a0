// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package params

import (
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/common/math"
	"github.com/ava-labs/libevm/core/vm"
	"github.com/ava-labs/libevm/libevm"
	ethparams "github.com/ava-labs/libevm/params"

	"github.com/traverse-labs/traverse/core/extstate"
	"github.com/traverse-labs/traverse/core/overlay"
	"github.com/traverse-labs/traverse/vmerrs"
)

var (
	_ overlay.Stack    = stack{}
	_ overlay.Memory   = memory{}
	_ overlay.GasMeter = gasMeter{}
)

// hooks installs the opcode handlers of the active features into the
// interpreter. The base jump table is never modified; each override
// returns a copy.
type hooks struct{}

func (hooks) OverrideNewEVMArgs(args *vm.NewEVMArgs) *vm.NewEVMArgs {
	return args
}

func (hooks) OverrideEVMResetArgs(_ ethparams.Rules, args *vm.EVMResetArgs) *vm.EVMResetArgs {
	return args
}

func (hooks) PreprocessingGasCharge(common.Hash) (uint64, error) {
	return 0, nil
}

func (hooks) OverrideJumpTable(rules ethparams.Rules, tbl *vm.JumpTable) *vm.JumpTable {
	table := GetRulesExtra(rules).Activation.Opcodes()
	if table.Len() == 0 {
		return tbl
	}
	cp := *tbl
	for _, op := range table.Opcodes() {
		h, _ := table.Lookup(op)
		cp[op] = operationBuilder(h).Build()
	}
	return &cp
}

// operationBuilder adapts [h] to the interpreter. The interpreter validates
// the stack, charges ConstantGas and DynamicGas and grows memory to
// MemorySize before Execute, so Execute only applies the guarded state
// transition.
func operationBuilder(h *overlay.Handler) vm.OperationBuilder {
	builder := vm.OperationBuilder{
		ConstantGas: h.ConstantGas,
		MinStack:    h.MinStack(),
		MaxStack:    h.MaxStack(),
		Execute: func(env vm.Environment, _ *uint64, _ *vm.EVMInterpreter, scope *vm.ScopeContext) ([]byte, error) {
			frame := &overlay.Frame{
				Stack:    stack{scope.Stack},
				Memory:   memory{scope.Memory},
				Gas:      gasMeter{scope.Contract},
				State:    frameState(env),
				Self:     scope.Contract.Address(),
				Caller:   scope.Contract.Caller(),
				ReadOnly: env.ReadOnly(),
			}
			return nil, overlay.Apply(h, frame)
		},
	}
	if h.MemorySize != nil {
		builder.MemorySize = func(s *vm.Stack) (uint64, bool) {
			return h.MemorySize(&overlay.Frame{Stack: stack{s}})
		}
	}
	// The interpreter only sizes memory for operations with dynamic gas.
	if h.DynamicGas != nil || h.MemorySize != nil {
		builder.DynamicGas = func(evm *vm.EVM, contract *vm.Contract, s *vm.Stack, mem *vm.Memory, memorySize uint64) (uint64, error) {
			// TODO: charge through the host memory once libevm exposes its
			// last charged fee; a later base-op expansion charges this
			// growth again.
			cost, err := overlay.MemoryGasCost(uint64(mem.Len()), memorySize)
			if err != nil || h.DynamicGas == nil {
				return cost, err
			}
			dynamic, err := h.DynamicGas(&overlay.Frame{
				Stack:  stack{s},
				Memory: memory{mem},
				Gas:    gasMeter{contract},
				State:  extstate.New(evm.StateDB),
				Self:   contract.Address(),
				Caller: contract.Caller(),
			})
			if err != nil {
				return 0, err
			}
			cost, overflow := math.SafeAdd(cost, dynamic)
			if overflow {
				return 0, vmerrs.ErrGasUintOverflow
			}
			return cost, nil
		}
	}
	return builder
}

func frameState(env vm.Environment) *extstate.StateDB {
	var state libevm.StateReader
	if env.ReadOnly() {
		state = env.ReadOnlyState()
	} else {
		state = env.StateDB()
	}
	return extstate.New(state.(vm.StateDB))
}

type stack struct {
	*vm.Stack
}

type memory struct {
	*vm.Memory
}

func (m memory) GetCopy(offset, size uint64) []byte {
	return m.Memory.GetCopy(int64(offset), int64(size))
}

type gasMeter struct {
	contract *vm.Contract
}

func (g gasMeter) Gas() uint64 {
	return g.contract.Gas
}

func (g gasMeter) UseGas(amount uint64) bool {
	return g.contract.UseGas(amount)
}
