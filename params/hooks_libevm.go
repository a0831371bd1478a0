// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package params

import (
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core/vm"
	"github.com/ava-labs/libevm/libevm"
	"github.com/ava-labs/libevm/log"
	ethparams "github.com/ava-labs/libevm/params"

	"github.com/traverse-labs/traverse/core/extstate"
	"github.com/traverse-labs/traverse/precompile/contract"
	"github.com/traverse-labs/traverse/precompile/registry"
	"github.com/traverse-labs/traverse/vmerrs"
)

var (
	_ ethparams.RulesHooks       = RulesExtra{}
	_ ethparams.ChainConfigHooks = (*ChainConfigExtra)(nil)
)

func (r RulesExtra) CanCreateContract(ac *libevm.AddressContext, gas uint64, state libevm.StateReader) (uint64, error) {
	// A contract deployed at a feature address would be shadowed once the
	// feature activates.
	if name, ok := r.schedule.Claims(ac.Self); ok {
		log.Debug("contract creation at feature address refused", "addr", ac.Self, "feature", name)
		return gas, vmerrs.ErrAddrProhibited
	}
	return gas, nil
}

func (r RulesExtra) CanExecuteTransaction(_ common.Address, _ *common.Address, _ libevm.StateReader) error {
	return nil
}

// ActivePrecompiles appends the live feature precompiles to [existing],
// which are warmed at the start of every transaction.
func (r RulesExtra) ActivePrecompiles(existing []common.Address) []common.Address {
	live := r.Activation.Precompiles().Addresses()
	if len(live) == 0 {
		return existing
	}
	seen := make(map[common.Address]struct{}, len(existing))
	addresses := make([]common.Address, 0, len(existing)+len(live))
	for _, addr := range existing {
		seen[addr] = struct{}{}
		addresses = append(addresses, addr)
	}
	for _, addr := range live {
		if _, ok := seen[addr]; !ok {
			addresses = append(addresses, addr)
		}
	}
	return addresses
}

// PrecompileOverride returns the feature precompile live at [addr]. It
// shadows a base precompile at the same address.
func (r RulesExtra) PrecompileOverride(addr common.Address) (libevm.PrecompiledContract, bool) {
	entry, ok := r.Activation.Lookup(addr)
	if !ok {
		return nil, false
	}
	return makePrecompile(entry), true
}

func makePrecompile(entry registry.Entry) libevm.PrecompiledContract {
	run := func(env vm.PrecompileEnvironment, input []byte, suppliedGas uint64) ([]byte, uint64, error) {
		state := accessibleState{
			env:          env,
			blockContext: contract.NewBlockContext(env.BlockNumber(), env.BlockTime()),
		}
		return registry.Invoke(entry, state, env.Addresses().Caller, input, suppliedGas, env.ReadOnly())
	}
	return vm.NewStatefulPrecompile(run)
}

type accessibleState struct {
	env          vm.PrecompileEnvironment
	blockContext contract.BlockContext
}

func (a accessibleState) GetStateDB() contract.StateDB {
	var state libevm.StateReader
	if a.env.ReadOnly() {
		state = a.env.ReadOnlyState()
	} else {
		state = a.env.StateDB()
	}
	return extstate.New(state.(vm.StateDB))
}

func (a accessibleState) GetBlockContext() contract.BlockContext {
	return a.blockContext
}
