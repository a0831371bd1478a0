// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package params

import (
	"math/big"

	"github.com/ava-labs/libevm/core/vm"
	ethparams "github.com/ava-labs/libevm/params"
)

// libevmInit would ideally be a regular init() function, but it MUST be run
// before any calls to [ChainConfig.Rules]. See `config.go` for its call site.
func libevmInit() any {
	payloads = ethparams.RegisterExtras(ethparams.Extras[*ChainConfigExtra, RulesExtra]{
		ReuseJSONRoot: true, // Reuse the root JSON input when unmarshalling the extra payload.
		NewRules:      constructRulesExtra,
	})
	vm.RegisterHooks(hooks{})
	return nil
}

var payloads ethparams.ExtraPayloads[*ChainConfigExtra, RulesExtra]

// constructRulesExtra acts as an adjunct to the [ChainConfig.Rules] method.
// It resolves the features active in the block once, so that every hook
// called while executing the block sees the same set.
func constructRulesExtra(c *ethparams.ChainConfig, r *ethparams.Rules, cEx *ChainConfigExtra, blockNum *big.Int, isMerge bool, timestamp uint64) RulesExtra {
	var rules RulesExtra
	if cEx == nil {
		return rules
	}
	rules.schedule = cEx.Features
	rules.Activation = cEx.Features.Resolve(blockNum, timestamp)
	return rules
}
