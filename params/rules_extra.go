// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package params

import (
	"github.com/ava-labs/libevm/common"

	"github.com/traverse-labs/traverse/params/extras"
)

type RulesExtra struct {
	// Activation holds the features active for this rule set. It is never
	// nil once the rules are built from a chain config.
	Activation *extras.ActivationSet

	schedule *extras.Schedule
}

// IsFeatureActive returns true if the feature [name] is active for this rule set.
func (r *RulesExtra) IsFeatureActive(name string) bool {
	return r.Activation.IsActive(name)
}

// IsPrecompileEnabled returns true if a feature precompile is live at [addr].
func (r *RulesExtra) IsPrecompileEnabled(addr common.Address) bool {
	_, ok := r.Activation.Lookup(addr)
	return ok
}
