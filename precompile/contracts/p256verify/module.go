// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p256verify

import (
	"fmt"

	"github.com/ava-labs/libevm/common"

	"github.com/traverse-labs/traverse/precompile/contract"
	"github.com/traverse-labs/traverse/precompile/modules"
)

// FeatureName is the key used in chain config files to enable this precompile.
// must be unique across all features.
const FeatureName = "p256verify"

var (
	// ContractAddress is the address of the p256verify precompile contract
	ContractAddress = common.HexToAddress("0x0000000000000000000000000000000000000100")
	// LegacyContractAddress is the address used by early drafts of RIP-7212.
	// It is served by the same contract.
	LegacyContractAddress = common.HexToAddress("0x0000000000000000000000000000000000000014")

	// Module is the feature as registered in the catalogue.
	Module = modules.Module{
		Name: FeatureName,
		Precompiles: []modules.Precompile{
			{Address: LegacyContractAddress, Contract: contract.Stateless(P256VerifyPrecompile{})},
			{Address: ContractAddress, Contract: contract.Stateless(P256VerifyPrecompile{})},
		},
	}
)

func init() {
	if err := modules.RegisterModule(Module); err != nil {
		panic(fmt.Errorf("registering %s: %w", FeatureName, err))
	}
}
