// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package params

import (
	"math/big"

	ethparams "github.com/ava-labs/libevm/params"

	"github.com/traverse-labs/traverse/params/extras"
)

var (
	_ = libevmInit() // registration must precede any call to [ChainConfig.Rules]

	// TestChainConfig enables every fork up to Petersburg and no feature.
	// The base precompiles stop at 0x08, which leaves 0x09 free for features.
	TestChainConfig = WithExtra(
		&ChainConfig{
			ChainID:             big.NewInt(1),
			HomesteadBlock:      big.NewInt(0),
			DAOForkBlock:        nil,
			DAOForkSupport:      false,
			EIP150Block:         big.NewInt(0),
			EIP155Block:         big.NewInt(0),
			EIP158Block:         big.NewInt(0),
			ByzantiumBlock:      big.NewInt(0),
			ConstantinopleBlock: big.NewInt(0),
			PetersburgBlock:     big.NewInt(0),
		},
		&ChainConfigExtra{},
	)
)

type (
	ChainConfig = ethparams.ChainConfig
	// Rules is a one time interface meaning that it shouldn't be used in
	// between transition phases.
	Rules = ethparams.Rules
	// ConfigCompatError is raised if the locally-stored blockchain is
	// initialised with a ChainConfig that would alter the past.
	ConfigCompatError = ethparams.ConfigCompatError
)

// ChainConfigExtra is decoded from the same JSON object as the
// [ChainConfig] it is attached to.
type ChainConfigExtra struct {
	// Features schedules the experimental extensions of the chain.
	Features *extras.Schedule `json:"features,omitempty"`
}

func GetExtra(c *ChainConfig) *ChainConfigExtra {
	if extra := payloads.ChainConfig.Get(c); extra != nil {
		return extra
	}
	return &ChainConfigExtra{}
}

// WithExtra attaches [extra] to [c] and returns [c].
func WithExtra(c *ChainConfig, extra *ChainConfigExtra) *ChainConfig {
	payloads.ChainConfig.Set(c, extra)
	return c
}

func GetRulesExtra(r Rules) *RulesExtra {
	extra := payloads.Rules.Get(&r)
	return &extra
}

// Copy returns a shallow copy of [c] carrying a copy of its extra.
func Copy(c *ChainConfig) ChainConfig {
	cpy := *c
	extraCpy := *GetExtra(c)
	return *WithExtra(&cpy, &extraCpy)
}

func (c *ChainConfigExtra) Description() string {
	if c == nil {
		return ""
	}
	banner := "Experimental features (feature: activation):\n"
	banner += c.Features.Description()
	return banner
}

// CheckConfigForkOrder verifies the feature schedule. It runs when the
// genesis is set up and an error is fatal to the node.
func (c *ChainConfigExtra) CheckConfigForkOrder() error {
	if c == nil {
		return nil
	}
	return c.Features.Verify()
}

func (c *ChainConfigExtra) CheckConfigCompatible(newcfg *ChainConfig, headNumber *big.Int, headTimestamp uint64) *ConfigCompatError {
	if c == nil {
		return nil
	}
	return c.Features.CheckCompatible(GetExtra(newcfg).Features, headNumber, headTimestamp)
}
