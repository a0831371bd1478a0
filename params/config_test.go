// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package params

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/traverse-labs/traverse/params/extras"
	"github.com/traverse-labs/traverse/precompile/contracts/callerstore"
	"github.com/traverse-labs/traverse/utils"
)

const genesisConfig = `{
	"chainId": 99999,
	"homesteadBlock": 0,
	"eip150Block": 0,
	"eip155Block": 0,
	"eip158Block": 0,
	"byzantiumBlock": 0,
	"constantinopleBlock": 0,
	"petersburgBlock": 0,
	"features": [
		{"name": "callerstore", "timestamp": 100},
		{"name": "clz", "blockNumber": 5}
	]
}`

func TestUnmarshalChainConfig(t *testing.T) {
	var c ChainConfig
	require.NoError(t, json.Unmarshal([]byte(genesisConfig), &c))
	require.Equal(t, big.NewInt(99999), c.ChainID)
	require.NoError(t, c.CheckConfigForkOrder())

	extra := GetExtra(&c)
	require.NotNil(t, extra.Features)
	require.Equal(t, []extras.Feature{
		{Name: callerstore.FeatureName, Timestamp: utils.NewUint64(100)},
		{Name: "clz", BlockNumber: utils.NewUint64(5)},
	}, extra.Features.Features())

	rules := c.Rules(big.NewInt(5), false, 100)
	require.Equal(t, []string{callerstore.FeatureName, "clz"}, GetRulesExtra(rules).Activation.Features())
	rules = c.Rules(big.NewInt(4), false, 99)
	require.True(t, GetRulesExtra(rules).Activation.Empty())

	require.Contains(t, c.Description(), "callerstore:")
}

func TestUnmarshalChainConfigConflict(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   error
	}{
		{
			name:   "two features on one precompile",
			config: `{"chainId": 1, "features": [{"name": "test-identity-09", "timestamp": 0}, {"name": "test-identity-09-alt", "timestamp": 50}]}`,
			want:   extras.ErrFeatureConflict,
		},
		{
			name:   "unknown feature",
			config: `{"chainId": 1, "features": [{"name": "eip-0000", "timestamp": 0}]}`,
			want:   extras.ErrUnknownFeature,
		},
		{
			name:   "missing threshold",
			config: `{"chainId": 1, "features": [{"name": "clz"}]}`,
			want:   extras.ErrInvalidThreshold,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var c ChainConfig
			err := json.Unmarshal([]byte(test.config), &c)
			require.ErrorContains(t, err, test.want.Error())
		})
	}
}

func TestNoFeatures(t *testing.T) {
	var c ChainConfig
	require.NoError(t, json.Unmarshal([]byte(`{"chainId": 1, "homesteadBlock": 0}`), &c))
	require.Nil(t, GetExtra(&c).Features)
	require.NoError(t, c.CheckConfigForkOrder())
	require.True(t, GetRulesExtra(c.Rules(big.NewInt(1_000_000), false, 1_000_000)).Activation.Empty())
}

func TestCheckConfigCompatible(t *testing.T) {
	stored := Copy(TestChainConfig)
	GetExtra(&stored).Features = mustSchedule(t, extras.Feature{Name: callerstore.FeatureName, Timestamp: utils.NewUint64(100)})

	moved := Copy(TestChainConfig)
	GetExtra(&moved).Features = mustSchedule(t, extras.Feature{Name: callerstore.FeatureName, Timestamp: utils.NewUint64(200)})

	require.Nil(t, GetExtra(&stored).CheckConfigCompatible(&moved, big.NewInt(1), 50))

	compatErr := GetExtra(&stored).CheckConfigCompatible(&moved, big.NewInt(1), 150)
	require.NotNil(t, compatErr)
	require.Equal(t, uint64(99), compatErr.RewindToTime)
}

func mustSchedule(t *testing.T, features ...extras.Feature) *extras.Schedule {
	t.Helper()
	s, err := extras.NewSchedule(features...)
	require.NoError(t, err)
	return s
}
