// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigFilePathKey  = "config-file"
	GenesisFilePathKey = "genesis-file"
	VMConfigKey        = "vm-config"
	ChainAliasKey      = "chain-alias"
	BlockKey           = "block"
	TimestampKey       = "timestamp"
)

func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("traverse")
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFilePathKey) {
		v.SetConfigFile(v.GetString(ConfigFilePathKey))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// BuildFlagSet returns a complete set of flags for the schedule inspector
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("traverse", pflag.ContinueOnError)
	addInspectFlags(fs)
	return fs
}

func addInspectFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFilePathKey, "", "Config file")
	fs.String(GenesisFilePathKey, "genesis.json", "Genesis file holding the chain config and its features")
	fs.String(VMConfigKey, "", "Node config as JSON")
	fs.String(ChainAliasKey, "C", "Alias of the chain in log output")
	fs.Uint64(BlockKey, 0, "Block number to resolve the active features at")
	fs.Uint64(TimestampKey, 0, "Block timestamp to resolve the active features at")
}
