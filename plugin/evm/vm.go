// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/ava-labs/libevm/core/types"
	ethvm "github.com/ava-labs/libevm/core/vm"
	"github.com/ava-labs/libevm/event"
	"github.com/ava-labs/libevm/log"

	"github.com/traverse-labs/traverse/core"
	"github.com/traverse-labs/traverse/metrics"
	"github.com/traverse-labs/traverse/metrics/prometheus"
	"github.com/traverse-labs/traverse/params"
	"github.com/traverse-labs/traverse/params/extras"
	"github.com/traverse-labs/traverse/plugin/evm/config"
	"github.com/traverse-labs/traverse/walltime"
)

var (
	errMissingChainConfig = errors.New("genesis has no chain config")
	errWallTimeDisabled   = errors.New("wall time tracking is disabled")
	errNotInitialized     = errors.New("vm is not initialized")
)

// genesis is the part of the genesis file read by the extension layer.
type genesis struct {
	Config *params.ChainConfig `json:"config"`
}

// VM wires the extension layer into a node: it loads and verifies the
// chain config, sets up logging and metrics and feeds the wall time
// tracker with accepted heads.
type VM struct {
	config      config.Config
	logger      TraverseLogger
	chainConfig *params.ChainConfig

	metrics  prometheus.Registerer
	heads    event.FeedOf[*types.Header]
	walltime *walltime.Tracker

	shutdown context.CancelFunc
}

// Initialize loads [genesisBytes] and [configBytes]. Any error in the
// feature schedule is fatal: the node must not start with a config that
// could execute blocks differently from its peers.
func (vm *VM) Initialize(ctx context.Context, chainAlias string, genesisBytes []byte, configBytes []byte, logWriter io.Writer) error {
	cfg, err := config.GetConfig(configBytes)
	if err != nil {
		return err
	}
	vm.config = cfg

	logger, err := InitLogger(chainAlias, cfg.LogLevel, cfg.LogJSONFormat, logWriter)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	vm.logger = logger
	log.SetDefault(logger.Logger)

	var g genesis
	if err := json.Unmarshal(genesisBytes, &g); err != nil {
		return fmt.Errorf("failed to parse genesis: %w", err)
	}
	if g.Config == nil {
		return errMissingChainConfig
	}
	if err := g.Config.CheckConfigForkOrder(); err != nil {
		return fmt.Errorf("invalid chain config: %w", err)
	}
	vm.chainConfig = g.Config
	log.Info("Initializing Traverse VM", "config", cfg)
	log.Info(g.Config.Description())

	vm.metrics, err = prometheus.NewRegisterer(cfg.MetricsEnabled, prometheus.Gatherer(metrics.Registry))
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	ctx, vm.shutdown = context.WithCancel(ctx)
	if cfg.WallTimeEnabled {
		vm.walltime = walltime.New(cfg.WallTimeStaleAfter.Duration)
		vm.walltime.Subscribe(ctx, &vm.heads)
	}
	return nil
}

// ChainConfig returns the verified chain config.
func (vm *VM) ChainConfig() *params.ChainConfig {
	return vm.chainConfig
}

// Schedule returns the verified feature schedule. It is nil when the chain
// config enables no feature.
func (vm *VM) Schedule() *extras.Schedule {
	if vm.chainConfig == nil {
		return nil
	}
	return params.GetExtra(vm.chainConfig).Features
}

// Rules returns the features active in the block with [number] and
// [timestamp].
func (vm *VM) Rules(number *big.Int, timestamp uint64) *extras.ActivationSet {
	if vm.chainConfig == nil {
		return nil
	}
	rules := vm.chainConfig.Rules(number, false, timestamp)
	return params.GetRulesExtra(rules).Activation
}

// NewEVM returns an EVM executing a transaction in the block described by
// [header], with the features scheduled for that block.
func (vm *VM) NewEVM(header *types.Header, chain core.ChainContext, statedb ethvm.StateDB, txCtx ethvm.TxContext) (*ethvm.EVM, error) {
	if vm.chainConfig == nil {
		return nil, errNotInitialized
	}
	return core.NewEVM(header, chain, statedb, vm.chainConfig, txCtx, ethvm.Config{}), nil
}

// Accept reports [head] as the new canonical head.
func (vm *VM) Accept(head *types.Header) {
	vm.heads.Send(head)
}

// Metrics returns the registry exporting the metrics of the extension layer.
func (vm *VM) Metrics() prometheus.Registerer {
	return vm.metrics
}

// GetWallTimeData returns the wall time of the last accepted head.
func (vm *VM) GetWallTimeData() (walltime.WallTimeData, error) {
	if vm.chainConfig == nil {
		return walltime.WallTimeData{}, errNotInitialized
	}
	if vm.walltime == nil {
		return walltime.WallTimeData{}, errWallTimeDisabled
	}
	return vm.walltime.GetWallTimeData()
}

// Shutdown stops the background tasks of the VM.
func (vm *VM) Shutdown(context.Context) error {
	if vm.shutdown != nil {
		vm.shutdown()
	}
	return nil
}
