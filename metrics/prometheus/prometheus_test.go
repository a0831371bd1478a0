// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prometheus

import (
	"testing"

	"github.com/ava-labs/libevm/metrics"
	"github.com/stretchr/testify/require"

	"github.com/traverse-labs/traverse/metrics/metricstest"
)

func TestGatherer(t *testing.T) {
	metricstest.WithMetrics(t)

	registry := metrics.NewRegistry()
	counter := metrics.NewRegisteredCounter("precompile/calls", registry)
	counter.Inc(3)
	gauge := metrics.NewRegisteredGauge("activation/features", registry)
	gauge.Update(2)

	mfs, err := Gatherer(registry).Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 2)

	require.Equal(t, "activation_features", mfs[0].GetName())
	require.Equal(t, float64(2), mfs[0].GetMetric()[0].GetGauge().GetValue())
	require.Equal(t, "precompile_calls", mfs[1].GetName())
	require.Equal(t, float64(3), mfs[1].GetMetric()[0].GetCounter().GetValue())
}

func TestNewRegisterer(t *testing.T) {
	registry := metrics.NewRegistry()
	metrics.GetOrRegisterCounterForced("opcode/dispatches", registry).Inc(1)

	noop, err := NewRegisterer(false, Gatherer(registry))
	require.NoError(t, err)
	require.IsType(t, &NoopRegister{}, noop)
	mfs, err := noop.Gather()
	require.NoError(t, err)
	require.Empty(t, mfs)

	reg, err := NewRegisterer(true, Gatherer(registry))
	require.NoError(t, err)
	mfs, err = reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, mf := range mfs {
		names = append(names, mf.GetName())
	}
	require.Contains(t, names, "opcode_dispatches")
	require.Contains(t, names, "go_goroutines")
}
