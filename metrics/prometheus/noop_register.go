// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"
)

var _ Registerer = (*NoopRegister)(nil)

// Registerer is both a [prometheus.Registerer] and a [prometheus.Gatherer].
type Registerer interface {
	prometheus.Registerer
	prometheus.Gatherer
}

// NoopRegister is installed when metrics are disabled. It accepts every
// collector and gathers nothing.
type NoopRegister struct{}

func (n *NoopRegister) Register(prometheus.Collector) error  { return nil }
func (n *NoopRegister) MustRegister(...prometheus.Collector) {}
func (n *NoopRegister) Unregister(prometheus.Collector) bool { return true }
func (n *NoopRegister) Gather() ([]*dto.MetricFamily, error) { return nil, nil }

// NewRegisterer returns a prometheus registry exporting the Go runtime and
// [gatherer] when [enabled], and a [NoopRegister] otherwise.
func NewRegisterer(enabled bool, gatherer prometheus.Gatherer) (Registerer, error) {
	if !enabled {
		return &NoopRegister{}, nil
	}
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	return &registry{Registry: reg, extra: gatherer}, nil
}

type registry struct {
	*prometheus.Registry
	extra prometheus.Gatherer
}

func (r *registry) Gather() ([]*dto.MetricFamily, error) {
	return prometheus.Gatherers{r.Registry, r.extra}.Gather()
}
