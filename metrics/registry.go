// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import "github.com/ava-labs/libevm/metrics"

// Registry is the metrics registry used by the extension layer. Metrics are
// kept out of the libevm default registry so that the host's own global
// metrics never collide with ours.
var Registry = metrics.NewRegistry()

// NewCounter returns a counter registered in [Registry]. Counters are
// created at package initialisation, before the node decides whether
// metrics are enabled, so they are always live; whether they are exported
// is decided by the gatherer the node installs.
func NewCounter(name string) metrics.Counter {
	return metrics.GetOrRegisterCounterForced(name, Registry)
}
