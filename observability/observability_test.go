// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/cognosis-network/reward-engine/configuration"
)

func TestObservability_RegisterTwice(t *testing.T) {
	t.Parallel()
	obs := Make(configuration.Default())

	first := obs.Counter(prometheus.CounterOpts{Name: "reward_test_total"})
	second := obs.Counter(prometheus.CounterOpts{Name: "reward_test_total"})
	require.Equal(t, first, second)

	g1 := obs.Gauge(prometheus.GaugeOpts{Name: "reward_test_gauge"})
	g2 := obs.Gauge(prometheus.GaugeOpts{Name: "reward_test_gauge"})
	require.Equal(t, g1, g2)
}

func TestMake_BadLogLevelFallsBack(t *testing.T) {
	t.Parallel()
	cfg := configuration.Default()
	cfg.LogLevel = "chatty"
	obs := Make(cfg)
	require.NotNil(t, obs.Log())
}
