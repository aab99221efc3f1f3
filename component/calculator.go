// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package component

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cognosis-network/reward-engine/configuration"
	"github.com/cognosis-network/reward-engine/internal/app/reward"
	"github.com/cognosis-network/reward-engine/observability"
)

func makeCalculator(
	cfg *configuration.Configuration,
	obs *observability.Observability,
) func(*reward.Snapshot, reward.AccumulationState) (*reward.Distribution, reward.AccumulationState, error) {
	log := obs.Log()
	paidMetric := obs.Gauge(prometheus.GaugeOpts{
		Name: "reward_distribution_paid_total",
		Help: "Amount paid out by the last calculated distribution.",
	})
	carriedMetric := obs.Gauge(prometheus.GaugeOpts{
		Name: "reward_accumulation_carried_total",
		Help: "Amount carried forward by the last calculated distribution.",
	})

	return func(snap *reward.Snapshot, prev reward.AccumulationState) (*reward.Distribution, reward.AccumulationState, error) {
		dist, next, err := reward.Calculate(snap, prev, cfg.Reward.MinimumThreshold)
		if err != nil {
			return nil, reward.AccumulationState{}, err
		}

		var paid, carried int64
		for _, e := range dist.Entries {
			paid += e.Amount
		}
		for _, owed := range next.Owed {
			carried += owed
		}
		paidMetric.Set(float64(paid))
		carriedMetric.Set(float64(carried))

		log.WithField("period", snap.Period).
			WithField("entries", len(dist.Entries)).
			WithField("paid", paid).
			WithField("carried", carried).
			WithField("carried_holders", len(next.Owed)).
			Info("calculated distribution")
		return dist, next, nil
	}
}
