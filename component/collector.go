// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package component

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cognosis-network/reward-engine/configuration"
	"github.com/cognosis-network/reward-engine/internal/app/reward"
	"github.com/cognosis-network/reward-engine/internal/ledger"
	"github.com/cognosis-network/reward-engine/internal/pkg/cycle"
	"github.com/cognosis-network/reward-engine/observability"
)

func makeCollector(
	cfg *configuration.Configuration,
	obs *observability.Observability,
	lc LedgerClient,
) func(context.Context, int64) (*reward.Snapshot, error) {
	log := obs.Log()
	holdersMetric := obs.Gauge(prometheus.GaugeOpts{
		Name: "reward_snapshot_holders",
		Help: "Number of holders in the last collected snapshot.",
	})
	supplyMetric := obs.Gauge(prometheus.GaugeOpts{
		Name: "reward_snapshot_total_supply",
		Help: "Total supply of the last collected snapshot.",
	})

	return func(ctx context.Context, period int64) (*reward.Snapshot, error) {
		var ref ledger.Ref
		err := cycle.UntilError(func() error {
			var err error
			ref, err = lc.Tip(ctx)
			return err
		}, cfg.Ledger.AttemptInterval, cfg.Ledger.Attempts, log)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch ledger tip")
		}
		log.WithField("height", ref.Height).Debug("fetched ledger tip")

		var (
			holders []reward.Holder
			fatal   error
		)
		err = cycle.UntilError(func() error {
			hs, err := lc.Holders(ctx, cfg.Reward.Asset, ref)
			if err != nil {
				// An inconsistent view is a property of the reference point,
				// not a transient fault: reject instead of retrying.
				if errors.Cause(err) == reward.ErrInconsistentView {
					fatal = err
					return nil
				}
				return err
			}
			holders = hs
			return nil
		}, cfg.Ledger.AttemptInterval, cfg.Ledger.Attempts, log)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch holders")
		}
		if fatal != nil {
			return nil, fatal
		}

		if len(holders) == 0 {
			return nil, errors.Wrapf(reward.ErrEmptyHolderSet, "asset %s at height %d", cfg.Reward.Asset, ref.Height)
		}
		if err := validateHolders(holders); err != nil {
			return nil, err
		}
		reward.SortHolders(holders)

		var supply int64
		for _, h := range holders {
			supply += h.Balance
		}

		holdersMetric.Set(float64(len(holders)))
		supplyMetric.Set(float64(supply))
		log.WithField("holders", len(holders)).
			WithField("total_supply", supply).
			Info("collected holder snapshot")

		return &reward.Snapshot{
			Period:      period,
			BlockRef:    ref.Hash,
			Timestamp:   time.Now().UTC(),
			Holders:     holders,
			TotalSupply: supply,
			RewardPool:  cfg.Reward.PoolPerPeriod,
		}, nil
	}
}

func validateHolders(holders []reward.Holder) error {
	seen := make(map[string]struct{}, len(holders))
	for _, h := range holders {
		if h.Balance <= 0 {
			return errors.Errorf("holder %s has non-positive balance %d", h.Address, h.Balance)
		}
		if _, ok := seen[h.Address]; ok {
			return errors.Errorf("duplicate holder address %s", h.Address)
		}
		seen[h.Address] = struct{}{}
	}
	return nil
}
