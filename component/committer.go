// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package component

import (
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cognosis-network/reward-engine/internal/app/reward"
	"github.com/cognosis-network/reward-engine/internal/app/reward/merkle"
	"github.com/cognosis-network/reward-engine/observability"
)

func makeCommitter(obs *observability.Observability) func(*reward.Snapshot) error {
	log := obs.Log()
	buildSeconds := obs.Gauge(prometheus.GaugeOpts{
		Name: "reward_tree_build_seconds",
		Help: "Seconds spent building the last commitment tree.",
	})

	return func(snap *reward.Snapshot) error {
		started := time.Now()
		tree, err := merkle.Build(snap.Holders)
		if err != nil {
			return errors.Wrapf(err, "failed to build commitment tree for period %d", snap.Period)
		}
		snap.MerkleRoot = tree.Root()
		buildSeconds.Set(time.Since(started).Seconds())

		log.WithField("period", snap.Period).
			WithField("merkle_root", hex.EncodeToString(snap.MerkleRoot)).
			WithField("leaves", tree.LeafCount()).
			Info("built commitment tree")
		return nil
	}
}
