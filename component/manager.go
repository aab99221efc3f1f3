// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package component

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cognosis-network/reward-engine/configuration"
	"github.com/cognosis-network/reward-engine/connectivity"
	"github.com/cognosis-network/reward-engine/internal/app/reward"
	"github.com/cognosis-network/reward-engine/internal/app/reward/postgres"
	"github.com/cognosis-network/reward-engine/internal/ledger"
	"github.com/cognosis-network/reward-engine/internal/txsubmit"
	"github.com/cognosis-network/reward-engine/observability"
)

// LedgerClient is the ledger query service: holder balances at a stable
// reference point.
type LedgerClient interface {
	Tip(ctx context.Context) (ledger.Ref, error)
	Holders(ctx context.Context, asset string, ref ledger.Ref) ([]reward.Holder, error)
}

// TxSubmitter is the transaction submission service. It is not idempotent;
// the batch state machine on top of it is.
type TxSubmitter interface {
	Submit(ctx context.Context, outputs []txsubmit.Output) (string, error)
	Status(ctx context.Context, txID string) (txsubmit.TxStatus, error)
}

// Storage is the persistence layer keyed by period.
type Storage interface {
	IsPaid(period int64) (bool, error)
	SetPaid(period int64) error
	SnapshotByPeriod(period int64) (*reward.Snapshot, error)
	DistributionByPeriod(period int64) (*reward.Distribution, error)
	BatchesByPeriod(dist *reward.Distribution) ([]*reward.Batch, error)
	LatestAccumulationBefore(period int64) (reward.AccumulationState, error)
	PersistRun(snap *reward.Snapshot, dist *reward.Distribution, next reward.AccumulationState, batches []*reward.Batch) error
	UpdateBatch(b *reward.Batch) error
}

// Manager wires one pipeline run: collect -> commit -> calculate -> batch.
type Manager struct {
	cfg     *configuration.Configuration
	log     *logrus.Logger
	storage Storage

	collect   func(ctx context.Context, period int64) (*reward.Snapshot, error)
	commit    func(snap *reward.Snapshot) error
	calculate func(snap *reward.Snapshot, prev reward.AccumulationState) (*reward.Distribution, reward.AccumulationState, error)
	submit    func(ctx context.Context, batches []*reward.Batch) error
}

func Prepare(cfg *configuration.Configuration, obs *observability.Observability, conn *connectivity.Connectivity) *Manager {
	storage := postgres.NewStorage(conn.PG(), obs.Log())
	return New(cfg, obs, storage, conn.Ledger(), conn.Submitter())
}

func New(
	cfg *configuration.Configuration,
	obs *observability.Observability,
	storage Storage,
	lc LedgerClient,
	tx TxSubmitter,
) *Manager {
	return &Manager{
		cfg:       cfg,
		log:       obs.Log(),
		storage:   storage,
		collect:   makeCollector(cfg, obs, lc),
		commit:    makeCommitter(obs),
		calculate: makeCalculator(cfg, obs),
		submit:    makeBatcher(cfg, obs, tx, storage),
	}
}

// CurrentPeriod derives the monotonically increasing period index from
// elapsed time and the configured period length.
func CurrentPeriod(now time.Time, length time.Duration) int64 {
	seconds := int64(length / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return now.Unix() / seconds
}

// RunPeriod executes one full pipeline run for the current period.
func (m *Manager) RunPeriod(ctx context.Context) error {
	period := CurrentPeriod(time.Now().UTC(), m.cfg.Reward.PeriodLength)
	return m.runPeriod(ctx, period)
}

func (m *Manager) runPeriod(ctx context.Context, period int64) error {
	log := m.log.WithField("period", period)

	paid, err := m.storage.IsPaid(period)
	if err != nil {
		return errors.Wrap(err, "failed to check paid flag")
	}
	if paid {
		return errors.Wrapf(reward.ErrAlreadyPaid, "period %d", period)
	}

	snap, err := m.storage.SnapshotByPeriod(period)
	if err != nil {
		return errors.Wrap(err, "failed to load persisted snapshot")
	}

	var (
		dist    *reward.Distribution
		batches []*reward.Batch
	)
	if snap == nil {
		snap, dist, batches, err = m.computePeriod(ctx, period)
		if err != nil {
			return err
		}
	} else {
		// The period was computed before: resume from persisted state and
		// never re-collect, the snapshot is the public commitment.
		log.Info("resuming persisted period")
		dist, err = m.storage.DistributionByPeriod(period)
		if err != nil {
			return errors.Wrap(err, "failed to load persisted distribution")
		}
		if dist != nil {
			batches, err = m.storage.BatchesByPeriod(dist)
			if err != nil {
				return errors.Wrap(err, "failed to load persisted batches")
			}
		}
	}

	if err := m.submit(ctx, batches); err != nil {
		return err
	}

	if err := m.storage.SetPaid(period); err != nil {
		return err
	}

	entries := 0
	if dist != nil {
		entries = len(dist.Entries)
	}
	log.WithField("merkle_root", hex.EncodeToString(snap.MerkleRoot)).
		WithField("holders", len(snap.Holders)).
		WithField("entries", entries).
		WithField("batches", len(batches)).
		Info("period fully paid")
	return nil
}

func (m *Manager) computePeriod(ctx context.Context, period int64) (*reward.Snapshot, *reward.Distribution, []*reward.Batch, error) {
	snap, err := m.collect(ctx, period)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "collector failed")
	}
	if err := m.commit(snap); err != nil {
		return nil, nil, nil, errors.Wrap(err, "tree builder failed")
	}

	prev, err := m.storage.LatestAccumulationBefore(period)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to load previous accumulation")
	}
	dist, next, err := m.calculate(snap, prev)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "calculator failed")
	}

	batches := reward.PartitionDistribution(dist, m.cfg.Reward.MaxBatchSize)
	if err := m.storage.PersistRun(snap, dist, next, batches); err != nil {
		return nil, nil, nil, err
	}
	return snap, dist, batches, nil
}
