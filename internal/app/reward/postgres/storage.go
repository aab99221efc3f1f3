// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package postgres

import (
	"github.com/go-pg/pg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cognosis-network/reward-engine/internal/app/reward"
)

// Storage is the engine's view of the persistence layer, one database behind
// the per-entity storages.
type Storage struct {
	db  *pg.DB
	log *logrus.Logger
}

func NewStorage(db *pg.DB, log *logrus.Logger) *Storage {
	return &Storage{db: db, log: log}
}

func (s *Storage) IsPaid(period int64) (bool, error) {
	return NewPeriodStorage(s.db).IsPaid(period)
}

func (s *Storage) SetPaid(period int64) error {
	return NewPeriodStorage(s.db).SetPaid(period)
}

func (s *Storage) SnapshotByPeriod(period int64) (*reward.Snapshot, error) {
	return NewSnapshotStorage(s.db).ByPeriod(period)
}

func (s *Storage) LastSnapshot() (*reward.Snapshot, error) {
	return NewSnapshotStorage(s.db).Last()
}

func (s *Storage) DistributionByPeriod(period int64) (*reward.Distribution, error) {
	return NewDistributionStorage(s.db).ByPeriod(period)
}

func (s *Storage) BatchesByPeriod(dist *reward.Distribution) ([]*reward.Batch, error) {
	return NewBatchStorage(s.db).ByPeriod(dist)
}

// LatestAccumulationBefore returns the carry-forward state written by the
// most recent persisted run older than period. The periods table decides
// which run that is: an empty state (zero rows) is a valid outcome of a run
// and must not fall through to an older period's rows.
func (s *Storage) LatestAccumulationBefore(period int64) (reward.AccumulationState, error) {
	prev, err := NewPeriodStorage(s.db).LatestBefore(period)
	if err != nil {
		return reward.AccumulationState{}, err
	}
	if prev < 0 {
		return reward.NewAccumulationState(0), nil
	}
	return NewAccumulationStorage(s.db).ByPeriod(prev)
}

// PersistRun writes the whole computed period atomically: period row,
// snapshot with holders, distribution, carry-forward state and pending
// batches. A DataIntegrity failure earlier in the run therefore persists
// nothing at all.
func (s *Storage) PersistRun(
	snap *reward.Snapshot,
	dist *reward.Distribution,
	next reward.AccumulationState,
	batches []*reward.Batch,
) error {
	err := s.db.RunInTransaction(func(tx *pg.Tx) error {
		if err := NewPeriodStorage(tx).Insert(snap.Period); err != nil {
			return err
		}
		if err := NewSnapshotStorage(tx).Insert(snap); err != nil {
			return err
		}
		if err := NewDistributionStorage(tx).Insert(dist); err != nil {
			return err
		}
		if err := NewAccumulationStorage(tx).Insert(next); err != nil {
			return err
		}
		bs := NewBatchStorage(tx)
		for _, b := range batches {
			if err := bs.Insert(b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to persist run for period %d", snap.Period)
	}
	s.log.WithField("period", snap.Period).
		WithField("holders", len(snap.Holders)).
		WithField("entries", len(dist.Entries)).
		WithField("batches", len(batches)).
		Info("persisted period run")
	return nil
}

func (s *Storage) UpdateBatch(b *reward.Batch) error {
	return NewBatchStorage(s.db).SetStatus(b.Period, b.Index, b.Status, b.TransactionID)
}
