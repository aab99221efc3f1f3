// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package postgres

import (
	"github.com/go-pg/pg"
	"github.com/go-pg/pg/orm"
	"github.com/pkg/errors"

	"github.com/cognosis-network/reward-engine/internal/app/reward"
)

type SnapshotStorage struct {
	db orm.DB
}

func NewSnapshotStorage(db orm.DB) *SnapshotStorage {
	return &SnapshotStorage{db: db}
}

func (s *SnapshotStorage) Insert(snap *reward.Snapshot) error {
	row := &SnapshotModel{
		Period:      snap.Period,
		BlockRef:    snap.BlockRef,
		Timestamp:   snap.Timestamp,
		TotalSupply: snap.TotalSupply,
		RewardPool:  snap.RewardPool,
		MerkleRoot:  snap.MerkleRoot,
		HolderCount: len(snap.Holders),
	}
	if err := s.db.Insert(row); err != nil {
		return errors.Wrapf(err, "failed to insert snapshot for period %d", snap.Period)
	}
	for i, h := range snap.Holders {
		holder := &HolderModel{
			Period:  snap.Period,
			Idx:     i,
			Address: h.Address,
			Balance: h.Balance,
		}
		if err := s.db.Insert(holder); err != nil {
			return errors.Wrapf(err, "failed to insert holder %d of period %d", i, snap.Period)
		}
	}
	return nil
}

// ByPeriod returns the persisted snapshot with its holders in stored order,
// or nil when no snapshot exists for the period.
func (s *SnapshotStorage) ByPeriod(period int64) (*reward.Snapshot, error) {
	row := &SnapshotModel{}
	err := s.db.Model(row).Where("period = ?", period).Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select snapshot for period %d", period)
	}

	var holders []HolderModel
	err = s.db.Model(&holders).Where("period = ?", period).Order("idx ASC").Select()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select holders for period %d", period)
	}

	snap := &reward.Snapshot{
		Period:      row.Period,
		BlockRef:    row.BlockRef,
		Timestamp:   row.Timestamp,
		TotalSupply: row.TotalSupply,
		RewardPool:  row.RewardPool,
		MerkleRoot:  row.MerkleRoot,
	}
	for _, h := range holders {
		snap.Holders = append(snap.Holders, reward.Holder{Address: h.Address, Balance: h.Balance})
	}
	return snap, nil
}

// Last returns the most recent persisted snapshot, or nil when none exist.
func (s *SnapshotStorage) Last() (*reward.Snapshot, error) {
	row := &SnapshotModel{}
	err := s.db.Model(row).Order("period DESC").Limit(1).Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to select last snapshot")
	}
	return s.ByPeriod(row.Period)
}
