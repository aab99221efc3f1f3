// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package postgres

import (
	"github.com/go-pg/pg/orm"
	"github.com/pkg/errors"

	"github.com/cognosis-network/reward-engine/internal/app/reward"
)

type BatchStorage struct {
	db orm.DB
}

func NewBatchStorage(db orm.DB) *BatchStorage {
	return &BatchStorage{db: db}
}

func (b *BatchStorage) Insert(batch *reward.Batch) error {
	row := &BatchModel{
		Period:        batch.Period,
		BatchIndex:    batch.Index,
		Status:        string(batch.Status),
		TransactionID: batch.TransactionID,
		EntryCount:    len(batch.Entries),
	}
	if err := b.db.Insert(row); err != nil {
		return errors.Wrapf(err, "failed to insert batch %d of period %d", batch.Index, batch.Period)
	}
	return nil
}

// SetStatus records one lifecycle transition of a batch.
func (b *BatchStorage) SetStatus(period int64, index int, status reward.BatchStatus, txID string) error {
	_, err := b.db.Model(&BatchModel{}).
		Set("status = ?, tx_id = ?", string(status), txID).
		Where("period = ? AND batch_index = ?", period, index).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to update batch %d of period %d", index, period)
	}
	return nil
}

// ByPeriod rebuilds the period's batches against the persisted distribution.
// Entry slices are reconstructed from the stored per-batch entry counts so a
// resumed run retries exactly the contents it originally submitted.
func (b *BatchStorage) ByPeriod(dist *reward.Distribution) ([]*reward.Batch, error) {
	var rows []BatchModel
	err := b.db.Model(&rows).Where("period = ?", dist.Period).Order("batch_index ASC").Select()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select batches for period %d", dist.Period)
	}

	var batches []*reward.Batch
	offset := 0
	for _, r := range rows {
		end := offset + r.EntryCount
		if end > len(dist.Entries) {
			return nil, errors.Errorf("batch %d of period %d spans %d entries beyond the stored distribution",
				r.BatchIndex, dist.Period, end-len(dist.Entries))
		}
		batches = append(batches, &reward.Batch{
			Period:        r.Period,
			Index:         r.BatchIndex,
			Entries:       dist.Entries[offset:end],
			Status:        reward.BatchStatus(r.Status),
			TransactionID: r.TransactionID,
		})
		offset = end
	}
	if offset != len(dist.Entries) {
		return nil, errors.Errorf("batches of period %d cover %d of %d distribution entries",
			dist.Period, offset, len(dist.Entries))
	}
	return batches, nil
}
