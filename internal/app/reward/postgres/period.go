// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package postgres

import (
	"time"

	"github.com/go-pg/pg"
	"github.com/go-pg/pg/orm"
	"github.com/pkg/errors"
)

type PeriodStorage struct {
	db orm.DB
}

func NewPeriodStorage(db orm.DB) *PeriodStorage {
	return &PeriodStorage{db: db}
}

func (p *PeriodStorage) Insert(period int64) error {
	row := &PeriodModel{
		Period:    period,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.db.Insert(row); err != nil {
		return errors.Wrapf(err, "failed to insert period %d", period)
	}
	return nil
}

func (p *PeriodStorage) IsPaid(period int64) (bool, error) {
	row := &PeriodModel{}
	err := p.db.Model(row).Where("period = ?", period).Select()
	if err == pg.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to select period %d", period)
	}
	return row.FullyPaid, nil
}

// SetPaid marks the period fully paid and reads the flag back: the guard
// against duplicate payment is only trustworthy if the write is known to
// have landed.
func (p *PeriodStorage) SetPaid(period int64) error {
	_, err := p.db.Model(&PeriodModel{}).
		Set("fully_paid = ?, paid_at = ?", true, time.Now().UTC()).
		Where("period = ?", period).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to mark period %d paid", period)
	}

	paid, err := p.IsPaid(period)
	if err != nil {
		return errors.Wrapf(err, "failed to read back paid flag for period %d", period)
	}
	if !paid {
		return errors.Errorf("paid flag for period %d did not persist", period)
	}
	return nil
}

// LatestBefore returns the most recent period older than the given one that
// has a persisted run, or -1 when there is none.
func (p *PeriodStorage) LatestBefore(period int64) (int64, error) {
	row := &PeriodModel{}
	err := p.db.Model(row).Where("period < ?", period).Order("period DESC").Limit(1).Select()
	if err == pg.ErrNoRows {
		return -1, nil
	}
	if err != nil {
		return -1, errors.Wrapf(err, "failed to select latest period before %d", period)
	}
	return row.Period, nil
}
