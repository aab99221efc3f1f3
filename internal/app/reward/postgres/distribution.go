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

type DistributionStorage struct {
	db orm.DB
}

func NewDistributionStorage(db orm.DB) *DistributionStorage {
	return &DistributionStorage{db: db}
}

func (d *DistributionStorage) Insert(dist *reward.Distribution) error {
	for i, e := range dist.Entries {
		row := &DistributionEntryModel{
			Period:       dist.Period,
			Idx:          i,
			Address:      e.Address,
			Amount:       e.Amount,
			PeriodReward: e.PeriodReward,
			CarriedIn:    e.CarriedIn,
		}
		if err := d.db.Insert(row); err != nil {
			return errors.Wrapf(err, "failed to insert distribution entry %d of period %d", i, dist.Period)
		}
	}
	return nil
}

// ByPeriod returns the persisted distribution in stored order, or nil when
// no entries exist for the period.
func (d *DistributionStorage) ByPeriod(period int64) (*reward.Distribution, error) {
	var rows []DistributionEntryModel
	err := d.db.Model(&rows).Where("period = ?", period).Order("idx ASC").Select()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select distribution for period %d", period)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	dist := &reward.Distribution{Period: period}
	for _, r := range rows {
		dist.Entries = append(dist.Entries, reward.Entry{
			Address:      r.Address,
			Amount:       r.Amount,
			PeriodReward: r.PeriodReward,
			CarriedIn:    r.CarriedIn,
		})
	}
	return dist, nil
}
