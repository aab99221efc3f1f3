// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package configuration

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cognosis-network/reward-engine/internal/pkg/cycle"
)

type Configuration struct {
	LogLevel  string
	LogFormat string
	DB        DB
	Ledger    Ledger
	Submitter Submitter
	Reward    Reward
	API       API
}

type DB struct {
	URL      string
	PoolSize int
	Attempts cycle.Limit
	// Interval between failed store attempts
	AttemptInterval time.Duration
}

type Ledger struct {
	URL             string
	RequestTimeout  time.Duration
	Attempts        cycle.Limit
	AttemptInterval time.Duration
}

type Submitter struct {
	URL             string
	RequestTimeout  time.Duration
	Attempts        cycle.Limit
	AttemptInterval time.Duration
}

type Reward struct {
	// Asset identifier on the ledger query service
	Asset string
	// Pool distributed each period; sourced externally, never computed
	PoolPerPeriod int64
	// Payouts below this accumulate instead of paying out
	MinimumThreshold int64
	// Output-count limit of the downstream transaction format
	MaxBatchSize int
	// Length of one distribution period
	PeriodLength time.Duration
}

type API struct {
	Listen string
}

func Default() *Configuration {
	return &Configuration{
		LogLevel:  logrus.InfoLevel.String(),
		LogFormat: "text",
		DB: DB{
			URL:             "postgres://postgres@localhost/postgres?sslmode=disable",
			PoolSize:        20,
			Attempts:        5,
			AttemptInterval: 3 * time.Second,
		},
		Ledger: Ledger{
			URL:             "http://127.0.0.1:7070",
			RequestTimeout:  30 * time.Second,
			Attempts:        5,
			AttemptInterval: 5 * time.Second,
		},
		Submitter: Submitter{
			URL:             "http://127.0.0.1:7071",
			RequestTimeout:  60 * time.Second,
			Attempts:        3,
			AttemptInterval: 10 * time.Second,
		},
		Reward: Reward{
			Asset:            "cognosis",
			PoolPerPeriod:    0,
			MinimumThreshold: 1000000,
			MaxBatchSize:     100,
			PeriodLength:     24 * time.Hour,
		},
		API: API{
			Listen: ":8080",
		},
	}
}
