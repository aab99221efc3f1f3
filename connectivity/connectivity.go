// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package connectivity

import (
	"net/http"

	"github.com/go-pg/pg"

	"github.com/cognosis-network/reward-engine/configuration"
	"github.com/cognosis-network/reward-engine/internal/dbconn"
	"github.com/cognosis-network/reward-engine/internal/ledger"
	"github.com/cognosis-network/reward-engine/internal/txsubmit"
	"github.com/cognosis-network/reward-engine/observability"
)

func Make(cfg *configuration.Configuration, obs *observability.Observability) *Connectivity {
	log := obs.Log()
	return &Connectivity{
		pg: func() *pg.DB {
			db, err := dbconn.Connect(cfg.DB)
			if err != nil {
				log.Fatal(err.Error())
			}
			return db
		}(),
		ledger: ledger.NewClient(cfg.Ledger.URL, &http.Client{
			Timeout: cfg.Ledger.RequestTimeout,
		}),
		submitter: txsubmit.NewClient(cfg.Submitter.URL, &http.Client{
			Timeout: cfg.Submitter.RequestTimeout,
		}),
	}
}

type Connectivity struct {
	pg        *pg.DB
	ledger    *ledger.Client
	submitter *txsubmit.Client
}

func (c *Connectivity) PG() *pg.DB {
	return c.pg
}

func (c *Connectivity) Ledger() *ledger.Client {
	return c.ledger
}

func (c *Connectivity) Submitter() *txsubmit.Client {
	return c.submitter
}
