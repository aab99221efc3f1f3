// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package main

import (
	"flag"

	"github.com/go-pg/migrations"
	"github.com/pkg/errors"

	"github.com/cognosis-network/reward-engine/configuration"
	"github.com/cognosis-network/reward-engine/internal/dbconn"
	"github.com/cognosis-network/reward-engine/observability"
)

var migrationDir = flag.String("dir", "scripts/migrations", "directory with migrations")
var doInit = flag.Bool("init", false, "perform db init (for empty db)")

func main() {
	flag.Parse()

	cfg := configuration.Load()
	obs := observability.Make(cfg)
	log := obs.Log()

	db, err := dbconn.Connect(cfg.DB)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer db.Close() //nolint: errcheck

	migrationCollection := migrations.NewCollection()
	if *doInit {
		_, _, err := migrationCollection.Run(db, "init")
		if err != nil {
			log.Fatal(errors.Wrap(err, "could not init migrations"))
		}
	}

	err = migrationCollection.DiscoverSQLMigrations(*migrationDir)
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to read migrations"))
	}

	oldVersion, newVersion, err := migrationCollection.Run(db, "up")
	if err != nil {
		log.Fatal(errors.Wrap(err, "could not migrate"))
	}
	log.Infof("migrated from version %d to %d", oldVersion, newVersion)
}
