// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cognosis-network/reward-engine/component"
	"github.com/cognosis-network/reward-engine/configuration"
	"github.com/cognosis-network/reward-engine/connectivity"
	"github.com/cognosis-network/reward-engine/observability"
)

var stop = make(chan os.Signal, 1)

func main() {
	cfg := configuration.Load()
	obs := observability.Make(cfg)
	log := obs.Log()

	conn := connectivity.Make(cfg, obs)
	defer conn.PG().Close() //nolint: errcheck

	ctx, cancel := context.WithCancel(context.Background())
	go graceful(cancel, obs)

	manager := component.Prepare(cfg, obs, conn)
	if err := manager.RunPeriod(ctx); err != nil {
		log.Fatalf("period run failed: %+v", err)
	}
	log.Info("period run finished")
}

func graceful(cancel context.CancelFunc, obs *observability.Observability) {
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	obs.Log().Info("gracefully stopping...")
	cancel()
}
