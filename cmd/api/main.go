// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	echoPrometheus "github.com/globocom/echo-prometheus"

	"github.com/cognosis-network/reward-engine/configuration"
	"github.com/cognosis-network/reward-engine/internal/app/api"
	"github.com/cognosis-network/reward-engine/internal/app/reward/postgres"
	"github.com/cognosis-network/reward-engine/internal/dbconn"
	"github.com/cognosis-network/reward-engine/observability"
)

func main() {
	cfg := configuration.Load()
	obs := observability.Make(cfg)
	log := obs.Log()

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(echoPrometheus.MetricsMiddleware())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	db, err := dbconn.Connect(cfg.DB)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer db.Close() //nolint: errcheck

	server := api.NewRewardServer(postgres.NewStorage(db, log), log)
	api.RegisterHandlers(e, server)
	e.Logger.Fatal(e.Start(cfg.API.Listen))
}
