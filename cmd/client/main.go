// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-appointment-intake/internal/adapter"
	"github.com/MKhiriev/go-appointment-intake/internal/client"
	"github.com/MKhiriev/go-appointment-intake/internal/config"
	"github.com/MKhiriev/go-appointment-intake/internal/logger"
	"github.com/MKhiriev/go-appointment-intake/internal/validators"
	"github.com/MKhiriev/go-appointment-intake/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("appointment-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	args := flag.Args()
	if len(args) == 1 && args[0] == "build-info" {
		printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	intake, err := adapter.NewHTTPIntakeAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create intake adapter")
	}

	// local checks use the client's date for the booking window
	app := client.NewApp(intake, os.Stdin, os.Stdout, log,
		client.WithLocalValidation(validators.NewIntakeValidator(nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
