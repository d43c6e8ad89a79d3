package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/mekedron/cafe-menu/internal/cli"
	"github.com/mekedron/cafe-menu/internal/config"
	"github.com/mekedron/cafe-menu/internal/i18n"
	"github.com/mekedron/cafe-menu/internal/service/branch"
	"github.com/mekedron/cafe-menu/internal/sitedata"
)

var version = "dev"

const dotenvFile = ".env"

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	settings, err := config.LoadSettings(dotenvFile)
	if err != nil {
		logger.Error().Err(err).Msg("invalid settings")
		os.Exit(1)
	}
	store, err := config.NewStore(settings.PreferencesPath)
	if err != nil {
		logger.Error().Err(err).Msg("preferences unavailable")
		os.Exit(1)
	}
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		logger.Error().Err(err).Msg("translations unavailable")
		os.Exit(1)
	}
	source := sitedata.NewSource(settings.DataDir, logger)

	deps := cli.Dependencies{
		Site:         source,
		Branches:     branch.NewResolver(source),
		Preferences:  store,
		Translations: bundle,
		Settings:     settings,
		Logger:       logger,
		Version:      version,
	}

	exitCode := cli.Execute(context.Background(), os.Args[1:], deps, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}
