package cmd

import (
	"fmt"

	csvingest "github.com/paakwasi317/conference-tracker/internal/adapters/ingest/csv"
	tracksrender "github.com/paakwasi317/conference-tracker/internal/adapters/render/tracks"
	"github.com/paakwasi317/conference-tracker/internal/application"
	"github.com/paakwasi317/conference-tracker/internal/config"
	"github.com/paakwasi317/conference-tracker/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	configPath     string
	cfg            config.Config
	logger         zerolog.Logger
	newService     func(application.ScheduleOptions) *application.ScheduleService
	tracksRenderer func(application.Schedule, tracksrender.RenderOptions) string
}

func (a *app) wire(cmd *cobra.Command) error {
	cfg, err := config.Load(viper.New(), a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), "cli", logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	parser := csvingest.NewParser()

	a.cfg = cfg
	a.logger = logger
	a.newService = func(opts application.ScheduleOptions) *application.ScheduleService {
		return application.NewScheduleService(parser, opts)
	}
	a.tracksRenderer = tracksrender.Render

	return nil
}

func (a *app) scheduleOptions() application.ScheduleOptions {
	return application.ScheduleOptions{
		Seed:      a.cfg.Schedule.Seed,
		MaxTracks: a.cfg.Schedule.MaxTracks,
	}
}
