package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	tomlexport "github.com/paakwasi317/conference-tracker/internal/adapters/export/toml"
	tracksrender "github.com/paakwasi317/conference-tracker/internal/adapters/render/tracks"
	"github.com/paakwasi317/conference-tracker/internal/application"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatTOML = "toml"
)

func newScheduleCmd(app *app) *cobra.Command {
	var format string
	var seed uint64
	var title string
	var from string

	cmd := &cobra.Command{
		Use:   "schedule [file|-]",
		Short: "Build conference tracks from a CSV talk list",
		Long: "Reads one talk per line (e.g. \"Writing Fast Tests Against Enterprise Rails 60min\" or \"Rails for Python Developers lightning\") from a file or stdin and prints the resulting tracks.\n\n" +
			"With --from, re-renders a schedule previously exported with --format toml instead of building a new one.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatText, formatJSON, formatTOML:
			default:
				return fmt.Errorf("unsupported format %q (want text, json or toml)", format)
			}

			if from != "" {
				if len(args) > 0 {
					return fmt.Errorf("--from cannot be combined with a talk list")
				}

				schedule, err := loadSchedule(from)
				if err != nil {
					return err
				}
				return writeSchedule(cmd, app, schedule, format, title)
			}

			opts := app.scheduleOptions()
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}

			input, closeInput, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeInput()

			schedule, err := runSchedule(cmd, app, opts, input, format == formatText)
			if err != nil {
				return err
			}

			if n := len(schedule.Unscheduled); n > 0 {
				tooLong, overTrackLimit := schedule.UnscheduledBreakdown()
				app.logger.Warn().
					Int("count", n).
					Int("too_long", tooLong).
					Int("over_track_limit", overTrackLimit).
					Msg("talks left unscheduled")
			}

			return writeSchedule(cmd, app, schedule, format, title)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json or toml")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for reproducible tracks (default: schedule.seed from config)")
	cmd.Flags().StringVar(&title, "title", "", "Title shown above text output")
	cmd.Flags().StringVar(&from, "from", "", "Re-render a schedule exported with --format toml")

	return cmd
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	file, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open talk list: %w", err)
	}

	return file, func() { _ = file.Close() }, nil
}

func loadSchedule(path string) (application.Schedule, error) {
	file, err := os.Open(path)
	if err != nil {
		return application.Schedule{}, fmt.Errorf("open schedule: %w", err)
	}
	defer file.Close()

	schedule, err := tomlexport.Decode(file)
	if err != nil {
		return application.Schedule{}, fmt.Errorf("load schedule %s: %w", path, err)
	}

	return schedule, nil
}

func runSchedule(cmd *cobra.Command, app *app, opts application.ScheduleOptions, input io.Reader, withSpinner bool) (application.Schedule, error) {
	svc := app.newService(opts)

	var schedule application.Schedule
	var err error
	if withSpinner {
		schedule, err = runScheduleSpinner(cmd.Context(), cmd.ErrOrStderr(), func(ctx context.Context, report func(application.ScheduleProgress)) (application.Schedule, error) {
			return svc.ScheduleWithProgress(ctx, input, report)
		})
	} else {
		schedule, err = svc.Schedule(cmd.Context(), input)
	}
	if err != nil {
		return application.Schedule{}, fmt.Errorf("schedule talks: %w", err)
	}

	return schedule, nil
}

func writeSchedule(cmd *cobra.Command, app *app, schedule application.Schedule, format, title string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(schedule)
	case formatTOML:
		return tomlexport.Encode(cmd.OutOrStdout(), schedule)
	}

	rendered := app.tracksRenderer(schedule, tracksrender.RenderOptions{Title: title})
	_, err := fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
