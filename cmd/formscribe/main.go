// Command formscribe exports a form snapshot to JSON and markdown documents,
// either once or on a cron schedule.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/formscribe/formscribe/internal/config"
	"github.com/formscribe/formscribe/internal/scheduler"
	"github.com/formscribe/formscribe/pkg/export"
	"github.com/formscribe/formscribe/pkg/forms"
	"github.com/formscribe/formscribe/pkg/orchestrator"
	"github.com/formscribe/formscribe/pkg/sink"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, ErrPromptInterrupted) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "formscribe:", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("formscribe", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	source := flags.String("source", "", "form snapshot to export (JSON or YAML document)")
	out := flags.String("out", "", "directory artifacts are written to")
	formats := flags.StringSlice("formats", nil, "formats to export (json, markdown)")
	schedule := flags.String("schedule", "", "cron spec; when set, export repeatedly instead of once")
	interactive := flags.BoolP("interactive", "i", false, "prompt for missing settings")
	sanitize := flags.Bool("sanitize-html", false, "sanitize rich text before conversion")
	headerTemplate := flags.String("header-template", "", "pongo2 template prepended to the markdown export")

	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if flags.Changed("source") {
		cfg.Source.ID = *source
	}
	if flags.Changed("out") {
		cfg.Sink.Location = *out
	}
	if flags.Changed("formats") {
		cfg.Formats = *formats
	}
	if flags.Changed("schedule") {
		cfg.Schedule = *schedule
	}
	if flags.Changed("sanitize-html") {
		cfg.Export.SanitizeHTML = *sanitize
	}
	if flags.Changed("header-template") {
		cfg.Export.HeaderTemplate = *headerTemplate
	}

	if *interactive {
		if err := promptMissing(cfg, surveyDriver{}); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	orch := orchestrator.New(
		orchestrator.WithProvider(forms.NewFileProvider(
			forms.WithLoaderReporter(forms.NewLogReporter(logger)),
		)),
		orchestrator.WithSink(sink.NewDir(cfg.Sink.Location)),
		orchestrator.WithFormats(cfg.Formats...),
		orchestrator.WithReporter(forms.NewLogReporter(logger)),
		orchestrator.WithExportOptions(export.Options{
			SanitizeHTML:   cfg.Export.SanitizeHTML,
			HeaderTemplate: cfg.Export.HeaderTemplate,
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Schedule != "" {
		return runScheduled(ctx, orch, cfg, logger)
	}
	return runOnce(ctx, orch, cfg)
}

func runOnce(ctx context.Context, orch *orchestrator.Orchestrator, cfg *config.Config) error {
	result, err := orch.Run(ctx, orchestrator.Request{FormID: cfg.Source.ID})
	if result != nil {
		for _, artifact := range result.Artifacts {
			if artifact.Stored {
				fmt.Printf("wrote %s (%d bytes)\n", artifact.Name, len(artifact.Content))
			}
		}
	}
	return err
}

func runScheduled(ctx context.Context, orch *orchestrator.Orchestrator, cfg *config.Config, logger *slog.Logger) error {
	sched := scheduler.New(orch, cfg.Source.ID, cfg.Schedule, logger)
	if err := sched.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	sched.Stop()
	return nil
}

// promptMissing fills unset settings interactively and offers a format
// selection.
func promptMissing(cfg *config.Config, prompt promptDriver) error {
	if cfg.Source.ID == "" {
		value, err := prompt.Input("Snapshot document to export:", "")
		if err != nil {
			return err
		}
		cfg.Source.ID = value
	}
	if cfg.Sink.Location == "" {
		value, err := prompt.Input("Output directory:", "exports")
		if err != nil {
			return err
		}
		cfg.Sink.Location = value
	}

	selected, err := prompt.MultiSelect("Formats to export:", []string{"json", "markdown"}, cfg.Formats)
	if err != nil {
		return err
	}
	if len(selected) > 0 {
		cfg.Formats = selected
	}
	return nil
}
