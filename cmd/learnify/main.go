package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Hami23p/Learnify/internal/audit"
	"github.com/Hami23p/Learnify/internal/directory"
	"github.com/Hami23p/Learnify/internal/persist"
	"github.com/Hami23p/Learnify/internal/platform/config"
	"github.com/Hami23p/Learnify/internal/quizbank"
	"github.com/Hami23p/Learnify/internal/report"
	"github.com/Hami23p/Learnify/internal/session"
)

func main() {
	// Cancel between script steps on SIGTERM/SIGINT. Data is flushed either way.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("learnify failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// run loads configuration, opens the directory, replays each script in
// scripts and saves on the way out. Without scripts it lists the courses.
func run(ctx context.Context, scripts []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	slog.SetDefault(newLogger(cfg.Log, stderr))

	backend, err := persist.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	var opts []directory.Option
	if cfg.Audit.Enabled {
		opts = append(opts, directory.WithEventLogger(audit.NewPostgresEventLogger(backend.DB.Pool)))
	}
	dir := directory.Open(ctx, backend.Store, opts...)
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := dir.Close(flushCtx); err != nil {
			slog.Warn("data not fully saved", "error", err)
		}
	}()

	var bank *quizbank.Loader
	if cfg.QuizBankPath != "" {
		bank, err = quizbank.NewLoader(cfg.QuizBankPath)
		if err != nil {
			return err
		}
	}

	lang := report.Lang(cfg.Report.Lang)
	if len(scripts) == 0 {
		return report.WriteCourses(stdout, dir.Courses(), lang)
	}

	runner := session.NewRunner(dir, session.Config{
		Out:       stdout,
		Lang:      lang,
		ReportDir: cfg.Report.Dir,
		Bank:      bank,
	})
	for _, path := range scripts {
		if ctx.Err() != nil {
			break
		}
		s, err := session.Load(path)
		if err != nil {
			slog.Error("skipping script", "path", path, "error", err)
			continue
		}
		outcomes := runner.Run(ctx, s)
		failed := 0
		for _, o := range outcomes {
			if !o.OK() {
				failed++
			}
		}
		slog.Info("script finished", "path", path, "steps", len(outcomes), "failed", failed)
	}
	return nil
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
