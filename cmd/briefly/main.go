package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/briefly-app/briefly/pkg/config"
	"github.com/briefly-app/briefly/pkg/feed"
	"github.com/briefly-app/briefly/pkg/llm"
	"github.com/briefly-app/briefly/pkg/mailer"
	"github.com/briefly-app/briefly/pkg/notify"
	"github.com/briefly-app/briefly/pkg/poller"
	"github.com/briefly-app/briefly/pkg/server"
	"github.com/briefly-app/briefly/pkg/store"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Once   bool   `long:"once" description:"run a single poll cycle and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	lgr.Printf("[INFO] starting briefly version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil && ctx.Err() == nil {
		lgr.Printf("[ERROR] briefly failed: %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run loads the configuration, wires all components and blocks until ctx is
// canceled or, with --once, until a single poll cycle completes
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := store.New(ctx, store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			lgr.Printf("[WARN] store close error: %v", err)
		}
	}()

	summarizer, err := makeSummarizer(cfg)
	if err != nil {
		return err
	}

	feedClient := feed.NewClient(cfg.Feed.BaseURL, cfg.Feed.Timeout, cfg.Feed.UserAgent)
	sender := mailer.New(cfg.Email)
	dispatcher := notify.NewDispatcher(db, summarizer, sender)
	p := poller.New(db, feedClient, dispatcher, cfg.Schedule.PollInterval, cfg.Schedule.MaxWorkers)

	if opts.Once {
		lgr.Printf("[INFO] single poll cycle requested")
		return p.RunOnce(ctx)
	}

	srv := server.New(cfg, db, p, revision, opts.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return p.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx) })
	return g.Wait()
}

// makeSummarizer picks the generation backend from the config
func makeSummarizer(cfg *config.Config) (notify.Summarizer, error) {
	detector := llm.NewUnavailableDetector()
	switch cfg.Summary.Provider {
	case "agent":
		return llm.NewAgentClient(cfg.Summary.Agent, detector), nil
	case "openai":
		return llm.NewOpenAIClient(cfg.Summary.OpenAI, detector), nil
	}
	return nil, fmt.Errorf("unknown summary provider %q", cfg.Summary.Provider)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
