package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/gendefs/internal/application"
	"github.com/eugenenazirov/gendefs/internal/config"
	"github.com/eugenenazirov/gendefs/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("gendefs", "Generates src/common/Defs.h from the default.yaml defaults and an optional override document")
	defaultsPath := kingpinApp.Flag("defaults", "Path to the defaults YAML document (discovered from the working directory when empty)").String()
	searchDir := kingpinApp.Flag("search-dir", "Directory scanned for a single override *.yaml document").String()
	outputPath := kingpinApp.Flag("output", "Path of the generated header").String()
	overridePath := kingpinApp.Flag("override", "Explicit override document, skips the directory scan").String()
	strictOverride := kingpinApp.Flag("strict-override", "Fail instead of ignoring overrides when several candidates exist").Bool()
	lineEnding := kingpinApp.Flag("line-ending", "Line separator: native, lf or crlf").Default("native").Enum("native", "lf", "crlf")
	dryRun := kingpinApp.Flag("dry-run", "Print the header to stdout instead of writing it").Bool()
	watch := kingpinApp.Flag("watch", "Regenerate whenever the input documents change").Bool()
	watchInterval := kingpinApp.Flag("watch-interval", "Polling interval in watch mode").Default("1s").Duration()
	logLevel := kingpinApp.Flag("log-level", "Log level: debug, info, warn, error").Default("info").String()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		DefaultsPath:   defaultsPath,
		SearchDir:      searchDir,
		OutputPath:     outputPath,
		OverridePath:   overridePath,
		StrictOverride: *strictOverride,
		LineEnding:     lineEnding,
		DryRun:         *dryRun,
		Watch:          *watch,
		WatchInterval:  watchInterval,
		LogLevel:       logLevel,
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := execute(app, cfg.Watch, logger); err != nil {
		logger.Fatal("failed to generate header", zap.Error(err))
	}
}

// execute runs one generation, or watches until SIGINT/SIGTERM. Signals are
// only intercepted in watch mode so a single run stays interruptible.
func execute(app *application.App, watch bool, logger *zap.Logger) error {
	if !watch {
		_, err := app.Generate()
		return err
	}

	ctx, stop := signalContext(context.Background(), logger)
	defer stop()
	return app.Watch(ctx)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context, logger *zap.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-quit:
			logger.Info("shutting down", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(quit)
		cancel()
	}
}
