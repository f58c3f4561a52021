package application

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/gendefs/internal/config"
	"github.com/eugenenazirov/gendefs/internal/defs"
	"github.com/eugenenazirov/gendefs/internal/output"
	"github.com/eugenenazirov/gendefs/internal/source"
)

// App generates the defines header from a resolved configuration.
type App struct {
	cfg    config.Config
	logger *zap.Logger
	stdout io.Writer
	write  func(path string, data []byte) error
}

// Option configures App behaviour.
type Option func(*App)

// WithStdout overrides the destination used by dry runs, primarily for tests.
func WithStdout(w io.Writer) Option {
	return func(a *App) {
		a.stdout = w
	}
}

// WithWriter overrides the file writer, primarily for tests.
func WithWriter(write func(path string, data []byte) error) Option {
	return func(a *App) {
		a.write = write
	}
}

// Result summarizes one generation pass.
type Result struct {
	OverridePath string
	Selection    source.Selection
	Candidates   []string
	Defines      int
	Bytes        int
	Written      bool
}

// New initializes the application from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	if cfg.DefaultsPath == "" {
		return nil, errors.New("defaults path is required")
	}
	if cfg.OutputPath == "" && !cfg.DryRun {
		return nil, errors.New("output path is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	app := &App{
		cfg:    cfg,
		logger: logger,
		stdout: os.Stdout,
		write:  output.WriteFile,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app, nil
}

// Generate reads the input documents, builds the header in memory and writes
// it in one step. Any error leaves the existing header untouched.
func (a *App) Generate() (Result, error) {
	defaults, err := source.LoadFile(a.cfg.DefaultsPath)
	if err != nil {
		return Result{}, fmt.Errorf("load defaults document: %w", err)
	}

	result, override, err := a.loadOverride()
	if err != nil {
		return result, err
	}

	if unknown := defs.UnknownKeys(override.Keys()); len(unknown) > 0 {
		a.logger.Warn("override document has unrecognized keys",
			zap.String("path", override.Path()),
			zap.Strings("keys", unknown),
		)
	}

	header, err := defs.Build(defaults, override)
	if err != nil {
		return result, fmt.Errorf("build header: %w", err)
	}

	data := header.Render(a.cfg.LineSeparator)
	result.Defines = len(header.Defines)
	result.Bytes = len(data)

	if a.cfg.DryRun {
		if _, err := a.stdout.Write(data); err != nil {
			return result, fmt.Errorf("write header to stdout: %w", err)
		}
		return result, nil
	}

	if err := a.write(a.cfg.OutputPath, data); err != nil {
		return result, fmt.Errorf("write header: %w", err)
	}
	result.Written = true

	a.logger.Info("header generated",
		zap.String("output", a.cfg.OutputPath),
		zap.Int("defines", result.Defines),
		zap.Int("bytes", result.Bytes),
	)
	return result, nil
}

func (a *App) loadOverride() (Result, source.Document, error) {
	if a.cfg.OverridePath != "" {
		doc, err := source.LoadFile(a.cfg.OverridePath)
		if err != nil {
			return Result{}, source.Document{}, fmt.Errorf("load override document: %w", err)
		}
		a.logger.Info("using explicit override document", zap.String("path", a.cfg.OverridePath))
		return Result{OverridePath: a.cfg.OverridePath, Selection: source.SelectionSingle}, doc, nil
	}

	candidates, err := source.Candidates(a.cfg.SearchDir, a.cfg.DefaultsPath)
	if err != nil {
		return Result{}, source.Document{}, fmt.Errorf("find override documents: %w", err)
	}

	path, selection := source.SelectOverride(candidates)
	result := Result{OverridePath: path, Selection: selection, Candidates: candidates}

	switch selection {
	case source.SelectionSingle:
		doc, err := source.LoadFile(path)
		if err != nil {
			return result, source.Document{}, fmt.Errorf("load override document: %w", err)
		}
		a.logger.Info("using override document", zap.String("path", path), zap.Int("keys", doc.Len()))
		return result, doc, nil
	case source.SelectionAmbiguous:
		if a.cfg.StrictOverride {
			return result, source.Document{}, fmt.Errorf("%w in %s: %v", source.ErrAmbiguousOverride, a.cfg.SearchDir, candidates)
		}
		a.logger.Warn("several override documents found, using defaults only",
			zap.String("dir", a.cfg.SearchDir),
			zap.Strings("candidates", candidates),
		)
	default:
		a.logger.Debug("no override document found", zap.String("dir", a.cfg.SearchDir))
	}
	return result, source.Empty(), nil
}
