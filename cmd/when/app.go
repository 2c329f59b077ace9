package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amonks/when/internal/config"
	"github.com/amonks/when/internal/logging"
	"github.com/amonks/when/internal/paths"
	"github.com/amonks/when/internal/ui"
	"github.com/amonks/when/internal/validation"
	"github.com/amonks/when/internal/whenenv"
	"github.com/amonks/when/parser"
	"github.com/amonks/when/task"
)

// app holds what a command needs once config, logging and the store are
// set up.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	now    func() time.Time
	parser *parser.Parser
	store  *task.Store
	out    io.Writer
	styles ui.Styles
	color  bool
	width  int
}

var current *app

// openApp loads configuration and opens the store. Flags override the
// config file, and WHEN_STORE overrides both.
func openApp(cmd *cobra.Command) (*app, error) {
	if current != nil {
		return current, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}
	if rootBackend != "" {
		cfg.Store.Backend = rootBackend
	}
	if rootStore != "" {
		cfg.Store.Path = rootStore
	}
	if rootColor != "" {
		cfg.Display.Color = config.ColorMode(rootColor)
	}
	switch cfg.Display.Color {
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
	default:
		return nil, validation.FormatInvalidValueError(config.ErrInvalidColorMode, cfg.Display.Color, config.ValidColorModes())
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	now, err := whenenv.Clock()
	if err != nil {
		return nil, err
	}

	storePath := cfg.Store.Path
	if storePath == "" {
		storePath, err = paths.DefaultStorePath(cfg.Store.Backend)
		if err != nil {
			return nil, err
		}
	}
	storePath = whenenv.StorePath(storePath)

	p := parser.New(parser.Options{Now: now, Logger: logger})
	store, err := task.OpenPath(cfg.Store.Backend, storePath, task.Options{
		Parser: p,
		Logger: logger,
		Now:    now,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("opened store",
		zap.String("backend", cfg.Store.Backend),
		zap.String("path", storePath),
	)

	out := cmd.OutOrStdout()
	color := ui.ColorEnabled(string(cfg.Display.Color), out)
	current = &app{
		cfg:    cfg,
		logger: logger,
		now:    now,
		parser: p,
		store:  store,
		out:    out,
		styles: ui.NewStyles(out, color),
		color:  color,
		width:  ui.TerminalWidth(out, cfg.Display.Width),
	}
	return current, nil
}

func closeApp() {
	if current == nil {
		return
	}
	current.store.Close()
	current.logger.Sync()
	current = nil
}
