package app

import (
	"context"
	"fmt"
	"time"

	"github.com/lilactown/react-repl/internal/config"
	"github.com/lilactown/react-repl/internal/demoapp"
	"github.com/lilactown/react-repl/internal/devtools"
	"github.com/lilactown/react-repl/internal/fiber"
	"github.com/lilactown/react-repl/internal/prefs"
	"github.com/lilactown/react-repl/internal/registry"
	"github.com/lilactown/react-repl/internal/ui"
)

// Options configure the react-repl application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/react-repl/prefs.toml
	RootID     int    // zero uses the config value
	TickEvery  int    // seconds; zero uses the config value
	NoDemo     bool   // skip the built-in demo producer
}

// Run installs the capture hook, starts the demo producer, and boots the
// inspector TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.RootID > 0 {
		cfg.RootID = opts.RootID
	}
	if opts.TickEvery > 0 {
		cfg.TickSeconds = opts.TickEvery
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	// The developer-preload step: from here on every commit any producer
	// announces through the global hook lands in the default registry.
	devtools.Install(registry.Default)

	if !opts.NoDemo {
		producer := demoapp.NewProducer()
		producer.Interval = time.Duration(cfg.TickSeconds) * time.Second
		producer.Start(ctx, devtools.Global())
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     registry.Default,
		RootID:    fiber.RootID(cfg.RootID),
		PollTick:  time.Duration(cfg.TickSeconds) * time.Second,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
