package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/bookingkit/internal/components"
	"github.com/alexisbeaulieu97/bookingkit/internal/config"
	"github.com/alexisbeaulieu97/bookingkit/internal/logger"
)

// AppContext bundles what every command needs once flags are parsed.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
	closer io.Closer
}

// Close releases the log file, if one was opened.
func (a *AppContext) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// newAppContext loads the configuration, activates its theme and opens the
// logger. Without --log-file, quiet commands log to stderr and interactive
// ones discard entries so the screen stays clean.
func newAppContext(flags *rootFlags, stderr io.Writer, interactive bool) (*AppContext, error) {
	app := &AppContext{}

	switch {
	case flags.logFile != "":
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log, err := logger.New(logger.Options{Level: flags.logLevel, Writer: file})
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create logger: %w", err)
		}
		app.Logger = log
		app.closer = file
	case interactive:
		log, err := logger.New(logger.Options{Level: flags.logLevel, Writer: io.Discard})
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
		app.Logger = log
	default:
		log, err := logger.New(logger.Options{Level: flags.logLevel, HumanReadable: true, Writer: stderr})
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
		app.Logger = log
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		app.Logger.Error(err, "configuration rejected")
		app.Close()
		return nil, err
	}
	app.Config = cfg

	theme, err := components.ThemeFromConfig(cfg.Theme)
	if err != nil {
		app.Close()
		return nil, err
	}
	components.SetTheme(theme)

	app.Logger.WithFields(map[string]any{
		"config": flags.configPath,
		"fields": len(cfg.Fields),
	}).Debug("configuration loaded")

	return app, nil
}

func isTerminal(w any) bool {
	if file, ok := w.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
