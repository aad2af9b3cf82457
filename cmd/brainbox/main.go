package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainbox-app/brainbox/internal/api"
	"github.com/brainbox-app/brainbox/internal/config"
	"github.com/brainbox-app/brainbox/internal/session"
	"github.com/brainbox-app/brainbox/internal/storage"
	"github.com/brainbox-app/brainbox/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "brainbox failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		tokenFlag  = flag.String("token", "", "session token handed over from a browser sign-in")
		configFlag = flag.String("config", "", "path to config file (default: ~/.config/brainbox/config.toml)")
		noPersist  = flag.Bool("no-persist", false, "keep session state in memory, never touch disk")
	)
	flag.Parse()

	var (
		cfg config.Config
		err error
	)
	if *configFlag != "" {
		cfg, err = config.LoadFile(*configFlag)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	var state storage.StateStore
	if *noPersist {
		state = storage.NewMemoryStore()
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.StatePath), 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
		store, err := storage.OpenSQLite(cfg.StatePath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Migrate(); err != nil {
			return err
		}
		state = store
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	sess := session.NewStore(client, state, logger)
	client.SetCredentialSource(sess.Credential)

	runtime := update.RuntimeConfigFromEnv(update.RuntimeConfig{
		HandoffToken:  *tokenFlag,
		OAuthPort:     cfg.OAuthCallbackPort,
		OAuthStartURL: client.OAuthStartURL,
	})

	program := tea.NewProgram(update.NewModel(sess, client, runtime), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// newLogger writes structured logs to the configured file. Logging to the
// terminal would fight the TUI for the screen, so an empty path means the
// logs are discarded.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
