// Package app wires configuration, the peer provider, tracing and the TUI
// into a single entry point.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"wgtui/internal/config"
	"wgtui/internal/inventory"
	"wgtui/internal/peer"
	"wgtui/internal/telemetry"
	"wgtui/internal/ui"
	"wgtui/internal/wireguard"
)

// Options configures Run.
type Options struct {
	// ConfigPath overrides the config file location. Empty uses config.Path().
	ConfigPath string
}

// TerminalError reports a failure to set up or drive the terminal.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error { return e.Err }

// errNotTerminal is wrapped by TerminalError when stdin or stdout is redirected.
var errNotTerminal = errors.New("not a terminal")

// backend is what the UI needs from a peer source.
type backend interface {
	peer.Provider
	peer.EventSource
}

// Run loads the config and runs the TUI until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	tracing, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	provider, err := buildProvider(cfg)
	if err != nil {
		return err
	}
	traced := telemetry.TraceProvider(provider, tracing.Tracer())

	if err := checkTerminal(); err != nil {
		return err
	}

	model := ui.NewAppModel(ctx, traced, traced)
	model.Title = title(cfg)
	log.Printf("wgtui starting: source=%s interface=%s tracing=%t", cfg.Source, cfg.Interface, tracing.Enabled())

	if err := ui.Run(ctx, model); err != nil {
		if isCleanExit(ctx, err) {
			return nil
		}
		return &TerminalError{Op: "run", Err: err}
	}
	return nil
}

// isCleanExit reports whether err from the program only reflects a signal or
// a cancelled ctx rather than a terminal failure.
func isCleanExit(ctx context.Context, err error) bool {
	if errors.Is(err, tea.ErrInterrupted) {
		return true
	}
	return ctx.Err() != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled))
}

// setupLogging routes the std logger to path, or discards it when path is
// empty so log output never lands on the alternate screen.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "wgtui")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func buildProvider(cfg config.Config) (backend, error) {
	switch cfg.Source {
	case config.SourceDemo:
		return peer.NewDemoProvider(), nil
	case config.SourceWG:
		names, err := inventory.Load(cfg.InventoryPath)
		if err != nil {
			return nil, fmt.Errorf("load inventory: %w", err)
		}
		var runner wireguard.Runner = wireguard.ExecRunner{}
		if cfg.PTY {
			runner = wireguard.PTYRunner{}
		}
		return wireguard.New(wireguard.Options{
			Interface:        cfg.Interface,
			WGPath:           cfg.WGPath,
			Sudo:             cfg.Sudo,
			Interactive:      cfg.PTY,
			Runner:           runner,
			Names:            names,
			HandshakeTimeout: cfg.HandshakeTimeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

func checkTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return &TerminalError{Op: "open stdin", Err: errNotTerminal}
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return &TerminalError{Op: "open stdout", Err: errNotTerminal}
	}
	return nil
}

func title(cfg config.Config) string {
	if cfg.Source == config.SourceDemo {
		return "demo"
	}
	return cfg.Interface
}
