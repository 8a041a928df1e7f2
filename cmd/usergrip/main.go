package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"usergrip/internal/config"
	"usergrip/internal/eventbus"
	"usergrip/internal/github"
	"usergrip/internal/identity"
	"usergrip/internal/search"
	"usergrip/internal/selection"
	"usergrip/internal/ui"
)

// Version is set at build time
var Version = "dev"

// envE2E switches on the ready marker used by the terminal tests
const envE2E = "USERGRIP_E2E_TEST"

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:                   "usergrip",
		Usage:                  "Search GitHub users from the terminal",
		Version:                Version,
		UseShortOptionHandling: true,
		Writer:                 out,
		ArgsUsage:              "[TERM]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the config file",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Search endpoint",
			},
			&cli.IntFlag{
				Name:  "debounce",
				Usage: "Milliseconds to wait after typing before searching",
			},
			&cli.IntFlag{
				Name:  "timeout",
				Usage: "Request timeout in seconds",
			},
		},
		Action: runTUI,
		Commands: []*cli.Command{
			{
				Name:      "query",
				Usage:     "Search terms without the interface and print the results",
				ArgsUsage: "TERM...",
				Action:    runQueryCommand,
			},
			{
				Name:   "config",
				Usage:  "Print the effective configuration",
				Action: printConfig,
			},
		},
	}
}

// loadConfig layers file, .env, environment and flags, in that order
func loadConfig(c *cli.Context, bus eventbus.EventBus, create bool) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cs := config.NewConfigServiceWithBus(c.String("config"), bus)
	var cfg *config.Config
	var err error
	if create {
		cfg, err = config.LoadOrCreate(cs)
	} else {
		cfg, err = cs.Load()
	}
	if err != nil {
		return nil, err
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if c.IsSet("base-url") {
		cfg.Search.BaseURL = c.String("base-url")
	}
	if c.IsSet("debounce") {
		cfg.Search.DebounceMS = c.Int("debounce")
	}
	if c.IsSet("timeout") {
		cfg.Search.TimeoutSeconds = c.Int("timeout")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// earlyLog holds standard logger output until the log file is open
type earlyLog struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (e *earlyLog) Write(p []byte) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.Write(p)
}

// captureLog buffers the standard logger so nothing reaches the terminal
// before setupLogging picks the real destination
func captureLog() *earlyLog {
	early := &earlyLog{}
	log.SetOutput(early)
	return early
}

// setupLogging sends the standard logger to path, followed by whatever was
// buffered in early
func setupLogging(path string, early *earlyLog) func() {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(logFile)

	if early != nil {
		early.mu.Lock()
		_, _ = early.buf.WriteTo(logFile)
		early.mu.Unlock()
	}
	return func() { _ = logFile.Close() }
}

// newBus creates the event bus and logs every event that crosses it
func newBus() eventbus.EventBus {
	bus := eventbus.New()
	for _, t := range eventbus.AllEventTypes {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Printf("event %s: %+v", e.Type(), e)
		})
	}
	return bus
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

func runTUI(c *cli.Context) error {
	early := captureLog()
	bus := newBus()
	defer bus.Close()

	cfg, err := loadConfig(c, bus, true)
	if err != nil {
		return err
	}

	closeLog := setupLogging(cfg.LogFile, early)
	defer closeLog()

	ctx, cancel := signalContext()
	defer cancel()

	client := github.NewClient(cfg.Search.BaseURL, cfg.Search.ClientOptions()...)
	controller := search.NewController(client, identity.UUIDGenerator{}, bus)
	store := selection.NewStore(identity.UUIDGenerator{}, bus)

	opts := []ui.Option{ui.WithReadyMarker(os.Getenv(envE2E) == "1")}
	if term := c.Args().First(); term != "" {
		opts = append(opts, ui.WithInitialTerm(term))
	}

	model := ui.NewModel(ctx, cfg, controller, store, bus, opts...)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func runQueryCommand(c *cli.Context) error {
	terms := c.Args().Slice()
	if len(terms) == 0 {
		return fmt.Errorf("query needs at least one term")
	}

	early := captureLog()
	bus := newBus()
	defer bus.Close()

	cfg, err := loadConfig(c, bus, false)
	if err != nil {
		return err
	}

	closeLog := setupLogging(cfg.LogFile, early)
	defer closeLog()

	ctx, cancel := signalContext()
	defer cancel()

	client := github.NewClient(cfg.Search.BaseURL, cfg.Search.ClientOptions()...)
	if err := runQuery(ctx, c.App.Writer, client, bus, terms); err != nil {
		return cli.Exit("", 1)
	}
	return nil
}

func printConfig(c *cli.Context) error {
	cfg, err := loadConfig(c, nil, false)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = c.App.Writer.Write(data)
	return err
}
