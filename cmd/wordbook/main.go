package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/mwielgus/wordbook/goquery"
	wbhttp "github.com/mwielgus/wordbook/http"
	wbslog "github.com/mwielgus/wordbook/slog"
)

func main() {
	// Interrupts are observed between items by the batch runner, so a
	// Ctrl-C finishes the in-flight word and reports a summary.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wordbook"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wordbook --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	deps.Config = cfg

	// Commands that talk to the origin share one fetcher, wrapped with
	// request logging.
	cmd := kongCtx.Command()
	if cmd == "scrape" || cmd == "extract" {
		fetcher := wbhttp.NewFetcher(wbhttp.WithUserAgent(cfg.UserAgent))
		deps.Fetcher = wbslog.NewFetcher(fetcher, logger)
		defer deps.Fetcher.Close()

		deps.Discoverer = goquery.NewDiscoverer(cfg.BaseURL)
		deps.Extractor = goquery.NewExtractor(
			goquery.WithMeaningLabel(cfg.MeaningLabel),
			goquery.WithUsageLabel(cfg.UsageLabel),
			goquery.WithUsageCutoff(cfg.UsageCutoff),
		)
	}

	return kongCtx.Run(deps)
}
