package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"simfinclient/internal/config"
	"simfinclient/internal/coordinator"
	"simfinclient/internal/query"
	"simfinclient/internal/ratelimit"
	"simfinclient/simfin"
	"simfinclient/transport"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status: 0 on success, 1 when
// setup or any request failed, 2 for bad command-line arguments. Deferred
// cleanup always runs before the status is returned.
func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("simfin", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "path to a config file (default: ./config.yaml or $HOME/.simfin/config.yaml)")
	flags.String("base-url", simfin.DefaultBaseURL, "SimFin API base URL")
	flags.String("output", coordinator.FormatJSON, "output format: json or yaml")
	flags.Int("concurrency", 4, "maximum number of requests in flight")
	flags.Duration("timeout", 30*time.Second, "overall timeout for all requests")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	listIndicators := flags.Bool("list-indicators", false, "print the indicator catalog and exit")
	listTypes := flags.Bool("list-types", false, "print statement and period types and exit")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	// The static catalogs need no credentials
	if *listIndicators {
		printIndicators(stdout)
		return 0
	}
	if *listTypes {
		fmt.Fprintf(stdout, "statement types: %s\n", strings.Join(simfin.StatementTypes(), ", "))
		fmt.Fprintf(stdout, "period types: %s, TTM-N[.F]\n", strings.Join(simfin.PeriodTypes(), ", "))
		return 0
	}

	logger := log.New(stderr, "", log.LstdFlags)

	// Load a .env file if there is one
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Printf("Failed to load .env file: %v", err)
		return 1
	}

	// Load configuration
	cfg, err := config.LoadWithOptions(config.Options{ConfigFile: *configFile, Flags: flags})
	if err != nil {
		logger.Printf("Failed to load configuration: %v", err)
		return 1
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Create context with cancellation for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	httpClient := transport.New()
	defer httpClient.Close()

	client := simfin.NewWithTransport(cfg.APIKey, httpClient).SetBaseURL(cfg.BaseURL)

	fetchers := query.FromConfig(client, cfg)
	if len(fetchers) == 0 {
		logger.Printf("Nothing to fetch: configure tickers, names, company_ids, statements or ratios")
		return 1
	}

	coord := coordinator.New(fetchers,
		coordinator.WithConcurrency(cfg.Concurrency),
		coordinator.WithLimiter(ratelimit.New(cfg.RequestsPerSecond, 1)),
		coordinator.WithPrinter(coordinator.NewPrinter(stdout, cfg.Output)),
	)

	// Add timeout to prevent hanging indefinitely
	fetchCtx, fetchCancel := context.WithTimeout(ctx, cfg.Timeout)
	defer fetchCancel()

	slog.Info("fetching from SimFin", "requests", len(fetchers), "base_url", cfg.BaseURL)
	failed, err := coord.Run(fetchCtx)
	if err != nil {
		slog.Error("coordinator failed", "error", err)
		return 1
	}

	if failed > 0 {
		slog.Warn("some requests failed", "failed", failed, "total", len(fetchers))
		return 1
	}
	return 0
}

// printIndicators writes the catalog ordered by category and index.
func printIndicators(w io.Writer) {
	catalog := simfin.FinancialIndicators()
	for category := 0; category <= 4; category++ {
		for index := 0; index <= 99; index++ {
			code := fmt.Sprintf("%d-%d", category, index)
			if desc, ok := catalog[code]; ok {
				fmt.Fprintf(w, "%-5s %s\n", code, desc)
			}
		}
	}
}
