package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"contactbook/internal/commands"
	"contactbook/internal/contacts/metrics"
	"contactbook/internal/platform/config"
	"contactbook/internal/platform/logger"
	platformmetrics "contactbook/internal/platform/metrics"
)

// main wires config, logging and the selected store around a console session.
// The book is loaded once at start and saved once when the session ends.
func main() {
	os.Exit(run(context.Background(), os.Stdin, os.Stdout))
}

func run(ctx context.Context, in io.Reader, out io.Writer) int {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "contactbook: %v\n", err)
		return 1
	}
	log := logger.New(cfg.Log)
	return runWithConfig(ctx, cfg, log, in, out)
}

func runWithConfig(ctx context.Context, cfg config.Config, log *slog.Logger, in io.Reader, out io.Writer) int {
	snapshot, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("failed to open store", "store", cfg.Store, "err", err)
		fmt.Fprintf(out, "Unexpected error: %v\n", err)
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("failed to close store", "store", cfg.Store, "err", err)
		}
	}()

	book, err := snapshot.Load(ctx)
	if err != nil {
		log.Error("failed to load address book", "store", cfg.Store, "err", err)
		fmt.Fprintf(out, "Unexpected error: failed to load address book: %v\n", err)
		return 1
	}
	log.Info("address book loaded", "store", cfg.Store, "contacts", book.Len())

	reg := platformmetrics.NewRegistry()
	handler := commands.NewHandler(book,
		commands.WithLogger(log),
		commands.WithMetrics(metrics.New(reg)),
		commands.WithUpcomingDays(cfg.UpcomingDays),
	)
	session := commands.NewSession(handler, snapshot, commands.WithSessionLogger(log))

	// The session already reported any failure to the user; ending the
	// conversation is always a normal exit.
	if err := session.Run(ctx, in, out); err != nil {
		log.Error("session ended with error", "err", err)
	}

	if err := platformmetrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
		log.Warn("failed to write metrics", "path", cfg.MetricsFile, "err", err)
	}
	return 0
}
