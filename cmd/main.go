package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ms140569/omnivore-backup/internal/cli"
	"github.com/ms140569/omnivore-backup/internal/logging"
	"github.com/ms140569/omnivore-backup/internal/service"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Fehler beim Parsen der Flags: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Verbose)

	// Strg-C bricht nur den Abruf ab, das Teilergebnis wird noch ausgegeben
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exporter := service.NewExporter(cfg, logger)

	if err := exporter.Export(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Export fehlgeschlagen: %v\n", err)
		os.Exit(1)
	}
}
