package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/ms140569/omnivore-backup/internal/config"
)

func ParseFlags() (*config.Config, error) {
	// Environment (inkl. .env) liefert die Defaults, Flags überschreiben
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	flag.IntVar(&cfg.ChunkSize, "chunksize", cfg.ChunkSize, "Anzahl Datensätze pro Abruf")
	flag.StringVar(&cfg.URL, "url", cfg.URL, "Omnivore GraphQL Endpunkt")
	flag.StringVar(&cfg.Token, "token", cfg.Token, "Omnivore API Token")
	flag.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "Output Datei (Standard: stdout)")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Fortschritt auf stderr ausgeben")

	flag.Parse()

	if err := cfg.Validate(); err != nil {
		flag.Usage()
		return nil, err
	}

	return cfg, nil
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Omnivore Backup - Export gespeicherter Artikel als CSV

Usage: %s [OPTIONS]

Beispiele:
  # Alle Artikel als CSV auf stdout
  TOKEN="xxxx" %s

  # Kleinere Seiten, Export in Datei
  %s -token "xxxx" -chunksize 50 -output backup.csv

Optionen:
`, os.Args[0], os.Args[0], os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment Variables:
  TOKEN          Omnivore API Token
  OMNIVORE_URL   GraphQL Endpunkt (Standard: %s)
  CHUNK_SIZE     Anzahl Datensätze pro Abruf
  OUTPUT_FILE    Output Datei
  VERBOSE        Fortschritt auf stderr ausgeben
`, config.DefaultURL)
	}
}
