package service

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ms140569/omnivore-backup/internal/config"
	omnivoreDomain "github.com/ms140569/omnivore-backup/internal/domain/omnivore"
	omnivoreRepo "github.com/ms140569/omnivore-backup/internal/repository/omnivore"
)

// SearchClient liefert eine Seite gespeicherter Artikel ab dem Cursor after.
type SearchClient interface {
	Search(ctx context.Context, first int, after string) ([]omnivoreDomain.SearchItemEdge, omnivoreDomain.PageInfo, error)
}

type Exporter struct {
	config *config.Config
	repo   SearchClient
	logger zerolog.Logger
}

func NewExporter(cfg *config.Config, logger zerolog.Logger) *Exporter {
	return &Exporter{
		config: cfg,
		repo:   omnivoreRepo.NewRepository(cfg),
		logger: logger,
	}
}

// Export startet den Hauptexport-Prozess: alle Seiten laden, als CSV rendern
// und ausgeben. Auch wenn der Abruf mittendrin scheitert, wird das bis dahin
// Geladene noch ausgegeben; der Fehler beendet den Lauf danach trotzdem.
func (e *Exporter) Export(ctx context.Context) error {
	if err := e.config.Validate(); err != nil {
		return fmt.Errorf("konfiguration ungültig: %w", err)
	}

	e.logger.Debug().
		Str("url", e.config.URL).
		Int("chunksize", e.config.ChunkSize).
		Msg("Starte Export")

	edges, fetchErr := e.FetchAll(ctx)

	e.logger.Debug().Int("records", len(edges)).Msg("Abruf beendet")

	output, err := GenerateCSV(edges)
	if err != nil {
		return fmt.Errorf("CSV-Export fehlgeschlagen: %w", err)
	}

	if err := e.write(output); err != nil {
		return err
	}

	if fetchErr != nil {
		return fmt.Errorf("abruf unvollständig: %w", fetchErr)
	}

	return nil
}

// FetchAll folgt dem Cursor, bis die API keine weitere Seite meldet. Die Edges
// werden in Antwortreihenfolge angehängt, ohne Deduplizierung. Ein Abbruch
// über den Context ist kein Fehler: die bis dahin geladenen Edges werden
// zurückgegeben.
func (e *Exporter) FetchAll(ctx context.Context) ([]omnivoreDomain.SearchItemEdge, error) {
	var edges []omnivoreDomain.SearchItemEdge

	hasNextPage := true
	cursor := ""

	for hasNextPage {
		select {
		case <-ctx.Done():
			e.logger.Debug().Int("records", len(edges)).Msg("Abbruch, verwende Teilergebnis")
			return edges, nil
		default:
		}

		pageEdges, pageInfo, err := e.repo.Search(ctx, e.config.ChunkSize, cursor)
		if err != nil {
			if ctx.Err() != nil {
				// Abbruch während eines laufenden Requests
				e.logger.Debug().Int("records", len(edges)).Msg("Abbruch, verwende Teilergebnis")
				return edges, nil
			}
			return edges, err
		}

		edges = append(edges, pageEdges...)

		e.logger.Debug().
			Str("cursor", cursor).
			Int("batch", len(pageEdges)).
			Int("total", pageInfo.TotalCount).
			Msg("Seite geladen")

		hasNextPage = pageInfo.HasNextPage
		cursor = pageInfo.EndCursor
	}

	return edges, nil
}

func (e *Exporter) write(output string) error {
	if e.config.OutputFile == "" {
		fmt.Print(output)
		return nil
	}

	if err := os.WriteFile(e.config.OutputFile, []byte(output), 0644); err != nil {
		return fmt.Errorf("datei-Export fehlgeschlagen: %w", err)
	}

	e.logger.Debug().Str("file", e.config.OutputFile).Msg("Datei erstellt")
	return nil
}
