package service

import (
	"fmt"
	"strings"

	omnivoreDomain "github.com/ms140569/omnivore-backup/internal/domain/omnivore"
	"github.com/ms140569/omnivore-backup/pkg/utils"
)

// CSVHeader ist die feste Kopfzeile des Exports.
const CSVHeader = "url,state,labels,saved_at,published_at"

// itemState ist konstant: die search-Query fragt den Item-State nie ab,
// Importer erwarten in dieser Spalte SUCCEEDED.
const itemState = "SUCCEEDED"

// GenerateCSV rendert die Edges in Reihenfolge als CSV-Text. Das Format ist
// bewusst kein RFC-4180: die URL bleibt unquoted und das Label-Feld trägt
// seine Anführungszeichen selbst, damit der Output byte-kompatibel zu
// bestehenden Backups bleibt. Zeiten sind Unix-Timestamps in Millisekunden;
// fehlt publishedAt, wird savedAt übernommen.
func GenerateCSV(edges []omnivoreDomain.SearchItemEdge) (string, error) {
	var output strings.Builder

	output.WriteString(CSVHeader)
	output.WriteByte('\n')

	for _, edge := range edges {
		node := edge.Node

		savedAt, err := utils.UnixMillis(node.SavedAt)
		if err != nil {
			return "", fmt.Errorf("savedAt von %q: %w", node.URL, err)
		}

		publishedAt := savedAt
		if node.PublishedAt != "" {
			publishedAt, err = utils.UnixMillis(node.PublishedAt)
			if err != nil {
				return "", fmt.Errorf("publishedAt von %q: %w", node.URL, err)
			}
		}

		line := strings.Join([]string{
			node.URL,
			itemState,
			FormatLabels(node.Labels),
			savedAt,
			publishedAt,
		}, ",")

		output.WriteString(line)
		output.WriteByte('\n')
	}

	return output.String(), nil
}

// FormatLabels serialisiert Labels als "[name1,name2]", ohne Labels als "[]".
func FormatLabels(labels []omnivoreDomain.Label) string {
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.Name)
	}
	return `"[` + strings.Join(names, ",") + `]"`
}
