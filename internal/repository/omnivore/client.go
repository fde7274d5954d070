package omnivore

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hasura/go-graphql-client"

	"github.com/ms140569/omnivore-backup/internal/config"
	omnivoreDomain "github.com/ms140569/omnivore-backup/internal/domain/omnivore"
)

type Repository struct {
	config *config.Config
	client *graphql.Client
}

// authTransport setzt auf jedem Request den Omnivore API Token. Die API
// erwartet den Token direkt im Authorization-Header, ohne "Bearer"-Präfix.
type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", t.token)
	req.Header.Set("Content-Type", "application/json")
	return t.base.RoundTrip(req)
}

func NewRepository(cfg *config.Config) *Repository {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &authTransport{
			token: cfg.Token,
			base:  http.DefaultTransport,
		},
	}

	return &Repository{
		config: cfg,
		client: graphql.NewClient(cfg.URL, httpClient),
	}
}

// Search holt genau eine Seite gespeicherter Artikel. after ist der opake
// Cursor der vorherigen Seite, leer für die erste Seite.
func (r *Repository) Search(ctx context.Context, first int, after string) ([]omnivoreDomain.SearchItemEdge, omnivoreDomain.PageInfo, error) {
	var query omnivoreDomain.SearchQuery

	variables := map[string]interface{}{
		"query": graphql.String(""),
		"first": graphql.Int(first),
		"after": graphql.String(after),
	}

	if err := r.client.Query(ctx, &query, variables); err != nil {
		return nil, omnivoreDomain.PageInfo{}, fmt.Errorf("GraphQL query failed: %w", err)
	}

	if len(query.Search.ErrorCodes) > 0 {
		return nil, omnivoreDomain.PageInfo{}, fmt.Errorf("search error: %s",
			strings.Join(query.Search.ErrorCodes, ", "))
	}

	return query.Search.Edges, query.Search.PageInfo, nil
}
