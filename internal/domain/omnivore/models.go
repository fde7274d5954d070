package omnivore

// Label ist ein vom Benutzer vergebenes Tag an einem gespeicherten Artikel.
type Label struct {
	Name string `graphql:"name"`
}

// SearchItem ist ein gespeicherter Artikel. Die URL dient im Export als
// eindeutiger Schlüssel. PublishedAt kann leer sein, SavedAt ist immer gesetzt.
type SearchItem struct {
	Title       string  `graphql:"title"`
	URL         string  `graphql:"url"`
	Labels      []Label `graphql:"labels"`
	PublishedAt string  `graphql:"publishedAt"`
	SavedAt     string  `graphql:"savedAt"`
}

// SearchItemEdge koppelt einen Artikel an den Cursor, unter dem er
// zurückgegeben wurde. Der Cursor ist opak und landet nicht im Export.
type SearchItemEdge struct {
	Cursor string     `graphql:"cursor"`
	Node   SearchItem `graphql:"node"`
}

type PageInfo struct {
	HasNextPage     bool   `graphql:"hasNextPage"`
	HasPreviousPage bool   `graphql:"hasPreviousPage"`
	StartCursor     string `graphql:"startCursor"`
	EndCursor       string `graphql:"endCursor"`
	TotalCount      int    `graphql:"totalCount"`
}

type SearchSuccess struct {
	Edges    []SearchItemEdge `graphql:"edges"`
	PageInfo PageInfo         `graphql:"pageInfo"`
}

type SearchError struct {
	ErrorCodes []string `graphql:"errorCodes"`
}

// SearchQuery bildet die search-Query der Omnivore API ab. Das Ergebnis ist
// eine Union aus SearchSuccess und SearchError, daher die Inline-Fragments.
type SearchQuery struct {
	Search struct {
		SearchSuccess `graphql:"... on SearchSuccess"`
		SearchError   `graphql:"... on SearchError"`
	} `graphql:"search(query: $query, first: $first, after: $after)"`
}
