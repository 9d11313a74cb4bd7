package entities

// SearchEntityType identifies which collection a search hit came from.
type SearchEntityType string

const (
	SearchEntityQuote    SearchEntityType = "Quote"
	SearchEntityTemplate SearchEntityType = "Template"
	SearchEntityProject  SearchEntityType = "Project"
	SearchEntityDomain   SearchEntityType = "Domain"
	SearchEntityContact  SearchEntityType = "Contact"
)

// SearchResult is one hit of the cross-entity lookup. Route is the
// client-side path the hit resolves to.
type SearchResult struct {
	ID    string           `json:"id"`
	Type  SearchEntityType `json:"type"`
	Label string           `json:"label"`
	Route string           `json:"route"`
	Tags  []string         `json:"tags"`
}
