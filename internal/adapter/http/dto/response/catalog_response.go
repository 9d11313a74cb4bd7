package response

import (
	"time"

	"quotely/internal/domain/entities"
)

type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedBy:   p.CreatedBy,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = FromProject(p)
	}
	return out
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Note      string    `json:"note"`
	CreatedBy string    `json:"created_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromContact(c entities.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Note:      c.Note,
		CreatedBy: c.CreatedBy,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromContacts(contacts []entities.Contact) []ContactResponse {
	out := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		out[i] = FromContact(c)
	}
	return out
}

type RateComponentResponse struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DomainResponse always carries the resolved hourly rate: for domains with
// rate components it is the component sum, never a stale stored value.
type DomainResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	HourlyRate     float64                 `json:"hourly_rate"`
	RateComponents []RateComponentResponse `json:"rate_components,omitempty"`
	CreatedBy      string                  `json:"created_by"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

func FromDomain(d entities.BusinessDomain) DomainResponse {
	var components []RateComponentResponse
	if len(d.RateComponents) > 0 {
		components = make([]RateComponentResponse, len(d.RateComponents))
		for i, rc := range d.RateComponents {
			components[i] = RateComponentResponse{ID: rc.ID, Label: rc.Label, Value: rc.Value}
		}
	}
	return DomainResponse{
		ID:             d.ID,
		Name:           d.Name,
		HourlyRate:     d.HourlyRate,
		RateComponents: components,
		CreatedBy:      d.CreatedBy,
		UpdatedAt:      d.UpdatedAt,
	}
}

func FromDomains(domains []entities.BusinessDomain) []DomainResponse {
	out := make([]DomainResponse, len(domains))
	for i, d := range domains {
		out[i] = FromDomain(d)
	}
	return out
}

type SearchResultResponse struct {
	ID    string   `json:"id"`
	Type  string   `json:"type"`
	Label string   `json:"label"`
	Route string   `json:"route"`
	Tags  []string `json:"tags"`
}

func FromSearchResults(results []entities.SearchResult) []SearchResultResponse {
	out := make([]SearchResultResponse, len(results))
	for i, r := range results {
		out[i] = SearchResultResponse{
			ID:    r.ID,
			Type:  string(r.Type),
			Label: r.Label,
			Route: r.Route,
			Tags:  r.Tags,
		}
	}
	return out
}
