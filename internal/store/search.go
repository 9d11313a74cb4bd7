package store

import (
	"fmt"
	"strings"

	"quotely/internal/domain/entities"
)

// Each entity type contributes at most this many hits.
const searchResultLimit = 3

// Search runs a case-insensitive substring match across the primary text
// fields of every entity type. An empty query yields no results.
func (s *Store) Search(query string) []entities.SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []entities.SearchResult

	count := 0
	for _, q := range s.quotes {
		if count == searchResultLimit {
			break
		}
		if strings.Contains(strings.ToLower(q.Title), query) {
			results = append(results, entities.SearchResult{
				ID:    q.ID,
				Type:  entities.SearchEntityQuote,
				Label: q.Title,
				Route: "/quote/" + q.ID,
				Tags:  []string{s.projectNameLocked(q.ProjectID)},
			})
			count++
		}
	}

	count = 0
	for _, t := range s.templates {
		if count == searchResultLimit {
			break
		}
		if strings.Contains(strings.ToLower(t.Title), query) {
			results = append(results, entities.SearchResult{
				ID:    t.ID,
				Type:  entities.SearchEntityTemplate,
				Label: t.Title,
				Route: "/template/" + t.ID,
				Tags:  []string{t.Description},
			})
			count++
		}
	}

	count = 0
	for _, p := range s.projects {
		if count == searchResultLimit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), query) || strings.Contains(strings.ToLower(p.Description), query) {
			results = append(results, entities.SearchResult{
				ID:    p.ID,
				Type:  entities.SearchEntityProject,
				Label: p.Name,
				Route: "/project/" + p.ID,
				Tags:  []string{p.Description},
			})
			count++
		}
	}

	count = 0
	for _, d := range s.domains {
		if count == searchResultLimit {
			break
		}
		if strings.Contains(strings.ToLower(d.Name), query) {
			resolved, _ := s.resolveDomainLocked(d.ID)
			results = append(results, entities.SearchResult{
				ID:    d.ID,
				Type:  entities.SearchEntityDomain,
				Label: d.Name,
				Route: "/domain/" + d.ID,
				Tags:  []string{fmt.Sprintf("Rate: %g", resolved.HourlyRate)},
			})
			count++
		}
	}

	count = 0
	for _, c := range s.contacts {
		if count == searchResultLimit {
			break
		}
		if strings.Contains(strings.ToLower(c.Name), query) || strings.Contains(strings.ToLower(c.Email), query) {
			results = append(results, entities.SearchResult{
				ID:    c.ID,
				Type:  entities.SearchEntityContact,
				Label: c.Name,
				Route: "/contact/" + c.ID,
				Tags:  []string{c.Email},
			})
			count++
		}
	}

	return results
}

func (s *Store) projectNameLocked(id string) string {
	for _, p := range s.projects {
		if p.ID == id {
			return p.Name
		}
	}
	return "-"
}
