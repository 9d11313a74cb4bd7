package store

import (
	"context"
	"errors"
	"strings"

	"quotely/internal/domain/entities"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectInUse    = errors.New("project is referenced by one or more quotes")
	ErrContactNotFound = errors.New("contact not found")
	ErrContactInUse    = errors.New("contact is referenced by one or more quotes")
	ErrContactInvalid  = errors.New("contact requires a name and an email")
)

// SaveProject stores a project, stamping its update time. An empty id
// means a new project.
func (s *Store) SaveProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = s.newID()
	}
	p.UpdatedAt = s.now()

	replaced := false
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		s.projects = append(s.projects, p)
	}
	s.persist(ctx)
	return p, nil
}

// DeleteProject removes a project unless a quote still references it. The
// failure is a declined operation, distinguishable from not-found.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range s.quotes {
		if q.ProjectID == id {
			return ErrProjectInUse
		}
	}
	kept := make([]entities.Project, 0, len(s.projects))
	found := false
	for _, p := range s.projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrProjectNotFound
	}
	s.projects = kept
	s.persist(ctx)
	return nil
}

// SaveContact stores a contact. Name and email are required.
func (s *Store) SaveContact(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" {
		return entities.Contact{}, ErrContactInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = s.newID()
	}
	c.UpdatedAt = s.now()

	replaced := false
	for i := range s.contacts {
		if s.contacts[i].ID == c.ID {
			s.contacts[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		s.contacts = append(s.contacts, c)
	}
	s.persist(ctx)
	return c, nil
}

// DeleteContact removes a contact unless a quote still references it.
func (s *Store) DeleteContact(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range s.quotes {
		if q.ContactID == id {
			return ErrContactInUse
		}
	}
	kept := make([]entities.Contact, 0, len(s.contacts))
	found := false
	for _, c := range s.contacts {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrContactNotFound
	}
	s.contacts = kept
	s.persist(ctx)
	return nil
}
