package store

import (
	"context"
	"errors"
	"testing"

	"quotely/internal/domain/entities"
)

func TestSaveProject(t *testing.T) {
	s, _ := newTestStore(t)

	t.Run("create assigns an id", func(t *testing.T) {
		p, err := s.SaveProject(context.Background(), entities.Project{Name: "Phoenix"})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if p.ID == "" {
			t.Fatalf("expected an id to be assigned")
		}
		if !p.UpdatedAt.Equal(testNow) {
			t.Fatalf("expected updated_at stamp, got %v", p.UpdatedAt)
		}
	})

	t.Run("update replaces in place", func(t *testing.T) {
		p, err := s.SaveProject(context.Background(), entities.Project{ID: "p1", Name: "Ursula v2"})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if p.ID != "p1" {
			t.Fatalf("update must keep the id")
		}
		if got := len(s.ListProjects()); got != 4 {
			t.Fatalf("expected 4 projects (3 seeded + 1 created), got %d", got)
		}
	})
}

func TestDeleteProject(t *testing.T) {
	s, _ := newTestStore(t)

	t.Run("in use", func(t *testing.T) {
		if err := s.DeleteProject(context.Background(), "p1"); !errors.Is(err, ErrProjectInUse) {
			t.Fatalf("expected ErrProjectInUse, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if err := s.DeleteProject(context.Background(), "missing"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("unreferenced after quote deletion", func(t *testing.T) {
		// p3 is only referenced by q3.
		if err := s.DeleteQuote(context.Background(), "q3"); err != nil {
			t.Fatalf("delete quote: %v", err)
		}
		if err := s.DeleteProject(context.Background(), "p3"); err != nil {
			t.Fatalf("delete project: %v", err)
		}
	})
}

func TestSaveContact(t *testing.T) {
	s, _ := newTestStore(t)

	t.Run("requires name and email", func(t *testing.T) {
		if _, err := s.SaveContact(context.Background(), entities.Contact{Name: "Eva"}); !errors.Is(err, ErrContactInvalid) {
			t.Fatalf("expected ErrContactInvalid, got %v", err)
		}
		if _, err := s.SaveContact(context.Background(), entities.Contact{Email: "eva@example.com"}); !errors.Is(err, ErrContactInvalid) {
			t.Fatalf("expected ErrContactInvalid, got %v", err)
		}
	})

	t.Run("create and update", func(t *testing.T) {
		c, err := s.SaveContact(context.Background(), entities.Contact{Name: "Eva", Email: "eva@example.com"})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if c.ID == "" {
			t.Fatalf("expected an id to be assigned")
		}

		c.Note = "Primary stakeholder"
		updated, err := s.SaveContact(context.Background(), c)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Note != "Primary stakeholder" {
			t.Fatalf("update lost the note")
		}
		if got := len(s.ListContacts()); got != 4 {
			t.Fatalf("expected 4 contacts, got %d", got)
		}
	})
}

func TestDeleteContact(t *testing.T) {
	s, _ := newTestStore(t)

	t.Run("in use", func(t *testing.T) {
		if err := s.DeleteContact(context.Background(), "c1"); !errors.Is(err, ErrContactInUse) {
			t.Fatalf("expected ErrContactInUse, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if err := s.DeleteContact(context.Background(), "missing"); !errors.Is(err, ErrContactNotFound) {
			t.Fatalf("expected ErrContactNotFound, got %v", err)
		}
	})
}
