package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"quotely/internal/adapter/persistence/repository"
	"quotely/internal/domain/entities"
	"quotely/internal/store/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestStore builds a seeded store over an in-memory snapshot backend
// with deterministic ids and clock.
func newTestStore(t *testing.T) (*Store, *repository.SnapshotMemoryRepository) {
	t.Helper()
	repo := repository.NewSnapshotMemoryRepository()
	s := New(context.Background(), repo)
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%03d", seq)
	}
	s.now = func() time.Time { return testNow }
	return s, repo
}

func TestNew_SeedsWhenEmpty(t *testing.T) {
	repo := repository.NewSnapshotMemoryRepository()
	s := New(context.Background(), repo)

	if got := len(s.ListQuotes()); got != 5 {
		t.Fatalf("expected 5 seeded quotes, got %d", got)
	}
	if got := len(s.ListTemplates()); got != 1 {
		t.Fatalf("expected 1 seeded template, got %d", got)
	}
	if got := len(s.ListDomains()); got != 4 {
		t.Fatalf("expected 4 seeded domains, got %d", got)
	}

	// The seed must be persisted right away so the next load is stable.
	snap, found, err := repo.Load(context.Background())
	if err != nil || !found {
		t.Fatalf("expected persisted seed snapshot, found=%v err=%v", found, err)
	}
	if len(snap.Quotes) != 5 {
		t.Fatalf("persisted snapshot has %d quotes, want 5", len(snap.Quotes))
	}
}

func TestNew_LoadsExistingSnapshot(t *testing.T) {
	repo := repository.NewSnapshotMemoryRepository()
	existing := &entities.Snapshot{
		Quotes: []entities.Quote{{ID: "only", Title: "Only Quote", Status: entities.QuoteStatusDraft}},
	}
	if err := repo.Save(context.Background(), existing); err != nil {
		t.Fatalf("save: %v", err)
	}

	s := New(context.Background(), repo)
	quotes := s.ListQuotes()
	if len(quotes) != 1 || quotes[0].ID != "only" {
		t.Fatalf("expected the stored snapshot, got %+v", quotes)
	}
}

func TestNew_FallsBackToSeedOnLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockISnapshotStore(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(nil, false, errors.New("endpoint down"))
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	s := New(context.Background(), repo)
	if got := len(s.ListQuotes()); got != 5 {
		t.Fatalf("expected seed fallback with 5 quotes, got %d", got)
	}
}

func TestStore_SurvivesSaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockISnapshotStore(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(&entities.Snapshot{}, true, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("throttled")).AnyTimes()

	s := New(context.Background(), repo)
	detail, err := s.CreateQuote(context.Background(), "Ana")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// In-memory state stays authoritative even when persistence fails.
	if _, err := s.GetQuoteDetail(detail.Quote.ID); err != nil {
		t.Fatalf("expected quote to remain readable, got %v", err)
	}
}

func TestGetQuoteDetail(t *testing.T) {
	s, _ := newTestStore(t)

	t.Run("not found", func(t *testing.T) {
		if _, err := s.GetQuoteDetail("missing"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("orders the subtree", func(t *testing.T) {
		detail, err := s.GetTemplateDetail("t-fasttrack")
		if err != nil {
			t.Fatalf("get template: %v", err)
		}
		for i := 1; i < len(detail.Sections); i++ {
			if detail.Sections[i-1].SortOrder > detail.Sections[i].SortOrder {
				t.Fatalf("sections out of order: %+v", detail.Sections)
			}
		}
		for i := 1; i < len(detail.LineItems); i++ {
			if detail.LineItems[i-1].SortOrder > detail.LineItems[i].SortOrder {
				t.Fatalf("line items out of order: %+v", detail.LineItems)
			}
		}
	})
}

func TestGetQuoteByShareToken(t *testing.T) {
	s, _ := newTestStore(t)

	detail, err := s.GetQuoteByShareToken("token-q3")
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if detail.Quote.ID != "q3" {
		t.Fatalf("expected q3, got %s", detail.Quote.ID)
	}

	if _, err := s.GetQuoteByShareToken("nope"); !errors.Is(err, ErrShareTokenNotFound) {
		t.Fatalf("expected ErrShareTokenNotFound, got %v", err)
	}
}

func TestListProjections_ReturnCopies(t *testing.T) {
	s, _ := newTestStore(t)

	quotes := s.ListQuotes()
	quotes[0].Title = "mutated"
	if s.ListQuotes()[0].Title == "mutated" {
		t.Fatalf("list projection leaked a mutable alias to canonical state")
	}
}
