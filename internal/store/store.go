// Package store implements the quote-composition data layer: it owns the
// canonical in-memory collections, exposes derived read projections, and
// routes every mutation through validating entry points that persist the
// full snapshot on write.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"quotely/internal/domain/entities"
	"quotely/internal/store/interfaces"
	"quotely/internal/totals"
)

// IStore exposes the quote-composition operations consumed by the HTTP
// adapter. Read projections return copies; callers never hold a mutable
// alias to canonical state and must submit changes back through the
// mutation entry points.
type IStore interface {
	ListQuotes() []entities.Quote
	ListTemplates() []entities.Quote
	ListProjects() []entities.Project
	ListContacts() []entities.Contact
	ListDomains() []entities.BusinessDomain
	GetQuoteDetail(id string) (entities.QuoteDetail, error)
	GetTemplateDetail(id string) (entities.QuoteDetail, error)
	GetQuoteByShareToken(token string) (entities.QuoteDetail, error)
	ResolveDomain(id string) (*entities.BusinessDomain, error)
	Search(query string) []entities.SearchResult

	CreateQuote(ctx context.Context, createdBy string) (entities.QuoteDetail, error)
	CreateTemplate(ctx context.Context, createdBy string) (entities.QuoteDetail, error)
	SaveQuoteDetails(ctx context.Context, detail entities.QuoteDetail) (entities.Quote, error)
	SaveTemplateDetails(ctx context.Context, detail entities.QuoteDetail) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
	CreateQuoteFromTemplate(ctx context.Context, templateID string) (entities.QuoteDetail, error)
	DuplicateQuote(ctx context.Context, id string) (entities.QuoteDetail, error)
	MoveSection(ctx context.Context, parentID string, from, to int) ([]entities.QuoteSection, error)
	MoveLineItem(ctx context.Context, parentID, fromSectionID, toSectionID string, from, to int) ([]entities.QuoteLineItem, error)
	DeleteSection(ctx context.Context, parentID, sectionID string) error
	ApproveQuoteByShareToken(ctx context.Context, token, code string) (entities.Quote, error)

	SaveProject(ctx context.Context, p entities.Project) (entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
	SaveContact(ctx context.Context, c entities.Contact) (entities.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	SaveDomain(ctx context.Context, d entities.BusinessDomain) (entities.BusinessDomain, error)
	DeleteDomain(ctx context.Context, id string) error
}

// Store is the canonical owner of all collections. Mutations are atomic
// from the caller's point of view: state is fully updated and persisted
// before the entry point returns.
type Store struct {
	mu        sync.RWMutex
	snapshots interfaces.ISnapshotStore

	// newID allocates entity ids and share tokens. Injectable so tests can
	// use deterministic sequences; uniqueness is its contract, not any
	// particular scheme.
	newID func() string
	now   func() time.Time

	quotes    []entities.Quote
	templates []entities.Quote
	projects  []entities.Project
	contacts  []entities.Contact
	domains   []entities.BusinessDomain
	sections  []entities.QuoteSection
	lineItems []entities.QuoteLineItem

	// memoMu guards rateMemo so read projections holding s.mu.RLock can
	// still fill the cache.
	memoMu   sync.Mutex
	rateMemo map[string]*rateMemoEntry
}

var _ IStore = (*Store)(nil)

// New builds a Store backed by the given snapshot collaborator. When no
// snapshot exists yet the seed dataset is applied and persisted right away,
// so subsequent loads are deterministic. A failing load falls back to the
// seed as well; the failure is logged, never fatal.
func New(ctx context.Context, snapshots interfaces.ISnapshotStore) *Store {
	s := &Store{
		snapshots: snapshots,
		newID:     uuid.NewString,
		now:       func() time.Time { return time.Now().UTC() },
		rateMemo:  make(map[string]*rateMemoEntry),
	}

	snap, found, err := snapshots.Load(ctx)
	switch {
	case err != nil:
		slog.Error("snapshot load failed, falling back to seed dataset", "error", err)
		s.apply(Seed())
		s.persist(ctx)
	case !found:
		slog.Info("no snapshot found, seeding initial dataset")
		s.apply(Seed())
		s.persist(ctx)
	default:
		s.apply(snap)
	}
	return s
}

func (s *Store) apply(snap *entities.Snapshot) {
	s.quotes = snap.Quotes
	s.templates = snap.Templates
	s.projects = snap.Projects
	s.contacts = snap.Contacts
	s.domains = snap.Domains
	s.sections = snap.Sections
	s.lineItems = snap.LineItems
}

// persist saves the current state of all seven collections together. Must
// be called with s.mu held. A persistence failure is logged and swallowed:
// the in-memory state is authoritative for the running process.
func (s *Store) persist(ctx context.Context) {
	snap := &entities.Snapshot{
		Quotes:    s.quotes,
		Templates: s.templates,
		Projects:  s.projects,
		Contacts:  s.contacts,
		Domains:   s.domains,
		Sections:  s.sections,
		LineItems: s.lineItems,
	}
	if err := s.snapshots.Save(ctx, snap.Clone()); err != nil {
		slog.Error("snapshot save failed, continuing with in-memory state", "error", err)
	}
}

// --- Read projections ---

func (s *Store) ListQuotes() []entities.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Quote(nil), s.quotes...)
}

func (s *Store) ListTemplates() []entities.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Quote(nil), s.templates...)
}

func (s *Store) ListProjects() []entities.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Project(nil), s.projects...)
}

func (s *Store) ListContacts() []entities.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Contact(nil), s.contacts...)
}

// GetQuoteDetail returns a quote with its sections and line items in
// display order.
func (s *Store) GetQuoteDetail(id string) (entities.QuoteDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := findQuote(s.quotes, id)
	if !ok {
		return entities.QuoteDetail{}, ErrQuoteNotFound
	}
	return s.detailLocked(q), nil
}

func (s *Store) GetTemplateDetail(id string) (entities.QuoteDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := findQuote(s.templates, id)
	if !ok {
		return entities.QuoteDetail{}, ErrTemplateNotFound
	}
	return s.detailLocked(t), nil
}

// GetQuoteByShareToken resolves a quote by its share token, independent of
// its id, for the external read-only/approval view.
func (s *Store) GetQuoteByShareToken(token string) (entities.QuoteDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.quotes {
		if q.ShareToken == token {
			return s.detailLocked(q), nil
		}
	}
	return entities.QuoteDetail{}, ErrShareTokenNotFound
}

func (s *Store) detailLocked(q entities.Quote) entities.QuoteDetail {
	return entities.QuoteDetail{
		Quote:     q,
		Sections:  s.sectionsForLocked(q.ID),
		LineItems: s.itemsForLocked(q.ID),
	}
}

func (s *Store) sectionsForLocked(parentID string) []entities.QuoteSection {
	var out []entities.QuoteSection
	for _, sec := range s.sections {
		if sec.QuoteID == parentID {
			out = append(out, sec)
		}
	}
	return totals.SortSections(out)
}

func (s *Store) itemsForLocked(parentID string) []entities.QuoteLineItem {
	var out []entities.QuoteLineItem
	for _, it := range s.lineItems {
		if it.QuoteID == parentID {
			out = append(out, it)
		}
	}
	return totals.SortItems(out)
}

func findQuote(list []entities.Quote, id string) (entities.Quote, bool) {
	for _, q := range list {
		if q.ID == id {
			return q, true
		}
	}
	return entities.Quote{}, false
}
