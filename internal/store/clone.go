package store

import (
	"context"

	"quotely/internal/domain/entities"
)

// cloneSubtree deep-copies a section/line-item subtree under a new parent.
// Every section gets a fresh id; copied line items are rewritten through
// the old-section-id -> new-section-id map. Items without an explicit
// section stay unset.
func cloneSubtree(sections []entities.QuoteSection, items []entities.QuoteLineItem, targetID string, newID func() string) ([]entities.QuoteSection, []entities.QuoteLineItem) {
	sectionIDMap := make(map[string]string, len(sections))
	newSections := make([]entities.QuoteSection, len(sections))
	for i, sec := range sections {
		copied := sec
		copied.ID = newID()
		copied.QuoteID = targetID
		sectionIDMap[sec.ID] = copied.ID
		newSections[i] = copied
	}

	newItems := make([]entities.QuoteLineItem, len(items))
	for i, it := range items {
		copied := it
		copied.ID = newID()
		copied.QuoteID = targetID
		copied.SectionID = sectionIDMap[it.SectionID]
		newItems[i] = copied
	}
	return newSections, newItems
}

// CreateQuoteFromTemplate instantiates a template into a fresh Draft
// quote: quote-level fields are copied except status, project and contact
// (cleared) and the date fields (set to now); the subtree is deep-copied
// with remapped ids; everything is appended in one atomic update.
func (s *Store) CreateQuoteFromTemplate(ctx context.Context, templateID string) (entities.QuoteDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	template, ok := findQuote(s.templates, templateID)
	if !ok {
		return entities.QuoteDetail{}, ErrTemplateNotFound
	}

	now := s.now()
	q := template
	q.ID = s.newID()
	q.Status = entities.QuoteStatusDraft
	q.ProjectID = ""
	q.ContactID = ""
	q.RequestDate = now
	q.UpdatedAt = now
	q.ShareToken = s.newID()

	sections, items := cloneSubtree(s.sectionsForLocked(templateID), s.itemsForLocked(templateID), q.ID, s.newID)

	s.quotes = append(s.quotes, q)
	s.sections = append(s.sections, sections...)
	s.lineItems = append(s.lineItems, items...)
	s.persist(ctx)

	return entities.QuoteDetail{Quote: q, Sections: sections, LineItems: items}, nil
}

// DuplicateQuote deep-copies an existing quote, marking the copy's title
// and always resetting it to Draft with a fresh share token.
func (s *Store) DuplicateQuote(ctx context.Context, id string) (entities.QuoteDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, ok := findQuote(s.quotes, id)
	if !ok {
		return entities.QuoteDetail{}, ErrQuoteNotFound
	}

	now := s.now()
	q := original
	q.ID = s.newID()
	q.Title = original.Title + " (Copy)"
	q.Status = entities.QuoteStatusDraft
	q.RequestDate = now
	q.UpdatedAt = now
	q.ShareToken = s.newID()

	sections, items := cloneSubtree(s.sectionsForLocked(id), s.itemsForLocked(id), q.ID, s.newID)

	s.quotes = append(s.quotes, q)
	s.sections = append(s.sections, sections...)
	s.lineItems = append(s.lineItems, items...)
	s.persist(ctx)

	return entities.QuoteDetail{Quote: q, Sections: sections, LineItems: items}, nil
}
