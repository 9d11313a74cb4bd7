package store

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strings"

	"quotely/internal/domain/entities"
	"quotely/internal/ordering"
	"quotely/internal/totals"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrTemplateNotFound    = errors.New("template not found")
	ErrQuoteInvalid        = errors.New("quote id is required")
	ErrNoSections          = errors.New("a quote must have at least one section")
	ErrNegativeHours       = errors.New("line item hours must be zero or positive")
	ErrUnknownSection      = errors.New("line item references a section outside the quote")
	ErrSectionNotFound     = errors.New("section not found")
	ErrNoGeneralSection    = errors.New("no general section available to take over the items")
	ErrShareTokenNotFound  = errors.New("share token not found")
	ErrInvalidApprovalCode = errors.New("approval code must be exactly 5 digits")
	ErrApprovalNotAllowed  = errors.New("quote status does not allow approval")
)

var approvalCodePattern = regexp.MustCompile(`^\d{5}$`)

const (
	defaultPricePerHour = 100
	generalSectionTitle = "General"
)

// CreateQuote creates a blank quote together with its mandatory "General"
// section; a section-less quote cannot exist.
func (s *Store) CreateQuote(ctx context.Context, createdBy string) (entities.QuoteDetail, error) {
	return s.createBlank(ctx, createdBy, false)
}

// CreateTemplate creates a blank template with its "General" section.
func (s *Store) CreateTemplate(ctx context.Context, createdBy string) (entities.QuoteDetail, error) {
	return s.createBlank(ctx, createdBy, true)
}

func (s *Store) createBlank(ctx context.Context, createdBy string, template bool) (entities.QuoteDetail, error) {
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		createdBy = "System"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	q := entities.Quote{
		ID:           s.newID(),
		Title:        "New Estimation",
		Status:       entities.QuoteStatusDraft,
		PricePerHour: defaultPricePerHour,
		RequestDate:  now,
		CreatedBy:    createdBy,
		UpdatedAt:    now,
		ShareToken:   s.newID(),
	}
	if template {
		q.Title = "New Template"
		q.Description = "A reusable template for future quotes."
	}
	general := entities.QuoteSection{
		ID:        s.newID(),
		QuoteID:   q.ID,
		Title:     generalSectionTitle,
		SortOrder: 0,
	}

	if template {
		s.templates = append(s.templates, q)
	} else {
		s.quotes = append(s.quotes, q)
	}
	s.sections = append(s.sections, general)
	s.persist(ctx)

	return entities.QuoteDetail{Quote: q, Sections: []entities.QuoteSection{general}}, nil
}

// SaveQuoteDetails validates and stores a quote together with its full
// subtree. The supplied sections and line items replace the quote's
// previous subtree wholesale; sort orders are re-normalized and the
// client-facing total caches are recomputed before the write.
func (s *Store) SaveQuoteDetails(ctx context.Context, detail entities.QuoteDetail) (entities.Quote, error) {
	return s.saveDetails(ctx, detail, false)
}

// SaveTemplateDetails is the template variant of SaveQuoteDetails. Template
// total caches cover all items since templates have no client view.
func (s *Store) SaveTemplateDetails(ctx context.Context, detail entities.QuoteDetail) (entities.Quote, error) {
	return s.saveDetails(ctx, detail, true)
}

func (s *Store) saveDetails(ctx context.Context, detail entities.QuoteDetail, template bool) (entities.Quote, error) {
	q := detail.Quote
	if strings.TrimSpace(q.ID) == "" {
		return entities.Quote{}, ErrQuoteInvalid
	}
	if len(detail.Sections) == 0 {
		return entities.Quote{}, ErrNoSections
	}

	sectionIDs := make(map[string]bool, len(detail.Sections))
	sections := make([]entities.QuoteSection, len(detail.Sections))
	for i, sec := range detail.Sections {
		sec.QuoteID = q.ID
		sections[i] = sec
		sectionIDs[sec.ID] = true
	}
	items := make([]entities.QuoteLineItem, len(detail.LineItems))
	for i, it := range detail.LineItems {
		if it.Hours < 0 || math.IsNaN(it.Hours) {
			return entities.Quote{}, ErrNegativeHours
		}
		if it.SectionID != "" && !sectionIDs[it.SectionID] {
			return entities.Quote{}, ErrUnknownSection
		}
		it.QuoteID = q.ID
		items[i] = it
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := &s.quotes
	if template {
		list = &s.templates
	}
	prior, exists := findQuote(*list, q.ID)

	// Server-owned fields are never taken from the payload: an existing
	// quote keeps its share token, author and request date for life, a new
	// one gets them minted here.
	if exists {
		q.ShareToken = prior.ShareToken
		q.CreatedBy = prior.CreatedBy
		q.RequestDate = prior.RequestDate
	} else {
		q.ShareToken = s.newID()
		if q.RequestDate.IsZero() {
			q.RequestDate = s.now()
		}
	}

	// Assigning a different domain adopts its resolved rate. A cleared
	// domain keeps the submitted price per hour.
	if q.BusinessDomainID != "" && (!exists || q.BusinessDomainID != prior.BusinessDomainID) {
		resolved, ok := s.resolveDomainLocked(q.BusinessDomainID)
		if !ok {
			return entities.Quote{}, ErrDomainNotFound
		}
		q.PricePerHour = resolved.HourlyRate
	}

	sections = ordering.NormalizeSections(totals.SortSections(sections))
	items = normalizeItemScopes(items)

	sum := totals.Compute(q, sections, items)
	if template {
		q.TotalHours = sum.InternalHours
		q.TotalPoints = sum.InternalPoints
		q.TotalPrice = sum.InternalPrice
	} else {
		q.TotalHours = sum.ClientHours
		q.TotalPoints = sum.ClientPoints
		q.TotalPrice = sum.ClientPrice
	}
	q.UpdatedAt = s.now()

	if exists {
		for i := range *list {
			if (*list)[i].ID == q.ID {
				(*list)[i] = q
				break
			}
		}
	} else {
		*list = append(*list, q)
	}
	s.replaceSubtreeLocked(q.ID, sections, items)
	s.persist(ctx)
	return q, nil
}

// DeleteQuote removes a quote and cascades to its sections and line items.
func (s *Store) DeleteQuote(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := findQuote(s.quotes, id); !ok {
		return ErrQuoteNotFound
	}
	kept := s.quotes[:0]
	for _, q := range s.quotes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	s.quotes = kept
	s.replaceSubtreeLocked(id, nil, nil)
	s.persist(ctx)
	return nil
}

// MoveSection reorders a section within its quote or template.
func (s *Store) MoveSection(ctx context.Context, parentID string, from, to int) ([]entities.QuoteSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.parentExistsLocked(parentID) {
		return nil, ErrQuoteNotFound
	}
	moved := ordering.MoveSection(s.sectionsForLocked(parentID), from, to)
	s.writeSectionsLocked(parentID, moved)
	s.persist(ctx)
	return moved, nil
}

// MoveLineItem reorders a line item inside its section, or transfers it
// into another section of the same quote when the target differs. Only the
// two affected scopes are renumbered.
func (s *Store) MoveLineItem(ctx context.Context, parentID, fromSectionID, toSectionID string, from, to int) ([]entities.QuoteLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.parentExistsLocked(parentID) {
		return nil, ErrQuoteNotFound
	}
	sections := s.sectionsForLocked(parentID)
	fallbackID := totals.FirstSectionID(sections)

	// An empty scope id addresses the implicit first-section scope.
	if fromSectionID == "" {
		fromSectionID = fallbackID
	}
	if toSectionID == "" {
		toSectionID = fallbackID
	}
	if !sectionInList(sections, fromSectionID) || !sectionInList(sections, toSectionID) {
		return nil, ErrSectionNotFound
	}

	items := s.itemsForLocked(parentID)

	src := itemsInScope(items, fromSectionID, fallbackID)
	if fromSectionID == toSectionID {
		s.writeItemsLocked(ordering.MoveItemWithin(src, from, to))
	} else {
		dst := itemsInScope(items, toSectionID, fallbackID)
		newSrc, newDst := ordering.MoveItemAcross(src, dst, from, to, toSectionID)
		s.writeItemsLocked(newSrc)
		s.writeItemsLocked(newDst)
	}
	s.persist(ctx)
	return s.itemsForLocked(parentID), nil
}

// DeleteSection removes a section. Items belonging to it (explicitly or by
// first-section fallback) are re-parented to a remaining section titled
// "General"; without one the deletion fails and no state changes.
func (s *Store) DeleteSection(ctx context.Context, parentID, sectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sections := s.sectionsForLocked(parentID)
	if !sectionInList(sections, sectionID) {
		return ErrSectionNotFound
	}
	fallbackID := totals.FirstSectionID(sections)

	affected := itemsInScope(s.itemsForLocked(parentID), sectionID, fallbackID)
	if len(affected) > 0 {
		general, ok := findGeneralSection(sections, sectionID)
		if !ok {
			return ErrNoGeneralSection
		}
		moved := make(map[string]bool, len(affected))
		for _, it := range affected {
			moved[it.ID] = true
		}
		for i := range s.lineItems {
			if moved[s.lineItems[i].ID] {
				s.lineItems[i].SectionID = general.ID
			}
		}
	}

	kept := make([]entities.QuoteSection, 0, len(sections)-1)
	for _, sec := range sections {
		if sec.ID != sectionID {
			kept = append(kept, sec)
		}
	}
	s.writeSectionsLocked(parentID, ordering.NormalizeSections(kept))
	s.writeItemsLocked(normalizeItemScopes(s.itemsForLocked(parentID)))
	s.persist(ctx)
	return nil
}

// ApproveQuoteByShareToken transitions a shared quote to Approved, gated on
// its current status and a valid 5-digit approval code. The code is only
// checked, never persisted.
func (s *Store) ApproveQuoteByShareToken(ctx context.Context, token, code string) (entities.Quote, error) {
	if !approvalCodePattern.MatchString(code) {
		return entities.Quote{}, ErrInvalidApprovalCode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quotes {
		if s.quotes[i].ShareToken != token {
			continue
		}
		if !s.quotes[i].ApprovalAllowed() {
			return entities.Quote{}, ErrApprovalNotAllowed
		}
		s.quotes[i].Status = entities.QuoteStatusApproved
		s.quotes[i].UpdatedAt = s.now()
		s.persist(ctx)
		return s.quotes[i], nil
	}
	return entities.Quote{}, ErrShareTokenNotFound
}

// --- subtree helpers (callers hold s.mu) ---

// replaceSubtreeLocked swaps a parent's entire section and line-item set.
func (s *Store) replaceSubtreeLocked(parentID string, sections []entities.QuoteSection, items []entities.QuoteLineItem) {
	keptSections := make([]entities.QuoteSection, 0, len(s.sections))
	for _, sec := range s.sections {
		if sec.QuoteID != parentID {
			keptSections = append(keptSections, sec)
		}
	}
	s.sections = append(keptSections, sections...)

	keptItems := make([]entities.QuoteLineItem, 0, len(s.lineItems))
	for _, it := range s.lineItems {
		if it.QuoteID != parentID {
			keptItems = append(keptItems, it)
		}
	}
	s.lineItems = append(keptItems, items...)
}

func (s *Store) writeSectionsLocked(parentID string, updated []entities.QuoteSection) {
	byID := make(map[string]entities.QuoteSection, len(updated))
	for _, sec := range updated {
		byID[sec.ID] = sec
	}
	kept := make([]entities.QuoteSection, 0, len(s.sections))
	for _, sec := range s.sections {
		if sec.QuoteID != parentID {
			kept = append(kept, sec)
			continue
		}
		if u, ok := byID[sec.ID]; ok {
			kept = append(kept, u)
		}
	}
	s.sections = kept
}

func (s *Store) writeItemsLocked(updated []entities.QuoteLineItem) {
	byID := make(map[string]entities.QuoteLineItem, len(updated))
	for _, it := range updated {
		byID[it.ID] = it
	}
	for i := range s.lineItems {
		if u, ok := byID[s.lineItems[i].ID]; ok {
			s.lineItems[i] = u
		}
	}
}

func (s *Store) parentExistsLocked(parentID string) bool {
	if _, ok := findQuote(s.quotes, parentID); ok {
		return true
	}
	_, ok := findQuote(s.templates, parentID)
	return ok
}

func sectionInList(sections []entities.QuoteSection, id string) bool {
	for _, sec := range sections {
		if sec.ID == id {
			return true
		}
	}
	return false
}

// itemsInScope returns the items displayed under sectionID, in sort order:
// explicit members plus, when sectionID is the first section, the items
// without an explicit section.
func itemsInScope(items []entities.QuoteLineItem, sectionID, fallbackID string) []entities.QuoteLineItem {
	var out []entities.QuoteLineItem
	for _, it := range items {
		effective := it.SectionID
		if effective == "" {
			effective = fallbackID
		}
		if effective == sectionID {
			out = append(out, it)
		}
	}
	return totals.SortItems(out)
}

// findGeneralSection locates a section literally titled "General"
// (case-insensitive) other than the one being deleted.
func findGeneralSection(sections []entities.QuoteSection, excludeID string) (entities.QuoteSection, bool) {
	for _, sec := range sections {
		if sec.ID != excludeID && strings.EqualFold(strings.TrimSpace(sec.Title), generalSectionTitle) {
			return sec, true
		}
	}
	return entities.QuoteSection{}, false
}

// normalizeItemScopes renumbers items per explicit section scope while
// preserving their relative order. Items without an explicit section form
// their own scope.
func normalizeItemScopes(items []entities.QuoteLineItem) []entities.QuoteLineItem {
	ordered := totals.SortItems(items)
	var keys []string
	groups := make(map[string][]entities.QuoteLineItem)
	for _, it := range ordered {
		if _, seen := groups[it.SectionID]; !seen {
			keys = append(keys, it.SectionID)
		}
		groups[it.SectionID] = append(groups[it.SectionID], it)
	}
	out := make([]entities.QuoteLineItem, 0, len(items))
	for _, key := range keys {
		out = append(out, ordering.NormalizeItems(groups[key])...)
	}
	return out
}
