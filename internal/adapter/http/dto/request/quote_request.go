package request

import (
	"quotely/internal/domain/entities"
)

// CreateQuoteRequest starts a blank quote or template. CreatedBy is
// optional; the store substitutes a default author when it is empty.
type CreateQuoteRequest struct {
	CreatedBy string `json:"created_by"`
}

type QuoteSectionRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsHidden  bool   `json:"is_hidden"`
}

type QuoteLineItemRequest struct {
	ID          string  `json:"id"`
	SectionID   string  `json:"section_id"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	StoryPoints int     `json:"story_points"`
	SortOrder   int     `json:"sort_order"`
}

// SaveQuoteRequest is the full editable state of a quote or template.
// Saves replace the section/line-item subtree wholesale; ordering and
// totals are recomputed server-side, so the submitted sort orders only
// need to express relative position.
type SaveQuoteRequest struct {
	Title            string                 `json:"title" binding:"required"`
	Status           string                 `json:"status"`
	BusinessDomainID string                 `json:"business_domain_id"`
	ProjectID        string                 `json:"project_id"`
	ContactID        string                 `json:"contact_id"`
	PricePerHour     float64                `json:"price_per_hour"`
	Description      string                 `json:"description"`
	PPMCode          string                 `json:"ppm_code"`
	AFASCode         string                 `json:"afas_code"`
	Sections         []QuoteSectionRequest  `json:"sections"`
	LineItems        []QuoteLineItemRequest `json:"line_items"`
}

// ToDetail translates the payload into the domain bundle for the quote
// identified by id. Fields the client cannot set (share token, author,
// dates, total caches) are left zero; the store preserves or derives them.
func (r SaveQuoteRequest) ToDetail(id string) entities.QuoteDetail {
	sections := make([]entities.QuoteSection, len(r.Sections))
	for i, sec := range r.Sections {
		sections[i] = entities.QuoteSection{
			ID:        sec.ID,
			QuoteID:   id,
			Title:     sec.Title,
			SortOrder: sec.SortOrder,
			IsHidden:  sec.IsHidden,
		}
	}

	items := make([]entities.QuoteLineItem, len(r.LineItems))
	for i, it := range r.LineItems {
		items[i] = entities.QuoteLineItem{
			ID:          it.ID,
			QuoteID:     id,
			SectionID:   it.SectionID,
			Title:       it.Title,
			Description: it.Description,
			Hours:       it.Hours,
			StoryPoints: it.StoryPoints,
			SortOrder:   it.SortOrder,
		}
	}

	return entities.QuoteDetail{
		Quote: entities.Quote{
			ID:               id,
			Title:            r.Title,
			Status:           entities.QuoteStatus(r.Status),
			BusinessDomainID: r.BusinessDomainID,
			ProjectID:        r.ProjectID,
			ContactID:        r.ContactID,
			PricePerHour:     r.PricePerHour,
			Description:      r.Description,
			PPMCode:          r.PPMCode,
			AFASCode:         r.AFASCode,
		},
		Sections:  sections,
		LineItems: items,
	}
}

// MoveSectionRequest repositions one section among its siblings.
type MoveSectionRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// MoveLineItemRequest repositions a line item within a section or across
// two sections of the same quote. Empty section ids address the implicit
// first-section scope.
type MoveLineItemRequest struct {
	FromSectionID string `json:"from_section_id"`
	ToSectionID   string `json:"to_section_id"`
	From          int    `json:"from"`
	To            int    `json:"to"`
}

// ApproveQuoteRequest carries the 5-digit approval code entered on the
// shared view.
type ApproveQuoteRequest struct {
	Code string `json:"code" binding:"required"`
}
