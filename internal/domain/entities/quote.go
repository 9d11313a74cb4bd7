package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - Draft and Shared quotes are editable; Approved/Canceled are frozen.
//   - The Shared -> Approved transition is driven by the client-facing
//     approval flow and requires a valid approval code.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "Draft"
	QuoteStatusShared   QuoteStatus = "Shared"
	QuoteStatusWaiting  QuoteStatus = "Waiting for approval"
	QuoteStatusApproved QuoteStatus = "Approved"
	QuoteStatusCanceled QuoteStatus = "Canceled"
)

// Quote is a priced collection of estimated work, organized into sections.
// The same shape is reused for templates; a record lives either in the
// quotes collection or the templates collection, never both.
//
// TotalHours/TotalPoints/TotalPrice are caches recomputed at save time.
// Between saves the live totals come from the totals package, not from
// these fields.
type Quote struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Status           QuoteStatus `json:"status"`
	BusinessDomainID string      `json:"business_domain_id"`
	ProjectID        string      `json:"project_id"`
	ContactID        string      `json:"contact_id"`
	PricePerHour     float64     `json:"price_per_hour"`
	TotalHours       float64     `json:"total_hours"`
	TotalPoints      int         `json:"total_points"`
	TotalPrice       float64     `json:"total_price"`
	Description      string      `json:"description"`
	RequestDate      time.Time   `json:"request_date"`
	CreatedBy        string      `json:"created_by"`
	UpdatedAt        time.Time   `json:"updated_at"`

	// ShareToken is an opaque unique string resolving the quote for the
	// external read-only/approval view, independent of ID.
	ShareToken string `json:"share_token"`

	// Optional external system codes.
	PPMCode  string `json:"ppm_code,omitempty"`
	AFASCode string `json:"afas_code,omitempty"`
}

// Editable reports whether the quote still accepts content changes.
func (q Quote) Editable() bool {
	return q.Status == QuoteStatusDraft || q.Status == QuoteStatusShared
}

// ApprovalAllowed reports whether the quote may transition to Approved.
func (q Quote) ApprovalAllowed() bool {
	return q.Status == QuoteStatusShared || q.Status == QuoteStatusWaiting
}

// QuoteSection is an ordered, optionally hidden grouping of line items
// within one quote or template. SortOrder values among sections sharing the
// same QuoteID form a contiguous 0..N-1 sequence after any mutation.
type QuoteSection struct {
	ID        string `json:"id"`
	QuoteID   string `json:"quote_id"`
	Title     string `json:"title"`
	SortOrder int    `json:"sort_order"`
	IsHidden  bool   `json:"is_hidden"`
}

// QuoteLineItem is a single estimated task. SectionID may be empty, in
// which case the item belongs to its quote's first section by sort order.
// SortOrder is contiguous among items sharing the same SectionID.
type QuoteLineItem struct {
	ID          string  `json:"id"`
	QuoteID     string  `json:"quote_id"`
	SectionID   string  `json:"section_id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	StoryPoints int     `json:"story_points"`
	SortOrder   int     `json:"sort_order"`
}

// QuoteDetail bundles a quote (or template) with its full subtree. Saves
// replace the subtree wholesale, so the bundle is the unit of exchange
// between the store and its callers.
type QuoteDetail struct {
	Quote     Quote           `json:"quote"`
	Sections  []QuoteSection  `json:"sections"`
	LineItems []QuoteLineItem `json:"line_items"`
}
