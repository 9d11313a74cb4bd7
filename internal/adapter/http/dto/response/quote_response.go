package response

import (
	"time"

	"quotely/internal/domain/entities"
	"quotely/internal/totals"
)

type QuoteResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Status           string    `json:"status"`
	BusinessDomainID string    `json:"business_domain_id"`
	ProjectID        string    `json:"project_id"`
	ContactID        string    `json:"contact_id"`
	PricePerHour     float64   `json:"price_per_hour"`
	TotalHours       float64   `json:"total_hours"`
	TotalPoints      int       `json:"total_points"`
	TotalPrice       float64   `json:"total_price"`
	Description      string    `json:"description"`
	RequestDate      time.Time `json:"request_date"`
	CreatedBy        string    `json:"created_by"`
	UpdatedAt        time.Time `json:"updated_at"`
	ShareToken       string    `json:"share_token"`
	PPMCode          string    `json:"ppm_code,omitempty"`
	AFASCode         string    `json:"afas_code,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:               q.ID,
		Title:            q.Title,
		Status:           string(q.Status),
		BusinessDomainID: q.BusinessDomainID,
		ProjectID:        q.ProjectID,
		ContactID:        q.ContactID,
		PricePerHour:     q.PricePerHour,
		TotalHours:       q.TotalHours,
		TotalPoints:      q.TotalPoints,
		TotalPrice:       q.TotalPrice,
		Description:      q.Description,
		RequestDate:      q.RequestDate,
		CreatedBy:        q.CreatedBy,
		UpdatedAt:        q.UpdatedAt,
		ShareToken:       q.ShareToken,
		PPMCode:          q.PPMCode,
		AFASCode:         q.AFASCode,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}
	return out
}

type QuoteSectionResponse struct {
	ID        string `json:"id"`
	QuoteID   string `json:"quote_id"`
	Title     string `json:"title"`
	SortOrder int    `json:"sort_order"`
	IsHidden  bool   `json:"is_hidden"`
}

func FromSection(s entities.QuoteSection) QuoteSectionResponse {
	return QuoteSectionResponse{
		ID:        s.ID,
		QuoteID:   s.QuoteID,
		Title:     s.Title,
		SortOrder: s.SortOrder,
		IsHidden:  s.IsHidden,
	}
}

func FromSections(sections []entities.QuoteSection) []QuoteSectionResponse {
	out := make([]QuoteSectionResponse, len(sections))
	for i, s := range sections {
		out[i] = FromSection(s)
	}
	return out
}

type QuoteLineItemResponse struct {
	ID          string  `json:"id"`
	QuoteID     string  `json:"quote_id"`
	SectionID   string  `json:"section_id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	StoryPoints int     `json:"story_points"`
	SortOrder   int     `json:"sort_order"`
}

func FromLineItem(it entities.QuoteLineItem) QuoteLineItemResponse {
	return QuoteLineItemResponse{
		ID:          it.ID,
		QuoteID:     it.QuoteID,
		SectionID:   it.SectionID,
		Title:       it.Title,
		Description: it.Description,
		Hours:       it.Hours,
		StoryPoints: it.StoryPoints,
		SortOrder:   it.SortOrder,
	}
}

func FromLineItems(items []entities.QuoteLineItem) []QuoteLineItemResponse {
	out := make([]QuoteLineItemResponse, len(items))
	for i, it := range items {
		out[i] = FromLineItem(it)
	}
	return out
}

// QuoteSummaryResponse exposes the live aggregates of a subtree: the
// client figures exclude hidden sections, the internal figures never do.
type QuoteSummaryResponse struct {
	ClientHours    float64 `json:"client_hours"`
	ClientPoints   int     `json:"client_points"`
	ClientPrice    float64 `json:"client_price"`
	InternalHours  float64 `json:"internal_hours"`
	InternalPoints int     `json:"internal_points"`
	InternalPrice  float64 `json:"internal_price"`
}

func fromSummary(s totals.Summary) QuoteSummaryResponse {
	return QuoteSummaryResponse{
		ClientHours:    s.ClientHours,
		ClientPoints:   s.ClientPoints,
		ClientPrice:    s.ClientPrice,
		InternalHours:  s.InternalHours,
		InternalPoints: s.InternalPoints,
		InternalPrice:  s.InternalPrice,
	}
}

type QuoteDetailResponse struct {
	Quote     QuoteResponse           `json:"quote"`
	Sections  []QuoteSectionResponse  `json:"sections"`
	LineItems []QuoteLineItemResponse `json:"line_items"`
	Summary   QuoteSummaryResponse    `json:"summary"`
}

// FromQuoteDetail projects the bundle and computes its summary on the fly,
// so a detail response always reflects the subtree it carries.
func FromQuoteDetail(d entities.QuoteDetail) QuoteDetailResponse {
	return QuoteDetailResponse{
		Quote:     FromQuote(d.Quote),
		Sections:  FromSections(d.Sections),
		LineItems: FromLineItems(d.LineItems),
		Summary:   fromSummary(totals.Compute(d.Quote, d.Sections, d.LineItems)),
	}
}
