package response

import (
	"quotely/internal/domain/entities"
	"quotely/internal/totals"
)

// SharedSummaryResponse carries the client-facing aggregates only; the
// internal figures are never exposed through a share link.
type SharedSummaryResponse struct {
	Hours  float64 `json:"hours"`
	Points int     `json:"points"`
	Price  float64 `json:"price"`
}

type SharedQuoteResponse struct {
	Quote     QuoteResponse           `json:"quote"`
	Sections  []QuoteSectionResponse  `json:"sections"`
	LineItems []QuoteLineItemResponse `json:"line_items"`
	Summary   SharedSummaryResponse   `json:"summary"`
}

// FromSharedQuoteDetail projects the client view of a quote: hidden
// sections are dropped together with the items shown under them, and the
// summary carries the client figures. An item without an explicit section
// follows the visibility of the first section by sort order.
func FromSharedQuoteDetail(d entities.QuoteDetail) SharedQuoteResponse {
	ordered := totals.SortSections(d.Sections)
	visible := make(map[string]bool, len(ordered))
	sections := make([]QuoteSectionResponse, 0, len(ordered))
	for _, s := range ordered {
		if s.IsHidden {
			continue
		}
		visible[s.ID] = true
		sections = append(sections, FromSection(s))
	}

	fallbackID := totals.FirstSectionID(d.Sections)
	items := make([]QuoteLineItemResponse, 0, len(d.LineItems))
	for _, it := range totals.SortItems(d.LineItems) {
		effective := it.SectionID
		if effective == "" {
			effective = fallbackID
		}
		if visible[effective] {
			items = append(items, FromLineItem(it))
		}
	}

	sum := totals.Compute(d.Quote, d.Sections, d.LineItems)
	return SharedQuoteResponse{
		Quote:     FromQuote(d.Quote),
		Sections:  sections,
		LineItems: items,
		Summary: SharedSummaryResponse{
			Hours:  sum.ClientHours,
			Points: sum.ClientPoints,
			Price:  sum.ClientPrice,
		},
	}
}
