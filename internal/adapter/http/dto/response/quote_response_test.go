package response

import (
	"testing"

	"quotely/internal/domain/entities"
)

func TestFromQuoteDetail(t *testing.T) {
	detail := entities.QuoteDetail{
		Quote: entities.Quote{ID: "q1", Title: "Review", Status: entities.QuoteStatusShared, PricePerHour: 50},
		Sections: []entities.QuoteSection{
			{ID: "s1", QuoteID: "q1", Title: "General", SortOrder: 0},
			{ID: "s2", QuoteID: "q1", Title: "Internal", SortOrder: 1, IsHidden: true},
		},
		LineItems: []entities.QuoteLineItem{
			{ID: "i1", QuoteID: "q1", SectionID: "s1", Title: "Work", Hours: 10, StoryPoints: 3, SortOrder: 0},
			{ID: "i2", QuoteID: "q1", SectionID: "s2", Title: "Prep", Hours: 6, StoryPoints: 2, SortOrder: 0},
		},
	}

	out := FromQuoteDetail(detail)

	if out.Quote.ID != "q1" || out.Quote.Status != "Shared" {
		t.Fatalf("quote not projected: %+v", out.Quote)
	}
	if len(out.Sections) != 2 || !out.Sections[1].IsHidden {
		t.Fatalf("sections not projected: %+v", out.Sections)
	}
	if len(out.LineItems) != 2 {
		t.Fatalf("items not projected: %+v", out.LineItems)
	}

	// Hidden section excluded client-side, included internally.
	if out.Summary.ClientHours != 10 || out.Summary.ClientPrice != 500 {
		t.Fatalf("unexpected client summary: %+v", out.Summary)
	}
	if out.Summary.InternalHours != 16 || out.Summary.InternalPoints != 5 || out.Summary.InternalPrice != 800 {
		t.Fatalf("unexpected internal summary: %+v", out.Summary)
	}
}

func TestFromQuote_OptionalCodes(t *testing.T) {
	q := entities.Quote{ID: "q1", PPMCode: "PPM-9"}
	out := FromQuote(q)
	if out.PPMCode != "PPM-9" || out.AFASCode != "" {
		t.Fatalf("external codes not projected: %+v", out)
	}
}
