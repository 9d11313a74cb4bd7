// Package totals computes the derived aggregates of a quote or template.
// These are pure read-side projections over the current subtree; they are
// not the persisted total caches, which the store writes only at save time.
package totals

import (
	"sort"

	"quotely/internal/domain/entities"
)

// Summary carries both the client-visible and the internal aggregates of
// one quote. ClientHours <= InternalHours always; equality holds iff no
// section is hidden.
type Summary struct {
	ClientHours    float64 `json:"client_hours"`
	ClientPoints   int     `json:"client_points"`
	ClientPrice    float64 `json:"client_price"`
	InternalHours  float64 `json:"internal_hours"`
	InternalPoints int     `json:"internal_points"`
	InternalPrice  float64 `json:"internal_price"`
}

// Compute derives the full summary for a quote and its subtree.
func Compute(quote entities.Quote, sections []entities.QuoteSection, items []entities.QuoteLineItem) Summary {
	clientHours, clientPoints := clientSums(sections, items)
	internalHours, internalPoints := internalSums(items)
	return Summary{
		ClientHours:    clientHours,
		ClientPoints:   clientPoints,
		ClientPrice:    Price(clientHours, quote.PricePerHour),
		InternalHours:  internalHours,
		InternalPoints: internalPoints,
		InternalPrice:  Price(internalHours, quote.PricePerHour),
	}
}

// InternalHours sums hours over every line item, regardless of section
// visibility.
func InternalHours(items []entities.QuoteLineItem) float64 {
	hours, _ := internalSums(items)
	return hours
}

// ClientHours sums hours over items whose effective section is not hidden.
// The effective section is the item's explicit SectionID, or the first
// section by sort order when absent.
func ClientHours(sections []entities.QuoteSection, items []entities.QuoteLineItem) float64 {
	hours, _ := clientSums(sections, items)
	return hours
}

// Price converts an hour total into money at the quote's current rate.
func Price(hours, pricePerHour float64) float64 {
	return hours * pricePerHour
}

func internalSums(items []entities.QuoteLineItem) (hours float64, points int) {
	for _, it := range items {
		hours += it.Hours
		points += it.StoryPoints
	}
	return hours, points
}

func clientSums(sections []entities.QuoteSection, items []entities.QuoteLineItem) (hours float64, points int) {
	visible := make(map[string]bool, len(sections))
	for _, s := range sections {
		visible[s.ID] = !s.IsHidden
	}
	fallbackID := FirstSectionID(sections)
	for _, it := range items {
		sectionID := it.SectionID
		if sectionID == "" {
			sectionID = fallbackID
		}
		if sectionID == "" || !visible[sectionID] {
			continue
		}
		hours += it.Hours
		points += it.StoryPoints
	}
	return hours, points
}

// FirstSectionID returns the id of the first section by sort order, or ""
// when the list is empty. It is the fallback parent for items without an
// explicit section.
func FirstSectionID(sections []entities.QuoteSection) string {
	if len(sections) == 0 {
		return ""
	}
	first := sections[0]
	for _, s := range sections[1:] {
		if s.SortOrder < first.SortOrder {
			first = s
		}
	}
	return first.ID
}

// SortSections returns the sections in display order (by SortOrder, stable).
func SortSections(sections []entities.QuoteSection) []entities.QuoteSection {
	out := append([]entities.QuoteSection(nil), sections...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// SortItems returns the line items in display order (by SortOrder, stable).
func SortItems(items []entities.QuoteLineItem) []entities.QuoteLineItem {
	out := append([]entities.QuoteLineItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}
