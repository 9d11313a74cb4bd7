// Package ordering implements the pure data transforms behind section and
// line-item reordering. The UI gesture (drag/drop) is abstracted away: a
// drop event maps to exactly one call taking indices and, for cross-section
// moves, the destination section id.
//
// Every function returns fresh slices with sort orders reassigned to the
// positional index, so the 0..N-1 contiguity invariant holds after any
// call. Applying the same call twice with identical arguments yields the
// same result (idempotent post-normalization).
package ordering

import "quotely/internal/domain/entities"

// MoveSection removes the section at from and reinserts it at to (clamped
// to valid bounds), then renumbers every section. An out-of-range from is a
// no-op beyond normalization.
func MoveSection(sections []entities.QuoteSection, from, to int) []entities.QuoteSection {
	out := append([]entities.QuoteSection(nil), sections...)
	if from < 0 || from >= len(out) {
		return NormalizeSections(out)
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	to = clamp(to, len(out))
	out = append(out[:to], append([]entities.QuoteSection{moved}, out[to:]...)...)
	return NormalizeSections(out)
}

// MoveItemWithin reorders a line item inside its own section.
func MoveItemWithin(items []entities.QuoteLineItem, from, to int) []entities.QuoteLineItem {
	out := append([]entities.QuoteLineItem(nil), items...)
	if from < 0 || from >= len(out) {
		return NormalizeItems(out)
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	to = clamp(to, len(out))
	out = append(out[:to], append([]entities.QuoteLineItem{moved}, out[to:]...)...)
	return NormalizeItems(out)
}

// MoveItemAcross transfers the item at from in src into dst at to,
// reparenting it to newSectionID. Both the source remainder and the
// destination result are renumbered independently; no other scope is
// touched.
func MoveItemAcross(src, dst []entities.QuoteLineItem, from, to int, newSectionID string) (source, dest []entities.QuoteLineItem) {
	source = append([]entities.QuoteLineItem(nil), src...)
	dest = append([]entities.QuoteLineItem(nil), dst...)
	if from < 0 || from >= len(source) {
		return NormalizeItems(source), NormalizeItems(dest)
	}
	moved := source[from]
	moved.SectionID = newSectionID
	source = append(source[:from], source[from+1:]...)
	to = clamp(to, len(dest))
	dest = append(dest[:to], append([]entities.QuoteLineItem{moved}, dest[to:]...)...)
	return NormalizeItems(source), NormalizeItems(dest)
}

// NormalizeSections reassigns each section's SortOrder to its index.
func NormalizeSections(sections []entities.QuoteSection) []entities.QuoteSection {
	out := append([]entities.QuoteSection(nil), sections...)
	for i := range out {
		out[i].SortOrder = i
	}
	return out
}

// NormalizeItems reassigns each item's SortOrder to its index.
func NormalizeItems(items []entities.QuoteLineItem) []entities.QuoteLineItem {
	out := append([]entities.QuoteLineItem(nil), items...)
	for i := range out {
		out[i].SortOrder = i
	}
	return out
}

// clamp bounds an insertion index to [0, n].
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
