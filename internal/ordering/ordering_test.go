package ordering

import (
	"testing"

	"quotely/internal/domain/entities"
)

func sections(titles ...string) []entities.QuoteSection {
	out := make([]entities.QuoteSection, len(titles))
	for i, title := range titles {
		out[i] = entities.QuoteSection{ID: "s-" + title, QuoteID: "q1", Title: title, SortOrder: i}
	}
	return out
}

func items(sectionID string, titles ...string) []entities.QuoteLineItem {
	out := make([]entities.QuoteLineItem, len(titles))
	for i, title := range titles {
		out[i] = entities.QuoteLineItem{ID: "li-" + title, QuoteID: "q1", SectionID: sectionID, Title: title, SortOrder: i}
	}
	return out
}

func assertContiguousSections(t *testing.T, got []entities.QuoteSection, wantTitles []string) {
	t.Helper()
	if len(got) != len(wantTitles) {
		t.Fatalf("expected %d sections, got %d", len(wantTitles), len(got))
	}
	for i, s := range got {
		if s.Title != wantTitles[i] {
			t.Fatalf("position %d: expected %q, got %q", i, wantTitles[i], s.Title)
		}
		if s.SortOrder != i {
			t.Fatalf("position %d: expected sort order %d, got %d", i, i, s.SortOrder)
		}
	}
}

func assertContiguousItems(t *testing.T, got []entities.QuoteLineItem, wantTitles []string) {
	t.Helper()
	if len(got) != len(wantTitles) {
		t.Fatalf("expected %d items, got %d", len(wantTitles), len(got))
	}
	for i, it := range got {
		if it.Title != wantTitles[i] {
			t.Fatalf("position %d: expected %q, got %q", i, wantTitles[i], it.Title)
		}
		if it.SortOrder != i {
			t.Fatalf("position %d: expected sort order %d, got %d", i, i, it.SortOrder)
		}
	}
}

func TestMoveSection(t *testing.T) {
	t.Run("forward move", func(t *testing.T) {
		got := MoveSection(sections("a", "b", "c", "d"), 0, 2)
		assertContiguousSections(t, got, []string{"b", "c", "a", "d"})
	})

	t.Run("backward move", func(t *testing.T) {
		got := MoveSection(sections("a", "b", "c", "d"), 3, 1)
		assertContiguousSections(t, got, []string{"a", "d", "b", "c"})
	})

	t.Run("destination clamped", func(t *testing.T) {
		got := MoveSection(sections("a", "b", "c"), 0, 99)
		assertContiguousSections(t, got, []string{"b", "c", "a"})

		got = MoveSection(sections("a", "b", "c"), 2, -5)
		assertContiguousSections(t, got, []string{"c", "a", "b"})
	})

	t.Run("out of range source is a no-op", func(t *testing.T) {
		got := MoveSection(sections("a", "b"), 7, 0)
		assertContiguousSections(t, got, []string{"a", "b"})
	})

	t.Run("idempotent under repeated application", func(t *testing.T) {
		once := MoveSection(sections("a", "b", "c", "d"), 1, 1)
		twice := MoveSection(once, 1, 1)
		assertContiguousSections(t, twice, []string{"a", "b", "c", "d"})
	})

	t.Run("input slice untouched", func(t *testing.T) {
		in := sections("a", "b", "c")
		MoveSection(in, 0, 2)
		assertContiguousSections(t, in, []string{"a", "b", "c"})
	})
}

func TestMoveItemWithin(t *testing.T) {
	t.Run("reorders and renumbers", func(t *testing.T) {
		got := MoveItemWithin(items("s1", "x", "y", "z"), 2, 0)
		assertContiguousItems(t, got, []string{"z", "x", "y"})
	})

	t.Run("gapped input comes out contiguous", func(t *testing.T) {
		in := items("s1", "x", "y", "z")
		in[0].SortOrder = 3
		in[1].SortOrder = 7
		in[2].SortOrder = 9
		got := MoveItemWithin(in, 0, 0)
		assertContiguousItems(t, got, []string{"x", "y", "z"})
	})
}

func TestMoveItemAcross(t *testing.T) {
	t.Run("transfers and reparents", func(t *testing.T) {
		src, dst := MoveItemAcross(items("s1", "a", "b", "c"), items("s2", "p", "q"), 1, 1, "s2")
		assertContiguousItems(t, src, []string{"a", "c"})
		assertContiguousItems(t, dst, []string{"p", "b", "q"})
		if dst[1].SectionID != "s2" {
			t.Fatalf("expected moved item reparented to s2, got %q", dst[1].SectionID)
		}
	})

	t.Run("insert at end when destination index overshoots", func(t *testing.T) {
		src, dst := MoveItemAcross(items("s1", "a"), items("s2", "p", "q"), 0, 42, "s2")
		assertContiguousItems(t, src, nil)
		assertContiguousItems(t, dst, []string{"p", "q", "a"})
	})

	t.Run("into empty destination", func(t *testing.T) {
		src, dst := MoveItemAcross(items("s1", "a", "b"), nil, 0, 0, "s2")
		assertContiguousItems(t, src, []string{"b"})
		assertContiguousItems(t, dst, []string{"a"})
	})

	t.Run("out of range source leaves both scopes normalized", func(t *testing.T) {
		src, dst := MoveItemAcross(items("s1", "a"), items("s2", "p"), 5, 0, "s2")
		assertContiguousItems(t, src, []string{"a"})
		assertContiguousItems(t, dst, []string{"p"})
		if src[0].SectionID != "s1" {
			t.Fatalf("expected untouched item to keep its section, got %q", src[0].SectionID)
		}
	})
}

func TestNormalize(t *testing.T) {
	t.Run("duplicate sort orders are resolved by array order", func(t *testing.T) {
		in := sections("a", "b", "c")
		in[0].SortOrder = 1
		in[1].SortOrder = 1
		in[2].SortOrder = 0
		got := NormalizeSections(in)
		assertContiguousSections(t, got, []string{"a", "b", "c"})
	})

	t.Run("empty input", func(t *testing.T) {
		if got := NormalizeItems(nil); len(got) != 0 {
			t.Fatalf("expected empty, got %d items", len(got))
		}
	})
}
