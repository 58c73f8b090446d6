package web

import (
	"testing"

	"github.com/quillhub/quill/pkg/internal/services"
)

func TestIndexCacheKeySharedAcrossPageSpellings(t *testing.T) {
	const count, size = 30, 10

	keyFor := func(raw string) string {
		number, _, _ := services.PlanPage(count, raw, size)
		return indexCacheKey(number)
	}

	canonical := keyFor("1")
	for _, raw := range []string{"", "abc", "0", "-3", "01", " 1"} {
		if got := keyFor(raw); got != canonical {
			t.Errorf("page %q got key %q, want %q", raw, got, canonical)
		}
	}

	if keyFor("2") == canonical {
		t.Error("distinct pages must not share a cache key")
	}

	// Past-the-end requests clamp to the last page and reuse its entry.
	if keyFor("99") != keyFor("3") {
		t.Error("clamped page should share the last page's key")
	}
}
