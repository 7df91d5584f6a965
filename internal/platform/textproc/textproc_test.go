package textproc_test

import (
	"testing"

	"github.com/wanderplan/travel-planner-api/internal/platform/textproc"
)

func TestProcess_StemsAndLowercases(t *testing.T) {
	t.Parallel()

	got := textproc.Process("Hiking the Mountains")
	want := "hike the mountain"
	if got != want {
		t.Fatalf("Process=%q, want %q", got, want)
	}
}

func TestProcess_SharedStemMatches(t *testing.T) {
	t.Parallel()

	// "hikes" and "hiking" must normalize to the same token so queries in one
	// form match itineraries written in the other.
	if a, b := textproc.Process("hikes"), textproc.Process("hiking"); a != b {
		t.Fatalf("stems differ: %q vs %q", a, b)
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	t.Parallel()

	if got := textproc.Process("   "); got != "" {
		t.Fatalf("Process=%q, want empty", got)
	}
}

func TestAnalyze_SplitsOnPunctuation(t *testing.T) {
	t.Parallel()

	got := textproc.Analyze("Paris, France: day-trips!")
	want := []string{"pari", "franc", "day", "trip"}
	if len(got) != len(want) {
		t.Fatalf("tokens=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tokens=%v, want %v", got, want)
		}
	}
}
