package lorem

import (
	"strings"
	"testing"
)

func TestWords_CountAndCycling(t *testing.T) {
	for _, count := range []int{0, 1, 8, 87, 88, 89, 200} {
		got := Words(count)
		if count == 0 {
			if got != "" {
				t.Fatalf("Words(0) = %q, want empty", got)
			}
			continue
		}
		parts := strings.Split(got, " ")
		if len(parts) != count {
			t.Fatalf("Words(%d) produced %d words", count, len(parts))
		}
		for i, word := range parts {
			if want := WordAt(i); word != want {
				t.Fatalf("Words(%d)[%d] = %q, want %q", count, i, word, want)
			}
		}
	}
}

func TestWords_Deterministic(t *testing.T) {
	for _, count := range []int{1, 5, 8, 120} {
		first := Words(count)
		for i := 0; i < 3; i++ {
			if again := Words(count); again != first {
				t.Fatalf("Words(%d) not deterministic: %q vs %q", count, first, again)
			}
		}
	}
}

func TestWords_NegativeCount(t *testing.T) {
	if got := Words(-3); got != "" {
		t.Fatalf("Words(-3) = %q, want empty", got)
	}
}
