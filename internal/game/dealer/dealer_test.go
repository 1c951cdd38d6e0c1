package dealer

import (
	"testing"
)

// same seed, same draws
func TestDealerDeterministic(t *testing.T) {
	d1 := NewDealer(42)
	d2 := NewDealer(42)

	for i := 0; i < 50; i++ {
		if a, b := d1.Float(3), d2.Float(3); a != b {
			t.Fatalf("draw %d: float %v != %v for same seed", i, a, b)
		}
		if a, b := d1.IntInclusive(9), d2.IntInclusive(9); a != b {
			t.Fatalf("draw %d: int %d != %d for same seed", i, a, b)
		}
	}

	s1 := []int{1, 2, 3, 4, 5, 6, 7, 8}
	s2 := []int{1, 2, 3, 4, 5, 6, 7, 8}
	ShuffleSlice(d1, s1)
	ShuffleSlice(d2, s2)
	for i := range s1 {
		if s1[i] != s2[i] {
			t.Fatalf("expected identical shuffles for same seed")
		}
	}
}

func TestDealerRanges(t *testing.T) {
	d := NewDealer(7)
	seenTop := false
	for i := 0; i < 2000; i++ {
		f := d.Float(0.5)
		if f < 0 || f >= 0.5 {
			t.Fatalf("float %v outside [0, 0.5)", f)
		}
		n := d.IntInclusive(3)
		if n < 0 || n > 3 {
			t.Fatalf("int %d outside [0, 3]", n)
		}
		if n == 3 {
			seenTop = true
		}
	}
	if !seenTop {
		t.Fatalf("IntInclusive never returned its upper bound")
	}
	if d.Float(0) != 0 || d.IntInclusive(0) != 0 {
		t.Fatalf("empty ranges must draw 0")
	}
}

func TestShuffleKeepsElements(t *testing.T) {
	d := NewDealer(3)
	s := []string{"A", "B", "C", "D", "E"}
	ShuffleSlice(d, s)

	seen := make(map[string]bool)
	for _, v := range s {
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Fatalf("shuffle lost or duplicated elements: %v", s)
	}
}

func TestScriptReplays(t *testing.T) {
	s := &Script{
		Floats: []float64{0.25, 9},
		Ints:   []int{5},
		Perms:  [][]int{{2, 0, 3, 1}},
	}

	if v := s.Float(1); v != 0.25 {
		t.Fatalf("expected 0.25, got %v", v)
	}
	if v := s.Float(1); v != 1 {
		t.Fatalf("scripted float must clamp to max, got %v", v)
	}
	if v := s.IntInclusive(5); v != 5 {
		t.Fatalf("expected 5, got %d", v)
	}
	if v := s.IntInclusive(5); v != 0 {
		t.Fatalf("exhausted script must draw 0, got %d", v)
	}

	list := []string{"A", "B", "C", "D"}
	ShuffleSlice(s, list)
	want := []string{"C", "A", "D", "B"}
	for i := range want {
		if list[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, list)
		}
	}

	// no permutation left: order kept
	ShuffleSlice(s, list)
	for i := range want {
		if list[i] != want[i] {
			t.Fatalf("expected identity shuffle, got %v", list)
		}
	}
	if len(s.Draws) != 6 {
		t.Fatalf("expected 6 recorded draws, got %d", len(s.Draws))
	}
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	if a == b {
		t.Fatalf("two crypto seeds should differ")
	}
}
