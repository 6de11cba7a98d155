package rng

import (
	"fmt"
	"sort"
	"sync"
	"testing"
)

func TestPermutationIsPermutation(t *testing.T) {
	src := NewSeeded(42)

	for _, n := range []int{0, 1, 2, 5, 50} {
		perm := src.Permutation(n)
		if len(perm) != n {
			t.Fatalf("Permutation(%d) returned %d elements", n, len(perm))
		}
		sorted := append([]int(nil), perm...)
		sort.Ints(sorted)
		for i, v := range sorted {
			if v != i {
				t.Fatalf("Permutation(%d) = %v is not a permutation of [0..%d)", n, perm, n)
			}
		}
	}
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewSeeded(1234)
	b := NewSeeded(1234)

	for i := 0; i < 10; i++ {
		pa := fmt.Sprint(a.Permutation(8))
		pb := fmt.Sprint(b.Permutation(8))
		if pa != pb {
			t.Fatalf("draw %d diverged: %s vs %s", i, pa, pb)
		}
	}
}

func TestZeroSeedFallsBackToClock(t *testing.T) {
	// Two zero-seeded sources must still produce valid permutations; their
	// streams are almost certainly different but that is not asserted here.
	src := NewSeeded(0)
	if got := len(src.Permutation(4)); got != 4 {
		t.Fatalf("expected 4 elements, got %d", got)
	}
}

func TestConcurrentDrawsDoNotRace(t *testing.T) {
	src := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if len(src.Permutation(10)) != 10 {
					t.Error("short permutation under concurrency")
					return
				}
			}
		}()
	}
	wg.Wait()
}
