package gridfamily_test

import (
	"errors"
	"testing"

	"github.com/heeschnum/heesch/geom"
	"github.com/heeschnum/heesch/gridfamily"
)

func TestByCodeUnknown(t *testing.T) {
	_, err := gridfamily.ByCode('?')
	if !errors.Is(err, gridfamily.ErrUnknownFamily) {
		t.Fatalf("ByCode('?') error = %v; want ErrUnknownFamily", err)
	}
}

func TestCodesRegistersAllNine(t *testing.T) {
	codes := gridfamily.Codes()
	if len(codes) != 9 {
		t.Fatalf("Codes() = %d entries; want 9", len(codes))
	}
	seen := map[byte]bool{}
	for _, c := range codes {
		seen[c] = true
	}
	for _, want := range []byte{'O', 'H', 'I', 'o', 'T', 'A', 'D', 'K', 'h'} {
		if !seen[want] {
			t.Errorf("missing grid code %q", string(want))
		}
	}
}

// orientationCounts mirrors the family/orientation-count table.
var orientationCounts = map[byte]int{
	'O': 8, 'H': 12, 'I': 12, 'o': 8, 'T': 12, 'A': 8, 'D': 12, 'K': 6, 'h': 8,
}

func TestOrientationCounts(t *testing.T) {
	for code, want := range orientationCounts {
		g, err := gridfamily.ByCode(code)
		if err != nil {
			t.Fatalf("ByCode(%q): %v", string(code), err)
		}
		got := len(g.Orientations())
		if got != want {
			t.Errorf("%s: Orientations() = %d; want %d", g.Name(), got, want)
		}
	}
}

func TestOrientationsAreUnimodular(t *testing.T) {
	for _, code := range gridfamily.Codes() {
		g, _ := gridfamily.ByCode(code)
		for i, tr := range g.Orientations() {
			d := tr.Det()
			if d != 1 && d != -1 {
				t.Errorf("%s: orientation %d has det %d; want +-1", g.Name(), i, d)
			}
		}
	}
}

func TestOrientationsContainIdentity(t *testing.T) {
	for _, code := range gridfamily.Codes() {
		g, _ := gridfamily.ByCode(code)
		found := false
		for _, tr := range g.Orientations() {
			if tr.IsIdentity() {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s: orientation set has no identity", g.Name())
		}
	}
}

func TestEdgeNeighborsSubsetOfAllNeighbors(t *testing.T) {
	for _, code := range gridfamily.Codes() {
		g, _ := gridfamily.ByCode(code)
		for _, origin := range g.Origins() {
			all := g.Neighbors(origin)
			edge := g.EdgeNeighbors(origin)
			allSet := map[geom.Point]bool{}
			for _, p := range all {
				allSet[p] = true
			}
			for _, p := range edge {
				if !allSet[p] {
					t.Errorf("%s: edge neighbor %+v of %+v not in full neighbor set", g.Name(), p, origin)
				}
			}
			if len(edge) > len(all) {
				t.Errorf("%s: edge neighbor count %d exceeds full neighbor count %d", g.Name(), len(edge), len(all))
			}
		}
	}
}

func TestTranslatableReflexiveAndSymmetric(t *testing.T) {
	for _, code := range gridfamily.Codes() {
		g, _ := gridfamily.ByCode(code)
		for _, origin := range g.Origins() {
			if !g.Translatable(origin, origin) {
				t.Errorf("%s: Translatable(p, p) = false for %+v", g.Name(), origin)
			}
			for _, n := range g.Neighbors(origin) {
				q := origin.Add(n)
				if g.Translatable(origin, q) != g.Translatable(q, origin) {
					t.Errorf("%s: Translatable not symmetric for %+v, %+v", g.Name(), origin, q)
				}
			}
		}
	}
}

func TestDistinctOriginsAreNotAllMutuallyTranslatable(t *testing.T) {
	// Origins enumerate distinct translation classes; for families with
	// more than one class, at least one pair of origins must be
	// non-translatable, otherwise Origins() is over-reporting classes.
	for _, code := range gridfamily.Codes() {
		g, _ := gridfamily.ByCode(code)
		origins := g.Origins()
		if len(origins) < 2 {
			continue
		}
		anyDistinct := false
		for i := range origins {
			for j := range origins {
				if i == j {
					continue
				}
				if !g.Translatable(origins[i], origins[j]) {
					anyDistinct = true
				}
			}
		}
		if !anyDistinct {
			t.Errorf("%s: %d origins declared but all mutually translatable", g.Name(), len(origins))
		}
	}
}
