package geom_test

import (
	"testing"

	"github.com/heeschnum/heesch/geom"
)

func TestTransformApply(t *testing.T) {
	rot90 := geom.Transform{A: 0, B: -1, D: 1, E: 0} // 90 degree rotation
	p := geom.Point{X: 2, Y: 0}
	got := rot90.Apply(p)
	want := geom.Point{X: 0, Y: 2}
	if got != want {
		t.Errorf("Apply = %+v; want %+v", got, want)
	}
}

func TestTransformComposeInvert(t *testing.T) {
	rot90 := geom.Transform{A: 0, B: -1, D: 1, E: 0}
	inv := rot90.Invert()

	composed := rot90.Compose(inv)
	if composed != geom.Identity {
		t.Errorf("T * T^-1 = %+v; want identity", composed)
	}

	composed2 := inv.Compose(rot90)
	if composed2 != geom.Identity {
		t.Errorf("T^-1 * T = %+v; want identity", composed2)
	}
}

func TestTransformTranslateComposeRoundTrip(t *testing.T) {
	T := geom.Transform{A: 1, B: 0, C: 3, D: 0, E: 1, F: -2}
	p := geom.Point{X: 5, Y: 7}
	moved := T.Apply(p)
	back := T.Invert().Apply(moved)
	if back != p {
		t.Errorf("round trip = %+v; want %+v", back, p)
	}
}

func TestIsIdentityIsTranslation(t *testing.T) {
	if !geom.Identity.IsIdentity() {
		t.Error("Identity.IsIdentity() = false")
	}
	if !geom.Identity.IsTranslation() {
		t.Error("Identity.IsTranslation() = false")
	}

	pureTranslate := geom.Identity.Translate(geom.Point{X: 3, Y: 4})
	if pureTranslate.IsIdentity() {
		t.Error("translated transform reports IsIdentity")
	}
	if !pureTranslate.IsTranslation() {
		t.Error("translated transform reports !IsTranslation")
	}

	rot := geom.Transform{A: 0, B: -1, D: 1, E: 0}
	if rot.IsTranslation() {
		t.Error("rotation reports IsTranslation")
	}
}

func TestInvertPanicsOnNonUnimodular(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-unimodular transform")
		}
	}()
	bad := geom.Transform{A: 2, E: 1}
	bad.Invert()
}

func TestPointOrdering(t *testing.T) {
	a := geom.Point{X: 5, Y: 0}
	b := geom.Point{X: 0, Y: 1}
	if !a.Less(b) {
		t.Error("expected (5,0) < (0,1) by (Y,X) order")
	}
	if b.Less(a) {
		t.Error("expected (0,1) not < (5,0)")
	}
}

func TestPointArith(t *testing.T) {
	p := geom.Point{X: 3, Y: 4}
	q := geom.Point{X: 1, Y: 2}
	if got := p.Add(q); got != (geom.Point{X: 4, Y: 6}) {
		t.Errorf("Add = %+v", got)
	}
	if got := p.Sub(q); got != (geom.Point{X: 2, Y: 2}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := p.Neg(); got != (geom.Point{X: -3, Y: -4}) {
		t.Errorf("Neg = %+v", got)
	}
}
