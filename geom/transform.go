package geom

// Transform is a 2x3 integer affine map:
//
//	T·p = (A*px + B*py + C, D*px + E*py + F)
//
// Every Transform this module produces composes a symmetry from a
// grid's finite orientation set with an integer translation, so its
// linear part always has determinant +1 or -1. Transform is a plain
// comparable struct and can be used directly as a map key - unlike
// the C++ original this module is ported from, Go needs no bespoke
// hash-combine for that.
type Transform struct {
	A, B, C int32
	D, E, F int32
}

// Identity is the neutral Transform.
var Identity = Transform{A: 1, E: 1}

// Apply returns T·p.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Det returns the determinant of T's linear part.
func (t Transform) Det() int32 {
	return t.A*t.E - t.B*t.D
}

// IsIdentity reports whether T is the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Identity
}

// IsTranslation reports whether T's linear part is the identity,
// i.e. T is a pure translation.
func (t Transform) IsTranslation() bool {
	return t.A == 1 && t.B == 0 && t.D == 0 && t.E == 1
}

// Translate returns T with an additional translation by v applied
// after T's own action: Translate(v).Apply(p) == T.Apply(p) + v.
func (t Transform) Translate(v Point) Transform {
	return Transform{
		A: t.A, B: t.B, C: t.C + v.X,
		D: t.D, E: t.E, F: t.F + v.Y,
	}
}

// Compose returns the transform equivalent to applying other first,
// then t: t.Compose(other).Apply(p) == t.Apply(other.Apply(p)).
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// Invert returns T⁻¹.
//
// Contract: T.Det() must be +1 or -1. Inverting an arbitrary integer
// transform whose linear part isn't unimodular is a programming error,
// not a recoverable one - callers must never pass attacker- or
// input-derived transforms here without having validated Det() first.
// This mirrors the corpus's policy (see matrix/options.go) of panicking
// only on invariant breaches, never on ordinary bad input.
func (t Transform) Invert() Transform {
	det := t.Det()
	if det != 1 && det != -1 {
		panic("geom: Invert called on a non-unimodular transform")
	}

	a2 := det * t.E
	b2 := -det * t.B
	d2 := -det * t.D
	e2 := det * t.A
	c2 := det * (t.B*t.F - t.E*t.C)
	f2 := det * (t.D*t.C - t.A*t.F)

	return Transform{A: a2, B: b2, C: c2, D: d2, E: e2, F: f2}
}
