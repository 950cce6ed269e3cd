package circlebutton

// Matrix is a 3x3 projective transform in row-major order, acting on column
// vectors (x, y, 1):
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
//
// The first two rows are the affine part; the last row carries perspective.
type Matrix [9]float64

// IdentityMatrix is the identity transform.
var IdentityMatrix = Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}

// TranslateMatrix returns a translation by (x, y).
func TranslateMatrix(x, y float64) Matrix {
	return Matrix{1, 0, x, 0, 1, y, 0, 0, 1}
}

// Multiply returns m * o, so o is applied first.
func (m Matrix) Multiply(o Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[i*3]*o[j] + m[i*3+1]*o[3+j] + m[i*3+2]*o[6+j]
		}
	}
	return r
}

// PreTranslate returns m * T(x, y).
func (m Matrix) PreTranslate(x, y float64) Matrix {
	return m.Multiply(TranslateMatrix(x, y))
}

// PostTranslate returns T(x, y) * m.
func (m Matrix) PostTranslate(x, y float64) Matrix {
	return TranslateMatrix(x, y).Multiply(m)
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == IdentityMatrix
}

// Apply maps a point through m, dividing by the homogeneous coordinate.
// Points on the vanishing line (w ≈ 0) are returned without division.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	u := m[0]*x + m[1]*y + m[2]
	v := m[3]*x + m[4]*y + m[5]
	w := m[6]*x + m[7]*y + m[8]
	if w > -1e-12 && w < 1e-12 {
		return u, v
	}
	return u / w, v / w
}

// Affine is a 2D affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// AffineAt returns the affine transform that matches m to first order around
// (x0, y0). Canvases that only accept affine transforms use it to place
// content (text) near a known anchor.
func (m Matrix) AffineAt(x0, y0 float64) Affine {
	u := m[0]*x0 + m[1]*y0 + m[2]
	v := m[3]*x0 + m[4]*y0 + m[5]
	w := m[6]*x0 + m[7]*y0 + m[8]
	if w > -1e-12 && w < 1e-12 {
		return Affine{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]}
	}
	w2 := w * w
	a := (m[0]*w - u*m[6]) / w2
	b := (m[1]*w - u*m[7]) / w2
	d := (m[3]*w - v*m[6]) / w2
	e := (m[4]*w - v*m[7]) / w2
	px, py := u/w, v/w
	return Affine{
		A: a, B: b, C: px - a*x0 - b*y0,
		D: d, E: e, F: py - d*x0 - e*y0,
	}
}

// Apply maps a point through the affine transform.
func (a Affine) Apply(x, y float64) (float64, float64) {
	return a.A*x + a.B*y + a.C, a.D*x + a.E*y + a.F
}
