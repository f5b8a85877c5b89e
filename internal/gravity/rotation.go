package gravity

// Mat3 is a 3x3 matrix stored row-major.
type Mat3 [3][3]float64

// Apply multiplies m by v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Transpose returns the transpose of m. For the orthogonal rotation
// matrices used here the transpose is also the inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Rotation maps world coordinates into a model's principal-axis frame
// and back. R rotates a query position into the principal frame; Rinv
// (the precomputed transpose) rotates gradients back to world axes.
type Rotation struct {
	R    Mat3
	Rinv Mat3
}

// NewRotation builds a Rotation from 9 row-major entries, the layout
// used in trailing parameter-buffer slots. The matrix is assumed
// orthogonal; only the element count is checked.
func NewRotation(flat []float64) (*Rotation, error) {
	if len(flat) != 9 {
		return nil, ErrRotation
	}
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = flat[3*i+j]
		}
	}
	return &Rotation{R: m, Rinv: m.Transpose()}, nil
}

// ToBody rotates a world position into the principal-axis frame.
// A nil Rotation is the identity.
func (rot *Rotation) ToBody(q Vec3) Vec3 {
	if rot == nil {
		return q
	}
	return rot.R.Apply(q)
}

// ToWorld rotates a principal-frame gradient back to world axes.
func (rot *Rotation) ToWorld(g Vec3) Vec3 {
	if rot == nil {
		return g
	}
	return rot.Rinv.Apply(g)
}
