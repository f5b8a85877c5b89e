package gravity

import "math"

// DefaultStepFrac sets the default finite-difference step as a
// fraction of the query radius. 1e-3 balances truncation against
// rounding error for the smooth potentials evaluated here.
const DefaultStepFrac = 1e-3

// DPhiDrAt computes dPhi/dr at q by a central difference of the summed
// potential along the radial unit vector through q, with step eps.
// A non-positive eps fails with ErrStep. At the origin the radial
// direction is undefined and the result is 0.
func (c *Composite) DPhiDrAt(t float64, q Vec3, eps float64) (float64, error) {
	if eps <= 0 {
		return 0, ErrStep
	}
	r := q.Norm()
	if r == 0 {
		return 0, nil
	}
	rhat := q.Scale(1 / r)
	plus := c.valueAt(t, q.Add(rhat.Scale(eps)))
	minus := c.valueAt(t, q.Sub(rhat.Scale(eps)))
	return (plus - minus) / (2 * eps), nil
}

// D2PhiDr2At computes d2Phi/dr2 at q by a second central difference
// along the radial unit vector, with step eps.
func (c *Composite) D2PhiDr2At(t float64, q Vec3, eps float64) (float64, error) {
	if eps <= 0 {
		return 0, ErrStep
	}
	r := q.Norm()
	if r == 0 {
		return 0, nil
	}
	rhat := q.Scale(1 / r)
	plus := c.valueAt(t, q.Add(rhat.Scale(eps)))
	mid := c.valueAt(t, q)
	minus := c.valueAt(t, q.Sub(rhat.Scale(eps)))
	return (plus - 2*mid + minus) / (eps * eps), nil
}

// MassEnclosedAt estimates the mass inside radius |q| from the radial
// derivative of the potential, M(<r) = r^2/G * dPhi/dr. G is the
// gravitational constant in the caller's unit system. eps <= 0 selects
// the default step DefaultStepFrac*|q|.
func (c *Composite) MassEnclosedAt(t float64, q Vec3, G, eps float64) (float64, error) {
	r := q.Norm()
	if r == 0 {
		return 0, nil
	}
	if eps <= 0 {
		eps = DefaultStepFrac * r
	}
	dphi, err := c.DPhiDrAt(t, q, eps)
	if err != nil {
		return 0, err
	}
	return math.Abs(r * r * dphi / G), nil
}

// CircularVelocityAt computes the circular orbit speed at |q|,
// v_c = sqrt(r * dPhi/dr).
func (c *Composite) CircularVelocityAt(t float64, q Vec3) (float64, error) {
	r := q.Norm()
	if r == 0 {
		return 0, nil
	}
	dphi, err := c.DPhiDrAt(t, q, DefaultStepFrac*r)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(math.Abs(r * dphi)), nil
}

// DPhiDr evaluates dPhi/dr at every point with the default per-point
// step DefaultStepFrac*r.
func (c *Composite) DPhiDr(xyz []float64, t float64) ([]float64, error) {
	out := make([]float64, len(xyz)/3)
	err := c.batch(xyz, func(i int, q Vec3) {
		if r := q.Norm(); r > 0 {
			out[i], _ = c.DPhiDrAt(t, q, DefaultStepFrac*r)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// D2PhiDr2 evaluates d2Phi/dr2 at every point with the default
// per-point step.
func (c *Composite) D2PhiDr2(xyz []float64, t float64) ([]float64, error) {
	out := make([]float64, len(xyz)/3)
	err := c.batch(xyz, func(i int, q Vec3) {
		if r := q.Norm(); r > 0 {
			out[i], _ = c.D2PhiDr2At(t, q, DefaultStepFrac*r)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MassEnclosed estimates the spherically enclosed mass at every point.
func (c *Composite) MassEnclosed(xyz []float64, G, t float64) ([]float64, error) {
	out := make([]float64, len(xyz)/3)
	err := c.batch(xyz, func(i int, q Vec3) {
		out[i], _ = c.MassEnclosedAt(t, q, G, 0)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CircularVelocity computes the circular orbit speed at every point.
func (c *Composite) CircularVelocity(xyz []float64, t float64) ([]float64, error) {
	out := make([]float64, len(xyz)/3)
	err := c.batch(xyz, func(i int, q Vec3) {
		out[i], _ = c.CircularVelocityAt(t, q)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
