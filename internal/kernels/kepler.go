package kernels

import (
	"math"

	"github.com/avi-seth/gravkit/internal/gravity"
)

// Kepler is the potential of a point mass M:
//
//	Phi = -G M / r
type Kepler struct {
	G float64
	M float64
}

// NewKepler builds a Kepler kernel from the buffer [G, m].
func NewKepler(pars []float64) (*Kepler, error) {
	if len(pars) != 2 {
		return nil, gravity.ErrParams
	}
	return &Kepler{G: pars[0], M: pars[1]}, nil
}

func (k *Kepler) Value(t float64, q gravity.Vec3) float64 {
	return -k.G * k.M / q.Norm()
}

func (k *Kepler) Gradient(t float64, q gravity.Vec3, grad *gravity.Vec3) {
	r := q.Norm()
	fac := k.G * k.M / (r * r * r)
	grad[0] += fac * q[0]
	grad[1] += fac * q[1]
	grad[2] += fac * q[2]
}

// Density is a delta function at the origin; there is no analytic
// volume density, so NaN is returned everywhere.
func (k *Kepler) Density(t float64, q gravity.Vec3) float64 {
	return math.NaN()
}
