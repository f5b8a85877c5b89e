package kernels

import (
	"math"

	"github.com/avi-seth/gravkit/internal/gravity"
)

// Hernquist is a spheroid with an inner 1/r density cusp and scale
// radius c:
//
//	Phi = -G M / (r + c)
type Hernquist struct {
	G float64
	M float64
	C float64
}

// NewHernquist builds a Hernquist kernel from the buffer [G, m, c].
func NewHernquist(pars []float64) (*Hernquist, error) {
	if len(pars) != 3 {
		return nil, gravity.ErrParams
	}
	return &Hernquist{G: pars[0], M: pars[1], C: pars[2]}, nil
}

func (h *Hernquist) Value(t float64, q gravity.Vec3) float64 {
	return -h.G * h.M / (q.Norm() + h.C)
}

func (h *Hernquist) Gradient(t float64, q gravity.Vec3, grad *gravity.Vec3) {
	r := q.Norm()
	rc := r + h.C
	// dPhi/dr = G M / (r+c)^2, applied along rhat = q/r.
	fac := h.G * h.M / (rc * rc * r)
	grad[0] += fac * q[0]
	grad[1] += fac * q[1]
	grad[2] += fac * q[2]
}

func (h *Hernquist) Density(t float64, q gravity.Vec3) float64 {
	r := q.Norm()
	rc := r + h.C
	return h.M * h.C / (2 * math.Pi * r * rc * rc * rc)
}
