package kernels

import (
	"math"

	"github.com/avi-seth/gravkit/internal/gravity"
)

// Jaffe is a spheroid with an inner 1/r^2 density cusp and scale
// radius c:
//
//	Phi = (G M / c) ln(r / (r + c))
type Jaffe struct {
	G float64
	M float64
	C float64
}

// NewJaffe builds a Jaffe kernel from the buffer [G, m, c].
func NewJaffe(pars []float64) (*Jaffe, error) {
	if len(pars) != 3 {
		return nil, gravity.ErrParams
	}
	return &Jaffe{G: pars[0], M: pars[1], C: pars[2]}, nil
}

func (j *Jaffe) Value(t float64, q gravity.Vec3) float64 {
	r := q.Norm()
	return j.G * j.M / j.C * math.Log(r/(r+j.C))
}

func (j *Jaffe) Gradient(t float64, q gravity.Vec3, grad *gravity.Vec3) {
	r := q.Norm()
	// dPhi/dr = G M / (r (r+c)), applied along rhat = q/r.
	fac := j.G * j.M / (r * r * (r + j.C))
	grad[0] += fac * q[0]
	grad[1] += fac * q[1]
	grad[2] += fac * q[2]
}

func (j *Jaffe) Density(t float64, q gravity.Vec3) float64 {
	r := q.Norm()
	rc := r + j.C
	return j.M * j.C / (4 * math.Pi * r * r * rc * rc)
}
