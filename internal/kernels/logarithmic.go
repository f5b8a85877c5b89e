package kernels

import (
	"math"

	"github.com/avi-seth/gravkit/internal/gravity"
)

// Logarithmic is a triaxial halo with an asymptotically flat rotation
// curve at circular speed v_c:
//
//	Phi = (v_c^2 / 2) ln(x^2/q1^2 + y^2/q2^2 + z^2/q3^2 + r_h^2)
//
// evaluated in the principal-axis frame.
type Logarithmic struct {
	G  float64
	V  float64
	Rh float64
	Q1 float64
	Q2 float64
	Q3 float64

	rot *gravity.Rotation
}

// NewLogarithmic builds a logarithmic halo from the buffer
// [G, v_c, r_h, q1, q2, q3], optionally followed by 9 row-major
// rotation-matrix entries.
func NewLogarithmic(pars []float64) (*Logarithmic, error) {
	if len(pars) != 6 && len(pars) != 15 {
		return nil, gravity.ErrParams
	}
	l := &Logarithmic{
		G: pars[0], V: pars[1], Rh: pars[2],
		Q1: pars[3], Q2: pars[4], Q3: pars[5],
	}
	if len(pars) == 15 {
		rot, err := gravity.NewRotation(pars[6:])
		if err != nil {
			return nil, err
		}
		l.rot = rot
	}
	return l, nil
}

func (l *Logarithmic) shape(p gravity.Vec3) float64 {
	return l.Rh*l.Rh + p[0]*p[0]/(l.Q1*l.Q1) + p[1]*p[1]/(l.Q2*l.Q2) + p[2]*p[2]/(l.Q3*l.Q3)
}

func (l *Logarithmic) Value(t float64, q gravity.Vec3) float64 {
	p := l.rot.ToBody(q)
	return 0.5 * l.V * l.V * math.Log(l.shape(p))
}

func (l *Logarithmic) Gradient(t float64, q gravity.Vec3, grad *gravity.Vec3) {
	p := l.rot.ToBody(q)
	fac := l.V * l.V / l.shape(p)
	g := l.rot.ToWorld(gravity.Vec3{
		fac * p[0] / (l.Q1 * l.Q1),
		fac * p[1] / (l.Q2 * l.Q2),
		fac * p[2] / (l.Q3 * l.Q3),
	})
	grad[0] += g[0]
	grad[1] += g[1]
	grad[2] += g[2]
}

func (l *Logarithmic) Density(t float64, q gravity.Vec3) float64 {
	p := l.rot.ToBody(q)
	q12, q22, q32 := l.Q1*l.Q1, l.Q2*l.Q2, l.Q3*l.Q3
	s := l.shape(p)
	tr := 1/q12 + 1/q22 + 1/q32
	quad := p[0]*p[0]/(q12*q12) + p[1]*p[1]/(q22*q22) + p[2]*p[2]/(q32*q32)
	return l.V * l.V / (4 * math.Pi * l.G) * (tr/s - 2*quad/(s*s))
}
