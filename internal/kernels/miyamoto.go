package kernels

import (
	"math"

	"github.com/avi-seth/gravkit/internal/gravity"
)

// MiyamotoNagai is a flattened disk with radial scale a and vertical
// scale b:
//
//	Phi = -G M / sqrt(R^2 + (a + sqrt(z^2 + b^2))^2),  R^2 = x^2 + y^2
type MiyamotoNagai struct {
	G float64
	M float64
	A float64
	B float64
}

// NewMiyamotoNagai builds a disk kernel from the buffer [G, m, a, b].
func NewMiyamotoNagai(pars []float64) (*MiyamotoNagai, error) {
	if len(pars) != 4 {
		return nil, gravity.ErrParams
	}
	return &MiyamotoNagai{G: pars[0], M: pars[1], A: pars[2], B: pars[3]}, nil
}

func (mn *MiyamotoNagai) Value(t float64, q gravity.Vec3) float64 {
	zb := math.Sqrt(q[2]*q[2] + mn.B*mn.B)
	zd := mn.A + zb
	return -mn.G * mn.M / math.Sqrt(q[0]*q[0]+q[1]*q[1]+zd*zd)
}

func (mn *MiyamotoNagai) Gradient(t float64, q gravity.Vec3, grad *gravity.Vec3) {
	zb := math.Sqrt(q[2]*q[2] + mn.B*mn.B)
	zd := mn.A + zb
	d2 := q[0]*q[0] + q[1]*q[1] + zd*zd
	fac := mn.G * mn.M / (d2 * math.Sqrt(d2))
	grad[0] += fac * q[0]
	grad[1] += fac * q[1]
	grad[2] += fac * q[2] * zd / zb
}

func (mn *MiyamotoNagai) Density(t float64, q gravity.Vec3) float64 {
	r2 := q[0]*q[0] + q[1]*q[1]
	zb := math.Sqrt(q[2]*q[2] + mn.B*mn.B)
	zd := mn.A + zb
	num := mn.A*r2 + (mn.A+3*zb)*zd*zd
	den := math.Pow(r2+zd*zd, 2.5) * zb * zb * zb
	return mn.B * mn.B * mn.M / (4 * math.Pi) * num / den
}
