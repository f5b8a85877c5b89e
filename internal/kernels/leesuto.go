package kernels

import (
	"math"

	"github.com/avi-seth/gravkit/internal/gravity"
)

// LeeSuto is a triaxial NFW-type halo in the closed-form approximation
// of Lee & Suto (2003), with principal axis ratios b/a and c/a. With
// u = r/r_s and flattenings e_b^2 = 1-(b/a)^2, e_c^2 = 1-(c/a)^2:
//
//	Phi = v_h^2 [ F1(u) + (e_b^2+e_c^2)/2 F2(u)
//	            + (e_b^2 y^2 + e_c^2 z^2)/(2 r^2) F3(u) ]
//
//	F1 = -ln(1+u)/u
//	F2 = -1/3 + (2u^2 - 3u + 6)/(6u^2) + (1/u - 1/u^3) ln(1+u)
//	F3 = (u^2 - 3u - 6)/(2u^2(1+u)) + 3 ln(1+u)/u^3
//
// v_h^2 normalizes v_c to the circular speed at r_s in the spherical
// limit. When both flattenings are zero the spherical NFW fast path
// skips the F2/F3 terms entirely.
type LeeSuto struct {
	G  float64
	V  float64
	Rs float64
	A  float64
	B  float64
	C  float64

	eb2 float64
	ec2 float64
	vh2 float64
	rot *gravity.Rotation
}

// NewLeeSuto builds a Lee-Suto halo from the buffer
// [G, v_c, r_s, a, b, c], optionally followed by 9 row-major
// rotation-matrix entries.
func NewLeeSuto(pars []float64) (*LeeSuto, error) {
	if len(pars) != 6 && len(pars) != 15 {
		return nil, gravity.ErrParams
	}
	ls := &LeeSuto{
		G: pars[0], V: pars[1], Rs: pars[2],
		A: pars[3], B: pars[4], C: pars[5],
	}
	ls.eb2 = 1 - (ls.B/ls.A)*(ls.B/ls.A)
	ls.ec2 = 1 - (ls.C/ls.A)*(ls.C/ls.A)
	ln2 := math.Ln2
	ls.vh2 = ls.V * ls.V / (ln2 - 0.5 + (ln2-0.75)*(ls.eb2+ls.ec2))
	if len(pars) == 15 {
		rot, err := gravity.NewRotation(pars[6:])
		if err != nil {
			return nil, err
		}
		ls.rot = rot
	}
	return ls, nil
}

func (ls *LeeSuto) spherical() bool {
	return ls.eb2 == 0 && ls.ec2 == 0
}

func (ls *LeeSuto) Value(t float64, q gravity.Vec3) float64 {
	p := ls.rot.ToBody(q)
	r := p.Norm()
	u := r / ls.Rs
	l1u := math.Log(1 + u)

	if ls.spherical() {
		return -ls.vh2 * l1u / u
	}

	f1 := -l1u / u
	f2 := -1.0/3.0 + (2*u*u-3*u+6)/(6*u*u) + (1/u-1/(u*u*u))*l1u
	f3 := (u*u-3*u-6)/(2*u*u*(1+u)) + 3*l1u/(u*u*u)
	shape := (ls.eb2*p[1]*p[1] + ls.ec2*p[2]*p[2]) / (2 * r * r)
	return ls.vh2 * (f1 + (ls.eb2+ls.ec2)/2*f2 + shape*f3)
}

func (ls *LeeSuto) Gradient(t float64, q gravity.Vec3, grad *gravity.Vec3) {
	p := ls.rot.ToBody(q)
	r := p.Norm()
	u := r / ls.Rs
	l1u := math.Log(1 + u)

	// dF1/du; the spherical NFW needs nothing else.
	df1 := l1u/(u*u) - 1/(u*(1+u))

	var g gravity.Vec3
	if ls.spherical() {
		fac := ls.vh2 * df1 / (r * ls.Rs)
		g = p.Scale(fac)
	} else {
		u2, u3, u4 := u*u, u*u*u, u*u*u*u
		f3 := (u2-3*u-6)/(2*u2*(1+u)) + 3*l1u/u3
		df2 := 1/(2*u2) - 2/u3 + (3/u4-1/u2)*l1u + (1/u-1/u3)/(1+u)
		df3 := (-u3+6*u2+21*u+12)/(2*u3*(1+u)*(1+u)) - 9*l1u/u4 + 3/(u3*(1+u))

		a := ls.eb2*p[1]*p[1] + ls.ec2*p[2]*p[2]
		r2 := r * r
		r4 := r2 * r2
		// Radial chain-rule term shared by all three components.
		cr := (df1 + (ls.eb2+ls.ec2)/2*df2 + a/(2*r2)*df3) / (r * ls.Rs)
		g[0] = ls.vh2 * p[0] * (cr - f3*a/r4)
		g[1] = ls.vh2 * p[1] * (cr + f3*(ls.eb2*r2-a)/r4)
		g[2] = ls.vh2 * p[2] * (cr + f3*(ls.ec2*r2-a)/r4)
	}

	g = ls.rot.ToWorld(g)
	grad[0] += g[0]
	grad[1] += g[1]
	grad[2] += g[2]
}

func (ls *LeeSuto) Density(t float64, q gravity.Vec3) float64 {
	p := ls.rot.ToBody(q)
	ba2 := (ls.B / ls.A) * (ls.B / ls.A)
	ca2 := (ls.C / ls.A) * (ls.C / ls.A)
	u := math.Sqrt(p[0]*p[0]+p[1]*p[1]/ba2+p[2]*p[2]/ca2) / ls.Rs
	return ls.vh2 / (u * (1 + u) * (1 + u)) / (4 * math.Pi * ls.Rs * ls.Rs * ls.G)
}
