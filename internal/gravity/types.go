package gravity

import (
	"math"
)

// Vec3 is a position, gradient, or velocity in 3-space.
type Vec3 [3]float64

func (v Vec3) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func (v Vec3) Norm2() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

func (v Vec3) Scale(factor float64) Vec3 {
	return Vec3{v[0] * factor, v[1] * factor, v[2] * factor}
}

// Kernel is one analytic potential model with a fixed, immutable
// parameter set. Implementations must be pure: Value and Density read
// only their own parameters, and Gradient adds its contribution into
// grad rather than assigning, so that multiple kernels can accumulate
// into one output vector. A Kernel must be safe to call concurrently
// for different points.
//
// The time argument is threaded through for time-dependent models; the
// built-in kernels ignore it.
type Kernel interface {
	// Value returns the potential at q.
	Value(t float64, q Vec3) float64

	// Gradient adds the potential gradient at q into grad.
	Gradient(t float64, q Vec3, grad *Vec3)

	// Density returns the mass density at q, or NaN for models with
	// no analytic density.
	Density(t float64, q Vec3) float64
}

// Hamiltonian computes total specific energy for a point with velocity
// v in the field of c: Phi(q) + |v|^2/2.
func Hamiltonian(c *Composite, t float64, q, v Vec3) float64 {
	return c.valueAt(t, q) + 0.5*v.Norm2()
}
