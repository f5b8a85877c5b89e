package gravity

// MaxComponents is the most kernels one composite may hold.
const MaxComponents = 16

// minChunk is the smallest number of points a batch needs before the
// evaluator fans out across goroutines.
const minChunk = 256

// Composite sums up to MaxComponents independent kernels sharing one
// coordinate frame and time parameter. Kernels are evaluated in
// registration order; summation is commutative, but fixing the order
// makes outputs bit-reproducible across runs.
//
// Register every kernel before the first evaluation. A composite is
// immutable thereafter and safe for concurrent use.
type Composite struct {
	kernels []Kernel

	// Workers caps the goroutines used for batch fan-out.
	// Zero means one per CPU.
	Workers int
}

func NewComposite() *Composite {
	return &Composite{kernels: make([]Kernel, 0, MaxComponents)}
}

// Add registers a kernel. It fails with ErrCapacity once the composite
// holds MaxComponents kernels.
func (c *Composite) Add(k Kernel) error {
	if len(c.kernels) >= MaxComponents {
		return ErrCapacity
	}
	c.kernels = append(c.kernels, k)
	return nil
}

// Len reports the number of registered kernels.
func (c *Composite) Len() int {
	return len(c.kernels)
}

func (c *Composite) valueAt(t float64, q Vec3) float64 {
	sum := 0.0
	for _, k := range c.kernels {
		sum += k.Value(t, q)
	}
	return sum
}

func (c *Composite) gradientAt(t float64, q Vec3, grad *Vec3) {
	for _, k := range c.kernels {
		k.Gradient(t, q, grad)
	}
}

func (c *Composite) densityAt(t float64, q Vec3) float64 {
	sum := 0.0
	for _, k := range c.kernels {
		sum += k.Density(t, q)
	}
	return sum
}

// batch checks the position array shape and applies fn to every point,
// fanning out across goroutines for large batches. Point k's result
// depends only on column k, so workers never contend.
func (c *Composite) batch(xyz []float64, fn func(i int, q Vec3)) error {
	if len(xyz)%3 != 0 {
		return ErrPositions
	}
	n := len(xyz) / 3
	ParallelFor(n, minChunk, c.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i, Vec3{xyz[3*i], xyz[3*i+1], xyz[3*i+2]})
		}
	})
	return nil
}

// Value evaluates the summed potential at every (x,y,z) triplet in xyz
// and returns one value per point.
func (c *Composite) Value(xyz []float64, t float64) ([]float64, error) {
	out := make([]float64, len(xyz)/3)
	if err := c.ValueInto(out, xyz, t); err != nil {
		return nil, err
	}
	return out, nil
}

// ValueInto is Value writing into a caller-owned buffer of length
// len(xyz)/3.
func (c *Composite) ValueInto(dst []float64, xyz []float64, t float64) error {
	if len(dst) != len(xyz)/3 {
		return ErrOutputSize
	}
	return c.batch(xyz, func(i int, q Vec3) {
		dst[i] = c.valueAt(t, q)
	})
}

// Gradient evaluates the summed potential gradient at every point,
// returning a flat (x,y,z) array of the same shape as xyz. The
// gradient equals minus the acceleration.
func (c *Composite) Gradient(xyz []float64, t float64) ([]float64, error) {
	out := make([]float64, len(xyz))
	if err := c.GradientInto(out, xyz, t); err != nil {
		return nil, err
	}
	return out, nil
}

// GradientInto is Gradient writing into a caller-owned buffer of the
// same length as xyz. The buffer is zeroed first: kernels accumulate
// into their point's slot, they never assign.
func (c *Composite) GradientInto(dst []float64, xyz []float64, t float64) error {
	if len(xyz)%3 != 0 {
		return ErrPositions
	}
	if len(dst) != len(xyz) {
		return ErrOutputSize
	}
	for i := range dst {
		dst[i] = 0
	}
	return c.batch(xyz, func(i int, q Vec3) {
		var g Vec3
		c.gradientAt(t, q, &g)
		dst[3*i] += g[0]
		dst[3*i+1] += g[1]
		dst[3*i+2] += g[2]
	})
}

// Density evaluates the summed mass density at every point. Kernels
// with no analytic density contribute NaN, which propagates.
func (c *Composite) Density(xyz []float64, t float64) ([]float64, error) {
	out := make([]float64, len(xyz)/3)
	if err := c.DensityInto(out, xyz, t); err != nil {
		return nil, err
	}
	return out, nil
}

// DensityInto is Density writing into a caller-owned buffer of length
// len(xyz)/3.
func (c *Composite) DensityInto(dst []float64, xyz []float64, t float64) error {
	if len(dst) != len(xyz)/3 {
		return ErrOutputSize
	}
	return c.batch(xyz, func(i int, q Vec3) {
		dst[i] = c.densityAt(t, q)
	})
}
