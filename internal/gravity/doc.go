// Package gravity provides the core evaluation engine for analytic
// gravitational potentials.
//
// The package defines the fundamental types for evaluating scalar
// potentials, their gradients, and derived radial quantities:
//
//   - [Vec3]: a position or gradient in 3-space
//   - [Kernel]: interface for one analytic potential model
//   - [Composite]: fixed-capacity sum of kernels sharing one frame
//   - [Rotation]: precomputed principal-axis rotation for triaxial models
//
// Batch methods on [Composite] evaluate a flat (x,y,z) position array
// point by point, summing every registered kernel's contribution in
// registration order. Radial quantities with no closed form (enclosed
// mass, dPhi/dr, d2Phi/dr2) are computed by central finite differences
// along the radial unit vector through each point.
//
// # Example
//
//	comp := gravity.NewComposite()
//	k, _ := kernels.New("kepler", []float64{1.0, 1.0})
//	comp.Add(k)
//	phi, _ := comp.Value([]float64{1, -1, 0}, 0)
//
// # Thread Safety
//
// Kernels and a fully constructed Composite are immutable and safe for
// concurrent reads. Batch evaluation fans out across points with each
// worker writing only its own output slice; kernels within a point are
// always summed serially in registration order so results are
// bit-reproducible across runs.
package gravity
