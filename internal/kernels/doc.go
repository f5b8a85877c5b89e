// Package kernels provides the built-in analytic potential models.
//
// Each model implements the [gravity.Kernel] interface, defining the
// potential value, its exact analytic gradient, and (where one exists)
// the mass density implied by Poisson's equation:
//
//   - [Kepler]: point mass
//   - [Hernquist]: spheroid with an inner 1/r density cusp
//   - [Jaffe]: spheroid with an inner 1/r^2 density cusp
//   - [MiyamotoNagai]: flattened disk
//   - [Logarithmic]: flat-rotation-curve triaxial halo
//   - [LeeSuto]: triaxial NFW-type halo
//
// Every kernel is constructed from a flat parameter buffer laid out as
// [G, model parameters..., optional 9 row-major rotation entries]; the
// buffer is validated and copied at construction and never mutated.
// The [Lookup] registry maps kernel names to factories and documents
// each type's parameter slots.
package kernels
