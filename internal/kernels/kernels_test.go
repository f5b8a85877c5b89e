package kernels

import (
	"errors"
	"math"
	"testing"

	"github.com/avi-seth/gravkit/internal/gravity"
)

// rotZ30 is a 30-degree rotation about z, row-major, for the
// rotatable kernels' trailing parameter slots.
var rotZ30 = []float64{
	0.8660254037844387, 0.5, 0,
	-0.5, 0.8660254037844387, 0,
	0, 0, 1,
}

var gradientCases = []struct {
	name string
	pars []float64
}{
	{"kepler", []float64{1, 1}},
	{"hernquist", []float64{1, 1, 0.5}},
	{"jaffe", []float64{1, 1, 0.5}},
	{"miyamotonagai", []float64{1, 1, 1.0, 0.3}},
	{"logarithmic", []float64{1, 0.5, 0.2, 1, 0.9, 0.8}},
	{"leesuto", []float64{1, 0.5, 2.0, 1, 0.9, 0.8}},
	{"logarithmic", append([]float64{1, 0.5, 0.2, 1, 0.9, 0.8}, rotZ30...)},
	{"leesuto", append([]float64{1, 0.5, 2.0, 1, 0.9, 0.8}, rotZ30...)},
}

var testPoints = []gravity.Vec3{
	{1, 0.5, 0.3},
	{-0.7, 1.2, 0.4},
	{2, -1, 0.5},
	{0.3, 0.2, 1.5},
	{3, 4, 0.1},
}

// valueFD is a central difference of the kernel value along axis.
func valueFD(k gravity.Kernel, q gravity.Vec3, axis int, h float64) float64 {
	plus, minus := q, q
	plus[axis] += h
	minus[axis] -= h
	return (k.Value(0, plus) - k.Value(0, minus)) / (2 * h)
}

func TestGradientMatchesFiniteDifference(t *testing.T) {
	const h = 1e-5

	for _, tc := range gradientCases {
		k, err := New(tc.name, tc.pars)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}

		rotated := ""
		if len(tc.pars) > 6 {
			rotated = " (rotated)"
		}
		for _, q := range testPoints {
			var grad gravity.Vec3
			k.Gradient(0, q, &grad)

			for axis := 0; axis < 3; axis++ {
				fd := valueFD(k, q, axis, h)
				tol := 1e-6 * math.Max(1, math.Abs(grad[axis]))
				if math.Abs(fd-grad[axis]) > tol {
					t.Errorf("%s%s at %v axis %d: analytic %v, finite difference %v",
						tc.name, rotated, q, axis, grad[axis], fd)
				}
			}
		}
	}
}

// laplacianFD is a second central difference of the kernel value
// summed over the three axes.
func laplacianFD(k gravity.Kernel, q gravity.Vec3, h float64) float64 {
	mid := k.Value(0, q)
	sum := 0.0
	for axis := 0; axis < 3; axis++ {
		plus, minus := q, q
		plus[axis] += h
		minus[axis] -= h
		sum += (k.Value(0, plus) - 2*mid + k.Value(0, minus)) / (h * h)
	}
	return sum
}

func TestDensityMatchesPoisson(t *testing.T) {
	// Kernels with exact value/density pairs must satisfy
	// laplacian(Phi) = 4 pi G rho. Kepler has no analytic density and
	// the Lee-Suto potential is itself a closed-form approximation to
	// its density's true field, so neither is checked here.
	cases := []struct {
		name string
		pars []float64
	}{
		{"hernquist", []float64{1, 1, 0.5}},
		{"jaffe", []float64{1, 1, 0.5}},
		{"miyamotonagai", []float64{1, 1, 1.0, 0.3}},
		{"logarithmic", []float64{1, 0.5, 0.2, 1, 0.9, 0.8}},
	}

	const h = 1e-3
	for _, tc := range cases {
		k, err := New(tc.name, tc.pars)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		for _, q := range testPoints {
			want := 4 * math.Pi * tc.pars[0] * k.Density(0, q)
			got := laplacianFD(k, q, h)
			tol := 5e-4 * math.Max(1e-3, math.Abs(want))
			if math.Abs(got-want) > tol {
				t.Errorf("%s at %v: laplacian %v, 4 pi G rho %v", tc.name, q, got, want)
			}
		}
	}
}

func TestKeplerConcrete(t *testing.T) {
	k, err := New("kepler", []float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}

	q := gravity.Vec3{1, -1, 0}
	want := -1 / math.Sqrt2
	if got := k.Value(0, q); math.Abs(got-want) > 1e-14 {
		t.Errorf("value = %v, want %v", got, want)
	}

	var grad gravity.Vec3
	k.Gradient(0, q, &grad)
	wantGrad := gravity.Vec3{1 / (2 * math.Sqrt2), -1 / (2 * math.Sqrt2), 0}
	for i := 0; i < 3; i++ {
		if math.Abs(grad[i]-wantGrad[i]) > 1e-14 {
			t.Errorf("grad[%d] = %v, want %v", i, grad[i], wantGrad[i])
		}
	}

	if !math.IsNaN(k.Density(0, q)) {
		t.Errorf("kepler density = %v, want NaN", k.Density(0, q))
	}
}

func TestLogarithmicSphericalLimit(t *testing.T) {
	// q1 = q2 = q3 = 1 must reduce to the spherical closed form.
	v, rh := 0.5, 0.2
	k, err := New("logarithmic", []float64{1, v, rh, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}

	for _, q := range []gravity.Vec3{{3, 4, 0}, {0, 0, 5}} {
		r2 := q.Norm2()
		want := 0.5 * v * v * math.Log(r2+rh*rh)
		if got := k.Value(0, q); math.Abs(got-want) > 1e-14 {
			t.Errorf("at %v: value = %v, want %v", q, got, want)
		}
	}
}

func TestLeeSutoSphericalLimit(t *testing.T) {
	// a = b = c must give the spherical NFW form
	// Phi = -v_h^2 ln(1+u)/u.
	vc, rs := 0.5, 2.0
	k, err := New("leesuto", []float64{1, vc, rs, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	vh2 := vc * vc / (math.Ln2 - 0.5)

	for _, q := range []gravity.Vec3{{3, 4, 0}, {0, 0, 5}} {
		u := q.Norm() / rs
		want := -vh2 * math.Log(1+u) / u
		if got := k.Value(0, q); math.Abs(got-want) > 1e-13 {
			t.Errorf("at %v: value = %v, want %v", q, got, want)
		}
	}
}

func TestLeeSutoTriaxialBranchNearSphericalLimit(t *testing.T) {
	// An almost-isotropic halo goes through the triaxial branch but
	// must land within rounding of the spherical fast path.
	vc, rs := 0.5, 2.0
	sph, err := New("leesuto", []float64{1, vc, rs, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	tri, err := New("leesuto", []float64{1, vc, rs, 1, 1 - 1e-9, 1 - 1e-9})
	if err != nil {
		t.Fatal(err)
	}

	for _, q := range []gravity.Vec3{{3, 4, 0}, {0, 0, 5}, {1, -2, 0.5}} {
		a, b := sph.Value(0, q), tri.Value(0, q)
		if math.Abs(a-b) > 1e-7 {
			t.Errorf("at %v: spherical %v, near-spherical triaxial %v", q, a, b)
		}

		var ga, gb gravity.Vec3
		sph.Gradient(0, q, &ga)
		tri.Gradient(0, q, &gb)
		for i := 0; i < 3; i++ {
			if math.Abs(ga[i]-gb[i]) > 1e-7 {
				t.Errorf("at %v grad[%d]: spherical %v, triaxial %v", q, i, ga[i], gb[i])
			}
		}
	}
}

func TestRotationIsChangeOfBasis(t *testing.T) {
	// A rotated kernel evaluated at q must equal the unrotated kernel
	// at R q.
	base := []float64{1, 0.5, 0.2, 1, 0.9, 0.8}
	plain, err := New("logarithmic", base)
	if err != nil {
		t.Fatal(err)
	}
	rotated, err := New("logarithmic", append(append([]float64{}, base...), rotZ30...))
	if err != nil {
		t.Fatal(err)
	}

	rot, err := gravity.NewRotation(rotZ30)
	if err != nil {
		t.Fatal(err)
	}

	for _, q := range testPoints {
		want := plain.Value(0, rot.ToBody(q))
		if got := rotated.Value(0, q); math.Abs(got-want) > 1e-13 {
			t.Errorf("at %v: rotated value = %v, want %v", q, got, want)
		}
	}
}

func TestParameterBufferValidation(t *testing.T) {
	cases := []struct {
		name string
		pars []float64
	}{
		{"kepler", []float64{1}},
		{"kepler", []float64{1, 1, 1}},
		{"hernquist", []float64{1, 1}},
		{"miyamotonagai", []float64{1, 1, 1}},
		{"logarithmic", []float64{1, 0.5, 0.2, 1, 1}},
		// Rotation must be exactly 9 trailing entries.
		{"logarithmic", append([]float64{1, 0.5, 0.2, 1, 1, 1}, 1, 0, 0, 0, 1, 0)},
		{"leesuto", []float64{1, 0.5}},
	}

	for _, tc := range cases {
		if _, err := New(tc.name, tc.pars); !errors.Is(err, gravity.ErrParams) {
			t.Errorf("%s with %d params: err = %v, want ErrParams", tc.name, len(tc.pars), err)
		}
	}
}

func TestUnknownKernel(t *testing.T) {
	if _, err := New("plummer", []float64{1, 1, 1}); err == nil {
		t.Error("expected error for unregistered kernel type")
	}
	if _, err := Lookup("plummer"); err == nil {
		t.Error("expected error from Lookup")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 6 {
		t.Fatalf("got %d kernel types, want 6", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestMassEnclosedKeplerComposite(t *testing.T) {
	// End to end: a registered point mass encloses M at every radius.
	const G = 2.5
	const m = 7.0

	k, err := New("kepler", []float64{G, m})
	if err != nil {
		t.Fatal(err)
	}
	comp := gravity.NewComposite()
	if err := comp.Add(k); err != nil {
		t.Fatal(err)
	}

	xyz := []float64{0.5, 0, 0, 0, 3, 0, 1, 1, 1}
	menc, err := comp.MassEnclosed(xyz, G, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, got := range menc {
		if math.Abs(got-m) > 1e-5*m {
			t.Errorf("point %d: M = %v, want %v", i, got, m)
		}
	}
}
