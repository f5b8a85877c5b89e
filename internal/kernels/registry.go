package kernels

import (
	"fmt"
	"sort"

	"github.com/avi-seth/gravkit/internal/gravity"
)

// Spec describes one registered kernel type: its parameter-buffer slot
// names (slot 0 is always the gravitational constant) and the factory
// that validates a flat buffer and builds an immutable kernel.
type Spec struct {
	Name      string
	Slots     []string
	Rotatable bool
	New       func(pars []float64) (gravity.Kernel, error)
}

var registry = map[string]Spec{
	"kepler": {
		Name:  "kepler",
		Slots: []string{"G", "m"},
		New:   func(p []float64) (gravity.Kernel, error) { return NewKepler(p) },
	},
	"hernquist": {
		Name:  "hernquist",
		Slots: []string{"G", "m", "c"},
		New:   func(p []float64) (gravity.Kernel, error) { return NewHernquist(p) },
	},
	"jaffe": {
		Name:  "jaffe",
		Slots: []string{"G", "m", "c"},
		New:   func(p []float64) (gravity.Kernel, error) { return NewJaffe(p) },
	},
	"miyamotonagai": {
		Name:  "miyamotonagai",
		Slots: []string{"G", "m", "a", "b"},
		New:   func(p []float64) (gravity.Kernel, error) { return NewMiyamotoNagai(p) },
	},
	"logarithmic": {
		Name:      "logarithmic",
		Slots:     []string{"G", "v_c", "r_h", "q1", "q2", "q3"},
		Rotatable: true,
		New:       func(p []float64) (gravity.Kernel, error) { return NewLogarithmic(p) },
	},
	"leesuto": {
		Name:      "leesuto",
		Slots:     []string{"G", "v_c", "r_s", "a", "b", "c"},
		Rotatable: true,
		New:       func(p []float64) (gravity.Kernel, error) { return NewLeeSuto(p) },
	},
}

// Lookup returns the Spec for a kernel type name.
func Lookup(name string) (Spec, error) {
	spec, ok := registry[name]
	if !ok {
		return Spec{}, fmt.Errorf("unknown kernel: %s", name)
	}
	return spec, nil
}

// New builds a kernel of the named type from a flat parameter buffer
// laid out [G, params..., optional 9 rotation entries].
func New(name string, pars []float64) (gravity.Kernel, error) {
	spec, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	k, err := spec.New(pars)
	if err != nil {
		return nil, fmt.Errorf("kernel %s: %w", name, err)
	}
	return k, nil
}

// Names lists the registered kernel types in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
