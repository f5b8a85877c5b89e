package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avi-seth/gravkit/internal/gravity"
	"github.com/avi-seth/gravkit/internal/kernels"
)

// DefaultG is the gravitational constant in kpc^3 / (Msun Myr^2), the
// unit system the bundled presets use. Parameter buffers carry their
// own G in slot 0, so nothing in the engine depends on this choice.
const DefaultG = 4.498502151469553e-12

type Config struct {
	Time       float64     `yaml:"time"`
	Workers    int         `yaml:"workers"`
	Components []Component `yaml:"components"`
}

// Component names one kernel type and its flat parameter buffer,
// laid out [G, model parameters..., optional 9 rotation entries].
type Component struct {
	Type   string    `yaml:"type"`
	Params []float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Components: []Component{
			{Type: "kepler", Params: []float64{1.0, 1.0}},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build assembles the configured composite, validating every
// component's parameter buffer through the kernel registry.
func (c *Config) Build() (*gravity.Composite, error) {
	comp := gravity.NewComposite()
	comp.Workers = c.Workers
	for i, cc := range c.Components {
		k, err := kernels.New(cc.Type, cc.Params)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		if err := comp.Add(k); err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
	}
	return comp, nil
}
