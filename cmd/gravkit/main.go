package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/avi-seth/gravkit/internal/config"
	"github.com/avi-seth/gravkit/internal/gravity"
	"github.com/avi-seth/gravkit/internal/kernels"
)

var (
	configFile string
	preset     string
	pointsFile string
	tEval      float64
	gConst     float64
	workers    int
	jsonOut    string
	// Profile range
	rMin     float64
	rMax     float64
	nSamples int
	quantity string
	// Bench batch size
	benchN int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravkit",
		Short: "analytic gravitational potential evaluation",
	}

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate a composite potential at a batch of points",
		RunE:  evalPoints,
	}
	evalCmd.Flags().StringVar(&configFile, "config", "", "composite definition (yaml)")
	evalCmd.Flags().StringVar(&preset, "preset", "", "use preset composite")
	evalCmd.Flags().StringVar(&pointsFile, "points", "", "csv file of x,y,z rows")
	evalCmd.Flags().Float64Var(&tEval, "t", 0.0, "evaluation time")
	evalCmd.Flags().Float64Var(&gConst, "G", config.DefaultG, "gravitational constant for mass-enclosed")
	evalCmd.Flags().IntVar(&workers, "workers", 0, "max goroutines for batch fan-out (0 = all CPUs)")
	evalCmd.Flags().StringVar(&jsonOut, "json", "", "write results to a json file instead of stdout")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "radial profile of a composite potential",
		RunE:  profilePotential,
	}
	profileCmd.Flags().StringVar(&configFile, "config", "", "composite definition (yaml)")
	profileCmd.Flags().StringVar(&preset, "preset", "milkyway", "use preset composite")
	profileCmd.Flags().Float64Var(&rMin, "rmin", 0.1, "inner radius")
	profileCmd.Flags().Float64Var(&rMax, "rmax", 30.0, "outer radius")
	profileCmd.Flags().IntVar(&nSamples, "n", 80, "number of radii")
	profileCmd.Flags().StringVar(&quantity, "quantity", "vcirc", "vcirc, value, or menc")
	profileCmd.Flags().Float64Var(&gConst, "G", config.DefaultG, "gravitational constant for mass-enclosed")
	profileCmd.Flags().Float64Var(&tEval, "t", 0.0, "evaluation time")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list kernel types and parameter layouts",
		RunE:  listModels,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset composites",
		RunE: func(cmd *cobra.Command, args []string) error {
			for name, cfg := range config.Presets {
				fmt.Printf("%s (%d components)\n", name, len(cfg.Components))
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time batch evaluation",
		RunE:  benchComposite,
	}
	benchCmd.Flags().StringVar(&configFile, "config", "", "composite definition (yaml)")
	benchCmd.Flags().StringVar(&preset, "preset", "milkyway", "use preset composite")
	benchCmd.Flags().IntVar(&benchN, "n", 100000, "batch size")
	benchCmd.Flags().IntVar(&workers, "workers", 0, "max goroutines for batch fan-out")

	rootCmd.AddCommand(evalCmd, profileCmd, modelsCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadComposite resolves --config / --preset into a built composite.
func loadComposite() (*gravity.Composite, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	case preset != "":
		p, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		cfg = p
	default:
		cfg = config.DefaultConfig()
	}
	comp, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if workers != 0 {
		comp.Workers = workers
	}
	return comp, nil
}

func readPoints(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	xyz := make([]float64, 0, 3*len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("row %d: want 3 columns, got %d", i+1, len(row))
		}
		for _, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			xyz = append(xyz, v)
		}
	}
	return xyz, nil
}

type evalResult struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Value    float64 `json:"value"`
	GradX    float64 `json:"grad_x"`
	GradY    float64 `json:"grad_y"`
	GradZ    float64 `json:"grad_z"`
	Density  float64 `json:"density"`
	MassEncl float64 `json:"mass_enclosed"`
}

func evalPoints(cmd *cobra.Command, args []string) error {
	comp, err := loadComposite()
	if err != nil {
		return err
	}

	var xyz []float64
	if pointsFile != "" {
		xyz, err = readPoints(pointsFile)
		if err != nil {
			return err
		}
	} else {
		// Sample along the x axis by default.
		for i := 1; i <= 10; i++ {
			xyz = append(xyz, float64(i), 0, 0)
		}
	}

	vals, err := comp.Value(xyz, tEval)
	if err != nil {
		return err
	}
	grads, err := comp.Gradient(xyz, tEval)
	if err != nil {
		return err
	}
	dens, err := comp.Density(xyz, tEval)
	if err != nil {
		return err
	}
	menc, err := comp.MassEnclosed(xyz, gConst, tEval)
	if err != nil {
		return err
	}

	results := make([]evalResult, len(vals))
	for i := range vals {
		results[i] = evalResult{
			X: xyz[3*i], Y: xyz[3*i+1], Z: xyz[3*i+2],
			Value: vals[i],
			GradX: grads[3*i], GradY: grads[3*i+1], GradZ: grads[3*i+2],
			Density: dens[i], MassEncl: menc[i],
		}
	}

	if jsonOut != "" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(jsonOut, data, 0644)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "X\tY\tZ\tVALUE\tGRAD_X\tGRAD_Y\tGRAD_Z\tDENSITY\tM_ENC")
	for _, r := range results {
		fmt.Fprintf(w, "%.4g\t%.4g\t%.4g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n",
			r.X, r.Y, r.Z, r.Value, r.GradX, r.GradY, r.GradZ, r.Density, r.MassEncl)
	}
	return w.Flush()
}

func profilePotential(cmd *cobra.Command, args []string) error {
	comp, err := loadComposite()
	if err != nil {
		return err
	}
	if nSamples < 2 {
		return fmt.Errorf("need at least 2 samples")
	}
	if rMin <= 0 || rMax <= rMin {
		return fmt.Errorf("need 0 < rmin < rmax")
	}

	xyz := make([]float64, 0, 3*nSamples)
	for i := 0; i < nSamples; i++ {
		r := rMin + (rMax-rMin)*float64(i)/float64(nSamples-1)
		xyz = append(xyz, r, 0, 0)
	}

	var data []float64
	switch quantity {
	case "vcirc":
		data, err = comp.CircularVelocity(xyz, tEval)
	case "value":
		data, err = comp.Value(xyz, tEval)
	case "menc":
		data, err = comp.MassEnclosed(xyz, gConst, tEval)
	default:
		return fmt.Errorf("unknown quantity: %s", quantity)
	}
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("%s over r = [%.3g, %.3g]", quantity, rMin, rMax)
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func listModels(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KERNEL\tPARAMS\tROTATABLE")
	for _, name := range kernels.Names() {
		spec, err := kernels.Lookup(name)
		if err != nil {
			return err
		}
		rotatable := ""
		if spec.Rotatable {
			rotatable = "yes"
		}
		slots := ""
		for i, s := range spec.Slots {
			if i > 0 {
				slots += ","
			}
			slots += s
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", spec.Name, slots, rotatable)
	}
	return w.Flush()
}

func benchComposite(cmd *cobra.Command, args []string) error {
	comp, err := loadComposite()
	if err != nil {
		return err
	}

	xyz := make([]float64, 3*benchN)
	for i := 0; i < benchN; i++ {
		xyz[3*i] = 1 + float64(i%100)*0.3
		xyz[3*i+1] = float64(i%17) * 0.5
		xyz[3*i+2] = float64(i%7) * 0.2
	}

	start := time.Now()
	if _, err := comp.Value(xyz, tEval); err != nil {
		return err
	}
	valElapsed := time.Since(start)

	start = time.Now()
	if _, err := comp.Gradient(xyz, tEval); err != nil {
		return err
	}
	gradElapsed := time.Since(start)

	fmt.Printf("components: %d\n", comp.Len())
	fmt.Printf("points: %d\n", benchN)
	fmt.Printf("value:    %v (%.0f pts/ms)\n", valElapsed, float64(benchN)/float64(valElapsed.Milliseconds()+1))
	fmt.Printf("gradient: %v (%.0f pts/ms)\n", gradElapsed, float64(benchN)/float64(gradElapsed.Milliseconds()+1))
	return nil
}
