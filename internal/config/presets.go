package config

// Presets are ready-made composite definitions in kpc / Msun / Myr
// units. Disk and halo parameters for "milkyway" follow the usual
// Milky-Way-like decomposition: Hernquist nucleus and bulge,
// Miyamoto-Nagai disk, spherical Lee-Suto (NFW) halo.
var Presets = map[string]*Config{
	"pointmass": {
		Components: []Component{
			{Type: "kepler", Params: []float64{1.0, 1.0}},
		},
	},
	"milkyway": {
		Components: []Component{
			{Type: "hernquist", Params: []float64{DefaultG, 1.71e9, 0.07}},
			{Type: "hernquist", Params: []float64{DefaultG, 5.0e9, 1.0}},
			{Type: "miyamotonagai", Params: []float64{DefaultG, 6.8e10, 3.0, 0.28}},
			{Type: "leesuto", Params: []float64{DefaultG, 0.18, 15.62, 1.0, 1.0, 1.0}},
		},
	},
	"triaxial": {
		Components: []Component{
			{Type: "miyamotonagai", Params: []float64{DefaultG, 6.8e10, 3.0, 0.28}},
			{Type: "logarithmic", Params: []float64{DefaultG, 0.175, 12.0, 1.0, 0.9, 0.8}},
		},
	},
}
