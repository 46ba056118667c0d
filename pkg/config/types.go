package config

// Data related to a quadratic response surface
type SurfaceSpec struct {
	Name        string          `json:"name" yaml:"name"`               // model name
	Description string          `json:"description" yaml:"description"` // what the surface estimates
	Units       string          `json:"units" yaml:"units"`             // units of the estimate
	Intercept   float64         `json:"intercept" yaml:"intercept"`     // constant term
	Parameters  []ParameterSpec `json:"parameters" yaml:"parameters"`   // parameters in fitted order
	Quadratic   []PairSpec      `json:"quadratic" yaml:"quadratic"`     // second-order coefficients
}

// Specifications of a surface parameter
type ParameterSpec struct {
	Name        string     `json:"name" yaml:"name"`               // parameter name
	Description string     `json:"description" yaml:"description"` // meaning of the parameter
	Units       string     `json:"units" yaml:"units"`             // measurement units, empty if dimensionless
	Center      float64    `json:"center" yaml:"center"`           // fit center, offset before quadratic expansion
	Linear      float64    `json:"linear" yaml:"linear"`           // first-order coefficient (applied to the raw value)
	Default     float64    `json:"default" yaml:"default"`         // documented baseline value
	Bounds      BoundsSpec `json:"bounds" yaml:"bounds"`           // advisory range of the fit data
}

// Inclusive range of a parameter
type BoundsSpec struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Second-order coefficient of an unordered pair of parameters (First == Second for pure quadratic terms)
type PairSpec struct {
	First       string  `json:"first" yaml:"first"`
	Second      string  `json:"second" yaml:"second"`
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
}
