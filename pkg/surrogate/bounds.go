package surrogate

import (
	"fmt"

	"github.com/aero-sizing/wingweight/pkg/config"
)

// Inclusive range of a parameter over which a surface was fitted
type Bounds struct {
	Min float64
	Max float64
}

func NewBoundsFromSpec(spec config.BoundsSpec) Bounds {
	return Bounds{Min: spec.Min, Max: spec.Max}
}

// Contains reports whether v lies in [Min, Max]. NaN is never contained.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

func (b Bounds) Spec() config.BoundsSpec {
	return config.BoundsSpec{Min: b.Min, Max: b.Max}
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%v, %v]", b.Min, b.Max)
}

// A parameter value outside the documented bounds; advisory only
type BoundViolation struct {
	Parameter string  `json:"parameter" yaml:"parameter"`
	Value     float64 `json:"value" yaml:"value"`
	Min       float64 `json:"min" yaml:"min"`
	Max       float64 `json:"max" yaml:"max"`
}

func (v BoundViolation) String() string {
	return fmt.Sprintf("%s=%v outside [%v, %v]", v.Parameter, v.Value, v.Min, v.Max)
}
