package wingweight

import (
	"fmt"
	"sort"

	"github.com/aero-sizing/wingweight/pkg/surrogate"
)

// model names
const (
	Pegasus = "pegasus"
	TBW     = "tbw"
)

// parameter names shared by both configurations
const (
	WingArea        = "wing_area"
	WingAR          = "wing_ar"
	WingTaper       = "wing_taper"
	WingAFThickness = "wing_af_thickness"
	MTOW            = "mtow"
)

// Inputs is a typed parameter record of one surrogate.
type Inputs interface {
	// Vector in the fitted parameter order of the surrogate
	Vector() []float64
}

// A wing weight surrogate with its typed inputs and reference prediction
type Model struct {
	surface   *surrogate.ResponseSurface
	defaults  func() Inputs
	baseline  func() Inputs
	reference float64
}

var models = map[string]*Model{
	Pegasus: {
		surface:   pegasusSurface,
		defaults:  func() Inputs { in := DefaultPegasusInputs(); return &in },
		baseline:  func() Inputs { in := BaselinePegasusInputs(); return &in },
		reference: PegasusJMPReference,
	},
	TBW: {
		surface:   tbwSurface,
		defaults:  func() Inputs { in := DefaultTBWInputs(); return &in },
		baseline:  func() Inputs { in := BaselineTBWInputs(); return &in },
		reference: TBWJMPReference,
	},
}

// Lookup a model by name
func Lookup(name string) (*Model, error) {
	m, exists := models[name]
	if !exists {
		return nil, fmt.Errorf("unknown wing weight model %q", name)
	}
	return m, nil
}

// Names of the available models, sorted
func Names() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Model) Name() string {
	return m.surface.Name()
}

func (m *Model) Surface() *surrogate.ResponseSurface {
	return m.surface
}

// NewInputs returns a pointer to a fresh record holding the documented defaults,
// suitable for decoding a partial record on top of.
func (m *Model) NewInputs() Inputs {
	return m.defaults()
}

// BaselineInputs returns the design point of the reference prediction.
func (m *Model) BaselineInputs() Inputs {
	return m.baseline()
}

// JMP prediction at the baseline inputs
func (m *Model) Reference() float64 {
	return m.reference
}

// Evaluate the model at a typed record. A record of another model is rejected
// because its vector does not match the surface dimension.
func (m *Model) Evaluate(in Inputs) (float64, error) {
	if in == nil {
		return 0, fmt.Errorf("no inputs for model %s", m.Name())
	}
	return m.surface.Evaluate(in.Vector())
}

func (m *Model) String() string {
	return fmt.Sprintf("Model: name=%s; reference=%v; %v", m.Name(), m.reference, m.surface)
}

// the typed records of this package always produce vectors of the surface dimension
func mustEvaluate(s *surrogate.ResponseSurface, x []float64) float64 {
	estimate, err := s.Evaluate(x)
	if err != nil {
		panic(err)
	}
	return estimate
}
