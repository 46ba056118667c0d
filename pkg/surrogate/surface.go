package surrogate

import (
	"bytes"
	"fmt"

	"github.com/aero-sizing/wingweight/pkg/config"
	"gonum.org/v1/gonum/mat"
)

// Second-order response surface fitted around a center point:
//
//	f(x) = a + sum_i b_i*x_i + sum_{i<=j} q_ij*(x_i-c_i)*(x_j-c_j)
//
// The linear terms use the raw parameter values, only the quadratic terms are offset.
// A ResponseSurface is immutable once built and safe for concurrent use.
type ResponseSurface struct {
	name        string
	description string
	units       string
	intercept   float64

	params []config.ParameterSpec // parameters in fitted order
	index  map[string]int         // parameter name to position

	center *mat.VecDense // c
	linear *mat.VecDense // b
	quad   *mat.SymDense // q (upper triangle is the fitted table)
}

// NewResponseSurface builds a surface from its spec. Every unordered pair of parameters,
// self-pairs included, must have exactly one coefficient value.
func NewResponseSurface(spec *config.SurfaceSpec) (*ResponseSurface, error) {
	if spec == nil {
		return nil, fmt.Errorf("nil surface spec")
	}
	n := len(spec.Parameters)
	if n == 0 {
		return nil, fmt.Errorf("surface %q has no parameters", spec.Name)
	}

	s := &ResponseSurface{
		name:        spec.Name,
		description: spec.Description,
		units:       spec.Units,
		intercept:   spec.Intercept,
		params:      make([]config.ParameterSpec, n),
		index:       make(map[string]int, n),
		center:      mat.NewVecDense(n, nil),
		linear:      mat.NewVecDense(n, nil),
		quad:        mat.NewSymDense(n, nil),
	}
	for i, p := range spec.Parameters {
		if p.Name == "" {
			return nil, fmt.Errorf("surface %q: parameter %d has no name", spec.Name, i)
		}
		if _, exists := s.index[p.Name]; exists {
			return nil, fmt.Errorf("surface %q: duplicate parameter %q", spec.Name, p.Name)
		}
		s.index[p.Name] = i
		s.params[i] = p
		s.center.SetVec(i, p.Center)
		s.linear.SetVec(i, p.Linear)
	}

	seen := make([]bool, n*n)
	count := 0
	for _, pair := range spec.Quadratic {
		i, ok := s.index[pair.First]
		if !ok {
			return nil, fmt.Errorf("surface %q: quadratic term names unknown parameter %q", spec.Name, pair.First)
		}
		j, ok := s.index[pair.Second]
		if !ok {
			return nil, fmt.Errorf("surface %q: quadratic term names unknown parameter %q", spec.Name, pair.Second)
		}
		if i > j {
			i, j = j, i
		}
		if seen[i*n+j] {
			if s.quad.At(i, j) != pair.Coefficient {
				return nil, fmt.Errorf("surface %q: conflicting coefficients for pair (%s, %s)",
					spec.Name, pair.First, pair.Second)
			}
			continue
		}
		seen[i*n+j] = true
		count++
		s.quad.SetSym(i, j, pair.Coefficient)
	}
	if want := n * (n + 1) / 2; count != want {
		return nil, fmt.Errorf("surface %q: %d of %d quadratic pairs defined", spec.Name, count, want)
	}
	return s, nil
}

func MustNewResponseSurface(spec *config.SurfaceSpec) *ResponseSurface {
	s, err := NewResponseSurface(spec)
	if err != nil {
		panic(err)
	}
	return s
}

// Evaluate the surface at x, given in parameter order.
//
// Terms are summed in a fixed order (intercept, linear terms, then pairs i<=j row by row)
// and every product is rounded before it is added, so results are bit-reproducible.
func (s *ResponseSurface) Evaluate(x []float64) (float64, error) {
	if err := s.checkDim(x); err != nil {
		return 0, err
	}
	n := len(s.params)
	estimate := s.intercept
	for i := 0; i < n; i++ {
		estimate += float64(s.linear.AtVec(i) * x[i])
	}
	for i := 0; i < n; i++ {
		di := x[i] - s.center.AtVec(i)
		for j := i; j < n; j++ {
			dj := x[j] - s.center.AtVec(j)
			estimate += float64(di * float64(dj*s.quad.At(i, j)))
		}
	}
	return estimate, nil
}

// Gradient returns the partial derivatives of the surface at x, in parameter order.
func (s *ResponseSurface) Gradient(x []float64) ([]float64, error) {
	if err := s.checkDim(x); err != nil {
		return nil, err
	}
	n := len(s.params)
	d := mat.NewVecDense(n, nil)
	d.SubVec(mat.NewVecDense(n, append([]float64(nil), x...)), s.center)

	// off-diagonal pairs appear once in the sum, self-pairs contribute 2*q_kk*d_k
	g := mat.NewVecDense(n, nil)
	g.MulVec(s.quad, d)
	for k := 0; k < n; k++ {
		g.SetVec(k, g.AtVec(k)+s.quad.At(k, k)*d.AtVec(k)+s.linear.AtVec(k))
	}
	return g.RawVector().Data, nil
}

// CheckBounds lists the parameters of x lying outside their documented bounds.
// Evaluation does not depend on it; out-of-range points silently extrapolate.
func (s *ResponseSurface) CheckBounds(x []float64) ([]BoundViolation, error) {
	if err := s.checkDim(x); err != nil {
		return nil, err
	}
	var violations []BoundViolation
	for i, p := range s.params {
		if !NewBoundsFromSpec(p.Bounds).Contains(x[i]) {
			violations = append(violations, BoundViolation{
				Parameter: p.Name,
				Value:     x[i],
				Min:       p.Bounds.Min,
				Max:       p.Bounds.Max,
			})
		}
	}
	return violations, nil
}

func (s *ResponseSurface) checkDim(x []float64) error {
	if len(x) != len(s.params) {
		return fmt.Errorf("surface %s expects %d parameters, got %d", s.name, len(s.params), len(x))
	}
	return nil
}

func (s *ResponseSurface) Name() string {
	return s.name
}

func (s *ResponseSurface) Units() string {
	return s.units
}

func (s *ResponseSurface) Intercept() float64 {
	return s.intercept
}

func (s *ResponseSurface) Dimension() int {
	return len(s.params)
}

// Parameter names in fitted order
func (s *ResponseSurface) ParameterNames() []string {
	names := make([]string, len(s.params))
	for i, p := range s.params {
		names[i] = p.Name
	}
	return names
}

// Parameter returns the spec of a named parameter.
func (s *ResponseSurface) Parameter(name string) (config.ParameterSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return config.ParameterSpec{}, false
	}
	return s.params[i], true
}

// Center returns a copy of the fit center point.
func (s *ResponseSurface) Center() []float64 {
	return append([]float64(nil), s.center.RawVector().Data...)
}

// Defaults returns the documented baseline values, which need not equal the center.
func (s *ResponseSurface) Defaults() []float64 {
	x := make([]float64, len(s.params))
	for i, p := range s.params {
		x[i] = p.Default
	}
	return x
}

// Quadratic coefficient of an unordered pair; Quadratic(a, b) == Quadratic(b, a).
func (s *ResponseSurface) Quadratic(a, b string) (float64, bool) {
	i, ok := s.index[a]
	if !ok {
		return 0, false
	}
	j, ok := s.index[b]
	if !ok {
		return 0, false
	}
	return s.quad.At(i, j), true
}

// QuadraticMatrix returns a copy of the symmetric coefficient table.
func (s *ResponseSurface) QuadraticMatrix() *mat.SymDense {
	q := mat.NewSymDense(len(s.params), nil)
	q.CopySym(s.quad)
	return q
}

// Spec rebuilds the surface spec, listing pairs row by row over the upper triangle.
func (s *ResponseSurface) Spec() *config.SurfaceSpec {
	n := len(s.params)
	spec := &config.SurfaceSpec{
		Name:        s.name,
		Description: s.description,
		Units:       s.units,
		Intercept:   s.intercept,
		Parameters:  append([]config.ParameterSpec(nil), s.params...),
		Quadratic:   make([]config.PairSpec, 0, n*(n+1)/2),
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			spec.Quadratic = append(spec.Quadratic, config.PairSpec{
				First:       s.params[i].Name,
				Second:      s.params[j].Name,
				Coefficient: s.quad.At(i, j),
			})
		}
	}
	return spec
}

func (s *ResponseSurface) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "ResponseSurface: name=%s; dim=%d; intercept=%v; ", s.name, len(s.params), s.intercept)
	fmt.Fprintf(&b, "params=%v", s.ParameterNames())
	return b.String()
}
