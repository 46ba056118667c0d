package surrogate

import (
	"math"
	"testing"
)

func TestRelativeError(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		reference float64
		want      float64
	}{
		{
			name:      "equal",
			value:     784.890710023572,
			reference: 784.890710023572,
			want:      0,
		},
		{
			name:      "above",
			value:     110,
			reference: 100,
			want:      0.1,
		},
		{
			name:      "below negative reference",
			value:     -90,
			reference: -100,
			want:      -0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeError(tt.value, tt.reference); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("RelativeError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		value     float64
		tolerance float64
		want      bool
	}{
		{name: "exact", x: 5, value: 5, tolerance: 0, want: true},
		{name: "within", x: 100.5, value: 100, tolerance: 0.01, want: true},
		{name: "outside", x: 102, value: 100, tolerance: 0.01, want: false},
		{name: "zero value", x: 1e-20, value: 0, tolerance: 0.5, want: false},
		{name: "negative tolerance", x: 100, value: 101, tolerance: -1, want: false},
		{name: "nan", x: math.NaN(), value: 1, tolerance: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinTolerance(tt.x, tt.value, tt.tolerance); got != tt.want {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, want %v", tt.x, tt.value, tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{Min: 0.4, Max: 0.7}
	for _, v := range []float64{0.4, 0.55, 0.7} {
		if !b.Contains(v) {
			t.Errorf("Contains(%v) = false, want true", v)
		}
	}
	for _, v := range []float64{0.39, 0.71, math.NaN(), math.Inf(1)} {
		if b.Contains(v) {
			t.Errorf("Contains(%v) = true, want false", v)
		}
	}
	if got := b.String(); got != "[0.4, 0.7]" {
		t.Errorf("String() = %q", got)
	}
	if got := NewBoundsFromSpec(b.Spec()); got != b {
		t.Errorf("spec round trip = %v, want %v", got, b)
	}
}
