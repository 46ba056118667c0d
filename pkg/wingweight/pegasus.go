package wingweight

import (
	"github.com/aero-sizing/wingweight/pkg/config"
	"github.com/aero-sizing/wingweight/pkg/surrogate"
)

// PEGASUS parameter names, beyond the shared wing and mass names
const (
	BatteryWeightRatio   = "battery_weight_ratio"
	EngineInboardWeight  = "engine_inboard_weight"
	EngineInboardEta     = "engine_inboard_eta"
	EngineOutboardWeight = "engine_outboard_weight"
	EngineOutboardEta    = "engine_outboard_eta"
)

// JMP prediction of the PEGASUS wing weight at the baseline scenario (lb)
const PegasusJMPReference = 784.890710023572

// Inputs of the PEGASUS wing weight surrogate
type PegasusInputs struct {
	WingArea             float64 `json:"wing_area" yaml:"wing_area"`                           // sq. ft.
	WingAR               float64 `json:"wing_ar" yaml:"wing_ar"`                               // aspect ratio
	WingTaper            float64 `json:"wing_taper" yaml:"wing_taper"`                         // taper ratio
	WingAFThickness      float64 `json:"wing_af_thickness" yaml:"wing_af_thickness"`           // airfoil thickness
	MTOW                 float64 `json:"mtow" yaml:"mtow"`                                     // lb
	BatteryWeightRatio   float64 `json:"battery_weight_ratio" yaml:"battery_weight_ratio"`     // battery weight / mtow
	EngineInboardWeight  float64 `json:"engine_inboard_weight" yaml:"engine_inboard_weight"`   // lb
	EngineInboardEta     float64 `json:"engine_inboard_eta" yaml:"engine_inboard_eta"`         // fraction of half-span
	EngineOutboardWeight float64 `json:"engine_outboard_weight" yaml:"engine_outboard_weight"` // lb
	EngineOutboardEta    float64 `json:"engine_outboard_eta" yaml:"engine_outboard_eta"`       // fraction of half-span
}

// DefaultPegasusInputs returns the documented defaults of the PEGASUS surrogate.
func DefaultPegasusInputs() PegasusInputs {
	return PegasusInputs{
		WingArea:             578.,
		WingAR:               11.08,
		WingTaper:            0.547,
		WingAFThickness:      0.14,
		MTOW:                 44000.,
		BatteryWeightRatio:   0.35,
		EngineInboardWeight:  900.,
		EngineInboardEta:     0.392,
		EngineOutboardWeight: 1800.,
		EngineOutboardEta:    0.99,
	}
}

// BaselinePegasusInputs returns the design point of the JMP reference prediction.
// It differs from the defaults in the battery weight ratio.
func BaselinePegasusInputs() PegasusInputs {
	in := DefaultPegasusInputs()
	in.BatteryWeightRatio = 0.3
	return in
}

// Vector in the fitted parameter order of the PEGASUS surface
func (in *PegasusInputs) Vector() []float64 {
	return []float64{
		in.WingAR,
		in.WingTaper,
		in.WingArea,
		in.WingAFThickness,
		in.MTOW,
		in.BatteryWeightRatio,
		in.EngineInboardWeight,
		in.EngineInboardEta,
		in.EngineOutboardWeight,
		in.EngineOutboardEta,
	}
}

// EvaluatePegasus estimates the wing structural weight (lb) of the PEGASUS configuration.
// Inputs outside the documented bounds extrapolate the quadratic without complaint.
func EvaluatePegasus(in PegasusInputs) float64 {
	return mustEvaluate(pegasusSurface, in.Vector())
}

var pegasusSurface = surrogate.MustNewResponseSurface(&pegasusSpec)

var pegasusSpec = config.SurfaceSpec{
	Name:        Pegasus,
	Description: "Wing structural weight of the PEGASUS vehicle configuration for vehicle sizing tools like FLOPS or LEAPS",
	Units:       "lb",
	Intercept:   -763.654116272738,
	Parameters: []config.ParameterSpec{
		{
			Name:        WingAR,
			Description: "Aspect ratio of the wing, b^2/S with b the span in ft and S the Wimpress area in sq. ft.",
			Center:      11.089463482063,
			Linear:      66.6533463708713,
			Default:     11.08,
			Bounds:      config.BoundsSpec{Min: 7.756, Max: 14.404},
		},
		{
			Name:        WingTaper,
			Description: "Taper ratio c_t/c_r of the non-projected tip and root chords, root measured at the centerline",
			Center:      0.549316967122807,
			Linear:      436.788492704573,
			Default:     0.547,
			Bounds:      config.BoundsSpec{Min: 0.4, Max: 0.7},
		},
		{
			Name:        WingArea,
			Description: "Planform area of the wing measured using the Wimpress method",
			Units:       "ft^2",
			Center:      578.352162689163,
			Linear:      1.21715502571785,
			Default:     578.,
			Bounds:      config.BoundsSpec{Min: 404.6, Max: 751.4},
		},
		{
			Name:        WingAFThickness,
			Description: "Thickness of the wing airfoils, constant airfoil shape along the span",
			Center:      0.140046114226006,
			Linear:      -2950.25309234943,
			Default:     0.14,
			Bounds:      config.BoundsSpec{Min: 0.1, Max: 0.18},
		},
		{
			Name:        MTOW,
			Description: "Maximum takeoff weight of the vehicle",
			Units:       "lb",
			Center:      45067.1269825181,
			Linear:      0.0163144157953134,
			Default:     44000.,
			Bounds:      config.BoundsSpec{Min: 35e3, Max: 55e3},
		},
		{
			Name:        BatteryWeightRatio,
			Description: "Ratio of battery weight to maximum takeoff weight",
			Center:      0.304891299969045,
			Linear:      -35.3096443123149,
			Default:     0.35,
			Bounds:      config.BoundsSpec{Min: 0.245, Max: 0.455},
		},
		{
			Name:        EngineInboardWeight,
			Description: "Weight of the inboard engine",
			Units:       "lb",
			Center:      901.045007855934,
			Linear:      -0.0230719745324687,
			Default:     900.,
			Bounds:      config.BoundsSpec{Min: 600, Max: 1200},
		},
		{
			Name:        EngineInboardEta,
			Description: "Normalized span location of the inboard engine",
			Center:      0.375467167887513,
			Linear:      -152.537262155881,
			Default:     0.392,
			Bounds:      config.BoundsSpec{Min: 0.25, Max: 0.5},
		},
		{
			Name:        EngineOutboardWeight,
			Description: "Weight of the outboard engine",
			Units:       "lb",
			Center:      1798.4504628483,
			Linear:      -0.078580212183211,
			Default:     1800.,
			Bounds:      config.BoundsSpec{Min: 1200, Max: 2400},
		},
		{
			Name:        EngineOutboardEta,
			Description: "Normalized span location of the outboard engine",
			Center:      0.844749104111456,
			Linear:      -217.296864650889,
			Default:     0.99,
			Bounds:      config.BoundsSpec{Min: 0.85, Max: 0.99},
		},
	},
	Quadratic: []config.PairSpec{
		{First: WingAR, Second: WingAR, Coefficient: 3.32515028103463},
		{First: WingAR, Second: WingTaper, Coefficient: 80.0810304968525},
		{First: WingAR, Second: WingArea, Coefficient: 0.0679869849011377},
		{First: WingAR, Second: WingAFThickness, Coefficient: -632.721055431577},
		{First: WingAR, Second: MTOW, Coefficient: 0.00235424149828414},
		{First: WingAR, Second: BatteryWeightRatio, Coefficient: -14.6950965049355},
		{First: WingAR, Second: EngineInboardWeight, Coefficient: -0.0045676649394544},
		{First: WingAR, Second: EngineInboardEta, Coefficient: -31.7948952878013},
		{First: WingAR, Second: EngineOutboardWeight, Coefficient: -0.0130605611336943},
		{First: WingAR, Second: EngineOutboardEta, Coefficient: -49.7660905560111},
		{First: WingTaper, Second: WingTaper, Coefficient: 208.043958071801},
		{First: WingTaper, Second: WingArea, Coefficient: 0.399566153569777},
		{First: WingTaper, Second: WingAFThickness, Coefficient: -4681.22845517446},
		{First: WingTaper, Second: MTOW, Coefficient: 0.0148168755374293},
		{First: WingTaper, Second: BatteryWeightRatio, Coefficient: -19.1906778245744},
		{First: WingTaper, Second: EngineInboardWeight, Coefficient: 0.0170718428289706},
		{First: WingTaper, Second: EngineInboardEta, Coefficient: -135.424552441368},
		{First: WingTaper, Second: EngineOutboardWeight, Coefficient: -0.057278134745046},
		{First: WingTaper, Second: EngineOutboardEta, Coefficient: -174.466282246233},
		{First: WingArea, Second: WingArea, Coefficient: -0.000188690713945717},
		{First: WingArea, Second: WingAFThickness, Coefficient: -2.30265260237845},
		{First: WingArea, Second: MTOW, Coefficient: 0.0000151058790758956},
		{First: WingArea, Second: BatteryWeightRatio, Coefficient: 0.410596598562827},
		{First: WingArea, Second: EngineInboardWeight, Coefficient: -0.0000233386805120355},
		{First: WingArea, Second: EngineInboardEta, Coefficient: -0.0881905271304493},
		{First: WingArea, Second: EngineOutboardWeight, Coefficient: -0.0000546839233665841},
		{First: WingArea, Second: EngineOutboardEta, Coefficient: -0.305520724576287},
		{First: WingAFThickness, Second: WingAFThickness, Coefficient: 36135.7252036525},
		{First: WingAFThickness, Second: MTOW, Coefficient: -0.129022665411152},
		{First: WingAFThickness, Second: BatteryWeightRatio, Coefficient: -156.216624212617},
		{First: WingAFThickness, Second: EngineInboardWeight, Coefficient: 0.455452785051827},
		{First: WingAFThickness, Second: EngineInboardEta, Coefficient: 1651.39734196954},
		{First: WingAFThickness, Second: EngineOutboardWeight, Coefficient: 0.437340687962727},
		{First: WingAFThickness, Second: EngineOutboardEta, Coefficient: 1793.27103669289},
		{First: MTOW, Second: MTOW, Coefficient: 0.000000075413179298},
		{First: MTOW, Second: BatteryWeightRatio, Coefficient: -0.000406171183132496},
		{First: MTOW, Second: EngineInboardWeight, Coefficient: -0.0000003900624341104},
		{First: MTOW, Second: EngineInboardEta, Coefficient: -0.00296434684811031},
		{First: MTOW, Second: EngineOutboardWeight, Coefficient: -0.0000010065281736412},
		{First: MTOW, Second: EngineOutboardEta, Coefficient: -0.00230199459363745},
		{First: BatteryWeightRatio, Second: BatteryWeightRatio, Coefficient: 136.188540688368},
		{First: BatteryWeightRatio, Second: EngineInboardWeight, Coefficient: 0.123471075162514},
		{First: BatteryWeightRatio, Second: EngineInboardEta, Coefficient: 90.7460647792041},
		{First: BatteryWeightRatio, Second: EngineOutboardWeight, Coefficient: 0.0198872946728822},
		{First: BatteryWeightRatio, Second: EngineOutboardEta, Coefficient: 55.0181153025222},
		{First: EngineInboardWeight, Second: EngineInboardWeight, Coefficient: 0.0000236389247774922},
		{First: EngineInboardWeight, Second: EngineInboardEta, Coefficient: -0.09370310791469},
		{First: EngineInboardWeight, Second: EngineOutboardWeight, Coefficient: 0.0000166647330951795},
		{First: EngineInboardWeight, Second: EngineOutboardEta, Coefficient: 0.0410735845461825},
		{First: EngineInboardEta, Second: EngineInboardEta, Coefficient: -236.984105322582},
		{First: EngineInboardEta, Second: EngineOutboardWeight, Coefficient: 0.0401404174385669},
		{First: EngineInboardEta, Second: EngineOutboardEta, Coefficient: -141.822798401132},
		{First: EngineOutboardWeight, Second: EngineOutboardWeight, Coefficient: 0.0000168826355194513},
		{First: EngineOutboardWeight, Second: EngineOutboardEta, Coefficient: -0.0816642024504058},
		{First: EngineOutboardEta, Second: EngineOutboardEta, Coefficient: 487.31877454063},
	},
}
