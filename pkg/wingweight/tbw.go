package wingweight

import (
	"github.com/aero-sizing/wingweight/pkg/config"
	"github.com/aero-sizing/wingweight/pkg/surrogate"
)

// TBW parameter names, beyond the shared wing and mass names
const (
	WingSweepDelta = "wing_sweep_delta"
	StrutEta       = "strut_eta"
	EngineWeight   = "engine_weight"
)

// JMP prediction of the TBW wing weight at the baseline scenario (lb)
const TBWJMPReference = 4757.88328411493

// Inputs of the transonic truss-braced wing (TBW) weight surrogate
type TBWInputs struct {
	WingAFThickness float64 `json:"wing_af_thickness" yaml:"wing_af_thickness"` // airfoil thickness
	WingAR          float64 `json:"wing_ar" yaml:"wing_ar"`                     // aspect ratio
	WingArea        float64 `json:"wing_area" yaml:"wing_area"`                 // sq. ft.
	WingSweepDelta  float64 `json:"wing_sweep_delta" yaml:"wing_sweep_delta"`   // deg from the 11.3 deg baseline
	WingTaper       float64 `json:"wing_taper" yaml:"wing_taper"`               // taper ratio
	StrutEta        float64 `json:"strut_eta" yaml:"strut_eta"`                 // fraction of half-span
	MTOW            float64 `json:"mtow" yaml:"mtow"`                           // lb
	EngineWeight    float64 `json:"engine_weight" yaml:"engine_weight"`         // lb
}

// DefaultTBWInputs returns the documented defaults of the TBW surrogate,
// which are also the baseline scenario of the JMP reference prediction.
func DefaultTBWInputs() TBWInputs {
	return TBWInputs{
		WingAFThickness: 0.119,
		WingAR:          19.7,
		WingArea:        1477.,
		WingSweepDelta:  0.0,
		WingTaper:       0.35,
		StrutEta:        0.5766,
		MTOW:            150000.,
		EngineWeight:    6335.,
	}
}

func BaselineTBWInputs() TBWInputs {
	return DefaultTBWInputs()
}

// Vector in the fitted parameter order of the TBW surface
func (in *TBWInputs) Vector() []float64 {
	return []float64{
		in.WingAFThickness,
		in.WingAR,
		in.WingArea,
		in.WingSweepDelta,
		in.WingTaper,
		in.StrutEta,
		in.MTOW,
		in.EngineWeight,
	}
}

// EvaluateTBW estimates the wing structural weight (lb) of the strut-braced wing configuration.
func EvaluateTBW(in TBWInputs) float64 {
	return mustEvaluate(tbwSurface, in.Vector())
}

var tbwSurface = surrogate.MustNewResponseSurface(&tbwSpec)

var tbwSpec = config.SurfaceSpec{
	Name:        TBW,
	Description: "Wing structural weight of the TBW vehicle configuration for vehicle sizing tools like FLOPS or LEAPS",
	Units:       "lb",
	Intercept:   -4257.26345359943,
	Parameters: []config.ParameterSpec{
		{
			Name:        WingAFThickness,
			Description: "Thickness of the wing airfoils, constant airfoil shape along the span",
			Center:      0.12009881577931,
			Linear:      -11878.2969879508,
			Default:     0.119,
			Bounds:      config.BoundsSpec{Min: 0.095, Max: 0.144},
		},
		{
			Name:        WingAR,
			Description: "Aspect ratio of the wing, b^2/S with b the span in ft and S the Wimpress area in sq. ft.",
			Center:      19.0573830880172,
			Linear:      220.047706073815,
			Default:     19.7,
			Bounds:      config.BoundsSpec{Min: 15.2, Max: 23.0},
		},
		{
			Name:        WingArea,
			Description: "Planform area of the wing measured using the Wimpress method",
			Units:       "ft^2",
			Center:      1291.76098653448,
			Linear:      2.64728559072833,
			Default:     1477.,
			Bounds:      config.BoundsSpec{Min: 1000, Max: 16000},
		},
		{
			Name:        WingSweepDelta,
			Description: "Change of the main wing half-chord sweep from the 11.3 degree baseline",
			Units:       "deg",
			Center:      1.05176726295862,
			Linear:      75.4053233846004,
			Default:     0.0,
			Bounds:      config.BoundsSpec{Min: -10.0, Max: 15.0},
		},
		{
			Name:        WingTaper,
			Description: "Taper ratio c_t/c_r of the non-projected tip and root chords, root measured at the centerline",
			Center:      0.351275896575862,
			Linear:      1452.77234682876,
			Default:     0.35,
			Bounds:      config.BoundsSpec{Min: 0.25, Max: 0.45},
		},
		{
			Name:        StrutEta,
			Description: "Attachment of the strut to the main wing as a fraction of the half-span",
			Center:      0.601967383174137,
			Linear:      -2840.11373863797,
			Default:     0.5766,
			Bounds:      config.BoundsSpec{Min: 0.4, Max: 0.8},
		},
		{
			Name:        MTOW,
			Description: "Maximum takeoff weight of the vehicle",
			Units:       "lb",
			Center:      149907.522727931,
			Linear:      0.0231475966595803,
			Default:     150000.,
			Bounds:      config.BoundsSpec{Min: 130e3, Max: 170e3},
		},
		{
			Name:        EngineWeight,
			Description: "Weight of the engine",
			Units:       "lb",
			Center:      6347.67961655518,
			Linear:      -0.0281462321260778,
			Default:     6335.,
			Bounds:      config.BoundsSpec{Min: 5070, Max: 7602},
		},
	},
	Quadratic: []config.PairSpec{
		{First: WingAFThickness, Second: WingAFThickness, Coefficient: -93927.1316771324},
		{First: WingAFThickness, Second: WingAR, Coefficient: -712.841100798117},
		{First: WingAFThickness, Second: WingArea, Coefficient: 5.70416745646755},
		{First: WingAFThickness, Second: WingSweepDelta, Coefficient: -60.619851207008},
		{First: WingAFThickness, Second: WingTaper, Coefficient: -360.920445388845},
		{First: WingAFThickness, Second: StrutEta, Coefficient: 36661.7051591474},
		{First: WingAFThickness, Second: MTOW, Coefficient: -0.0718072798081834},
		{First: WingAFThickness, Second: EngineWeight, Coefficient: 0.831622167897022},
		{First: WingAR, Second: WingAR, Coefficient: 0.538820920056799},
		{First: WingAR, Second: WingArea, Coefficient: 0.0506411839572489},
		{First: WingAR, Second: WingSweepDelta, Coefficient: 1.37984895550461},
		{First: WingAR, Second: WingTaper, Coefficient: 69.5083489834382},
		{First: WingAR, Second: StrutEta, Coefficient: -188.579489755346},
		{First: WingAR, Second: MTOW, Coefficient: 0.00152905050270633},
		{First: WingAR, Second: EngineWeight, Coefficient: -0.00655434625154175},
		{First: WingArea, Second: WingArea, Coefficient: -0.00013541546356773},
		{First: WingArea, Second: WingSweepDelta, Coefficient: 0.0383395672631393},
		{First: WingArea, Second: WingTaper, Coefficient: -0.617691059452396},
		{First: WingArea, Second: StrutEta, Coefficient: 1.44078662538476},
		{First: WingArea, Second: MTOW, Coefficient: 0.0000227994507106466},
		{First: WingArea, Second: EngineWeight, Coefficient: 0.00009694916258896},
		{First: WingSweepDelta, Second: WingSweepDelta, Coefficient: 4.833051284172},
		{First: WingSweepDelta, Second: WingTaper, Coefficient: 19.2005241223105},
		{First: WingSweepDelta, Second: StrutEta, Coefficient: -161.825393761682},
		{First: WingSweepDelta, Second: MTOW, Coefficient: 0.000825530517339874},
		{First: WingSweepDelta, Second: EngineWeight, Coefficient: 0.000685309015180898},
		{First: WingTaper, Second: WingTaper, Coefficient: -391.683666763851},
		{First: WingTaper, Second: StrutEta, Coefficient: -7245.88839254213},
		{First: WingTaper, Second: MTOW, Coefficient: -0.000820981801417466},
		{First: WingTaper, Second: EngineWeight, Coefficient: 0.0408977843116594},
		{First: StrutEta, Second: StrutEta, Coefficient: 43571.624852289},
		{First: StrutEta, Second: MTOW, Coefficient: -0.0132795899631609},
		{First: StrutEta, Second: EngineWeight, Coefficient: 0.242705684135127},
		{First: MTOW, Second: MTOW, Coefficient: -0.0000000043932470908},
		{First: MTOW, Second: EngineWeight, Coefficient: -0.0000013189201742769},
		{First: EngineWeight, Second: EngineWeight, Coefficient: -0.0000599254543483901},
	},
}
