package engine

// AreaUnit is the field-area unit supplied by the caller.
type AreaUnit string

const (
	AreaUnitHectare AreaUnit = "hectare"
	AreaUnitRai     AreaUnit = "rai"
)

// LayoutMode selects the pipe-routing allowance applied to the grid heuristic.
type LayoutMode string

const (
	LayoutModeHeuristic LayoutMode = "heuristic"
	LayoutModeOptimized LayoutMode = "optimized"
)

// RainfallPolicy selects how effective rainfall is derived from gross rainfall.
type RainfallPolicy string

const (
	RainfallPolicySimple  RainfallPolicy = "simple"
	RainfallPolicyUSDASCS RainfallPolicy = "usda-scs"
)

// ValidationPolicy selects the head-loss acceptance rule.
type ValidationPolicy string

const (
	ValidationPolicyBinary ValidationPolicy = "binary"
	ValidationPolicyTiered ValidationPolicy = "tiered"
)

// Area conversion constants. 1 rai = 1600 m², 1 hectare = 10000 m²
// (1 ha = 6.25 rai).
const (
	SquareMetersPerHectare = 10000.0
	SquareMetersPerRai     = 1600.0
)

// AreaToSquareMeters converts a field area to square meters. The unit must be
// explicit; a non-positive value converts to 0.
func AreaToSquareMeters(value float64, unit AreaUnit) float64 {
	if value <= 0 {
		return 0
	}
	if unit == AreaUnitRai {
		return value * SquareMetersPerRai
	}
	return value * SquareMetersPerHectare
}

// Default fallbacks for absent or unparseable numeric inputs. The caller-facing
// boundary coerces garbage to zero values; Normalize resolves those to these
// constants so every calculation runs on a fully populated input.
const (
	DefaultAreaValue       = 10.0
	DefaultKc              = 0.9
	DefaultET0             = 5.0
	DefaultEfficiency      = 0.8
	DefaultMainDiameterMm  = 110.0
	DefaultUserMaxLateralM = 200.0
	DefaultOperatingHours  = 24.0
	DefaultEmitterSpacingM = 4.0
)

// DefaultStageDays is the crop-stage calendar used for the weighted Kc when
// the caller does not override it (initial/development/mid/late, in days).
var DefaultStageDays = [4]int{20, 30, 40, 30}

// KcStages holds the four-stage crop coefficient model.
type KcStages struct {
	Initial     float64 `json:"initial"`
	Development float64 `json:"development"`
	Mid         float64 `json:"mid"`
	Late        float64 `json:"late"`
}

// DesignInput is the immutable snapshot every engine operation derives from.
// Construct it once at the boundary and call Normalize before use.
type DesignInput struct {
	AreaValue float64  `json:"area_value"`
	AreaUnit  AreaUnit `json:"area_unit"`

	// Kc is the scalar crop coefficient, used when KcStages is nil.
	Kc        float64   `json:"kc"`
	KcStages  *KcStages `json:"kc_stages,omitempty"`
	StageDays [4]int    `json:"stage_days"`

	ET0        float64 `json:"et0"`
	RainfallMm float64 `json:"rainfall_mm"`
	Efficiency float64 `json:"efficiency"`

	MainDiameterMm  float64 `json:"main_diameter_mm"`
	UserMaxLateralM float64 `json:"user_max_lateral_m"`
	OperatingHours  float64 `json:"operating_hours"`

	EmitterSpacingXM float64 `json:"emitter_spacing_x_m"`
	EmitterSpacingYM float64 `json:"emitter_spacing_y_m"`

	LayoutMode LayoutMode `json:"layout_mode"`
}

// Normalize returns a copy with every absent or non-positive field resolved to
// its documented default. This is the single defaulting step; nothing past it
// applies `value || fallback` logic.
func (in DesignInput) Normalize() DesignInput {
	out := in

	if out.AreaValue <= 0 {
		out.AreaValue = DefaultAreaValue
	}
	if out.AreaUnit != AreaUnitHectare && out.AreaUnit != AreaUnitRai {
		out.AreaUnit = AreaUnitRai
	}
	if out.Kc <= 0 {
		out.Kc = DefaultKc
	}
	if out.StageDays[0] <= 0 && out.StageDays[1] <= 0 && out.StageDays[2] <= 0 && out.StageDays[3] <= 0 {
		out.StageDays = DefaultStageDays
	}
	if out.ET0 < 0 {
		out.ET0 = 0
	} else if out.ET0 == 0 {
		out.ET0 = DefaultET0
	}
	if out.RainfallMm < 0 {
		out.RainfallMm = 0
	}
	if out.Efficiency <= 0 || out.Efficiency > 1 {
		out.Efficiency = DefaultEfficiency
	}
	if out.MainDiameterMm <= 0 {
		out.MainDiameterMm = DefaultMainDiameterMm
	}
	if out.UserMaxLateralM <= 0 {
		out.UserMaxLateralM = DefaultUserMaxLateralM
	}
	if out.OperatingHours <= 0 || out.OperatingHours > 24 {
		out.OperatingHours = DefaultOperatingHours
	}
	if out.EmitterSpacingXM <= 0 {
		out.EmitterSpacingXM = DefaultEmitterSpacingM
	}
	if out.EmitterSpacingYM <= 0 {
		out.EmitterSpacingYM = DefaultEmitterSpacingM
	}
	if out.LayoutMode != LayoutModeHeuristic && out.LayoutMode != LayoutModeOptimized {
		out.LayoutMode = LayoutModeHeuristic
	}

	return out
}

// SeasonalKc returns the weighted crop coefficient when the four-stage model
// is present, otherwise the scalar Kc: Σ(Kc_stage × days_stage) / Σ(days).
func (in DesignInput) SeasonalKc() float64 {
	if in.KcStages == nil {
		return in.Kc
	}
	days := in.StageDays
	total := days[0] + days[1] + days[2] + days[3]
	if total <= 0 {
		days = DefaultStageDays
		total = days[0] + days[1] + days[2] + days[3]
	}
	s := in.KcStages
	weighted := s.Initial*float64(days[0]) +
		s.Development*float64(days[1]) +
		s.Mid*float64(days[2]) +
		s.Late*float64(days[3])
	return weighted / float64(total)
}
