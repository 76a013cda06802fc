package engine

import "math"

// Fixed design assumptions shared by every hydraulic calculation.
const (
	DefaultOperatingHeadM  = 30.0
	HazenWilliamsC         = 150.0 // smooth PVC
	hazenWilliamsExp       = 1.852
	hazenWilliamsDiamExp   = 4.871
	allowableLossFraction  = 0.05
	defaultLateralDivisor  = 10.0
	defaultZoneCapacityLPD = 50000.0
	highDemandNoteLPD      = 100000.0
)

// SeasonCalendar maps month indices to crop stages for the seasonal
// simulation: the first InitialMonths months use the initial Kc, the next
// DevelopmentMonths the development Kc, the next MidMonths the mid Kc, and the
// remainder of the year the late Kc.
type SeasonCalendar struct {
	InitialMonths     int `json:"initial_months"`
	DevelopmentMonths int `json:"development_months"`
	MidMonths         int `json:"mid_months"`
}

// PumpPricingMode selects how the pump line item is priced.
type PumpPricingMode string

const (
	PumpPricingFlat   PumpPricingMode = "flat"
	PumpPricingScaled PumpPricingMode = "scaled"
)

// Config carries every policy knob the source variants disagree on. Zero
// fields are filled by New from the defaults below, so a zero Config is a
// usable one.
type Config struct {
	RainfallPolicy   RainfallPolicy
	ValidationPolicy ValidationPolicy

	OperatingHeadM         float64
	MaxZoneCapacityLPerDay float64
	MinLateralFloorM       float64 // 20 or 50 depending on policy
	LateralFlowDivisor     float64

	// Advisory thresholds.
	HighDemandLPerDay   float64
	LargeAreaM2         float64
	SmallMainDiameterMm float64

	PumpPricing    PumpPricingMode
	PumpEfficiency float64

	Prices   PriceTable
	Calendar SeasonCalendar
}

// DefaultConfig returns the canonical configuration: rai-friendly defaults,
// USDA-SCS effective rainfall, binary validation, heuristic layout allowance.
func DefaultConfig() Config {
	return Config{
		RainfallPolicy:         RainfallPolicyUSDASCS,
		ValidationPolicy:       ValidationPolicyBinary,
		OperatingHeadM:         DefaultOperatingHeadM,
		MaxZoneCapacityLPerDay: defaultZoneCapacityLPD,
		MinLateralFloorM:       50,
		LateralFlowDivisor:     defaultLateralDivisor,
		HighDemandLPerDay:      highDemandNoteLPD,
		LargeAreaM2:            500000, // 50 ha
		SmallMainDiameterMm:    110,
		PumpPricing:            PumpPricingScaled,
		PumpEfficiency:         0.65,
		Prices:                 DefaultPriceTable(),
		Calendar:               SeasonCalendar{InitialMonths: 3, DevelopmentMonths: 0, MidMonths: 6},
	}
}

// Engine is the irrigation design calculator. It holds no mutable state: every
// method is a pure function of its arguments and the immutable config, so a
// single Engine is safe for concurrent use.
type Engine struct {
	cfg Config
}

// New creates an Engine, filling unset config fields from DefaultConfig.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.RainfallPolicy != RainfallPolicySimple && cfg.RainfallPolicy != RainfallPolicyUSDASCS {
		cfg.RainfallPolicy = def.RainfallPolicy
	}
	if cfg.ValidationPolicy != ValidationPolicyBinary && cfg.ValidationPolicy != ValidationPolicyTiered {
		cfg.ValidationPolicy = def.ValidationPolicy
	}
	if cfg.OperatingHeadM <= 0 {
		cfg.OperatingHeadM = def.OperatingHeadM
	}
	if cfg.MaxZoneCapacityLPerDay <= 0 {
		cfg.MaxZoneCapacityLPerDay = def.MaxZoneCapacityLPerDay
	}
	if cfg.MinLateralFloorM != 20 && cfg.MinLateralFloorM != 50 {
		cfg.MinLateralFloorM = def.MinLateralFloorM
	}
	if cfg.LateralFlowDivisor <= 0 {
		cfg.LateralFlowDivisor = def.LateralFlowDivisor
	}
	if cfg.HighDemandLPerDay <= 0 {
		cfg.HighDemandLPerDay = def.HighDemandLPerDay
	}
	if cfg.LargeAreaM2 <= 0 {
		cfg.LargeAreaM2 = def.LargeAreaM2
	}
	if cfg.SmallMainDiameterMm <= 0 {
		cfg.SmallMainDiameterMm = def.SmallMainDiameterMm
	}
	if cfg.PumpPricing != PumpPricingFlat && cfg.PumpPricing != PumpPricingScaled {
		cfg.PumpPricing = def.PumpPricing
	}
	if cfg.PumpEfficiency <= 0 || cfg.PumpEfficiency > 1 {
		cfg.PumpEfficiency = def.PumpEfficiency
	}
	if cfg.Prices.MainPipePerM == nil {
		cfg.Prices = def.Prices
	}
	if cfg.Calendar.InitialMonths <= 0 && cfg.Calendar.DevelopmentMonths <= 0 && cfg.Calendar.MidMonths <= 0 {
		cfg.Calendar = def.Calendar
	}
	return &Engine{cfg: cfg}
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// DesignSummary is the engine's complete response for one DesignInput.
type DesignSummary struct {
	Input             DesignInput        `json:"input"`
	WaterBalance      WaterBalanceResult `json:"water_balance"`
	Layout            NetworkLayout      `json:"layout"`
	Hydraulics        HydraulicResult    `json:"hydraulics"`
	MaxLateralLengthM float64            `json:"max_lateral_length_m"`
	Zones             ZonePlan           `json:"zones"`
	BOM               BillOfMaterials    `json:"bom"`
	Validation        ValidationReport   `json:"validation"`
}

// BuildDesign runs the full calculation chain: water balance, network sizing,
// hydraulics, zoning, costing, validation. It never fails; an infeasible
// design comes back as a complete summary with Validation.IsValid=false.
func (e *Engine) BuildDesign(in DesignInput) DesignSummary {
	norm := in.Normalize()

	wb := e.ComputeWaterBalance(norm)
	layout := e.EstimateLayout(wb.AreaM2, norm.EmitterSpacingXM, norm.EmitterSpacingYM, norm.LayoutMode)

	flowM3s := demandToFlowM3s(wb.WaterDemandLPerDay, norm.OperatingHours)
	hyd := e.ComputeHeadLoss(flowM3s, layout.TotalPipeLengthM, layout.LateralLengthM, norm.MainDiameterMm)
	maxLateral := e.SolveMaxLateralLength(wb.WaterDemandLPerDay, norm.MainDiameterMm, norm.OperatingHours, norm.UserMaxLateralM)

	zones := e.PartitionZones(wb.WaterDemandLPerDay, layout.TotalPipeLengthM)

	flowLps := wb.WaterDemandLPerDay / (norm.OperatingHours * 3600)
	bom := e.BuildBOM(layout, hyd, zones, norm.MainDiameterMm, flowLps)

	report := e.Validate(norm, wb, hyd, maxLateral)

	return DesignSummary{
		Input:             norm,
		WaterBalance:      wb,
		Layout:            layout,
		Hydraulics:        hyd,
		MaxLateralLengthM: maxLateral,
		Zones:             zones,
		BOM:               bom,
		Validation:        report,
	}
}

// demandToFlowM3s converts a daily demand in liters to m³/s spread over the
// operating window.
func demandToFlowM3s(demandLPerDay, operatingHours float64) float64 {
	if demandLPerDay <= 0 || operatingHours <= 0 {
		return 0
	}
	return demandLPerDay / (operatingHours * 3600 * 1000)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
