package engine

import "math"

// WaterBalanceResult is the crop water-balance outcome for one DesignInput.
// Immutable once computed; all fields in mm/day unless noted.
type WaterBalanceResult struct {
	AreaM2                  float64 `json:"area_m2"`
	SeasonalKc              float64 `json:"seasonal_kc"`
	CropEvapotranspiration  float64 `json:"crop_evapotranspiration"`
	EffectiveRainfall       float64 `json:"effective_rainfall"`
	NetIrrigationReqMm      float64 `json:"net_irrigation_req_mm"`
	GrossAppliedDepthMm     float64 `json:"gross_applied_depth_mm"`
	WaterDemandLPerDay      float64 `json:"water_demand_l_per_day"`
}

// ComputeWaterBalance derives the daily irrigation demand from crop and
// climate inputs. Total: non-positive ET0 or area yields zero demand rather
// than an error.
func (e *Engine) ComputeWaterBalance(in DesignInput) WaterBalanceResult {
	areaM2 := AreaToSquareMeters(in.AreaValue, in.AreaUnit)
	kc := in.SeasonalKc()

	et0 := in.ET0
	if et0 < 0 {
		et0 = 0
	}
	etc := kc * et0

	pe := e.EffectiveRainfall(in.RainfallMm)

	nir := etc - pe
	if nir < 0 {
		nir = 0
	}

	// Efficiency floored at 0.01 so a pathological input cannot blow up the
	// division.
	eff := in.Efficiency
	if eff < 0.01 {
		eff = 0.01
	}
	gross := nir / eff

	// 1 mm over 1 m² is exactly 1 liter.
	demand := gross * areaM2
	if demand < 0 || areaM2 <= 0 {
		demand = 0
	}

	return WaterBalanceResult{
		AreaM2:                 areaM2,
		SeasonalKc:             kc,
		CropEvapotranspiration: etc,
		EffectiveRainfall:      pe,
		NetIrrigationReqMm:     nir,
		GrossAppliedDepthMm:    gross,
		WaterDemandLPerDay:     demand,
	}
}

// EffectiveRainfall converts gross rainfall (mm/day) to the portion usable by
// the crop under the configured policy. Simple subtracts rainfall as-is; the
// USDA-SCS curve follows FAO-56 guidance:
//
//	P ≤ 250: Pe = P(125 − 0.2P)/125
//	P > 250: Pe = 125 + 0.1P
//
// The result is floored at 0 and is monotonically non-decreasing in P.
func (e *Engine) EffectiveRainfall(rainfallMm float64) float64 {
	if rainfallMm <= 0 {
		return 0
	}
	if e.cfg.RainfallPolicy == RainfallPolicySimple {
		return rainfallMm
	}
	var pe float64
	if rainfallMm <= 250 {
		pe = rainfallMm * (125 - 0.2*rainfallMm) / 125
	} else {
		pe = 125 + 0.1*rainfallMm
	}
	return math.Max(pe, 0)
}
