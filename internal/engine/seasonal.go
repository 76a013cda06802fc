package engine

// daysInMonth uses a non-leap calendar; the simulation is a planning estimate,
// not an accounting one.
var daysInMonth = [12]float64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// SeasonalRecord is one month of the 12-month demand simulation.
type SeasonalRecord struct {
	Month           int     `json:"month"` // 0–11
	Kc              float64 `json:"kc"`
	ET0             float64 `json:"et0"`
	RainfallMm      float64 `json:"rainfall_mm"`
	DemandLPerDay   float64 `json:"demand_l_per_day"`
	DemandLPerMonth float64 `json:"demand_l_per_month"`
}

// SeasonSummary reduces the 12 monthly records. The peak-demand month is the
// recommended design capacity, not the single-scenario demand.
type SeasonSummary struct {
	PeakMonth         int     `json:"peak_month"`
	PeakDemandLPerDay float64 `json:"peak_demand_l_per_day"`
	PeakRainfallMonth int     `json:"peak_rainfall_month"`
	PeakET0Month      int     `json:"peak_et0_month"`
	AvgDemandLPerDay  float64 `json:"avg_demand_l_per_day"`
	AvgET0            float64 `json:"avg_et0"`
	AvgRainfallMm     float64 `json:"avg_rainfall_mm"`
}

// kcForMonth selects the stage Kc by the configured month calendar. Without a
// stage model every month uses the scalar Kc.
func (e *Engine) kcForMonth(month int, in DesignInput) float64 {
	if in.KcStages == nil {
		return in.Kc
	}
	cal := e.cfg.Calendar
	switch {
	case month < cal.InitialMonths:
		return in.KcStages.Initial
	case month < cal.InitialMonths+cal.DevelopmentMonths:
		return in.KcStages.Development
	case month < cal.InitialMonths+cal.DevelopmentMonths+cal.MidMonths:
		return in.KcStages.Mid
	default:
		return in.KcStages.Late
	}
}

// SimulateSeason reruns the water balance for each of 12 months of climate
// data and summarizes the peaks. Month index 0 is the first month of the crop
// calendar, not necessarily January.
func (e *Engine) SimulateSeason(monthlyET0, monthlyRainfall [12]float64, in DesignInput) ([12]SeasonalRecord, SeasonSummary) {
	norm := in.Normalize()
	areaM2 := AreaToSquareMeters(norm.AreaValue, norm.AreaUnit)

	eff := norm.Efficiency
	if eff < 0.01 {
		eff = 0.01
	}

	var records [12]SeasonalRecord
	summary := SeasonSummary{}

	var sumDemand, sumET0, sumRain float64
	for m := 0; m < 12; m++ {
		kc := e.kcForMonth(m, norm)

		et0 := monthlyET0[m]
		if et0 < 0 {
			et0 = 0
		}
		rain := monthlyRainfall[m]
		if rain < 0 {
			rain = 0
		}

		etc := kc * et0
		nir := etc - e.EffectiveRainfall(rain)
		if nir < 0 {
			nir = 0
		}
		demand := nir / eff * areaM2

		records[m] = SeasonalRecord{
			Month:           m,
			Kc:              kc,
			ET0:             et0,
			RainfallMm:      rain,
			DemandLPerDay:   demand,
			DemandLPerMonth: demand * daysInMonth[m],
		}

		if m == 0 || demand > records[summary.PeakMonth].DemandLPerDay {
			summary.PeakMonth = m
			summary.PeakDemandLPerDay = demand
		}
		if rain > records[summary.PeakRainfallMonth].RainfallMm {
			summary.PeakRainfallMonth = m
		}
		if et0 > records[summary.PeakET0Month].ET0 {
			summary.PeakET0Month = m
		}

		sumDemand += demand
		sumET0 += et0
		sumRain += rain
	}

	summary.AvgDemandLPerDay = sumDemand / 12
	summary.AvgET0 = sumET0 / 12
	summary.AvgRainfallMm = sumRain / 12

	return records, summary
}
