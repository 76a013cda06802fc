package engine

import (
	"fmt"
	"math"
)

// HydraulicResult is the Hazen-Williams head-loss assessment of a network.
type HydraulicResult struct {
	FrictionHeadLossM      float64 `json:"friction_head_loss_m"`
	HeadLossPercent        float64 `json:"head_loss_percent"`
	LateralHeadLossPercent float64 `json:"lateral_head_loss_percent"`
	VelocityMs             float64 `json:"velocity_ms"`
	OperatingHeadM         float64 `json:"operating_head_m"`
	TotalHeadM             float64 `json:"total_head_m"`
	IsWithinLimit          bool    `json:"is_within_limit"`
}

// ValidationReport collects design advisories. Notes are ordered and kept
// verbatim for display; every triggered condition appends one, none
// short-circuit.
type ValidationReport struct {
	IsValid bool     `json:"is_valid"`
	Notes   []string `json:"notes"`
}

// hazenWilliamsLoss is the metric Hazen-Williams friction loss:
//
//	hf = 10.67 × Q^1.852 × L / (C^1.852 × D^4.871)
//
// with Q in m³/s and L, D in meters.
func hazenWilliamsLoss(flowM3s, lengthM, diameterM float64) float64 {
	if flowM3s <= 0 || lengthM <= 0 || diameterM <= 0 {
		return 0
	}
	return 10.67 * math.Pow(flowM3s, hazenWilliamsExp) * lengthM /
		(math.Pow(HazenWilliamsC, hazenWilliamsExp) * math.Pow(diameterM, hazenWilliamsDiamExp))
}

// ComputeHeadLoss evaluates friction loss over the whole network. The lateral
// percentage scales the total loss by the lateral share of total length.
// Percentages are clamped to [0,100]; a negative or zero flow yields a clean
// zero-loss result.
func (e *Engine) ComputeHeadLoss(flowM3s, totalLengthM, lateralLengthM, diameterMm float64) HydraulicResult {
	diameterM := diameterMm / 1000

	hf := hazenWilliamsLoss(flowM3s, totalLengthM, diameterM)

	headPct := clamp(hf/e.cfg.OperatingHeadM*100, 0, 100)

	lateralShare := 0.0
	if totalLengthM > 0 && lateralLengthM > 0 {
		lateralShare = lateralLengthM / totalLengthM
	}
	lateralPct := clamp(hf*lateralShare/e.cfg.OperatingHeadM*100, 0, 100)

	velocity := 0.0
	if diameterM > 0 && flowM3s > 0 {
		velocity = flowM3s / (math.Pi * (diameterM / 2) * (diameterM / 2))
	}

	return HydraulicResult{
		FrictionHeadLossM:      hf,
		HeadLossPercent:        headPct,
		LateralHeadLossPercent: lateralPct,
		VelocityMs:             velocity,
		OperatingHeadM:         e.cfg.OperatingHeadM,
		TotalHeadM:             e.cfg.OperatingHeadM + hf,
		IsWithinLimit:          headPct <= 5 && lateralPct <= 5,
	}
}

// SolveMaxLateralLength inverts Hazen-Williams for the length at which one
// lateral reaches the allowable loss (5% of operating head), with the total
// flow split evenly across the configured number of parallel laterals. The
// result is clamped to [MinLateralFloorM, userMaxLateralM].
func (e *Engine) SolveMaxLateralLength(demandLPerDay, diameterMm, operatingHours, userMaxLateralM float64) float64 {
	if userMaxLateralM <= 0 {
		userMaxLateralM = DefaultUserMaxLateralM
	}

	qPerLateral := demandToFlowM3s(demandLPerDay, operatingHours) / e.cfg.LateralFlowDivisor
	diameterM := diameterMm / 1000
	if qPerLateral <= 0 || diameterM <= 0 {
		return userMaxLateralM
	}

	allowable := allowableLossFraction * e.cfg.OperatingHeadM
	maxLen := allowable * math.Pow(HazenWilliamsC, hazenWilliamsExp) * math.Pow(diameterM, hazenWilliamsDiamExp) /
		(10.67 * math.Pow(qPerLateral, hazenWilliamsExp))

	return clamp(maxLen, math.Min(e.cfg.MinLateralFloorM, userMaxLateralM), userMaxLateralM)
}

// Validate applies the configured acceptance policy plus the auxiliary sizing
// checks. Note order is stable: head loss, lateral head loss, lateral
// shortfall, demand advisory, undersized main.
func (e *Engine) Validate(in DesignInput, wb WaterBalanceResult, hyd HydraulicResult, maxLateralM float64) ValidationReport {
	report := ValidationReport{IsValid: true, Notes: []string{}}

	fail := func(note string) {
		report.IsValid = false
		report.Notes = append(report.Notes, note)
	}
	advise := func(note string) {
		report.Notes = append(report.Notes, note)
	}

	switch e.cfg.ValidationPolicy {
	case ValidationPolicyTiered:
		switch {
		case hyd.HeadLossPercent > 15:
			fail(fmt.Sprintf("Head loss %.2f%% exceeds the 15%% hard limit", hyd.HeadLossPercent))
		case hyd.HeadLossPercent > 10:
			advise(fmt.Sprintf("Head loss %.2f%% is above 10%%; consider a larger main pipe", hyd.HeadLossPercent))
		}
		switch {
		case hyd.LateralHeadLossPercent > 15:
			fail(fmt.Sprintf("Lateral head loss %.2f%% exceeds the 15%% hard limit", hyd.LateralHeadLossPercent))
		case hyd.LateralHeadLossPercent > 10:
			advise(fmt.Sprintf("Lateral head loss %.2f%% is above 10%%; consider shorter laterals", hyd.LateralHeadLossPercent))
		}
	default: // binary
		if hyd.HeadLossPercent > 5 {
			fail(fmt.Sprintf("Head loss %.2f%% exceeds the 5%% limit", hyd.HeadLossPercent))
		}
		if hyd.LateralHeadLossPercent > 5 {
			fail(fmt.Sprintf("Lateral head loss %.2f%% exceeds the 5%% limit", hyd.LateralHeadLossPercent))
		}
	}

	if maxLateralM < 0.8*in.UserMaxLateralM {
		fail(fmt.Sprintf("Hydraulic max lateral %.0f m falls short of the requested %.0f m", maxLateralM, in.UserMaxLateralM))
	}

	if wb.WaterDemandLPerDay > e.cfg.HighDemandLPerDay {
		advise(fmt.Sprintf("Daily demand %.0f L is high; splitting into irrigation zones is recommended", wb.WaterDemandLPerDay))
	}

	if wb.AreaM2 > e.cfg.LargeAreaM2 && in.MainDiameterMm < e.cfg.SmallMainDiameterMm {
		fail(fmt.Sprintf("Main pipe %.0f mm is undersized for a %.1f ha field", in.MainDiameterMm, wb.AreaM2/SquareMetersPerHectare))
	}

	return report
}
