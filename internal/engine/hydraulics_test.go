package engine

import (
	"math"
	"strings"
	"testing"
)

// Golden regression: 110 mm main, 600 m, flow for 30000 L/day over 24 h.
// hf ≈ 0.01093 m against a 30 m operating head ⇒ ≈ 0.0364 %.
func TestComputeHeadLossGolden(t *testing.T) {
	e := New(Config{})

	flow := 30000.0 / (24 * 3600 * 1000) // m³/s
	hyd := e.ComputeHeadLoss(flow, 600, 0, 110)

	if !almostEqual(hyd.HeadLossPercent, 0.0364, 0.01) {
		t.Errorf("HeadLossPercent = %v, want 0.0364 ±0.01", hyd.HeadLossPercent)
	}
	if !almostEqual(hyd.TotalHeadM, 30+hyd.FrictionHeadLossM, floatTol) {
		t.Errorf("TotalHeadM = %v, want operating head + hf", hyd.TotalHeadM)
	}
	if hyd.VelocityMs <= 0 {
		t.Errorf("VelocityMs = %v, want positive", hyd.VelocityMs)
	}
	if !hyd.IsWithinLimit {
		t.Error("a sub-0.1%% loss should be within limit")
	}
}

func TestHeadLossPercentBounded(t *testing.T) {
	e := New(Config{})

	flows := []float64{1e-5, 1e-3, 0.05, 0.5, 2}
	lengths := []float64{1, 50, 600, 5000}
	diameters := []float64{20, 50, 110, 200}

	for _, q := range flows {
		for _, l := range lengths {
			for _, d := range diameters {
				hyd := e.ComputeHeadLoss(q, l, l/2, d)
				if hyd.HeadLossPercent < 0 || hyd.HeadLossPercent > 100 {
					t.Fatalf("HeadLossPercent = %v out of [0,100] for Q=%v L=%v D=%v", hyd.HeadLossPercent, q, l, d)
				}
				if hyd.LateralHeadLossPercent < 0 || hyd.LateralHeadLossPercent > 100 {
					t.Fatalf("LateralHeadLossPercent = %v out of [0,100] for Q=%v L=%v D=%v", hyd.LateralHeadLossPercent, q, l, d)
				}
				if hyd.LateralHeadLossPercent > hyd.HeadLossPercent {
					t.Fatalf("lateral share %v exceeds total %v", hyd.LateralHeadLossPercent, hyd.HeadLossPercent)
				}
			}
		}
	}
}

func TestComputeHeadLossZeroFlow(t *testing.T) {
	e := New(Config{})

	hyd := e.ComputeHeadLoss(0, 600, 300, 110)
	if hyd.FrictionHeadLossM != 0 || hyd.HeadLossPercent != 0 || hyd.VelocityMs != 0 {
		t.Errorf("zero flow should be lossless, got %+v", hyd)
	}
	if !hyd.IsWithinLimit {
		t.Error("zero flow should be within limit")
	}
}

func TestSolveMaxLateralLengthClamps(t *testing.T) {
	e := New(Config{})

	// Modest demand in a 110 mm pipe: the hydraulic bound is enormous, so the
	// user setting wins.
	if got := e.SolveMaxLateralLength(30000, 110, 24, 200); got != 200 {
		t.Errorf("max lateral = %v, want user clamp 200", got)
	}

	// Zero demand: no hydraulic constraint at all.
	if got := e.SolveMaxLateralLength(0, 110, 24, 150); got != 150 {
		t.Errorf("max lateral = %v, want 150 for zero demand", got)
	}

	// Extreme demand: the closed form drops below the floor and is clamped up.
	if got := e.SolveMaxLateralLength(2e7, 110, 24, 200); got != 50 {
		t.Errorf("max lateral = %v, want floor 50", got)
	}
}

func TestSolveMaxLateralLengthInvertsFormula(t *testing.T) {
	e := New(Config{})

	// Pick a demand whose solution lands strictly between floor and user max,
	// then verify the closed form against a direct Hazen-Williams evaluation.
	demand := 5e6
	maxLen := e.SolveMaxLateralLength(demand, 110, 24, 10000)
	if maxLen <= 50 || maxLen >= 10000 {
		t.Fatalf("max lateral = %v, expected an interior solution", maxLen)
	}

	qPer := demand / (24 * 3600 * 1000) / 10
	hf := hazenWilliamsLoss(qPer, maxLen, 0.110)
	if !almostEqual(hf, 0.05*30, 1e-6) {
		t.Errorf("loss at solved length = %v, want 1.5 m (5%% of 30 m)", hf)
	}
}

func TestValidateBinaryNotesOrder(t *testing.T) {
	e := New(Config{})

	in := DesignInput{UserMaxLateralM: 200, MainDiameterMm: 90}
	wb := WaterBalanceResult{AreaM2: 600000, WaterDemandLPerDay: 150000}
	hyd := HydraulicResult{HeadLossPercent: 6, LateralHeadLossPercent: 2}

	report := e.Validate(in, wb, hyd, 100)

	if report.IsValid {
		t.Fatal("report should be invalid")
	}
	if len(report.Notes) != 4 {
		t.Fatalf("got %d notes, want 4: %v", len(report.Notes), report.Notes)
	}

	wantOrder := []string{"Head loss", "max lateral", "demand", "undersized"}
	for i, frag := range wantOrder {
		if !strings.Contains(report.Notes[i], frag) {
			t.Errorf("note[%d] = %q, want it to mention %q", i, report.Notes[i], frag)
		}
	}
}

func TestValidateBinaryPasses(t *testing.T) {
	e := New(Config{})

	in := DesignInput{UserMaxLateralM: 100, MainDiameterMm: 110}
	wb := WaterBalanceResult{AreaM2: 16000, WaterDemandLPerDay: 30000}
	hyd := HydraulicResult{HeadLossPercent: 1, LateralHeadLossPercent: 0.5}

	report := e.Validate(in, wb, hyd, 100)

	if !report.IsValid {
		t.Fatalf("report should be valid, notes: %v", report.Notes)
	}
	if len(report.Notes) != 0 {
		t.Errorf("expected no notes, got %v", report.Notes)
	}
}

func TestValidateTieredBands(t *testing.T) {
	e := New(Config{ValidationPolicy: ValidationPolicyTiered})

	in := DesignInput{UserMaxLateralM: 100, MainDiameterMm: 110}
	wb := WaterBalanceResult{AreaM2: 16000, WaterDemandLPerDay: 30000}

	// 10–15% is warning-only.
	report := e.Validate(in, wb, HydraulicResult{HeadLossPercent: 12}, 100)
	if !report.IsValid {
		t.Errorf("12%% should be warning-only, notes: %v", report.Notes)
	}
	if len(report.Notes) != 1 {
		t.Errorf("12%% should produce one warning note, got %v", report.Notes)
	}

	// Above 15% is a hard failure.
	report = e.Validate(in, wb, HydraulicResult{HeadLossPercent: 16}, 100)
	if report.IsValid {
		t.Error("16% should fail")
	}

	// At or below 10% passes silently.
	report = e.Validate(in, wb, HydraulicResult{HeadLossPercent: 8}, 100)
	if !report.IsValid || len(report.Notes) != 0 {
		t.Errorf("8%% should pass with no notes, got %v", report.Notes)
	}
}

func TestHazenWilliamsMonotoneInFlow(t *testing.T) {
	prev := 0.0
	for q := 0.0; q <= 0.1; q += 0.005 {
		hf := hazenWilliamsLoss(q, 600, 0.110)
		if hf < prev {
			t.Fatalf("hf(%v) = %v decreased from %v", q, hf, prev)
		}
		prev = hf
	}
	if math.IsNaN(prev) || math.IsInf(prev, 0) {
		t.Fatalf("hf diverged: %v", prev)
	}
}
