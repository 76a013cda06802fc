package engine

import (
	"testing"
	"time"
)

func TestRequestInputRoundTrip(t *testing.T) {
	in := DesignInput{
		AreaValue: 12, AreaUnit: AreaUnitRai,
		Kc: 0.85, ET0: 5.5, RainfallMm: 3, Efficiency: 0.8,
		MainDiameterMm: 110, UserMaxLateralM: 180, OperatingHours: 12,
		EmitterSpacingXM: 2, EmitterSpacingYM: 3,
		LayoutMode: LayoutModeOptimized,
	}

	boundary := [][2]float64{{13.75, 100.5}, {13.76, 100.5}, {13.76, 100.51}}
	req := BuildRequest(in, boundary, "cassava", "Khon Kaen", time.Unix(1700000000, 0))

	if req.General.CropType != "cassava" || req.General.Location != "Khon Kaen" {
		t.Errorf("general block = %+v", req.General)
	}
	if len(req.Boundary) != 3 {
		t.Errorf("boundary length = %d, want 3", len(req.Boundary))
	}
	if req.DesignOptions.LayoutSource != string(LayoutModeOptimized) {
		t.Errorf("layout source = %q", req.DesignOptions.LayoutSource)
	}

	got := req.ToInput()
	if got != in {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, in)
	}
}

func TestRequestToInputWithStages(t *testing.T) {
	stages := &KcStages{Initial: 0.4, Development: 0.8, Mid: 1.1, Late: 0.7}
	req := DesignRequest{
		General:    GeneralInfo{Area: 8, AreaUnit: "rai"},
		WaterModel: WaterModel{KcStages: stages, ETo: 5},
	}

	in := req.ToInput()
	if in.KcStages != stages {
		t.Error("stage model should pass through")
	}
	if in.AreaUnit != AreaUnitRai {
		t.Errorf("AreaUnit = %q, want rai", in.AreaUnit)
	}
}

func TestBuildResponseShape(t *testing.T) {
	e := New(Config{})

	s := e.BuildDesign(DesignInput{
		AreaValue: 10, AreaUnit: AreaUnitRai,
		Kc: 0.9, ET0: 5, Efficiency: 0.8,
		MainDiameterMm: 110, UserMaxLateralM: 200,
	})

	now := time.Unix(1700000000, 0)
	resp := BuildResponse(s, now)

	if resp.WaterDemandLday != s.WaterBalance.WaterDemandLPerDay {
		t.Errorf("WaterDemandLday = %v, want %v", resp.WaterDemandLday, s.WaterBalance.WaterDemandLPerDay)
	}
	if resp.PipeLengthM != s.Layout.TotalPipeLengthM {
		t.Errorf("PipeLengthM = %v, want %v", resp.PipeLengthM, s.Layout.TotalPipeLengthM)
	}
	if resp.TotalCost != s.BOM.TotalCost {
		t.Errorf("TotalCost = %v, want %v", resp.TotalCost, s.BOM.TotalCost)
	}
	if len(resp.BOM) != len(s.BOM.Items) {
		t.Fatalf("BOM lines = %d, want %d", len(resp.BOM), len(s.BOM.Items))
	}
	for i, line := range resp.BOM {
		item := s.BOM.Items[i]
		if line.Item != item.Name || line.Total != item.TotalPrice {
			t.Errorf("BOM line %d = %+v, want %+v", i, line, item)
		}
	}
	if resp.Timestamp != now {
		t.Errorf("Timestamp = %v, want %v", resp.Timestamp, now)
	}
	if resp.Satellite != nil {
		t.Error("satellite annotation should be absent unless attached")
	}

	wantStatus := ValidationStatusPassed
	if !s.Validation.IsValid {
		wantStatus = ValidationStatusFailed
	}
	if resp.Validation.Status != wantStatus {
		t.Errorf("status = %q, want %q", resp.Validation.Status, wantStatus)
	}
}

func TestBuildResponseFailedStatus(t *testing.T) {
	e := New(Config{})

	// Undersized main on a big field: fails validation.
	s := e.BuildDesign(DesignInput{
		AreaValue: 100, AreaUnit: AreaUnitHectare,
		Kc: 1.0, ET0: 6, Efficiency: 0.8,
		MainDiameterMm: 50, UserMaxLateralM: 100,
	})

	resp := BuildResponse(s, time.Unix(0, 0))
	if resp.Validation.Status != ValidationStatusFailed {
		t.Errorf("status = %q, want failed", resp.Validation.Status)
	}
	if len(resp.Validation.Notes) == 0 {
		t.Error("failed designs must surface their notes")
	}
}
