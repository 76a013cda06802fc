package engine

import (
	"reflect"
	"testing"
	"time"
)

func TestBuildDesignIdempotent(t *testing.T) {
	e := New(Config{})

	in := DesignInput{
		AreaValue: 10, AreaUnit: AreaUnitRai,
		Kc: 0.9, ET0: 5, RainfallMm: 10, Efficiency: 0.8,
		MainDiameterMm: 110, UserMaxLateralM: 200,
	}

	a := e.BuildDesign(in)
	b := e.BuildDesign(in)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("two runs over the same input diverged; the engine holds hidden state")
	}
}

func TestBuildDesignCompleteOnInvalidDesign(t *testing.T) {
	e := New(Config{})

	// A large field on a tiny main: guaranteed to fail validation, but the
	// summary must still be fully populated.
	in := DesignInput{
		AreaValue: 100, AreaUnit: AreaUnitHectare,
		Kc: 1.1, ET0: 7, Efficiency: 0.7,
		MainDiameterMm: 50, UserMaxLateralM: 300, OperatingHours: 8,
	}

	s := e.BuildDesign(in)

	if s.Validation.IsValid {
		t.Error("this design should not validate")
	}
	if len(s.Validation.Notes) == 0 {
		t.Error("an invalid design must carry notes")
	}
	if s.WaterBalance.WaterDemandLPerDay <= 0 {
		t.Error("demand should be positive")
	}
	if s.Layout.TotalPipeLengthM <= 0 || s.Zones.ZoneCount < 1 {
		t.Error("layout and zones must be populated even for invalid designs")
	}
	if len(s.BOM.Items) == 0 || s.BOM.TotalCost <= 0 {
		t.Error("the BOM must be priced even for invalid designs")
	}
}

func TestBuildDesignGoldenScenario(t *testing.T) {
	e := New(Config{RainfallPolicy: RainfallPolicySimple})

	in := DesignInput{
		AreaValue: 10, AreaUnit: AreaUnitRai,
		Kc: 0.3, ET0: 5, RainfallMm: 0, Efficiency: 0.8,
		MainDiameterMm: 110, UserMaxLateralM: 200,
		EmitterSpacingXM: 4, EmitterSpacingYM: 4,
	}

	s := e.BuildDesign(in)

	if !almostEqual(s.WaterBalance.WaterDemandLPerDay, 30000, 1e-5) {
		t.Errorf("demand = %v, want 30000", s.WaterBalance.WaterDemandLPerDay)
	}
	if s.Zones.ZoneCount != 1 {
		t.Errorf("ZoneCount = %d, want 1 at 30000 L/day", s.Zones.ZoneCount)
	}
	if s.MaxLateralLengthM != 200 {
		t.Errorf("MaxLateralLengthM = %v, want user clamp 200", s.MaxLateralLengthM)
	}
	if !s.Validation.IsValid {
		t.Errorf("golden scenario should validate, notes: %v", s.Validation.Notes)
	}
}

// Re-deriving the zone plan from the response must reproduce it exactly.
func TestResponseZoneRoundTrip(t *testing.T) {
	e := New(Config{})

	in := DesignInput{
		AreaValue: 40, AreaUnit: AreaUnitHectare,
		Kc: 1.0, ET0: 6, Efficiency: 0.75,
		MainDiameterMm: 125, UserMaxLateralM: 150,
	}

	s := e.BuildDesign(in)
	resp := BuildResponse(s, time.Unix(0, 0))

	got := ZonePlan{ZoneCount: resp.Zones.Count, LengthPerZoneM: resp.Zones.LengthPerZoneM}
	if got != s.Zones {
		t.Fatalf("zone plan from response = %+v, want %+v", got, s.Zones)
	}
	if len(resp.Zones.Details) != s.Zones.ZoneCount {
		t.Fatalf("got %d zone details, want %d", len(resp.Zones.Details), s.Zones.ZoneCount)
	}
	for i, d := range resp.Zones.Details {
		if d.ZoneID != i+1 || d.LengthM != s.Zones.LengthPerZoneM {
			t.Errorf("detail %d = %+v, want zone %d × %v m", i, d, i+1, s.Zones.LengthPerZoneM)
		}
	}
}

func TestEngineSafeForConcurrentUse(t *testing.T) {
	e := New(Config{})
	in := DesignInput{AreaValue: 10, AreaUnit: AreaUnitRai, Kc: 0.9, ET0: 5, Efficiency: 0.8}
	want := e.BuildDesign(in)

	done := make(chan DesignSummary, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- e.BuildDesign(in) }()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; !reflect.DeepEqual(got, want) {
			t.Fatal("concurrent runs diverged")
		}
	}
}
