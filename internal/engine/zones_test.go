package engine

import "testing"

func TestPartitionZones(t *testing.T) {
	e := New(Config{})

	cases := []struct {
		demand    float64
		totalM    float64
		wantCount int
		wantPerZn float64
	}{
		{0, 500, 1, 500},
		{30000, 500, 1, 500},
		{50000, 500, 1, 500},
		{50001, 500, 2, 250},
		{125000, 999, 3, 333},
		{1000000, 4000, 20, 200},
	}

	for _, c := range cases {
		plan := e.PartitionZones(c.demand, c.totalM)
		if plan.ZoneCount != c.wantCount {
			t.Errorf("demand %v: ZoneCount = %d, want %d", c.demand, plan.ZoneCount, c.wantCount)
		}
		if plan.LengthPerZoneM != c.wantPerZn {
			t.Errorf("demand %v: LengthPerZoneM = %v, want %v", c.demand, plan.LengthPerZoneM, c.wantPerZn)
		}
	}
}

func TestPartitionZonesAlwaysAtLeastOne(t *testing.T) {
	e := New(Config{})

	for _, demand := range []float64{-100, 0, 1, 49999.9, 1e9} {
		plan := e.PartitionZones(demand, 100)
		if plan.ZoneCount < 1 {
			t.Fatalf("demand %v: ZoneCount = %d, want ≥ 1", demand, plan.ZoneCount)
		}
	}
}

func TestPartitionZonesCustomCapacity(t *testing.T) {
	e := New(Config{MaxZoneCapacityLPerDay: 10000})

	plan := e.PartitionZones(25000, 600)
	if plan.ZoneCount != 3 {
		t.Errorf("ZoneCount = %d, want 3 at 10000 L/day capacity", plan.ZoneCount)
	}
	if plan.LengthPerZoneM != 200 {
		t.Errorf("LengthPerZoneM = %v, want 200", plan.LengthPerZoneM)
	}
}
