package engine

import "math"

// ZonePlan splits the network into capacity-bounded irrigation zones.
type ZonePlan struct {
	ZoneCount      int     `json:"zone_count"`
	LengthPerZoneM float64 `json:"length_per_zone_m"`
}

// PartitionZones divides the daily demand into zones no larger than the
// configured capacity, with pipe length split equally. zoneCount is always at
// least 1.
func (e *Engine) PartitionZones(demandLPerDay, totalPipeLengthM float64) ZonePlan {
	count := 1
	if demandLPerDay > 0 {
		count = int(math.Ceil(demandLPerDay / e.cfg.MaxZoneCapacityLPerDay))
		if count < 1 {
			count = 1
		}
	}
	if totalPipeLengthM < 0 {
		totalPipeLengthM = 0
	}
	return ZonePlan{
		ZoneCount:      count,
		LengthPerZoneM: math.Ceil(totalPipeLengthM / float64(count)),
	}
}
