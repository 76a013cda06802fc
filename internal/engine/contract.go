package engine

import "time"

// GeneralInfo describes the field itself.
type GeneralInfo struct {
	Area     float64 `json:"area"`
	AreaUnit string  `json:"area_unit"`
	CropType string  `json:"crop_type"`
	Location string  `json:"location"`
}

// WaterModel carries the climate/crop inputs of the water balance.
type WaterModel struct {
	Kc       float64   `json:"kc"`
	KcStages *KcStages `json:"kc_stages,omitempty"`
	ETo      float64   `json:"eto"`
	Rainfall float64   `json:"rainfall"`
}

// HydraulicsParams carries the pipe-sizing inputs.
type HydraulicsParams struct {
	MainDiameterMm float64 `json:"main_diameter_mm"`
	MaxLateralM    float64 `json:"max_lateral_m"`
	Efficiency     float64 `json:"efficiency"`
	OperatingHours float64 `json:"operating_hours"`
	SpacingXM      float64 `json:"spacing_x_m"`
	SpacingYM      float64 `json:"spacing_y_m"`
}

// DesignOptions carries the scenario switches.
type DesignOptions struct {
	LayoutSource string `json:"layout_source"`
	Scenario     string `json:"scenario"`
}

// DesignRequest is the externally visible request record. Boundary is the
// drawn field polygon as [lat, lng] pairs; the engine carries it through
// untouched.
type DesignRequest struct {
	Boundary      [][2]float64     `json:"boundary,omitempty"`
	General       GeneralInfo      `json:"general"`
	WaterModel    WaterModel       `json:"water_model"`
	Hydraulics    HydraulicsParams `json:"hydraulics"`
	DesignOptions DesignOptions    `json:"design_options"`
	Timestamp     time.Time        `json:"timestamp"`
}

// BuildRequest assembles the request record for a design input.
func BuildRequest(in DesignInput, boundary [][2]float64, cropType, location string, now time.Time) DesignRequest {
	return DesignRequest{
		Boundary: boundary,
		General: GeneralInfo{
			Area:     in.AreaValue,
			AreaUnit: string(in.AreaUnit),
			CropType: cropType,
			Location: location,
		},
		WaterModel: WaterModel{
			Kc:       in.Kc,
			KcStages: in.KcStages,
			ETo:      in.ET0,
			Rainfall: in.RainfallMm,
		},
		Hydraulics: HydraulicsParams{
			MainDiameterMm: in.MainDiameterMm,
			MaxLateralM:    in.UserMaxLateralM,
			Efficiency:     in.Efficiency,
			OperatingHours: in.OperatingHours,
			SpacingXM:      in.EmitterSpacingXM,
			SpacingYM:      in.EmitterSpacingYM,
		},
		DesignOptions: DesignOptions{LayoutSource: string(in.LayoutMode)},
		Timestamp:     now,
	}
}

// ToInput maps a request back onto a DesignInput. Unset fields stay zero and
// are resolved by Normalize.
func (r DesignRequest) ToInput() DesignInput {
	return DesignInput{
		AreaValue:        r.General.Area,
		AreaUnit:         AreaUnit(r.General.AreaUnit),
		Kc:               r.WaterModel.Kc,
		KcStages:         r.WaterModel.KcStages,
		ET0:              r.WaterModel.ETo,
		RainfallMm:       r.WaterModel.Rainfall,
		Efficiency:       r.Hydraulics.Efficiency,
		MainDiameterMm:   r.Hydraulics.MainDiameterMm,
		UserMaxLateralM:  r.Hydraulics.MaxLateralM,
		OperatingHours:   r.Hydraulics.OperatingHours,
		EmitterSpacingXM: r.Hydraulics.SpacingXM,
		EmitterSpacingYM: r.Hydraulics.SpacingYM,
		LayoutMode:       LayoutMode(r.DesignOptions.LayoutSource),
	}
}

// ZoneDetail is one zone row in the response.
type ZoneDetail struct {
	ZoneID  int     `json:"zone_id"`
	LengthM float64 `json:"length_m"`
}

// ZoneInfo summarizes the zone plan for external consumers.
type ZoneInfo struct {
	Count          int          `json:"count"`
	LengthPerZoneM float64      `json:"length_per_zone_m"`
	Details        []ZoneDetail `json:"details"`
}

// ValidationInfo is the externally visible validation block.
type ValidationInfo struct {
	Status string   `json:"status"`
	Notes  []string `json:"notes"`
}

// BOMLine is one bill-of-materials row in the response.
type BOMLine struct {
	Item      string  `json:"item"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// SatelliteAnnotation is contextual data from an external provider. It is
// attached to responses verbatim and never participates in any calculation.
type SatelliteAnnotation struct {
	NDVIMean   float64   `json:"ndvi_mean"`
	SlopeClass string    `json:"slope_class"`
	SoilType   string    `json:"soil_type"`
	Timestamp  time.Time `json:"timestamp"`
}

// Validation status values.
const (
	ValidationStatusPassed = "passed"
	ValidationStatusFailed = "failed"
)

// DesignResponse is the externally visible response record.
type DesignResponse struct {
	WaterDemandLday   float64              `json:"water_demand_lday"`
	PipeLengthM       float64              `json:"pipe_length_m"`
	HeadLossPercent   float64              `json:"head_loss_percent"`
	MaxLateralLengthM float64              `json:"max_lateral_length_m"`
	Zones             ZoneInfo             `json:"zones"`
	Validation        ValidationInfo       `json:"validation"`
	BOM               []BOMLine            `json:"bom"`
	TotalCost         float64              `json:"total_cost"`
	Satellite         *SatelliteAnnotation `json:"satellite,omitempty"`
	Timestamp         time.Time            `json:"timestamp"`
}

// BuildResponse flattens a DesignSummary into the response record. Purely
// structural; no new computation beyond the equal-split zone rows.
func BuildResponse(s DesignSummary, now time.Time) DesignResponse {
	details := make([]ZoneDetail, s.Zones.ZoneCount)
	for i := range details {
		details[i] = ZoneDetail{ZoneID: i + 1, LengthM: s.Zones.LengthPerZoneM}
	}

	status := ValidationStatusPassed
	if !s.Validation.IsValid {
		status = ValidationStatusFailed
	}

	bom := make([]BOMLine, len(s.BOM.Items))
	for i, item := range s.BOM.Items {
		bom[i] = BOMLine{
			Item:      item.Name,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			UnitPrice: item.UnitPrice,
			Total:     item.TotalPrice,
		}
	}

	return DesignResponse{
		WaterDemandLday:   s.WaterBalance.WaterDemandLPerDay,
		PipeLengthM:       s.Layout.TotalPipeLengthM,
		HeadLossPercent:   s.Hydraulics.HeadLossPercent,
		MaxLateralLengthM: s.MaxLateralLengthM,
		Zones: ZoneInfo{
			Count:          s.Zones.ZoneCount,
			LengthPerZoneM: s.Zones.LengthPerZoneM,
			Details:        details,
		},
		Validation: ValidationInfo{Status: status, Notes: s.Validation.Notes},
		BOM:        bom,
		TotalCost:  s.BOM.TotalCost,
		Timestamp:  now,
	}
}
