package engine

import (
	"fmt"
	"math"
)

// fittingSpacingM is the assumed distance between pipe fittings.
const fittingSpacingM = 20.0

// PriceTable holds the unit prices (THB) behind the bill of materials.
type PriceTable struct {
	// MainPipePerM maps known PVC diameters (mm) to price per meter; unknown
	// diameters fall back to DefaultMainPipePerM.
	MainPipePerM        map[int]float64 `json:"main_pipe_per_m"`
	DefaultMainPipePerM float64         `json:"default_main_pipe_per_m"`
	LateralPipePerM     float64         `json:"lateral_pipe_per_m"`
	FittingEach         float64         `json:"fitting_each"`
	ValveEach           float64         `json:"valve_each"`
	EmitterEach         float64         `json:"emitter_each"`
	PumpBase            float64         `json:"pump_base"`
	PumpPerHP           float64         `json:"pump_per_hp"`
	PumpFlat            float64         `json:"pump_flat"`
	ControllerEach      float64         `json:"controller_each"`
	FilterEach          float64         `json:"filter_each"`
}

// DefaultPriceTable returns the built-in THB price list.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		MainPipePerM: map[int]float64{
			50: 35, 63: 48, 75: 62, 90: 85,
			110: 120, 125: 150, 140: 185, 160: 220,
		},
		DefaultMainPipePerM: 100,
		LateralPipePerM:     12,
		FittingEach:         25,
		ValveEach:           450,
		EmitterEach:         15,
		PumpBase:            4500,
		PumpPerHP:           3500,
		PumpFlat:            9500,
		ControllerEach:      3500,
		FilterEach:          2800,
	}
}

// BOMItem is one priced line of the bill of materials.
type BOMItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
	// TotalPrice is always Quantity × UnitPrice.
	TotalPrice float64 `json:"total_price"`
}

// BillOfMaterials is an ordered parts list with its cost sum.
type BillOfMaterials struct {
	Items     []BOMItem `json:"items"`
	TotalCost float64   `json:"total_cost"`
}

// Add appends a line item, maintaining the TotalCost = Σ TotalPrice invariant.
func (b *BillOfMaterials) Add(name string, quantity float64, unit string, unitPrice float64) {
	if quantity < 0 {
		quantity = 0
	}
	if unitPrice < 0 {
		unitPrice = 0
	}
	item := BOMItem{
		Name:       name,
		Quantity:   quantity,
		Unit:       unit,
		UnitPrice:  unitPrice,
		TotalPrice: quantity * unitPrice,
	}
	b.Items = append(b.Items, item)
	b.TotalCost += item.TotalPrice
}

// BuildBOM prices the deterministic parts list for a sized network. flowLps is
// the design flow in liters per second, used only for pump power.
func (e *Engine) BuildBOM(layout NetworkLayout, hyd HydraulicResult, zones ZonePlan, diameterMm, flowLps float64) BillOfMaterials {
	prices := e.cfg.Prices

	mainPrice, known := prices.MainPipePerM[int(math.Round(diameterMm))]
	if !known {
		mainPrice = prices.DefaultMainPipePerM
	}

	var bom BillOfMaterials
	bom.Add(fmt.Sprintf("PVC main pipe %.0f mm", diameterMm), math.Ceil(layout.MainLengthM), "m", mainPrice)
	bom.Add("PE lateral pipe", math.Ceil(layout.LateralLengthM), "m", prices.LateralPipePerM)
	bom.Add("Pipe fittings", math.Ceil(layout.TotalPipeLengthM/fittingSpacingM), "pcs", prices.FittingEach)
	bom.Add("Zone control valve", float64(zones.ZoneCount), "pcs", prices.ValveEach)
	bom.Add("Emitter", float64(layout.EmitterCount), "pcs", prices.EmitterEach)

	pumpPrice := prices.PumpFlat
	if e.cfg.PumpPricing == PumpPricingScaled {
		hp := PumpHorsepower(flowLps, hyd.TotalHeadM, e.cfg.PumpEfficiency)
		pumpPrice = prices.PumpBase + prices.PumpPerHP*hp
	}
	bom.Add("Water pump", 1, "set", pumpPrice)

	bom.Add("Irrigation controller", 1, "set", prices.ControllerEach)
	bom.Add("Screen filter", 1, "set", prices.FilterEach)

	return bom
}

// PumpHorsepower estimates the required pump power from flow (L/s) and total
// head (m): hp = Q·H / (η·75).
func PumpHorsepower(flowLps, totalHeadM, pumpEfficiency float64) float64 {
	if flowLps <= 0 || totalHeadM <= 0 {
		return 0
	}
	if pumpEfficiency <= 0 {
		pumpEfficiency = 0.65
	}
	return flowLps * totalHeadM / (pumpEfficiency * 75)
}

// PumpKilowatts converts pump horsepower to kW.
func PumpKilowatts(hp float64) float64 {
	return hp * 0.746
}
