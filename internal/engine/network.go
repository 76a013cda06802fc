package engine

import "math"

// Layout-mode multipliers model routing slack on top of the grid heuristic:
// the conservative allowance for hand-routed networks, and the denser routing
// an optimizer is assumed to reach.
const (
	heuristicLayoutFactor = 1.05
	optimizedLayoutFactor = 0.90

	// minTotalPipeM guards against degenerate zero-length designs.
	minTotalPipeM = 20.0
)

// NetworkLayout is the estimated pipe-network extent for a square field.
type NetworkLayout struct {
	FieldSideM       float64 `json:"field_side_m"`
	LateralCount     int     `json:"lateral_count"`
	MainLengthM      float64 `json:"main_length_m"`
	LateralLengthM   float64 `json:"lateral_length_m"`
	TotalPipeLengthM float64 `json:"total_pipe_length_m"`
	EmitterCount     int     `json:"emitter_count"`
}

// EstimateLayout sizes the pipe network with a square-field grid heuristic:
// one main along the field side, laterals every spacingY meters. This is a
// deliberate approximation of a grid layout, not a minimum-spanning-tree or
// Steiner-point solver.
func (e *Engine) EstimateLayout(areaM2, spacingXM, spacingYM float64, mode LayoutMode) NetworkLayout {
	if areaM2 < 0 {
		areaM2 = 0
	}
	side := math.Sqrt(areaM2)

	if spacingXM <= 0 {
		spacingXM = DefaultEmitterSpacingM
	}
	if spacingYM <= 0 {
		spacingYM = DefaultEmitterSpacingM
	}

	lateralCount := int(math.Ceil(side / spacingYM))
	if lateralCount < 1 {
		lateralCount = 1
	}

	factor := heuristicLayoutFactor
	if mode == LayoutModeOptimized {
		factor = optimizedLayoutFactor
	}

	mainLen := side * factor
	lateralLen := side * float64(lateralCount) * factor

	total := mainLen + lateralLen
	if total < minTotalPipeM {
		total = minTotalPipeM
	}

	emitters := int(math.Ceil(areaM2 / (spacingXM * spacingYM)))
	if emitters < 1 {
		emitters = 1
	}

	return NetworkLayout{
		FieldSideM:       side,
		LateralCount:     lateralCount,
		MainLengthM:      mainLen,
		LateralLengthM:   lateralLen,
		TotalPipeLengthM: total,
		EmitterCount:     emitters,
	}
}
