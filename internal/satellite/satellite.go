// Package satellite supplies field-context annotations from an external data
// source. Annotations ride along on design responses for display only; the
// calculation engine never reads them.
package satellite

import (
	"context"
	"math/rand"
	"time"

	"github.com/naphattraa1/irrigation-planner/internal/engine"
)

// Known slope and soil classes.
var (
	SlopeClasses = []string{"flat", "gentle", "moderate", "steep"}
	SoilTypes    = []string{"sand", "loam", "clay", "silt"}
)

// Provider produces an annotation for a field boundary.
type Provider interface {
	Annotate(ctx context.Context, boundary [][2]float64) (engine.SatelliteAnnotation, error)
}

// Static returns the same annotation for every field. It is the deterministic
// default used in tests and in deployments without a satellite feed.
type Static struct {
	Annotation engine.SatelliteAnnotation
}

// NewStatic builds a Static provider with mid-range values.
func NewStatic() *Static {
	return &Static{Annotation: engine.SatelliteAnnotation{
		NDVIMean:   0.5,
		SlopeClass: "flat",
		SoilType:   "loam",
	}}
}

func (s *Static) Annotate(_ context.Context, _ [][2]float64) (engine.SatelliteAnnotation, error) {
	a := s.Annotation
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	return a, nil
}

// Mock draws plausible annotations from a seeded generator. The same seed
// yields the same sequence, so tests stay deterministic.
type Mock struct {
	rng *rand.Rand
	now func() time.Time
}

// NewMock creates a seeded mock provider.
func NewMock(seed int64) *Mock {
	return &Mock{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// WithClock overrides the timestamp source.
func (m *Mock) WithClock(now func() time.Time) *Mock {
	m.now = now
	return m
}

func (m *Mock) Annotate(_ context.Context, _ [][2]float64) (engine.SatelliteAnnotation, error) {
	return engine.SatelliteAnnotation{
		NDVIMean:   m.rng.Float64(),
		SlopeClass: SlopeClasses[m.rng.Intn(len(SlopeClasses))],
		SoilType:   SoilTypes[m.rng.Intn(len(SoilTypes))],
		Timestamp:  m.now(),
	}, nil
}
