package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/naphattraa1/irrigation-planner/internal/engine"
	"github.com/naphattraa1/irrigation-planner/internal/satellite"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// designCacheTTL bounds how long a cached response may serve; the UI
// recomputes on every input change, so identical requests are common.
const designCacheTTL = 10 * time.Minute

// DesignService runs the calculation engine and decorates its output.
type DesignService struct {
	eng      *engine.Engine
	rdb      *redis.Client
	provider satellite.Provider
	logger   *zap.Logger
}

// NewDesignService creates a design service. rdb and provider may be nil; the
// service then computes uncached and unannotated.
func NewDesignService(eng *engine.Engine, rdb *redis.Client, provider satellite.Provider, logger *zap.Logger) *DesignService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DesignService{eng: eng, rdb: rdb, provider: provider, logger: logger}
}

// Engine exposes the underlying engine for callers that need raw summaries.
func (s *DesignService) Engine() *engine.Engine {
	return s.eng
}

// Compute runs the full design pipeline for a request. Results for identical
// inputs are served from redis for a short window; cached responses keep
// their original timestamp.
func (s *DesignService) Compute(ctx context.Context, req engine.DesignRequest) (engine.DesignResponse, error) {
	in := req.ToInput()

	key, ok := s.cacheKey(in)
	if ok {
		if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var resp engine.DesignResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return resp, nil
			}
		}
	}

	summary := s.eng.BuildDesign(in)
	resp := engine.BuildResponse(summary, time.Now())

	if s.provider != nil {
		annotation, err := s.provider.Annotate(ctx, req.Boundary)
		if err != nil {
			s.logger.Warn("satellite annotation failed", zap.Error(err))
		} else {
			resp.Satellite = &annotation
		}
	}

	if ok {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, data, designCacheTTL).Err(); err != nil {
				s.logger.Debug("design cache write failed", zap.Error(err))
			}
		}
	}

	s.logger.Info("design computed",
		zap.Float64("area_m2", summary.WaterBalance.AreaM2),
		zap.Float64("demand_lday", summary.WaterBalance.WaterDemandLPerDay),
		zap.Int("zones", summary.Zones.ZoneCount),
		zap.Bool("valid", summary.Validation.IsValid),
	)

	return resp, nil
}

// Summarize runs the pipeline without caching or annotation; used by exports
// and by project snapshots.
func (s *DesignService) Summarize(req engine.DesignRequest) engine.DesignSummary {
	return s.eng.BuildDesign(req.ToInput())
}

// SeasonalRequest carries 12 months of climate data plus the design input.
type SeasonalRequest struct {
	Design          engine.DesignRequest `json:"design"`
	MonthlyETo      [12]float64          `json:"monthly_eto"`
	MonthlyRainfall [12]float64          `json:"monthly_rainfall"`
}

// SeasonalResponse is the 12-month simulation with its summary.
type SeasonalResponse struct {
	Records []engine.SeasonalRecord `json:"records"`
	Summary engine.SeasonSummary    `json:"summary"`
}

// Seasonal reruns the water balance across a 12-month climate series.
func (s *DesignService) Seasonal(req SeasonalRequest) SeasonalResponse {
	records, summary := s.eng.SimulateSeason(req.MonthlyETo, req.MonthlyRainfall, req.Design.ToInput())
	return SeasonalResponse{Records: records[:], Summary: summary}
}

// cacheKey digests the normalized input. A nil redis client disables caching.
func (s *DesignService) cacheKey(in engine.DesignInput) (string, bool) {
	if s.rdb == nil {
		return "", false
	}
	data, err := json.Marshal(in.Normalize())
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(data)
	return "design:cache:" + hex.EncodeToString(sum[:]), true
}
