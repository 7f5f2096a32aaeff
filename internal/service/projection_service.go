package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/investcalc/calculators/internal/cache"
	"github.com/investcalc/calculators/internal/calculation"
	"github.com/investcalc/calculators/internal/domain"
	"github.com/investcalc/calculators/pkg/dateutil"
	"go.uber.org/zap"
)

// ProjectionService validates inputs, consults the result cache and runs the engine.
type ProjectionService struct {
	engine *calculation.ProjectionEngine
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewProjectionService creates a service. A nil cache disables caching and a
// nil logger discards log output.
func NewProjectionService(engine *calculation.ProjectionEngine, c cache.Cache, ttl time.Duration, logger *zap.Logger) *ProjectionService {
	if c == nil {
		c = cache.NopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectionService{engine: engine, cache: c, ttl: ttl, logger: logger}
}

// Engine returns the underlying projection engine.
func (s *ProjectionService) Engine() *calculation.ProjectionEngine { return s.engine }

// Project returns the projection for input and whether it came from the cache.
// Cache failures are logged and never fail the call.
func (s *ProjectionService) Project(ctx context.Context, input domain.ProjectionInput) (*domain.ProjectionResult, bool, error) {
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	key := CacheKey(input, s.engine.Options())
	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("cache lookup failed", zap.String("op", "project"), zap.String("key", key), zap.Error(err))
	} else if ok {
		var cached domain.ProjectionResult
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			s.logger.Debug("cache hit", zap.String("op", "project"), zap.String("key", key))
			return &cached, true, nil
		}
		s.logger.Warn("discarding undecodable cache entry", zap.String("op", "project"), zap.String("key", key))
	}

	result, err := s.engine.Run(input)
	if err != nil {
		return nil, false, err
	}

	if raw, err := json.Marshal(result); err != nil {
		s.logger.Warn("failed to encode result for cache", zap.String("op", "project"), zap.Error(err))
	} else if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		s.logger.Warn("cache store failed", zap.String("op", "project"), zap.String("key", key), zap.Error(err))
	}

	s.logger.Info("projection computed",
		zap.String("op", "project"),
		zap.String("product", string(input.Product)),
		zap.Int("years", input.Years),
		zap.String("total_returns", result.TotalReturns.String()),
	)
	return result, false, nil
}

// CacheKey identifies a projection by its inputs and the engine options that
// affect the output.
func CacheKey(input domain.ProjectionInput, opts calculation.Options) string {
	start := "-"
	if input.StartDate != nil {
		start = input.StartDate.Format(dateutil.DateLayout)
	}
	return strings.Join([]string{
		"v1",
		string(input.Product),
		input.Amount.String(),
		input.AnnualRatePercent.String(),
		fmt.Sprintf("%d", input.Years),
		start,
		opts.Divisor.String(),
		fmt.Sprintf("%t", opts.LegacyRounding),
	}, "|")
}
