package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	feedbackRepo "localspot/database/repository/feedback"
	providerRepo "localspot/database/repository/provider"
	"localspot/models"
	"localspot/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Redis keys for search telemetry.
const (
	keyTotalSearches  = "stats:searches:total"
	keyFailedSearches = "stats:searches:failed"
	keyTrending       = "stats:searches:trending"
)

// newProviderWindow is the lookback for the "new providers" stat.
const newProviderWindow = 7 * 24 * time.Hour

// StatsService records search telemetry and assembles the admin dashboard
// snapshot.
type StatsService interface {
	RecordSearch(ctx context.Context, query string, failed bool)
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	Trending(ctx context.Context, limit int64) ([]models.TrendingQuery, error)
}

// DefaultStatsService is the production implementation. Counters live in
// Redis; entity counts come from the store.
type DefaultStatsService struct {
	Providers providerRepo.ProviderRepository
	Feedback  feedbackRepo.FeedbackRepository
	Redis     *redis.Client
}

// RecordSearch bumps the search counters and the trending set. Recording is
// best-effort: a Redis failure is logged and never fails the search.
func (s *DefaultStatsService) RecordSearch(ctx context.Context, query string, failed bool) {
	logger := utils.GetLogger()
	if err := s.Redis.Incr(ctx, keyTotalSearches).Err(); err != nil {
		logger.Warn("failed to record search count", zap.Error(err))
		return
	}
	if failed {
		if err := s.Redis.Incr(ctx, keyFailedSearches).Err(); err != nil {
			logger.Warn("failed to record failed-search count", zap.Error(err))
		}
	}
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		if err := s.Redis.ZIncrBy(ctx, keyTrending, 1, q).Err(); err != nil {
			logger.Warn("failed to record trending query", zap.Error(err))
		}
	}
}

// AdminStats assembles the dashboard snapshot from store counts and Redis
// counters. Missing counters read as zero.
func (s *DefaultStatsService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	active, err := s.Providers.CountByActive(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("count active providers: %w", err)
	}
	inactive, err := s.Providers.CountByActive(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("count inactive providers: %w", err)
	}
	recent, err := s.Providers.CountCreatedSince(ctx, time.Now().Add(-newProviderWindow))
	if err != nil {
		return nil, fmt.Errorf("count new providers: %w", err)
	}
	feedbackCount, err := s.Feedback.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count feedback: %w", err)
	}

	total, err := s.counter(ctx, keyTotalSearches)
	if err != nil {
		return nil, err
	}
	failedCount, err := s.counter(ctx, keyFailedSearches)
	if err != nil {
		return nil, err
	}

	return &models.AdminStats{
		TotalProviders:    active + inactive,
		ActiveProviders:   active,
		InactiveProviders: inactive,
		NewProviders:      recent,
		TotalSearches:     total,
		FailedSearches:    failedCount,
		FeedbackCount:     feedbackCount,
	}, nil
}

// Trending returns the most frequent normalized queries, highest count first.
func (s *DefaultStatsService) Trending(ctx context.Context, limit int64) ([]models.TrendingQuery, error) {
	if limit <= 0 {
		limit = 10
	}
	entries, err := s.Redis.ZRevRangeWithScores(ctx, keyTrending, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch trending queries: %w", err)
	}
	trending := make([]models.TrendingQuery, 0, len(entries))
	for _, e := range entries {
		q, ok := e.Member.(string)
		if !ok {
			continue
		}
		trending = append(trending, models.TrendingQuery{Query: q, Count: e.Score})
	}
	return trending, nil
}

func (s *DefaultStatsService) counter(ctx context.Context, key string) (int64, error) {
	val, err := s.Redis.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read counter %s: %w", key, err)
	}
	return val, nil
}
