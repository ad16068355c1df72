package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

// StatsCache abstracts the short-lived dashboard cache (Redis). A nil cache
// disables caching entirely.
type StatsCache interface {
	Get(ctx context.Context) (*ports.Stats, bool)
	Set(ctx context.Context, stats *ports.Stats)
}

// StatsService computes the dashboard summary by scanning published events.
type StatsService struct {
	events        ports.EventRepository
	registrations ports.RegistrationRepository
	communities   ports.CommunityRepository
	cache         StatsCache
	logger        zerolog.Logger
}

func NewStatsService(
	events ports.EventRepository,
	registrations ports.RegistrationRepository,
	communities ports.CommunityRepository,
	cache StatsCache,
	logger zerolog.Logger,
) *StatsService {
	return &StatsService{
		events:        events,
		registrations: registrations,
		communities:   communities,
		cache:         cache,
		logger:        logger,
	}
}

// Dashboard returns active event, registration, community, and revenue
// totals. Revenue is registrations times price summed over published events.
func (s *StatsService) Dashboard(ctx context.Context) (*ports.Stats, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	published, err := s.events.ListByStatus(ctx, domain.EventPublished)
	if err != nil {
		return nil, err
	}

	stats := &ports.Stats{ActiveEvents: len(published)}
	for _, event := range published {
		count, err := s.registrations.CountByEvent(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		stats.TotalRegistrations += count
		stats.Revenue += float64(count) * event.Price
	}

	communities, err := s.communities.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Communities = len(communities)

	if s.cache != nil {
		s.cache.Set(ctx, stats)
	}
	return stats, nil
}
