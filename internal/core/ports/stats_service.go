package ports

import "context"

// Stats is the dashboard summary computed over published events.
type Stats struct {
	ActiveEvents       int     `json:"activeEvents"`
	TotalRegistrations int     `json:"totalRegistrations"`
	Communities        int     `json:"communities"`
	Revenue            float64 `json:"revenue"`
}

// StatsService computes the dashboard summary.
type StatsService interface {
	Dashboard(ctx context.Context) (*Stats, error)
}
