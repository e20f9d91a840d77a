package dashboard

import "context"

type DashboardRepository interface {
	Counts(ctx context.Context) (Summary, error)
}

type DashboardService interface {
	Summary(ctx context.Context) (Summary, error)
}
