package dashboard

import (
	"context"
	"fmt"

	"github.com/distrohub/distro-backend-go/internal/domain/dashboard"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
)

type DashboardServiceImpl struct {
	db *database.DB
	dashboard.DashboardRepository
}

func NewDashboardService(db *database.DB, dashboardRepository dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		db:                  db,
		DashboardRepository: dashboardRepository,
	}
}

// Summary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Summary(ctx context.Context) (dashboard.Summary, error) {
	summary, err := s.DashboardRepository.Counts(ctx)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to load dashboard counts: %w", err)
	}
	return summary, nil
}
