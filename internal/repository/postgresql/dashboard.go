package postgresql

import (
	"context"

	"github.com/distrohub/distro-backend-go/internal/domain/dashboard"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// Counts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) Counts(ctx context.Context) (dashboard.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM distributors WHERE is_active),
			(SELECT COUNT(*) FROM users WHERE is_active),
			(SELECT COUNT(*) FROM damage_claims WHERE status = 'pending'),
			(SELECT COUNT(*) FROM sales_inquiries WHERE status IN ('open', 'follow_up')),
			(SELECT COUNT(*) FROM order_requests WHERE status = 'pending')
	`
	var s dashboard.Summary
	err := q.QueryRow(ctx, query).Scan(
		&s.Distributors,
		&s.Staff,
		&s.PendingClaims,
		&s.OpenInquiries,
		&s.PendingOrders,
	)
	return s, err
}
