package services

import (
	"context"

	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
)

// ReportingService assembles the dashboard overview for a user and month.
type ReportingService interface {
	GetDashboardOverview(ctx context.Context, userID string, month domain.BudgetMonth) (*domain.DashboardOverview, error)
}
