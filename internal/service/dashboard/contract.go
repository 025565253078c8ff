//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_test
package dashboard

import (
	"context"

	"console/internal/entities"
)

type AuthProvider interface {
	AccessToken() (string, bool)
}

type DashboardAPI interface {
	GetDashboard(ctx context.Context, token string) (*entities.DashboardStats, error)
}
