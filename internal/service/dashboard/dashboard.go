package dashboard

import (
	"context"
	"fmt"

	"console/internal/entities"
	"console/internal/service"
)

const RecentOrdersLimit = 5

// Service отдаёт сводку, посчитанную Order API по всем заказам. Фильтр
// синхронизированного списка на неё не влияет.
type Service struct {
	auth AuthProvider
	api  DashboardAPI
}

func New(auth AuthProvider, api DashboardAPI) *Service {
	return &Service{
		auth: auth,
		api:  api,
	}
}

func (s *Service) Stats(ctx context.Context) (*entities.DashboardStats, error) {
	token, ok := s.auth.AccessToken()
	if !ok {
		return nil, service.ErrAuth
	}

	stats, err := s.api.GetDashboard(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get dashboard: %w", err)
	}

	if len(stats.RecentOrders) > RecentOrdersLimit {
		stats.RecentOrders = stats.RecentOrders[:RecentOrdersLimit]
	}
	if stats.RecentOrders == nil {
		stats.RecentOrders = []entities.RecentOrder{}
	}
	return stats, nil
}
