package user

import (
	"context"
	"fmt"

	"console/internal/entities"
	"console/internal/service"
)

type Service struct {
	auth AuthProvider
	api  UserAPI
}

func New(auth AuthProvider, api UserAPI) *Service {
	return &Service{
		auth: auth,
		api:  api,
	}
}

func (s *Service) Users(ctx context.Context) ([]entities.User, error) {
	token, ok := s.auth.AccessToken()
	if !ok {
		return nil, service.ErrAuth
	}

	users, err := s.api.ListUsers(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []entities.User{}
	}
	return users, nil
}
