//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"console/internal/entities"
)

type AuthProvider interface {
	AccessToken() (string, bool)
}

type UserAPI interface {
	ListUsers(ctx context.Context, token string) ([]entities.User, error)
}
