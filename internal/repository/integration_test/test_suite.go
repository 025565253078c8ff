package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"console/internal/pkg/config"
	"console/internal/pkg/postgres"
	"console/pkg/logger/zap_adapter"
	"console/pkg/querier"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// GetQuerier подключается к тестовой базе один раз на процесс.
// Переменные POSTGRES_* берутся из окружения; схема накатывается заранее через cmd/migrate.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		cfg := config.LoadDatabase()

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, &cfg)
		if err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	if setupSql == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE notifications RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
