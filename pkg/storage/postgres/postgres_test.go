package postgres_test

import (
	"advent/pkg/storage/postgres"
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// the port accepts connections before the server is ready for queries
	var pgSQL *postgres.PgSQL
	require.Eventually(t, func() bool {
		pgSQL, err = postgres.New(ctx, postgres.Options{
			Username:           testUser,
			Password:           testPassword,
			Host:               pgContainer.Host,
			Port:               pgContainer.Port,
			Database:           testDB,
			SslMode:            "disable",
			ConnMaxLifetime:    time.Minute,
			ConnMaxIdleTime:    time.Minute,
			MaxOpenConnections: 5,
			MaxIdleConnections: 1,
		})
		if err != nil {
			return false
		}
		if pingErr := pgSQL.DB.(*sql.DB).PingContext(ctx); pingErr != nil {
			_ = pgSQL.Close()

			return false
		}

		return true
	}, 30*time.Second, 500*time.Millisecond)

	// run migrations
	_, _, err = postgres.Migrate(ctx, pgSQL.DB.(*sql.DB))
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

func TestMigrate_UpToDate(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	version, applied, err := postgres.Migrate(context.Background(), pg.DB.(*sql.DB))
	require.NoError(t, err)
	require.Empty(t, applied)
	require.Equal(t, int64(20251201000000), version)
}
