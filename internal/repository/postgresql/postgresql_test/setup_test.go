package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var (
	migrateOnce sync.Once
	migrateErr  error
)

// TestDatabaseSetup holds a migrated test database connection
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL, applies migrations and
// truncates all tables. The test is skipped when the variable is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("requires TEST_DATABASE_URL")
	}

	ctx := context.Background()
	migrateOnce.Do(func() {
		migrateErr = database.RunMigrations(ctx, dsn)
	})
	require.NoError(t, migrateErr)

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 8})
	require.NoError(t, err)

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(setup.Close)
	return setup
}

// TruncateAllTables removes all rows and resets identities
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{
		"notifications",
		"vacation_balances",
		"absence_approvals",
		"absence_requests",
		"absence_types",
		"employees",
		"tenants",
	}

	for _, table := range tables {
		if _, err := s.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return nil
}

func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}

func (s *TestDatabaseSetup) CreateTenant(t *testing.T, name string) int64 {
	t.Helper()
	var id int64
	err := s.DB.QueryRow(context.Background(), `INSERT INTO tenants (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func (s *TestDatabaseSetup) CreateEmployee(t *testing.T, tenantID int64, managerID *int64, first, last string) int64 {
	t.Helper()
	var id int64
	err := s.DB.QueryRow(context.Background(),
		`INSERT INTO employees (tenant_id, manager_id, first_name, last_name, email) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		tenantID, managerID, first, last, first+"@example.com",
	).Scan(&id)
	require.NoError(t, err)
	return id
}
