package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var (
	testDB *database.DB
	loc    = time.FixedZone("IDT", 3*60*60)
)

// TestMain connects to TEST_DATABASE_URL and applies the migrations.
// Without the variable every test of this package is skipped.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		fmt.Println("TEST_DATABASE_URL not set, skipping PostgreSQL repository tests")
		os.Exit(0)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 5, MinConns: 1})
	if err != nil {
		fmt.Println("failed to connect to test database:", err)
		os.Exit(1)
	}
	if _, err := db.Migrate(ctx, "../../../../migrations"); err != nil {
		fmt.Println("failed to migrate test database:", err)
		os.Exit(1)
	}
	testDB = db

	code := m.Run()
	db.Close()
	os.Exit(code)
}

// truncateAll empties every application table.
func truncateAll(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	tx, err := testDB.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	for _, table := range []string{"refresh_tokens", "notification_preferences", "notifications", "requests", "holidays", "users"} {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "truncate %s", table)
	}
	require.NoError(t, tx.Commit(ctx))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
