package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/fjaeril/pdsnd-github/testutil"
)

// TestMain migrates the test database once before the Postgres store tests
// run. Without TEST_DATABASE_URL only the CSV tests run; the store tests
// skip themselves.
func TestMain(m *testing.M) {
	dsn := os.Getenv(testutil.DSNEnv)
	if dsn == "" {
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(dsn)
	if err := testutil.Migrate(context.Background(), db); err != nil {
		log.Fatalf("TestMain: %v", err)
	}
	db.Close()

	os.Exit(m.Run())
}
