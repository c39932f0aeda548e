package repositories

import (
	"database/sql"
	"database/sql/driver"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/config"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

const (
	testClientID = "6f1c8a52-3c2d-4c11-9d1a-0a4f1f9b2c01"
	testMatchID  = "0b6f3f7e-8a3e-4d0e-b0a8-2f9d4b8f5c10"
	testRuleID   = "a4d1d1f0-59a2-4f7e-8a61-1d2b3c4d5e6f"
)

var testTime = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

func newMockRepository(t *testing.T, opts ...RepositoryOption) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cfg := config.Config{Matching: config.MatchingConfig{}.WithDefaults()}
	return NewSQLRepository(db, db, cfg, opts...), db, mock
}

func transactionRowColumns() []string {
	return []string{
		"id", "clientId", "set", "amount", "foreignAmount", "currency", "foreignCurrency",
		"date", "secondaryDate", "description", "voucher", "reference",
		"isImported", "matchStatus", "matchId", "version", "createdAt", "updatedAt",
	}
}

// driverArgs adapts query arguments to sqlmock's WithArgs.
func driverArgs(args []any) []driver.Value {
	out := make([]driver.Value, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}
