package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"bitbucket.org/Amartha/go-recon-matching/internal/models"
)

func TestTransactionRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(transactionRepoTestSuite))
}

type transactionRepoTestSuite struct {
	suite.Suite
	t    *testing.T
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo TransactionRepository
}

func (suite *transactionRepoTestSuite) SetupTest() {
	suite.t = suite.T()
	r, db, mock := newMockRepository(suite.t)
	suite.db, suite.mock = db, mock
	suite.repo = r.GetTransactionRepository()
}

func (suite *transactionRepoTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *transactionRepoTestSuite) TestRepository_ListUnmatched() {
	testCases := []struct {
		name    string
		doMock  func()
		wantLen int
		wantErr bool
	}{
		{
			name: "happy path",
			doMock: func() {
				rows := sqlmock.NewRows(transactionRowColumns()).
					AddRow("t1", testClientID, 1, "100.00", nil, "IDR", nil, testTime, nil, "", "", "", false, "unmatched", nil, 1, testTime, testTime).
					AddRow("t2", testClientID, 2, "-100.00", "-6.50", "IDR", "USD", testTime, nil, "fee", "", "", true, "unmatched", nil, 3, testTime, testTime)
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryTransactionListUnmatched)).
					WithArgs(testClientID).
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "error scan row",
			doMock: func() {
				rows := sqlmock.NewRows([]string{"id"}).AddRow("t1")
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryTransactionListUnmatched)).
					WithArgs(testClientID).
					WillReturnRows(rows)
			},
			wantErr: true,
		},
		{
			name: "error db",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryTransactionListUnmatched)).
					WithArgs(testClientID).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			got, err := suite.repo.ListUnmatched(context.Background(), testClientID)
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Len(t, got, tc.wantLen)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *transactionRepoTestSuite) TestRepository_ListUnmatched_ScansNullableColumns() {
	rows := sqlmock.NewRows(transactionRowColumns()).
		AddRow("t2", testClientID, 2, "-100.00", "-6.50", "IDR", "USD", testTime, testTime, "fee", "v-1", "ref", true, "matched", testMatchID, 3, testTime, testTime)
	suite.mock.
		ExpectQuery(regexp.QuoteMeta(queryTransactionListUnmatched)).
		WithArgs(testClientID).
		WillReturnRows(rows)

	got, err := suite.repo.ListUnmatched(context.Background(), testClientID)
	require.NoError(suite.t, err)
	require.Len(suite.t, got, 1)

	tx := got[0]
	assert.Equal(suite.t, models.SetTwo, tx.Set)
	assert.Equal(suite.t, "-100", tx.Amount.String())
	assert.True(suite.t, tx.ForeignAmount.Valid)
	assert.Equal(suite.t, "-6.5", tx.ForeignAmount.Decimal.String())
	require.NotNil(suite.t, tx.ForeignCurrency)
	assert.Equal(suite.t, "USD", *tx.ForeignCurrency)
	assert.Equal(suite.t, models.MatchStatusMatched, tx.MatchStatus)
	require.NotNil(suite.t, tx.MatchID)
	assert.Equal(suite.t, testMatchID, *tx.MatchID)
	assert.Equal(suite.t, int64(3), tx.Version)
}

func (suite *transactionRepoTestSuite) TestRepository_GetByIDsForUpdate() {
	ids := []string{"t1", "t2"}
	rows := sqlmock.NewRows(transactionRowColumns()).
		AddRow("t1", testClientID, 1, "100.00", nil, "IDR", nil, testTime, nil, "", "", "", false, "unmatched", nil, 1, testTime, testTime)
	suite.mock.
		ExpectQuery(regexp.QuoteMeta(queryTransactionGetByIDsForUpdate)).
		WithArgs(testClientID, pq.Array(ids)).
		WillReturnRows(rows)

	got, err := suite.repo.GetByIDsForUpdate(context.Background(), testClientID, ids)
	require.NoError(suite.t, err)
	assert.Len(suite.t, got, 1)
	assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
}

func (suite *transactionRepoTestSuite) TestRepository_ListMatched() {
	query, _, err := buildListMatchedTransactionsQuery(testClientID, []string{testMatchID})
	require.NoError(suite.t, err)

	rows := sqlmock.NewRows(transactionRowColumns()).
		AddRow("t1", testClientID, 1, "100.00", nil, "IDR", nil, testTime, nil, "", "", "", false, "matched", testMatchID, 2, testTime, testTime).
		AddRow("t2", testClientID, 2, "-100.00", nil, "IDR", nil, testTime, nil, "", "", "", false, "matched", testMatchID, 2, testTime, testTime)
	suite.mock.
		ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(testClientID, "matched", pq.Array([]string{testMatchID})).
		WillReturnRows(rows)

	got, err := suite.repo.ListMatched(context.Background(), testClientID, testMatchID)
	require.NoError(suite.t, err)
	assert.Len(suite.t, got, 2)
	assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
}

func (suite *transactionRepoTestSuite) TestRepository_MarkMatched() {
	ids := []string{"t1", "t2", "t3"}

	testCases := []struct {
		name     string
		affected int64
		dbErr    error
		wantErr  bool
	}{
		{name: "all rows flipped", affected: 3},
		{name: "some rows already matched", affected: 2},
		{name: "error db", dbErr: assert.AnError, wantErr: true},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			exp := suite.mock.
				ExpectExec(regexp.QuoteMeta(queryTransactionMarkMatched)).
				WithArgs(testClientID, pq.Array(ids), testMatchID)
			if tc.dbErr != nil {
				exp.WillReturnError(tc.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tc.affected))
			}

			got, err := suite.repo.MarkMatched(context.Background(), testClientID, testMatchID, ids)
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.affected, got)
			assert.NoError(t, suite.mock.ExpectationsWereMet())
		})
	}
}

func (suite *transactionRepoTestSuite) TestRepository_Unmatch() {
	ctx := context.Background()

	suite.mock.
		ExpectExec(regexp.QuoteMeta(queryTransactionUnmatchByMatchIDs)).
		WithArgs(testClientID, pq.Array([]string{testMatchID})).
		WillReturnResult(sqlmock.NewResult(0, 2))
	got, err := suite.repo.UnmatchByMatchIDs(ctx, testClientID, []string{testMatchID})
	require.NoError(suite.t, err)
	assert.Equal(suite.t, int64(2), got)

	suite.mock.
		ExpectExec(regexp.QuoteMeta(queryTransactionUnmatchAll)).
		WithArgs(testClientID).
		WillReturnResult(sqlmock.NewResult(0, 7))
	got, err = suite.repo.UnmatchAll(ctx, testClientID)
	require.NoError(suite.t, err)
	assert.Equal(suite.t, int64(7), got)

	suite.mock.
		ExpectExec(regexp.QuoteMeta(queryTransactionDetach)).
		WithArgs(testClientID, "t1", testMatchID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	got, err = suite.repo.Detach(ctx, testClientID, "t1", testMatchID)
	require.NoError(suite.t, err)
	assert.Equal(suite.t, int64(1), got)

	assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
}

func TestAtomic(t *testing.T) {
	t.Run("commit joins every call", func(t *testing.T) {
		r, db, mock := newMockRepository(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(queryTransactionUnmatchAll)).
			WithArgs(testClientID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta(queryMatchDeleteAll)).
			WithArgs(testClientID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := r.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			if _, err := r.GetTransactionRepository().UnmatchAll(ctx, testClientID); err != nil {
				return err
			}
			_, err := r.GetMatchRepository().DeleteAll(ctx, testClientID)
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error rolls back", func(t *testing.T) {
		r, db, mock := newMockRepository(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(queryTransactionUnmatchAll)).
			WithArgs(testClientID).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := r.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			_, err := r.GetTransactionRepository().UnmatchAll(ctx, testClientID)
			return err
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("panic rolls back", func(t *testing.T) {
		r, db, mock := newMockRepository(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := r.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			panic("boom")
		})
		assert.ErrorContains(t, err, "boom")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		r, db, mock := newMockRepository(t)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(assert.AnError)

		called := false
		err := r.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, called)
	})
}
