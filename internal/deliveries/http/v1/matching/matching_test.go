package matching

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/http/middleware"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/config"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/services/mock"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testClientID = "7b1d2c9e-0d6f-4a51-9b1e-3f1f5c7a2a01"
	testActorID  = "0e0c4b8a-5d0d-4d8e-8d7a-0b6d1f7b3c11"
	testMatchID  = "01890a5d-ac96-774b-bcce-b302099a8057"
	trxA         = "a0000000-0000-4000-8000-000000000001"
	trxB         = "b0000000-0000-4000-8000-000000000002"
)

type testMatchingHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockMatchingService
}

func matchingTestHelper(t *testing.T) testMatchingHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockSvc := mock.NewMockMatchingService(mockCtrl)

	m := middleware.NewMiddleware(config.Config{})
	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1", m.Context())
	New(v1Group, mockSvc)

	return testMatchingHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

// serve sends body (may be empty) with the actor header set.
func (h testMatchingHelper) serve(t *testing.T, method, url, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserID, testActorID)

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, strings.TrimSuffix(string(b), "\n")
}

func Test_Handler_preview(t *testing.T) {
	testHelper := matchingTestHelper(t)

	tests := []struct {
		name      string
		urlCalled string
		doMock    func()
		wantRes   string
		wantCode  int
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/clients/" + testClientID + "/matching/preview",
			doMock: func() {
				testHelper.mockService.EXPECT().Preview(gomock.Any(), testClientID).Return(&models.RunStats{
					TotalMatches:      1,
					TotalTransactions: 2,
					ByRule: []models.RuleStats{{
						RuleID:           "r1",
						RuleName:         "same day",
						RuleType:         models.RuleTypeOneToOne,
						MatchCount:       1,
						TransactionCount: 2,
					}},
					DurationMs: 3,
				}, nil)
			},
			wantRes:  `{"totalMatches":1,"totalTransactions":2,"byRule":[{"ruleId":"r1","ruleName":"same day","ruleType":"one_to_one","matchCount":1,"transactionCount":2,"skippedBuckets":0}],"durationMs":3}`,
			wantCode: http.StatusOK,
		},
		{
			name:      "invalid client id",
			urlCalled: "/api/v1/clients/acme/matching/preview",
			wantRes:   `{"status":"error","message":"validation failed","errors":[{"code":"CLIENT_ID_INVALID","field":"clientId","message":"clientId must be a valid uuid"}]}`,
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name:      "client not found",
			urlCalled: "/api/v1/clients/" + testClientID + "/matching/preview",
			doMock: func() {
				testHelper.mockService.EXPECT().Preview(gomock.Any(), testClientID).Return(nil, common.ErrClientNotFound)
			},
			wantRes:  `{"status":"error","code":404,"message":"client not found"}`,
			wantCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			code, body := testHelper.serve(t, http.MethodPost, tt.urlCalled, "")
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, body)
		})
	}
}

func Test_Handler_commit(t *testing.T) {
	testHelper := matchingTestHelper(t)
	url := "/api/v1/clients/" + testClientID + "/matching/commit"

	t.Run("success passes the actor from the header", func(t *testing.T) {
		testHelper.mockService.EXPECT().Commit(gomock.Any(), testClientID, testActorID).
			DoAndReturn(func(ctx context.Context, _, _ string) (*models.CommitResult, error) {
				assert.NotEmpty(t, xlog.GetCorrelationID(ctx))
				return &models.CommitResult{
					TotalMatches:          1,
					TotalTransactions:     2,
					MatchedTransactionIDs: []string{trxA, trxB},
					Stats:                 models.RunStats{TotalMatches: 1, TotalTransactions: 2},
				}, nil
			})

		code, body := testHelper.serve(t, http.MethodPost, url, "")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, `{"totalMatches":1,"totalTransactions":2,"matchedTransactionIds":["`+trxA+`","`+trxB+`"],"stats":{"totalMatches":1,"totalTransactions":2,"byRule":null,"durationMs":0}}`, body)
	})

	t.Run("missing actor is rejected before the service", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, url, nil)
		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, `{"status":"error","code":400,"message":"missing actor id"}`, strings.TrimSuffix(rec.Body.String(), "\n"))
	})

	t.Run("run in progress", func(t *testing.T) {
		testHelper.mockService.EXPECT().Commit(gomock.Any(), testClientID, testActorID).Return(nil, common.ErrRunInProgress)

		code, body := testHelper.serve(t, http.MethodPost, url, "")
		require.Equal(t, http.StatusConflict, code)
		assert.Equal(t, `{"status":"error","code":409,"message":"matching run already in progress for client"}`, body)
	})

	t.Run("unexpected error", func(t *testing.T) {
		testHelper.mockService.EXPECT().Commit(gomock.Any(), testClientID, testActorID).Return(nil, assert.AnError)

		code, body := testHelper.serve(t, http.MethodPost, url, "")
		require.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`, body)
	})
}

func Test_Handler_getMatches(t *testing.T) {
	testHelper := matchingTestHelper(t)
	url := "/api/v1/clients/" + testClientID + "/matches"
	actor := testActorID

	t.Run("success", func(t *testing.T) {
		testHelper.mockService.EXPECT().GetMatches(gomock.Any(), testClientID).Return([]models.MatchWithMembers{{
			Match: models.Match{
				ID:         testMatchID,
				ClientID:   testClientID,
				MatchType:  models.MatchTypeManual,
				Difference: decimal.RequireFromString("0.01"),
				MatchedBy:  &actor,
			},
			TransactionIDs: []string{trxA, trxB},
		}}, nil)

		code, body := testHelper.serve(t, http.MethodGet, url, "")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, `{"kind":"collection","contents":[{"kind":"match","id":"`+testMatchID+`","ruleId":null,"matchType":"manual","difference":0.01,"matchedBy":"`+testActorID+`","transactionIds":["`+trxA+`","`+trxB+`"],"createdAt":null}],"total_rows":1}`, body)
	})

	t.Run("empty", func(t *testing.T) {
		testHelper.mockService.EXPECT().GetMatches(gomock.Any(), testClientID).Return(nil, nil)

		code, body := testHelper.serve(t, http.MethodGet, url, "")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, `{"kind":"collection","contents":[],"total_rows":0}`, body)
	})
}

func Test_Handler_createManualMatch(t *testing.T) {
	testHelper := matchingTestHelper(t)
	url := "/api/v1/clients/" + testClientID + "/matches"

	tests := []struct {
		name     string
		body     string
		doMock   func()
		wantRes  string
		wantCode int
	}{
		{
			name: "success",
			body: `{"transactionIds":["` + trxA + `","` + trxB + `"]}`,
			doMock: func() {
				testHelper.mockService.EXPECT().CreateManualMatch(gomock.Any(), testClientID, testActorID, []string{trxA, trxB}).
					Return(&models.ManualMatchResult{MatchID: testMatchID, TransactionCount: 2}, nil)
			},
			wantRes:  `{"matchId":"` + testMatchID + `","transactionCount":2}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "single transaction",
			body:     `{"transactionIds":["` + trxA + `"]}`,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"TRANSACTION_IDS_MIN","field":"transactionIds","message":"a match needs at least two transactions"}]}`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "malformed body",
			body:     `{"transactionIds":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "sum not zero",
			body: `{"transactionIds":["` + trxA + `","` + trxB + `"]}`,
			doMock: func() {
				testHelper.mockService.EXPECT().CreateManualMatch(gomock.Any(), testClientID, testActorID, []string{trxA, trxB}).
					Return(nil, common.ErrSumNotZero)
			},
			wantRes:  `{"status":"error","code":409,"message":"transactions do not net to zero within tolerance"}`,
			wantCode: http.StatusConflict,
		},
		{
			name: "duplicate id",
			body: `{"transactionIds":["` + trxA + `","` + trxA + `"]}`,
			doMock: func() {
				testHelper.mockService.EXPECT().CreateManualMatch(gomock.Any(), testClientID, testActorID, []string{trxA, trxA}).
					Return(nil, common.ErrDuplicateTransaction)
			},
			wantRes:  `{"status":"error","code":400,"message":"duplicate transaction id"}`,
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			code, body := testHelper.serve(t, http.MethodPost, url, tt.body)
			require.Equal(t, tt.wantCode, code)
			if tt.wantRes != "" {
				require.Equal(t, tt.wantRes, body)
			}
		})
	}
}

func Test_Handler_unmatch(t *testing.T) {
	testHelper := matchingTestHelper(t)
	url := "/api/v1/clients/" + testClientID + "/matches/unmatch"

	tests := []struct {
		name     string
		body     string
		doMock   func()
		wantRes  string
		wantCode int
	}{
		{
			name: "by match id",
			body: `{"matchId":"` + testMatchID + `"}`,
			doMock: func() {
				testHelper.mockService.EXPECT().Unmatch(gomock.Any(), testClientID, testActorID,
					models.UnmatchRequest{ClientID: testClientID, MatchID: testMatchID}).
					Return(&models.UnmatchResult{MatchesRemoved: 1, TransactionsUnmatched: 2}, nil)
			},
			wantRes:  `{"matchesRemoved":1,"transactionsUnmatched":2}`,
			wantCode: http.StatusOK,
		},
		{
			name: "all",
			body: `{"all":true}`,
			doMock: func() {
				testHelper.mockService.EXPECT().Unmatch(gomock.Any(), testClientID, testActorID,
					models.UnmatchRequest{ClientID: testClientID, All: true}).
					Return(&models.UnmatchResult{MatchesRemoved: 3, TransactionsUnmatched: 6}, nil)
			},
			wantRes:  `{"matchesRemoved":3,"transactionsUnmatched":6}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "invalid transaction id",
			body:     `{"transactionId":"t-1"}`,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"TRANSACTION_ID_INVALID","field":"transactionId","message":"transactionId must be a valid uuid"}]}`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "no selector",
			body: `{}`,
			doMock: func() {
				testHelper.mockService.EXPECT().Unmatch(gomock.Any(), testClientID, testActorID,
					models.UnmatchRequest{ClientID: testClientID}).
					Return(nil, common.ErrInvalidUnmatchSelector)
			},
			wantRes:  `{"status":"error","code":400,"message":"exactly one of matchId, all or transactionId is required"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "match not found",
			body: `{"matchId":"` + testMatchID + `"}`,
			doMock: func() {
				testHelper.mockService.EXPECT().Unmatch(gomock.Any(), testClientID, testActorID, gomock.Any()).
					Return(nil, common.ErrMatchNotFound)
			},
			wantRes:  `{"status":"error","code":404,"message":"match not found"}`,
			wantCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			code, body := testHelper.serve(t, http.MethodPost, url, tt.body)
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, body)
		})
	}
}
