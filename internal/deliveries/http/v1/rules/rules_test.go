package rules

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
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/services/mock"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testClientID = "7b1d2c9e-0d6f-4a51-9b1e-3f1f5c7a2a01"
	testRuleID   = "5f0c3a3e-8f7b-4c3e-9a55-2d1c7e4b9f21"

	ruleOut = `{"kind":"matchingRule","id":"` + testRuleID + `","name":"same day","priority":1,"ruleType":"one_to_one","isInternal":false,"dateMustMatch":true,"dateToleranceDays":0,"compareCurrency":"local","allowTolerance":false,"toleranceAmount":0,"isActive":true,"createdAt":null,"updatedAt":null}`
)

type testRuleHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockRuleService
}

func ruleTestHelper(t *testing.T) testRuleHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockSvc := mock.NewMockRuleService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testRuleHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func (h testRuleHelper) serve(t *testing.T, method, url, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, strings.TrimSuffix(string(b), "\n")
}

func sameDayRule() *models.MatchingRule {
	return &models.MatchingRule{
		ID:              testRuleID,
		ClientID:        testClientID,
		Name:            "same day",
		Priority:        1,
		RuleType:        models.RuleTypeOneToOne,
		DateMustMatch:   true,
		CompareCurrency: models.CompareCurrencyLocal,
		IsActive:        true,
	}
}

func Test_Handler_createRule(t *testing.T) {
	testHelper := ruleTestHelper(t)
	url := "/api/v1/clients/" + testClientID + "/rules"

	tests := []struct {
		name     string
		body     string
		doMock   func()
		wantRes  string
		wantCode int
	}{
		{
			name: "success",
			body: `{"name":"same day","priority":1,"ruleType":"one_to_one","dateMustMatch":true}`,
			doMock: func() {
				testHelper.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req models.CreateMatchingRuleRequest) (*models.MatchingRule, error) {
						assert.Equal(t, testClientID, req.ClientID)
						assert.Equal(t, "same day", req.Name)
						assert.True(t, req.DateMustMatch)
						return sameDayRule(), nil
					})
			},
			wantRes:  ruleOut,
			wantCode: http.StatusCreated,
		},
		{
			name:     "error validating request",
			body:     `{"name":"","priority":0,"ruleType":"one_to_all"}`,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"RULE_NAME_REQUIRED","field":"name","message":"name is required"},{"code":"RULE_PRIORITY_REQUIRED","field":"priority","message":"priority is required"},{"code":"RULE_TYPE_INVALID","field":"ruleType","message":"ruleType must be one of one_to_one, many_to_one, many_to_many"}]}`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "negative tolerance",
			body:     `{"name":"loose","priority":2,"ruleType":"many_to_one","allowTolerance":true,"toleranceAmount":-1}`,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"TOLERANCE_AMOUNT_INVALID","field":"toleranceAmount","message":"toleranceAmount must not be negative"}]}`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "priority taken",
			body: `{"name":"same day","priority":1,"ruleType":"one_to_one"}`,
			doMock: func() {
				testHelper.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, common.ErrDataExist)
			},
			wantRes:  `{"status":"error","code":409,"message":"data exist"}`,
			wantCode: http.StatusConflict,
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

func Test_Handler_listRules(t *testing.T) {
	testHelper := ruleTestHelper(t)

	testHelper.mockService.EXPECT().List(gomock.Any(), testClientID).Return([]models.MatchingRule{*sameDayRule()}, nil)
	code, body := testHelper.serve(t, http.MethodGet, "/api/v1/clients/"+testClientID+"/rules", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, `{"kind":"collection","contents":[`+ruleOut+`],"total_rows":1}`, body)

	testHelper.mockService.EXPECT().List(gomock.Any(), testClientID).Return(nil, common.ErrClientNotFound)
	code, body = testHelper.serve(t, http.MethodGet, "/api/v1/clients/"+testClientID+"/rules", "")
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, `{"status":"error","code":404,"message":"client not found"}`, body)
}

func Test_Handler_getRule(t *testing.T) {
	testHelper := ruleTestHelper(t)
	url := "/api/v1/clients/" + testClientID + "/rules/" + testRuleID

	testHelper.mockService.EXPECT().Get(gomock.Any(), testClientID, testRuleID).Return(sameDayRule(), nil)
	code, body := testHelper.serve(t, http.MethodGet, url, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, ruleOut, body)

	code, body = testHelper.serve(t, http.MethodGet, "/api/v1/clients/"+testClientID+"/rules/r-1", "")
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, `{"status":"error","message":"validation failed","errors":[{"code":"RULE_ID_INVALID","field":"ruleId","message":"ruleId must be a valid uuid"}]}`, body)
}

func Test_Handler_updateRule(t *testing.T) {
	testHelper := ruleTestHelper(t)
	url := "/api/v1/clients/" + testClientID + "/rules/" + testRuleID

	testHelper.mockService.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UpdateMatchingRuleRequest) (*models.MatchingRule, error) {
			assert.Equal(t, testRuleID, req.RuleID)
			assert.Equal(t, testClientID, req.ClientID)
			return sameDayRule(), nil
		})
	code, body := testHelper.serve(t, http.MethodPut, url, `{"name":"same day","priority":1,"ruleType":"one_to_one","dateMustMatch":true}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, ruleOut, body)

	testHelper.mockService.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, common.ErrRuleNotFound)
	code, body = testHelper.serve(t, http.MethodPut, url, `{"name":"same day","priority":1,"ruleType":"one_to_one"}`)
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, `{"status":"error","code":404,"message":"matching rule not found"}`, body)
}

func Test_Handler_deleteRule(t *testing.T) {
	testHelper := ruleTestHelper(t)
	url := "/api/v1/clients/" + testClientID + "/rules/" + testRuleID

	testHelper.mockService.EXPECT().Delete(gomock.Any(), testClientID, testRuleID).Return(nil)
	code, _ := testHelper.serve(t, http.MethodDelete, url, "")
	assert.Equal(t, http.StatusNoContent, code)

	testHelper.mockService.EXPECT().Delete(gomock.Any(), testClientID, testRuleID).Return(common.ErrRuleNotFound)
	code, _ = testHelper.serve(t, http.MethodDelete, url, "")
	assert.Equal(t, http.StatusNotFound, code)
}
