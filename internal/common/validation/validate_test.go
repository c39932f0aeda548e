package validation

import (
	"testing"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	clientID = "0b8f6a43-5a63-4a55-8b4e-3f0f9b0e6f11"
	trxA     = "6f1f8c34-6a3f-4d5c-9d0f-3c1a4b9d2e01"
	trxB     = "6f1f8c34-6a3f-4d5c-9d0f-3c1a4b9d2e02"
)

func TestValidateStruct(t *testing.T) {
	negative, _ := models.ParseDecimal("-1")
	tests := []struct {
		name       string
		toValidate interface{}
		wantErr    bool
		wantCode   string
	}{
		{
			name:       "success manual match request",
			toValidate: models.CreateManualMatchRequest{ClientID: clientID, TransactionIDs: []string{trxA, trxB}},
		},
		{
			name:       "manual match with one transaction",
			toValidate: models.CreateManualMatchRequest{ClientID: clientID, TransactionIDs: []string{trxA}},
			wantErr:    true,
			wantCode:   "TRANSACTION_IDS_MIN",
		},
		{
			name:       "manual match with bad uuid",
			toValidate: models.CreateManualMatchRequest{ClientID: clientID, TransactionIDs: []string{trxA, "nope"}},
			wantErr:    true,
			wantCode:   "TRANSACTION_ID_INVALID",
		},
		{
			name:       "unmatch with bad client id",
			toValidate: models.UnmatchRequest{ClientID: "abc", All: true},
			wantErr:    true,
			wantCode:   "CLIENT_ID_INVALID",
		},
		{
			name: "rule with negative tolerance",
			toValidate: models.CreateMatchingRuleRequest{
				ClientID:        clientID,
				Name:            "exact",
				Priority:        1,
				RuleType:        "one_to_one",
				ToleranceAmount: negative,
			},
			wantErr:  true,
			wantCode: "TOLERANCE_AMOUNT_INVALID",
		},
		{
			name: "rule with unknown type",
			toValidate: models.CreateMatchingRuleRequest{
				ClientID: clientID,
				Name:     "exact",
				Priority: 1,
				RuleType: "one_to_two",
			},
			wantErr:  true,
			wantCode: "RULE_TYPE_INVALID",
		},
		{
			name: "validate error not registered",
			toValidate: struct {
				Name string `json:"name" validate:"required,email"`
			}{Name: "x"},
			wantErr:  true,
			wantCode: "UNKNOWN",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.toValidate)
			assert.Equal(t, tt.wantErr, err != nil)
			if !tt.wantErr {
				return
			}

			var merr *multierror.Error
			require.ErrorAs(t, err, &merr)
			require.NotEmpty(t, merr.Errors)
			first, ok := merr.Errors[0].(ErrorValidateResponse)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, first.Code)
		})
	}
}

func TestValidateUUIDs(t *testing.T) {
	assert.NoError(t, ValidateUUIDs([]string{trxA, trxB}))
	assert.ErrorIs(t, ValidateUUIDs([]string{trxA, "x"}), common.ErrInvalidUUID)
	assert.ErrorIs(t, ValidateUUIDs([]string{trxA, trxA}), common.ErrDuplicateTransaction)
}
