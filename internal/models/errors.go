package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}

var MapErrors = MapErrs{
	"transactionIds_required": {Code: "TRANSACTION_IDS_REQUIRED", ErrorMessage: errors.New("transactionIds is required")},
	"transactionIds_min":      {Code: "TRANSACTION_IDS_MIN", ErrorMessage: errors.New("a match needs at least two transactions")},
	"transactionIds_uuid":     {Code: "TRANSACTION_ID_INVALID", ErrorMessage: errors.New("transaction id must be a valid uuid")},
	"clientId_uuid":           {Code: "CLIENT_ID_INVALID", ErrorMessage: errors.New("clientId must be a valid uuid")},
	"clientId_required":       {Code: "CLIENT_ID_REQUIRED", ErrorMessage: errors.New("clientId is required")},
	"ruleId_uuid":             {Code: "RULE_ID_INVALID", ErrorMessage: errors.New("ruleId must be a valid uuid")},
	"matchId_uuid":            {Code: "MATCH_ID_INVALID", ErrorMessage: errors.New("matchId must be a valid uuid")},
	"transactionId_uuid":      {Code: "TRANSACTION_ID_INVALID", ErrorMessage: errors.New("transactionId must be a valid uuid")},
	"name_required":           {Code: "RULE_NAME_REQUIRED", ErrorMessage: errors.New("name is required")},
	"priority_required":       {Code: "RULE_PRIORITY_REQUIRED", ErrorMessage: errors.New("priority is required")},
	"priority_min":            {Code: "RULE_PRIORITY_INVALID", ErrorMessage: errors.New("priority must be greater than zero")},
	"ruleType_oneof":          {Code: "RULE_TYPE_INVALID", ErrorMessage: errors.New("ruleType must be one of one_to_one, many_to_one, many_to_many")},
	"compareCurrency_oneof":   {Code: "COMPARE_CURRENCY_INVALID", ErrorMessage: errors.New("compareCurrency must be local or foreign")},
	"toleranceAmount_decimalNonNegative": {
		Code:         "TOLERANCE_AMOUNT_INVALID",
		ErrorMessage: errors.New("toleranceAmount must not be negative"),
	},
}
