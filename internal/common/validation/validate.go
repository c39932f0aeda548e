package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	validate      = validator.New()
	reSliceSuffix = regexp.MustCompile(`\[\d+\]$`)
)

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			// path params carry only a param tag
			return fld.Tag.Get("param")
		}
		return name
	})

	registerNoSpecialCharacters()
	registerNoSpacesAtStartOrEnd()
	registerDecimalNonNegative()
}

// ValidateStruct returns a *multierror.Error of ErrorValidateResponse, or nil.
func ValidateStruct(toValidate interface{}) error {
	var errs *multierror.Error
	err := validate.Struct(toValidate)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		errs = multierror.Append(errs, ErrorValidateResponse{Message: err.Error()})
		return errs.ErrorOrNil()
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, valErr := range valErrs {
			field := reSliceSuffix.ReplaceAllString(valErr.Field(), "")
			key := fmt.Sprintf("%s_%s", field, valErr.Tag())
			if data, found := models.MapErrors[key]; found {
				errs = multierror.Append(errs, ErrorValidateResponse{
					Code:    data.Code,
					Field:   valErr.Field(),
					Message: data.ErrorMessage.Error(),
				})
				continue
			}
			errs = multierror.Append(errs, ErrorValidateResponse{
				Code:    "UNKNOWN",
				Field:   valErr.Field(),
				Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
			})
		}
	}

	return errs.ErrorOrNil()
}

// ValidateUUIDs checks every id is a canonical uuid and appears once.
func ValidateUUIDs(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return fmt.Errorf("%w: %s", common.ErrInvalidUUID, id)
		}
		key := parsed.String()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", common.ErrDuplicateTransaction, id)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func registerDecimalNonNegative() {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if valuer, ok := field.Interface().(models.Decimal); ok {
			return valuer.String()
		}
		return nil
	}, models.Decimal{})

	validate.RegisterValidation("decimalNonNegative", func(fl validator.FieldLevel) bool {
		data, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		value, err := decimal.NewFromString(data)
		if err != nil {
			return false
		}
		return !value.IsNegative()
	})
}

func registerNoSpecialCharacters() {
	validate.RegisterValidation("nospecial", func(fl validator.FieldLevel) bool {
		return regexp.MustCompile("^[a-zA-Z0-9 ]*$").MatchString(fl.Field().String())
	})
}

func registerNoSpacesAtStartOrEnd() {
	validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}
