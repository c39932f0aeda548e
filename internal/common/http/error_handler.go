package http

import (
	"net/http"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"

	"github.com/labstack/echo/v4"
)

// StatusFromError maps an error kind to its HTTP status.
func StatusFromError(err error) int {
	switch common.KindOf(err) {
	case common.KindValidation:
		return http.StatusBadRequest
	case common.KindNotFound:
		return http.StatusNotFound
	case common.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleServiceError writes err with the status of its kind. Invariant
// violations and unknown errors become 500.
func HandleServiceError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	return RestErrorResponse(c, StatusFromError(err), err)
}
