package middleware

import (
	"errors"
	"net/http"

	xhttp "bitbucket.org/Amartha/go-recon-matching/internal/common/http"

	"github.com/labstack/echo/v4"
)

var (
	errSecretKeyRequired = errors.New("required secret key")
	errSecretKeyInvalid  = errors.New("invalid secret key")
)

func (m *AppMiddleware) InternalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			secretKey := c.Request().Header.Get(HeaderSecretKey)
			if secretKey == "" {
				return xhttp.RestErrorResponse(c, http.StatusUnauthorized, errSecretKeyRequired)
			}

			if secretKey != m.conf.SecretKey {
				return xhttp.RestErrorResponse(c, http.StatusUnauthorized, errSecretKeyInvalid)
			}

			return next(c)
		}
	}
}
