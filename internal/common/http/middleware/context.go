package middleware

import (
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"

	"github.com/labstack/echo/v4"
)

// Context copies correlation, actor and tenant headers into the request
// context so every log line and audit entry carries them.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := xlog.SetContextFromHTTP(req.Context(), req)
			if actor := req.Header.Get(HeaderUserID); actor != "" {
				ctx = xlog.SetActorID(ctx, actor)
			}
			if tenant := req.Header.Get(HeaderTenantID); tenant != "" {
				ctx = xlog.SetTenantID(ctx, tenant)
			}
			if clientID := c.Param("clientId"); clientID != "" {
				ctx = xlog.SetClientID(ctx, clientID)
			}
			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(xlog.HeaderCorrelationID, xlog.GetCorrelationID(ctx))
			return next(c)
		}
	}
}
