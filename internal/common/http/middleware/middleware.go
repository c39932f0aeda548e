package middleware

import (
	"bitbucket.org/Amartha/go-recon-matching/internal/config"
)

const (
	HeaderSecretKey = "X-Secret-Key"
	HeaderUserID    = "X-User-Id"
	HeaderTenantID  = "X-Tenant-Id"
)

type AppMiddleware struct {
	conf config.Config
}

func NewMiddleware(conf config.Config) AppMiddleware {
	return AppMiddleware{
		conf: conf,
	}
}
