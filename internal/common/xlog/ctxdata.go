package xlog

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey int

const (
	correlationIDKey ctxKey = iota
	clientIDKey
	actorIDKey
	tenantIDKey
)

const HeaderCorrelationID = "X-Correlation-Id"

func SetCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

func SetClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientIDKey, id)
}

func SetActorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, actorIDKey, id)
}

func GetActorID(ctx context.Context) string {
	id, _ := ctx.Value(actorIDKey).(string)
	return id
}

func SetTenantID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, tenantIDKey, id)
}

func GetTenantID(ctx context.Context) string {
	id, _ := ctx.Value(tenantIDKey).(string)
	return id
}

// SetContextFromHTTP copies the correlation id header into the context,
// generating one when the caller did not send it.
func SetContextFromHTTP(ctx context.Context, req *http.Request) context.Context {
	id := req.Header.Get(HeaderCorrelationID)
	if id == "" {
		id = uuid.NewString()
	}
	return SetCorrelationID(ctx, id)
}

func fieldsFromContext(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}

	var fields []Field
	if v, ok := ctx.Value(correlationIDKey).(string); ok && v != "" {
		fields = append(fields, String("correlation_id", v))
	}
	if v, ok := ctx.Value(clientIDKey).(string); ok && v != "" {
		fields = append(fields, String("client_id", v))
	}
	if v, ok := ctx.Value(actorIDKey).(string); ok && v != "" {
		fields = append(fields, String("actor_id", v))
	}
	if v := GetTenantID(ctx); v != "" {
		fields = append(fields, String("tenant_id", v))
	}
	return fields
}
