package scope

import (
	"context"

	"companion-srv/internal/model"
)

type contextKey string

const (
	payloadKey contextKey = "scope_payload"
	scopeKey   contextKey = "scope"
)

// SetPayloadToContext stores the verified token payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey, payload)
}

// GetPayloadFromContext returns the token payload stored by the auth middleware.
func GetPayloadFromContext(ctx context.Context) Payload {
	payload, ok := ctx.Value(payloadKey).(Payload)
	if !ok {
		return Payload{}
	}
	return payload
}

// SetScopeToContext stores the request scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// GetScopeFromContext returns the request scope stored by the auth middleware.
// The zero scope is returned when no scope is set.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
