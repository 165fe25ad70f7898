// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyAnalysisSlug ctxKey = "analysis_slug"

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, slug string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if slug != "" {
		ctx = context.WithValue(ctx, keyAnalysisSlug, slug)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// AnalysisSlug returns the analysis slug on the context if present
func AnalysisSlug(ctx context.Context) string {
	if v, ok := ctx.Value(keyAnalysisSlug).(string); ok {
		return v
	}
	return ""
}
