package module

import (
	"context"
	"net/url"

	"analyses/internal/services/api/embed/domain"
)

// Resolver is the cross-module view on embed resolution
type Resolver interface {
	Resolve(ctx context.Context, slug, sectionID string, params url.Values) (domain.ResolveResponse, error)
	Validate(ctx context.Context, slug string, params url.Values) (domain.ValidateResponse, error)
	Code(ctx context.Context, slug, sectionID string, params url.Values) (domain.CodeResponse, error)
}

// Ports bundles the ports the embed module exposes
type Ports struct {
	Resolver Resolver
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
