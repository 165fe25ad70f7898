package module

import (
	"context"

	"analyses/internal/services/api/analyses/domain"
)

// Catalog is the cross-module view on the analyses registry
type Catalog interface {
	List(ctx context.Context) ([]domain.Summary, error)
	Defaults(ctx context.Context, slug string) (domain.DefaultsResponse, error)
	Sections(ctx context.Context, slug string) (domain.SectionsResponse, error)
}

// Ports bundles the ports the analyses module exposes
type Ports struct {
	Catalog Catalog
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
