// Package service exposes the registry catalog to transports
package service

import (
	"context"

	"analyses/internal/core/registry"
	"analyses/internal/services/api/analyses/domain"
)

// Service answers catalog questions about registered analyses
type Service struct{}

// New constructs the analyses service
func New() *Service { return &Service{} }

// List returns all registered analyses in registration order
func (s *Service) List(_ context.Context) ([]domain.Summary, error) {
	slugs := registry.ListAnalyses()
	out := make([]domain.Summary, 0, len(slugs))
	for _, slug := range slugs {
		sections, err := registry.Sections(slug)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Summary{Slug: slug, Sections: len(sections)})
	}
	return out, nil
}

// Defaults returns the registered defaults and sector catalog for slug
func (s *Service) Defaults(_ context.Context, slug string) (domain.DefaultsResponse, error) {
	d, err := registry.GetDefaults(slug)
	if err != nil {
		return domain.DefaultsResponse{}, err
	}
	return domain.DefaultsResponse{
		Slug:     slug,
		Defaults: d.Map(),
		Sectors:  registry.SectorCatalog(slug),
	}, nil
}

// Sections returns the embeddable sections for slug
func (s *Service) Sections(_ context.Context, slug string) (domain.SectionsResponse, error) {
	sections, err := registry.Sections(slug)
	if err != nil {
		return domain.SectionsResponse{}, err
	}
	out := make([]domain.Section, 0, len(sections))
	for _, sec := range sections {
		out = append(out, domain.Section{ID: sec.ID, Title: sec.Title})
	}
	return domain.SectionsResponse{Slug: slug, Sections: out}, nil
}
