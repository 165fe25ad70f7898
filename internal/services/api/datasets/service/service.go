// Package service fetches precomputed dataset documents for transports
package service

import (
	"context"
	"encoding/json"

	perr "analyses/internal/platform/errors"
	"analyses/internal/platform/logger"
	"analyses/internal/services/api/datasets/domain"
	"analyses/internal/services/api/datasets/repo"
)

// Service reads datasets through the bound storage
type Service struct {
	store repo.Storage
}

// New constructs the datasets service
func New(store repo.Storage) *Service {
	return &Service{store: store}
}

// Get returns one dataset document by name
func (s *Service) Get(ctx context.Context, name string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		logger.C(ctx).Debug().Str("dataset", name).Msg("fetch aborted by caller")
		return nil, err
	}
	b, err := s.store.Read(name)
	if err != nil {
		return nil, err
	}
	if !json.Valid(b) {
		return nil, perr.Internalf("dataset %q is not valid JSON", name)
	}
	return json.RawMessage(b), nil
}

// Batch fetches several datasets in one call. A canceled request context
// stops the loop; cancellation is the caller hanging up, not a failure
func (s *Service) Batch(ctx context.Context, in domain.BatchInput) (domain.BatchOutput, error) {
	out := domain.BatchOutput{Datasets: make(map[string]json.RawMessage, len(in.Names))}
	for _, name := range in.Names {
		doc, err := s.Get(ctx, name)
		if err != nil {
			return domain.BatchOutput{}, err
		}
		out.Datasets[name] = doc
	}
	return out, nil
}
