// Package http provides http transport for datasets
package http

import (
	"context"
	"errors"
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"analyses/internal/modkit/httpkit"
	"analyses/internal/services/api/datasets/domain"
	svc "analyses/internal/services/api/datasets/service"
)

// Register mounts dataset endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	// batch fetch
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.batch)

	// single document, name may contain slashes
	httpkit.Get(r, "/*", h.get)
}

type handlers struct{ svc *svc.Service }

// swagger:route GET /datasets/{name} Datasets datasetsGet
// @Summary Fetch one precomputed dataset document
// @Tags Datasets
// @Produce json
// @Param name path string true "Dataset name, e.g. faillissementen/yearly"
// @Success 200 {object} any "raw dataset document"
// @Failure 404 {object} httpkit.Response "unknown dataset"
// @Router /datasets/{name} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	doc, err := h.svc.Get(r.Context(), chi.URLParam(r, "*"))
	if errors.Is(err, context.Canceled) {
		// the caller hung up; nothing useful to write
		return httpkit.NoContent(), nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// swagger:route POST /datasets/batch Datasets datasetsBatch
// @Summary Fetch several dataset documents in one call
// @Tags Datasets
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Dataset names"
// @Success 200 {object} domain.BatchOutput "ok"
// @Failure 404 {object} httpkit.Response "unknown dataset"
// @Router /datasets/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	out, err := h.svc.Batch(r.Context(), in)
	if errors.Is(err, context.Canceled) {
		return httpkit.NoContent(), nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
