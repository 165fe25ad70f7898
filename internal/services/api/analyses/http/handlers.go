// Package http provides http transport for the analyses catalog
package http

import (
	"context"
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"analyses/internal/modkit/httpkit"
	"analyses/internal/platform/logger"
	pnet "analyses/internal/platform/net"
	svc "analyses/internal/services/api/analyses/service"
)

// Register mounts analyses endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	// catalog listing
	httpkit.Get(r, "/", h.list)

	// per-analysis registry data
	httpkit.Get(r, "/{slug}/defaults", h.defaults)
	httpkit.Get(r, "/{slug}/sections", h.sections)
}

type handlers struct{ svc *svc.Service }

// analysisCtx scopes the request context (and its logger) to one analysis
func analysisCtx(r *stdhttp.Request, slug string) context.Context {
	reqID := pnet.RequestID(r.Context())
	ctx := pnet.WithRequest(r.Context(), reqID, slug)
	return logger.WithRequest(ctx, reqID, slug)
}

// swagger:route GET /analyses Analyses analysesList
// @Summary List registered analyses
// @Tags Analyses
// @Produce json
// @Success 200 {array} domain.Summary "ok"
// @Router /analyses [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// swagger:route GET /analyses/{slug}/defaults Analyses analysesDefaults
// @Summary Registered default filter values for one analysis
// @Tags Analyses
// @Produce json
// @Param slug path string true "Analysis slug"
// @Success 200 {object} domain.DefaultsResponse "ok"
// @Failure 404 {object} httpkit.Response "unknown analysis"
// @Router /analyses/{slug}/defaults [get]
func (h *handlers) defaults(r *stdhttp.Request) (any, error) {
	slug := chi.URLParam(r, "slug")
	return h.svc.Defaults(analysisCtx(r, slug), slug)
}

// swagger:route GET /analyses/{slug}/sections Analyses analysesSections
// @Summary Embeddable sections of one analysis
// @Tags Analyses
// @Produce json
// @Param slug path string true "Analysis slug"
// @Success 200 {object} domain.SectionsResponse "ok"
// @Failure 404 {object} httpkit.Response "unknown analysis"
// @Router /analyses/{slug}/sections [get]
func (h *handlers) sections(r *stdhttp.Request) (any, error) {
	slug := chi.URLParam(r, "slug")
	return h.svc.Sections(analysisCtx(r, slug), slug)
}
