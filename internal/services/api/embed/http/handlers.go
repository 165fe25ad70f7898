// Package http provides http transport for embed resolution
package http

import (
	"context"
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"analyses/internal/modkit/httpkit"
	"analyses/internal/platform/logger"
	pnet "analyses/internal/platform/net"
	svc "analyses/internal/services/api/embed/service"
)

// Register mounts embed endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	// explicit query validation for the error panel
	httpkit.Get(r, "/{slug}/validate", h.validate)

	// resolved view state for one section
	httpkit.Get(r, "/{slug}/{section}", h.resolve)

	// iframe snippet for one section
	httpkit.Get(r, "/{slug}/{section}/code", h.code)
}

type handlers struct{ svc *svc.Service }

// analysisCtx scopes the request context (and its logger) to one analysis
func analysisCtx(r *stdhttp.Request, slug string) context.Context {
	reqID := pnet.RequestID(r.Context())
	ctx := pnet.WithRequest(r.Context(), reqID, slug)
	return logger.WithRequest(ctx, reqID, slug)
}

// swagger:route GET /embed/{slug}/{section} Embed embedResolve
// @Summary Resolve an embedded section into merged view state
// @Tags Embed
// @Produce json
// @Param slug path string true "Analysis slug"
// @Param section path string true "Section id"
// @Success 200 {object} domain.ResolveResponse "ok"
// @Failure 400 {object} httpkit.Response "invalid filter parameter"
// @Failure 404 {object} httpkit.Response "unknown analysis or section"
// @Router /embed/{slug}/{section} [get]
func (h *handlers) resolve(r *stdhttp.Request) (any, error) {
	slug := chi.URLParam(r, "slug")
	return h.svc.Resolve(analysisCtx(r, slug), slug, chi.URLParam(r, "section"), r.URL.Query())
}

// swagger:route GET /embed/{slug}/{section}/code Embed embedCode
// @Summary Generate an iframe embed snippet for a section
// @Tags Embed
// @Produce json
// @Param slug path string true "Analysis slug"
// @Param section path string true "Section id"
// @Success 200 {object} domain.CodeResponse "ok"
// @Failure 400 {object} httpkit.Response "invalid filter parameter"
// @Failure 404 {object} httpkit.Response "unknown analysis or section"
// @Router /embed/{slug}/{section}/code [get]
func (h *handlers) code(r *stdhttp.Request) (any, error) {
	slug := chi.URLParam(r, "slug")
	return h.svc.Code(analysisCtx(r, slug), slug, chi.URLParam(r, "section"), r.URL.Query())
}

// swagger:route GET /embed/{slug}/validate Embed embedValidate
// @Summary Validate filter query parameters for an analysis
// @Tags Embed
// @Produce json
// @Param slug path string true "Analysis slug"
// @Success 200 {object} domain.ValidateResponse "ok"
// @Failure 404 {object} httpkit.Response "unknown analysis"
// @Router /embed/{slug}/validate [get]
func (h *handlers) validate(r *stdhttp.Request) (any, error) {
	slug := chi.URLParam(r, "slug")
	return h.svc.Validate(analysisCtx(r, slug), slug, r.URL.Query())
}
