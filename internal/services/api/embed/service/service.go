// Package service resolves embed requests into merged view state
package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"analyses/internal/core/filters"
	"analyses/internal/core/registry"
	"analyses/internal/core/validate"
	perr "analyses/internal/platform/errors"
	"analyses/internal/services/api/embed/domain"
)

// year bounds accepted from share links; data before 2000 is not published
const (
	minYear = 2000
	maxYear = 2035
)

// Options configures the embed service
type Options struct {
	// BaseURL is the public origin embed iframes point at
	BaseURL string
}

// Service turns (slug, section, query) triples into resolved view state,
// validation verdicts, and iframe snippets
type Service struct {
	opt Options
}

// New constructs the embed service
func New(opt Options) *Service {
	return &Service{opt: opt}
}

// Resolve validates the query explicitly, then runs the three-tier merge for
// (slug, section). Unlike the silent fallback inside the store load, a bad
// value here is a hard validation error: the embed page renders the Dutch
// error panel instead of a chart that quietly ignored the parameter
func (s *Service) Resolve(_ context.Context, slug, sectionID string, params url.Values) (domain.ResolveResponse, error) {
	section, err := registry.ResolveSection(slug, sectionID)
	if err != nil {
		return domain.ResolveResponse{}, err
	}
	if errs := judgeParams(slug, params); len(errs) > 0 {
		return domain.ResolveResponse{}, perr.Newf(perr.ErrorCodeValidation, "%s", errs[0].Message)
	}

	st := filters.NewStore()
	state, err := st.LoadFromURLWithDefaults(slug, params)
	if err != nil {
		return domain.ResolveResponse{}, err
	}

	return domain.ResolveResponse{
		Slug:    slug,
		Section: section,
		State:   state,
		Query:   st.ToQueryString(),
	}, nil
}

// Validate judges every filter parameter in the query and reports all
// failures, not only the first, so the error panel can list them together
func (s *Service) Validate(_ context.Context, slug string, params url.Values) (domain.ValidateResponse, error) {
	if _, err := registry.GetDefaults(slug); err != nil {
		return domain.ValidateResponse{}, err
	}
	errs := judgeParams(slug, params)
	return domain.ValidateResponse{
		Slug:   slug,
		Valid:  len(errs) == 0,
		Errors: errs,
	}, nil
}

// Code resolves the state and renders an iframe snippet for it. The container
// id is unique per generation so several embeds can share one host page
func (s *Service) Code(ctx context.Context, slug, sectionID string, params url.Values) (domain.CodeResponse, error) {
	resolved, err := s.Resolve(ctx, slug, sectionID, params)
	if err != nil {
		return domain.CodeResponse{}, err
	}

	containerID := "analyses-embed-" + uuid.NewString()
	src := strings.TrimRight(s.opt.BaseURL, "/") + "/embed/" + slug + "/" + sectionID
	if resolved.Query != "" {
		src += "?" + resolved.Query
	}

	html := fmt.Sprintf(
		`<div id=%q class="analyses-embed"><iframe src=%q title=%q width="100%%" height="480" frameborder="0" loading="lazy"></iframe></div>`,
		containerID, src, resolved.Section.Title,
	)

	return domain.CodeResponse{
		ContainerID: containerID,
		Src:         src,
		HTML:        html,
		Query:       resolved.Query,
	}, nil
}

// judgeParams runs the per-dimension validators over every filter parameter
// present in params, honoring the <slug>.<key> namespacing with bare fallback
func judgeParams(slug string, params url.Values) []domain.FieldJudgment {
	catalog := registry.SectorCatalog(slug)

	checks := []struct {
		param string
		judge func(raw *string) validate.Judgment
	}{
		{"range", func(r *string) validate.Judgment { return validate.TimeRange(r, true) }},
		{"view", func(r *string) validate.Judgment { return validate.View(r, true) }},
		{"chartType", func(r *string) validate.Judgment { return validate.ChartType(r, true) }},
		{"geoLevel", func(r *string) validate.Judgment { return validate.GeoLevel(r, true) }},
		{"region", func(r *string) validate.Judgment { return validate.Region(r, true) }},
		{"province", func(r *string) validate.Judgment { return validate.Province(r, true) }},
		{"arr", func(r *string) validate.Judgment { return validate.Arrondissement(r, true) }},
		{"municipality", func(r *string) validate.Judgment { return validate.Municipality(r, true) }},
		{"year", func(r *string) validate.Judgment { return validate.Year(r, minYear, maxYear, true) }},
		{"start", func(r *string) validate.Judgment { return validate.Year(r, minYear, maxYear, true) }},
		{"end", func(r *string) validate.Judgment { return validate.Year(r, minYear, maxYear, true) }},
		{"q", func(r *string) validate.Judgment { return validate.Quarter(r, true) }},
		{"month", func(r *string) validate.Judgment { return validate.Month(r, true) }},
		{"horizon", func(r *string) validate.Judgment { return validate.StopHorizon(r, true) }},
		{"perspective", func(r *string) validate.Judgment { return validate.Perspective(r, true) }},
		{"reportYear", func(r *string) validate.Judgment { return validate.ReportYear(r, true) }},
	}
	if len(catalog) > 0 {
		checks = append(checks, struct {
			param string
			judge func(raw *string) validate.Judgment
		}{"sector", func(r *string) validate.Judgment { return validate.Sector(r, catalog, true) }})
	}

	var out []domain.FieldJudgment
	for _, c := range checks {
		raw := rawParam(params, c.param, slug)
		if j := c.judge(raw); !j.Ok() {
			out = append(out, domain.FieldJudgment{Param: c.param, Message: j.Message()})
		}
	}
	return out
}

// rawParam resolves one parameter value, nil when absent. The municipality
// key accepts the short "muni" alias like the store does
func rawParam(params url.Values, key, slug string) *string {
	if v, ok := filters.ParamValue(params, key, slug); ok {
		return &v
	}
	if key == "municipality" {
		if v, ok := filters.ParamValue(params, "muni", slug); ok {
			return &v
		}
	}
	return nil
}
