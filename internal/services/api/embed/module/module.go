// Package module wires embed resolution into the API using modkit
package module

import (
	"net/http"

	modkit "analyses/internal/modkit"
	"analyses/internal/modkit/httpkit"
	str "analyses/internal/platform/strings"
	embedhttp "analyses/internal/services/api/embed/http"
	embedsvc "analyses/internal/services/api/embed/service"
)

// Module implements the embed module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *embedsvc.Service
}

// New constructs the embed module (reads EMBED_BASE_URL from module config)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("embed"),
		modkit.WithPrefix("/embed"),
	}, opts...)...)

	svc := embedsvc.New(embedsvc.Options{
		BaseURL: deps.Cfg.MayString("EMBED_BASE_URL", "https://www.embuild.be"),
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Resolver: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		embedhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
