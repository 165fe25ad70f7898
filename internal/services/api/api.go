// Package api provides the HTTP API for the application
package api

import (
	"analyses/internal/platform/config"
	"analyses/internal/platform/logger"
	phttp "analyses/internal/platform/net/http"

	"analyses/internal/modkit"
	"analyses/internal/modkit/httpkit"
	"analyses/internal/modkit/module"

	analysesmod "analyses/internal/services/api/analyses/module"
	datasetsmod "analyses/internal/services/api/datasets/module"
	embedmod "analyses/internal/services/api/embed/module"
	metamod "analyses/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		Log: *opt.Logger,
	}

	mods := []module.Module{
		metamod.New(deps),
		analysesmod.New(deps),
		embedmod.New(deps),
		datasetsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		phttp.MountSwagger(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
