// @title         Analyses API
// @version       0.1.0
// @description   Filter-state resolution, embed codes and precomputed datasets

package main

import (
	"context"

	"github.com/joho/godotenv"

	"analyses/internal/platform/config"
	"analyses/internal/platform/logger"
	phttp "analyses/internal/platform/net/http"

	"analyses/internal/services/api"
)

func main() {
	// local development convenience; a missing .env is fine
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (ANALYSES_API_*)
	root := config.New()
	apiCfg := root.Prefix("ANALYSES_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads ANALYSES_API_PORT / ANALYSES_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
