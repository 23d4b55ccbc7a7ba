package main

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/socialharmony/backend/internal/middleware"
	"github.com/socialharmony/backend/pkg/prometheus"
	"github.com/socialharmony/backend/pkg/router"
	"github.com/socialharmony/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	cfg := xcontext.Configs(s.ctx)
	s.loadChain()
	s.loadRouter()

	go s.startPrometheus()

	s.server = &http.Server{
		Addr: cfg.ApiServer.Address(),
		Handler: cors.New(cors.Options{
			AllowedOrigins: cfg.ApiServer.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}).Handler(s.router.Handler()),
	}

	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.ApiServer.Port)
	var err error
	if cfg.ApiServer.Cert != "" && cfg.ApiServer.Key != "" {
		err = s.server.ListenAndServeTLS(cfg.ApiServer.Cert, cfg.ApiServer.Key)
	} else {
		err = s.server.ListenAndServe()
	}
	if err != nil && err != http.ErrServerClosed {
		xcontext.Logger(s.ctx).Errorf("An error occurs when running server: %v", err)
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}

func (s *srv) startPrometheus() {
	cfg := xcontext.Configs(s.ctx).PrometheusServer
	httpSrv := &http.Server{
		Addr:    cfg.Address(),
		Handler: prometheus.NewHandler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting prometheus on port: %s", cfg.Port)
	if err := httpSrv.ListenAndServe(); err != nil {
		xcontext.Logger(s.ctx).Errorf("Prometheus server stopped: %v", err)
	}
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.Before(middleware.WithStartTime())
	s.router.After(middleware.Logger())
	s.router.After(middleware.Prometheus())

	// Public API.
	router.GET(s.router, "/getOrganisations", s.organisationDomain.GetOrganisations)
	router.GET(s.router, "/getOrganisation", s.organisationDomain.GetOrganisation)
	router.GET(s.router, "/getGames", s.gameDomain.GetGames)
	router.GET(s.router, "/getGame", s.gameDomain.GetGame)
	router.GET(s.router, "/getReporting", s.reportingDomain.GetReporting)
	router.GET(s.router, "/getReportingHistory", s.reportingDomain.GetReportingHistory)
	router.GET(s.router, "/getSnapshot", s.snapshotDomain.GetSnapshot)
}
