package main

import (
	"github.com/socialharmony/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.loadDatabase()
	xcontext.Logger(s.ctx).Infof("Database is up to date")
	return nil
}
