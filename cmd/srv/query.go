package main

import (
	"encoding/json"

	"github.com/socialharmony/backend/internal/model"
	"github.com/urfave/cli/v2"
)

func printJSON(cctx *cli.Context, v any) error {
	encoder := json.NewEncoder(cctx.App.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (s *srv) listGames(cctx *cli.Context) error {
	s.loadChain()
	resp, err := s.gameDomain.GetGames(s.ctx, &model.GetGamesRequest{
		Status:       cctx.String("status"),
		Organisation: cctx.String("organisation"),
	})
	if err != nil {
		return err
	}

	return printJSON(cctx, resp)
}

func (s *srv) getGame(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return cli.Exit("expected exactly one game address", 1)
	}

	s.loadChain()
	resp, err := s.gameDomain.GetGame(s.ctx, &model.GetGameRequest{ID: cctx.Args().First()})
	if err != nil {
		return err
	}

	return printJSON(cctx, resp)
}

func (s *srv) listCharities(cctx *cli.Context) error {
	s.loadChain()
	if cctx.NArg() > 0 {
		resp, err := s.organisationDomain.GetOrganisation(s.ctx, &model.GetOrganisationRequest{
			ID: cctx.Args().First(),
		})
		if err != nil {
			return err
		}

		return printJSON(cctx, resp)
	}

	resp, err := s.organisationDomain.GetOrganisations(s.ctx, &model.GetOrganisationsRequest{})
	if err != nil {
		return err
	}

	return printJSON(cctx, resp)
}

func (s *srv) getReport(cctx *cli.Context) error {
	s.loadChain()
	if cctx.Bool("history") {
		resp, err := s.reportingDomain.GetReportingHistory(s.ctx, &model.GetReportingHistoryRequest{
			Limit: cctx.Int("limit"),
		})
		if err != nil {
			return err
		}

		return printJSON(cctx, resp)
	}

	resp, err := s.reportingDomain.GetReporting(s.ctx, &model.GetReportingRequest{})
	if err != nil {
		return err
	}

	return printJSON(cctx, resp)
}

// getSnapshot reads only the store, so it works without any RPC.
func (s *srv) getSnapshot(cctx *cli.Context) error {
	if cctx.NArg() < 1 {
		return cli.Exit("expected a kind", 1)
	}

	s.loadStore()
	s.loadDomains()
	resp, err := s.snapshotDomain.GetSnapshot(s.ctx, &model.GetSnapshotRequest{
		Kind: cctx.Args().Get(0),
		Key:  cctx.Args().Get(1),
	})
	if err != nil {
		return err
	}

	return printJSON(cctx, resp)
}
