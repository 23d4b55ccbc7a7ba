package domain

import (
	"context"

	"github.com/socialharmony/backend/contract/report"
	"github.com/socialharmony/backend/internal/domain/blockchain"
	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/internal/repository"
	"github.com/socialharmony/backend/pkg/errorx"
	"github.com/socialharmony/backend/pkg/ethutil"
	"github.com/socialharmony/backend/pkg/xcontext"
	"golang.org/x/sync/errgroup"
)

const maxReportingHistory = 100

type ReportingDomain interface {
	GetReporting(context.Context, *model.GetReportingRequest) (*model.GetReportingResponse, error)
	GetReportingHistory(context.Context, *model.GetReportingHistoryRequest) (*model.GetReportingHistoryResponse, error)
}

type reportingDomain struct {
	accessor           blockchain.Accessor
	organisationDomain OrganisationDomain
	gameDomain         GameDomain
	snapshotRepo       repository.ReportingSnapshotRepository
	viewStore          repository.ViewStore
}

func NewReportingDomain(
	accessor blockchain.Accessor,
	organisationDomain OrganisationDomain,
	gameDomain GameDomain,
	snapshotRepo repository.ReportingSnapshotRepository,
	viewStore repository.ViewStore,
) *reportingDomain {
	return &reportingDomain{
		accessor:           accessor,
		organisationDomain: organisationDomain,
		gameDomain:         gameDomain,
		snapshotRepo:       snapshotRepo,
		viewStore:          viewStore,
	}
}

// GetReporting recomputes the whole snapshot. The report contract and both listings are read
// concurrently and the first error fails the snapshot.
func (d *reportingDomain) GetReporting(
	ctx context.Context, req *model.GetReportingRequest,
) (*model.GetReportingResponse, error) {
	var latest report.LatestReport
	var organisations, games int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reportContract, err := d.accessor.Report(gctx)
		if err != nil {
			return err
		}

		latest, err = read("getLatestReport", func() (report.LatestReport, error) {
			return reportContract.GetLatestReport(callOpts(gctx))
		})
		return err
	})

	g.Go(func() error {
		resp, err := d.organisationDomain.GetOrganisations(gctx, &model.GetOrganisationsRequest{})
		if err != nil {
			return err
		}

		organisations = len(resp.Organisations)
		return nil
	})

	g.Go(func() error {
		resp, err := d.gameDomain.GetGames(gctx, &model.GetGamesRequest{})
		if err != nil {
			return err
		}

		games = len(resp.Games)
		return nil
	})

	if err := g.Wait(); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot compute reporting: %v", err)
		return nil, err
	}

	reporting := model.Reporting{
		MoneyRaised:      ethutil.FromWei(latest.Sum, xcontext.Configs(ctx).Chain.Decimals).String(),
		MoneyRaisedRaw:   bigString(latest.Sum),
		TicketsPurchased: bigString(latest.Count),
		Organisations:    organisations,
		GamesPlayed:      games,
	}

	mirror(ctx, d.viewStore, entity.ViewKindOverallReport, storeKeyAll, reporting)
	d.recordSnapshot(ctx, reporting)

	return &model.GetReportingResponse{Reporting: reporting}, nil
}

func (d *reportingDomain) GetReportingHistory(
	ctx context.Context, req *model.GetReportingHistoryRequest,
) (*model.GetReportingHistoryResponse, error) {
	if d.snapshotRepo == nil {
		return nil, errorx.New(errorx.Unavailable, "Reporting history is not enabled")
	}

	if req.Limit <= 0 || req.Limit > maxReportingHistory {
		req.Limit = maxReportingHistory
	}

	snapshots, err := d.snapshotRepo.GetLatest(ctx, xcontext.Configs(ctx).Chain.Name, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reporting history: %v", err)
		return nil, errorx.Unknown
	}

	history := []model.ReportingHistoryItem{}
	for _, s := range snapshots {
		history = append(history, model.ReportingHistoryItem{
			Reporting: model.Reporting{
				MoneyRaised:      s.MoneyRaised,
				MoneyRaisedRaw:   s.MoneyRaisedRaw,
				TicketsPurchased: s.TicketsPurchased,
				Organisations:    s.Organisations,
				GamesPlayed:      s.GamesPlayed,
			},
			CreatedAt: s.CreatedAt,
		})
	}

	return &model.GetReportingHistoryResponse{History: history}, nil
}

func (d *reportingDomain) recordSnapshot(ctx context.Context, reporting model.Reporting) {
	if d.snapshotRepo == nil {
		return
	}

	err := d.snapshotRepo.Create(ctx, &entity.ReportingSnapshot{
		Chain:            xcontext.Configs(ctx).Chain.Name,
		MoneyRaised:      reporting.MoneyRaised,
		MoneyRaisedRaw:   reporting.MoneyRaisedRaw,
		TicketsPurchased: reporting.TicketsPurchased,
		Organisations:    reporting.Organisations,
		GamesPlayed:      reporting.GamesPlayed,
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot record reporting snapshot: %v", err)
	}
}
