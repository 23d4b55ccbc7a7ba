package domain

import (
	"errors"
	"testing"

	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/internal/repository"
	"github.com/socialharmony/backend/pkg/errorx"
	"github.com/socialharmony/backend/pkg/testutil"
	"github.com/socialharmony/backend/pkg/wallet"
	"github.com/stretchr/testify/require"
)

func Test_reportingDomain_GetReporting(t *testing.T) {
	f := newFixture(t)

	resp, err := f.reportingDomain.GetReporting(f.ctx, &model.GetReportingRequest{})
	require.NoError(t, err)
	require.Equal(t, model.Reporting{
		MoneyRaised:      "5",
		MoneyRaisedRaw:   "5000000000000000000",
		TicketsPurchased: "3",
		Organisations:    2,
		GamesPlayed:      4,
	}, resp.Reporting)

	stored, err := repository.Load[model.Reporting](f.ctx, f.viewStore, entity.ViewKindOverallReport, storeKeyAll)
	require.NoError(t, err)
	require.Equal(t, resp.Reporting, stored)

	// A join is visible in the next snapshot.
	_, _, err = f.gameDomain.Join(f.ctx, wallet.Session{}, &model.JoinGameRequest{ID: testutil.ActiveGame.Hex()})
	require.NoError(t, err)

	resp, err = f.reportingDomain.GetReporting(f.ctx, &model.GetReportingRequest{})
	require.NoError(t, err)
	require.Equal(t, "6", resp.Reporting.MoneyRaised)
	require.Equal(t, "4", resp.Reporting.TicketsPurchased)

	history, err := f.reportingDomain.GetReportingHistory(f.ctx, &model.GetReportingHistoryRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, history.History, 2)
}

func Test_reportingDomain_GetReporting_Failure(t *testing.T) {
	f := newFixture(t)
	f.chain.FailMethods["getLatestReport"] = errors.New("report unavailable")

	_, err := f.reportingDomain.GetReporting(f.ctx, &model.GetReportingRequest{})
	require.ErrorContains(t, err, "report unavailable")
}

func Test_reportingDomain_GetReportingHistory_Disabled(t *testing.T) {
	f := newFixture(t)
	d := NewReportingDomain(f.accessor, f.organisationDomain, f.gameDomain, nil, nil)

	_, err := d.GetReportingHistory(f.ctx, &model.GetReportingHistoryRequest{})
	require.True(t, errorx.Is(err, errorx.Unavailable))
}
