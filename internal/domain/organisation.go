package domain

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/socialharmony/backend/internal/domain/blockchain"
	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/internal/repository"
	"github.com/socialharmony/backend/pkg/api"
	"github.com/socialharmony/backend/pkg/errorx"
	"github.com/socialharmony/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

type OrganisationDomain interface {
	GetOrganisations(context.Context, *model.GetOrganisationsRequest) (*model.GetOrganisationsResponse, error)
	GetOrganisation(context.Context, *model.GetOrganisationRequest) (*model.GetOrganisationResponse, error)
}

type organisationDomain struct {
	accessor     blockchain.Accessor
	apiGenerator api.Generator
	gameDomain   GameDomain
	viewStore    repository.ViewStore
}

func NewOrganisationDomain(
	accessor blockchain.Accessor,
	apiGenerator api.Generator,
	gameDomain GameDomain,
	viewStore repository.ViewStore,
) *organisationDomain {
	return &organisationDomain{
		accessor:     accessor,
		apiGenerator: apiGenerator,
		gameDomain:   gameDomain,
		viewStore:    viewStore,
	}
}

func (d *organisationDomain) GetOrganisations(
	ctx context.Context, req *model.GetOrganisationsRequest,
) (*model.GetOrganisationsResponse, error) {
	organisations, err := d.listOrganisations(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list organisations: %v", err)
		return nil, err
	}

	mirror(ctx, d.viewStore, entity.ViewKindCharities, storeKeyAll, organisations)
	return &model.GetOrganisationsResponse{Organisations: organisations}, nil
}

func (d *organisationDomain) GetOrganisation(
	ctx context.Context, req *model.GetOrganisationRequest,
) (*model.GetOrganisationResponse, error) {
	id, ok := new(big.Int).SetString(req.ID, 10)
	if !ok || id.Sign() < 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid organisation id")
	}

	registry, err := d.accessor.Registry(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot bind registry: %v", err)
		return nil, err
	}

	ids, err := read("getOrgs", func() ([]*big.Int, error) { return registry.GetOrgs(callOpts(ctx)) })
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get organisation ids: %v", err)
		return nil, err
	}

	if slices.IndexFunc(ids, func(x *big.Int) bool { return x.Cmp(id) == 0 }) < 0 {
		return nil, errorx.New(errorx.NotFound, "Not found organisation")
	}

	organisation, err := d.getOrganisation(ctx, registry, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get organisation %s: %v", id, err)
		return nil, err
	}

	gamesResp, err := d.gameDomain.GetGames(ctx, &model.GetGamesRequest{Organisation: organisation.Owner})
	if err != nil {
		var errx errorx.Error
		if !errors.As(err, &errx) {
			xcontext.Logger(ctx).Errorf("Cannot get games of organisation %s: %v", id, err)
		}

		return nil, err
	}

	return &model.GetOrganisationResponse{
		Organisation: *organisation,
		Games:        gamesResp.Games,
	}, nil
}

// listOrganisations enriches every registry entry concurrently. The result keeps the registry
// order and the first error fails the whole listing.
func (d *organisationDomain) listOrganisations(ctx context.Context) ([]model.Organisation, error) {
	registry, err := d.accessor.Registry(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := read("getOrgs", func() ([]*big.Int, error) { return registry.GetOrgs(callOpts(ctx)) })
	if err != nil {
		return nil, err
	}

	organisations := make([]model.Organisation, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i := range ids {
		i := i
		g.Go(func() error {
			organisation, err := d.getOrganisation(gctx, registry, ids[i])
			if err != nil {
				return err
			}

			organisations[i] = *organisation
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return organisations, nil
}

func (d *organisationDomain) getOrganisation(
	ctx context.Context, registry blockchain.RegistryContract, id *big.Int,
) (*model.Organisation, error) {
	opts := callOpts(ctx)
	uri, err := read("tokenURI", func() (string, error) { return registry.TokenURI(opts, id) })
	if err != nil {
		return nil, err
	}

	organisation := model.Organisation{ID: id.String()}
	if err := fetchMetadata(ctx, d.apiGenerator, "organisation", uri, &organisation.OrganisationMetadata); err != nil {
		return nil, err
	}

	owner, err := read("ownerOf", func() (common.Address, error) { return registry.OwnerOf(opts, id) })
	if err != nil {
		return nil, err
	}
	organisation.Owner = owner.Hex()

	return &organisation, nil
}
