package domain

import (
	"context"

	"github.com/socialharmony/backend/internal/domain/blockchain"
	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/internal/repository"
	"github.com/socialharmony/backend/pkg/errorx"
	"github.com/socialharmony/backend/pkg/wallet"
	"github.com/socialharmony/backend/pkg/xcontext"
)

type WalletDomain interface {
	SignIn(context.Context) (wallet.Session, error)
	SignOut(context.Context, wallet.Session) (wallet.Session, error)
	GetBalance(context.Context, wallet.Session, *model.GetBalanceRequest) (*model.GetBalanceResponse, wallet.Session, error)
}

type walletDomain struct {
	accessor  blockchain.Accessor
	provider  wallet.Provider
	viewStore repository.ViewStore
}

func NewWalletDomain(
	accessor blockchain.Accessor,
	provider wallet.Provider,
	viewStore repository.ViewStore,
) *walletDomain {
	return &walletDomain{
		accessor:  accessor,
		provider:  provider,
		viewStore: viewStore,
	}
}

func (d *walletDomain) SignIn(ctx context.Context) (wallet.Session, error) {
	session, err := wallet.SignIn(ctx, d.provider, d.accessor)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sign in: %v", err)
		return wallet.Session{}, errorx.New(errorx.Unauthenticated, "Cannot connect to the wallet")
	}

	d.mirrorUser(ctx, session)
	return session, nil
}

func (d *walletDomain) SignOut(ctx context.Context, session wallet.Session) (wallet.Session, error) {
	newSession, err := session.SignOut(ctx, d.provider)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sign out: %v", err)
		return session, errorx.Unknown
	}

	return newSession, nil
}

// GetBalance signs in when needed and returns the refreshed balance of the session account.
func (d *walletDomain) GetBalance(
	ctx context.Context, session wallet.Session, req *model.GetBalanceRequest,
) (*model.GetBalanceResponse, wallet.Session, error) {
	var err error
	if !session.Authorized {
		session, err = d.SignIn(ctx)
		if err != nil {
			return nil, session, err
		}
	} else {
		session, err = session.RefreshBalance(ctx, d.accessor)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot refresh balance: %v", err)
			return nil, session, errorx.New(errorx.Unavailable, "Cannot get the balance")
		}

		d.mirrorUser(ctx, session)
	}

	return &model.GetBalanceResponse{User: convertUser(ctx, session)}, session, nil
}

func (d *walletDomain) mirrorUser(ctx context.Context, session wallet.Session) {
	mirror(ctx, d.viewStore, entity.ViewKindUser, session.Address.Hex(), convertUser(ctx, session))
}

func convertUser(ctx context.Context, session wallet.Session) model.User {
	return model.User{
		Address:    session.Address.Hex(),
		Authorized: session.Authorized,
		Balance:    session.BalanceDisplay(xcontext.Configs(ctx).Chain.Decimals).StringFixed(2),
	}
}
