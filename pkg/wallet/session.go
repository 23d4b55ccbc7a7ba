package wallet

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/socialharmony/backend/pkg/ethutil"
)

var (
	ErrNoProvider  = errors.New("no wallet provider is attached")
	ErrNotSignedIn = errors.New("wallet is not signed in")
)

// Provider is the wallet holding the user's keys.
type Provider interface {
	GetAccount(ctx context.Context) (accounts.Account, error)
	ForgetIdentity(ctx context.Context) error
	SignTransaction(
		ctx context.Context, account accounts.Account, tx *types.Transaction, chainID *big.Int,
	) (*types.Transaction, error)
}

type BalanceReader interface {
	BalanceAt(ctx context.Context, account common.Address, block *big.Int) (*big.Int, error)
}

// Session is an immutable value. Sign-in and sign-out return a new Session instead of mutating
// the receiver.
type Session struct {
	Address    common.Address
	Account    accounts.Account
	Authorized bool

	// Balance in wei, as of the last sign-in or refresh.
	Balance *big.Int
}

// SignIn requests the active account from the provider and fetches its balance.
func SignIn(ctx context.Context, provider Provider, balances BalanceReader) (Session, error) {
	if provider == nil {
		return Session{}, ErrNoProvider
	}

	account, err := provider.GetAccount(ctx)
	if err != nil {
		return Session{}, err
	}

	balance, err := balances.BalanceAt(ctx, account.Address, nil)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Address:    account.Address,
		Account:    account,
		Authorized: true,
		Balance:    balance,
	}, nil
}

// SignOut asks the provider to forget the identity and returns the empty session.
func (s Session) SignOut(ctx context.Context, provider Provider) (Session, error) {
	if provider != nil {
		if err := provider.ForgetIdentity(ctx); err != nil {
			return s, err
		}
	}

	return Session{}, nil
}

// RefreshBalance returns a copy of the session with a freshly fetched balance.
func (s Session) RefreshBalance(ctx context.Context, balances BalanceReader) (Session, error) {
	if !s.Authorized {
		return s, ErrNotSignedIn
	}

	balance, err := balances.BalanceAt(ctx, s.Address, nil)
	if err != nil {
		return s, err
	}

	s.Balance = balance
	return s, nil
}

// SignTransaction delegates signing to the provider with the session account as sender.
func (s Session) SignTransaction(
	ctx context.Context, provider Provider, tx *types.Transaction, chainID *big.Int,
) (*types.Transaction, error) {
	if !s.Authorized {
		return nil, ErrNotSignedIn
	}

	if provider == nil {
		return nil, ErrNoProvider
	}

	return provider.SignTransaction(ctx, s.Account, tx, chainID)
}

// TransactOpts binds contract transaction submission to this session's signer.
func (s Session) TransactOpts(
	ctx context.Context, provider Provider, chainID *big.Int,
) (*bind.TransactOpts, error) {
	if !s.Authorized {
		return nil, ErrNotSignedIn
	}

	if provider == nil {
		return nil, ErrNoProvider
	}

	return &bind.TransactOpts{
		From:    s.Address,
		Context: ctx,
		Signer: func(from common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if from != s.Address {
				return nil, bind.ErrNotAuthorized
			}

			return s.SignTransaction(ctx, provider, tx, chainID)
		},
	}, nil
}

// BalanceDisplay is the balance in the display unit, rounded to two decimals.
func (s Session) BalanceDisplay(decimals int32) decimal.Decimal {
	return ethutil.FromWei(s.Balance, decimals).Round(2)
}
