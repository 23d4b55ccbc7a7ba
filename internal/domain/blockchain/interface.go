package blockchain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/socialharmony/backend/contract/report"
)

type RegistryContract interface {
	GetOrgs(opts *bind.CallOpts) ([]*big.Int, error)
	TokenURI(opts *bind.CallOpts, tokenId *big.Int) (string, error)
	OwnerOf(opts *bind.CallOpts, tokenId *big.Int) (common.Address, error)
}

type TokenContract interface {
	GetGameAddresses(opts *bind.CallOpts) ([]common.Address, error)
	GetGamesReporting(opts *bind.CallOpts) (common.Address, error)
}

type GameContract interface {
	MetadataURI(opts *bind.CallOpts) (string, error)
	Owner(opts *bind.CallOpts) (common.Address, error)
	IsGameCancelled(opts *bind.CallOpts) (bool, error)
	IsGameComplete(opts *bind.CallOpts) (bool, error)
	PricePerRound(opts *bind.CallOpts) (*big.Int, error)
	TotalParticipants(opts *bind.CallOpts) (*big.Int, error)
	Participants(opts *bind.CallOpts) (*big.Int, error)
	RequiredEndorsers(opts *bind.CallOpts) (*big.Int, error)
	Endorsements(opts *bind.CallOpts) (*big.Int, error)

	Join(opts *bind.TransactOpts) (*types.Transaction, error)
	Endorse(opts *bind.TransactOpts) (*types.Transaction, error)
}

type ReportContract interface {
	GetLatestReport(opts *bind.CallOpts) (report.LatestReport, error)
}

// Accessor builds contract handles bound to deployed addresses. Every call constructs a new
// handle.
type Accessor interface {
	Registry(ctx context.Context) (RegistryContract, error)
	Token(ctx context.Context) (TokenContract, error)
	Game(ctx context.Context, address common.Address) (GameContract, error)

	// Report resolves the report contract address through the token contract first.
	Report(ctx context.Context) (ReportContract, error)

	ChainID() *big.Int
	BalanceAt(ctx context.Context, account common.Address, block *big.Int) (*big.Int, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}
