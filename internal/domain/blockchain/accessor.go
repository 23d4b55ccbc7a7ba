package blockchain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/socialharmony/backend/contract/game"
	"github.com/socialharmony/backend/contract/registry"
	"github.com/socialharmony/backend/contract/report"
	"github.com/socialharmony/backend/contract/token"
	"github.com/socialharmony/backend/pkg/blockchain/eth"
	"github.com/socialharmony/backend/pkg/ethutil"
	"github.com/socialharmony/backend/pkg/xcontext"
)

type accessor struct {
	client eth.EthClient
}

func NewAccessor(client eth.EthClient) *accessor {
	return &accessor{client: client}
}

func (a *accessor) backend(ctx context.Context) (bind.ContractBackend, error) {
	return a.client.Backend(ctx)
}

func (a *accessor) Registry(ctx context.Context) (RegistryContract, error) {
	address, err := configuredAddress(xcontext.Configs(ctx).Chain.RegistryAddress, "registry")
	if err != nil {
		return nil, err
	}

	backend, err := a.backend(ctx)
	if err != nil {
		return nil, err
	}

	return registry.NewRegistry(address, backend)
}

func (a *accessor) Token(ctx context.Context) (TokenContract, error) {
	address, err := configuredAddress(xcontext.Configs(ctx).Chain.TokenAddress, "token")
	if err != nil {
		return nil, err
	}

	backend, err := a.backend(ctx)
	if err != nil {
		return nil, err
	}

	return token.NewToken(address, backend)
}

func (a *accessor) Game(ctx context.Context, address common.Address) (GameContract, error) {
	backend, err := a.backend(ctx)
	if err != nil {
		return nil, err
	}

	return game.NewGame(address, backend)
}

func (a *accessor) Report(ctx context.Context) (ReportContract, error) {
	tokenContract, err := a.Token(ctx)
	if err != nil {
		return nil, err
	}

	address, err := tokenContract.GetGamesReporting(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, err
	}

	backend, err := a.backend(ctx)
	if err != nil {
		return nil, err
	}

	return report.NewReport(address, backend)
}

func (a *accessor) ChainID() *big.Int {
	return a.client.ChainID()
}

func (a *accessor) BalanceAt(ctx context.Context, account common.Address, block *big.Int) (*big.Int, error) {
	return a.client.BalanceAt(ctx, account, block)
}

func (a *accessor) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return a.client.WaitMined(ctx, tx)
}

func configuredAddress(s, name string) (common.Address, error) {
	address, ok := ethutil.ParseAddress(s)
	if !ok {
		return common.Address{}, fmt.Errorf("invalid %s contract address %q", name, s)
	}

	return address, nil
}
