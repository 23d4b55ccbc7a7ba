package testutil

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/socialharmony/backend/contract/game"
	"github.com/socialharmony/backend/contract/registry"
	"github.com/socialharmony/backend/contract/report"
	"github.com/socialharmony/backend/contract/token"
	"github.com/socialharmony/backend/pkg/blockchain/eth"
)

var ErrExecutionReverted = errors.New("execution reverted")

var (
	ChainID         = big.NewInt(1666700000)
	RegistryAddress = common.HexToAddress("0x1000000000000000000000000000000000000001")
	TokenAddress    = common.HexToAddress("0x1000000000000000000000000000000000000002")
	ReportAddress   = common.HexToAddress("0x1000000000000000000000000000000000000003")
)

type FakeOrganisation struct {
	ID    *big.Int
	URI   string
	Owner common.Address
}

type FakeGame struct {
	MetadataURI       string
	Owner             common.Address
	Cancelled         bool
	Complete          bool
	PricePerRound     *big.Int
	Participants      *big.Int
	RequiredEndorsers *big.Int

	Joined    map[common.Address]bool
	Endorsers map[common.Address]bool
}

// FakeChain is an in-memory chain that answers the registry, token, game and report contract
// ABIs. It implements eth.Backend so real bindings can be used against it.
type FakeChain struct {
	mutex sync.Mutex

	ChainIDValue    *big.Int
	RegistryAddress common.Address
	TokenAddress    common.Address
	ReportAddress   common.Address

	Organisations []FakeOrganisation
	GameAddresses []common.Address
	Games         map[common.Address]*FakeGame
	Report        report.LatestReport
	Balances      map[common.Address]*big.Int

	// FailMethods makes eth_call of the named methods fail.
	FailMethods map[string]error

	nonces   map[common.Address]uint64
	receipts map[common.Hash]*types.Receipt

	registryABI *abi.ABI
	tokenABI    *abi.ABI
	gameABI     *abi.ABI
	reportABI   *abi.ABI
}

func NewFakeChain() *FakeChain {
	return &FakeChain{
		ChainIDValue:    new(big.Int).Set(ChainID),
		RegistryAddress: RegistryAddress,
		TokenAddress:    TokenAddress,
		ReportAddress:   ReportAddress,
		Games:           make(map[common.Address]*FakeGame),
		Report:          report.LatestReport{Sum: big.NewInt(0), Count: big.NewInt(0)},
		Balances:        make(map[common.Address]*big.Int),
		FailMethods:     make(map[string]error),
		nonces:          make(map[common.Address]uint64),
		receipts:        make(map[common.Hash]*types.Receipt),
		registryABI:     mustAbi(registry.RegistryMetaData),
		tokenABI:        mustAbi(token.TokenMetaData),
		gameABI:         mustAbi(game.GameMetaData),
		reportABI:       mustAbi(report.ReportMetaData),
	}
}

func mustAbi(metadata *bind.MetaData) *abi.ABI {
	parsed, err := metadata.GetAbi()
	if err != nil {
		panic(err)
	}

	return parsed
}

func (c *FakeChain) AddOrganisation(id int64, uri string, owner common.Address) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.Organisations = append(c.Organisations, FakeOrganisation{ID: big.NewInt(id), URI: uri, Owner: owner})
}

func (c *FakeChain) AddGame(address common.Address, g *FakeGame) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if g.Joined == nil {
		g.Joined = make(map[common.Address]bool)
	}
	if g.Endorsers == nil {
		g.Endorsers = make(map[common.Address]bool)
	}

	c.GameAddresses = append(c.GameAddresses, address)
	c.Games[address] = g
}

func (c *FakeChain) SetGame(address common.Address, f func(g *FakeGame)) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	f(c.Games[address])
}

func (c *FakeChain) abiOf(address common.Address) (*abi.ABI, bool) {
	switch {
	case address == c.RegistryAddress:
		return c.registryABI, true
	case address == c.TokenAddress:
		return c.tokenABI, true
	case address == c.ReportAddress:
		return c.reportABI, true
	}

	if _, ok := c.Games[address]; ok {
		return c.gameABI, true
	}

	return nil, false
}

func (c *FakeChain) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, ok := c.abiOf(contract); ok {
		return []byte{0x60, 0x80}, nil
	}

	return nil, nil
}

func (c *FakeChain) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return c.CodeAt(ctx, account, nil)
}

func (c *FakeChain) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if call.To == nil || len(call.Data) < 4 {
		return nil, fmt.Errorf("invalid call")
	}

	contractABI, ok := c.abiOf(*call.To)
	if !ok {
		return nil, nil
	}

	method, err := contractABI.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}

	if err := c.FailMethods[method.Name]; err != nil {
		return nil, err
	}

	args, err := method.Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, err
	}

	outputs, err := c.read(*call.To, method.Name, args)
	if err != nil {
		return nil, err
	}

	return method.Outputs.Pack(outputs...)
}

func (c *FakeChain) read(address common.Address, method string, args []any) ([]any, error) {
	switch method {
	case "getOrgs":
		ids := make([]*big.Int, 0, len(c.Organisations))
		for _, org := range c.Organisations {
			ids = append(ids, org.ID)
		}
		return []any{ids}, nil

	case "tokenURI", "ownerOf":
		id := args[0].(*big.Int)
		for _, org := range c.Organisations {
			if org.ID.Cmp(id) == 0 {
				if method == "tokenURI" {
					return []any{org.URI}, nil
				}
				return []any{org.Owner}, nil
			}
		}
		return nil, fmt.Errorf("%w: nonexistent token", ErrExecutionReverted)

	case "getGameAddresses":
		return []any{append([]common.Address{}, c.GameAddresses...)}, nil

	case "getGamesReporting":
		return []any{c.ReportAddress}, nil

	case "getLatestReport":
		return []any{c.Report.Sum, c.Report.Count}, nil
	}

	g := c.Games[address]
	switch method {
	case "metadataURI":
		return []any{g.MetadataURI}, nil
	case "owner":
		return []any{g.Owner}, nil
	case "isGameCancelled":
		return []any{g.Cancelled}, nil
	case "isGameComplete":
		return []any{g.Complete}, nil
	case "pricePerRound":
		return []any{bigOrZero(g.PricePerRound)}, nil
	case "totalParticipants":
		return []any{big.NewInt(int64(len(g.Joined)))}, nil
	case "participants":
		return []any{bigOrZero(g.Participants)}, nil
	case "requiredEndorsers":
		return []any{bigOrZero(g.RequiredEndorsers)}, nil
	case "endorsements":
		return []any{big.NewInt(int64(len(g.Endorsers)))}, nil
	}

	return nil, fmt.Errorf("unsupported method %s", method)
}

func bigOrZero(n *big.Int) *big.Int {
	if n == nil {
		return big.NewInt(0)
	}

	return n
}

func (c *FakeChain) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	// No base fee, so bound contracts fall back to legacy transactions.
	return &types.Header{Number: big.NewInt(1)}, nil
}

func (c *FakeChain) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.nonces[account], nil
}

func (c *FakeChain) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (c *FakeChain) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (c *FakeChain) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if call.To == nil {
		return 0, fmt.Errorf("contract creation is not supported")
	}

	if err := c.checkTransaction(*call.To, call.From, call.Data, call.Value); err != nil {
		return 0, err
	}

	return 100_000, nil
}

func (c *FakeChain) checkTransaction(to, from common.Address, data []byte, value *big.Int) error {
	g, ok := c.Games[to]
	if !ok || len(data) < 4 {
		return fmt.Errorf("%w: unknown contract", ErrExecutionReverted)
	}

	method, err := c.gameABI.MethodById(data[:4])
	if err != nil {
		return err
	}

	if g.Cancelled || g.Complete {
		return fmt.Errorf("%w: game is closed", ErrExecutionReverted)
	}

	switch method.Name {
	case "join":
		if g.Joined[from] {
			return fmt.Errorf("%w: already joined", ErrExecutionReverted)
		}
		if big.NewInt(int64(len(g.Endorsers))).Cmp(bigOrZero(g.RequiredEndorsers)) < 0 {
			return fmt.Errorf("%w: not endorsed", ErrExecutionReverted)
		}
		if value == nil || value.Cmp(bigOrZero(g.PricePerRound)) < 0 {
			return fmt.Errorf("%w: insufficient payment", ErrExecutionReverted)
		}
	case "endorse":
		if g.Endorsers[from] {
			return fmt.Errorf("%w: already endorsed", ErrExecutionReverted)
		}
	default:
		return fmt.Errorf("%w: %s is not a transaction", ErrExecutionReverted, method.Name)
	}

	return nil
}

func (c *FakeChain) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	from, err := types.Sender(types.LatestSignerForChainID(c.ChainIDValue), tx)
	if err != nil {
		return err
	}

	if tx.Nonce() != c.nonces[from] {
		return fmt.Errorf("invalid nonce %d, expected %d", tx.Nonce(), c.nonces[from])
	}
	c.nonces[from]++

	status := types.ReceiptStatusSuccessful
	if err := c.checkTransaction(*tx.To(), from, tx.Data(), tx.Value()); err != nil {
		status = types.ReceiptStatusFailed
	} else {
		g := c.Games[*tx.To()]
		method, _ := c.gameABI.MethodById(tx.Data()[:4])
		switch method.Name {
		case "join":
			g.Joined[from] = true
			c.Report.Sum = new(big.Int).Add(c.Report.Sum, tx.Value())
			c.Report.Count = new(big.Int).Add(c.Report.Count, big.NewInt(1))
		case "endorse":
			g.Endorsers[from] = true
		}
	}

	c.receipts[tx.Hash()] = &types.Receipt{
		Status:      status,
		TxHash:      tx.Hash(),
		BlockNumber: big.NewInt(1),
		GasUsed:     21000,
	}

	return nil
}

func (c *FakeChain) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	receipt, ok := c.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}

	return receipt, nil
}

func (c *FakeChain) BalanceAt(ctx context.Context, account common.Address, block *big.Int) (*big.Int, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if b, ok := c.Balances[account]; ok {
		return new(big.Int).Set(b), nil
	}

	return big.NewInt(0), nil
}

func (c *FakeChain) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

func (c *FakeChain) SubscribeFilterLogs(
	ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log,
) (ethereum.Subscription, error) {
	return nil, errors.New("subscriptions are not supported")
}

// MockEthClient serves a FakeChain through the eth.EthClient interface.
type MockEthClient struct {
	Chain      *FakeChain
	BackendErr error
}

func (m *MockEthClient) Start(ctx context.Context) {}

func (m *MockEthClient) Close() {}

func (m *MockEthClient) ChainID() *big.Int {
	return m.Chain.ChainIDValue
}

func (m *MockEthClient) Backend(ctx context.Context) (eth.Backend, error) {
	if m.BackendErr != nil {
		return nil, m.BackendErr
	}

	return m.Chain, nil
}

func (m *MockEthClient) BalanceAt(ctx context.Context, account common.Address, block *big.Int) (*big.Int, error) {
	if m.BackendErr != nil {
		return nil, m.BackendErr
	}

	return m.Chain.BalanceAt(ctx, account, block)
}

func (m *MockEthClient) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return bind.WaitMined(ctx, m.Chain, tx)
}
