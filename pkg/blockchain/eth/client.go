package eth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/puzpuzpuz/xsync"
	"github.com/socialharmony/backend/config"
	"github.com/socialharmony/backend/pkg/numberutil"
	"github.com/socialharmony/backend/pkg/xcontext"
	"golang.org/x/net/html"
)

const (
	RpcTimeOut       = time.Second * 5
	MaxShuffleTimes  = 20
	FailureCooldown  = time.Second * 30
	MaxHeightOffset  = 5
	defaultRefreshIn = time.Minute * 5
)

var ErrNoHealthyRPC = errors.New("no healthy rpc")

// Backend is everything a bound contract and bind.WaitMined need from a node.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, block *big.Int) (*big.Int, error)
}

// A wrapper around eth.client so that we can mock it in domain tests.
type EthClient interface {
	Start(ctx context.Context)
	Close()

	ChainID() *big.Int
	Backend(ctx context.Context) (Backend, error)
	BalanceAt(ctx context.Context, account common.Address, block *big.Int) (*big.Int, error)
	WaitMined(ctx context.Context, tx *ethtypes.Transaction) (*ethtypes.Receipt, error)
}

// Default implementation of ETH client. Since RPC endpoints are often unstable, this client
// maintains a list of different RPCs and uses the ones that are in sync with the others.
type defaultEthClient struct {
	chain           string
	chainID         *big.Int
	initialRpcs     []string
	useExternalRpcs bool
	refreshIn       time.Duration

	clients []*ethclient.Client
	rpcs    []string

	// rpc -> time of the last failed call.
	failures *xsync.MapOf[string, time.Time]

	mutex sync.RWMutex
}

func NewEthClients(ctx context.Context, cfg config.ChainConfigs) EthClient {
	chainID := big.NewInt(cfg.ChainID)
	if cfg.ChainID == 0 {
		chainID = GetChainIntFromId(ctx, cfg.Name)
	}

	refreshIn := cfg.RefreshConnectionFrequency
	if refreshIn == 0 {
		refreshIn = defaultRefreshIn
	}

	return &defaultEthClient{
		chain:           cfg.Name,
		chainID:         chainID,
		initialRpcs:     cfg.Rpcs,
		useExternalRpcs: cfg.UseExternalRPC,
		refreshIn:       refreshIn,
		failures:        xsync.NewMapOf[time.Time](),
	}
}

func (c *defaultEthClient) Start(ctx context.Context) {
	go c.loopCheck(ctx)
}

func (c *defaultEthClient) Close() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, client := range c.clients {
		client.Close()
	}
	c.clients, c.rpcs = nil, nil
}

func (c *defaultEthClient) ChainID() *big.Int {
	return c.chainID
}

func (c *defaultEthClient) loopCheck(ctx context.Context) {
	ticker := time.NewTicker(c.refreshIn)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.updateRpcs(ctx)
		}
	}
}

func (c *defaultEthClient) updateRpcs(ctx context.Context) {
	rpcs := append([]string{}, c.initialRpcs...)
	if c.useExternalRpcs {
		externals, err := c.GetExtraRpcs(ctx)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Failed to get external rpc info: %v", err)
		} else {
			rpcs = append(rpcs, externals...)
		}
	}

	rpcs, clients := c.getRpcsHealthiness(ctx, rpcs)

	c.mutex.Lock()
	oldClients := c.clients
	c.rpcs, c.clients = rpcs, clients
	c.mutex.Unlock()

	for _, client := range oldClients {
		client.Close()
	}
}

func (c *defaultEthClient) getRpcsHealthiness(
	ctx context.Context, allRpcs []string,
) ([]string, []*ethclient.Client) {
	type healthyNode struct {
		client *ethclient.Client
		rpc    string
		height uint64
	}

	nodes := make([]*healthyNode, 0)
	for _, rpc := range allRpcs {
		client, err := ethclient.DialContext(ctx, rpc)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot dial rpc %s: %v", rpc, err)
			continue
		}

		checkCtx, cancel := context.WithTimeout(ctx, RpcTimeOut)
		height, err := client.BlockNumber(checkCtx)
		cancel()
		if err != nil {
			xcontext.Logger(ctx).Warnf("Rpc %s is unhealthy: %v", rpc, err)
			client.Close()
			continue
		}

		nodes = append(nodes, &healthyNode{client: client, rpc: rpc, height: height})
	}

	rpcs := make([]string, 0)
	clients := make([]*ethclient.Client, 0)
	if len(nodes) == 0 {
		return rpcs, clients
	}

	// Sorts all nodes by height
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].height > nodes[j].height
	})

	// Only select some nodes within a certain height from the median
	height := int64(nodes[len(nodes)/2].height)
	for _, node := range nodes {
		if numberutil.AbsInt64(int64(node.height)-height) < MaxHeightOffset {
			rpcs = append(rpcs, node.rpc)
			clients = append(clients, node.client)
		} else {
			node.client.Close()
		}
	}

	xcontext.Logger(ctx).Infof("Healthy rpcs for chain %s: %s", c.chain, rpcs)

	return rpcs, clients
}

func (c *defaultEthClient) processData(text string) ([]string, error) {
	tokenizer := html.NewTokenizer(strings.NewReader(text))
	var data string
	for stop := false; !stop; {
		switch tokenizer.Next() {
		case html.ErrorToken:
			stop = true

		case html.TextToken:
			text := tokenizer.Token().Data
			var js json.RawMessage
			if json.Unmarshal([]byte(text), &js) == nil {
				data = text
			}
		}
	}

	type result struct {
		Props struct {
			PageProps struct {
				Chain struct {
					Name string `json:"name"`
					RPC  []struct {
						Url string `json:"url"`
					} `json:"rpc"`
				} `json:"chain"`
			} `json:"pageProps"`
		} `json:"props"`
	}

	r := &result{}
	if err := json.Unmarshal([]byte(data), r); err != nil {
		return nil, err
	}

	ret := make([]string, 0)
	for _, rpc := range r.Props.PageProps.Chain.RPC {
		if strings.HasPrefix(rpc.Url, "http") {
			ret = append(ret, rpc.Url)
		}
	}

	return ret, nil
}

func (c *defaultEthClient) GetExtraRpcs(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("https://chainlist.org/chain/%d", c.chainID)
	xcontext.Logger(ctx).Infof("Getting extra rpcs status from remote link %s for chain %s",
		url, c.chain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := xcontext.HTTPClient(ctx).Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get chain list data, status code = %d", res.StatusCode)
	}

	bz, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return c.processData(string(bz))
}

func (c *defaultEthClient) shuffle() ([]*ethclient.Client, []string) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	n := len(c.clients)
	if n == 0 {
		return nil, nil
	}

	clients := make([]*ethclient.Client, n)
	rpcs := make([]string, n)
	copy(clients, c.clients)
	copy(rpcs, c.rpcs)

	for i := 0; i < MaxShuffleTimes; i++ {
		x := rand.Intn(n)
		y := rand.Intn(n)

		clients[x], clients[y] = clients[y], clients[x]
		rpcs[x], rpcs[y] = rpcs[y], rpcs[x]
	}

	return clients, rpcs
}

func (c *defaultEthClient) getHealthyClient(ctx context.Context) (*ethclient.Client, string) {
	c.mutex.RLock()
	empty := len(c.clients) == 0
	c.mutex.RUnlock()
	if empty {
		c.updateRpcs(ctx)
	}

	// Shuffle rpcs so that we will use different healthy rpc. Prefer the ones without a recent
	// failure, but fall back to any of them.
	clients, rpcs := c.shuffle()
	for i, rpc := range rpcs {
		if failedAt, ok := c.failures.Load(rpc); ok && time.Since(failedAt) < FailureCooldown {
			continue
		}

		return clients[i], rpc
	}

	if len(clients) > 0 {
		return clients[0], rpcs[0]
	}

	return nil, ""
}

func (c *defaultEthClient) execute(
	ctx context.Context, f func(client *ethclient.Client, rpc string) (any, error),
) (any, error) {
	client, rpc := c.getHealthyClient(ctx)
	if client == nil {
		return nil, fmt.Errorf("%w for chain %s", ErrNoHealthyRPC, c.chain)
	}

	ret, err := f(client, rpc)
	if err != nil {
		c.failures.Store(rpc, time.Now())
		return nil, err
	}

	c.failures.Delete(rpc)
	return ret, nil
}

func (c *defaultEthClient) Backend(ctx context.Context) (Backend, error) {
	client, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		return client, nil
	})
	if err != nil {
		return nil, err
	}

	return client.(*ethclient.Client), nil
}

func (c *defaultEthClient) BalanceAt(
	ctx context.Context, account common.Address, block *big.Int,
) (*big.Int, error) {
	balance, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		return client.BalanceAt(ctx, account, block)
	})
	if err != nil {
		return nil, err
	}

	return balance.(*big.Int), nil
}

func (c *defaultEthClient) WaitMined(
	ctx context.Context, tx *ethtypes.Transaction,
) (*ethtypes.Receipt, error) {
	receipt, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		return bind.WaitMined(ctx, client, tx)
	})
	if err != nil {
		return nil, err
	}

	return receipt.(*ethtypes.Receipt), nil
}
