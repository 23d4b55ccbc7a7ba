package domain

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/socialharmony/backend/internal/common"
	"github.com/socialharmony/backend/internal/domain/blockchain"
	"github.com/socialharmony/backend/internal/domain/gameutil"
	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/internal/repository"
	"github.com/socialharmony/backend/pkg/api"
	"github.com/socialharmony/backend/pkg/enum"
	"github.com/socialharmony/backend/pkg/errorx"
	"github.com/socialharmony/backend/pkg/ethutil"
	"github.com/socialharmony/backend/pkg/idutil"
	"github.com/socialharmony/backend/pkg/pubsub"
	"github.com/socialharmony/backend/pkg/wallet"
	"github.com/socialharmony/backend/pkg/xcontext"
	"golang.org/x/sync/errgroup"
)

const (
	ActionJoin    = "join"
	ActionEndorse = "endorse"
)

type GameDomain interface {
	GetGames(context.Context, *model.GetGamesRequest) (*model.GetGamesResponse, error)
	GetGame(context.Context, *model.GetGameRequest) (*model.GetGameResponse, error)
	Join(context.Context, wallet.Session, *model.JoinGameRequest) (*model.JoinGameResponse, wallet.Session, error)
	Endorse(context.Context, wallet.Session, *model.EndorseGameRequest) (*model.EndorseGameResponse, wallet.Session, error)
}

type gameDomain struct {
	accessor     blockchain.Accessor
	apiGenerator api.Generator
	provider     wallet.Provider
	publisher    pubsub.Publisher
	viewStore    repository.ViewStore
}

// NewGameDomain creates the game aggregator. The provider, publisher and viewStore may be nil.
func NewGameDomain(
	accessor blockchain.Accessor,
	apiGenerator api.Generator,
	provider wallet.Provider,
	publisher pubsub.Publisher,
	viewStore repository.ViewStore,
) *gameDomain {
	return &gameDomain{
		accessor:     accessor,
		apiGenerator: apiGenerator,
		provider:     provider,
		publisher:    publisher,
		viewStore:    viewStore,
	}
}

func (d *gameDomain) GetGames(
	ctx context.Context, req *model.GetGamesRequest,
) (*model.GetGamesResponse, error) {
	var status model.GameStatus
	if req.Status != "" {
		var err error
		status, err = enum.ToEnum[model.GameStatus](req.Status)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Invalid game status: %v", err)
			return nil, errorx.New(errorx.BadRequest, "Invalid game status %s", req.Status)
		}
	}

	var organisation ethcommon.Address
	if req.Organisation != "" {
		var ok bool
		organisation, ok = ethutil.ParseAddress(req.Organisation)
		if !ok {
			return nil, errorx.New(errorx.BadRequest, "Invalid organisation address")
		}
	}

	games, err := d.listGames(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list games: %v", err)
		return nil, err
	}

	// Only the unfiltered listing is mirrored, so the stored record always means "all games".
	if req.Status == "" && req.Organisation == "" {
		mirror(ctx, d.viewStore, entity.ViewKindGames, storeKeyAll, games)
	}

	filtered := []model.Game{}
	for _, g := range games {
		if status != "" && g.Status != status {
			continue
		}

		if req.Organisation != "" && !strings.EqualFold(g.Organisation, organisation.Hex()) {
			continue
		}

		filtered = append(filtered, g)
	}

	return &model.GetGamesResponse{Games: filtered}, nil
}

func (d *gameDomain) GetGame(
	ctx context.Context, req *model.GetGameRequest,
) (*model.GetGameResponse, error) {
	address, ok := ethutil.ParseAddress(req.ID)
	if !ok {
		return nil, errorx.New(errorx.BadRequest, "Invalid game address")
	}

	game, err := d.getGame(ctx, address)
	if err != nil {
		if isExecutionReverted(err) || errors.Is(err, bind.ErrNoCode) {
			return nil, errorx.New(errorx.NotFound, "Not found game")
		}

		xcontext.Logger(ctx).Errorf("Cannot get game %s: %v", address.Hex(), err)
		return nil, err
	}

	mirror(ctx, d.viewStore, entity.ViewKindGame, game.ID, game)
	return &model.GetGameResponse{Game: *game}, nil
}

// listGames enriches every game of the token contract concurrently. The result keeps the order
// of getGameAddresses and the first error fails the whole listing.
func (d *gameDomain) listGames(ctx context.Context) ([]model.Game, error) {
	tokenContract, err := d.accessor.Token(ctx)
	if err != nil {
		return nil, err
	}

	addresses, err := read("getGameAddresses", func() ([]ethcommon.Address, error) {
		return tokenContract.GetGameAddresses(callOpts(ctx))
	})
	if err != nil {
		return nil, err
	}

	games := make([]model.Game, len(addresses))
	g, gctx := errgroup.WithContext(ctx)
	for i := range addresses {
		i := i
		g.Go(func() error {
			game, err := d.getGame(gctx, addresses[i])
			if err != nil {
				return err
			}

			games[i] = *game
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return games, nil
}

// getGame reads the metadata document and every counter of one game. Nothing is cached, each
// call observes the current chain state.
func (d *gameDomain) getGame(ctx context.Context, address ethcommon.Address) (*model.Game, error) {
	contract, err := d.accessor.Game(ctx, address)
	if err != nil {
		return nil, err
	}

	opts := callOpts(ctx)
	metadataURI, err := read("metadataURI", func() (string, error) { return contract.MetadataURI(opts) })
	if err != nil {
		return nil, err
	}

	game := model.Game{ID: address.Hex()}
	if err := fetchMetadata(ctx, d.apiGenerator, "game", metadataURI, &game.GameMetadata); err != nil {
		return nil, err
	}

	owner, err := read("owner", func() (ethcommon.Address, error) { return contract.Owner(opts) })
	if err != nil {
		return nil, err
	}

	cancelled, err := read("isGameCancelled", func() (bool, error) { return contract.IsGameCancelled(opts) })
	if err != nil {
		return nil, err
	}

	complete, err := read("isGameComplete", func() (bool, error) { return contract.IsGameComplete(opts) })
	if err != nil {
		return nil, err
	}

	price, err := read("pricePerRound", func() (*big.Int, error) { return contract.PricePerRound(opts) })
	if err != nil {
		return nil, err
	}

	entries, err := read("totalParticipants", func() (*big.Int, error) { return contract.TotalParticipants(opts) })
	if err != nil {
		return nil, err
	}

	participants, err := read("participants", func() (*big.Int, error) { return contract.Participants(opts) })
	if err != nil {
		return nil, err
	}

	required, err := read("requiredEndorsers", func() (*big.Int, error) { return contract.RequiredEndorsers(opts) })
	if err != nil {
		return nil, err
	}

	endorsements, err := read("endorsements", func() (*big.Int, error) { return contract.Endorsements(opts) })
	if err != nil {
		return nil, err
	}

	decimals := xcontext.Configs(ctx).Chain.Decimals
	costPerEntry := ethutil.FromWei(price, decimals)
	endorsed := gameutil.IsEndorsed(endorsements, required)

	game.Organisation = owner.Hex()
	game.Status = gameutil.ClassifyStatus(cancelled, complete, endorsed)
	game.Entries = entries.String()
	game.TotalParticipants = participants.String()
	game.CostPerEntry = costPerEntry.String()
	game.Goal = costPerEntry.Mul(decimal.NewFromBigInt(participants, 0)).String()
	game.TotalEndorsers = required.String()
	game.CurrentEndorsers = endorsements.String()
	game.Endorsed = endorsed

	return &game, nil
}

func (d *gameDomain) Join(
	ctx context.Context, session wallet.Session, req *model.JoinGameRequest,
) (*model.JoinGameResponse, wallet.Session, error) {
	result, session, err := d.participate(ctx, session, req.ID, ActionJoin)
	if err != nil {
		return nil, session, err
	}

	return &model.JoinGameResponse{
		Game:    result.game,
		TxHash:  result.txHash,
		Message: "You have joined the game, good luck!",
	}, session, nil
}

func (d *gameDomain) Endorse(
	ctx context.Context, session wallet.Session, req *model.EndorseGameRequest,
) (*model.EndorseGameResponse, wallet.Session, error) {
	result, session, err := d.participate(ctx, session, req.ID, ActionEndorse)
	if err != nil {
		return nil, session, err
	}

	return &model.EndorseGameResponse{
		Game:    result.game,
		TxHash:  result.txHash,
		Message: "Thank you for endorsing the game!",
	}, session, nil
}

type participation struct {
	game   model.Game
	txHash string
}

func (d *gameDomain) participate(
	ctx context.Context, session wallet.Session, id, action string,
) (*participation, wallet.Session, error) {
	address, ok := ethutil.ParseAddress(id)
	if !ok {
		return nil, session, errorx.New(errorx.BadRequest, "Invalid game address")
	}

	if !session.Authorized {
		newSession, err := wallet.SignIn(ctx, d.provider, d.accessor)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot sign in: %v", err)
			return nil, session, errorx.New(errorx.Unauthenticated, "Cannot connect to the wallet")
		}

		session = newSession
	}

	contract, err := d.accessor.Game(ctx, address)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot bind game %s: %v", address.Hex(), err)
		return nil, session, errorx.Unknown
	}

	opts, err := session.TransactOpts(ctx, d.provider, d.accessor.ChainID())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create transactor: %v", err)
		return nil, session, errorx.New(errorx.Unauthenticated, "Cannot sign with the wallet")
	}

	tx, err := d.submit(ctx, contract, opts, action)
	if err != nil {
		return nil, session, err
	}

	receipt, err := d.waitMined(ctx, tx)
	if err != nil {
		common.PromCounters[common.BlockchainTransactionFailure].WithLabelValues(action).Inc()
		xcontext.Logger(ctx).Errorf("Cannot wait for transaction %s: %v", tx.Hash().Hex(), err)
		return nil, session, errorx.New(errorx.Unavailable, "Transaction %s is not confirmed", tx.Hash().Hex())
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		common.PromCounters[common.BlockchainTransactionFailure].WithLabelValues(action).Inc()
		return nil, session, duplicatedError(action)
	}

	common.PromCounters[common.GameActivityTotal].WithLabelValues(action).Inc()
	xcontext.Logger(ctx).Infof("User %s did %s on game %s in tx %s",
		session.Address.Hex(), action, address.Hex(), tx.Hash().Hex())

	// Re-fetch so the returned game reflects the new counters.
	game, err := d.getGame(ctx, address)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot refresh game %s: %v", address.Hex(), err)
		return nil, session, err
	}
	mirror(ctx, d.viewStore, entity.ViewKindGame, game.ID, game)

	if refreshed, err := session.RefreshBalance(ctx, d.accessor); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot refresh balance of %s: %v", session.Address.Hex(), err)
	} else {
		session = refreshed
	}

	d.publishActivity(ctx, model.GameActivity{
		ID:     idutil.Generate(),
		Action: action,
		Game:   game.ID,
		User:   session.Address.Hex(),
		TxHash: tx.Hash().Hex(),
	})

	return &participation{game: *game, txHash: tx.Hash().Hex()}, session, nil
}

func (d *gameDomain) submit(
	ctx context.Context, contract blockchain.GameContract, opts *bind.TransactOpts, action string,
) (*types.Transaction, error) {
	readOpts := callOpts(ctx)
	cancelled, err := read("isGameCancelled", func() (bool, error) { return contract.IsGameCancelled(readOpts) })
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read game state: %v", err)
		return nil, err
	}

	complete, err := read("isGameComplete", func() (bool, error) { return contract.IsGameComplete(readOpts) })
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read game state: %v", err)
		return nil, err
	}

	if !gameutil.IsOpen(gameutil.ClassifyStatus(cancelled, complete, false)) {
		return nil, errorx.New(errorx.GameClosed, "The game is already closed")
	}

	var tx *types.Transaction
	switch action {
	case ActionJoin:
		if err := d.checkEndorsed(ctx, contract); err != nil {
			return nil, err
		}

		var price *big.Int
		price, err = read("pricePerRound", func() (*big.Int, error) { return contract.PricePerRound(readOpts) })
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot read price per round: %v", err)
			return nil, err
		}

		opts.Value = price
		tx, err = contract.Join(opts)
	case ActionEndorse:
		tx, err = contract.Endorse(opts)
	default:
		return nil, errorx.New(errorx.BadRequest, "Unsupported action %s", action)
	}

	if err != nil {
		common.PromCounters[common.BlockchainTransactionFailure].WithLabelValues(action).Inc()
		if isExecutionReverted(err) {
			xcontext.Logger(ctx).Debugf("Transaction %s reverted: %v", action, err)
			return nil, duplicatedError(action)
		}

		xcontext.Logger(ctx).Errorf("Cannot submit %s transaction: %v", action, err)
		return nil, errorx.New(errorx.Unavailable, "Cannot submit the transaction")
	}

	return tx, nil
}

// checkEndorsed rejects a join before any transaction is sent while the game still waits for
// endorsers.
func (d *gameDomain) checkEndorsed(ctx context.Context, contract blockchain.GameContract) error {
	opts := callOpts(ctx)
	required, err := read("requiredEndorsers", func() (*big.Int, error) { return contract.RequiredEndorsers(opts) })
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read required endorsers: %v", err)
		return err
	}

	endorsements, err := read("endorsements", func() (*big.Int, error) { return contract.Endorsements(opts) })
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read endorsements: %v", err)
		return err
	}

	if !gameutil.IsEndorsed(endorsements, required) {
		return errorx.New(errorx.GameNotEndorsed, "The game is not endorsed yet")
	}

	return nil
}

func (d *gameDomain) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if timeout := xcontext.Configs(ctx).Chain.ReceiptTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return d.accessor.WaitMined(ctx, tx)
}

func (d *gameDomain) publishActivity(ctx context.Context, activity model.GameActivity) {
	if d.publisher == nil {
		return
	}

	b, err := json.Marshal(activity)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal game activity: %v", err)
		return
	}

	topic := xcontext.Configs(ctx).Kafka.Topic
	err = d.publisher.Publish(ctx, topic, &pubsub.Pack{Key: []byte(activity.Game), Msg: b})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot publish game activity to %s: %v", topic, err)
	}
}

func duplicatedError(action string) error {
	if action == ActionEndorse {
		return errorx.New(errorx.AlreadyEndorsed, "You have already endorsed this game")
	}

	return errorx.New(errorx.AlreadyJoined, "You have already joined this game")
}
