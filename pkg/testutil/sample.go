package testutil

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/socialharmony/backend/pkg/api"
)

var (
	OrgOwner1 = common.HexToAddress("0xa100000000000000000000000000000000000001")
	OrgOwner2 = common.HexToAddress("0xa100000000000000000000000000000000000002")

	ActiveGame    = common.HexToAddress("0x2000000000000000000000000000000000000001")
	PendingGame   = common.HexToAddress("0x2000000000000000000000000000000000000002")
	CompletedGame = common.HexToAddress("0x2000000000000000000000000000000000000003")
	CancelledGame = common.HexToAddress("0x2000000000000000000000000000000000000004")

	Endorser1 = common.HexToAddress("0xe000000000000000000000000000000000000001")
	Endorser2 = common.HexToAddress("0xe000000000000000000000000000000000000002")

	// UserKey is the hex private key of the sample user. UserAddress is derived from it.
	UserKey     = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	UserAddress = common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23")
)

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

// NewSampleChain returns a FakeChain with two organisations, one game in each status and a
// funded sample user.
func NewSampleChain() *FakeChain {
	chain := NewFakeChain()

	chain.AddOrganisation(1, "https://meta.example/orgs/1.json", OrgOwner1)
	chain.AddOrganisation(2, "ipfs://QmOrganisation2", OrgOwner2)

	chain.AddGame(ActiveGame, &FakeGame{
		MetadataURI:       "https://meta.example/games/1.json",
		Owner:             OrgOwner1,
		PricePerRound:     ether(1),
		Participants:      big.NewInt(10),
		RequiredEndorsers: big.NewInt(2),
		Joined:            map[common.Address]bool{Endorser1: true},
		Endorsers:         map[common.Address]bool{Endorser1: true, Endorser2: true},
	})

	chain.AddGame(PendingGame, &FakeGame{
		MetadataURI:       "ipfs://QmGame2",
		Owner:             OrgOwner2,
		PricePerRound:     new(big.Int).Div(ether(1), big.NewInt(2)),
		Participants:      big.NewInt(4),
		RequiredEndorsers: big.NewInt(3),
		Endorsers:         map[common.Address]bool{Endorser1: true},
	})

	chain.AddGame(CompletedGame, &FakeGame{
		MetadataURI:       "https://meta.example/games/3.json",
		Owner:             OrgOwner1,
		Complete:          true,
		PricePerRound:     ether(2),
		Participants:      big.NewInt(2),
		RequiredEndorsers: big.NewInt(1),
		Joined:            map[common.Address]bool{Endorser1: true, Endorser2: true},
		Endorsers:         map[common.Address]bool{Endorser1: true},
	})

	chain.AddGame(CancelledGame, &FakeGame{
		MetadataURI:       "https://meta.example/games/4.json",
		Owner:             OrgOwner2,
		Cancelled:         true,
		Complete:          true,
		PricePerRound:     ether(1),
		Participants:      big.NewInt(5),
		RequiredEndorsers: big.NewInt(0),
	})

	chain.Report.Sum = ether(5)
	chain.Report.Count = big.NewInt(3)
	chain.Balances[UserAddress] = ether(10)

	return chain
}

// SampleMetadata returns the metadata documents referenced by NewSampleChain, keyed by the
// resolved URL.
func SampleMetadata() map[string]api.JSON {
	return map[string]api.JSON{
		"https://meta.example/orgs/1.json": {
			"name":        "Clean Water",
			"description": "Wells for rural villages",
			"logo":        "https://meta.example/img/water.png",
			"website":     "https://water.example",
			"images":      []any{"https://meta.example/img/water-1.png"},
		},
		"https://ipfs.example/ipfs/QmOrganisation2": {
			"name":        "Open Books",
			"description": "Libraries for every school",
			"heroImages":  []any{"https://meta.example/img/books-hero.png"},
			"category":    "education",
		},
		"https://meta.example/games/1.json": {
			"title":            "Water Raffle",
			"organisationName": "Clean Water",
			"description":      "Win a trip, fund a well",
		},
		"https://ipfs.example/ipfs/QmGame2": {
			"title":            "Book Drive",
			"organisationName": "Open Books",
			"story":            "<p>Every ticket buys <b>one</b> book.</p>",
		},
		"https://meta.example/games/3.json": {
			"title": "Spring Draw",
		},
		"https://meta.example/games/4.json": {
			"title": "Cancelled Draw",
		},
	}
}
