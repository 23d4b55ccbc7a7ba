package wallet

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/socialharmony/backend/pkg/ethutil"
)

// KeyProvider signs with a single in-memory ECDSA key.
type KeyProvider struct {
	mutex sync.Mutex
	key   *ecdsa.PrivateKey
}

func NewKeyProvider(key *ecdsa.PrivateKey) *KeyProvider {
	return &KeyProvider{key: key}
}

// NewDerivedKeyProvider derives the key from a secret and a nonce, the same way platform wallets
// are derived.
func NewDerivedKeyProvider(secret, nonce string) (*KeyProvider, error) {
	key, err := ethutil.GeneratePrivateKey([]byte(secret), []byte(nonce))
	if err != nil {
		return nil, err
	}

	return NewKeyProvider(key), nil
}

func NewHexKeyProvider(hexKey string) (*KeyProvider, error) {
	key, err := ethutil.ParsePrivateKey(hexKey)
	if err != nil {
		return nil, err
	}

	return NewKeyProvider(key), nil
}

func (p *KeyProvider) GetAccount(ctx context.Context) (accounts.Account, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.key == nil {
		return accounts.Account{}, keystore.ErrLocked
	}

	return accounts.Account{Address: crypto.PubkeyToAddress(p.key.PublicKey)}, nil
}

// ForgetIdentity drops the key. The provider cannot sign anymore afterwards.
func (p *KeyProvider) ForgetIdentity(ctx context.Context) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.key = nil
	return nil
}

func (p *KeyProvider) SignTransaction(
	ctx context.Context, account accounts.Account, tx *types.Transaction, chainID *big.Int,
) (*types.Transaction, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.key == nil {
		return nil, keystore.ErrLocked
	}

	if crypto.PubkeyToAddress(p.key.PublicKey) != account.Address {
		return nil, accounts.ErrUnknownAccount
	}

	return types.SignTx(tx, types.LatestSignerForChainID(chainID), p.key)
}
