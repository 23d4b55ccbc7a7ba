package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// KeystoreProvider uses an encrypted keystore directory. The selected account is unlocked on
// GetAccount and locked again on ForgetIdentity.
type KeystoreProvider struct {
	ks         *keystore.KeyStore
	address    string
	passphrase string
}

func NewKeystoreProvider(dir, address, passphrase string) *KeystoreProvider {
	return &KeystoreProvider{
		ks:         keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP),
		address:    address,
		passphrase: passphrase,
	}
}

func (p *KeystoreProvider) account() (accounts.Account, error) {
	all := p.ks.Accounts()
	if len(all) == 0 {
		return accounts.Account{}, keystore.ErrNoMatch
	}

	if p.address == "" {
		return all[0], nil
	}

	if !common.IsHexAddress(p.address) {
		return accounts.Account{}, fmt.Errorf("invalid account address %s", p.address)
	}

	return p.ks.Find(accounts.Account{Address: common.HexToAddress(p.address)})
}

func (p *KeystoreProvider) GetAccount(ctx context.Context) (accounts.Account, error) {
	account, err := p.account()
	if err != nil {
		return accounts.Account{}, err
	}

	if err := p.ks.Unlock(account, p.passphrase); err != nil {
		return accounts.Account{}, err
	}

	return account, nil
}

func (p *KeystoreProvider) ForgetIdentity(ctx context.Context) error {
	account, err := p.account()
	if err != nil {
		return err
	}

	return p.ks.Lock(account.Address)
}

func (p *KeystoreProvider) SignTransaction(
	ctx context.Context, account accounts.Account, tx *types.Transaction, chainID *big.Int,
) (*types.Transaction, error) {
	return p.ks.SignTx(account, tx, chainID)
}
