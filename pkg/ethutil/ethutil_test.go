package ethutil

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFromWei(t *testing.T) {
	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	require.True(t, ok)
	require.Equal(t, "1.5", FromWei(wei, DefaultDecimals).String())
	require.Equal(t, "0", FromWei(nil, DefaultDecimals).String())
	require.Equal(t, "0.000000000000000001", FromWei(big.NewInt(1), DefaultDecimals).String())
}

func TestToWei(t *testing.T) {
	require.Equal(t, "2500000000000000000", ToWei(decimal.RequireFromString("2.5"), DefaultDecimals).String())
	require.Equal(t, "1", ToWei(decimal.RequireFromString("0.0000000000000000019"), DefaultDecimals).String())
}

func TestBigIntEqual(t *testing.T) {
	require.True(t, BigIntEqual(big.NewInt(3), big.NewInt(3)))
	require.True(t, BigIntEqual(nil, big.NewInt(0)))
	require.False(t, BigIntEqual(big.NewInt(2), big.NewInt(3)))
}

func TestGeneratePublicKey_Deterministic(t *testing.T) {
	a, err := GeneratePublicKey([]byte("secret"), []byte("nonce"))
	require.NoError(t, err)
	b, err := GeneratePublicKey([]byte("secret"), []byte("nonce"))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := GeneratePublicKey([]byte("secret"), []byte("other"))
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestGeneratePrivateKey_RepeatedDerivation(t *testing.T) {
	want, err := GeneratePublicKey([]byte("secret"), []byte("nonce"))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		got, err := GeneratePublicKey([]byte("secret"), []byte("nonce"))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	key, err := GeneratePrivateKey([]byte("secret"), []byte("nonce"))
	require.NoError(t, err)
	seed := sha256.Sum256([]byte("secretnonce"))
	require.Equal(t, seed[:], ethcrypto.FromECDSA(key))
}

func TestParseAddress(t *testing.T) {
	addr, ok := ParseAddress("0x00000000000000000000000000000000000000aa")
	require.True(t, ok)
	require.Equal(t, common.HexToAddress("0xaa"), addr)

	_, ok = ParseAddress("one1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq")
	require.False(t, ok)
}

func TestResolveURI(t *testing.T) {
	gateways := []string{"https://gateway.pinata.cloud/"}
	require.Equal(t, "https://gateway.pinata.cloud/ipfs/QmHash/game.json",
		ResolveURI("ipfs://QmHash/game.json", gateways))
	require.Equal(t, "https://example.com/org.json", ResolveURI("https://example.com/org.json", gateways))
	require.Equal(t, "ipfs://QmHash", ResolveURI("ipfs://QmHash", nil))
}
