package eth

import (
	"context"
	"math/big"

	"github.com/socialharmony/backend/pkg/xcontext"
)

func GetChainIntFromId(ctx context.Context, chain string) *big.Int {
	switch chain {
	case "harmony":
		return big.NewInt(1666600000)
	case "harmony-testnet":
		return big.NewInt(1666700000)
	case "harmony-devnet":
		return big.NewInt(1666900000)
	case "eth":
		return big.NewInt(1)
	case "goerli-testnet":
		return big.NewInt(5)
	case "localhost":
		return big.NewInt(1337)

	default:
		xcontext.Logger(ctx).Errorf("unknown chain: %s", chain)
		return nil
	}
}
