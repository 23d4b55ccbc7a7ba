package ethutil

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// DefaultDecimals is the number of decimals of ONE (and ETH).
const DefaultDecimals int32 = 18

// FromWei converts a fixed point on-chain amount to its decimal display unit.
func FromWei(amount *big.Int, decimals int32) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(amount, -decimals)
}

// ToWei is the inverse of FromWei. Digits beyond the precision of the unit are truncated.
func ToWei(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Truncate(0).BigInt()
}

// BigIntEqual compares two integers, treating nil as zero.
func BigIntEqual(a, b *big.Int) bool {
	if a == nil {
		a = common0
	}
	if b == nil {
		b = common0
	}

	return a.Cmp(b) == 0
}

var common0 = big.NewInt(0)
