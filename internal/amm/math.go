package amm

import "math/big"

// Fee constants: 0.3% = 997/1000.
var (
	feeMul = big.NewInt(997)
	feeDen = big.NewInt(1000)
)

// PriceScale is the fixed-point scale used to express a reserve ratio as an
// integer: price = reserveOther * PriceScale / reserveAsset.
var PriceScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// GetAmountOut computes the exact-input constant-product swap result:
// amountOut = (amountIn*997 * reserveOut) / (reserveIn*1000 + amountIn*997)
// with floor division. Returns ok=false if amountIn or either reserve is not
// positive.
func GetAmountOut(amountIn, reserveIn, reserveOut *big.Int) (*big.Int, bool) {
	if amountIn.Sign() <= 0 || reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return big.NewInt(0), false
	}

	ainFee := new(big.Int).Mul(amountIn, feeMul) // amountIn*997
	num := new(big.Int).Mul(ainFee, reserveOut)  // * reserveOut
	den := new(big.Int).Mul(reserveIn, feeDen)   // reserveIn*1000
	den.Add(den, ainFee)                         // + amountIn*997
	if den.Sign() == 0 {
		return big.NewInt(0), false
	}
	out := new(big.Int).Quo(num, den)
	return out, true
}

// initialShares is the share allotment for the first deposit into a pool:
// floor(sqrt(amountA * amountB)). The first provider sets the price ratio.
func initialShares(amountA, amountB *big.Int) *big.Int {
	mul := new(big.Int).Mul(amountA, amountB)
	return new(big.Int).Sqrt(mul)
}

// proportionalShares is the share allotment for a follow-up deposit:
// min(amountA*total/reserveA, amountB*total/reserveB), floor division on each
// side. Awarding the lesser claim penalizes deposits that do not match the
// current reserve ratio.
func proportionalShares(amountA, amountB, reserveA, reserveB, totalShares *big.Int) *big.Int {
	byA := new(big.Int).Mul(amountA, totalShares)
	byA.Quo(byA, reserveA)
	byB := new(big.Int).Mul(amountB, totalShares)
	byB.Quo(byB, reserveB)
	if byA.Cmp(byB) > 0 {
		return byB
	}
	return byA
}
