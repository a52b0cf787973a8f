package amm

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/ammlab/amm-service/internal/apperrors"
	"github.com/ammlab/amm-service/internal/token"
)

// Engine executes liquidity and swap operations against the pair registry.
//
// Every operation is atomic: validation precedes any mutation, the pair lock is
// held for the whole call, and ledger transfers happen only after the pool
// state has been committed. A failed transfer rolls the pool state back.
type Engine struct {
	registry *Registry
	ledger   token.Ledger
	sink     Sink
	clock    func() time.Time
}

// NewEngine wires an engine to its registry, token ledger and event sink.
// A nil sink discards events.
func NewEngine(registry *Registry, ledger token.Ledger, sink Sink) *Engine {
	if sink == nil {
		sink = nopSink{}
	}
	return &Engine{
		registry: registry,
		ledger:   ledger,
		sink:     sink,
		clock:    time.Now,
	}
}

// WithClock overrides the engine clock for deterministic deadline tests.
func (e *Engine) WithClock(clock func() time.Time) {
	if clock != nil {
		e.clock = clock
	}
}

// Registry exposes the pair registry for read-side callers.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// AddLiquidityResult reports the actual amounts deposited and shares minted.
type AddLiquidityResult struct {
	AmountA *big.Int
	AmountB *big.Int
	Shares  *big.Int
}

// AddLiquidity deposits assetA and assetB into their pool, creating the pool
// on first use, and mints liquidity shares to recipient. The deposit amounts
// are the desired amounts for a fresh pool, or the ratio-preserving optimal
// amounts for an existing one.
func (e *Engine) AddLiquidity(
	sender common.Address,
	assetA, assetB common.Address,
	desiredA, desiredB, minA, minB *big.Int,
	recipient common.Address,
	deadline time.Time,
) (*AddLiquidityResult, error) {
	if e.clock().After(deadline) {
		return nil, apperrors.ErrExpired
	}
	if assetA == assetB {
		return nil, apperrors.ErrIdenticalAssets
	}
	if assetA == (common.Address{}) || assetB == (common.Address{}) {
		return nil, errors.Wrap(apperrors.ErrZeroAddress, "asset")
	}
	if recipient == (common.Address{}) {
		return nil, errors.Wrap(apperrors.ErrZeroAddress, "recipient")
	}
	if desiredA.Sign() <= 0 || desiredB.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientAmount, "desired amount")
	}
	if minA.Cmp(desiredA) > 0 || minB.Cmp(desiredB) > 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientMinAmount, "min exceeds desired")
	}

	pair, err := e.registry.GetOrCreate(assetA, assetB)
	if err != nil {
		return nil, err
	}

	pair.mu.Lock()
	defer pair.mu.Unlock()

	reserveA, reserveB := pair.reserves(assetA)

	var amountA, amountB, shares *big.Int
	if pair.TotalShares.Sign() == 0 {
		// Fresh pool: the first provider sets the price ratio.
		amountA = new(big.Int).Set(desiredA)
		amountB = new(big.Int).Set(desiredB)
		shares = initialShares(amountA, amountB)
	} else {
		// The B side is checked first, unconditionally; swapping the branch
		// order would change which minimum-amount error fires on boundary
		// inputs.
		optimalB := new(big.Int).Mul(desiredA, reserveB)
		optimalB.Quo(optimalB, reserveA)
		if optimalB.Cmp(desiredB) <= 0 {
			if optimalB.Cmp(minB) < 0 {
				return nil, errors.Wrapf(apperrors.ErrInsufficientBAmount,
					"optimal %s below min %s", optimalB, minB)
			}
			amountA = new(big.Int).Set(desiredA)
			amountB = optimalB
		} else {
			optimalA := new(big.Int).Mul(desiredB, reserveA)
			optimalA.Quo(optimalA, reserveB)
			if optimalA.Cmp(desiredA) > 0 || optimalA.Cmp(minA) < 0 {
				return nil, errors.Wrapf(apperrors.ErrInsufficientAAmount,
					"optimal %s outside [%s, %s]", optimalA, minA, desiredA)
			}
			amountA = optimalA
			amountB = new(big.Int).Set(desiredB)
		}
		shares = proportionalShares(amountA, amountB, reserveA, reserveB, pair.TotalShares)
	}

	snap := pair.snapshot(recipient)
	reserveA.Add(reserveA, amountA)
	reserveB.Add(reserveB, amountB)
	pair.TotalShares.Add(pair.TotalShares, shares)
	pair.credit(recipient, shares)

	if err := e.ledger.TransferFrom(assetA, pair.Custody, sender, pair.Custody, amountA); err != nil {
		pair.restore(snap)
		return nil, errors.Wrap(err, "pull asset a")
	}
	if err := e.ledger.TransferFrom(assetB, pair.Custody, sender, pair.Custody, amountB); err != nil {
		pair.restore(snap)
		if rerr := e.ledger.Transfer(assetA, pair.Custody, sender, amountA); rerr != nil {
			err = multierr.Append(err, errors.Wrap(rerr, "refund asset a"))
		}
		return nil, errors.Wrap(err, "pull asset b")
	}

	e.sink.OnLiquidityAdded(LiquidityAdded{
		Provider: recipient,
		AssetA:   assetA,
		AssetB:   assetB,
		AmountA:  amountA,
		AmountB:  amountB,
		Shares:   shares,
	})

	return &AddLiquidityResult{AmountA: amountA, AmountB: amountB, Shares: shares}, nil
}

// RemoveLiquidityResult reports the actual amounts withdrawn.
type RemoveLiquidityResult struct {
	AmountA *big.Int
	AmountB *big.Int
}

// RemoveLiquidity burns the sender's liquidity shares and pays out the
// proportional slice of both reserves to recipient.
func (e *Engine) RemoveLiquidity(
	sender common.Address,
	assetA, assetB common.Address,
	shares, minA, minB *big.Int,
	recipient common.Address,
	deadline time.Time,
) (*RemoveLiquidityResult, error) {
	if e.clock().After(deadline) {
		return nil, apperrors.ErrExpired
	}
	if assetA == assetB {
		return nil, apperrors.ErrIdenticalAssets
	}
	if assetA == (common.Address{}) || assetB == (common.Address{}) {
		return nil, errors.Wrap(apperrors.ErrZeroAddress, "asset")
	}
	if recipient == (common.Address{}) {
		return nil, errors.Wrap(apperrors.ErrZeroAddress, "recipient")
	}
	if shares.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientAmount, "shares to burn")
	}

	pair, err := e.registry.Get(assetA, assetB)
	if err != nil {
		return nil, err
	}

	pair.mu.Lock()
	defer pair.mu.Unlock()

	balance, ok := pair.Shares[sender]
	if !ok || balance.Cmp(shares) < 0 {
		return nil, errors.Wrapf(apperrors.ErrInsufficientShareBalance,
			"burn %s", shares)
	}

	// Amounts are computed from the reserves before mutation.
	reserveA, reserveB := pair.reserves(assetA)
	amountA := new(big.Int).Mul(shares, reserveA)
	amountA.Quo(amountA, pair.TotalShares)
	amountB := new(big.Int).Mul(shares, reserveB)
	amountB.Quo(amountB, pair.TotalShares)

	if amountA.Cmp(minA) < 0 || amountB.Cmp(minB) < 0 {
		return nil, errors.Wrapf(apperrors.ErrInsufficientOutputAmount,
			"amounts %s/%s below mins %s/%s", amountA, amountB, minA, minB)
	}

	snap := pair.snapshot(sender)
	reserveA.Sub(reserveA, amountA)
	reserveB.Sub(reserveB, amountB)
	pair.TotalShares.Sub(pair.TotalShares, shares)
	pair.debit(sender, shares)

	if err := e.ledger.Transfer(assetA, pair.Custody, recipient, amountA); err != nil {
		pair.restore(snap)
		return nil, errors.Wrap(err, "push asset a")
	}
	if err := e.ledger.Transfer(assetB, pair.Custody, recipient, amountB); err != nil {
		pair.restore(snap)
		if rerr := e.ledger.Transfer(assetA, recipient, pair.Custody, amountA); rerr != nil {
			err = multierr.Append(err, errors.Wrap(rerr, "claw back asset a"))
		}
		return nil, errors.Wrap(err, "push asset b")
	}

	e.sink.OnLiquidityRemoved(LiquidityRemoved{
		Provider: sender,
		AssetA:   assetA,
		AssetB:   assetB,
		AmountA:  amountA,
		AmountB:  amountB,
		Shares:   shares,
	})

	return &RemoveLiquidityResult{AmountA: amountA, AmountB: amountB}, nil
}

// SwapExactTokensForTokens swaps an exact input amount along a two-element
// path for as much output as the constant-product formula allows, sending the
// output to recipient. Returns the input and output amounts.
func (e *Engine) SwapExactTokensForTokens(
	sender common.Address,
	amountIn, amountOutMin *big.Int,
	path []common.Address,
	recipient common.Address,
	deadline time.Time,
) ([2]*big.Int, error) {
	var out [2]*big.Int

	if e.clock().After(deadline) {
		return out, apperrors.ErrExpired
	}
	if len(path) != 2 {
		return out, errors.Wrapf(apperrors.ErrInvalidPath, "length %d", len(path))
	}
	if amountIn.Sign() <= 0 {
		return out, errors.Wrap(apperrors.ErrInsufficientAmount, "amount in")
	}
	if recipient == (common.Address{}) {
		return out, errors.Wrap(apperrors.ErrZeroAddress, "recipient")
	}

	assetIn, assetOut := path[0], path[1]
	pair, err := e.registry.Get(assetIn, assetOut)
	if err != nil {
		return out, err
	}

	pair.mu.Lock()
	defer pair.mu.Unlock()

	reserveIn, reserveOut := pair.reserves(assetIn)
	amountOut, ok := GetAmountOut(amountIn, reserveIn, reserveOut)
	if !ok {
		return out, apperrors.ErrEmptyReserves
	}
	if amountOut.Cmp(amountOutMin) < 0 {
		return out, errors.Wrapf(apperrors.ErrInsufficientOutputAmount,
			"out %s below min %s", amountOut, amountOutMin)
	}
	// The formula guarantees amountOut < reserveOut for positive finite
	// inputs; this is an invariant check, not a normal path.
	if amountOut.Cmp(reserveOut) >= 0 {
		return out, errors.Wrapf(apperrors.ErrInsufficientOutputAmount,
			"out %s would drain reserve %s", amountOut, reserveOut)
	}

	snap := pair.snapshot(sender)
	reserveIn.Add(reserveIn, amountIn)
	reserveOut.Sub(reserveOut, amountOut)

	if err := e.ledger.TransferFrom(assetIn, pair.Custody, sender, pair.Custody, amountIn); err != nil {
		pair.restore(snap)
		return out, errors.Wrap(err, "pull asset in")
	}
	if err := e.ledger.Transfer(assetOut, pair.Custody, recipient, amountOut); err != nil {
		pair.restore(snap)
		if rerr := e.ledger.Transfer(assetIn, pair.Custody, sender, amountIn); rerr != nil {
			err = multierr.Append(err, errors.Wrap(rerr, "refund asset in"))
		}
		return out, errors.Wrap(err, "push asset out")
	}

	e.sink.OnTokensSwapped(TokensSwapped{
		Sender:    sender,
		AssetIn:   assetIn,
		AssetOut:  assetOut,
		AmountIn:  amountIn,
		AmountOut: amountOut,
	})

	out[0] = new(big.Int).Set(amountIn)
	out[1] = amountOut
	return out, nil
}

// GetPrice returns the price of assetA denominated in assetB, scaled by
// PriceScale: reserveB * PriceScale / reserveA.
func (e *Engine) GetPrice(assetA, assetB common.Address) (*big.Int, error) {
	pair, err := e.registry.Get(assetA, assetB)
	if err != nil {
		return nil, err
	}

	pair.mu.Lock()
	defer pair.mu.Unlock()

	reserveA, reserveB := pair.reserves(assetA)
	if reserveA.Sign() == 0 {
		return nil, apperrors.ErrEmptyPool
	}
	price := new(big.Int).Mul(reserveB, PriceScale)
	price.Quo(price, reserveA)
	return price, nil
}

// AmountOut is the checked form of GetAmountOut: zero input yields zero
// output, negative input is rejected, and zero reserves fail with
// ErrEmptyReserves instead of dividing by zero.
func (e *Engine) AmountOut(amountIn, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	if amountIn.Sign() < 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientAmount, "amount in")
	}
	if reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return nil, apperrors.ErrEmptyReserves
	}
	if amountIn.Sign() == 0 {
		return big.NewInt(0), nil
	}
	amountOut, ok := GetAmountOut(amountIn, reserveIn, reserveOut)
	if !ok {
		return nil, apperrors.ErrEmptyReserves
	}
	return amountOut, nil
}
