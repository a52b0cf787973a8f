package apperrors

import "github.com/pkg/errors"

var (
	// ErrExpired is returned when the operation deadline has already passed.
	ErrExpired = errors.New("expired")

	// ErrIdenticalAssets is returned when the two assets of a pair are the same.
	ErrIdenticalAssets = errors.New("identical assets")

	// ErrZeroAddress is returned when an asset or account identifier is the zero address.
	ErrZeroAddress = errors.New("zero address")

	// ErrInsufficientAmount is returned when a required amount is zero or negative.
	ErrInsufficientAmount = errors.New("insufficient amount")

	// ErrInsufficientMinAmount is returned when a desired amount is below its own minimum.
	ErrInsufficientMinAmount = errors.New("insufficient min amount")

	// ErrInsufficientAAmount is returned when the optimal deposit of asset A
	// violates the caller's minimum for asset A.
	ErrInsufficientAAmount = errors.New("insufficient a amount")

	// ErrInsufficientBAmount is returned when the optimal deposit of asset B
	// violates the caller's minimum for asset B.
	ErrInsufficientBAmount = errors.New("insufficient b amount")

	// ErrPairNotFound is returned when the asset pair has never received liquidity.
	ErrPairNotFound = errors.New("pair not found")

	// ErrInsufficientShareBalance is returned when the caller tries to burn more
	// liquidity shares than it holds.
	ErrInsufficientShareBalance = errors.New("insufficient share balance")

	// ErrInsufficientOutputAmount is returned when the computed output is below
	// the caller's minimum (slippage guard).
	ErrInsufficientOutputAmount = errors.New("insufficient output amount")

	// ErrInvalidPath is returned when a swap path is not exactly two assets.
	ErrInvalidPath = errors.New("invalid path")

	// ErrEmptyReserves is returned when a pricing formula would divide by a zero reserve.
	ErrEmptyReserves = errors.New("empty reserves")

	// ErrEmptyPool is returned when a price is requested from a pool with no liquidity.
	ErrEmptyPool = errors.New("empty pool")

	// ErrInsufficientFunds is returned by the token ledger when the sender's
	// balance does not cover the transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientAllowance is returned by the token ledger when the spender's
	// allowance does not cover the transfer.
	ErrInsufficientAllowance = errors.New("insufficient allowance")
)
