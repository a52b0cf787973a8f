package amm

import (
	"log"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// LiquidityAdded is emitted after a successful deposit.
type LiquidityAdded struct {
	Provider common.Address
	AssetA   common.Address
	AssetB   common.Address
	AmountA  *big.Int
	AmountB  *big.Int
	Shares   *big.Int
}

// LiquidityRemoved is emitted after a successful withdrawal.
type LiquidityRemoved struct {
	Provider common.Address
	AssetA   common.Address
	AssetB   common.Address
	AmountA  *big.Int
	AmountB  *big.Int
	Shares   *big.Int
}

// TokensSwapped is emitted after a successful swap.
type TokensSwapped struct {
	Sender    common.Address
	AssetIn   common.Address
	AssetOut  common.Address
	AmountIn  *big.Int
	AmountOut *big.Int
}

// Sink receives engine notifications. Events are delivered only after the
// operation has fully succeeded, ledger transfers included.
type Sink interface {
	OnLiquidityAdded(e LiquidityAdded)
	OnLiquidityRemoved(e LiquidityRemoved)
	OnTokensSwapped(e TokensSwapped)
}

// LogSink writes engine notifications to the standard logger.
type LogSink struct{}

// NewLogSink creates a Sink backed by the standard logger.
func NewLogSink() *LogSink {
	return &LogSink{}
}

// OnLiquidityAdded logs a deposit notification.
func (s *LogSink) OnLiquidityAdded(e LiquidityAdded) {
	log.Printf("liquidity added: provider=%s assets=%s/%s amounts=%s/%s shares=%s",
		e.Provider.Hex(), e.AssetA.Hex(), e.AssetB.Hex(), e.AmountA, e.AmountB, e.Shares)
}

// OnLiquidityRemoved logs a withdrawal notification.
func (s *LogSink) OnLiquidityRemoved(e LiquidityRemoved) {
	log.Printf("liquidity removed: provider=%s assets=%s/%s amounts=%s/%s shares=%s",
		e.Provider.Hex(), e.AssetA.Hex(), e.AssetB.Hex(), e.AmountA, e.AmountB, e.Shares)
}

// OnTokensSwapped logs a swap notification.
func (s *LogSink) OnTokensSwapped(e TokensSwapped) {
	log.Printf("tokens swapped: sender=%s %s->%s in=%s out=%s",
		e.Sender.Hex(), e.AssetIn.Hex(), e.AssetOut.Hex(), e.AmountIn, e.AmountOut)
}

type nopSink struct{}

func (nopSink) OnLiquidityAdded(LiquidityAdded)     {}
func (nopSink) OnLiquidityRemoved(LiquidityRemoved) {}
func (nopSink) OnTokensSwapped(TokensSwapped)       {}
