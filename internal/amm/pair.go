package amm

import (
	"bytes"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ammlab/amm-service/internal/apperrors"
)

// Pair is the state of one liquidity pool for an unordered asset pair.
//
// AssetLow and AssetHigh are byte-ordered (low < high) so the record is
// independent of the order in which callers name the assets. Reserves are
// denominated in the asset's smallest indivisible unit.
type Pair struct {
	mu sync.Mutex

	AssetLow  common.Address
	AssetHigh common.Address

	ReserveLow  *big.Int
	ReserveHigh *big.Int

	// TotalShares is the number of liquidity shares outstanding; Shares maps
	// each provider to its balance. Entries are removed when a balance reaches
	// zero so that iterating Shares always sums to TotalShares.
	TotalShares *big.Int
	Shares      map[common.Address]*big.Int

	// Custody is the ledger account that holds the pool's token balances,
	// derived deterministically from the canonical pair key.
	Custody common.Address
}

// SortAssets returns the two asset identifiers in canonical byte order.
func SortAssets(assetX, assetY common.Address) (low, high common.Address) {
	if bytes.Compare(assetX.Bytes(), assetY.Bytes()) < 0 {
		return assetX, assetY
	}
	return assetY, assetX
}

// PairKey derives the canonical key for an unordered asset pair:
// keccak256(low || high) over the byte-ordered identifiers, so that
// PairKey(a, b) == PairKey(b, a).
func PairKey(assetX, assetY common.Address) (common.Hash, error) {
	if assetX == assetY {
		return common.Hash{}, apperrors.ErrIdenticalAssets
	}
	low, high := SortAssets(assetX, assetY)
	return crypto.Keccak256Hash(low.Bytes(), high.Bytes()), nil
}

func newPair(key common.Hash, assetX, assetY common.Address) *Pair {
	low, high := SortAssets(assetX, assetY)
	return &Pair{
		AssetLow:    low,
		AssetHigh:   high,
		ReserveLow:  big.NewInt(0),
		ReserveHigh: big.NewInt(0),
		TotalShares: big.NewInt(0),
		Shares:      map[common.Address]*big.Int{},
		Custody:     common.BytesToAddress(key[12:]),
	}
}

// reserves returns the pair's reserve pointers viewed from the caller's asset
// order: own is the reserve of asset, other the opposite side.
func (p *Pair) reserves(asset common.Address) (own, other *big.Int) {
	if asset == p.AssetLow {
		return p.ReserveLow, p.ReserveHigh
	}
	return p.ReserveHigh, p.ReserveLow
}

// SharesOf returns the provider's current share balance (zero if none).
func (p *Pair) SharesOf(owner common.Address) *big.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.Shares[owner]; ok {
		return new(big.Int).Set(s)
	}
	return big.NewInt(0)
}

func (p *Pair) credit(owner common.Address, shares *big.Int) {
	if s, ok := p.Shares[owner]; ok {
		s.Add(s, shares)
		return
	}
	p.Shares[owner] = new(big.Int).Set(shares)
}

func (p *Pair) debit(owner common.Address, shares *big.Int) {
	s := p.Shares[owner]
	s.Sub(s, shares)
	if s.Sign() == 0 {
		delete(p.Shares, owner)
	}
}

// pairSnapshot captures the mutable pool state touched by one operation so a
// failed ledger transfer can roll the whole mutation back.
type pairSnapshot struct {
	reserveLow  *big.Int
	reserveHigh *big.Int
	totalShares *big.Int
	owner       common.Address
	ownerShares *big.Int
	ownerKnown  bool
}

func (p *Pair) snapshot(owner common.Address) pairSnapshot {
	snap := pairSnapshot{
		reserveLow:  new(big.Int).Set(p.ReserveLow),
		reserveHigh: new(big.Int).Set(p.ReserveHigh),
		totalShares: new(big.Int).Set(p.TotalShares),
		owner:       owner,
	}
	if s, ok := p.Shares[owner]; ok {
		snap.ownerShares = new(big.Int).Set(s)
		snap.ownerKnown = true
	}
	return snap
}

func (p *Pair) restore(snap pairSnapshot) {
	p.ReserveLow.Set(snap.reserveLow)
	p.ReserveHigh.Set(snap.reserveHigh)
	p.TotalShares.Set(snap.totalShares)
	if snap.ownerKnown {
		p.Shares[snap.owner] = snap.ownerShares
	} else {
		delete(p.Shares, snap.owner)
	}
}
