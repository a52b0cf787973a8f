package amm

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/ammlab/amm-service/internal/apperrors"
)

// Registry maps an unordered asset pair to its single canonical Pair record.
// Pairs are created lazily on first liquidity addition and never deleted.
type Registry struct {
	mu    sync.RWMutex
	pairs map[common.Hash]*Pair
}

// NewRegistry creates an empty pair registry.
func NewRegistry() *Registry {
	return &Registry{pairs: map[common.Hash]*Pair{}}
}

// GetOrCreate returns the pair record for the asset combination, inserting a
// fresh zero-reserve record if none exists.
func (r *Registry) GetOrCreate(assetX, assetY common.Address) (*Pair, error) {
	key, err := PairKey(assetX, assetY)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.pairs[key]; ok {
		return p, nil
	}
	p := newPair(key, assetX, assetY)
	r.pairs[key] = p
	return p, nil
}

// Get returns the existing pair record, or ErrPairNotFound if the asset
// combination has never received liquidity. It never creates a pool.
func (r *Registry) Get(assetX, assetY common.Address) (*Pair, error) {
	key, err := PairKey(assetX, assetY)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pairs[key]
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrPairNotFound, "%s/%s", assetX.Hex(), assetY.Hex())
	}
	return p, nil
}

// Len returns the number of registered pairs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pairs)
}
