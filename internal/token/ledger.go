package token

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/ammlab/amm-service/internal/apperrors"
)

// Ledger is the fungible-token collaborator consumed by the AMM engine. Each
// asset identifier names an independent balance/allowance space.
type Ledger interface {
	// Transfer moves amount of asset from one account to another, failing with
	// ErrInsufficientFunds if the balance does not cover it.
	Transfer(asset, from, to common.Address, amount *big.Int) error

	// TransferFrom moves amount of asset from owner to the destination on
	// behalf of spender, consuming owner's allowance for spender. Fails with
	// ErrInsufficientFunds or ErrInsufficientAllowance.
	TransferFrom(asset, spender, owner, to common.Address, amount *big.Int) error
}

// InMemoryLedger is a process-local Ledger with per-asset balances and
// allowances. Sum of balances per asset equals the total minted for it.
type InMemoryLedger struct {
	mu         sync.Mutex
	balances   map[common.Address]map[common.Address]*big.Int
	allowances map[common.Address]map[common.Address]map[common.Address]*big.Int
}

// NewInMemoryLedger creates an empty ledger.
func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{
		balances:   map[common.Address]map[common.Address]*big.Int{},
		allowances: map[common.Address]map[common.Address]map[common.Address]*big.Int{},
	}
}

// Mint credits newly created units of asset to an account.
func (l *InMemoryLedger) Mint(asset, to common.Address, amount *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance(asset, to).Add(l.balance(asset, to), amount)
}

// Approve sets the allowance of spender over owner's balance of asset.
func (l *InMemoryLedger) Approve(asset, owner, spender common.Address, amount *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	byOwner, ok := l.allowances[asset]
	if !ok {
		byOwner = map[common.Address]map[common.Address]*big.Int{}
		l.allowances[asset] = byOwner
	}
	bySpender, ok := byOwner[owner]
	if !ok {
		bySpender = map[common.Address]*big.Int{}
		byOwner[owner] = bySpender
	}
	bySpender[spender] = new(big.Int).Set(amount)
}

// BalanceOf returns the account's balance of asset.
func (l *InMemoryLedger) BalanceOf(asset, owner common.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(l.balance(asset, owner))
}

// Allowance returns the remaining allowance of spender over owner's asset.
func (l *InMemoryLedger) Allowance(asset, owner, spender common.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if a := l.allowance(asset, owner, spender); a != nil {
		return new(big.Int).Set(a)
	}
	return big.NewInt(0)
}

// Transfer moves amount of asset between accounts.
func (l *InMemoryLedger) Transfer(asset, from, to common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(asset, from, to, amount)
}

// TransferFrom moves amount of asset from owner on behalf of spender,
// consuming the allowance.
func (l *InMemoryLedger) TransferFrom(asset, spender, owner, to common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	allowance := l.allowance(asset, owner, spender)
	if allowance == nil || allowance.Cmp(amount) < 0 {
		return errors.Wrapf(apperrors.ErrInsufficientAllowance,
			"asset %s owner %s spender %s", asset.Hex(), owner.Hex(), spender.Hex())
	}
	if err := l.move(asset, owner, to, amount); err != nil {
		return err
	}
	allowance.Sub(allowance, amount)
	return nil
}

func (l *InMemoryLedger) move(asset, from, to common.Address, amount *big.Int) error {
	fromBal := l.balance(asset, from)
	if fromBal.Cmp(amount) < 0 {
		return errors.Wrapf(apperrors.ErrInsufficientFunds,
			"asset %s account %s", asset.Hex(), from.Hex())
	}
	fromBal.Sub(fromBal, amount)
	l.balance(asset, to).Add(l.balance(asset, to), amount)
	return nil
}

func (l *InMemoryLedger) balance(asset, owner common.Address) *big.Int {
	byOwner, ok := l.balances[asset]
	if !ok {
		byOwner = map[common.Address]*big.Int{}
		l.balances[asset] = byOwner
	}
	b, ok := byOwner[owner]
	if !ok {
		b = big.NewInt(0)
		byOwner[owner] = b
	}
	return b
}

func (l *InMemoryLedger) allowance(asset, owner, spender common.Address) *big.Int {
	byOwner, ok := l.allowances[asset]
	if !ok {
		return nil
	}
	bySpender, ok := byOwner[owner]
	if !ok {
		return nil
	}
	return bySpender[spender]
}
