package hunt

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Wallet accumulates credited coin values for one session.
type Wallet struct {
	mu        sync.Mutex
	balance   decimal.Decimal
	collected int
}

// NewWallet creates an empty wallet.
func NewWallet() *Wallet {
	return &Wallet{}
}

// Credit adds a collected coin's value to the balance.
func (w *Wallet) Credit(v decimal.Decimal) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balance = w.balance.Add(v)
	w.collected++
}

// Balance returns the total credited value.
func (w *Wallet) Balance() decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// CollectedCount returns how many coins have been credited.
func (w *Wallet) CollectedCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.collected
}
