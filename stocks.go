package networth

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

// The stocks engine keeps two levels of balances consistent: the cash
// sentinels inside each account, and the category-root TotalKRW and
// TotalUSD scalars. The root scalars only ever move by the cash
// amounts passed through the operations below; they are never
// recomputed from live prices (that is the aggregator's job, over a
// different figure).
//
// Every operation validates everything it needs before the first
// write, so a failing operation leaves the ledger untouched.

// BuyStock spends unitPrice*quantity from the matching-currency cash
// sentinel of the account. If symbol already exists in the account
// its quantity grows and the supplied ticker, currency and tags are
// ignored; otherwise a new holding is appended with tags set once at
// creation.
func (l *Ledger) BuyStock(account, symbol, ticker, currency string, quantity decimal.Decimal, tags []string, unitPrice decimal.Decimal) error {
	a := l.Stocks.account(account)
	if a == nil {
		return fmt.Errorf("stock account %q: %w", account, ErrNotFound)
	}
	// A top-up pays from the existing holding's currency, whatever
	// the caller supplied.
	h := a.holding(symbol)
	if h != nil {
		currency = h.Currency
	}
	dep := a.sentinel(currency)
	if dep == nil {
		// A well-formed account always carries both sentinels.
		return fmt.Errorf("%s deposit in account %q: %w", currency, account, ErrNotFound)
	}
	cost := unitPrice.Mul(quantity)
	if dep.Amount.LessThan(cost) {
		return fmt.Errorf("buy %s %s costing %s %s with deposit %s: %w",
			quantity, symbol, cost, currency, dep.Amount, ErrInsufficient)
	}
	dep.Amount = dep.Amount.Sub(cost)
	l.Stocks.credit(currency, cost.Neg())
	if h != nil {
		h.Quantity = h.Quantity.Add(quantity)
		return nil
	}
	if tags == nil {
		tags = []string{}
	}
	a.Holdings = append(a.Holdings, &StockHolding{
		Symbol:   symbol,
		Ticker:   ticker,
		Currency: currency,
		Quantity: quantity,
		Tags:     tags,
	})
	return nil
}

// SellStock reduces the holding's quantity and credits
// unitPrice*quantity to the cash sentinel of the holding's own
// currency. Selling down to zero keeps the holding in place: use
// RemoveZeroQuantity to drop it.
func (l *Ledger) SellStock(account, symbol string, quantity, unitPrice decimal.Decimal) error {
	a := l.Stocks.account(account)
	if a == nil {
		return fmt.Errorf("stock account %q: %w", account, ErrNotFound)
	}
	h := a.holding(symbol)
	if h == nil {
		return fmt.Errorf("holding %q in account %q: %w", symbol, account, ErrNotFound)
	}
	dep := a.sentinel(h.Currency)
	if dep == nil {
		return fmt.Errorf("%s deposit in account %q: %w", h.Currency, account, ErrNotFound)
	}
	if quantity.GreaterThan(h.Quantity) {
		return fmt.Errorf("sell %s of %s holding %s: %w", quantity, symbol, h.Quantity, ErrInsufficient)
	}
	proceeds := unitPrice.Mul(quantity)
	h.Quantity = h.Quantity.Sub(quantity)
	dep.Amount = dep.Amount.Add(proceeds)
	l.Stocks.credit(h.Currency, proceeds)
	return nil
}

// DepositCash credits the matching cash sentinel and root total.
func (l *Ledger) DepositCash(account, currency string, amount decimal.Decimal) error {
	a := l.Stocks.account(account)
	if a == nil {
		return fmt.Errorf("stock account %q: %w", account, ErrNotFound)
	}
	dep := a.sentinel(currency)
	if dep == nil {
		return fmt.Errorf("%s deposit in account %q: %w", currency, account, ErrNotFound)
	}
	dep.Amount = dep.Amount.Add(amount)
	l.Stocks.credit(currency, amount)
	return nil
}

// WithdrawCash debits the matching cash sentinel and root total,
// failing with ErrInsufficient when the sentinel balance is smaller
// than amount.
func (l *Ledger) WithdrawCash(account, currency string, amount decimal.Decimal) error {
	a := l.Stocks.account(account)
	if a == nil {
		return fmt.Errorf("stock account %q: %w", account, ErrNotFound)
	}
	dep := a.sentinel(currency)
	if dep == nil {
		return fmt.Errorf("%s deposit in account %q: %w", currency, account, ErrNotFound)
	}
	if dep.Amount.LessThan(amount) {
		return fmt.Errorf("withdraw %s %s from deposit %s: %w", amount, currency, dep.Amount, ErrInsufficient)
	}
	dep.Amount = dep.Amount.Sub(amount)
	l.Stocks.credit(currency, amount.Neg())
	return nil
}

// ExchangeCash converts cash between the two sentinels of an account:
// fromAmount leaves the from-currency sentinel, toAmount enters the
// to-currency sentinel, each moving its own root total.
//
// The two amounts are supplied independently by the caller to match
// an actual brokerage exchange event; no rate relationship is
// enforced between them.
func (l *Ledger) ExchangeCash(account, fromCurrency, toCurrency string, fromAmount, toAmount decimal.Decimal) error {
	a := l.Stocks.account(account)
	if a == nil {
		return fmt.Errorf("stock account %q: %w", account, ErrNotFound)
	}
	from := a.sentinel(fromCurrency)
	if from == nil {
		return fmt.Errorf("%s deposit in account %q: %w", fromCurrency, account, ErrNotFound)
	}
	to := a.sentinel(toCurrency)
	if to == nil {
		return fmt.Errorf("%s deposit in account %q: %w", toCurrency, account, ErrNotFound)
	}
	if from.Amount.LessThan(fromAmount) {
		return fmt.Errorf("exchange %s %s from deposit %s: %w", fromAmount, fromCurrency, from.Amount, ErrInsufficient)
	}
	from.Amount = from.Amount.Sub(fromAmount)
	l.Stocks.credit(fromCurrency, fromAmount.Neg())
	to.Amount = to.Amount.Add(toAmount)
	l.Stocks.credit(toCurrency, toAmount)
	return nil
}

// RemoveZeroQuantity deletes the holding only when its quantity is
// exactly zero, and reports ErrNotFound otherwise: a non-zero holding
// is not "a zero-quantity holding of that symbol".
func (l *Ledger) RemoveZeroQuantity(account, symbol string) error {
	a := l.Stocks.account(account)
	if a == nil {
		return fmt.Errorf("stock account %q: %w", account, ErrNotFound)
	}
	for i, h := range a.Holdings {
		if s, ok := h.(*StockHolding); ok && s.Symbol == symbol && s.Quantity.IsZero() {
			a.Holdings = append(a.Holdings[:i], a.Holdings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("zero-quantity holding %q in account %q: %w", symbol, account, ErrNotFound)
}

// CreateStockAccount creates a new account seeded with the two cash
// sentinels at zero. It fails with ErrExists on a name collision.
func (l *Ledger) CreateStockAccount(name string) error {
	if l.Stocks.account(name) != nil {
		return fmt.Errorf("stock account %q: %w", name, ErrExists)
	}
	l.Stocks.Accounts = append(l.Stocks.Accounts, &StockAccount{
		Name: name,
		Holdings: []Holding{
			&CashHolding{Name: KRWDepositName, Currency: KRW, Tags: []string{"#Investment Assets"}},
			&CashHolding{Name: USDDepositName, Currency: USD, Tags: []string{"#Investment Assets"}},
		},
	})
	return nil
}

// DeleteStockAccount removes the account and decrements the root
// totals by its sentinel balances. Remaining share quantity was never
// part of the root totals, so it is not subtracted; its value leaves
// the ledger silently, which is why a warning is logged when the
// account still holds shares.
func (l *Ledger) DeleteStockAccount(name string) error {
	for i, a := range l.Stocks.Accounts {
		if a.Name != name {
			continue
		}
		for _, h := range a.Holdings {
			switch v := h.(type) {
			case *CashHolding:
				l.Stocks.credit(v.Currency, v.Amount.Neg())
			case *StockHolding:
				if !v.Quantity.IsZero() {
					log.Printf("warning: deleting account %q still holding %s of %s", name, v.Quantity, v.Symbol)
				}
			}
		}
		l.Stocks.Accounts = append(l.Stocks.Accounts[:i], l.Stocks.Accounts[i+1:]...)
		return nil
	}
	return fmt.Errorf("stock account %q: %w", name, ErrNotFound)
}
