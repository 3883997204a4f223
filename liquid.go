package networth

import "fmt"

// This file implements the liquid-assets engine. Every operation is
// an atomic read-modify-write over the tree: it either updates the
// entry, its bucket total, the category total and both summary
// figures together, or it leaves the ledger untouched and returns an
// error from the closed set in errors.go.
//
// Amounts are validated by the caller: deposits and withdrawals take
// strictly positive amounts, balances are never negative.

// Deposit adds amount to the named liquid account.
func (l *Ledger) Deposit(t AccountType, name string, amount int64) error {
	b := l.Liquid.bucket(t.key())
	if b == nil {
		return fmt.Errorf("bucket %s: %w", t, ErrNotFound)
	}
	e := b.entry(name)
	if e == nil {
		return fmt.Errorf("%s account %q: %w", t, name, ErrNotFound)
	}
	e.AmountKRW += amount
	l.addLiquid(b, amount)
	return nil
}

// Withdraw removes amount from the named liquid account. It fails
// with ErrInsufficient when the balance is smaller than amount.
func (l *Ledger) Withdraw(t AccountType, name string, amount int64) error {
	b := l.Liquid.bucket(t.key())
	if b == nil {
		return fmt.Errorf("bucket %s: %w", t, ErrNotFound)
	}
	e := b.entry(name)
	if e == nil {
		return fmt.Errorf("%s account %q: %w", t, name, ErrNotFound)
	}
	if e.AmountKRW < amount {
		return fmt.Errorf("withdraw ₩%d from %q holding ₩%d: %w", amount, name, e.AmountKRW, ErrInsufficient)
	}
	e.AmountKRW -= amount
	l.addLiquid(b, -amount)
	return nil
}

// Transfer moves amount between two liquid accounts, composed as a
// withdrawal followed by a deposit. When the withdrawal fails the
// transfer fails for the same reason and the deposit never happens.
//
// The destination is resolved before any mutation so that a transfer
// to a missing account has no effect either. Same-account transfers
// are the caller's mistake to reject; here they merely cancel out.
func (l *Ledger) Transfer(fromType AccountType, fromName string, toType AccountType, toName string, amount int64) error {
	to := l.Liquid.bucket(toType.key())
	if to == nil || to.entry(toName) == nil {
		return fmt.Errorf("%s account %q: %w", toType, toName, ErrNotFound)
	}
	if err := l.Withdraw(fromType, fromName, amount); err != nil {
		return err
	}
	return l.Deposit(toType, toName, amount)
}

// AddAccount creates a new entry in the given sub-category with the
// initial balance and tags, deduplicating the name with a " (n)"
// suffix on collision. It returns the final name.
func (l *Ledger) AddAccount(t AccountType, name string, initialBalance int64, tags []string) (string, error) {
	b := l.Liquid.bucket(t.key())
	if b == nil {
		return "", fmt.Errorf("bucket %s: %w", t, ErrNotFound)
	}
	final := b.uniqueName(name)
	if tags == nil {
		tags = []string{}
	}
	b.Details = append(b.Details, &Entry{Name: final, AmountKRW: initialBalance, Tags: tags})
	l.addLiquid(b, initialBalance)
	return final, nil
}

// DeleteAccount removes the named entry, decrementing all counters by
// its balance.
func (l *Ledger) DeleteAccount(t AccountType, name string) error {
	b := l.Liquid.bucket(t.key())
	if b == nil {
		return fmt.Errorf("bucket %s: %w", t, ErrNotFound)
	}
	for i, e := range b.Details {
		if e.Name == name {
			l.addLiquid(b, -e.AmountKRW)
			b.Details = append(b.Details[:i], b.Details[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s account %q: %w", t, name, ErrNotFound)
}

// AdjustBalance sets the named entry's balance to newBalance and
// propagates the difference, which may be negative, through all
// counters. Adjusting twice to the same balance is a no-op the second
// time.
func (l *Ledger) AdjustBalance(t AccountType, name string, newBalance int64) error {
	b := l.Liquid.bucket(t.key())
	if b == nil {
		return fmt.Errorf("bucket %s: %w", t, ErrNotFound)
	}
	e := b.entry(name)
	if e == nil {
		return fmt.Errorf("%s account %q: %w", t, name, ErrNotFound)
	}
	diff := newBalance - e.AmountKRW
	e.AmountKRW = newBalance
	l.addLiquid(b, diff)
	return nil
}
