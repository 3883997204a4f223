package networth

import "fmt"

// The receivables-and-deposits engine mirrors the liquid engine over
// the "receivables" and "deposits" buckets, with one twist: LoanOut
// is an upsert.

// LoanOut records money loaned out or deposited. If an entry with the
// given name already exists, amount is added to its balance and the
// supplied tags are discarded: tags are immutable once set at
// creation. Otherwise a new entry is created, deduplicating the name
// with a " (n)" suffix on collision. It returns the final name either
// way.
func (l *Ledger) LoanOut(t ReceivableType, name string, amount int64, tags []string) (string, error) {
	b := l.Receivables.bucket(t.key())
	if b == nil {
		return "", fmt.Errorf("bucket %s: %w", t, ErrNotFound)
	}
	if e := b.entry(name); e != nil {
		e.AmountKRW += amount
		l.addReceivable(b, amount)
		return name, nil
	}
	final := b.uniqueName(name)
	if tags == nil {
		tags = []string{}
	}
	b.Details = append(b.Details, &Entry{Name: final, AmountKRW: amount, Tags: tags})
	l.addReceivable(b, amount)
	return final, nil
}

// Repay removes amount from the named entry, failing with
// ErrInsufficient when the outstanding balance is smaller.
func (l *Ledger) Repay(t ReceivableType, name string, amount int64) error {
	b := l.Receivables.bucket(t.key())
	if b == nil {
		return fmt.Errorf("bucket %s: %w", t, ErrNotFound)
	}
	e := b.entry(name)
	if e == nil {
		return fmt.Errorf("%s %q: %w", t, name, ErrNotFound)
	}
	if e.AmountKRW < amount {
		return fmt.Errorf("repay ₩%d on %q holding ₩%d: %w", amount, name, e.AmountKRW, ErrInsufficient)
	}
	e.AmountKRW -= amount
	l.addReceivable(b, -amount)
	return nil
}

// Settle removes the named entry entirely, decrementing all counters
// by its remaining balance.
func (l *Ledger) Settle(t ReceivableType, name string) error {
	b := l.Receivables.bucket(t.key())
	if b == nil {
		return fmt.Errorf("bucket %s: %w", t, ErrNotFound)
	}
	for i, e := range b.Details {
		if e.Name == name {
			l.addReceivable(b, -e.AmountKRW)
			b.Details = append(b.Details[:i], b.Details[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s %q: %w", t, name, ErrNotFound)
}

// AdjustReceivable sets the named entry's balance to newBalance and
// propagates the difference through all counters.
func (l *Ledger) AdjustReceivable(t ReceivableType, name string, newBalance int64) error {
	b := l.Receivables.bucket(t.key())
	if b == nil {
		return fmt.Errorf("bucket %s: %w", t, ErrNotFound)
	}
	e := b.entry(name)
	if e == nil {
		return fmt.Errorf("%s %q: %w", t, name, ErrNotFound)
	}
	diff := newBalance - e.AmountKRW
	e.AmountKRW = newBalance
	l.addReceivable(b, diff)
	return nil
}
