package networth

import (
	"encoding/json"
	"fmt"
)

// The cryptocurrency engine only manages the exchange list. Coin
// records travel through load and save untouched, and the stored USD
// total is maintained by hand outside this tool.

// AddExchange creates a new empty exchange, failing with ErrExists on
// a name collision.
func (l *Ledger) AddExchange(name string) error {
	if l.Crypto.exchange(name) != nil {
		return fmt.Errorf("exchange %q: %w", name, ErrExists)
	}
	l.Crypto.Exchanges = append(l.Crypto.Exchanges, &CryptoExchange{Name: name, Coins: []json.RawMessage{}})
	return nil
}

// DeleteExchange removes the named exchange with all its coin
// records.
func (l *Ledger) DeleteExchange(name string) error {
	for i, e := range l.Crypto.Exchanges {
		if e.Name == name {
			l.Crypto.Exchanges = append(l.Crypto.Exchanges[:i], l.Crypto.Exchanges[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("exchange %q: %w", name, ErrNotFound)
}
