package networth

import (
	"testing"

	"github.com/shopspring/decimal"
)

// staticQuoter serves fixed prices in tests. A missing ticker quotes
// at 0, like a failed live lookup.
type staticQuoter struct {
	prices map[string]float64
	rate   float64
}

func (q staticQuoter) Price(ticker string) float64 { return q.prices[ticker] }

func (q staticQuoter) ExchangeRate() float64 {
	if q.rate == 0 {
		return DefaultUSDKRW
	}
	return q.rate
}

// d builds a decimal from a constant string.
func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// mustAdd creates a liquid account and fails the test on error.
func mustAdd(t *testing.T, l *Ledger, at AccountType, name string, balance int64) string {
	t.Helper()
	final, err := l.AddAccount(at, name, balance, nil)
	if err != nil {
		t.Fatalf("AddAccount(%v, %q, %d) error = %v", at, name, balance, err)
	}
	return final
}

// checkInvariants verifies the totals tree after a test scenario.
func checkInvariants(t *testing.T, l *Ledger) {
	t.Helper()
	if err := l.Check(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
}

// brokerage creates a stock account with funded sentinels.
func brokerage(t *testing.T, l *Ledger, name string, krw, usd decimal.Decimal) {
	t.Helper()
	if err := l.CreateStockAccount(name); err != nil {
		t.Fatalf("CreateStockAccount(%q) error = %v", name, err)
	}
	if !krw.IsZero() {
		if err := l.DepositCash(name, KRW, krw); err != nil {
			t.Fatalf("DepositCash(%q, KRW) error = %v", name, err)
		}
	}
	if !usd.IsZero() {
		if err := l.DepositCash(name, USD, usd); err != nil {
			t.Fatalf("DepositCash(%q, USD) error = %v", name, err)
		}
	}
}
