package networth

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currencies handled by the stocks category. Liquid assets and
// receivables are always KRW.
const (
	KRW = "KRW"
	USD = "USD"
)

// The two cash sentinels present in every stock account. The Korean
// names are part of the stored file format and must be preserved
// exactly.
const (
	KRWDepositName = "원화 예수금"
	USDDepositName = "달러 예수금"
)

// Ledger is the aggregate root: the four category subtrees plus the
// running summary counters, exactly one load/save cycle worth of
// state. All mutation operations are methods on *Ledger so that a
// single call updates the entry, its bucket, its category and the
// summary together.
type Ledger struct {
	Liquid      CashCategory
	Receivables CashCategory
	Stocks      StockCategory
	Crypto      CryptoCategory
	Summary     Summary
}

// Summary holds the running totals in KRW maintained by the liquid
// and receivables engines. The converted total accumulates both.
type Summary struct {
	LiquidKRW      int64
	ReceivablesKRW int64
	ConvertedKRW   int64
}

// CashCategory is a KRW-only category subtree: a fixed set of buckets
// plus the category running total.
//
// Invariant: TotalKRW == sum of all bucket totals, and each bucket
// total == sum of its entry amounts.
type CashCategory struct {
	TotalKRW int64
	Buckets  []*Bucket
}

// bucket returns the bucket stored under the given file key, or nil.
func (c *CashCategory) bucket(key string) *Bucket {
	for _, b := range c.Buckets {
		if b.Key == key {
			return b
		}
	}
	return nil
}

// Bucket is a named balance-holding unit: a running total and an
// ordered list of entries, unique by name.
type Bucket struct {
	Key      string `json:"-"`
	TotalKRW int64  `json:"total_krw"`
	Details  []*Entry `json:"details"`
}

// entry returns the entry with the given name, or nil.
func (b *Bucket) entry(name string) *Entry {
	for _, e := range b.Details {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// uniqueName deduplicates a candidate entry name by suffixing " (1)",
// " (2)", ... until it no longer collides within the bucket.
func (b *Bucket) uniqueName(name string) string {
	candidate := name
	for n := 1; b.entry(candidate) != nil; n++ {
		candidate = fmt.Sprintf("%s (%d)", name, n)
	}
	return candidate
}

// Entry is a single named balance line inside a bucket, e.g. one bank
// account. Tags are informational only.
type Entry struct {
	Name      string   `json:"name"`
	AmountKRW int64    `json:"amount_krw"`
	Tags      []string `json:"tags"`
}

// StockCategory holds the brokerage accounts plus the two root
// scalars. TotalKRW and TotalUSD are NOT derived from holdings: they
// track cash sentinel movements incrementally through every mutating
// operation, and only through them. Live valuation never touches
// them.
type StockCategory struct {
	TotalKRW decimal.Decimal
	TotalUSD decimal.Decimal
	Accounts []*StockAccount
}

// account returns the stock account with the given name, or nil.
func (s *StockCategory) account(name string) *StockAccount {
	for _, a := range s.Accounts {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// credit adds amount to the root total of the given currency. Debits
// pass a negative amount.
func (s *StockCategory) credit(currency string, amount decimal.Decimal) {
	if currency == KRW {
		s.TotalKRW = s.TotalKRW.Add(amount)
	} else {
		s.TotalUSD = s.TotalUSD.Add(amount)
	}
}

// StockAccount is one brokerage account: the two cash sentinels
// created with the account, plus zero or more stock holdings, in
// stored order.
type StockAccount struct {
	Name     string
	Holdings []Holding
}

// sentinel returns the cash sentinel for the given currency, or nil
// if the account structure is broken.
func (a *StockAccount) sentinel(currency string) *CashHolding {
	for _, h := range a.Holdings {
		if c, ok := h.(*CashHolding); ok && c.Currency == currency {
			return c
		}
	}
	return nil
}

// holding returns the stock holding with the given symbol, or nil.
func (a *StockAccount) holding(symbol string) *StockHolding {
	for _, h := range a.Holdings {
		if s, ok := h.(*StockHolding); ok && s.Symbol == symbol {
			return s
		}
	}
	return nil
}

// Holding is one line inside a stock account: either a cash sentinel
// or a tradable position. The closed set of implementations is
// CashHolding and StockHolding.
type Holding interface {
	isHolding()
}

// CashHolding is one of the two deposit sentinels, holding uninvested
// cash in its currency.
type CashHolding struct {
	Name     string
	Currency string
	Amount   decimal.Decimal
	Tags     []string
}

func (*CashHolding) isHolding() {}

// StockHolding is a tradable position. Ticker is the external
// price-lookup key and may be empty; Tags are set once at creation
// and never merged on top-up.
type StockHolding struct {
	Symbol   string
	Ticker   string
	Currency string
	Quantity decimal.Decimal
	Tags     []string
}

func (*StockHolding) isHolding() {}

// CryptoCategory holds one coin list per exchange. Coin records are
// opaque passthrough data, and TotalUSD is a stored scalar maintained
// outside this engine: it is only ever read here.
type CryptoCategory struct {
	TotalUSD  decimal.Decimal
	Exchanges []*CryptoExchange
}

// exchange returns the exchange with the given name, or nil.
func (c *CryptoCategory) exchange(name string) *CryptoExchange {
	for _, e := range c.Exchanges {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// CryptoExchange is a named ordered list of free-form coin records.
type CryptoExchange struct {
	Name  string
	Coins []json.RawMessage
}

// NewLedger creates an empty seeded ledger: all buckets present with
// zero totals, no stock accounts, no exchanges.
func NewLedger() *Ledger {
	l := &Ledger{}
	l.normalize()
	return l
}

// normalize creates any missing bucket so that every engine operation
// can rely on the fixed sub-category structure. Called on creation
// and after decoding.
func (l *Ledger) normalize() {
	for _, t := range []AccountType{Checking, Savings, Installment} {
		if l.Liquid.bucket(t.key()) == nil {
			l.Liquid.Buckets = append(l.Liquid.Buckets, &Bucket{Key: t.key()})
		}
	}
	for _, t := range []ReceivableType{Receivable, Deposit} {
		if l.Receivables.bucket(t.key()) == nil {
			l.Receivables.Buckets = append(l.Receivables.Buckets, &Bucket{Key: t.key()})
		}
	}
	// The stored file spells out empty lists, never null.
	for _, c := range []*CashCategory{&l.Liquid, &l.Receivables} {
		for _, b := range c.Buckets {
			if b.Details == nil {
				b.Details = []*Entry{}
			}
			for _, e := range b.Details {
				if e.Tags == nil {
					e.Tags = []string{}
				}
			}
		}
	}
}

// addLiquid propagates a balance change through the liquid counters:
// bucket total, category total, and the two summary figures.
func (l *Ledger) addLiquid(b *Bucket, diff int64) {
	b.TotalKRW += diff
	l.Liquid.TotalKRW += diff
	l.Summary.LiquidKRW += diff
	l.Summary.ConvertedKRW += diff
}

// addReceivable is the receivables counterpart of addLiquid.
func (l *Ledger) addReceivable(b *Bucket, diff int64) {
	b.TotalKRW += diff
	l.Receivables.TotalKRW += diff
	l.Summary.ReceivablesKRW += diff
	l.Summary.ConvertedKRW += diff
}

// Check verifies the ledger invariants: every bucket total equals the
// sum of its entries, every category total equals the sum of its
// buckets, and the summary counters match the category totals. It
// returns a descriptive error on the first violation found.
func (l *Ledger) Check() error {
	if err := l.Liquid.check("liquid_assets"); err != nil {
		return err
	}
	if err := l.Receivables.check("receivables_and_deposits"); err != nil {
		return err
	}
	if l.Summary.LiquidKRW != l.Liquid.TotalKRW {
		return fmt.Errorf("summary liquid total ₩%d does not match category total ₩%d", l.Summary.LiquidKRW, l.Liquid.TotalKRW)
	}
	if l.Summary.ReceivablesKRW != l.Receivables.TotalKRW {
		return fmt.Errorf("summary receivables total ₩%d does not match category total ₩%d", l.Summary.ReceivablesKRW, l.Receivables.TotalKRW)
	}
	if want := l.Liquid.TotalKRW + l.Receivables.TotalKRW; l.Summary.ConvertedKRW != want {
		return fmt.Errorf("summary converted total ₩%d does not match ₩%d", l.Summary.ConvertedKRW, want)
	}
	return nil
}

func (c *CashCategory) check(name string) error {
	var categorySum int64
	for _, b := range c.Buckets {
		var sum int64
		for _, e := range b.Details {
			sum += e.AmountKRW
		}
		if sum != b.TotalKRW {
			return fmt.Errorf("%s/%s total ₩%d does not match entry sum ₩%d", name, b.Key, b.TotalKRW, sum)
		}
		categorySum += b.TotalKRW
	}
	if categorySum != c.TotalKRW {
		return fmt.Errorf("%s total ₩%d does not match bucket sum ₩%d", name, c.TotalKRW, categorySum)
	}
	return nil
}
