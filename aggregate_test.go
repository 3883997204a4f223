package networth

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOverview_EmptyLedger(t *testing.T) {
	l := NewLedger()
	o := l.Overview(staticQuoter{rate: 1400})

	if !o.CombinedKRW.IsZero() {
		t.Errorf("combined total = %s, want 0", o.CombinedKRW)
	}
	if !o.TotalKRW.IsZero() || !o.TotalUSD.IsZero() {
		t.Errorf("totals = %s / %s, want 0", o.TotalKRW, o.TotalUSD)
	}
	if o.ExchangeRate != 1400 {
		t.Errorf("rate = %v, want 1400", o.ExchangeRate)
	}
}

func TestOverview_CombinesCategories(t *testing.T) {
	l := NewLedger()
	mustAdd(t, l, Checking, "KB", 1_000_000)
	if _, err := l.LoanOut(Receivable, "Brother", 500_000, nil); err != nil {
		t.Fatal(err)
	}
	brokerage(t, l, "Toss", d("100000"), d("100"))
	if err := l.BuyStock("Toss", "AAPL", "AAPL", USD, d("2"), nil, d("50")); err != nil {
		t.Fatal(err)
	}
	if err := l.BuyStock("Toss", "삼성전자", "005930.KS", KRW, d("10"), nil, d("7000")); err != nil {
		t.Fatal(err)
	}
	l.Crypto.TotalUSD = d("10")

	q := staticQuoter{
		prices: map[string]float64{
			"AAPL":      60,    // USD
			"005930.KS": 70000, // KRW, Korean exchange
		},
		rate: 1000,
	}
	o := l.Overview(q)

	// Stocks KRW: 30000 cash left + 10*70000 live value.
	if !o.StocksKRW.Equal(d("730000")) {
		t.Errorf("stocks KRW = %s, want 730000", o.StocksKRW)
	}
	// Stocks USD: 0 cash left + 2*60.
	if !o.StocksUSD.Equal(d("120")) {
		t.Errorf("stocks USD = %s, want 120", o.StocksUSD)
	}
	if !o.CryptoKRW.Equal(d("10000")) {
		t.Errorf("crypto KRW = %s, want 10000", o.CryptoKRW)
	}
	// 1000000 + 500000 + 730000 + 10000
	if !o.TotalKRW.Equal(d("2240000")) {
		t.Errorf("total KRW = %s, want 2240000", o.TotalKRW)
	}
	if !o.TotalUSD.Equal(d("130")) {
		t.Errorf("total USD = %s, want 130", o.TotalUSD)
	}
	// 2240000 + 130*1000
	if !o.CombinedKRW.Equal(d("2370000")) {
		t.Errorf("combined = %s, want 2370000", o.CombinedKRW)
	}
}

func TestOverview_KRWHoldingOnForeignTicker(t *testing.T) {
	// A KRW-denominated holding without a Korean ticker quotes in USD
	// and converts at the live rate.
	l := NewLedger()
	brokerage(t, l, "Toss", decimal.Zero, d("100"))
	if err := l.BuyStock("Toss", "TIGER ETF", "TIG", KRW, d("3"), nil, decimal.Zero); err != nil {
		// Zero-cost buy keeps the test focused on valuation.
		t.Fatal(err)
	}

	q := staticQuoter{prices: map[string]float64{"TIG": 2}, rate: 1300}
	o := l.Overview(q)
	if !o.StocksKRW.Equal(d("7800")) { // 2 USD * 1300 * 3
		t.Errorf("stocks KRW = %s, want 7800", o.StocksKRW)
	}
}

func TestOverview_FailedQuoteCountsZero(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", decimal.Zero, d("100"))
	if err := l.BuyStock("Toss", "Mystery", "", USD, d("10"), nil, d("5")); err != nil {
		t.Fatal(err)
	}

	o := l.Overview(staticQuoter{rate: 1300})
	// 50 left in the USD sentinel, holding values at price 0.
	if !o.StocksUSD.Equal(d("50")) {
		t.Errorf("stocks USD = %s, want 50", o.StocksUSD)
	}
}

func TestStockReport(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", d("10000"), d("100"))
	if err := l.BuyStock("Toss", "AAPL", "AAPL", USD, d("2"), []string{"#Investment Assets"}, d("50")); err != nil {
		t.Fatal(err)
	}

	q := staticQuoter{prices: map[string]float64{"AAPL": 60}, rate: 1000}
	reports := l.StockReport(q)
	if len(reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(reports))
	}
	r := reports[0]
	if r.Name != "Toss" {
		t.Errorf("name = %q", r.Name)
	}
	if len(r.Rows) != 3 {
		t.Fatalf("rows = %d, want 2 sentinels + 1 holding", len(r.Rows))
	}
	if !r.Rows[0].IsCash || r.Rows[0].Label != KRWDepositName {
		t.Errorf("first row = %+v, want the KRW sentinel", r.Rows[0])
	}
	last := r.Rows[2]
	if last.IsCash || last.Label != "AAPL" {
		t.Fatalf("last row = %+v, want the AAPL holding", last)
	}
	if !last.ValueUSD.Equal(d("120")) {
		t.Errorf("AAPL value = %s, want 120", last.ValueUSD)
	}
	if !r.ValueKRW.Equal(d("10000")) || !r.ValueUSD.Equal(d("120")) {
		t.Errorf("account value = %s / %s, want 10000 / 120", r.ValueKRW, r.ValueUSD)
	}
}
