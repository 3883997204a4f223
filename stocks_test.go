package networth

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateStockAccount(t *testing.T) {
	l := NewLedger()
	if err := l.CreateStockAccount("Toss"); err != nil {
		t.Fatalf("CreateStockAccount() error = %v", err)
	}

	a := l.Stocks.account("Toss")
	if a == nil {
		t.Fatal("account not created")
	}
	if len(a.Holdings) != 2 {
		t.Fatalf("holdings = %d, want the two cash sentinels", len(a.Holdings))
	}
	krw := a.sentinel(KRW)
	usd := a.sentinel(USD)
	if krw == nil || usd == nil {
		t.Fatal("missing a cash sentinel")
	}
	if krw.Name != KRWDepositName || usd.Name != USDDepositName {
		t.Errorf("sentinel names = %q, %q", krw.Name, usd.Name)
	}
	if !krw.Amount.IsZero() || !usd.Amount.IsZero() {
		t.Errorf("sentinels not seeded at zero: %s, %s", krw.Amount, usd.Amount)
	}

	if err := l.CreateStockAccount("Toss"); !errors.Is(err, ErrExists) {
		t.Errorf("duplicate create error = %v, want ErrExists", err)
	}
}

func TestBuyStock(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", decimal.Zero, d("100"))

	err := l.BuyStock("Toss", "AAPL", "AAPL", USD, d("10"), nil, d("5"))
	if err != nil {
		t.Fatalf("BuyStock() error = %v", err)
	}

	a := l.Stocks.account("Toss")
	if got := a.sentinel(USD).Amount; !got.Equal(d("50")) {
		t.Errorf("USD deposit = %s, want 50", got)
	}
	if !l.Stocks.TotalUSD.Equal(d("50")) {
		t.Errorf("total_usd = %s, want 50", l.Stocks.TotalUSD)
	}
	h := a.holding("AAPL")
	if h == nil || !h.Quantity.Equal(d("10")) {
		t.Fatalf("holding = %+v, want quantity 10", h)
	}
}

func TestBuyStock_TopUpIgnoresNewTags(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", decimal.Zero, d("1000"))
	if err := l.BuyStock("Toss", "AAPL", "AAPL", USD, d("10"), []string{"#Investment Assets"}, d("5")); err != nil {
		t.Fatal(err)
	}

	if err := l.BuyStock("Toss", "AAPL", "ignored", KRW, d("5"), []string{"#Safe Assets"}, d("4")); err != nil {
		t.Fatalf("top-up BuyStock() error = %v", err)
	}

	a := l.Stocks.account("Toss")
	h := a.holding("AAPL")
	if !h.Quantity.Equal(d("15")) {
		t.Errorf("quantity = %s, want 15", h.Quantity)
	}
	if h.Ticker != "AAPL" || h.Currency != USD {
		t.Errorf("ticker/currency changed on top-up: %q %q", h.Ticker, h.Currency)
	}
	if len(h.Tags) != 1 || h.Tags[0] != "#Investment Assets" {
		t.Errorf("tags = %v, want creation tags kept", h.Tags)
	}
	// The holding's own currency pays for the top-up: 1000 - 50 - 20.
	if got := a.sentinel(USD).Amount; !got.Equal(d("930")) {
		t.Errorf("USD deposit = %s, want 930", got)
	}
	if got := a.sentinel(KRW).Amount; !got.IsZero() {
		t.Errorf("KRW deposit = %s, want untouched 0", got)
	}
}

func TestBuyStock_Insufficient(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", decimal.Zero, d("40"))

	err := l.BuyStock("Toss", "AAPL", "AAPL", USD, d("10"), nil, d("5"))
	if !errors.Is(err, ErrInsufficient) {
		t.Fatalf("BuyStock() error = %v, want ErrInsufficient", err)
	}
	a := l.Stocks.account("Toss")
	if got := a.sentinel(USD).Amount; !got.Equal(d("40")) {
		t.Errorf("deposit = %s, want unchanged 40", got)
	}
	if a.holding("AAPL") != nil {
		t.Error("holding created despite failed buy")
	}
	if !l.Stocks.TotalUSD.Equal(d("40")) {
		t.Errorf("total_usd = %s, want unchanged 40", l.Stocks.TotalUSD)
	}
}

func TestBuyStock_MissingAccount(t *testing.T) {
	l := NewLedger()
	err := l.BuyStock("nope", "AAPL", "AAPL", USD, d("1"), nil, d("1"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("BuyStock() error = %v, want ErrNotFound", err)
	}
}

func TestSellStock(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", decimal.Zero, d("100"))
	if err := l.BuyStock("Toss", "AAPL", "AAPL", USD, d("10"), nil, d("5")); err != nil {
		t.Fatal(err)
	}

	if err := l.SellStock("Toss", "AAPL", d("4"), d("6")); err != nil {
		t.Fatalf("SellStock() error = %v", err)
	}

	a := l.Stocks.account("Toss")
	if got := a.holding("AAPL").Quantity; !got.Equal(d("6")) {
		t.Errorf("quantity = %s, want 6", got)
	}
	// 100 - 50 cost + 24 proceeds
	if got := a.sentinel(USD).Amount; !got.Equal(d("74")) {
		t.Errorf("deposit = %s, want 74", got)
	}
	if !l.Stocks.TotalUSD.Equal(d("74")) {
		t.Errorf("total_usd = %s, want 74", l.Stocks.TotalUSD)
	}
}

func TestSellStock_Insufficient(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", decimal.Zero, d("100"))
	if err := l.BuyStock("Toss", "AAPL", "AAPL", USD, d("5"), nil, d("5")); err != nil {
		t.Fatal(err)
	}

	err := l.SellStock("Toss", "AAPL", d("10"), d("6"))
	if !errors.Is(err, ErrInsufficient) {
		t.Fatalf("SellStock() error = %v, want ErrInsufficient", err)
	}
	if got := l.Stocks.account("Toss").holding("AAPL").Quantity; !got.Equal(d("5")) {
		t.Errorf("quantity = %s, want unchanged 5", got)
	}
}

func TestSellStock_ToZeroKeepsHolding(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", d("100000"), decimal.Zero)
	if err := l.BuyStock("Toss", "삼성전자", "005930.KS", KRW, d("1"), nil, d("70000")); err != nil {
		t.Fatal(err)
	}

	if err := l.SellStock("Toss", "삼성전자", d("1"), d("72000")); err != nil {
		t.Fatalf("SellStock() error = %v", err)
	}
	h := l.Stocks.account("Toss").holding("삼성전자")
	if h == nil {
		t.Fatal("zero-quantity holding deleted by sell")
	}
	if !h.Quantity.IsZero() {
		t.Errorf("quantity = %s, want 0", h.Quantity)
	}
}

func TestCashOperations(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", decimal.Zero, decimal.Zero)

	if err := l.DepositCash("Toss", KRW, d("50000")); err != nil {
		t.Fatalf("DepositCash() error = %v", err)
	}
	if err := l.WithdrawCash("Toss", KRW, d("20000")); err != nil {
		t.Fatalf("WithdrawCash() error = %v", err)
	}
	a := l.Stocks.account("Toss")
	if got := a.sentinel(KRW).Amount; !got.Equal(d("30000")) {
		t.Errorf("deposit = %s, want 30000", got)
	}
	if !l.Stocks.TotalKRW.Equal(d("30000")) {
		t.Errorf("total_krw = %s, want 30000", l.Stocks.TotalKRW)
	}

	if err := l.WithdrawCash("Toss", KRW, d("99999")); !errors.Is(err, ErrInsufficient) {
		t.Errorf("over-withdraw error = %v, want ErrInsufficient", err)
	}
	if err := l.DepositCash("nope", KRW, d("1")); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown account error = %v, want ErrNotFound", err)
	}
}

func TestExchangeCash(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", d("1350000"), decimal.Zero)

	if err := l.ExchangeCash("Toss", KRW, USD, d("1350000"), d("1000")); err != nil {
		t.Fatalf("ExchangeCash() error = %v", err)
	}
	a := l.Stocks.account("Toss")
	if got := a.sentinel(KRW).Amount; !got.IsZero() {
		t.Errorf("KRW deposit = %s, want 0", got)
	}
	if got := a.sentinel(USD).Amount; !got.Equal(d("1000")) {
		t.Errorf("USD deposit = %s, want 1000", got)
	}
	if !l.Stocks.TotalKRW.IsZero() || !l.Stocks.TotalUSD.Equal(d("1000")) {
		t.Errorf("root totals = %s / %s, want 0 / 1000", l.Stocks.TotalKRW, l.Stocks.TotalUSD)
	}
}

func TestExchangeCash_Insufficient(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", d("1000"), decimal.Zero)

	err := l.ExchangeCash("Toss", KRW, USD, d("2000"), d("1.5"))
	if !errors.Is(err, ErrInsufficient) {
		t.Fatalf("ExchangeCash() error = %v, want ErrInsufficient", err)
	}
	a := l.Stocks.account("Toss")
	if got := a.sentinel(KRW).Amount; !got.Equal(d("1000")) {
		t.Errorf("KRW deposit = %s, want unchanged 1000", got)
	}
	if got := a.sentinel(USD).Amount; !got.IsZero() {
		t.Errorf("USD deposit = %s, want unchanged 0", got)
	}
}

func TestRemoveZeroQuantity(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", decimal.Zero, d("100"))
	if err := l.BuyStock("Toss", "AAPL", "AAPL", USD, d("10"), nil, d("5")); err != nil {
		t.Fatal(err)
	}

	// Still has 10 shares: not removable.
	if err := l.RemoveZeroQuantity("Toss", "AAPL"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("RemoveZeroQuantity() on live holding error = %v, want ErrNotFound", err)
	}

	if err := l.SellStock("Toss", "AAPL", d("10"), d("5")); err != nil {
		t.Fatal(err)
	}
	if err := l.RemoveZeroQuantity("Toss", "AAPL"); err != nil {
		t.Fatalf("RemoveZeroQuantity() error = %v", err)
	}
	if l.Stocks.account("Toss").holding("AAPL") != nil {
		t.Error("holding still present after removal")
	}
}

func TestDeleteStockAccount(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", d("50000"), d("100"))
	brokerage(t, l, "KB증권", d("10000"), decimal.Zero)

	if err := l.DeleteStockAccount("Toss"); err != nil {
		t.Fatalf("DeleteStockAccount() error = %v", err)
	}
	if l.Stocks.account("Toss") != nil {
		t.Error("account still present")
	}
	if !l.Stocks.TotalKRW.Equal(d("10000")) {
		t.Errorf("total_krw = %s, want 10000", l.Stocks.TotalKRW)
	}
	if !l.Stocks.TotalUSD.IsZero() {
		t.Errorf("total_usd = %s, want 0", l.Stocks.TotalUSD)
	}
	if err := l.DeleteStockAccount("Toss"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteStockAccount_LeavesStockValueOut(t *testing.T) {
	// Root totals track cash movements only, so deleting an account
	// with live holdings subtracts only its sentinel balances.
	l := NewLedger()
	brokerage(t, l, "Toss", decimal.Zero, d("100"))
	if err := l.BuyStock("Toss", "AAPL", "AAPL", USD, d("10"), nil, d("5")); err != nil {
		t.Fatal(err)
	}

	if err := l.DeleteStockAccount("Toss"); err != nil {
		t.Fatalf("DeleteStockAccount() error = %v", err)
	}
	// 100 was deposited, 50 spent on AAPL, 50 left in the sentinel:
	// delete removes exactly that 50.
	if !l.Stocks.TotalUSD.IsZero() {
		t.Errorf("total_usd = %s, want 0", l.Stocks.TotalUSD)
	}
}

func TestRootTotalsOnlyMoveThroughCash(t *testing.T) {
	l := NewLedger()
	brokerage(t, l, "Toss", decimal.Zero, d("100"))
	if err := l.BuyStock("Toss", "AAPL", "AAPL", USD, d("10"), nil, d("5")); err != nil {
		t.Fatal(err)
	}
	before := l.Stocks.TotalUSD

	// Valuation passes never touch the booked totals.
	q := staticQuoter{prices: map[string]float64{"AAPL": 173.5}, rate: 1400}
	l.Overview(q)
	l.StockReport(q)

	if !l.Stocks.TotalUSD.Equal(before) {
		t.Errorf("total_usd moved from %s to %s on valuation", before, l.Stocks.TotalUSD)
	}
}
