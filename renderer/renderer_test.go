package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/networth"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// staticQuoter serves fixed prices in tests.
type staticQuoter struct {
	prices map[string]float64
	rate   float64
}

func (q staticQuoter) Price(ticker string) float64 { return q.prices[ticker] }
func (q staticQuoter) ExchangeRate() float64       { return q.rate }

// fixtureLedger builds a small ledger covering all four categories.
func fixtureLedger(t *testing.T) *networth.Ledger {
	t.Helper()
	l := networth.NewLedger()
	if _, err := l.AddAccount(networth.Checking, "KB", 1_000_000, []string{"#Checking Account"}); err != nil {
		t.Fatal(err)
	}
	if _, err := l.LoanOut(networth.Receivable, "동생", 200_000, nil); err != nil {
		t.Fatal(err)
	}
	if err := l.CreateStockAccount("Toss"); err != nil {
		t.Fatal(err)
	}
	if err := l.DepositCash("Toss", networth.USD, decimal.NewFromInt(100)); err != nil {
		t.Fatal(err)
	}
	if err := l.BuyStock("Toss", "AAPL", "AAPL", networth.USD, decimal.NewFromInt(2), nil, decimal.NewFromInt(40)); err != nil {
		t.Fatal(err)
	}
	if err := l.AddExchange("Upbit"); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestRenderSummary(t *testing.T) {
	l := fixtureLedger(t)
	q := staticQuoter{prices: map[string]float64{"AAPL": 50}, rate: 1300}

	out := RenderSummary(NewSummary(l, q), SummaryRenderOptions{})

	if strings.Contains(out, "error") {
		t.Fatalf("render failed:\n%s", out)
	}
	for _, want := range []string{
		"# Net Worth Summary",
		"## Liquid Assets",
		"## Receivables & Deposits",
		"## Stocks",
		"## Cryptocurrency",
		"KB",
		"동생",
		"### Toss",
		"원화 예수금",
		"달러 예수금",
		"AAPL",
		"Upbit",
		"₩1,000,000",  // checking account
		"$100.00",     // 2 AAPL at $50
		"$20.00",      // USD sentinel after the buy
		"USD/KRW rate: 1300.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummary_SkipDetails(t *testing.T) {
	l := fixtureLedger(t)
	q := staticQuoter{prices: map[string]float64{"AAPL": 50}, rate: 1300}

	out := RenderSummary(NewSummary(l, q), SummaryRenderOptions{SkipDetails: true})

	if strings.Contains(out, "KB") || strings.Contains(out, "AAPL") {
		t.Errorf("totals-only summary still lists details:\n%s", out)
	}
	if !strings.Contains(out, "## Liquid Assets") || !strings.Contains(out, "## Stocks") {
		t.Errorf("totals-only summary lost its sections:\n%s", out)
	}
}

// TestRenderSummary_ValidMarkdown parses the rendered report and
// checks the document structure instead of string fragments.
func TestRenderSummary_ValidMarkdown(t *testing.T) {
	l := fixtureLedger(t)
	out := RenderSummary(NewSummary(l, staticQuoter{rate: 1300}), SummaryRenderOptions{})

	source := []byte(out)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var h1, h2 int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			switch h.Level {
			case 1:
				h1++
			case 2:
				h2++
			}
		}
		return ast.WalkContinue, nil
	})
	if h1 != 1 {
		t.Errorf("got %d top-level headings, want 1", h1)
	}
	if h2 != 4 {
		t.Errorf("got %d section headings, want 4 (liquid, receivables, stocks, crypto)", h2)
	}
}

func TestRenderSummary_EmptyLedger(t *testing.T) {
	out := RenderSummary(NewSummary(networth.NewLedger(), staticQuoter{rate: 1300}), SummaryRenderOptions{})
	if strings.Contains(out, "error") {
		t.Fatalf("render failed:\n%s", out)
	}
	if !strings.Contains(out, "₩0") {
		t.Errorf("empty ledger should report zero totals:\n%s", out)
	}
}
