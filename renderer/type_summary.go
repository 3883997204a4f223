package renderer

import (
	"strings"

	"github.com/etnz/networth"
)

// Summary is the render view of a full net-worth report. Amounts are
// carried as networth.Money so the templates only ever call String()
// and always get the right currency symbol and grouping.
type Summary struct {
	// ExchangeRate is the USD/KRW rate every conversion below used.
	ExchangeRate float64 `json:"exchangeRate"`

	Liquid      CashSection   `json:"liquid"`
	Receivables CashSection   `json:"receivables"`
	Stocks      StockSection  `json:"stocks"`
	Crypto      CryptoSection `json:"crypto"`

	// TotalKRW is every category combined into won, USD converted at
	// ExchangeRate.
	TotalKRW networth.Money `json:"totalKRW"`
	// TotalUSD is the sum of the USD-denominated parts, unconverted.
	TotalUSD networth.Money `json:"totalUSD"`
}

// CashSection is one won-denominated category: liquid assets or
// receivables and deposits.
type CashSection struct {
	Title string         `json:"title"`
	Total networth.Money `json:"total"`
	Lines []CashLine     `json:"lines"`
}

// CashLine is a single named balance inside a cash section.
type CashLine struct {
	Kind   string         `json:"kind"` // sub-category display name
	Name   string         `json:"name"`
	Amount networth.Money `json:"amount"`
	Tags   string         `json:"tags,omitempty"`
}

// StockSection lists every brokerage account with its holdings valued
// at current prices.
type StockSection struct {
	Valued
	Accounts []StockAccount `json:"accounts"`
}

// StockAccount is one valued brokerage account.
type StockAccount struct {
	Name string `json:"name"`
	Valued
	Rows []StockRow `json:"rows"`
}

// StockRow is one line in an account: cash rows carry no ticker or
// quantity, position rows carry both plus the unit price.
type StockRow struct {
	Label    string         `json:"label"`
	Ticker   string         `json:"ticker,omitempty"`
	Quantity string         `json:"quantity,omitempty"`
	Price    networth.Money `json:"price"`
	Value    networth.Money `json:"value"`
}

// Valued pairs the two reporting currencies of a valued block.
type Valued struct {
	KRW networth.Money `json:"krw"`
	USD networth.Money `json:"usd"`
}

// CryptoSection lists the exchanges next to the synced USD total.
type CryptoSection struct {
	Valued
	Exchanges []CryptoExchange `json:"exchanges"`
}

// CryptoExchange is one exchange and how many coin records it holds.
type CryptoExchange struct {
	Name  string `json:"name"`
	Coins int    `json:"coins"`
}

var bucketTitles = map[string]string{
	"checking_account":    "Checking",
	"savings_account":     "Savings",
	"installment_savings": "Installment Savings",
	"receivables":         "Receivables",
	"deposits":            "Deposits",
}

// NewSummary values the whole ledger with the given quoter and builds
// the render view.
func NewSummary(l *networth.Ledger, q networth.Quoter) *Summary {
	o := l.Overview(q)

	s := &Summary{
		ExchangeRate: o.ExchangeRate,
		Liquid:       newCashSection("Liquid Assets", &l.Liquid),
		Receivables:  newCashSection("Receivables & Deposits", &l.Receivables),
		Crypto: newCryptoSection(l, o),
		TotalKRW: networth.M(o.CombinedKRW, networth.KRW),
		TotalUSD: networth.M(o.TotalUSD, networth.USD),
	}

	s.Stocks.KRW = networth.M(o.StocksKRW, networth.KRW)
	s.Stocks.USD = networth.M(o.StocksUSD, networth.USD)
	s.Stocks.Accounts = make([]StockAccount, 0)
	for _, r := range l.StockReport(q) {
		a := StockAccount{
			Name: r.Name,
			Valued: Valued{
				KRW: networth.M(r.ValueKRW, networth.KRW),
				USD: networth.M(r.ValueUSD, networth.USD),
			},
			Rows: make([]StockRow, 0, len(r.Rows)),
		}
		for _, row := range r.Rows {
			a.Rows = append(a.Rows, newStockRow(row))
		}
		s.Stocks.Accounts = append(s.Stocks.Accounts, a)
	}
	return s
}

func newCashSection(title string, c *networth.CashCategory) CashSection {
	s := CashSection{
		Title: title,
		Total: networth.Won(c.TotalKRW),
		Lines: make([]CashLine, 0),
	}
	for _, b := range c.Buckets {
		title := bucketTitles[b.Key]
		if title == "" {
			title = b.Key
		}
		for _, e := range b.Details {
			s.Lines = append(s.Lines, CashLine{
				Kind:   title,
				Name:   e.Name,
				Amount: networth.Won(e.AmountKRW),
				Tags:   strings.Join(e.Tags, " "),
			})
		}
	}
	return s
}

func newCryptoSection(l *networth.Ledger, o networth.Overview) CryptoSection {
	s := CryptoSection{
		Valued: Valued{
			KRW: networth.M(o.CryptoKRW, networth.KRW),
			USD: networth.M(o.CryptoUSD, networth.USD),
		},
		Exchanges: make([]CryptoExchange, 0, len(l.Crypto.Exchanges)),
	}
	for _, e := range l.Crypto.Exchanges {
		s.Exchanges = append(s.Exchanges, CryptoExchange{Name: e.Name, Coins: len(e.Coins)})
	}
	return s
}

func newStockRow(r networth.HoldingRow) StockRow {
	row := StockRow{Label: r.Label}
	if r.IsCash {
		row.Value = networth.M(r.Quantity, r.Currency)
		return row
	}
	row.Ticker = r.Ticker
	row.Quantity = r.Quantity.String()
	if r.Currency == networth.KRW {
		row.Price = networth.M(r.PriceKRW, networth.KRW)
		row.Value = networth.M(r.ValueKRW, networth.KRW)
	} else {
		row.Price = networth.M(r.PriceUSD, networth.USD)
		row.Value = networth.M(r.ValueUSD, networth.USD)
	}
	return row
}
