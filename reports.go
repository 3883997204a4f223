package networth

import "github.com/shopspring/decimal"

// Report types are read-only snapshots computed for display. Nothing
// here writes back to the ledger.

// HoldingRow is one display line inside a stock account: either a
// cash sentinel or a valued position.
type HoldingRow struct {
	IsCash   bool
	Label    string // sentinel name or stock symbol
	Ticker   string
	Currency string
	Quantity decimal.Decimal // cash amount for sentinel rows
	PriceKRW decimal.Decimal
	PriceUSD decimal.Decimal
	ValueKRW decimal.Decimal
	ValueUSD decimal.Decimal
	Tags     []string
}

// StockAccountReport is the valued view of one brokerage account.
type StockAccountReport struct {
	Name     string
	Rows     []HoldingRow
	ValueKRW decimal.Decimal
	ValueUSD decimal.Decimal
}

// StockReport values every account at current prices, one row per
// holding, mirroring the valuation rules of Overview.
func (l *Ledger) StockReport(q Quoter) []StockAccountReport {
	rate := q.ExchangeRate()
	drate := decimal.NewFromFloat(rate)

	reports := make([]StockAccountReport, 0, len(l.Stocks.Accounts))
	for _, a := range l.Stocks.Accounts {
		r := StockAccountReport{Name: a.Name}
		for _, h := range a.Holdings {
			switch v := h.(type) {
			case *CashHolding:
				row := HoldingRow{
					IsCash:   true,
					Label:    v.Name,
					Currency: v.Currency,
					Quantity: v.Amount,
					Tags:     v.Tags,
				}
				if v.Currency == KRW {
					row.ValueKRW = v.Amount
					r.ValueKRW = r.ValueKRW.Add(v.Amount)
				} else {
					row.ValueUSD = v.Amount
					r.ValueUSD = r.ValueUSD.Add(v.Amount)
				}
				r.Rows = append(r.Rows, row)
			case *StockHolding:
				row := HoldingRow{
					Label:    v.Symbol,
					Ticker:   v.Ticker,
					Currency: v.Currency,
					Quantity: v.Quantity,
					Tags:     v.Tags,
				}
				price := decimal.NewFromFloat(q.Price(v.Ticker))
				if v.Currency == KRW {
					if !IsKoreanTicker(v.Ticker) {
						price = price.Mul(drate)
					}
					row.PriceKRW = price
					row.ValueKRW = price.Mul(v.Quantity)
					r.ValueKRW = r.ValueKRW.Add(row.ValueKRW)
				} else {
					row.PriceUSD = price
					row.ValueUSD = price.Mul(v.Quantity)
					r.ValueUSD = r.ValueUSD.Add(row.ValueUSD)
				}
				r.Rows = append(r.Rows, row)
			}
		}
		reports = append(reports, r)
	}
	return reports
}
