package networth

import "github.com/shopspring/decimal"

// Overview is the aggregated view of the whole ledger at current
// market prices. It is recomputed from scratch on every view and
// never written back: the booked totals inside the ledger only track
// cash movements, while these figures include live stock valuation.
type Overview struct {
	ExchangeRate float64

	LiquidKRW      int64
	ReceivablesKRW int64
	StocksKRW      decimal.Decimal
	StocksUSD      decimal.Decimal
	CryptoKRW      decimal.Decimal
	CryptoUSD      decimal.Decimal

	TotalKRW    decimal.Decimal
	TotalUSD    decimal.Decimal
	CombinedKRW decimal.Decimal
}

// Overview walks all categories, values every stock holding at the
// quoted price, converts the crypto USD total at the current rate,
// and combines everything into one KRW figure. It is a pure read:
// missing or zeroed parts of the tree simply contribute zero.
func (l *Ledger) Overview(q Quoter) Overview {
	o := Overview{
		ExchangeRate:   q.ExchangeRate(),
		LiquidKRW:      l.Liquid.TotalKRW,
		ReceivablesKRW: l.Receivables.TotalKRW,
	}
	rate := decimal.NewFromFloat(o.ExchangeRate)

	for _, a := range l.Stocks.Accounts {
		krw, usd := a.Value(q, o.ExchangeRate)
		o.StocksKRW = o.StocksKRW.Add(krw)
		o.StocksUSD = o.StocksUSD.Add(usd)
	}

	o.CryptoUSD = l.Crypto.TotalUSD
	o.CryptoKRW = o.CryptoUSD.Mul(rate)

	o.TotalKRW = decimal.NewFromInt(o.LiquidKRW + o.ReceivablesKRW).
		Add(o.StocksKRW).
		Add(o.CryptoKRW)
	o.TotalUSD = o.StocksUSD.Add(o.CryptoUSD)
	o.CombinedKRW = o.TotalKRW.Add(o.TotalUSD.Mul(rate))
	return o
}

// Value computes the account's display value in both currencies:
// sentinel cash plus quoted price times quantity for every holding.
// A KRW holding on a Korean exchange quotes directly in KRW; any
// other KRW holding quotes in USD and converts at the given rate.
func (a *StockAccount) Value(q Quoter, exchangeRate float64) (krw, usd decimal.Decimal) {
	for _, h := range a.Holdings {
		switch v := h.(type) {
		case *CashHolding:
			if v.Currency == KRW {
				krw = krw.Add(v.Amount)
			} else {
				usd = usd.Add(v.Amount)
			}
		case *StockHolding:
			price := decimal.NewFromFloat(q.Price(v.Ticker))
			if v.Currency == KRW {
				if !IsKoreanTicker(v.Ticker) {
					price = price.Mul(decimal.NewFromFloat(exchangeRate))
				}
				krw = krw.Add(price.Mul(v.Quantity))
			} else {
				usd = usd.Add(price.Mul(v.Quantity))
			}
		}
	}
	return krw, usd
}
