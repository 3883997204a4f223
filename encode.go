package networth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// This file contains the codec for the single stored asset file. The
// whole tree is read wholesale and written wholesale; there is no
// partial persistence.
//
// The encoding is plain JSON, pretty-printed for diffability, with
// non-ASCII text (the Korean sentinel names, account names) stored
// literally. Dynamic object keys — account and exchange names — sit
// next to scalar totals in the same object, and their order is
// significant to the owner, so both sides of the codec preserve key
// order: marshalling goes through jsonObjectWriter, unmarshalling
// walks the token stream.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeLedger writes the ledger to w in the canonical stored form:
// four-space indentation, literal Unicode, stable key order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(l)
}

// DecodeLedger reads a whole ledger from r. An empty stream decodes
// to a seeded empty ledger; after decoding, any missing bucket is
// created so every engine operation can rely on the fixed structure.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	l := &Ledger{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, l); err != nil {
			return nil, fmt.Errorf("cannot decode ledger: %w", err)
		}
	}
	l.normalize()
	return l, nil
}

func (l *Ledger) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("liquid_assets", &l.Liquid)
	w.Append("receivables_and_deposits", &l.Receivables)
	w.Append("stocks", &l.Stocks)
	w.Append("cryptocurrency", &l.Crypto)
	w.Append("summary", &l.Summary)
	return w.MarshalJSON()
}

func (l *Ledger) UnmarshalJSON(data []byte) error {
	var jl struct {
		Liquid      json.RawMessage `json:"liquid_assets"`
		Receivables json.RawMessage `json:"receivables_and_deposits"`
		Stocks      json.RawMessage `json:"stocks"`
		Crypto      json.RawMessage `json:"cryptocurrency"`
		Summary     json.RawMessage `json:"summary"`
	}
	if err := json.Unmarshal(data, &jl); err != nil {
		return err
	}
	// A category absent from the file is simply an empty one.
	for _, part := range []struct {
		raw json.RawMessage
		v   json.Unmarshaler
	}{
		{jl.Liquid, &l.Liquid},
		{jl.Receivables, &l.Receivables},
		{jl.Stocks, &l.Stocks},
		{jl.Crypto, &l.Crypto},
		{jl.Summary, &l.Summary},
	} {
		if len(part.raw) == 0 {
			continue
		}
		if err := part.v.UnmarshalJSON(part.raw); err != nil {
			return err
		}
	}
	return nil
}

func (c *CashCategory) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, b := range c.Buckets {
		w.Append(b.Key, b)
	}
	w.Append("total_krw", c.TotalKRW)
	return w.MarshalJSON()
}

func (c *CashCategory) UnmarshalJSON(data []byte) error {
	return walkObject(data, func(key string, dec *json.Decoder) error {
		if key == "total_krw" {
			return dec.Decode(&c.TotalKRW)
		}
		b := &Bucket{Key: key}
		if err := dec.Decode(b); err != nil {
			return fmt.Errorf("bucket %q: %w", key, err)
		}
		c.Buckets = append(c.Buckets, b)
		return nil
	})
}

func (s *StockCategory) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("total_krw", s.TotalKRW)
	w.Append("total_usd", s.TotalUSD)
	for _, a := range s.Accounts {
		w.Append(a.Name, a.Holdings)
	}
	return w.MarshalJSON()
}

func (s *StockCategory) UnmarshalJSON(data []byte) error {
	return walkObject(data, func(key string, dec *json.Decoder) error {
		switch key {
		case "total_krw":
			return dec.Decode(&s.TotalKRW)
		case "total_usd":
			return dec.Decode(&s.TotalUSD)
		}
		var raws []json.RawMessage
		if err := dec.Decode(&raws); err != nil {
			return fmt.Errorf("stock account %q: %w", key, err)
		}
		holdings, err := decodeHoldings(raws)
		if err != nil {
			return fmt.Errorf("stock account %q: %w", key, err)
		}
		s.Accounts = append(s.Accounts, &StockAccount{Name: key, Holdings: holdings})
		return nil
	})
}

// decodeHoldings dispatches each record on the presence of a symbol:
// tradable positions carry one, cash sentinels carry a name and a
// single-currency amount.
func decodeHoldings(raws []json.RawMessage) ([]Holding, error) {
	holdings := make([]Holding, 0, len(raws))
	for _, raw := range raws {
		var probe struct {
			Symbol *string `json:"symbol"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return nil, err
		}
		if probe.Symbol != nil {
			var js struct {
				Symbol   string          `json:"symbol"`
				Ticker   string          `json:"ticker"`
				Currency string          `json:"currency"`
				Quantity decimal.Decimal `json:"quantity"`
				Tags     []string        `json:"tags"`
			}
			if err := json.Unmarshal(raw, &js); err != nil {
				return nil, err
			}
			if js.Currency == "" {
				js.Currency = USD
			}
			if js.Tags == nil {
				js.Tags = []string{}
			}
			holdings = append(holdings, &StockHolding{
				Symbol:   js.Symbol,
				Ticker:   js.Ticker,
				Currency: js.Currency,
				Quantity: js.Quantity,
				Tags:     js.Tags,
			})
			continue
		}
		var jc struct {
			Name      string           `json:"name"`
			AmountKRW *decimal.Decimal `json:"amount_krw"`
			AmountUSD *decimal.Decimal `json:"amount_usd"`
			Tags      []string         `json:"tags"`
		}
		if err := json.Unmarshal(raw, &jc); err != nil {
			return nil, err
		}
		c := &CashHolding{Name: jc.Name, Currency: KRW, Tags: jc.Tags}
		if jc.AmountUSD != nil {
			c.Currency = USD
			c.Amount = *jc.AmountUSD
		} else if jc.AmountKRW != nil {
			c.Amount = *jc.AmountKRW
		}
		if c.Tags == nil {
			c.Tags = []string{}
		}
		holdings = append(holdings, c)
	}
	return holdings, nil
}

func (c *CashHolding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", c.Name)
	if c.Currency == USD {
		w.Append("amount_usd", c.Amount)
	} else {
		w.Append("amount_krw", c.Amount)
	}
	w.Append("tags", c.Tags)
	return w.MarshalJSON()
}

func (s *StockHolding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", s.Symbol)
	w.Append("ticker", s.Ticker)
	w.Append("currency", s.Currency)
	w.Append("quantity", s.Quantity)
	w.Append("tags", s.Tags)
	return w.MarshalJSON()
}

func (c *CryptoCategory) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("total_usd", c.TotalUSD)
	for _, e := range c.Exchanges {
		w.Append(e.Name, e.Coins)
	}
	return w.MarshalJSON()
}

func (c *CryptoCategory) UnmarshalJSON(data []byte) error {
	return walkObject(data, func(key string, dec *json.Decoder) error {
		if key == "total_usd" {
			return dec.Decode(&c.TotalUSD)
		}
		var coins []json.RawMessage
		if err := dec.Decode(&coins); err != nil {
			return fmt.Errorf("exchange %q: %w", key, err)
		}
		if coins == nil {
			coins = []json.RawMessage{}
		}
		c.Exchanges = append(c.Exchanges, &CryptoExchange{Name: key, Coins: coins})
		return nil
	})
}

func (s *Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("liquid_assets_krw", s.LiquidKRW)
	w.Append("receivables_and_deposits_krw", s.ReceivablesKRW)
	w.Append("converted_total_krw", s.ConvertedKRW)
	return w.MarshalJSON()
}

func (s *Summary) UnmarshalJSON(data []byte) error {
	var js struct {
		LiquidKRW      int64 `json:"liquid_assets_krw"`
		ReceivablesKRW int64 `json:"receivables_and_deposits_krw"`
		ConvertedKRW   int64 `json:"converted_total_krw"`
	}
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	s.LiquidKRW = js.LiquidKRW
	s.ReceivablesKRW = js.ReceivablesKRW
	s.ConvertedKRW = js.ConvertedKRW
	return nil
}

// walkObject decodes a JSON object one key at a time, in stream
// order, handing each value to decode while the decoder is positioned
// on it.
func walkObject(data []byte, decode func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", tok)
		}
		if err := decode(key, dec); err != nil {
			return err
		}
	}
	_, err = dec.Token() // closing brace
	return err
}
