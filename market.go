package networth

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"encoding/json"

	"github.com/PaesslerAG/jsonpath"
	gocache "github.com/patrickmn/go-cache"
)

// Quoter supplies live valuations: a unit price for a ticker, and the
// USD/KRW spot rate. Both are best-effort. A failed price lookup
// yields 0, a failed rate lookup yields DefaultUSDKRW, and neither
// ever surfaces an error to the caller.
type Quoter interface {
	Price(ticker string) float64
	ExchangeRate() float64
}

// DefaultUSDKRW is the exchange-rate fallback used when the market
// data provider is unreachable.
const DefaultUSDKRW = 1350.0

// usdkrwTicker is the provider symbol for the USD/KRW spot rate.
const usdkrwTicker = "KRW=X"

// IsKoreanTicker reports whether a ticker quotes on a Korean exchange
// and therefore prices directly in KRW.
func IsKoreanTicker(ticker string) bool {
	return strings.HasSuffix(ticker, ".KS") || strings.HasSuffix(ticker, ".KQ")
}

// yahooQuoter fetches spot prices from the Yahoo Finance chart
// endpoint. Quotes are memoized for a few minutes so that one
// aggregation pass hits the network at most once per ticker.
type yahooQuoter struct {
	client   *http.Client
	base     string
	cache    *gocache.Cache
	fallback float64
}

// NewYahooQuoter returns a Quoter backed by Yahoo Finance.
// fallbackRate replaces the USD/KRW rate when the provider is
// unreachable; pass 0 to use DefaultUSDKRW.
func NewYahooQuoter(fallbackRate float64) Quoter {
	if fallbackRate <= 0 {
		fallbackRate = DefaultUSDKRW
	}
	return &yahooQuoter{
		client:   &http.Client{Timeout: 10 * time.Second},
		base:     "https://query1.finance.yahoo.com/v8/finance/chart/",
		cache:    gocache.New(3*time.Minute, 10*time.Minute),
		fallback: fallbackRate,
	}
}

// Price returns the latest quote for ticker in the ticker's own
// currency, or 0 when the ticker is empty or the lookup fails.
func (q *yahooQuoter) Price(ticker string) float64 {
	if ticker == "" {
		return 0
	}
	if v, ok := q.cache.Get(ticker); ok {
		return v.(float64)
	}
	price, err := q.fetch(ticker)
	if err != nil {
		log.Printf("warning: no quote for %q: %v", ticker, err)
		return 0
	}
	q.cache.Set(ticker, price, gocache.DefaultExpiration)
	return price
}

// ExchangeRate returns the USD/KRW spot rate, or the configured
// fallback when the lookup fails.
func (q *yahooQuoter) ExchangeRate() float64 {
	if rate := q.Price(usdkrwTicker); rate > 0 {
		return rate
	}
	log.Printf("warning: no USD/KRW rate, falling back to %v", q.fallback)
	return q.fallback
}

func (q *yahooQuoter) fetch(ticker string) (float64, error) {
	addr := q.base + url.PathEscape(ticker) + "?range=1d&interval=1d"
	var jobj any
	if err := jwget(q.client, addr, &jobj); err != nil {
		return 0, err
	}
	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("cannot extract %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("quote for %q is not a number: %v", ticker, jval)
	}
	return val, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response
// into the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
