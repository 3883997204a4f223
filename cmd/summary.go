package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	totals  bool
	offline bool
	rate    float64
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the full net-worth summary" }
func (*summaryCmd) Usage() string {
	return `nwt summary [-totals] [-offline] [-rate <usdkrw>]

  Values every stock holding at the current market price, converts
  USD amounts at the live USD/KRW rate, and prints the combined
  report. -offline skips all quote lookups, -rate forces the
  conversion rate.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.totals, "totals", false, "Only print category totals, no per-line tables.")
	f.BoolVar(&c.offline, "offline", false, "Do not fetch quotes; prices are 0, the rate is the fallback.")
	f.Float64Var(&c.rate, "rate", 0, "Force the USD/KRW rate instead of fetching it.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}

	fallback := c.rate
	if fallback == 0 {
		fallback = loadConfig().FallbackRate
	}

	var q networth.Quoter
	if c.offline {
		q = offlineQuoter{rate: fallback}
	} else {
		q = networth.NewYahooQuoter(fallback)
		if c.rate > 0 {
			q = fixedRateQuoter{Quoter: q, rate: c.rate}
		}
	}

	printMarkdown(renderer.RenderSummary(renderer.NewSummary(l, q),
		renderer.SummaryRenderOptions{SkipDetails: c.totals}))

	return subcommands.ExitSuccess
}

// offlineQuoter quotes nothing: prices are 0 and the rate is fixed.
type offlineQuoter struct {
	rate float64
}

func (offlineQuoter) Price(string) float64 { return 0 }

func (q offlineQuoter) ExchangeRate() float64 {
	if q.rate > 0 {
		return q.rate
	}
	return networth.DefaultUSDKRW
}

// fixedRateQuoter fetches prices normally but pins the USD/KRW rate.
type fixedRateQuoter struct {
	networth.Quoter
	rate float64
}

func (q fixedRateQuoter) ExchangeRate() float64 { return q.rate }
