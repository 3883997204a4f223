package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// parseCurrency validates the -c flag shared by the stock commands.
func parseCurrency(s string) (string, error) {
	switch s {
	case networth.KRW, networth.USD:
		return s, nil
	default:
		return "", fmt.Errorf("unsupported currency %q (want %s or %s)", s, networth.KRW, networth.USD)
	}
}

// parsePositive parses a strictly positive decimal flag value.
func parsePositive(flagName, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("-%s is required", flagName)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("-%s: %w", flagName, err)
	}
	if !v.IsPositive() {
		return decimal.Zero, fmt.Errorf("-%s must be a positive amount", flagName)
	}
	return v, nil
}

type newAccountCmd struct {
	name string
}

func (*newAccountCmd) Name() string     { return "new-account" }
func (*newAccountCmd) Synopsis() string { return "create a brokerage account" }
func (*newAccountCmd) Usage() string {
	return `nwt new-account -n <name>

  Creates a brokerage account with empty KRW and USD cash balances.
`
}

func (c *newAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Account name.")
}

func (c *newAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n is required")
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.CreateStockAccount(c.name); err != nil {
			return err
		}
		fmt.Printf("Created brokerage account %q\n", c.name)
		return nil
	})
}

type buyCmd struct {
	account  string
	symbol   string
	ticker   string
	currency string
	quantity string
	price    string
	tags     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy stock with an account's cash balance" }
func (*buyCmd) Usage() string {
	return `nwt buy -n <account> -s <symbol> [-ticker <ticker>] [-c <currency>] -q <quantity> -p <price>

  Adds quantity to the named holding and pays quantity times price out
  of the matching cash balance. Buying more of an existing holding
  spends the holding's own currency, whatever -c says.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "n", "", "Brokerage account name.")
	f.StringVar(&c.symbol, "s", "", "Display name of the holding, e.g. 삼성전자.")
	f.StringVar(&c.ticker, "ticker", "", "Quote ticker, e.g. 005930.KS or AAPL. Optional.")
	f.StringVar(&c.currency, "c", networth.USD, "Settlement currency: KRW or USD.")
	f.StringVar(&c.quantity, "q", "", "Number of shares, fractional allowed.")
	f.StringVar(&c.price, "p", "", "Unit price in the settlement currency.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags, only used when the holding is new.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -s is required")
		return subcommands.ExitUsageError
	}
	currency, err := parseCurrency(c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	quantity, err := parsePositive("q", c.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	price, err := parsePositive("p", c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.BuyStock(c.account, c.symbol, c.ticker, currency, quantity, splitTags(c.tags), price); err != nil {
			return err
		}
		fmt.Printf("Bought %s %s at %s in %q\n", quantity, c.symbol, networth.M(price, currency), c.account)
		return nil
	})
}

type sellCmd struct {
	account  string
	symbol   string
	quantity string
	price    string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell stock into an account's cash balance" }
func (*sellCmd) Usage() string {
	return `nwt sell -n <account> -s <symbol> -q <quantity> -p <price>

  Removes quantity from the holding and credits quantity times price
  to the cash balance of the holding's currency. The holding stays
  listed at zero quantity until pruned.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "n", "", "Brokerage account name.")
	f.StringVar(&c.symbol, "s", "", "Display name of the holding.")
	f.StringVar(&c.quantity, "q", "", "Number of shares, fractional allowed.")
	f.StringVar(&c.price, "p", "", "Unit price in the holding's currency.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quantity, err := parsePositive("q", c.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	price, err := parsePositive("p", c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.SellStock(c.account, c.symbol, quantity, price); err != nil {
			return err
		}
		fmt.Printf("Sold %s %s in %q\n", quantity, c.symbol, c.account)
		return nil
	})
}

type cashInCmd struct {
	account  string
	currency string
	amount   string
}

func (*cashInCmd) Name() string     { return "cash-in" }
func (*cashInCmd) Synopsis() string { return "deposit cash into a brokerage account" }
func (*cashInCmd) Usage() string {
	return `nwt cash-in -n <account> [-c <currency>] -a <amount>

  Adds cash to the account's KRW or USD balance.
`
}

func (c *cashInCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "n", "", "Brokerage account name.")
	f.StringVar(&c.currency, "c", networth.KRW, "Currency: KRW or USD.")
	f.StringVar(&c.amount, "a", "", "Amount to deposit.")
}

func (c *cashInCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	currency, err := parseCurrency(c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	amount, err := parsePositive("a", c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.DepositCash(c.account, currency, amount); err != nil {
			return err
		}
		fmt.Printf("Deposited %s into %q\n", networth.M(amount, currency), c.account)
		return nil
	})
}

type cashOutCmd struct {
	account  string
	currency string
	amount   string
}

func (*cashOutCmd) Name() string     { return "cash-out" }
func (*cashOutCmd) Synopsis() string { return "withdraw cash from a brokerage account" }
func (*cashOutCmd) Usage() string {
	return `nwt cash-out -n <account> [-c <currency>] -a <amount>

  Takes cash out of the account's KRW or USD balance. Fails if the
  balance is insufficient.
`
}

func (c *cashOutCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "n", "", "Brokerage account name.")
	f.StringVar(&c.currency, "c", networth.KRW, "Currency: KRW or USD.")
	f.StringVar(&c.amount, "a", "", "Amount to withdraw.")
}

func (c *cashOutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	currency, err := parseCurrency(c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	amount, err := parsePositive("a", c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.WithdrawCash(c.account, currency, amount); err != nil {
			return err
		}
		fmt.Printf("Withdrew %s from %q\n", networth.M(amount, currency), c.account)
		return nil
	})
}

type exchangeCmd struct {
	account string
	from    string
	to      string
	sold    string
	bought  string
}

func (*exchangeCmd) Name() string     { return "exchange" }
func (*exchangeCmd) Synopsis() string { return "convert cash between currencies inside an account" }
func (*exchangeCmd) Usage() string {
	return `nwt exchange -n <account> -from <currency> -to <currency> -sold <amount> -bought <amount>

  Records a currency conversion: the sold amount leaves one cash
  balance and the bought amount enters the other. Both amounts are
  taken as-is, so the effective rate is whatever the broker applied.
`
}

func (c *exchangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "n", "", "Brokerage account name.")
	f.StringVar(&c.from, "from", networth.KRW, "Currency sold: KRW or USD.")
	f.StringVar(&c.to, "to", networth.USD, "Currency bought: KRW or USD.")
	f.StringVar(&c.sold, "sold", "", "Amount sold, in the from currency.")
	f.StringVar(&c.bought, "bought", "", "Amount bought, in the to currency.")
}

func (c *exchangeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := parseCurrency(c.from)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	to, err := parseCurrency(c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if from == to {
		fmt.Fprintln(os.Stderr, "Error: -from and -to must differ")
		return subcommands.ExitUsageError
	}
	sold, err := parsePositive("sold", c.sold)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	bought, err := parsePositive("bought", c.bought)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.ExchangeCash(c.account, from, to, sold, bought); err != nil {
			return err
		}
		fmt.Printf("Exchanged %s for %s in %q\n",
			networth.M(sold, from), networth.M(bought, to), c.account)
		return nil
	})
}

type pruneCmd struct {
	account string
	symbol  string
}

func (*pruneCmd) Name() string     { return "prune" }
func (*pruneCmd) Synopsis() string { return "remove a fully sold holding" }
func (*pruneCmd) Usage() string {
	return `nwt prune -n <account> -s <symbol>

  Removes a holding whose quantity is exactly zero. A holding with
  remaining shares is left untouched.
`
}

func (c *pruneCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "n", "", "Brokerage account name.")
	f.StringVar(&c.symbol, "s", "", "Display name of the holding.")
}

func (c *pruneCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(l *networth.Ledger) error {
		if err := l.RemoveZeroQuantity(c.account, c.symbol); err != nil {
			return err
		}
		fmt.Printf("Pruned %s from %q\n", c.symbol, c.account)
		return nil
	})
}

type rmAccountCmd struct {
	name string
}

func (*rmAccountCmd) Name() string     { return "rm-account" }
func (*rmAccountCmd) Synopsis() string { return "remove a brokerage account" }
func (*rmAccountCmd) Usage() string {
	return `nwt rm-account -n <name>

  Removes the account and subtracts its cash balances from the
  totals. Remaining stock holdings are dropped with a warning.
`
}

func (c *rmAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Account name.")
}

func (c *rmAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(l *networth.Ledger) error {
		if err := l.DeleteStockAccount(c.name); err != nil {
			return err
		}
		fmt.Printf("Deleted brokerage account %q\n", c.name)
		return nil
	})
}
