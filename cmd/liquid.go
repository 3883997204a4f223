package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

// parseAccountType parses the -t flag shared by the liquid-asset
// commands.
func parseAccountType(s string) (networth.AccountType, error) {
	return networth.ParseAccountType(s)
}

// splitTags turns a comma-separated flag value into a tag list.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

type addAccountCmd struct {
	accountType string
	name        string
	balance     int64
	tags        string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create a liquid-asset account" }
func (*addAccountCmd) Usage() string {
	return `nwt add-account -t <type> -n <name> [-b <balance>] [-tags <tags>]

  Creates a checking, savings or installment-savings account. A name
  already in use gets a numeric suffix, e.g. "KB (1)".
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountType, "t", "checking", "Account type: checking, savings or installment.")
	f.StringVar(&c.name, "n", "", "Account name.")
	f.Int64Var(&c.balance, "b", 0, "Initial balance in whole won.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags.")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := parseAccountType(c.accountType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n is required")
		return subcommands.ExitUsageError
	}
	if c.balance < 0 {
		fmt.Fprintln(os.Stderr, "Error: balance cannot be negative")
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		final, err := l.AddAccount(t, c.name, c.balance, splitTags(c.tags))
		if err != nil {
			return err
		}
		fmt.Printf("Created %s account %q with %s\n", t, final, networth.Won(c.balance))
		return nil
	})
}

type depositCmd struct {
	accountType string
	name        string
	amount      int64
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add money to a liquid-asset account" }
func (*depositCmd) Usage() string {
	return `nwt deposit -t <type> -n <name> -a <amount>

  Adds the amount to the account balance.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountType, "t", "checking", "Account type: checking, savings or installment.")
	f.StringVar(&c.name, "n", "", "Account name.")
	f.Int64Var(&c.amount, "a", 0, "Amount in whole won.")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := parseAccountType(c.accountType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -a must be a positive amount")
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.Deposit(t, c.name, c.amount); err != nil {
			return err
		}
		fmt.Printf("Deposited %s into %q\n", networth.Won(c.amount), c.name)
		return nil
	})
}

type withdrawCmd struct {
	accountType string
	name        string
	amount      int64
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "take money out of a liquid-asset account" }
func (*withdrawCmd) Usage() string {
	return `nwt withdraw -t <type> -n <name> -a <amount>

  Subtracts the amount from the account balance. Fails if the balance
  is insufficient.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountType, "t", "checking", "Account type: checking, savings or installment.")
	f.StringVar(&c.name, "n", "", "Account name.")
	f.Int64Var(&c.amount, "a", 0, "Amount in whole won.")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := parseAccountType(c.accountType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -a must be a positive amount")
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.Withdraw(t, c.name, c.amount); err != nil {
			return err
		}
		fmt.Printf("Withdrew %s from %q\n", networth.Won(c.amount), c.name)
		return nil
	})
}

type transferCmd struct {
	fromType string
	from     string
	toType   string
	to       string
	amount   int64
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two liquid-asset accounts" }
func (*transferCmd) Usage() string {
	return `nwt transfer -from <name> -to <name> [-from-type <type>] [-to-type <type>] -a <amount>

  Withdraws from one account and deposits into another in one step.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fromType, "from-type", "checking", "Source account type.")
	f.StringVar(&c.from, "from", "", "Source account name.")
	f.StringVar(&c.toType, "to-type", "checking", "Destination account type.")
	f.StringVar(&c.to, "to", "", "Destination account name.")
	f.Int64Var(&c.amount, "a", 0, "Amount in whole won.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fromType, err := parseAccountType(c.fromType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	toType, err := parseAccountType(c.toType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -a must be a positive amount")
		return subcommands.ExitUsageError
	}
	if fromType == toType && c.from == c.to {
		fmt.Fprintln(os.Stderr, "Error: source and destination are the same account")
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.Transfer(fromType, c.from, toType, c.to, c.amount); err != nil {
			return err
		}
		fmt.Printf("Transferred %s from %q to %q\n", networth.Won(c.amount), c.from, c.to)
		return nil
	})
}

type adjustCmd struct {
	accountType string
	name        string
	balance     int64
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "set a liquid-asset account to its real balance" }
func (*adjustCmd) Usage() string {
	return `nwt adjust -t <type> -n <name> -b <balance>

  Overwrites the recorded balance with the actual one, e.g. after
  interest was paid. Totals move by the difference.
`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountType, "t", "checking", "Account type: checking, savings or installment.")
	f.StringVar(&c.name, "n", "", "Account name.")
	f.Int64Var(&c.balance, "b", 0, "New balance in whole won.")
}

func (c *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := parseAccountType(c.accountType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.balance < 0 {
		fmt.Fprintln(os.Stderr, "Error: balance cannot be negative")
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.AdjustBalance(t, c.name, c.balance); err != nil {
			return err
		}
		fmt.Printf("Adjusted %q to %s\n", c.name, networth.Won(c.balance))
		return nil
	})
}

type deleteAccountCmd struct {
	accountType string
	name        string
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "remove a liquid-asset account" }
func (*deleteAccountCmd) Usage() string {
	return `nwt delete-account -t <type> -n <name>

  Removes the account and subtracts its balance from the totals.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountType, "t", "checking", "Account type: checking, savings or installment.")
	f.StringVar(&c.name, "n", "", "Account name.")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := parseAccountType(c.accountType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.DeleteAccount(t, c.name); err != nil {
			return err
		}
		fmt.Printf("Deleted account %q\n", c.name)
		return nil
	})
}
