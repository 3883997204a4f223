package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type loanCmd struct {
	kind   string
	name   string
	amount int64
	tags   string
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "record money loaned out or put down as a deposit" }
func (*loanCmd) Usage() string {
	return `nwt loan -n <name> -a <amount> [-t <type>] [-tags <tags>]

  Records a receivable (money someone owes you) or a refundable
  deposit. Loaning again to the same name adds to the balance.
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "receivable", "Entry type: receivable or deposit.")
	f.StringVar(&c.name, "n", "", "Who or what holds the money.")
	f.Int64Var(&c.amount, "a", 0, "Amount in whole won.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags, only used when the entry is new.")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := networth.ParseReceivableType(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n is required")
		return subcommands.ExitUsageError
	}
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -a must be a positive amount")
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		final, err := l.LoanOut(t, c.name, c.amount, splitTags(c.tags))
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s of %s under %q\n", t, networth.Won(c.amount), final)
		return nil
	})
}

type repayCmd struct {
	kind   string
	name   string
	amount int64
}

func (*repayCmd) Name() string     { return "repay" }
func (*repayCmd) Synopsis() string { return "record a partial repayment" }
func (*repayCmd) Usage() string {
	return `nwt repay -n <name> -a <amount> [-t <type>]

  Subtracts the amount from a receivable or deposit. Fails if the
  entry does not hold that much.
`
}

func (c *repayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "receivable", "Entry type: receivable or deposit.")
	f.StringVar(&c.name, "n", "", "Entry name.")
	f.Int64Var(&c.amount, "a", 0, "Amount in whole won.")
}

func (c *repayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := networth.ParseReceivableType(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -a must be a positive amount")
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.Repay(t, c.name, c.amount); err != nil {
			return err
		}
		fmt.Printf("Repaid %s on %q\n", networth.Won(c.amount), c.name)
		return nil
	})
}

type settleCmd struct {
	kind string
	name string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "close a receivable or deposit entirely" }
func (*settleCmd) Usage() string {
	return `nwt settle -n <name> [-t <type>]

  Removes the entry and subtracts its full balance from the totals.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "receivable", "Entry type: receivable or deposit.")
	f.StringVar(&c.name, "n", "", "Entry name.")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := networth.ParseReceivableType(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.Settle(t, c.name); err != nil {
			return err
		}
		fmt.Printf("Settled %q\n", c.name)
		return nil
	})
}

type adjustLoanCmd struct {
	kind    string
	name    string
	balance int64
}

func (*adjustLoanCmd) Name() string     { return "adjust-loan" }
func (*adjustLoanCmd) Synopsis() string { return "set a receivable or deposit to its real balance" }
func (*adjustLoanCmd) Usage() string {
	return `nwt adjust-loan -n <name> -b <balance> [-t <type>]

  Overwrites the recorded balance with the actual one. Totals move by
  the difference.
`
}

func (c *adjustLoanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "receivable", "Entry type: receivable or deposit.")
	f.StringVar(&c.name, "n", "", "Entry name.")
	f.Int64Var(&c.balance, "b", 0, "New balance in whole won.")
}

func (c *adjustLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := networth.ParseReceivableType(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.balance < 0 {
		fmt.Fprintln(os.Stderr, "Error: balance cannot be negative")
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.AdjustReceivable(t, c.name, c.balance); err != nil {
			return err
		}
		fmt.Printf("Adjusted %q to %s\n", c.name, networth.Won(c.balance))
		return nil
	})
}
