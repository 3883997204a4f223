package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type addExchangeCmd struct {
	name string
}

func (*addExchangeCmd) Name() string     { return "add-exchange" }
func (*addExchangeCmd) Synopsis() string { return "create a cryptocurrency exchange entry" }
func (*addExchangeCmd) Usage() string {
	return `nwt add-exchange -n <name>

  Creates an empty exchange entry, e.g. "Upbit". Coin records are
  managed by external tooling and carried as-is.
`
}

func (c *addExchangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Exchange name.")
}

func (c *addExchangeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n is required")
		return subcommands.ExitUsageError
	}
	return mutate(func(l *networth.Ledger) error {
		if err := l.AddExchange(c.name); err != nil {
			return err
		}
		fmt.Printf("Created exchange %q\n", c.name)
		return nil
	})
}

type rmExchangeCmd struct {
	name string
}

func (*rmExchangeCmd) Name() string     { return "rm-exchange" }
func (*rmExchangeCmd) Synopsis() string { return "remove a cryptocurrency exchange entry" }
func (*rmExchangeCmd) Usage() string {
	return `nwt rm-exchange -n <name>

  Removes the exchange and its coin records. The crypto USD total is
  left as the last synced value.
`
}

func (c *rmExchangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Exchange name.")
}

func (c *rmExchangeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(l *networth.Ledger) error {
		if err := l.DeleteExchange(c.name); err != nil {
			return err
		}
		fmt.Printf("Deleted exchange %q\n", c.name)
		return nil
	})
}
