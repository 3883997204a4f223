package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the assets file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `nwt fmt [-check]

  Reads the assets file, verifies that every stored total matches the
  sum of its entries, and writes it back in canonical form: ordered
  keys, 4-space indent, literal Unicode. With -check nothing is
  written; a mismatch makes the command fail.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "Verify only, do not rewrite the file.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}

	if err := l.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is inconsistent: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}

	if c.check {
		fmt.Printf("%s is consistent\n", ledgerPath())
		return subcommands.ExitSuccess
	}

	if err := networth.SaveLedger(ledgerPath(), l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %s\n", ledgerPath())
	return subcommands.ExitSuccess
}
