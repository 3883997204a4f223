// Package cmd implements the CLI application to manage a net-worth
// ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addAccountCmd{}, "liquid assets")
	c.Register(&depositCmd{}, "liquid assets")
	c.Register(&withdrawCmd{}, "liquid assets")
	c.Register(&transferCmd{}, "liquid assets")
	c.Register(&adjustCmd{}, "liquid assets")
	c.Register(&deleteAccountCmd{}, "liquid assets")

	c.Register(&loanCmd{}, "receivables")
	c.Register(&repayCmd{}, "receivables")
	c.Register(&settleCmd{}, "receivables")
	c.Register(&adjustLoanCmd{}, "receivables")

	c.Register(&newAccountCmd{}, "stocks")
	c.Register(&buyCmd{}, "stocks")
	c.Register(&sellCmd{}, "stocks")
	c.Register(&cashInCmd{}, "stocks")
	c.Register(&cashOutCmd{}, "stocks")
	c.Register(&exchangeCmd{}, "stocks")
	c.Register(&pruneCmd{}, "stocks")
	c.Register(&rmAccountCmd{}, "stocks")

	c.Register(&addExchangeCmd{}, "cryptocurrency")
	c.Register(&rmExchangeCmd{}, "cryptocurrency")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&fmtCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("f", "", "Path to the assets file. Overrides the config file.")

// ledgerPath resolves the assets file path: the -f flag wins, then the
// config file, then the default in the working directory.
func ledgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	cfg := loadConfig()
	if cfg.File != "" {
		return cfg.File
	}
	return networth.DefaultLedgerFile
}

// loadLedger is the central function to open the assets file.
func loadLedger() (*networth.Ledger, error) {
	return networth.LoadLedger(ledgerPath())
}

// saveLedger writes the ledger back to the assets file.
func saveLedger(l *networth.Ledger) error {
	return networth.SaveLedger(ledgerPath(), l)
}

// mutate runs one update against the ledger and persists it, turning
// the outcome into an exit status. Nothing is written when the update
// fails.
func mutate(update func(l *networth.Ledger) error) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}
	if err := update(l); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal. If rendering is
// not possible (e.g. output is not a terminal) the raw markdown is
// printed instead.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
