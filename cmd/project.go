package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/captable"
	"github.com/etnz/captable/renderer"
	"github.com/google/subcommands"
)

type projectCmd struct {
	perRound  float64
	rounds    int
	ownership float64
	roundSize string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "apply the textbook dilution and pro-rata formulas" }
func (*projectCmd) Usage() string {
	return `cts project [-s <percent>] [-n <rounds>] [-own <percent> -round <amount>]

  Prints the founder ownership after n rounds each selling s percent of the
  company, Founder % = (1-s)^n. With -own and -round, also prints the
  investment needed to keep an ownership through a round.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.perRound, "s", 20, "Percentage of the company sold each round")
	f.IntVar(&c.rounds, "n", 3, "Number of rounds")
	f.Float64Var(&c.ownership, "own", 0, "Current ownership percentage of a pro-rata investor")
	f.StringVar(&c.roundSize, "round", "", "Size of the next round, e.g. 5M")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.perRound < 0 || c.perRound > 100 || c.rounds < 0 {
		fmt.Fprintf(os.Stderr, "Error: -s must be a percentage and -n must not be negative\n")
		return subcommands.ExitUsageError
	}
	var b strings.Builder
	perRound := captable.Percent(c.perRound)
	b.WriteString(renderer.DilutionMarkdown(perRound, captable.CompoundDilution(perRound, c.rounds)))

	if c.roundSize != "" {
		size, err := parseAmount(c.roundSize)
		if err != nil || size < 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid round size %q\n", c.roundSize)
			return subcommands.ExitUsageError
		}
		if err := captable.ValidateCurrency(*defaultCurrency); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		b.WriteString("\n")
		b.WriteString(renderer.ProRataInvestmentMarkdown(captable.Percent(c.ownership), captable.M(size, *defaultCurrency)))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
