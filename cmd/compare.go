package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/captable"
	"github.com/etnz/captable/renderer"
	"github.com/google/subcommands"
)

type compareCmd struct {
	scenarioFlags
	a, b string
	json bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the cap table under two allocation policies" }
func (*compareCmd) Usage() string {
	return `cts compare [-f <scenario>] [-a <policy>] [-b <policy>] [-json]

  Builds the cap table of the scenario under both policies and compares the
  final ownership of every stakeholder. By default dilution is compared to
  investor-pro-rata.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	c.scenarioFlags.SetFlags(f)
	f.StringVar(&c.a, "a", "dilution", "First allocation policy")
	f.StringVar(&c.b, "b", "investor-pro-rata", "Second allocation policy")
	f.BoolVar(&c.json, "json", false, "print the comparison as JSON")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sc, err := c.scenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := captable.ParsePolicy(c.a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, err := captable.ParsePolicy(c.b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cmp, err := captable.Compare(sc.Rounds, sc.FounderShares, a, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		return printJSON(cmp)
	}
	printMarkdown(renderer.ComparisonMarkdown(cmp))
	return subcommands.ExitSuccess
}
