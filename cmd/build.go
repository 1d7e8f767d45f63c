package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/captable"
	"github.com/etnz/captable/renderer"
	"github.com/google/subcommands"
)

// buildCmd holds the flags for the 'build' subcommand.
type buildCmd struct {
	scenarioFlags
	policy string
	json   bool
	jsonl  bool
	query  string
}

func (*buildCmd) Name() string     { return "build" }
func (*buildCmd) Synopsis() string { return "compute the cap table of a scenario" }
func (*buildCmd) Usage() string {
	return `cts build [-f <scenario>] [-policy <policy>] [-json|-jsonl] [-q <jsonpath>]
cts build [-founder <shares>] -r <pre-money>:<investment> [-r ...]

  Computes the cap table round by round: valuations, price per share,
  shares issued and the ownership of every stakeholder.

Usage Examples:
# Two rounds, standard dilution
$ cts build -r 5M:2M -r 10M:5M

# Founder ownership after the last round
$ cts build -f scenario.yaml -q '$.summary.founder'

`
}

func (c *buildCmd) SetFlags(f *flag.FlagSet) {
	c.scenarioFlags.SetFlags(f)
	f.StringVar(&c.policy, "policy", "", "Allocation policy, overrides the scenario one: dilution, pro-rata, investor-pro-rata, damped-pro-rata:<factor>.")
	f.BoolVar(&c.json, "json", false, "print the cap table as JSON")
	f.BoolVar(&c.jsonl, "jsonl", false, "print one JSON snapshot per line")
	f.StringVar(&c.query, "q", "", "print the result of a JSON path query on the cap table")
}

func (c *buildCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sc, err := c.scenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.policy != "" {
		if sc.Policy, err = captable.ParsePolicy(c.policy); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ct, err := sc.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if *Verbose {
		for _, s := range ct.Snapshots {
			log.Printf("round %d %s: price %s, %s new shares, skipped=%v", s.Index, s.Label, s.PricePerShare, s.NewShares, s.Skipped)
		}
	}

	switch {
	case c.query != "":
		res, err := ct.Query(c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		return printJSON(res)
	case c.json:
		return printJSON(ct)
	case c.jsonl:
		if err := captable.EncodeCapTable(stdout, ct); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.CapTableMarkdown(ct))
	return subcommands.ExitSuccess
}

// printJSON prints v indented.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
