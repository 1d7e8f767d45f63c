// Package cmd implements the CLI application to simulate a cap table.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/captable"
	"github.com/google/subcommands"
)

// Commands lists the subcommands, a main package registers them.
var Commands = []subcommands.Command{
	&buildCmd{},
	&compareCmd{},
	&projectCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "cap table")
	}
}

const (
	EnvScenarioFile = "CTS_SCENARIO_FILE"
	EnvCurrency     = "CTS_CURRENCY"
	EnvVerbose      = "CTS_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var scenarioFile = flag.String("scenario-file", os.Getenv(EnvScenarioFile), "Path to the scenario file (YAML, JSON or JSONL). Env "+EnvScenarioFile)
var defaultCurrency = flag.String("currency", envOr(EnvCurrency, captable.DefaultCurrency), "Currency of inline rounds. Env "+EnvCurrency)
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Log details of the computation. Env "+EnvVerbose)
var rawOutput = flag.Bool("raw", false, "print raw markdown instead of rendering it for the terminal")

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

// printMarkdown renders md for the terminal, or prints it as is with -raw.
func printMarkdown(md string) {
	if *rawOutput {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("warning, cannot render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// roundsFlag collects inline rounds given as "<pre-money>:<investment>".
type roundsFlag []string

func (r *roundsFlag) String() string { return strings.Join(*r, ",") }
func (r *roundsFlag) Set(v string) error {
	if _, _, err := parseTerms(v); err != nil {
		return err
	}
	*r = append(*r, v)
	return nil
}

// parseTerms parses "<pre-money>:<investment>". Values accept a k or M suffix.
func parseTerms(v string) (pre, investment float64, err error) {
	p, i, ok := strings.Cut(v, ":")
	if !ok {
		return 0, 0, fmt.Errorf("round %q must be <pre-money>:<investment>", v)
	}
	if pre, err = parseAmount(p); err != nil {
		return 0, 0, err
	}
	if investment, err = parseAmount(i); err != nil {
		return 0, 0, err
	}
	return pre, investment, nil
}

// parseAmount parses "2500000", "2.5M" or "250k".
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	mult := 1.0
	switch {
	case strings.HasSuffix(s, "M"), strings.HasSuffix(s, "m"):
		mult, s = 1e6, s[:len(s)-1]
	case strings.HasSuffix(s, "k"), strings.HasSuffix(s, "K"):
		mult, s = 1e3, s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid amount %q: not a finite number", s)
	}
	return v * mult, nil
}

// scenarioFlags are the flags shared by the commands that build cap tables.
type scenarioFlags struct {
	file    string
	founder string
	rounds  roundsFlag
}

func (s *scenarioFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.file, "f", "", "Scenario file, defaults to -scenario-file.")
	f.StringVar(&s.founder, "founder", "", fmt.Sprintf("Founder initial shares for inline rounds (default %d).", captable.DefaultFounderShares))
	f.Var(&s.rounds, "r", "Inline round as <pre-money>:<investment>, e.g. 5M:2M. Repeat for each round.")
}

// scenario loads the scenario file, or assembles one from inline rounds.
func (s *scenarioFlags) scenario() (*captable.Scenario, error) {
	file := s.file
	if file == "" && len(s.rounds) == 0 {
		file = *scenarioFile
	}
	if file != "" {
		if len(s.rounds) > 0 {
			return nil, errors.New("use either a scenario file or inline rounds, not both")
		}
		if *Verbose {
			log.Printf("loading scenario %q", file)
		}
		sc, err := captable.LoadScenario(file)
		if err != nil {
			return nil, err
		}
		if s.founder != "" {
			shares, err := parseShares(s.founder)
			if err != nil {
				return nil, err
			}
			sc.FounderShares = shares
		}
		return sc, nil
	}

	sc := &captable.Scenario{
		Currency:      *defaultCurrency,
		FounderShares: captable.S(captable.DefaultFounderShares),
		Policy:        captable.Dilution,
	}
	if s.founder != "" {
		shares, err := parseShares(s.founder)
		if err != nil {
			return nil, err
		}
		sc.FounderShares = shares
	}
	for i, v := range s.rounds {
		pre, inv, err := parseTerms(v)
		if err != nil {
			return nil, err
		}
		r, err := captable.NewRound(i+1, pre, inv, sc.Currency)
		if err != nil {
			return nil, err
		}
		sc.Rounds = append(sc.Rounds, r)
	}
	return sc, nil
}

func parseShares(s string) (captable.Shares, error) {
	v, err := parseAmount(s)
	if err != nil {
		return captable.Shares{}, err
	}
	return captable.NewShares(v)
}
