package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/captable"
	"github.com/google/subcommands"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		err  bool
	}{
		{"2500000", 2_500_000, false},
		{"2.5M", 2_500_000, false},
		{"250k", 250_000, false},
		{" 7m ", 7_000_000, false},
		{"lots", 0, true},
		{"NaN", 0, true},
		{"+Inf", 0, true},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("parseAmount(%q) error = %v, want error %v", tt.in, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundsFlag(t *testing.T) {
	var r roundsFlag
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&r, "r", "")
	if err := fs.Parse([]string{"-r", "5M:2M", "-r", "10M:5M"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if r.String() != "5M:2M,10M:5M" {
		t.Errorf("rounds = %q", r.String())
	}
	if err := r.Set("5M"); err == nil {
		t.Error("Set(5M) should fail without an investment")
	}
}

func TestScenarioFlags_Inline(t *testing.T) {
	s := scenarioFlags{founder: "8M", rounds: roundsFlag{"5M:2M", "10M:0"}}
	sc, err := s.scenario()
	if err != nil {
		t.Fatalf("scenario() error = %v", err)
	}
	if !sc.FounderShares.Equal(captable.S(8_000_000)) || len(sc.Rounds) != 2 || sc.Rounds[1].Index != 2 {
		t.Errorf("unexpected scenario %+v", sc)
	}
}

func TestScenarioFlags_FileAndInline(t *testing.T) {
	s := scenarioFlags{file: "s.yaml", rounds: roundsFlag{"5M:2M"}}
	if _, err := s.scenario(); err == nil {
		t.Error("scenario() should reject a file with inline rounds")
	}
}

// run executes c with args and returns its output.
func run(t *testing.T, c subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	*rawOutput = true
	var out bytes.Buffer
	stdout = &out
	t.Cleanup(func() { stdout = os.Stdout; *rawOutput = false })

	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	status := c.Execute(context.Background(), fs)
	return out.String(), status
}

func TestBuildCmd(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		out, status := run(t, &buildCmd{}, "-r", "5M:2M")
		if status != subcommands.ExitSuccess {
			t.Fatalf("status = %v", status)
		}
		if !strings.Contains(out, "# Cap Table (dilution)") || !strings.Contains(out, "28.57%") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("query", func(t *testing.T) {
		out, status := run(t, &buildCmd{}, "-policy", "investor-pro-rata", "-r", "5M:2M", "-q", "$.policy")
		if status != subcommands.ExitSuccess || strings.TrimSpace(out) != `"investor-pro-rata"` {
			t.Errorf("status = %v, output %q", status, out)
		}
	})

	t.Run("jsonl", func(t *testing.T) {
		out, status := run(t, &buildCmd{}, "-jsonl", "-r", "5M:2M", "-r", "10M:5M")
		if status != subcommands.ExitSuccess || strings.Count(out, "\n") != 3 {
			t.Errorf("status = %v, output:\n%s", status, out)
		}
	})

	t.Run("scenario file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "scenario.yaml")
		doc := "founder_shares: 10000000\npolicy: pro-rata\nrounds:\n  - {pre_money: 5000000, investment: 2000000}\n"
		if err := os.WriteFile(file, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}
		out, status := run(t, &buildCmd{}, "-f", file, "-q", "$.summary.founder")
		if status != subcommands.ExitSuccess || strings.TrimSpace(out) != "100" {
			t.Errorf("status = %v, output %q", status, out)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		if _, status := run(t, &buildCmd{}, "-founder", "0", "-r", "5M:2M"); status != subcommands.ExitFailure {
			t.Errorf("status = %v, want failure", status)
		}
		if _, status := run(t, &buildCmd{}, "-policy", "ratchet", "-r", "5M:2M"); status != subcommands.ExitUsageError {
			t.Errorf("status = %v, want usage error", status)
		}
	})
}

func TestCompareCmd(t *testing.T) {
	out, status := run(t, &compareCmd{}, "-r", "5M:2M", "-r", "10M:5M")
	if status != subcommands.ExitSuccess {
		t.Fatalf("status = %v", status)
	}
	if !strings.Contains(out, "dilution vs investor-pro-rata") || !strings.Contains(out, "+9.52%") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestProjectCmd(t *testing.T) {
	out, status := run(t, &projectCmd{}, "-s", "20", "-n", "3", "-own", "20", "-round", "5M")
	if status != subcommands.ExitSuccess {
		t.Fatalf("status = %v", status)
	}
	if !strings.Contains(out, "51.20%") || !strings.Contains(out, "invest $1,000,000.00") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if _, status := run(t, &projectCmd{}, "-s", "120"); status != subcommands.ExitUsageError {
		t.Errorf("status = %v, want usage error", status)
	}
}

func TestTopicCmd(t *testing.T) {
	out, status := run(t, &topicCmd{}, "policies")
	if status != subcommands.ExitSuccess || !strings.Contains(out, "# Allocation policies") {
		t.Errorf("status = %v, output:\n%s", status, out)
	}
	if _, status := run(t, &topicCmd{}, "nope"); status != subcommands.ExitUsageError {
		t.Errorf("status = %v, want usage error", status)
	}

	out, status = run(t, &topicCmd{}, "-l")
	if status != subcommands.ExitSuccess {
		t.Fatalf("status = %v", status)
	}
	if got := strings.Fields(out); !slices.Equal(got, []string{"captable", "formulas", "policies", "scenario"}) {
		t.Errorf("topics = %v", got)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, cmd := range Commands {
		if _, ok := c.Sub[cmd.Name()]; !ok {
			t.Errorf("command %q has no completion", cmd.Name())
		}
	}
}
