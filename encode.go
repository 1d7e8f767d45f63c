package captable

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFounderShares is the founder share count of a scenario that does not set one.
const DefaultFounderShares = 10_000_000

// Scenario is everything a build needs: founder shares, rounds and policy.
type Scenario struct {
	Currency      string
	FounderShares Shares
	Policy        Policy
	Rounds        []RoundInput
}

// Build builds the scenario cap table.
func (s *Scenario) Build() (*CapTable, error) {
	return Build(s.Rounds, s.FounderShares, s.Policy)
}

// jscenario is the object read from scenario files, in YAML or JSON.
type jscenario struct {
	Currency      string   `json:"currency" yaml:"currency"`
	FounderShares *float64 `json:"founder_shares" yaml:"founder_shares"`
	Policy        string   `json:"policy" yaml:"policy"`
	Rounds        []jround `json:"rounds" yaml:"rounds"`
}

// jround is a single round as found in scenario and JSONL files.
type jround struct {
	Round      *int    `json:"round" yaml:"round"`
	PreMoney   float64 `json:"pre_money" yaml:"pre_money"`
	Investment float64 `json:"investment" yaml:"investment"`
}

// LoadScenario opens and decodes a scenario file. The format is chosen by
// extension: .yaml/.yml, .json, or .jsonl for a bare list of rounds.
func LoadScenario(filename string) (*Scenario, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open scenario file %q: %w", filename, err)
	}
	defer f.Close()
	return DecodeScenario(filename, f)
}

// DecodeScenario decodes a scenario from r. filename selects the format and
// is used in error messages.
func DecodeScenario(filename string, r io.Reader) (*Scenario, error) {
	var js jscenario
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&js); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("format error in %q: %w", filename, err)
		}
	case ".json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&js); err != nil {
			return nil, fmt.Errorf("format error in %q: %w", filename, err)
		}
	case ".jsonl":
		rounds, err := DecodeRounds(filename, r, "")
		if err != nil {
			return nil, err
		}
		return &Scenario{Currency: DefaultCurrency, FounderShares: S(DefaultFounderShares), Policy: Dilution, Rounds: rounds}, nil
	default:
		return nil, fmt.Errorf("unsupported scenario format %q for %q", ext, filename)
	}
	return js.scenario(filename)
}

// scenario converts the decoded object, validating values that the
// engine types cannot hold.
func (js jscenario) scenario(filename string) (*Scenario, error) {
	s := &Scenario{Currency: js.Currency, Policy: Dilution}
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	var errs []error
	if err := ValidateCurrency(s.Currency); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", err, ErrInvalidInput))
	}

	founder := float64(DefaultFounderShares)
	if js.FounderShares != nil {
		founder = *js.FounderShares
	}
	if shares, err := NewShares(founder); err != nil {
		errs = append(errs, err)
	} else {
		s.FounderShares = shares
	}

	if js.Policy != "" {
		p, err := ParsePolicy(js.Policy)
		if err != nil {
			errs = append(errs, err)
		}
		s.Policy = p
	}

	for i, jr := range js.Rounds {
		r, err := jr.round(i+1, s.Currency)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.Rounds = append(s.Rounds, r)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", filename, err)
	}
	return s, nil
}

// round converts jr, defaulting its index to index.
func (jr jround) round(index int, currency string) (RoundInput, error) {
	if jr.Round != nil {
		index = *jr.Round
	}
	return NewRound(index, jr.PreMoney, jr.Investment, currency)
}

// DecodeRounds reads a JSONL stream, one round per line. Blank lines are
// ignored, rounds without an explicit "round" are numbered from 1.
func DecodeRounds(filename string, r io.Reader, currency string) ([]RoundInput, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	var rounds []RoundInput
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Bytes()
		if len(strings.TrimSpace(string(txt))) == 0 {
			continue
		}
		var jr jround
		dec := json.NewDecoder(strings.NewReader(string(txt)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&jr); err != nil {
			return nil, fmt.Errorf("parse error %s:%d: not a correct round: %w", filename, line, err)
		}
		rd, err := jr.round(len(rounds)+1, currency)
		if err != nil {
			return nil, fmt.Errorf("parse error %s:%d: %w", filename, line, err)
		}
		rounds = append(rounds, rd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return rounds, nil
}

// EncodeCapTable writes the snapshots as JSONL, one round per line.
func EncodeCapTable(w io.Writer, t *CapTable) error {
	enc := json.NewEncoder(w)
	for _, s := range t.Snapshots {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("cannot encode round %d: %w", s.Index, err)
		}
	}
	return nil
}
