package captable

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation failure. A build that
// fails validation produces no snapshot at all.
var ErrInvalidInput = errors.New("invalid input")

// RoundInput holds the terms of one funding round.
//
// Index 0 is the formation round, investment rounds start at 1.
type RoundInput struct {
	Index      int
	PreMoney   Money
	Investment Money
}

// NewRound creates a round from float values, as collected from user
// controls. NaN and infinite values are rejected.
func NewRound(index int, preMoney, investment float64, currency string) (RoundInput, error) {
	if err := errors.Join(
		finite(fmt.Sprintf("round %d pre-money", index), preMoney),
		finite(fmt.Sprintf("round %d investment", index), investment),
	); err != nil {
		return RoundInput{}, err
	}
	return RoundInput{
		Index:      index,
		PreMoney:   M(preMoney, currency),
		Investment: M(investment, currency),
	}, nil
}

// Label returns the round display name.
func (r RoundInput) Label() string { return RoundLabel(r.Index) }

// isFormation reports whether the round is the formation row.
func (r RoundInput) isFormation() bool { return r.Index == 0 }

// degenerate reports whether the round contributes no issuance. Such a
// round is skipped, it is not an error.
func (r RoundInput) degenerate() bool {
	return !r.PreMoney.IsPositive() || !r.Investment.IsPositive()
}

// Validate checks the round on its own.
func (r RoundInput) Validate() error {
	var errs []error
	if r.Index < 0 {
		errs = append(errs, fmt.Errorf("round index must not be negative, got %d: %w", r.Index, ErrInvalidInput))
	}
	if r.PreMoney.IsNegative() {
		errs = append(errs, fmt.Errorf("round %d pre-money must not be negative, got %s: %w", r.Index, r.PreMoney, ErrInvalidInput))
	}
	if r.Investment.IsNegative() {
		errs = append(errs, fmt.Errorf("round %d investment must not be negative, got %s: %w", r.Index, r.Investment, ErrInvalidInput))
	}
	if r.isFormation() && (!r.PreMoney.IsZero() || !r.Investment.IsZero()) {
		errs = append(errs, fmt.Errorf("formation round must have no valuation nor investment: %w", ErrInvalidInput))
	}
	for _, m := range []Money{r.PreMoney, r.Investment} {
		if m.Currency() == "" {
			continue
		}
		if err := ValidateCurrency(m.Currency()); err != nil {
			errs = append(errs, fmt.Errorf("round %d: %w: %w", r.Index, err, ErrInvalidInput))
		}
	}
	if r.PreMoney.Currency() != "" && r.Investment.Currency() != "" && r.PreMoney.Currency() != r.Investment.Currency() {
		errs = append(errs, fmt.Errorf("round %d pre-money currency %s does not match investment currency %s: %w", r.Index, r.PreMoney.Currency(), r.Investment.Currency(), ErrInvalidInput))
	}
	return errors.Join(errs...)
}

// validateRounds checks every round, their ordering and founder shares,
// and returns the common currency. All failures are reported together.
func validateRounds(rounds []RoundInput, founderShares Shares, policy Policy) (string, error) {
	var errs []error
	if policy == nil {
		errs = append(errs, fmt.Errorf("allocation policy is missing: %w", ErrInvalidInput))
	}
	if !founderShares.IsPositive() {
		errs = append(errs, fmt.Errorf("founder shares must be positive, got %s: %w", founderShares, ErrInvalidInput))
	}

	currency := ""
	var next int
	for i, r := range rounds {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
		}
		// rounds are consecutive, the formation row is optional.
		if i == 0 && r.Index == 0 {
			next = 0
		} else if i == 0 {
			next = 1
		}
		if r.Index != next {
			errs = append(errs, fmt.Errorf("round at position %d has index %d, want %d: %w", i, r.Index, next, ErrInvalidInput))
		}
		next++

		for _, m := range []Money{r.PreMoney, r.Investment} {
			switch {
			case m.Currency() == "":
			case currency == "":
				currency = m.Currency()
			case currency != m.Currency():
				errs = append(errs, fmt.Errorf("round %d currency %s does not match %s: %w", r.Index, m.Currency(), currency, ErrInvalidInput))
			}
		}
	}
	return currency, errors.Join(errs...)
}
