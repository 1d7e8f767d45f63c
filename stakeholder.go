package captable

import (
	"cmp"
	"fmt"
	"slices"
)

// StakeholderID identifies a cap table participant: the Founder, or the
// investor class created by a funding round.
//
// The zero value is the Founder.
type StakeholderID struct {
	round int
}

// Founder holds all the shares at formation.
var Founder = StakeholderID{}

// Investor returns the identity of the investor class of the given round.
// round must be at least 1, the formation round has no investor.
func Investor(round int) StakeholderID {
	if round < 1 {
		panic(fmt.Sprintf("investor round must be positive, got %d", round))
	}
	return StakeholderID{round: round}
}

// IsFounder reports whether id is the Founder.
func (id StakeholderID) IsFounder() bool { return id.round == 0 }

// Round returns the round that created the stakeholder, 0 for the Founder.
func (id StakeholderID) Round() int { return id.round }

// Label returns the conventional display name: "Founder", "Seed", "Series A", ...
func (id StakeholderID) Label() string {
	if id.IsFounder() {
		return "Founder"
	}
	return RoundLabel(id.round)
}

// String implements fmt.Stringer with a stable machine friendly key,
// "founder" or "investor-<round>".
func (id StakeholderID) String() string {
	if id.IsFounder() {
		return "founder"
	}
	return fmt.Sprintf("investor-%d", id.round)
}

// ParseStakeholderID parses the String form of an id.
func ParseStakeholderID(s string) (StakeholderID, error) {
	if s == "founder" {
		return Founder, nil
	}
	var round int
	if _, err := fmt.Sscanf(s, "investor-%d", &round); err != nil || round < 1 {
		return StakeholderID{}, fmt.Errorf("invalid stakeholder %q", s)
	}
	return Investor(round), nil
}

// MarshalText implements encoding.TextMarshaler so that ids can key JSON objects.
func (id StakeholderID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *StakeholderID) UnmarshalText(text []byte) error {
	v, err := ParseStakeholderID(string(text))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// compareStakeholders orders the Founder first, then investors by round.
func compareStakeholders(a, b StakeholderID) int { return cmp.Compare(a.round, b.round) }

// sortedStakeholders returns the keys of m in cap table order.
func sortedStakeholders[V any](m map[StakeholderID]V) []StakeholderID {
	ids := make([]StakeholderID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, compareStakeholders)
	return ids
}

// RoundLabel returns the display name of a round: "Formation", "Seed",
// "Series A" ... "Series Z", "Series AA" ...
func RoundLabel(index int) string {
	switch {
	case index <= 0:
		return "Formation"
	case index == 1:
		return "Seed"
	}
	return "Series " + seriesLetters(index-2)
}

// seriesLetters converts 0 to "A", 25 to "Z", 26 to "AA", like spreadsheet columns.
func seriesLetters(n int) string {
	var b []byte
	for n >= 0 {
		b = append([]byte{byte('A' + n%26)}, b...)
		n = n/26 - 1
	}
	return string(b)
}
