// Package captable models the evolution of a startup capitalization table
// across sequential funding rounds.
//
// The core functionalities include:
//   - Valuation and share pricing: post-money valuation, price per share
//     from the pre-money valuation and the shares outstanding before the
//     round, and the number of shares an investment buys.
//   - Cap table building: a deterministic pass over the rounds that keeps
//     the share count of every stakeholder (the Founder and one investor
//     class per round) and emits one immutable RoundSnapshot per round.
//   - Allocation policies: plain Dilution, where the round investor takes
//     the whole issuance, and pro-rata variants where existing holders top
//     up to keep their ownership.
//   - Comparison and projections: the same rounds under two policies, and
//     the textbook compound dilution and pro-rata investment formulas.
//   - Encoding: scenario files in YAML, JSON or JSONL, and snapshots as JSONL.
//
// The engine holds no state between builds: everything is passed to Build
// and returned in a CapTable. Builds may run concurrently.
//
// This package serves as the foundational logic for the `cts` command-line
// tool.
package captable
