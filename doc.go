// Package plasm provides composable query-building helpers on top of the goqu
// SQL dataset DSL: multi-value filter matching, key lookups, aggregate
// projections, timestamp range filters, ordered pagination, distinct values
// and random sampling.
//
// Every helper takes a *goqu.SelectDataset and returns a new one, so helpers
// chain freely with each other and with goqu itself; the input dataset is
// never mutated and execution stays entirely in the caller's hands.
//
// Note the exclusion semantics of MatchNone: each field/value pair narrows the
// result set independently. MatchNone over {name: "Fluffy", age: [3, 5, 10]}
// selects rows where name != 'Fluffy' AND age NOT IN (3, 5, 10) — it does not
// merely exclude rows matching the whole specification at once.
package plasm
