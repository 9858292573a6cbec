// Package taxonomy computes the sustainable-investment share of a real
// estate fund under EU Taxonomy / SFDR style eligibility rules.
//
// The core functionalities include:
//   - Asset Eligibility: screening a single asset against contribution,
//     DNSH, governance and technical criteria (Criteria.Evaluate).
//   - Ownership Aggregation: applying the consolidation rule matching an
//     investment's ownership class (direct holding, full look-through,
//     full consolidation, proportional share, best-effort estimation).
//   - Calculation Report: rolling per-category subtotals up into fund
//     totals, a sustainable ratio, and the advisory "substantial
//     proportion" / "predominant focus" classification flags.
//   - Data Interchange: decoding a fund description from JSON and
//     encoding the calculation report back out with a stable field order.
//
// The package is a pure computation core: it performs no I/O, keeps no
// state between calculations, and never asserts regulatory compliance.
// The computed ratio and flags are inputs to a human decision, not a
// classification in themselves.
//
// This package serves as the foundational logic for the `taxo` command
// line tool.
package taxonomy
