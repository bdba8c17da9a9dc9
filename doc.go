// Package holdings compares two point-in-time snapshots of an investment
// portfolio, typically two consecutive quarterly 13-F filings, and derives a
// reconciled view of what changed between them.
//
// The core functionalities include:
//   - Normalization: each Snapshot computes the weight of its holdings
//     against the declared total value and orders them by value.
//   - Reconciliation: holdings are joined across both periods by their
//     identifier (CUSIP), deltas are computed and each line is classified as
//     New, Sold, Increased, Decreased or Unchanged.
//   - Aggregation: a Summary with both totals and the largest movers.
//   - Chart projections: a weight comparison bar set keyed by period label,
//     and a "top holdings + Other" composition per period.
//
// Reconcile is a pure function: it performs no I/O and returns fresh
// structures, so it can be called concurrently and repeatedly with new
// bundles. Fetching the filings and presenting the result are the business
// of the filings and renderer packages, and of the `hcmp` command line tool.
package holdings
