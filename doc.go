// Package networth provides the functions and types for tracking a
// person's net worth across four asset categories: liquid cash,
// receivables and deposits, brokerage holdings, and cryptocurrency.
// It is designed to be local-first: the whole state lives in a single
// human-readable JSON file that the owner can inspect, diff, and
// version.
//
// The core functionalities include:
//   - Ledger Mutation: moving money between accounts and entries
//     (deposits, withdrawals, transfers, loans, stock buys and sells,
//     currency exchanges) while keeping every derived total consistent
//     at all levels of the tree.
//   - Aggregation: recomputing the per-category and combined totals on
//     every view, converting live market prices and the USD/KRW rate
//     into a unified KRW figure.
//   - Valuation: fetching spot prices and the exchange rate from a
//     market data provider, degrading to fixed fallback values when
//     the provider is unreachable.
//   - Data Persistence: wholesale load and save of the asset tree in a
//     stable, pretty-printed, Unicode-preserving encoding.
//
// This package serves as the foundational logic for the `nwt`
// command-line tool, which supplies validated user input and displays
// the results.
package networth
