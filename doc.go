// Package deals provides the ledger of deposit deals: each deal records an
// incoming payment, the processing fee, the exchange rate and the profit
// pool shared by the members taking part in it.
//
// The core functionalities include:
//   - Deal creation: turning raw user inputs (amount, fee, rate, members)
//     into a fully derived Deal with a dense per-day index.
//   - Reporting: filtering the ledger by day, range, payroll week or month
//     and summing the members' shares.
//   - Deletion: removing a deal by its (date, index) key without
//     renumbering the remaining ones.
//   - Data Persistence: loading and saving the whole ledger in a
//     human-readable JSON file (see FileStore) or any other Store.
//
// All operations go through a Book, which serializes every
// load-mutate-save sequence. The package never produces user facing text:
// errors are typed (see ErrParse, ErrValidation, ErrNotFound and
// ErrPersistence) and rendering is left to the renderer package.
package deals
