// Package models defines the core domain models for the ledger.
//
// # Models
//
//   - User: a registered account; created only by first-run seeding
//   - Transaction: one income or expense entry belonging to a user
//   - Kind, Account: closed enumerations for transaction direction and money pool
//
// # Design Principles
//
//  1. **Enum tags over labels**: persisted values are stable internal tags
//     ("income", "bank", ...); localized display labels exist only at the
//     presentation boundary via the Label and Parse*Label helpers.
//  2. **Magnitude amounts**: Amount is always a non-negative whole-unit value;
//     direction is derived from Kind, never from a sign.
//  3. **Copies, no back-references**: models returned by the storage layer are
//     plain value copies with no handle into persisted state.
package models
