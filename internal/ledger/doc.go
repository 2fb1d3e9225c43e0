// Package ledger implements the in-memory banking ledger core.
//
// Core flow:
//   - Service owns all business rules: user creation, balance transactions,
//     loan issuance, and balance statements.
//   - Store provides pure key-value access to users and loans with no
//     validation of its own.
//
// The package enforces deterministic behavior using typed domain errors.
package ledger
