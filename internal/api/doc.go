// Package api exposes the ledger operations over HTTP.
//
// It decodes incoming requests into typed inputs, invokes the ledger service,
// and encodes results and domain errors back to callers. No business rules
// live here.
package api
