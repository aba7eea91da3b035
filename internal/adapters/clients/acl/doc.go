// Package acl is the anti-corruption layer between the remote quote provider
// and the domain.
//
// Provider DTOs stay unexported in this package. Every response is translated
// and validated before it becomes a [domain.Quote], and every failure leaves the
// package as a [domain.ErrUnavailable]:
//
//   - transport errors and timeouts
//   - [clients.ErrCircuitOpen]
//   - any non-2xx status
//   - bodies that do not decode or fail validation
//
// Callers therefore only need one check, [domain.IsUnavailable], to decide
// whether to fall back to cached or seed quotes.
//
// The provider speaks the quotable API:
//
//	GET /random            -> {content, author, tags}
//	GET /quotes?tags=<c>   -> {results: [{content, author, tags}]}
//	GET /tags              -> [{name}]
package acl
