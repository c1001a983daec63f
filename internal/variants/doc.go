// Package variants resolves semantic style identifiers into style strings.
//
// A style table is an immutable tree of Nodes. Branches map keys to child
// nodes; leaves are either plain strings or zero-argument functions that
// produce a string. A Resolver wraps one table and answers lookups such as
//
//	resolver.Get("button", "primary")
//	resolver.Get("button.primary", "")
//	resolver.Sized("button", "primary", "small")
//	resolver.Nested("card.elevated.header")
//	resolver.Combine("button.primary", "w-full")
//
// Lookups never fail. When a path cannot be resolved the resolver logs a
// warning and consults its FallbackTable, first for "category.variant" and
// then for "category.default", returning an empty string as a last resort.
// Callers that need to observe the failure use the Lookup family instead,
// which reports a *errors.ResolutionError.
package variants
