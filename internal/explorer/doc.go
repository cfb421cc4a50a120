// Package explorer implements cache-aside orchestration over the local
// music cache.
//
// Every Get* operation checks the repositories first and serves a hit
// from sqlite; on a miss it calls the remote fetch collaborator,
// converts the provider-shaped record into domain entities (resolving
// nested ids recursively through the same Get* path), persists the
// result, and returns it. Rows are permanent: once cached, an entity is
// never refreshed or evicted.
//
// Remote failures for the requested entity wrap
// [shared.ErrServiceUnavailable]. Failures while resolving a nested
// member are logged and the member omitted; partial results are the
// norm, not an error.
package explorer
