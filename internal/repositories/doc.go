// Package repositories provides the persistence layer for cached catalog
// and social data.
//
// Every repository follows the same insert-only contract: Save persists
// an entity exactly once (a duplicate id surfaces as
// [shared.ErrAlreadyCached]) and Find returns (nil, nil) on a miss so
// callers can distinguish "not cached" from a storage failure. Composite
// entities (Track, Playlist) are reconstructed from join tables in
// position order, resolving each child through the child repository's
// own Find and skipping members whose rows have gone missing.
//
// Relation repositories (related artists, featured snapshots,
// track↔post pairings) return an explicit ok flag from Find so an
// absent relation set is distinguishable from one whose members all
// failed to resolve.
package repositories
