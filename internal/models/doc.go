// Package models defines the domain entities cached by the cratedig
// exploration tool.
//
// Every entity is identified by a string id assigned by the remote
// service it came from. Entities are created once by converting a raw
// provider record, persisted once, and thereafter only read; there is
// no update or delete path anywhere in the data layer.
//
// Track and Playlist are composite: they carry ordered child lists
// (Track→Artists, Playlist→Tracks) with shared ownership, so a child
// may be referenced by many parents. The child lists hold pointers into
// the cache rather than owned copies.
package models
