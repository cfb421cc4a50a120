package services

import (
	"context"
)

// Search kinds accepted by [CatalogFetcher.Search].
const (
	KindArtist   = "artist"
	KindTrack    = "track"
	KindPlaylist = "playlist"
)

// CatalogFetcher is the capability interface for the remote music
// catalog. Implementations return provider-shaped records; conversion
// into domain entities happens in the explorer.
type CatalogFetcher interface {
	// FetchArtist retrieves a single artist record by id.
	FetchArtist(ctx context.Context, id string) (*CatalogArtist, error)

	// FetchTrack retrieves a single track record by id, including its
	// contributing artists in source order.
	FetchTrack(ctx context.Context, id string) (*CatalogTrack, error)

	// FetchPlaylist retrieves a single playlist record by id, including
	// its track entries in source order.
	FetchPlaylist(ctx context.Context, id string) (*CatalogPlaylist, error)

	// FetchRelatedArtists retrieves the artists related to the given artist id.
	FetchRelatedArtists(ctx context.Context, id string) ([]CatalogArtist, error)

	// FetchFeaturedPlaylists retrieves the catalog's current featured playlists.
	FetchFeaturedPlaylists(ctx context.Context) ([]CatalogPlaylist, error)

	// Search runs a keyword search of the given kind (see the Kind constants).
	Search(ctx context.Context, keyword, kind string) ([]SearchResult, error)

	// Name returns the name of the catalog provider (e.g. "Spotify")
	Name() string
}

// SocialFetcher is the capability interface for the social search service.
type SocialFetcher interface {
	// SearchPosts retrieves up to limit posts matching the query.
	SearchPosts(ctx context.Context, query string, limit int) ([]SocialStatus, error)

	// Name returns the name of the social provider (e.g. "Twitter")
	Name() string
}

// Followers wraps the catalog's follower count envelope.
type Followers struct {
	Total int `json:"total"`
}

// ExternalURLs carries the provider's public link for a record.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// Owner identifies the account a playlist belongs to.
type Owner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// CatalogArtist is a raw catalog artist record.
type CatalogArtist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Genres       []string     `json:"genres"`
	Followers    Followers    `json:"followers"`
	Popularity   int          `json:"popularity"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// CatalogTrack is a raw catalog track record.
type CatalogTrack struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	DurationMS   int             `json:"duration_ms"`
	Popularity   int             `json:"popularity"`
	ExternalURLs ExternalURLs    `json:"external_urls"`
	Artists      []CatalogArtist `json:"artists"`
}

// CatalogPlaylistTrack is a track entry within a playlist record.
type CatalogPlaylistTrack struct {
	Track CatalogTrack `json:"track"`
}

// PlaylistTracks is the track collection envelope of a playlist record.
type PlaylistTracks struct {
	Total int                    `json:"total"`
	Items []CatalogPlaylistTrack `json:"items"`
}

// CatalogPlaylist is a raw catalog playlist record.
type CatalogPlaylist struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Owner        Owner          `json:"owner"`
	Followers    Followers      `json:"followers"`
	ExternalURLs ExternalURLs   `json:"external_urls"`
	Tracks       PlaylistTracks `json:"tracks"`
}

// SocialUser is the author of a social post.
type SocialUser struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SocialStatus is a raw social post record. CreatedAt keeps the
// provider's timestamp string untouched.
type SocialStatus struct {
	IDStr     string     `json:"id_str"`
	User      SocialUser `json:"user"`
	Text      string     `json:"text"`
	CreatedAt string     `json:"created_at"`
}

// SearchResult is one row of a catalog keyword search.
type SearchResult struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
}
