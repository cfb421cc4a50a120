package models

import (
	"fmt"
	"strings"
)

// Entity is the base interface for all cached domain types.
type Entity interface {
	Key() string     // Key returns the externally assigned identifier
	Validate() error // Validate checks the entity's data before persistence
}

// Artist is a catalog artist.
//
// Genres holds the remote genre list joined on ", " (the storage layer
// keeps it as a single column, matching the remote presentation).
type Artist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Genres      string `json:"genres"`
	Followers   int    `json:"followers"`
	Popularity  int    `json:"popularity"`
	ExternalURL string `json:"external_url"`
}

func (a *Artist) Key() string { return a.ID }

func (a *Artist) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("artist id is required")
	}
	if a.Name == "" {
		return fmt.Errorf("artist name is required")
	}
	if a.Popularity < 0 || a.Popularity > 100 {
		return fmt.Errorf("artist popularity must be 0-100, got %d", a.Popularity)
	}
	return nil
}

func (a *Artist) String() string {
	return fmt.Sprintf("Artist name: %s\nArtist genres: %s\nArtist followers: %d\nArtist popularity: %d\n",
		a.Name, a.Genres, a.Followers, a.Popularity)
}

// Track is a catalog track with its contributing artists in source order.
type Track struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DurationMS  int       `json:"duration_ms"`
	Popularity  int       `json:"popularity"`
	ExternalURL string    `json:"external_url"`
	Artists     []*Artist `json:"artists"`
}

func (t *Track) Key() string { return t.ID }

func (t *Track) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("track id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("track name is required")
	}
	if t.Popularity < 0 || t.Popularity > 100 {
		return fmt.Errorf("track popularity must be 0-100, got %d", t.Popularity)
	}
	if t.DurationMS < 0 {
		return fmt.Errorf("track duration must be non-negative, got %d", t.DurationMS)
	}
	return nil
}

// ArtistNames joins the names of the track's artists on ", ".
func (t *Track) ArtistNames() string {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

func (t *Track) String() string {
	return fmt.Sprintf("Track name: %s\nTrack artists: %s\nTrack duration (in ms): %d\nTrack popularity: %d\n",
		t.Name, t.ArtistNames(), t.DurationMS, t.Popularity)
}

// Playlist is a catalog playlist with its tracks in source order.
type Playlist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Owner       string   `json:"owner"`
	Description string   `json:"description"`
	Followers   int      `json:"followers"`
	ExternalURL string   `json:"external_url"`
	Tracks      []*Track `json:"tracks"`
}

func (p *Playlist) Key() string { return p.ID }

func (p *Playlist) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("playlist id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("playlist name is required")
	}
	return nil
}

func (p *Playlist) String() string {
	var tracks strings.Builder
	for i, t := range p.Tracks {
		fmt.Fprintf(&tracks, "\n  [%d]: %s", i+1, t.Name)
	}
	return fmt.Sprintf("Playlist name: %s\nPlaylist owner: %s\nPlaylist description: %s\nPlaylist followers: %d\nPlaylist tracks: %s\n",
		p.Name, p.Owner, p.Description, p.Followers, tracks.String())
}

// SocialPost is a post from the social search service that mentions a track.
//
// CreatedAt preserves the provider's timestamp string verbatim.
type SocialPost struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	AuthorURL string `json:"author_url"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

func (s *SocialPost) Key() string { return s.ID }

func (s *SocialPost) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("social post id is required")
	}
	if s.Author == "" {
		return fmt.Errorf("social post author is required")
	}
	return nil
}

func (s *SocialPost) String() string {
	return fmt.Sprintf("Post author: %s\nPost text: %s\n", s.Author, s.Text)
}

var (
	_ Entity = (*Artist)(nil)
	_ Entity = (*Track)(nil)
	_ Entity = (*Playlist)(nil)
	_ Entity = (*SocialPost)(nil)
)
