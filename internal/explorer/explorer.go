package explorer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cratedig/cratedig/internal/models"
	"github.com/cratedig/cratedig/internal/repositories"
	"github.com/cratedig/cratedig/internal/services"
	"github.com/cratedig/cratedig/internal/shared"
)

const (
	defaultFeaturedLimit = 5
	defaultPostLimit     = 100
)

// Options tune the explorer's remote-fetch behavior.
type Options struct {
	FeaturedLimit int // max featured playlists kept per snapshot (default 5)
	PostLimit     int // max posts requested per track search (default 100)
}

// Explorer serves music entities local-first, fetching and persisting
// on a cache miss. See the package documentation for the algorithm.
type Explorer struct {
	db      *sql.DB
	catalog services.CatalogFetcher
	social  services.SocialFetcher

	artists   *repositories.ArtistRepository
	tracks    *repositories.TrackRepository
	playlists *repositories.PlaylistRepository
	posts     *repositories.SocialPostRepository
	related   *repositories.RelatedArtistRepository
	featured  *repositories.FeaturedPlaylistRepository

	logger        *log.Logger
	featuredLimit int
	postLimit     int
}

// New creates an Explorer over the given database handle and fetch
// collaborators. The repositories are constructed here so they share
// one handle and resolve members through each other.
func New(db *sql.DB, catalog services.CatalogFetcher, social services.SocialFetcher, logger *log.Logger, opts Options) *Explorer {
	if opts.FeaturedLimit <= 0 {
		opts.FeaturedLimit = defaultFeaturedLimit
	}
	if opts.PostLimit <= 0 {
		opts.PostLimit = defaultPostLimit
	}

	artists := repositories.NewArtistRepository(db)
	tracks := repositories.NewTrackRepository(db, artists)
	playlists := repositories.NewPlaylistRepository(db, tracks)

	return &Explorer{
		db:            db,
		catalog:       catalog,
		social:        social,
		artists:       artists,
		tracks:        tracks,
		playlists:     playlists,
		posts:         repositories.NewSocialPostRepository(db),
		related:       repositories.NewRelatedArtistRepository(db, artists),
		featured:      repositories.NewFeaturedPlaylistRepository(db, playlists),
		logger:        logger,
		featuredLimit: opts.FeaturedLimit,
		postLimit:     opts.PostLimit,
	}
}

// DB exposes the underlying handle for table-level reporting.
func (e *Explorer) DB() *sql.DB {
	return e.db
}

// GetArtist returns the artist with the given id, fetching and caching
// it on a miss.
func (e *Explorer) GetArtist(ctx context.Context, id string) (*models.Artist, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: artist id is required", shared.ErrInvalidInput)
	}

	cached, err := e.artists.Find(id)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		e.logger.Info("cache hit", "kind", "artist", "id", id)
		return cached, nil
	}
	e.logger.Info("cache miss", "kind", "artist", "id", id)

	raw, err := e.catalog.FetchArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: artist %s: %v", shared.ErrServiceUnavailable, id, err)
	}

	artist := convertArtist(raw)
	if err := e.saveArtist(artist); err != nil {
		return nil, err
	}

	return artist, nil
}

// GetTrack returns the track with the given id, fetching and caching it
// on a miss. Contributing artists resolve through [Explorer.GetArtist];
// an artist that cannot be resolved is logged and omitted.
func (e *Explorer) GetTrack(ctx context.Context, id string) (*models.Track, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: track id is required", shared.ErrInvalidInput)
	}

	cached, err := e.tracks.Find(id)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		e.logger.Info("cache hit", "kind", "track", "id", id)
		return cached, nil
	}
	e.logger.Info("cache miss", "kind", "track", "id", id)

	raw, err := e.catalog.FetchTrack(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: track %s: %v", shared.ErrServiceUnavailable, id, err)
	}

	track := &models.Track{
		ID:          raw.ID,
		Name:        raw.Name,
		DurationMS:  raw.DurationMS,
		Popularity:  raw.Popularity,
		ExternalURL: raw.ExternalURLs.Spotify,
	}
	for _, member := range raw.Artists {
		artist, err := e.GetArtist(ctx, member.ID)
		if err != nil {
			e.logger.Warn("skipping unresolvable track artist", "track", id, "artist", member.ID, "error", err)
			continue
		}
		track.Artists = append(track.Artists, artist)
	}

	if err := e.saveTrack(track); err != nil {
		return nil, err
	}

	return track, nil
}

// GetPlaylist returns the playlist with the given id, fetching and
// caching it on a miss. Tracks resolve through [Explorer.GetTrack]; a
// track that cannot be resolved is logged and omitted.
func (e *Explorer) GetPlaylist(ctx context.Context, id string) (*models.Playlist, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: playlist id is required", shared.ErrInvalidInput)
	}

	cached, err := e.playlists.Find(id)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		e.logger.Info("cache hit", "kind", "playlist", "id", id)
		return cached, nil
	}
	e.logger.Info("cache miss", "kind", "playlist", "id", id)

	raw, err := e.catalog.FetchPlaylist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: playlist %s: %v", shared.ErrServiceUnavailable, id, err)
	}

	playlist := e.convertPlaylist(ctx, raw)
	if err := e.savePlaylist(playlist); err != nil {
		return nil, err
	}

	return playlist, nil
}

// GetRelatedArtists returns the artists related to the given artist,
// fetching and caching the relation on a miss. The owning artist is
// cached first.
func (e *Explorer) GetRelatedArtists(ctx context.Context, artistID string) ([]*models.Artist, error) {
	if _, err := e.GetArtist(ctx, artistID); err != nil {
		return nil, err
	}

	cached, ok, err := e.related.Find(artistID)
	if err != nil {
		return nil, err
	}
	if ok {
		e.logger.Info("cache hit", "kind", "related", "id", artistID)
		return cached, nil
	}
	e.logger.Info("cache miss", "kind", "related", "id", artistID)

	raws, err := e.catalog.FetchRelatedArtists(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("%w: related artists for %s: %v", shared.ErrServiceUnavailable, artistID, err)
	}

	artists := []*models.Artist{}
	for _, raw := range raws {
		artist := convertArtist(&raw)
		if err := e.saveArtist(artist); err != nil {
			e.logger.Warn("skipping unsaveable related artist", "artist", artist.ID, "error", err)
			continue
		}
		artists = append(artists, artist)
	}

	if err := e.related.Save(artistID, artists); err != nil {
		return nil, err
	}

	return artists, nil
}

// GetFeaturedPlaylists returns the most recent featured snapshot,
// capturing a new one from the catalog when none is cached. At most the
// configured cap of remote playlists is kept; each resolves through
// [Explorer.GetPlaylist] and unresolvable ones are logged and omitted.
func (e *Explorer) GetFeaturedPlaylists(ctx context.Context) ([]*models.Playlist, error) {
	cached, ok, err := e.featured.Find()
	if err != nil {
		return nil, err
	}
	if ok {
		e.logger.Info("cache hit", "kind", "featured")
		return cached, nil
	}
	e.logger.Info("cache miss", "kind", "featured")

	raws, err := e.catalog.FetchFeaturedPlaylists(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: featured playlists: %v", shared.ErrServiceUnavailable, err)
	}
	if len(raws) > e.featuredLimit {
		raws = raws[:e.featuredLimit]
	}

	playlists := []*models.Playlist{}
	for _, raw := range raws {
		playlist, err := e.GetPlaylist(ctx, raw.ID)
		if err != nil {
			e.logger.Warn("skipping unresolvable featured playlist", "playlist", raw.ID, "error", err)
			continue
		}
		playlists = append(playlists, playlist)
	}

	tag, err := e.featured.Save(playlists)
	if err != nil && !errors.Is(err, shared.ErrAlreadyCached) {
		return nil, err
	}
	e.logger.Info("captured featured snapshot", "tag", tag, "playlists", len(playlists))

	return playlists, nil
}

// GetPostsByTrack returns the social posts cached for the given track,
// searching the social service on a miss. The track itself is cached
// first and its name and artists form the search query. A miss with no
// social service configured returns [shared.ErrMissingCredentials];
// cached posts are still served without one.
func (e *Explorer) GetPostsByTrack(ctx context.Context, trackID string) ([]*models.SocialPost, error) {
	track, err := e.GetTrack(ctx, trackID)
	if err != nil {
		return nil, err
	}

	cached, ok, err := e.posts.FindByTrack(trackID)
	if err != nil {
		return nil, err
	}
	if ok {
		e.logger.Info("cache hit", "kind", "posts", "id", trackID)
		return cached, nil
	}
	e.logger.Info("cache miss", "kind", "posts", "id", trackID)

	if e.social == nil {
		return nil, fmt.Errorf("%w: social service not configured", shared.ErrMissingCredentials)
	}

	query := strings.TrimSpace(track.Name + " " + track.ArtistNames())
	statuses, err := e.social.SearchPosts(ctx, query, e.postLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: posts for track %s: %v", shared.ErrServiceUnavailable, trackID, err)
	}

	posts := []*models.SocialPost{}
	for _, status := range statuses {
		post := convertStatus(status)
		if err := e.savePost(post); err != nil {
			e.logger.Warn("skipping unsaveable post", "post", post.ID, "error", err)
			continue
		}
		posts = append(posts, post)
	}

	if err := e.posts.SaveByTrack(trackID, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// Search runs a keyword search against the catalog. Results are not
// cached; fetching one of them through a Get* operation is.
func (e *Explorer) Search(ctx context.Context, keyword, kind string) ([]services.SearchResult, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: search keyword is required", shared.ErrInvalidInput)
	}

	results, err := e.catalog.Search(ctx, keyword, kind)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidArgument) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: search %q: %v", shared.ErrServiceUnavailable, keyword, err)
	}

	return results, nil
}

// convertPlaylist builds the domain playlist, resolving each track
// entry through [Explorer.GetTrack] and omitting the unresolvable.
func (e *Explorer) convertPlaylist(ctx context.Context, raw *services.CatalogPlaylist) *models.Playlist {
	playlist := &models.Playlist{
		ID:          raw.ID,
		Name:        raw.Name,
		Owner:       raw.Owner.DisplayName,
		Description: raw.Description,
		Followers:   raw.Followers.Total,
		ExternalURL: raw.ExternalURLs.Spotify,
	}
	if playlist.Owner == "" {
		playlist.Owner = raw.Owner.ID
	}

	for _, item := range raw.Tracks.Items {
		track, err := e.GetTrack(ctx, item.Track.ID)
		if err != nil {
			e.logger.Warn("skipping unresolvable playlist track", "playlist", raw.ID, "track", item.Track.ID, "error", err)
			continue
		}
		playlist.Tracks = append(playlist.Tracks, track)
	}

	return playlist
}

// saveArtist persists an artist, treating an already-cached row as success.
func (e *Explorer) saveArtist(artist *models.Artist) error {
	if err := e.artists.Save(artist); err != nil && !errors.Is(err, shared.ErrAlreadyCached) {
		return err
	}
	return nil
}

func (e *Explorer) saveTrack(track *models.Track) error {
	if err := e.tracks.Save(track); err != nil && !errors.Is(err, shared.ErrAlreadyCached) {
		return err
	}
	return nil
}

func (e *Explorer) savePlaylist(playlist *models.Playlist) error {
	if err := e.playlists.Save(playlist); err != nil && !errors.Is(err, shared.ErrAlreadyCached) {
		return err
	}
	return nil
}

func (e *Explorer) savePost(post *models.SocialPost) error {
	if err := e.posts.Save(post); err != nil && !errors.Is(err, shared.ErrAlreadyCached) {
		return err
	}
	return nil
}

func convertArtist(raw *services.CatalogArtist) *models.Artist {
	return &models.Artist{
		ID:          raw.ID,
		Name:        raw.Name,
		Genres:      strings.Join(raw.Genres, ", "),
		Followers:   raw.Followers.Total,
		Popularity:  raw.Popularity,
		ExternalURL: raw.ExternalURLs.Spotify,
	}
}

func convertStatus(status services.SocialStatus) *models.SocialPost {
	return &models.SocialPost{
		ID:        status.IDStr,
		Author:    status.User.Name,
		AuthorURL: status.User.URL,
		Text:      status.Text,
		CreatedAt: status.CreatedAt,
	}
}
