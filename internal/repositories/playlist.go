package repositories

import (
	"database/sql"
	"fmt"

	"github.com/cratedig/cratedig/internal/models"
	"github.com/cratedig/cratedig/internal/shared"
)

// PlaylistRepository persists [models.Playlist] rows and the
// playlist_tracks join table.
//
// Save does not recursively save the playlist's tracks; callers must
// have cached them already. Find reassembles the track list in position
// order through [TrackRepository.Find], which in turn resolves each
// track's artists. The relation graph is stratified by type
// (playlist→track→artist), so reconstruction depth is bounded and
// cycles cannot occur.
type PlaylistRepository struct {
	db     *sql.DB
	tracks *TrackRepository
}

// NewPlaylistRepository creates a new PlaylistRepository resolving tracks through the given repository
func NewPlaylistRepository(db *sql.DB, tracks *TrackRepository) *PlaylistRepository {
	return &PlaylistRepository{db: db, tracks: tracks}
}

// Save inserts a playlist's scalar row, then one join row per track on
// the in-memory object in list order. A playlist may repeat a track, so
// join rows are keyed on position rather than the pairing. Saving an id
// that is already cached returns a wrapped [shared.ErrAlreadyCached].
func (r *PlaylistRepository) Save(playlist *models.Playlist) error {
	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO playlists (id, name, owner_name, description, followers, external_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		playlist.ID,
		playlist.Name,
		playlist.Owner,
		playlist.Description,
		playlist.Followers,
		playlist.ExternalURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("playlist %s: %w", playlist.ID, shared.ErrAlreadyCached)
		}
		return fmt.Errorf("failed to insert playlist: %w", err)
	}

	for i, track := range playlist.Tracks {
		_, err := r.db.Exec(
			"INSERT INTO playlist_tracks (playlist_id, track_id, position) VALUES (?, ?, ?)",
			playlist.ID, track.ID, i,
		)
		if err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return fmt.Errorf("failed to insert playlist track: %w", err)
		}
	}

	return nil
}

// Find retrieves a playlist by id with its tracks in stored order,
// returning (nil, nil) when no row matches. Join rows whose track has
// no backing row are skipped.
func (r *PlaylistRepository) Find(id string) (*models.Playlist, error) {
	query := `
		SELECT id, name, owner_name, description, followers, external_url
		FROM playlists
		WHERE id = ?
	`

	var playlist models.Playlist
	err := r.db.QueryRow(query, id).Scan(
		&playlist.ID,
		&playlist.Name,
		&playlist.Owner,
		&playlist.Description,
		&playlist.Followers,
		&playlist.ExternalURL,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan playlist: %w", err)
	}

	rows, err := r.db.Query(
		"SELECT track_id FROM playlist_tracks WHERE playlist_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist tracks: %w", err)
	}
	defer rows.Close()

	var trackIDs []string
	for rows.Next() {
		var trackID string
		if err := rows.Scan(&trackID); err != nil {
			return nil, fmt.Errorf("failed to scan playlist track: %w", err)
		}
		trackIDs = append(trackIDs, trackID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	for _, trackID := range trackIDs {
		track, err := r.tracks.Find(trackID)
		if err != nil {
			return nil, err
		}
		if track == nil {
			continue
		}
		playlist.Tracks = append(playlist.Tracks, track)
	}

	return &playlist, nil
}
