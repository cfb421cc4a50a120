package repositories

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/cratedig/cratedig/internal/models"
	"github.com/cratedig/cratedig/internal/shared"
)

// FeaturedPlaylistRepository persists featured-playlist snapshots.
//
// A snapshot is one batch of playlist ids sharing a single capture tag
// and a generated snapshot id; the playlists themselves live in the
// playlists table and must already be saved.
type FeaturedPlaylistRepository struct {
	db        *sql.DB
	playlists *PlaylistRepository
	now       func() time.Time
}

// NewFeaturedPlaylistRepository creates a new FeaturedPlaylistRepository resolving members through the given repository
func NewFeaturedPlaylistRepository(db *sql.DB, playlists *PlaylistRepository) *FeaturedPlaylistRepository {
	return &FeaturedPlaylistRepository{db: db, playlists: playlists, now: time.Now}
}

// captureTag builds the snapshot tag by concatenating the unix seconds
// and microsecond fraction of the capture instant into one integer, so
// tags from successive captures sort chronologically.
func captureTag(now time.Time) int64 {
	tag, err := strconv.ParseInt(fmt.Sprintf("%d%06d", now.Unix(), now.Nanosecond()/1000), 10, 64)
	if err != nil {
		return now.UnixMicro()
	}
	return tag
}

// Save persists one snapshot row per playlist in list order. The tag is
// formed once per call so every row of the batch shares it; the shared
// tag is returned. Saving a second snapshot in the same microsecond
// returns a wrapped [shared.ErrAlreadyCached].
func (r *FeaturedPlaylistRepository) Save(playlists []*models.Playlist) (int64, error) {
	tag := captureTag(r.now())
	snapshotID := shared.GenerateID()

	for i, playlist := range playlists {
		_, err := r.db.Exec(
			"INSERT INTO featured_playlists (snapshot_id, captured_at, playlist_id, position) VALUES (?, ?, ?, ?)",
			snapshotID, tag, playlist.ID, i,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return 0, fmt.Errorf("featured snapshot %d: %w", tag, shared.ErrAlreadyCached)
			}
			return 0, fmt.Errorf("failed to insert featured playlist: %w", err)
		}
	}

	return tag, nil
}

// Find returns the playlists of the most recent snapshot in stored
// order. ok is false when no snapshot exists; ok is true with an empty
// list when snapshot rows exist but none of their playlists resolved.
func (r *FeaturedPlaylistRepository) Find() ([]*models.Playlist, bool, error) {
	rows, err := r.db.Query(`
		SELECT playlist_id FROM featured_playlists
		WHERE captured_at = (SELECT MAX(captured_at) FROM featured_playlists)
		ORDER BY position
	`)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query featured playlists: %w", err)
	}
	defer rows.Close()

	var playlistIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, false, fmt.Errorf("failed to scan featured playlist: %w", err)
		}
		playlistIDs = append(playlistIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("row iteration error: %w", err)
	}

	if len(playlistIDs) == 0 {
		return nil, false, nil
	}

	playlists := []*models.Playlist{}
	for _, id := range playlistIDs {
		playlist, err := r.playlists.Find(id)
		if err != nil {
			return nil, false, err
		}
		if playlist == nil {
			continue
		}
		playlists = append(playlists, playlist)
	}

	return playlists, true, nil
}
