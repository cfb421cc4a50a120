package repositories

import (
	"database/sql"
	"fmt"

	"github.com/cratedig/cratedig/internal/models"
	"github.com/cratedig/cratedig/internal/shared"
)

// TrackRepository persists [models.Track] rows and the track_artists
// join table.
//
// Save does not recursively save the track's artists; callers must have
// cached them already. Find reassembles the artist list in position
// order through [ArtistRepository.Find].
type TrackRepository struct {
	db      *sql.DB
	artists *ArtistRepository
}

// NewTrackRepository creates a new TrackRepository resolving artists through the given repository
func NewTrackRepository(db *sql.DB, artists *ArtistRepository) *TrackRepository {
	return &TrackRepository{db: db, artists: artists}
}

// Save inserts a track's scalar row, then one join row per artist on the
// in-memory object, preserving list order via the position column.
// Saving an id that is already cached returns a wrapped
// [shared.ErrAlreadyCached]. A repeated artist within one list is
// recorded once.
func (r *TrackRepository) Save(track *models.Track) error {
	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO tracks (id, name, duration_ms, popularity, external_url)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		track.ID,
		track.Name,
		track.DurationMS,
		track.Popularity,
		track.ExternalURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("track %s: %w", track.ID, shared.ErrAlreadyCached)
		}
		return fmt.Errorf("failed to insert track: %w", err)
	}

	for i, artist := range track.Artists {
		_, err := r.db.Exec(
			"INSERT INTO track_artists (track_id, artist_id, position) VALUES (?, ?, ?)",
			track.ID, artist.ID, i,
		)
		if err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return fmt.Errorf("failed to insert track artist: %w", err)
		}
	}

	return nil
}

// Find retrieves a track by id with its artists in stored order,
// returning (nil, nil) when no row matches. Join rows whose artist has
// no backing row are skipped.
func (r *TrackRepository) Find(id string) (*models.Track, error) {
	query := `
		SELECT id, name, duration_ms, popularity, external_url
		FROM tracks
		WHERE id = ?
	`

	var track models.Track
	err := r.db.QueryRow(query, id).Scan(
		&track.ID,
		&track.Name,
		&track.DurationMS,
		&track.Popularity,
		&track.ExternalURL,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan track: %w", err)
	}

	artistIDs, err := r.artistIDs(id)
	if err != nil {
		return nil, err
	}

	for _, artistID := range artistIDs {
		artist, err := r.artists.Find(artistID)
		if err != nil {
			return nil, err
		}
		if artist == nil {
			continue
		}
		track.Artists = append(track.Artists, artist)
	}

	return &track, nil
}

// artistIDs returns the track's artist ids in position order.
func (r *TrackRepository) artistIDs(trackID string) ([]string, error) {
	rows, err := r.db.Query(
		"SELECT artist_id FROM track_artists WHERE track_id = ? ORDER BY position",
		trackID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query track artists: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan track artist: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}
