package repositories

import (
	"database/sql"
	"fmt"

	"github.com/cratedig/cratedig/internal/models"
)

// RelatedArtistRepository persists the related_artists relation.
//
// The relation is undirected in the data but stored directed
// (to_artist_id → related_artist_id), one row per edge.
type RelatedArtistRepository struct {
	db      *sql.DB
	artists *ArtistRepository
}

// NewRelatedArtistRepository creates a new RelatedArtistRepository resolving members through the given repository
func NewRelatedArtistRepository(db *sql.DB, artists *ArtistRepository) *RelatedArtistRepository {
	return &RelatedArtistRepository{db: db, artists: artists}
}

// Save records one edge per related artist in list order. The artists
// themselves must already be saved. A repeated edge is recorded once.
func (r *RelatedArtistRepository) Save(toArtistID string, artists []*models.Artist) error {
	for i, artist := range artists {
		_, err := r.db.Exec(
			"INSERT INTO related_artists (to_artist_id, related_artist_id, position) VALUES (?, ?, ?)",
			toArtistID, artist.ID, i,
		)
		if err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return fmt.Errorf("failed to insert related artist: %w", err)
		}
	}

	return nil
}

// Find returns the artists related to toArtistID in stored order.
// ok is false when no relation rows exist; ok is true with an empty
// list when rows exist but none of their artists resolved.
func (r *RelatedArtistRepository) Find(toArtistID string) ([]*models.Artist, bool, error) {
	rows, err := r.db.Query(
		"SELECT related_artist_id FROM related_artists WHERE to_artist_id = ? ORDER BY position",
		toArtistID,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query related artists: %w", err)
	}
	defer rows.Close()

	var artistIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, false, fmt.Errorf("failed to scan related artist: %w", err)
		}
		artistIDs = append(artistIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("row iteration error: %w", err)
	}

	if len(artistIDs) == 0 {
		return nil, false, nil
	}

	artists := []*models.Artist{}
	for _, id := range artistIDs {
		artist, err := r.artists.Find(id)
		if err != nil {
			return nil, false, err
		}
		if artist == nil {
			continue
		}
		artists = append(artists, artist)
	}

	return artists, true, nil
}
