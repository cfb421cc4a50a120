package repositories

import (
	"database/sql"
	"fmt"

	"github.com/cratedig/cratedig/internal/models"
	"github.com/cratedig/cratedig/internal/shared"
)

// ArtistRepository persists [models.Artist] rows.
type ArtistRepository struct {
	db *sql.DB
}

// NewArtistRepository creates a new ArtistRepository with the given database connection
func NewArtistRepository(db *sql.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// Save inserts an artist. Saving an id that is already cached returns
// a wrapped [shared.ErrAlreadyCached].
func (r *ArtistRepository) Save(artist *models.Artist) error {
	if err := artist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO artists (id, name, genres, followers, popularity, external_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		artist.ID,
		artist.Name,
		artist.Genres,
		artist.Followers,
		artist.Popularity,
		artist.ExternalURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("artist %s: %w", artist.ID, shared.ErrAlreadyCached)
		}
		return fmt.Errorf("failed to insert artist: %w", err)
	}

	return nil
}

// Find retrieves an artist by id, returning (nil, nil) when no row matches.
func (r *ArtistRepository) Find(id string) (*models.Artist, error) {
	query := `
		SELECT id, name, genres, followers, popularity, external_url
		FROM artists
		WHERE id = ?
	`

	var artist models.Artist
	err := r.db.QueryRow(query, id).Scan(
		&artist.ID,
		&artist.Name,
		&artist.Genres,
		&artist.Followers,
		&artist.Popularity,
		&artist.ExternalURL,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan artist: %w", err)
	}

	return &artist, nil
}
