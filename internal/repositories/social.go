package repositories

import (
	"database/sql"
	"fmt"

	"github.com/cratedig/cratedig/internal/models"
	"github.com/cratedig/cratedig/internal/shared"
)

// SocialPostRepository persists [models.SocialPost] rows and the
// track_social_posts pairing table.
type SocialPostRepository struct {
	db *sql.DB
}

// NewSocialPostRepository creates a new SocialPostRepository with the given database connection
func NewSocialPostRepository(db *sql.DB) *SocialPostRepository {
	return &SocialPostRepository{db: db}
}

// Save inserts a social post. Saving an id that is already cached
// returns a wrapped [shared.ErrAlreadyCached]; unlike the other entity
// kinds this is common here, since the same post can surface in the
// search results of many tracks, and callers decide whether to treat it
// as benign.
func (r *SocialPostRepository) Save(post *models.SocialPost) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO social_posts (id, author, author_url, text, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		post.ID,
		post.Author,
		post.AuthorURL,
		post.Text,
		post.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("social post %s: %w", post.ID, shared.ErrAlreadyCached)
		}
		return fmt.Errorf("failed to insert social post: %w", err)
	}

	return nil
}

// Find retrieves a social post by id, returning (nil, nil) when no row matches.
func (r *SocialPostRepository) Find(id string) (*models.SocialPost, error) {
	query := `
		SELECT id, author, author_url, text, created_at
		FROM social_posts
		WHERE id = ?
	`

	var post models.SocialPost
	err := r.db.QueryRow(query, id).Scan(
		&post.ID,
		&post.Author,
		&post.AuthorURL,
		&post.Text,
		&post.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan social post: %w", err)
	}

	return &post, nil
}

// SaveByTrack records one pairing row per post for the given track in
// list order. The posts themselves must already be saved. A post paired
// with the track twice is recorded once.
func (r *SocialPostRepository) SaveByTrack(trackID string, posts []*models.SocialPost) error {
	for i, post := range posts {
		_, err := r.db.Exec(
			"INSERT INTO track_social_posts (track_id, post_id, position) VALUES (?, ?, ?)",
			trackID, post.ID, i,
		)
		if err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return fmt.Errorf("failed to insert track post pairing: %w", err)
		}
	}

	return nil
}

// FindByTrack returns the posts paired with a track in stored order.
// ok is false when no pairing rows exist (nothing cached for this
// track); ok is true with an empty list when pairing rows exist but
// none of their posts resolved.
func (r *SocialPostRepository) FindByTrack(trackID string) ([]*models.SocialPost, bool, error) {
	rows, err := r.db.Query(
		"SELECT post_id FROM track_social_posts WHERE track_id = ? ORDER BY position",
		trackID,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query track posts: %w", err)
	}
	defer rows.Close()

	var postIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, false, fmt.Errorf("failed to scan track post: %w", err)
		}
		postIDs = append(postIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("row iteration error: %w", err)
	}

	if len(postIDs) == 0 {
		return nil, false, nil
	}

	posts := []*models.SocialPost{}
	for _, id := range postIDs {
		post, err := r.Find(id)
		if err != nil {
			return nil, false, err
		}
		if post == nil {
			continue
		}
		posts = append(posts, post)
	}

	return posts, true, nil
}
