package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err is a sqlite primary-key or
// unique-constraint failure, the only way a second Save of the same id
// can fail under the insert-only schema.
func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	if serr.Code != sqlite3.ErrConstraint {
		return false
	}
	return serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		serr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// cacheTables lists every table counted by [CacheStats], entity tables first.
var cacheTables = []string{
	"artists",
	"tracks",
	"playlists",
	"social_posts",
	"track_artists",
	"playlist_tracks",
	"related_artists",
	"featured_playlists",
	"track_social_posts",
}

// CacheStats returns the row count of every cache table, keyed by table name.
func CacheStats(db *sql.DB) (map[string]int, error) {
	stats := make(map[string]int, len(cacheTables))

	for _, table := range cacheTables {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		stats[table] = count
	}

	return stats, nil
}

// CacheTables returns the table names reported by [CacheStats] in a stable order.
func CacheTables() []string {
	return cacheTables
}
