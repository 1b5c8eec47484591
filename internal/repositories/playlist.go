package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/shared"
)

// PlaylistRepository implements models.Repository[*models.PersistedPlaylist] for playlist caching.
//
// Handles playlist CRUD operations with soft delete support and remote ID lookups.
type PlaylistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository creates a new PlaylistRepository with the given database connection
func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create inserts a new playlist into the database with generated ID and sequence
func (r *PlaylistRepository) Create(playlist *models.PersistedPlaylist) error {
	sequence, err := NextSequence(r.db, "playlists")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	playlist.SetID(id)

	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO playlists (id, sequence, remote_id, profile_id, name, description, prompt, track_count, public, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		playlist.RemoteID(),
		playlist.ProfileID(),
		playlist.Name(),
		playlist.Description(),
		playlist.Prompt(),
		playlist.TrackCount(),
		playlist.Public(),
		playlist.CreatedAt(),
		playlist.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert playlist: %w", err)
	}

	return nil
}

// Get retrieves a playlist by ID, excluding soft-deleted playlists
func (r *PlaylistRepository) Get(id string) (*models.PersistedPlaylist, error) {
	query := `
		SELECT id, sequence, remote_id, profile_id, name, description, prompt, track_count, public, created_at, updated_at, deleted_at
		FROM playlists
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByRemoteID retrieves a playlist by its backend identifier
func (r *PlaylistRepository) GetByRemoteID(remoteID string) (*models.PersistedPlaylist, error) {
	query := `
		SELECT id, sequence, remote_id, profile_id, name, description, prompt, track_count, public, created_at, updated_at, deleted_at
		FROM playlists
		WHERE remote_id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, remoteID))
}

// Update modifies an existing playlist in the database
func (r *PlaylistRepository) Update(playlist *models.PersistedPlaylist) error {
	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	playlist.SetUpdatedAt(now)

	query := `
		UPDATE playlists
		SET name = ?, description = ?, prompt = ?, track_count = ?, public = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		playlist.Name(),
		playlist.Description(),
		playlist.Prompt(),
		playlist.TrackCount(),
		playlist.Public(),
		now,
		playlist.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("playlist not found or already deleted: %s", playlist.ID())
	}

	return nil
}

// Delete soft-deletes a playlist by ID
func (r *PlaylistRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE playlists
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("playlist not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all playlists matching the given criteria, excluding soft-deleted playlists
func (r *PlaylistRepository) List(criteria map[string]any) ([]*models.PersistedPlaylist, error) {
	query := `
		SELECT id, sequence, remote_id, profile_id, name, description, prompt, track_count, public, created_at, updated_at, deleted_at
		FROM playlists
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if profileID, ok := criteria["profile_id"].(string); ok && profileID != "" {
		query += " AND profile_id = ?"
		args = append(args, profileID)
	}

	if public, ok := criteria["public"].(bool); ok {
		query += " AND public = ?"
		args = append(args, public)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []*models.PersistedPlaylist
	for rows.Next() {
		playlist, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return playlists, nil
}

// SetTracks replaces the junction rows for a playlist with the given track IDs in order.
func (r *PlaylistRepository) SetTracks(playlistID string, trackIDs []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM playlist_tracks WHERE playlist_id = ?", playlistID); err != nil {
		return fmt.Errorf("failed to clear playlist tracks: %w", err)
	}

	for position, trackID := range trackIDs {
		_, err := tx.Exec(
			"INSERT INTO playlist_tracks (playlist_id, track_id, position) VALUES (?, ?, ?)",
			playlistID, trackID, position,
		)
		if err != nil {
			return fmt.Errorf("failed to insert playlist track: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit playlist tracks: %w", err)
	}

	return nil
}

// TrackIDs returns the track IDs for a playlist ordered by position.
func (r *PlaylistRepository) TrackIDs(playlistID string) ([]string, error) {
	rows, err := r.db.Query(
		"SELECT track_id FROM playlist_tracks WHERE playlist_id = ? ORDER BY position ASC",
		playlistID,
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

	return trackIDs, nil
}

// scanOne scans a single row into a [models.PersistedPlaylist]
func (r *PlaylistRepository) scanOne(row *sql.Row) (*models.PersistedPlaylist, error) {
	var (
		id          string
		sequence    int
		remoteID    string
		profileID   string
		name        string
		description string
		prompt      string
		trackCount  int
		public      bool
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	err := row.Scan(&id, &sequence, &remoteID, &profileID, &name, &description, &prompt, &trackCount, &public, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("playlist not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan playlist: %w", err)
	}

	dto := models.Playlist{
		ID:          remoteID,
		Name:        name,
		Description: description,
		Prompt:      prompt,
		TrackCount:  trackCount,
		Public:      public,
	}

	playlist := models.NewPersistedPlaylist(sequence, remoteID, profileID, dto)
	playlist.SetID(id)
	playlist.SetCreatedAt(createdAt)
	playlist.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		playlist.SetDeletedAt(&deletedAt.Time)
	}

	return playlist, nil
}

// scanRow scans a row from [sql.Rows] into a [models.PersistedPlaylist]
func (r *PlaylistRepository) scanRow(rows *sql.Rows) (*models.PersistedPlaylist, error) {
	var (
		id          string
		sequence    int
		remoteID    string
		profileID   string
		name        string
		description string
		prompt      string
		trackCount  int
		public      bool
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	err := rows.Scan(&id, &sequence, &remoteID, &profileID, &name, &description, &prompt, &trackCount, &public, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan playlist: %w", err)
	}

	dto := models.Playlist{
		ID:          remoteID,
		Name:        name,
		Description: description,
		Prompt:      prompt,
		TrackCount:  trackCount,
		Public:      public,
	}

	playlist := models.NewPersistedPlaylist(sequence, remoteID, profileID, dto)
	playlist.SetID(id)
	playlist.SetCreatedAt(createdAt)
	playlist.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		playlist.SetDeletedAt(&deletedAt.Time)
	}

	return playlist, nil
}
