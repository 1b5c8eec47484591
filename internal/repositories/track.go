package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/shared"
)

// TrackRepository implements models.Repository[*models.PersistedTrack] for track caching.
type TrackRepository struct {
	db *sql.DB
}

// NewTrackRepository creates a new TrackRepository with the given database connection
func NewTrackRepository(db *sql.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

// Create inserts a new track into the database with generated ID and sequence
func (r *TrackRepository) Create(track *models.PersistedTrack) error {
	sequence, err := NextSequence(r.db, "tracks")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	track.SetID(id)

	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO tracks (id, sequence, remote_id, title, artist, album, duration, isrc, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		track.RemoteID(),
		track.Title(),
		track.Artist(),
		track.Album(),
		track.Duration(),
		track.ISRC(),
		track.CreatedAt(),
		track.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert track: %w", err)
	}

	return nil
}

// Get retrieves a track by ID, excluding soft-deleted tracks
func (r *TrackRepository) Get(id string) (*models.PersistedTrack, error) {
	query := `
		SELECT id, sequence, remote_id, title, artist, album, duration, isrc, created_at, updated_at, deleted_at
		FROM tracks
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByRemoteID retrieves a track by its backend identifier
func (r *TrackRepository) GetByRemoteID(remoteID string) (*models.PersistedTrack, error) {
	query := `
		SELECT id, sequence, remote_id, title, artist, album, duration, isrc, created_at, updated_at, deleted_at
		FROM tracks
		WHERE remote_id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, remoteID))
}

// GetByISRC retrieves a track by its ISRC code
func (r *TrackRepository) GetByISRC(isrc string) (*models.PersistedTrack, error) {
	query := `
		SELECT id, sequence, remote_id, title, artist, album, duration, isrc, created_at, updated_at, deleted_at
		FROM tracks
		WHERE isrc = ? AND isrc != '' AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, isrc))
}

// Update modifies an existing track in the database
func (r *TrackRepository) Update(track *models.PersistedTrack) error {
	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	track.SetUpdatedAt(now)

	query := `
		UPDATE tracks
		SET title = ?, artist = ?, album = ?, duration = ?, isrc = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		track.Title(),
		track.Artist(),
		track.Album(),
		track.Duration(),
		track.ISRC(),
		now,
		track.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update track: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("track not found or already deleted: %s", track.ID())
	}

	return nil
}

// Delete soft-deletes a track by ID
func (r *TrackRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE tracks
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("track not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all tracks matching the given criteria, excluding soft-deleted tracks
func (r *TrackRepository) List(criteria map[string]any) ([]*models.PersistedTrack, error) {
	query := `
		SELECT id, sequence, remote_id, title, artist, album, duration, isrc, created_at, updated_at, deleted_at
		FROM tracks
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if artist, ok := criteria["artist"].(string); ok && artist != "" {
		query += " AND artist = ?"
		args = append(args, artist)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []*models.PersistedTrack
	for rows.Next() {
		track, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tracks, nil
}

// CacheTrack stores a backend track in the local cache, updating the cached
// copy when the remote ID is already present.
func (r *TrackRepository) CacheTrack(track models.Track) (*models.PersistedTrack, error) {
	existing, err := r.GetByRemoteID(track.ID)
	if err == nil {
		updated := models.NewPersistedTrack(existing.Sequence(), track.ID, track)
		updated.SetID(existing.ID())
		if err := r.Update(updated); err != nil {
			return nil, err
		}
		return updated, nil
	}

	persisted := models.NewPersistedTrack(0, track.ID, track)
	if err := r.Create(persisted); err != nil {
		return nil, err
	}
	return persisted, nil
}

// scanOne scans a single row into a [models.PersistedTrack]
func (r *TrackRepository) scanOne(row *sql.Row) (*models.PersistedTrack, error) {
	var (
		id        string
		sequence  int
		remoteID  string
		title     string
		artist    string
		album     string
		duration  int
		isrc      string
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := row.Scan(&id, &sequence, &remoteID, &title, &artist, &album, &duration, &isrc, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("track not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan track: %w", err)
	}

	dto := models.Track{
		ID:       remoteID,
		Title:    title,
		Artist:   artist,
		Album:    album,
		Duration: duration,
		ISRC:     isrc,
	}

	track := models.NewPersistedTrack(sequence, remoteID, dto)
	track.SetID(id)
	track.SetCreatedAt(createdAt)
	track.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		track.SetDeletedAt(&deletedAt.Time)
	}

	return track, nil
}

// scanRow scans a row from [sql.Rows] into a [models.PersistedTrack]
func (r *TrackRepository) scanRow(rows *sql.Rows) (*models.PersistedTrack, error) {
	var (
		id        string
		sequence  int
		remoteID  string
		title     string
		artist    string
		album     string
		duration  int
		isrc      string
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := rows.Scan(&id, &sequence, &remoteID, &title, &artist, &album, &duration, &isrc, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan track: %w", err)
	}

	dto := models.Track{
		ID:       remoteID,
		Title:    title,
		Artist:   artist,
		Album:    album,
		Duration: duration,
		ISRC:     isrc,
	}

	track := models.NewPersistedTrack(sequence, remoteID, dto)
	track.SetID(id)
	track.SetCreatedAt(createdAt)
	track.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		track.SetDeletedAt(&deletedAt.Time)
	}

	return track, nil
}
