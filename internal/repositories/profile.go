package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/shared"
)

// ProfileRepository implements models.Repository[*models.PersistedProfile] for account profiles.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository with the given database connection
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new profile into the database with generated ID and sequence
func (r *ProfileRepository) Create(profile *models.PersistedProfile) error {
	sequence, err := NextSequence(r.db, "profiles")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	profile.SetID(id)

	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO profiles (id, sequence, email, display_name, plan, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		profile.Email(),
		profile.DisplayName(),
		profile.Plan(),
		profile.CreatedAt(),
		profile.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	return nil
}

// Get retrieves a profile by ID, excluding soft-deleted profiles
func (r *ProfileRepository) Get(id string) (*models.PersistedProfile, error) {
	query := `
		SELECT id, sequence, email, display_name, plan, created_at, updated_at, deleted_at
		FROM profiles
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByEmail retrieves a profile by email address
func (r *ProfileRepository) GetByEmail(email string) (*models.PersistedProfile, error) {
	query := `
		SELECT id, sequence, email, display_name, plan, created_at, updated_at, deleted_at
		FROM profiles
		WHERE email = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, email))
}

// Update modifies an existing profile in the database
func (r *ProfileRepository) Update(profile *models.PersistedProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	profile.SetUpdatedAt(now)

	query := `
		UPDATE profiles
		SET display_name = ?, plan = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		profile.DisplayName(),
		profile.Plan(),
		now,
		profile.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("profile not found or already deleted: %s", profile.ID())
	}

	return nil
}

// Delete soft-deletes a profile by ID
func (r *ProfileRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE profiles
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("profile not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all profiles matching the given criteria, excluding soft-deleted profiles
func (r *ProfileRepository) List(criteria map[string]any) ([]*models.PersistedProfile, error) {
	query := `
		SELECT id, sequence, email, display_name, plan, created_at, updated_at, deleted_at
		FROM profiles
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if plan, ok := criteria["plan"].(string); ok && plan != "" {
		query += " AND plan = ?"
		args = append(args, plan)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.PersistedProfile
	for rows.Next() {
		profile, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return profiles, nil
}

// scanOne scans a single row into a [models.PersistedProfile]
func (r *ProfileRepository) scanOne(row *sql.Row) (*models.PersistedProfile, error) {
	var (
		id          string
		sequence    int
		email       string
		displayName string
		plan        string
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	err := row.Scan(&id, &sequence, &email, &displayName, &plan, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}

	dto := models.Profile{
		Email:       email,
		DisplayName: displayName,
		Plan:        plan,
	}

	profile := models.NewPersistedProfile(sequence, dto)
	profile.SetID(id)
	profile.SetCreatedAt(createdAt)
	profile.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		profile.SetDeletedAt(&deletedAt.Time)
	}

	return profile, nil
}

// scanRow scans a row from [sql.Rows] into a [models.PersistedProfile]
func (r *ProfileRepository) scanRow(rows *sql.Rows) (*models.PersistedProfile, error) {
	var (
		id          string
		sequence    int
		email       string
		displayName string
		plan        string
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	err := rows.Scan(&id, &sequence, &email, &displayName, &plan, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}

	dto := models.Profile{
		Email:       email,
		DisplayName: displayName,
		Plan:        plan,
	}

	profile := models.NewPersistedProfile(sequence, dto)
	profile.SetID(id)
	profile.SetCreatedAt(createdAt)
	profile.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		profile.SetDeletedAt(&deletedAt.Time)
	}

	return profile, nil
}
