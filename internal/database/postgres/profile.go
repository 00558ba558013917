package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jrslyce/equip-detail/internal/domain"
)

// ProfileRepository implements the profile repository for PostgreSQL.
//
// The whole profile lives in a single JSONB column keyed by the Discord
// user id. Mutations merge a small patch into the document with the
// || operator so each write is a single statement; concurrent writers
// race with last-writer-wins semantics on the fields they touch.
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetProfile fetches the profile document for a Discord user id.
func (r *ProfileRepository) GetProfile(ctx context.Context, discordUserID string) (*domain.Profile, error) {
	query := `
		SELECT profile_data
		FROM profiles
		WHERE discord_user_id = $1
	`
	var data []byte
	err := r.db.QueryRow(ctx, query, discordUserID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if profile.Equipped == nil {
		profile.Equipped = domain.EmptyEquipped()
	}
	if profile.Inventory == nil {
		profile.Inventory = []domain.Item{}
	}

	return &profile, nil
}

// InsertProfile stores a newly created profile document.
func (r *ProfileRepository) InsertProfile(ctx context.Context, profile *domain.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	query := `
		INSERT INTO profiles (discord_user_id, profile_data, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
	`
	if _, err := r.db.Exec(ctx, query, profile.DiscordUserID, data); err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

// UpdateIdentity refreshes the identity fields of an existing document.
// Inventory and equipment are left untouched.
func (r *ProfileRepository) UpdateIdentity(ctx context.Context, discordUserID, username string, avatar *string) error {
	patch, err := json.Marshal(map[string]any{
		"username":   username,
		"avatar":     avatar,
		"updated_at": nowISO(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal identity patch: %w", err)
	}

	query := `
		UPDATE profiles
		SET profile_data = profile_data || $2::jsonb,
		    updated_at = NOW()
		WHERE discord_user_id = $1
	`
	tag, err := r.db.Exec(ctx, query, discordUserID, patch)
	if err != nil {
		return fmt.Errorf("failed to update identity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// UpdateEquipped replaces the equipped mapping of an existing document.
func (r *ProfileRepository) UpdateEquipped(ctx context.Context, discordUserID string, equipped domain.EquippedMapping) error {
	patch, err := json.Marshal(map[string]any{
		"equipped":   equipped.Clone(),
		"updated_at": nowISO(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal equipped patch: %w", err)
	}

	query := `
		UPDATE profiles
		SET profile_data = profile_data || $2::jsonb,
		    updated_at = NOW()
		WHERE discord_user_id = $1
	`
	tag, err := r.db.Exec(ctx, query, discordUserID, patch)
	if err != nil {
		return fmt.Errorf("failed to update equipped: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
