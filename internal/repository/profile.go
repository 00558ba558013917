package repository

import (
	"context"

	"github.com/jrslyce/equip-detail/internal/domain"
)

// Profile defines the interface for profile persistence.
//
// Each profile is stored and replaced as one document; callers read the
// current document, compute the next state, and write it back. The last
// write for a given field set wins.
type Profile interface {
	// GetProfile returns the profile for a Discord user id.
	// Returns domain.ErrProfileNotFound when no document exists.
	GetProfile(ctx context.Context, discordUserID string) (*domain.Profile, error)

	// InsertProfile stores a newly created profile document.
	InsertProfile(ctx context.Context, profile *domain.Profile) error

	// UpdateIdentity refreshes username, avatar and updated_at on an
	// existing profile without touching inventory or equipment.
	UpdateIdentity(ctx context.Context, discordUserID, username string, avatar *string) error

	// UpdateEquipped replaces the equipped mapping and updated_at.
	UpdateEquipped(ctx context.Context, discordUserID string, equipped domain.EquippedMapping) error
}
