package profile

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jrslyce/equip-detail/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Profile for testing. It stores deep copies so tests
// observe persisted state, not shared pointers.
//
// This fake must remain in the profile package to avoid import cycles.
type FakeRepository struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile

	// Err, when set, is returned by every method. Lets tests exercise
	// store-failure paths.
	Err error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		profiles: make(map[string]*domain.Profile),
	}
}

func (f *FakeRepository) GetProfile(ctx context.Context, discordUserID string) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	p, ok := f.profiles[discordUserID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return deepCopy(p), nil
}

func (f *FakeRepository) InsertProfile(ctx context.Context, profile *domain.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.profiles[profile.DiscordUserID] = deepCopy(profile)
	return nil
}

func (f *FakeRepository) UpdateIdentity(ctx context.Context, discordUserID, username string, avatar *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	p, ok := f.profiles[discordUserID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.Username = username
	p.Avatar = avatar
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *FakeRepository) UpdateEquipped(ctx context.Context, discordUserID string, equipped domain.EquippedMapping) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	p, ok := f.profiles[discordUserID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.Equipped = equipped.Clone()
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func deepCopy(p *domain.Profile) *domain.Profile {
	data, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	var out domain.Profile
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return &out
}
