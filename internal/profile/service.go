package profile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jrslyce/equip-detail/internal/domain"
	"github.com/jrslyce/equip-detail/internal/item"
	"github.com/jrslyce/equip-detail/internal/logger"
	"github.com/jrslyce/equip-detail/internal/metrics"
	"github.com/jrslyce/equip-detail/internal/repository"
	"github.com/jrslyce/equip-detail/internal/stats"
)

// Service defines the interface for profile operations
type Service interface {
	// UpsertProfile creates a seeded profile for a new Discord user or
	// refreshes the identity fields of an existing one. Either way the
	// full current profile is returned.
	UpsertProfile(ctx context.Context, discordUserID, username string, avatar *string) (*domain.Profile, error)

	// GetProfile returns the profile for a Discord user id.
	GetProfile(ctx context.Context, discordUserID string) (*domain.Profile, error)

	// GetTotalStats returns base stats plus equipped item bonuses.
	GetTotalStats(ctx context.Context, discordUserID string) (domain.Stats, error)

	// EquipItem sets one slot. A nil itemID clears the slot.
	EquipItem(ctx context.Context, discordUserID string, slot domain.Slot, itemID *string) (*domain.Profile, error)

	// SetEquipped replaces the whole equipped mapping.
	SetEquipped(ctx context.Context, discordUserID string, equipped domain.EquippedMapping) (*domain.Profile, error)

	// UnequipAll clears every slot.
	UnequipAll(ctx context.Context, discordUserID string) (*domain.Profile, error)

	// AutoEquip fills every slot with the best owned candidate.
	AutoEquip(ctx context.Context, discordUserID string) (*domain.Profile, error)
}

// Options configures optional service behavior.
type Options struct {
	// ValidateOwnership rejects equips of items the profile does not
	// own or that target the wrong slot. When false, writes pass
	// through unchecked and aggregation skips whatever cannot be
	// resolved.
	ValidateOwnership bool

	// NewItemID overrides the seed id generator. Nil means uuid.
	NewItemID item.IDFunc

	// CacheSize and CacheTTL configure the read cache. Zero values
	// fall back to defaults.
	CacheSize int
	CacheTTL  time.Duration
}

// service implements the Service interface
type service struct {
	repo              repository.Profile
	cache             *profileCache
	validateOwnership bool
	newItemID         item.IDFunc
}

// NewService creates a new profile service
func NewService(repo repository.Profile, opts Options) Service {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		repo:              repo,
		cache:             newProfileCache(size, ttl),
		validateOwnership: opts.ValidateOwnership,
		newItemID:         opts.NewItemID,
	}
}

func (s *service) UpsertProfile(ctx context.Context, discordUserID, username string, avatar *string) (*domain.Profile, error) {
	log := logger.FromContext(ctx)

	if discordUserID == "" || username == "" {
		return nil, fmt.Errorf("%w: discord_user_id and username are required", domain.ErrInvalidInput)
	}

	_, err := s.repo.GetProfile(ctx, discordUserID)
	switch {
	case err == nil:
		if err := s.repo.UpdateIdentity(ctx, discordUserID, username, avatar); err != nil {
			return nil, fmt.Errorf("failed to refresh identity: %w", err)
		}
		log.Debug("Profile identity refreshed", "discord_user_id", discordUserID)
		return s.reload(ctx, discordUserID)

	case errors.Is(err, domain.ErrProfileNotFound):
		now := time.Now().UTC()
		created := &domain.Profile{
			DiscordUserID: discordUserID,
			Username:      username,
			Avatar:        avatar,
			CreatedAt:     now,
			UpdatedAt:     now,
			BaseStats:     item.BaseStats(),
			Inventory:     item.SeedInventory(s.newItemID),
			Equipped:      domain.EmptyEquipped(),
		}
		if err := s.repo.InsertProfile(ctx, created); err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		metrics.ProfilesCreated.Inc()
		log.Info("Profile created", "discord_user_id", discordUserID, "inventory_size", len(created.Inventory))
		s.cache.Set(discordUserID, created)
		return created, nil

	default:
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}
}

func (s *service) GetProfile(ctx context.Context, discordUserID string) (*domain.Profile, error) {
	if cached, ok := s.cache.Get(discordUserID); ok {
		return cached, nil
	}

	profile, err := s.repo.GetProfile(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(discordUserID, profile)
	return profile, nil
}

func (s *service) GetTotalStats(ctx context.Context, discordUserID string) (domain.Stats, error) {
	profile, err := s.GetProfile(ctx, discordUserID)
	if err != nil {
		return domain.Stats{}, err
	}
	return stats.ComputeTotal(profile), nil
}

func (s *service) EquipItem(ctx context.Context, discordUserID string, slot domain.Slot, itemID *string) (*domain.Profile, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidSlot(slot) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSlot, slot)
	}

	profile, err := s.repo.GetProfile(ctx, discordUserID)
	if err != nil {
		return nil, err
	}

	if itemID != nil && s.validateOwnership {
		owned := profile.FindItem(*itemID)
		if owned == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotOwned, *itemID)
		}
		if owned.Slot != slot {
			return nil, fmt.Errorf("%w: %s belongs to %s", domain.ErrSlotMismatch, *itemID, owned.Slot)
		}
	}

	equipped := profile.Equipped.Clone()
	equipped[slot] = itemID
	if err := s.repo.UpdateEquipped(ctx, discordUserID, equipped); err != nil {
		return nil, fmt.Errorf("failed to update equipped: %w", err)
	}

	if itemID != nil {
		metrics.ItemsEquipped.WithLabelValues(string(slot)).Inc()
	}
	log.Debug("Slot updated", "discord_user_id", discordUserID, "slot", slot, "cleared", itemID == nil)
	return s.reload(ctx, discordUserID)
}

func (s *service) SetEquipped(ctx context.Context, discordUserID string, equipped domain.EquippedMapping) (*domain.Profile, error) {
	for slot := range equipped {
		if !domain.ValidSlot(slot) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSlot, slot)
		}
	}

	profile, err := s.repo.GetProfile(ctx, discordUserID)
	if err != nil {
		return nil, err
	}

	next := equipped.Clone()
	if s.validateOwnership {
		for slot, id := range next {
			if id == nil {
				continue
			}
			owned := profile.FindItem(*id)
			if owned == nil {
				return nil, fmt.Errorf("%w: %s", domain.ErrItemNotOwned, *id)
			}
			if owned.Slot != slot {
				return nil, fmt.Errorf("%w: %s belongs to %s", domain.ErrSlotMismatch, *id, owned.Slot)
			}
		}
	}

	if err := s.repo.UpdateEquipped(ctx, discordUserID, next); err != nil {
		return nil, fmt.Errorf("failed to update equipped: %w", err)
	}
	return s.reload(ctx, discordUserID)
}

func (s *service) UnequipAll(ctx context.Context, discordUserID string) (*domain.Profile, error) {
	if _, err := s.repo.GetProfile(ctx, discordUserID); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateEquipped(ctx, discordUserID, domain.EmptyEquipped()); err != nil {
		return nil, fmt.Errorf("failed to clear equipped: %w", err)
	}
	return s.reload(ctx, discordUserID)
}

func (s *service) AutoEquip(ctx context.Context, discordUserID string) (*domain.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, discordUserID)
	if err != nil {
		return nil, err
	}

	best := bestLoadout(profile.Inventory)
	if err := s.repo.UpdateEquipped(ctx, discordUserID, best); err != nil {
		return nil, fmt.Errorf("failed to update equipped: %w", err)
	}

	metrics.AutoEquips.Inc()
	return s.reload(ctx, discordUserID)
}

// bestLoadout picks the strongest candidate per slot: highest rarity
// weight first, then the name that sorts last. Slots with no candidates
// stay empty. The selection depends only on the inventory, so repeated
// runs produce the same mapping.
func bestLoadout(inventory []domain.Item) domain.EquippedMapping {
	bySlot := make(map[domain.Slot][]domain.Item)
	for _, it := range inventory {
		bySlot[it.Slot] = append(bySlot[it.Slot], it)
	}

	best := domain.EmptyEquipped()
	for slot, items := range bySlot {
		if !domain.ValidSlot(slot) {
			continue
		}
		sort.Slice(items, func(i, j int) bool {
			wi, wj := domain.RarityWeight(items[i].Rarity), domain.RarityWeight(items[j].Rarity)
			if wi != wj {
				return wi > wj
			}
			return items[i].Name > items[j].Name
		})
		id := items[0].ItemID
		best[slot] = &id
	}
	return best
}

// reload fetches the stored profile after a mutation so responses
// reflect exactly what was persisted, then refreshes the cache.
func (s *service) reload(ctx context.Context, discordUserID string) (*domain.Profile, error) {
	s.cache.Invalidate(discordUserID)
	profile, err := s.repo.GetProfile(ctx, discordUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	s.cache.Set(discordUserID, profile)
	return profile, nil
}
