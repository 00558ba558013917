package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrslyce/equip-detail/internal/domain"
)

func strPtr(s string) *string { return &s }

func baseProfile() *domain.Profile {
	return &domain.Profile{
		BaseStats: domain.Stats{Strength: 10, Vitality: 10, Dexterity: 10, Intelligence: 10, Mind: 10},
		Inventory: []domain.Item{
			{ItemID: "sword", Slot: domain.SlotMainHand, Name: "Pulse Blade", Rarity: domain.RarityCommon, StatBonus: domain.StatBonus{Strength: 1}},
			{ItemID: "shield", Slot: domain.SlotOffHand, Name: "Ion Shield", Rarity: domain.RarityEpic, StatBonus: domain.StatBonus{Vitality: 2, Mind: 1}},
			{ItemID: "helm", Slot: domain.SlotHead, Name: "Cyan Halo Helm", Rarity: domain.RarityEpic, StatBonus: domain.StatBonus{Mind: 2}},
		},
		Equipped: domain.EmptyEquipped(),
	}
}

func TestComputeTotalNothingEquipped(t *testing.T) {
	p := baseProfile()

	total := ComputeTotal(p)

	assert.Equal(t, p.BaseStats, total)
}

func TestComputeTotalSumsEquippedBonuses(t *testing.T) {
	p := baseProfile()
	p.Equipped[domain.SlotMainHand] = strPtr("sword")
	p.Equipped[domain.SlotOffHand] = strPtr("shield")

	total := ComputeTotal(p)

	assert.Equal(t, 11, total.Strength)
	assert.Equal(t, 12, total.Vitality)
	assert.Equal(t, 10, total.Dexterity)
	assert.Equal(t, 10, total.Intelligence)
	assert.Equal(t, 11, total.Mind)
}

func TestComputeTotalSkipsUnresolvableIDs(t *testing.T) {
	p := baseProfile()
	p.Equipped[domain.SlotMainHand] = strPtr("sword")
	p.Equipped[domain.SlotHead] = strPtr("deleted-item")

	total := ComputeTotal(p)

	// Only the resolvable item counts.
	assert.Equal(t, 11, total.Strength)
	assert.Equal(t, 10, total.Mind)
}

func TestComputeTotalIgnoresUnequippedInventory(t *testing.T) {
	p := baseProfile()
	p.Equipped[domain.SlotHead] = strPtr("helm")

	total := ComputeTotal(p)

	// Inventory items not referenced by the mapping contribute nothing.
	assert.Equal(t, 10, total.Strength)
	assert.Equal(t, 10, total.Vitality)
	assert.Equal(t, 12, total.Mind)
}

func TestComputeTotalDoesNotMutateProfile(t *testing.T) {
	p := baseProfile()
	p.Equipped[domain.SlotOffHand] = strPtr("shield")
	before := p.BaseStats

	_ = ComputeTotal(p)
	_ = ComputeTotal(p)

	assert.Equal(t, before, p.BaseStats)
	assert.Len(t, p.Inventory, 3)
}
