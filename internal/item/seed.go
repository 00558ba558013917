package item

import (
	"github.com/google/uuid"

	"github.com/jrslyce/equip-detail/internal/domain"
)

// IDFunc generates item ids for seeded inventories. Tests swap this for
// a deterministic generator.
type IDFunc func() string

// NewID is the default id generator.
func NewID() string {
	return uuid.NewString()
}

// seedEntry is one row of the starter catalog.
type seedEntry struct {
	slot   domain.Slot
	name   string
	rarity domain.Rarity
	bonus  domain.StatBonus
}

// catalog is the fixed starter inventory: one item per rarity per slot.
// Names and bonuses are part of the game data contract and must not be
// reordered or renamed without a data migration.
var catalog = []seedEntry{
	{domain.SlotHead, "Neural Visor Mk.I", domain.RarityCommon, domain.StatBonus{Intelligence: 1}},
	{domain.SlotHead, "Cyan Halo Helm", domain.RarityEpic, domain.StatBonus{Mind: 2}},
	{domain.SlotHead, "Legend Crown Interface", domain.RarityLegendary, domain.StatBonus{Intelligence: 3, Mind: 2}},
	{domain.SlotShoulders, "Reactive Pauldrons", domain.RarityCommon, domain.StatBonus{Vitality: 1}},
	{domain.SlotShoulders, "Aegis Spines", domain.RarityEpic, domain.StatBonus{Vitality: 2, Strength: 1}},
	{domain.SlotShoulders, "Singularity Mantle", domain.RarityLegendary, domain.StatBonus{Vitality: 3, Strength: 2}},
	{domain.SlotChest, "Carbon Weave Core", domain.RarityCommon, domain.StatBonus{Vitality: 1, Strength: 1}},
	{domain.SlotChest, "Vector Plating", domain.RarityEpic, domain.StatBonus{Vitality: 2, Dexterity: 1}},
	{domain.SlotChest, "Titanium Heart Engine", domain.RarityLegendary, domain.StatBonus{Vitality: 4, Strength: 2}},
	{domain.SlotHands, "Servo Gloves", domain.RarityCommon, domain.StatBonus{Dexterity: 1}},
	{domain.SlotHands, "Arc Gauntlets", domain.RarityEpic, domain.StatBonus{Strength: 1, Dexterity: 2}},
	{domain.SlotHands, "Chrono Hands", domain.RarityLegendary, domain.StatBonus{Dexterity: 3, Intelligence: 1}},
	{domain.SlotLegs, "Kinetic Greaves", domain.RarityCommon, domain.StatBonus{Vitality: 1}},
	{domain.SlotLegs, "Stride Amplifiers", domain.RarityEpic, domain.StatBonus{Dexterity: 2, Vitality: 1}},
	{domain.SlotLegs, "Voidwalk Legs", domain.RarityLegendary, domain.StatBonus{Dexterity: 3, Mind: 1}},
	{domain.SlotFeet, "Mag Boots", domain.RarityCommon, domain.StatBonus{Dexterity: 1}},
	{domain.SlotFeet, "Phase Runners", domain.RarityEpic, domain.StatBonus{Dexterity: 2, Mind: 1}},
	{domain.SlotFeet, "Stellar Treads", domain.RarityLegendary, domain.StatBonus{Dexterity: 3, Vitality: 1}},
	{domain.SlotMainHand, "Pulse Blade", domain.RarityCommon, domain.StatBonus{Strength: 1}},
	{domain.SlotMainHand, "Rail Pistol", domain.RarityEpic, domain.StatBonus{Dexterity: 1, Strength: 2}},
	{domain.SlotMainHand, "Cyan Edge Prototype", domain.RarityLegendary, domain.StatBonus{Strength: 4}},
	{domain.SlotOffHand, "Buckler Drone", domain.RarityCommon, domain.StatBonus{Vitality: 1}},
	{domain.SlotOffHand, "Ion Shield", domain.RarityEpic, domain.StatBonus{Vitality: 2, Mind: 1}},
	{domain.SlotOffHand, "Prismatic Barrier", domain.RarityLegendary, domain.StatBonus{Vitality: 3, Intelligence: 1, Mind: 1}},
}

// SeedInventory builds the starter inventory with fresh item ids.
// Every call produces new ids; the catalog contents are fixed.
func SeedInventory(newID IDFunc) []domain.Item {
	if newID == nil {
		newID = NewID
	}
	items := make([]domain.Item, 0, len(catalog))
	for _, e := range catalog {
		items = append(items, domain.Item{
			ItemID:    newID(),
			Slot:      e.slot,
			Name:      e.name,
			Rarity:    e.rarity,
			StatBonus: e.bonus,
		})
	}
	return items
}

// BaseStats returns the stat block every new profile starts with.
func BaseStats() domain.Stats {
	return domain.Stats{
		Strength:     10,
		Vitality:     10,
		Dexterity:    10,
		Intelligence: 10,
		Mind:         10,
	}
}
