package domain

import "time"

// Slot identifies one of the fixed equipment slots on a profile.
type Slot string

const (
	SlotHead      Slot = "head"
	SlotShoulders Slot = "shoulders"
	SlotChest     Slot = "chest"
	SlotHands     Slot = "hands"
	SlotLegs      Slot = "legs"
	SlotFeet      Slot = "feet"
	SlotMainHand  Slot = "main_hand"
	SlotOffHand   Slot = "off_hand"
)

// Slots lists every equipment slot in canonical order.
// The equipped mapping on a profile is total over this set.
var Slots = []Slot{
	SlotHead,
	SlotShoulders,
	SlotChest,
	SlotHands,
	SlotLegs,
	SlotFeet,
	SlotMainHand,
	SlotOffHand,
}

// ValidSlot reports whether s names a known equipment slot.
func ValidSlot(s Slot) bool {
	for _, slot := range Slots {
		if slot == s {
			return true
		}
	}
	return false
}

// Rarity is the quality tier of an item.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// rarityWeights orders rarities for comparisons such as auto-equip.
// Unknown rarities weigh 0 and lose to every known tier.
var rarityWeights = map[Rarity]int{
	RarityCommon:    1,
	RarityEpic:      2,
	RarityLegendary: 3,
}

// RarityWeight returns the comparison weight for a rarity.
func RarityWeight(r Rarity) int {
	return rarityWeights[r]
}

// Stats holds the five character attributes.
type Stats struct {
	Strength     int `json:"strength"`
	Vitality     int `json:"vitality"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Mind         int `json:"mind"`
}

// Add returns the component-wise sum of two stat blocks.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Strength:     s.Strength + other.Strength,
		Vitality:     s.Vitality + other.Vitality,
		Dexterity:    s.Dexterity + other.Dexterity,
		Intelligence: s.Intelligence + other.Intelligence,
		Mind:         s.Mind + other.Mind,
	}
}

// StatBonus is a partial stat block carried by an item. Absent stats
// contribute nothing.
type StatBonus struct {
	Strength     int `json:"strength,omitempty"`
	Vitality     int `json:"vitality,omitempty"`
	Dexterity    int `json:"dexterity,omitempty"`
	Intelligence int `json:"intelligence,omitempty"`
	Mind         int `json:"mind,omitempty"`
}

// Item is an equippable inventory entry. Items are immutable once
// seeded; mutations only change which items are referenced by the
// equipped mapping.
type Item struct {
	ItemID    string    `json:"item_id"`
	Slot      Slot      `json:"slot"`
	Name      string    `json:"name"`
	Rarity    Rarity    `json:"rarity"`
	StatBonus StatBonus `json:"stat_bonus"`
}

// EquippedMapping maps every slot to the equipped item id, or nil when
// the slot is empty. Serialized keys always cover all eight slots.
type EquippedMapping map[Slot]*string

// EmptyEquipped returns a mapping with every slot explicitly empty.
func EmptyEquipped() EquippedMapping {
	m := make(EquippedMapping, len(Slots))
	for _, slot := range Slots {
		m[slot] = nil
	}
	return m
}

// Clone returns a copy of the mapping normalized to cover all slots.
func (m EquippedMapping) Clone() EquippedMapping {
	out := EmptyEquipped()
	for slot, id := range m {
		if ValidSlot(slot) {
			out[slot] = id
		}
	}
	return out
}

// Profile is the per-user loadout document, keyed by Discord user id.
type Profile struct {
	DiscordUserID string          `json:"discord_user_id"`
	Username      string          `json:"username"`
	Avatar        *string         `json:"avatar"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	BaseStats     Stats           `json:"base_stats"`
	Inventory     []Item          `json:"inventory"`
	Equipped      EquippedMapping `json:"equipped"`
}

// FindItem returns the inventory item with the given id, or nil.
func (p *Profile) FindItem(itemID string) *Item {
	for i := range p.Inventory {
		if p.Inventory[i].ItemID == itemID {
			return &p.Inventory[i]
		}
	}
	return nil
}
