package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidSlot(t *testing.T) {
	for _, slot := range Slots {
		assert.True(t, ValidSlot(slot), "slot %s should be valid", slot)
	}

	assert.False(t, ValidSlot("ring"))
	assert.False(t, ValidSlot(""))
	assert.False(t, ValidSlot("Head"))
}

func TestRarityWeight(t *testing.T) {
	assert.Equal(t, 1, RarityWeight(RarityCommon))
	assert.Equal(t, 2, RarityWeight(RarityEpic))
	assert.Equal(t, 3, RarityWeight(RarityLegendary))
	assert.Equal(t, 0, RarityWeight("mythic"))
}

func TestStatsAdd(t *testing.T) {
	a := Stats{Strength: 10, Vitality: 10, Dexterity: 10, Intelligence: 10, Mind: 10}
	b := Stats{Strength: 1, Mind: 2}

	sum := a.Add(b)

	assert.Equal(t, 11, sum.Strength)
	assert.Equal(t, 10, sum.Vitality)
	assert.Equal(t, 10, sum.Dexterity)
	assert.Equal(t, 10, sum.Intelligence)
	assert.Equal(t, 12, sum.Mind)
}

func TestEmptyEquippedCoversAllSlots(t *testing.T) {
	m := EmptyEquipped()

	require.Len(t, m, len(Slots))
	for _, slot := range Slots {
		id, ok := m[slot]
		assert.True(t, ok, "slot %s missing", slot)
		assert.Nil(t, id)
	}
}

func TestEquippedMappingClone(t *testing.T) {
	id := "item-1"
	m := EquippedMapping{
		SlotHead: &id,
		"ring":   &id, // unknown slot is dropped
	}

	clone := m.Clone()

	require.Len(t, clone, len(Slots))
	assert.Equal(t, &id, clone[SlotHead])
	assert.Nil(t, clone[SlotChest])
	_, hasRing := clone["ring"]
	assert.False(t, hasRing)
}

func TestEquippedMappingSerializesNullSlots(t *testing.T) {
	data, err := json.Marshal(EmptyEquipped())
	require.NoError(t, err)

	var decoded map[string]*string
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, len(Slots))
	assert.Nil(t, decoded["main_hand"])
}

func TestProfileFindItem(t *testing.T) {
	p := Profile{
		Inventory: []Item{
			{ItemID: "a", Name: "Pulse Blade"},
			{ItemID: "b", Name: "Ion Shield"},
		},
	}

	found := p.FindItem("b")
	require.NotNil(t, found)
	assert.Equal(t, "Ion Shield", found.Name)

	assert.Nil(t, p.FindItem("missing"))
}
