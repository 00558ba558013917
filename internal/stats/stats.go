package stats

import (
	"github.com/jrslyce/equip-detail/internal/domain"
)

// ComputeTotal aggregates a profile's effective stats: base stats plus
// the bonus of every resolvable equipped item.
//
// Equipped ids that do not resolve to an inventory item are skipped
// rather than treated as errors. The equipped mapping is advisory for
// aggregation; repair happens through mutations, not reads.
func ComputeTotal(p *domain.Profile) domain.Stats {
	total := p.BaseStats

	byID := make(map[string]*domain.Item, len(p.Inventory))
	for i := range p.Inventory {
		byID[p.Inventory[i].ItemID] = &p.Inventory[i]
	}

	for _, slot := range domain.Slots {
		id := p.Equipped[slot]
		if id == nil {
			continue
		}
		it, ok := byID[*id]
		if !ok {
			continue
		}
		total = total.Add(bonusToStats(it.StatBonus))
	}

	return total
}

func bonusToStats(b domain.StatBonus) domain.Stats {
	return domain.Stats{
		Strength:     b.Strength,
		Vitality:     b.Vitality,
		Dexterity:    b.Dexterity,
		Intelligence: b.Intelligence,
		Mind:         b.Mind,
	}
}
