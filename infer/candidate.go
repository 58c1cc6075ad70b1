package infer

import (
	"github.com/nathanieltooley/porygon/battle"
	"github.com/samber/lo"
)

// Candidate is one guess at the hidden attributes of an opposing Pokemon.
// Evs and Ivs are in the order HP, Attack, Defense, SpAttack, SpDef, Speed.
type Candidate struct {
	Item   battle.Item
	Nature battle.Nature
	Evs    [6]uint
	Ivs    [6]uint
}

var perfectIvs = [6]uint{battle.MAX_IV, battle.MAX_IV, battle.MAX_IV, battle.MAX_IV, battle.MAX_IV, battle.MAX_IV}

// evValues counts from 0 to MAX_EV in steps, always ending on MAX_EV.
func evValues(step uint) []uint {
	step = max(step, 1)
	values := make([]uint, 0, battle.MAX_EV/step+2)
	for ev := uint(0); ev < battle.MAX_EV; ev += step {
		values = append(values, ev)
	}
	return append(values, battle.MAX_EV)
}

// PHYSICAL_STATS and SPECIAL_STATS are the EVs a physical or special attacker's damage and
// turn order depend on.
var (
	PHYSICAL_STATS = [3]battle.Stat{battle.STAT_HP, battle.STAT_ATTACK, battle.STAT_SPEED}
	SPECIAL_STATS  = [3]battle.Stat{battle.STAT_HP, battle.STAT_SPATTACK, battle.STAT_SPEED}
)

// Generate enumerates every item, nature and HP/Attack/Speed EV combination whose EV total
// stays within MAX_TOTAL_EV. IVs are perfect; see WithHiddenPowerIVs.
func Generate(items []battle.Item, natures []battle.Nature, step uint) []Candidate {
	return GenerateStats(items, natures, step, PHYSICAL_STATS)
}

// GenerateStats is Generate with the three EVs that vary picked by stats.
func GenerateStats(items []battle.Item, natures []battle.Nature, step uint, stats [3]battle.Stat) []Candidate {
	values := evValues(step)
	var candidates []Candidate

	for _, item := range items {
		for _, nature := range natures {
			for _, a := range values {
				for _, b := range values {
					for _, c := range values {
						if a+b+c > battle.MAX_TOTAL_EV {
							continue
						}
						var evs [6]uint
						evs[stats[0]], evs[stats[1]], evs[stats[2]] = a, b, c
						candidates = append(candidates, Candidate{
							Item:   item,
							Nature: nature,
							Evs:    evs,
							Ivs:    perfectIvs,
						})
					}
				}
			}
		}
	}

	battle.Logger("infer").V(1).Info("Generated candidates",
		"items", len(items), "natures", len(natures), "step", step, "stats", stats, "count", len(candidates))
	return candidates
}

// HiddenPowerSpreads is every IV spread made of 30s and 31s. Together they cover each
// Hidden Power type at the maximum power of 70.
func HiddenPowerSpreads() [][6]uint {
	spreads := make([][6]uint, 0, 64)
	for bits := range 64 {
		var ivs [6]uint
		for i := range ivs {
			ivs[i] = battle.MAX_IV - uint(bits>>i&1)
		}
		spreads = append(spreads, ivs)
	}
	return spreads
}

// WithHiddenPowerIVs crosses every candidate with every IV spread.
func WithHiddenPowerIVs(candidates []Candidate, spreads [][6]uint) []Candidate {
	return lo.FlatMap(candidates, func(c Candidate, _ int) []Candidate {
		return lo.Map(spreads, func(ivs [6]uint, _ int) Candidate {
			c.Ivs = ivs
			return c
		})
	})
}

// apply writes the candidate's attributes onto p and recalculates its stats.
func (c Candidate) apply(p *battle.Pokemon) {
	p.Item = c.Item
	p.Nature = c.Nature
	p.SetEvs(c.Evs)
	p.SetIvs(c.Ivs)
	p.ReCalcStats()
}
