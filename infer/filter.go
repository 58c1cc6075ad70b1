package infer

import (
	"slices"

	"github.com/nathanieltooley/porygon/battle"
)

// View is one fully known attacking turn with the attacker's hidden attributes left open.
// Filtering never mutates the teams or the weather.
type View struct {
	Attacker *battle.Team
	Defender *battle.Team
	Weather  *battle.Weather
	// Move is the attacker's move slot.
	Move int
	Crit bool
}

// Observation is a hit seen during battle. DefenderHP is the defender's HP before the hit,
// zero meaning the value already on the defender.
type Observation struct {
	Move       int
	Crit       bool
	DefenderHP uint
	Damage     uint
}

// firstProbe is the roll tried first when searching for an exact match.
const firstProbe = 93

// profileKey is every attacker value the first two damage phases read from a candidate.
// Defense counts as an offensive stat under Power Trick.
type profileKey struct {
	item      battle.Item
	hp        uint
	maxHp     uint
	attack    uint
	defense   uint
	spAttack  uint
	spDef     uint
	speed     uint
	hpType    battle.Type
	hiddenPow uint
}

type evaluator struct {
	view     View
	attacker battle.Team
	defender battle.Team
	memo     map[profileKey]battle.DamageProfile
	base     battle.Pokemon
}

func newEvaluator(view View, defenderHP uint) *evaluator {
	e := &evaluator{
		view:     view,
		attacker: cloneTeam(view.Attacker),
		defender: cloneTeam(view.Defender),
		memo:     make(map[profileKey]battle.DamageProfile),
	}
	if defenderHP > 0 {
		e.defender.GetActivePokemon().Hp.Value = defenderHP
	}
	e.attacker.Crit = view.Crit
	e.attacker.GetActivePokemon().SelectMove(view.Move)
	e.base = *e.attacker.GetActivePokemon()
	return e
}

// cloneTeam copies everything a damage calculation could write to.
func cloneTeam(t *battle.Team) battle.Team {
	clone := *t
	clone.Roster = slices.Clone(t.Roster)
	p := clone.GetActivePokemon()
	p.Moves = slices.Clone(p.Moves)
	return clone
}

// profile runs phases one and two for c, once per distinct profileKey.
func (e *evaluator) profile(c Candidate) battle.DamageProfile {
	p := e.attacker.GetActivePokemon()
	moves := p.Moves
	*p = e.base
	p.Moves = moves
	c.apply(p)

	hpType, hpPower := p.HiddenPower()
	key := profileKey{
		item:      p.Item,
		hp:        p.Hp.Value,
		maxHp:     p.Hp.Max,
		attack:    p.Attack.RawValue,
		defense:   p.Def.RawValue,
		spAttack:  p.SpAttack.RawValue,
		spDef:     p.SpDef.RawValue,
		speed:     p.RawSpeed.RawValue,
		hpType:    hpType,
		hiddenPow: hpPower,
	}
	if profile, ok := e.memo[key]; ok {
		return profile
	}

	power := battle.MovePower(&e.attacker, &e.defender, e.view.Weather)
	profile := battle.KnownDamage(&e.attacker, &e.defender, e.view.Weather, power)
	e.memo[key] = profile
	return profile
}

// consistent reports whether some roll of profile deals exactly observed damage.
// Damage never decreases as the roll grows.
func consistent(profile battle.DamageProfile, observed uint) bool {
	if battle.RandomDamage(profile, battle.MIN_ROLL) > observed || battle.RandomDamage(profile, battle.MAX_ROLL) < observed {
		return false
	}

	low, high := uint(battle.MIN_ROLL), uint(battle.MAX_ROLL)
	roll := uint(firstProbe)
	for low <= high {
		dmg := battle.RandomDamage(profile, roll)
		switch {
		case dmg == observed:
			return true
		case dmg < observed:
			low = roll + 1
		default:
			high = roll - 1
		}
		roll = (low + high + 1) / 2
	}
	return false
}

// Filter returns the candidates that can deal exactly observed damage in view.
// The input slice is left untouched.
func Filter(view View, observed uint, candidates []Candidate) []Candidate {
	return filter(newEvaluator(view, 0), observed, candidates)
}

func filter(e *evaluator, observed uint, candidates []Candidate) []Candidate {
	survivors := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if consistent(e.profile(c), observed) {
			survivors = append(survivors, c)
		}
	}

	battle.Logger("infer").V(1).Info("Filtered candidates",
		"observed", observed, "before", len(candidates), "after", len(survivors), "profiles", len(e.memo))
	return survivors
}

// FilterAll applies every observation to candidates in order, each against view with the
// observation's move, crit flag and defender HP. Filtering stops early once nothing survives.
func FilterAll(view View, observations []Observation, candidates []Candidate) []Candidate {
	for _, o := range observations {
		if len(candidates) == 0 {
			break
		}
		v := view
		v.Move, v.Crit = o.Move, o.Crit
		candidates = filter(newEvaluator(v, o.DefenderHP), o.Damage, candidates)
	}
	return candidates
}
