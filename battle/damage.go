package battle

import "fmt"

// DamageProfile is everything about one hit except the damage roll. Multipliers are
// stored as numerators over fixed denominators: Stab, Type1 and Type2 over 2, Filter
// over 4, ExpertBelt over 5, and TintedLens over ResistBerry.
type DamageProfile struct {
	// Immune means the hit deals nothing, whatever the roll.
	Immune bool
	// Fixed means Amount is the final damage and no multiplier or roll applies.
	Fixed bool
	// Amount is the damage after the second phase, or the fixed damage.
	Amount uint

	Stab       uint
	Type1      uint
	Type2      uint
	Filter     uint
	ExpertBelt uint
	TintedLens uint
	// ResistBerry is 2 when a resist berry halves this hit.
	ResistBerry uint

	TargetHP  uint
	NonLethal bool
	Crit      bool
	Type      Type
}

// neutralQuarters is a neutral hit on both types.
const neutralQuarters = EFF_NEUTRAL * EFF_NEUTRAL

func neutralProfile(target *Pokemon) DamageProfile {
	return DamageProfile{
		Stab:        2,
		Type1:       2,
		Type2:       2,
		Filter:      4,
		ExpertBelt:  5,
		TintedLens:  1,
		ResistBerry: 1,
		TargetHP:    target.Hp.Value,
		NonLethal:   target.Vol.Endure,
	}
}

// Effectiveness is the combined type multiplier in quarters.
func (p DamageProfile) Effectiveness() uint {
	return p.Type1 * p.Type2
}

// Range is the lowest and highest damage the profile can produce.
func (p DamageProfile) Range() (uint, uint) {
	return RandomDamage(p, MIN_ROLL), RandomDamage(p, MAX_ROLL)
}

// KnownDamage computes the roll independent part of the damage that attacker's selected
// move deals to defender at the given base power.
func KnownDamage(attacker, defender *Team, weather *Weather, power uint) DamageProfile {
	return profileFor(attacker, attacker.ActiveMove(), defender, weather, power)
}

// RandomDamage finishes a profile with a roll in [MIN_ROLL, MAX_ROLL]. Damage is capped at
// the target's HP, or one below it when the hit cannot faint.
func RandomDamage(p DamageProfile, roll uint) uint {
	if roll < MIN_ROLL || roll > MAX_ROLL {
		panic(fmt.Sprintf("damage roll %d outside [%d, %d]", roll, MIN_ROLL, MAX_ROLL))
	}
	if p.Immune {
		return 0
	}
	if p.Fixed {
		return p.cap(p.Amount)
	}

	dmg := p.Amount * roll / 100
	dmg = dmg * p.Stab / 2
	dmg = dmg * p.Type1 / 2
	dmg = dmg * p.Type2 / 2
	dmg = dmg * p.Filter / 4
	dmg = dmg * p.ExpertBelt / 5
	dmg = dmg * p.TintedLens / p.ResistBerry
	return p.cap(max(1, dmg))
}

func (p DamageProfile) cap(dmg uint) uint {
	limit := p.TargetHP
	if p.NonLethal && limit > 0 {
		limit--
	}
	return min(dmg, limit)
}

// CalculateDamage runs all three phases for attacker's selected move.
func CalculateDamage(attacker, defender *Team, weather *Weather, roll uint) uint {
	power := MovePower(attacker, defender, weather)
	return RandomDamage(KnownDamage(attacker, defender, weather, power), roll)
}

func profileFor(user *Team, move *Move, target *Team, weather *Weather, power uint) DamageProfile {
	a := user.GetActivePokemon()
	d := target.GetActivePokemon()
	info := move.Info
	active := weather.Active(a, d)

	p := neutralProfile(d)
	p.NonLethal = p.NonLethal || info.Has(FLAG_NON_LETHAL)
	p.Type = MoveType(a, info, active)
	p.Type1, p.Type2 = effectiveness(p.Type, a, d, weather)

	if p.Effectiveness() == 0 || absorbs(d, p.Type) {
		p.Immune = true
		return p
	}

	if info.Fixed != FIXED_NONE {
		p.Fixed = true
		amount, ok := fixedDamage(user, move, target)
		p.Amount = amount
		p.Immune = !ok
		return p
	}

	if power == 0 {
		p.Immune = true
		return p
	}
	if d.Ability == ABILITY_WONDER_GUARD && p.Type != TYPE_TYPELESS && p.Effectiveness() <= neutralQuarters {
		p.Immune = true
		return p
	}

	p.Crit = info != &confusionHit && critical(user, target)
	var atk, def uint
	var screen int
	if info.Class == CLASS_PHYSICAL {
		atk = CalcAttack(a, p.Crit, active)
		def = CalcDefense(d, p.Crit, info.Has(FLAG_SELF_DESTRUCT))
		screen = target.Side.Reflect
	} else {
		atk = CalcSpAttack(a, p.Crit, active)
		def = CalcSpDefense(d, p.Crit, active)
		screen = target.Side.LightScreen
	}

	dmg := a.Level*2/5 + 2
	dmg = dmg * power * atk / 50 / def
	if screen > 0 && !p.Crit {
		dmg /= 2
	}
	dmg = dmg * weatherModifier(active, p.Type) / 2
	if p.Type == TYPE_FIRE && a.Vol.FlashFire {
		dmg = dmg * 3 / 2
	}
	if a.Vol.MeFirst {
		dmg = dmg * 3 / 2
	}
	dmg += 2

	if p.Crit {
		if a.Ability == ABILITY_SNIPER {
			dmg *= 3
		} else {
			dmg *= 2
		}
	}
	if a.itemActive(ITEM_LIFE_ORB) {
		dmg = dmg * 13 / 10
	}
	if a.itemActive(ITEM_METRONOME) {
		dmg = dmg * uint(10+min(move.TimesUsed, 10)) / 10
	}
	p.Amount = dmg

	if p.Type != TYPE_TYPELESS && a.HasType(p.Type) {
		p.Stab = 3
		if a.Ability == ABILITY_ADAPTABILITY {
			p.Stab = 4
		}
	}
	eff := p.Effectiveness()
	if eff > neutralQuarters && (d.Ability == ABILITY_FILTER || d.Ability == ABILITY_SOLID_ROCK) {
		p.Filter = 3
	}
	if eff > neutralQuarters && a.itemActive(ITEM_EXPERT_BELT) {
		p.ExpertBelt = 6
	}
	if eff < neutralQuarters && a.Ability == ABILITY_TINTED_LENS {
		p.TintedLens = 2
	}
	if t, ok := d.Item.ResistedType(); ok && d.Vol.Embargo == 0 && t == p.Type && (eff > neutralQuarters || t == TYPE_NORMAL) {
		p.ResistBerry = 2
	}

	damageLogger().V(2).Info("Known damage",
		"move", info.Name, "power", power, "attack", atk, "defense", def,
		"amount", p.Amount, "stab", p.Stab, "type1", p.Type1, "type2", p.Type2, "crit", p.Crit)
	return p
}

// weatherModifier is in halves.
func weatherModifier(weather WeatherKind, t Type) uint {
	switch {
	case weather == WEATHER_RAIN && t == TYPE_WATER, weather == WEATHER_SUN && t == TYPE_FIRE:
		return 3
	case weather == WEATHER_RAIN && t == TYPE_FIRE, weather == WEATHER_SUN && t == TYPE_WATER:
		return 1
	}
	return 2
}

// effectiveness returns the multiplier against each of d's types, in halves.
// Identified targets and Scrappy let Normal and Fighting hit Ghost; a grounded Flying type takes Ground hits.
func effectiveness(moveType Type, a, d *Pokemon, weather *Weather) (uint, uint) {
	if moveType == TYPE_TYPELESS {
		return EFF_NEUTRAL, EFF_NEUTRAL
	}
	t1, t2 := d.Types()
	e1 := moveType.AttackEffectiveness(t1)
	e2 := uint(EFF_NEUTRAL)
	if t2 != TYPE_TYPELESS {
		e2 = moveType.AttackEffectiveness(t2)
	}

	if (moveType == TYPE_NORMAL || moveType == TYPE_FIGHTING) && (d.Vol.Identified || a.Ability == ABILITY_SCRAPPY) {
		if t1 == TYPE_GHOST {
			e1 = EFF_NEUTRAL
		}
		if t2 == TYPE_GHOST {
			e2 = EFF_NEUTRAL
		}
	}
	if moveType == TYPE_GROUND {
		if !d.Grounded(weather) {
			return EFF_IMMUNE, e2
		}
		if t1 == TYPE_FLYING {
			e1 = EFF_NEUTRAL
		}
		if t2 == TYPE_FLYING {
			e2 = EFF_NEUTRAL
		}
	}
	return e1, e2
}

// absorbs reports whether d's ability takes in moves of type t instead of being hit.
func absorbs(d *Pokemon, t Type) bool {
	switch d.Ability {
	case ABILITY_VOLT_ABSORB, ABILITY_MOTOR_DRIVE:
		return t == TYPE_ELECTRIC
	case ABILITY_WATER_ABSORB, ABILITY_DRY_SKIN:
		return t == TYPE_WATER
	case ABILITY_FLASH_FIRE:
		return t == TYPE_FIRE && d.Status != STATUS_FREEZE
	}
	return false
}

// fixedDamage returns the damage of a move that ignores the formula. ok is false when the
// move fails outright.
func fixedDamage(user *Team, move *Move, target *Team) (uint, bool) {
	a := user.GetActivePokemon()
	d := target.GetActivePokemon()

	switch move.Info.Fixed {
	case FIXED_LEVEL:
		return a.Level, true
	case FIXED_20:
		return 20, true
	case FIXED_40:
		return 40, true
	case FIXED_HALF_HP:
		return max(1, d.Hp.Value/2), true
	case FIXED_ENDEAVOR:
		if d.Hp.Value <= a.Hp.Value {
			return 0, false
		}
		return d.Hp.Value - a.Hp.Value, true
	case FIXED_PSYWAVE:
		return max(1, a.Level*uint(move.Variable%11*10+50)/100), true
	case FIXED_OHKO:
		if d.Ability == ABILITY_STURDY || d.Level > a.Level {
			return 0, false
		}
		return d.Hp.Value, true
	case FIXED_COUNTER:
		return counterDamage(user, CLASS_PHYSICAL, 2, 1)
	case FIXED_MIRROR_COAT:
		return counterDamage(user, CLASS_SPECIAL, 2, 1)
	case FIXED_METAL_BURST:
		return counterDamage(user, CLASS_STATUS, 3, 2)
	case FIXED_BIDE:
		if a.Vol.BideDamage == 0 {
			return 0, false
		}
		return 2 * a.Vol.BideDamage, true
	}
	panic("unhandled fixed damage rule for " + move.Info.Name)
}

// counterDamage returns damage taken this turn times num/den. CLASS_STATUS accepts either class.
func counterDamage(user *Team, class DamageClass, num, den uint) (uint, bool) {
	if user.DamageTaken == 0 {
		return 0, false
	}
	switch class {
	case CLASS_PHYSICAL:
		if !user.DamageTakenPhysical {
			return 0, false
		}
	case CLASS_SPECIAL:
		if user.DamageTakenPhysical {
			return 0, false
		}
	}
	return user.DamageTaken * num / den, true
}

// Recoil damages user by dmg/den, at least 1. Abilities that void recoil prevent it.
func Recoil(user *Pokemon, dmg uint, den uint) {
	if user.Ability.VoidsRecoil() || dmg == 0 || den == 0 {
		return
	}
	amount := max(1, dmg/den)
	damageLogger().V(1).Info("Recoil", "pokemon", user.Name(), "amount", amount)
	user.Damage(amount)
}
