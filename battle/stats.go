package battle

// Species some items only work for.
const (
	DEX_PIKACHU  = 25
	DEX_CUBONE   = 104
	DEX_MAROWAK  = 105
	DEX_DITTO    = 132
	DEX_CLAMPERL = 366
	DEX_LATIAS   = 380
	DEX_LATIOS   = 381
)

func (p *Pokemon) is(dex ...uint) bool {
	for _, d := range dex {
		if p.Species.PokedexNumber == d {
			return true
		}
	}
	return false
}

// offensiveStage drops a negative stage on a critical hit.
func offensiveStage(value uint, stage int, crit bool) uint {
	if crit && stage < 0 {
		return value
	}
	return applyStage(value, stage)
}

// defensiveStage drops a positive stage on a critical hit.
func defensiveStage(value uint, stage int, crit bool) uint {
	if crit && stage > 0 {
		return value
	}
	return applyStage(value, stage)
}

// CalcAttack is the Attack used by a physical move of p.
func CalcAttack(p *Pokemon, crit bool, weather WeatherKind) uint {
	raw := p.Attack.RawValue
	if p.Vol.PowerTrick {
		raw = p.Def.RawValue
	}
	attack := offensiveStage(raw, p.Attack.Stage, crit)

	switch {
	case p.Ability == ABILITY_FLOWER_GIFT && weather == WEATHER_SUN:
		attack = attack * 3 / 2
	case p.Ability == ABILITY_GUTS && p.Status != STATUS_NONE:
		attack = attack * 3 / 2
	case p.Ability == ABILITY_HUSTLE:
		attack = attack * 3 / 2
	case p.Ability == ABILITY_HUGE_POWER || p.Ability == ABILITY_PURE_POWER:
		attack *= 2
	case p.Ability == ABILITY_SLOW_START && p.Vol.SlowStart > 0:
		attack /= 2
	}

	switch {
	case p.itemActive(ITEM_CHOICE_BAND):
		attack = attack * 3 / 2
	case p.itemActive(ITEM_LIGHT_BALL) && p.is(DEX_PIKACHU):
		attack *= 2
	case p.itemActive(ITEM_THICK_CLUB) && p.is(DEX_CUBONE, DEX_MAROWAK):
		attack *= 2
	}

	if p.Status == STATUS_BURN && p.Ability != ABILITY_GUTS {
		attack /= 2
	}
	return max(1, attack)
}

func CalcSpAttack(p *Pokemon, crit bool, weather WeatherKind) uint {
	spAttack := offensiveStage(p.SpAttack.RawValue, p.SpAttack.Stage, crit)

	if p.Ability == ABILITY_SOLAR_POWER && weather == WEATHER_SUN {
		spAttack = spAttack * 3 / 2
	}

	switch {
	case p.itemActive(ITEM_CHOICE_SPECS):
		spAttack = spAttack * 3 / 2
	case p.itemActive(ITEM_SOUL_DEW) && p.is(DEX_LATIAS, DEX_LATIOS):
		spAttack = spAttack * 3 / 2
	case p.itemActive(ITEM_DEEPSEATOOTH) && p.is(DEX_CLAMPERL):
		spAttack *= 2
	case p.itemActive(ITEM_LIGHT_BALL) && p.is(DEX_PIKACHU):
		spAttack *= 2
	}
	return max(1, spAttack)
}

// CalcDefense is the Defense p uses against a physical move. selfDestruct halves it.
func CalcDefense(p *Pokemon, crit bool, selfDestruct bool) uint {
	raw := p.Def.RawValue
	if p.Vol.PowerTrick {
		raw = p.Attack.RawValue
	}
	defense := defensiveStage(raw, p.Def.Stage, crit)

	if p.Ability == ABILITY_MARVEL_SCALE && p.Status != STATUS_NONE {
		defense = defense * 3 / 2
	}
	if p.itemActive(ITEM_METAL_POWDER) && p.is(DEX_DITTO) {
		defense = defense * 3 / 2
	}
	if selfDestruct {
		defense /= 2
	}
	return max(1, defense)
}

func CalcSpDefense(p *Pokemon, crit bool, weather WeatherKind) uint {
	spDef := defensiveStage(p.SpDef.RawValue, p.SpDef.Stage, crit)

	if p.Ability == ABILITY_FLOWER_GIFT && weather == WEATHER_SUN {
		spDef = spDef * 3 / 2
	}

	switch {
	case p.itemActive(ITEM_DEEPSEASCALE) && p.is(DEX_CLAMPERL):
		spDef *= 2
	case p.itemActive(ITEM_METAL_POWDER) && p.is(DEX_DITTO):
		spDef = spDef * 3 / 2
	case p.itemActive(ITEM_SOUL_DEW) && p.is(DEX_LATIAS, DEX_LATIOS):
		spDef = spDef * 3 / 2
	}

	if weather == WEATHER_SANDSTORM && p.HasType(TYPE_ROCK) {
		spDef = spDef * 3 / 2
	}
	return max(1, spDef)
}

// CalcSpeed is the Speed of the team's active Pokemon. Tailwind belongs to the side.
func CalcSpeed(t *Team, weather WeatherKind) uint {
	p := t.GetActivePokemon()
	speed := applyStage(p.RawSpeed.RawValue, p.RawSpeed.Stage)

	switch {
	case p.Ability == ABILITY_CHLOROPHYLL && weather == WEATHER_SUN:
		speed *= 2
	case p.Ability == ABILITY_SWIFT_SWIM && weather == WEATHER_RAIN:
		speed *= 2
	case p.Ability == ABILITY_UNBURDEN && p.Vol.Unburden:
		speed *= 2
	case p.Ability == ABILITY_QUICK_FEET && p.Status != STATUS_NONE:
		speed = speed * 3 / 2
	case p.Ability == ABILITY_SLOW_START && p.Vol.SlowStart > 0:
		speed /= 2
	}

	switch {
	case p.itemActive(ITEM_QUICK_POWDER) && p.is(DEX_DITTO):
		speed *= 2
	case p.itemActive(ITEM_CHOICE_SCARF):
		speed = speed * 3 / 2
	case p.Vol.Embargo == 0 && p.Item.HalvesSpeed():
		speed /= 2
	}

	if p.Status == STATUS_PARA && p.Ability != ABILITY_QUICK_FEET {
		speed /= 4
	}
	if t.Side.Tailwind > 0 {
		speed *= 2
	}
	return max(1, speed)
}

// critical reports whether attacker's rolled critical hit lands on defender.
func critical(attacker, defender *Team) bool {
	if !attacker.Crit {
		return false
	}
	return !defender.GetActivePokemon().Ability.BlocksCrits() && defender.Side.LuckyChant == 0
}

// CritStage is the critical hit stage of the user's selected move, from 0 to 4.
func CritStage(user *Team) int {
	p := user.GetActivePokemon()
	stage := 0
	if p.ActiveMove().Info.Has(FLAG_HIGH_CRIT) {
		stage++
	}
	if p.Vol.FocusEnergy {
		stage += 2
	}
	if p.Ability == ABILITY_SUPER_LUCK {
		stage++
	}
	if p.itemActive(ITEM_SCOPE_LENS) || p.itemActive(ITEM_RAZOR_CLAW) {
		stage++
	}
	return min(stage, 4)
}

// ChanceToHit is the percent chance, 0 to 100, that user's selected move hits target.
// Moves that cannot miss return 100.
func ChanceToHit(user, target *Team, weather *Weather) uint {
	return chanceToHit(user, target, weather, user.ActiveMove().Info)
}

func chanceToHit(user, target *Team, weather *Weather, move *MoveData) uint {
	attacker := user.GetActivePokemon()
	defender := target.GetActivePokemon()
	active := weather.Active(attacker, defender)

	if move.Target != TARGET_OPPONENT || move.Accuracy == 0 || attacker.Vol.LockOn {
		return 100
	}
	if attacker.Ability == ABILITY_NO_GUARD || defender.Ability == ABILITY_NO_GUARD {
		return 100
	}
	if move.Fixed == FIXED_OHKO {
		if defender.Level > attacker.Level {
			return 0
		}
		return min(100, move.Accuracy+attacker.Level-defender.Level)
	}
	switch {
	case move.Has(FLAG_RAIN_ACCURATE) && active == WEATHER_RAIN:
		return 100
	case move.Has(FLAG_HAIL_ACCURATE) && active == WEATHER_HAIL:
		return 100
	}

	accuracy := move.Accuracy
	if move.Has(FLAG_RAIN_ACCURATE) && active == WEATHER_SUN {
		accuracy = 50
	}

	accuracy = accuracyStage(accuracy, attacker.AccuracyStage)
	evasion := defender.EvasionStage
	if defender.Vol.Identified && evasion > 0 {
		evasion = 0
	}
	accuracy = accuracyStage(accuracy, -evasion)

	if attacker.Ability == ABILITY_COMPOUND_EYES {
		accuracy = accuracy * 13 / 10
	}
	if attacker.Ability == ABILITY_HUSTLE && move.Class == CLASS_PHYSICAL {
		accuracy = accuracy * 4 / 5
	}
	switch {
	case attacker.itemActive(ITEM_WIDE_LENS):
		accuracy = accuracy * 11 / 10
	case attacker.itemActive(ITEM_ZOOM_LENS) && target.Moved:
		accuracy = accuracy * 6 / 5
	}
	if defender.itemActive(ITEM_BRIGHTPOWDER) || defender.itemActive(ITEM_LAX_INCENSE) {
		accuracy = accuracy * 9 / 10
	}
	switch {
	case defender.Ability == ABILITY_SAND_VEIL && active == WEATHER_SANDSTORM:
		accuracy = accuracy * 4 / 5
	case defender.Ability == ABILITY_SNOW_CLOAK && active == WEATHER_HAIL:
		accuracy = accuracy * 4 / 5
	case defender.Ability == ABILITY_TANGLED_FEET && defender.Vol.Confusion > 0:
		accuracy /= 2
	}
	if weather.Gravity > 0 {
		accuracy = accuracy * 5 / 3
	}
	return max(1, min(100, accuracy))
}
