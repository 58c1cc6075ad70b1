package battle

// MoveType is the type a move of p takes this turn. Hidden Power, Weather Ball and Natural Gift
// change type; every other move keeps its table type.
func MoveType(p *Pokemon, info *MoveData, weather WeatherKind) Type {
	switch {
	case info.PowerRule == POWER_HIDDEN_POWER:
		t, _ := p.HiddenPower()
		return t
	case info.Doubler == DOUBLE_WEATHER_BALL:
		switch weather {
		case WEATHER_RAIN:
			return TYPE_WATER
		case WEATHER_SUN:
			return TYPE_FIRE
		case WEATHER_SANDSTORM:
			return TYPE_ROCK
		case WEATHER_HAIL:
			return TYPE_ICE
		}
	case info.PowerRule == POWER_NATURAL_GIFT:
		if t, _, ok := p.Item.NaturalGift(); ok && p.Vol.Embargo == 0 {
			return t
		}
	}
	return info.Type
}

// MovePower resolves the base power of attacker's selected move against defender.
// 0 means the move deals no formula damage this turn.
func MovePower(attacker, defender *Team, weather *Weather) uint {
	return movePower(attacker, attacker.ActiveMove(), defender, weather)
}

func movePower(user *Team, move *Move, target *Team, weather *Weather) uint {
	a := user.GetActivePokemon()
	d := target.GetActivePokemon()
	info := move.Info
	active := weather.Active(a, d)
	moveType := MoveType(a, info, active)

	power := rulePower(user, move, target, weather)
	if power == 0 {
		return 0
	}
	power = applyDoubler(power, user, info, target, active)

	if t, ok := a.Item.TypeBoost(); ok && a.Vol.Embargo == 0 && t == moveType {
		power = power * 6 / 5
	}
	switch {
	case a.itemActive(ITEM_MUSCLE_BAND) && info.Class == CLASS_PHYSICAL:
		power = power * 11 / 10
	case a.itemActive(ITEM_WISE_GLASSES) && info.Class == CLASS_SPECIAL:
		power = power * 11 / 10
	}

	if moveType == TYPE_ELECTRIC {
		if a.Vol.Charged {
			power *= 2
		}
		if a.Vol.MudSport || d.Vol.MudSport {
			power /= 2
		}
	}
	if moveType == TYPE_FIRE && (a.Vol.WaterSport || d.Vol.WaterSport) {
		power /= 2
	}

	power = attackerAbilityPower(power, a, d, info, moveType)
	power = defenderAbilityPower(power, d, moveType)

	damageLogger().V(2).Info("Power", "move", info.Name, "power", power)
	return max(1, power)
}

func rulePower(user *Team, move *Move, target *Team, weather *Weather) uint {
	a := user.GetActivePokemon()
	d := target.GetActivePokemon()
	info := move.Info

	switch info.PowerRule {
	case POWER_BASE:
		return info.Power
	case POWER_CRUSH_GRIP:
		return 1 + 120*d.Hp.Value/d.Hp.Max
	case POWER_ERUPTION:
		return max(1, info.Power*a.Hp.Value/a.Hp.Max)
	case POWER_FLAIL:
		return flailPower(64 * a.Hp.Value / a.Hp.Max)
	case POWER_FLING:
		if a.Vol.Embargo > 0 {
			return 0
		}
		return a.Item.FlingPower()
	case POWER_RETURN:
		return max(1, a.Happiness*2/5)
	case POWER_FRUSTRATION:
		return max(1, (255-min(a.Happiness, 255))*2/5)
	case POWER_WEIGHT:
		return weightPower(d.Species.Weight)
	case POWER_GYRO_BALL:
		active := weather.Active(a, d)
		return min(150, 25*CalcSpeed(target, active)/CalcSpeed(user, active)+1)
	case POWER_HIDDEN_POWER:
		_, power := a.HiddenPower()
		return power
	case POWER_MAGNITUDE:
		return magnitudePower(move.Variable)
	case POWER_NATURAL_GIFT:
		if _, power, ok := a.Item.NaturalGift(); ok && a.Vol.Embargo == 0 {
			return power
		}
		return 0
	case POWER_PRESENT:
		return presentPower(move.Variable)
	case POWER_PUNISHMENT:
		boosts := 0
		for _, s := range d.stages() {
			boosts += max(0, s)
		}
		return min(200, uint(60+20*boosts))
	case POWER_SPIT_UP:
		return uint(100 * a.Vol.Stockpile)
	case POWER_TRUMP_CARD:
		return trumpCardPower(move.PP)
	case POWER_FURY_CUTTER:
		return info.Power << min(move.TimesUsed, 4)
	case POWER_ROLLOUT:
		power := info.Power << (move.TimesUsed % 5)
		if a.Vol.DefenseCurl {
			power *= 2
		}
		return power
	case POWER_TRIPLE_KICK:
		return info.Power * uint(1+move.TimesUsed%3)
	}
	panic("unhandled power rule for " + info.Name)
}

// flailPower maps 64ths of remaining HP to Flail and Reversal power.
func flailPower(n uint) uint {
	switch {
	case n <= 1:
		return 200
	case n <= 5:
		return 150
	case n <= 12:
		return 100
	case n <= 21:
		return 80
	case n <= 42:
		return 40
	}
	return 20
}

func weightPower(hectograms uint) uint {
	switch {
	case hectograms < 100:
		return 20
	case hectograms < 250:
		return 40
	case hectograms < 500:
		return 60
	case hectograms < 1000:
		return 80
	case hectograms < 2000:
		return 100
	}
	return 120
}

// magnitudePower reads variable as a percentile.
func magnitudePower(variable int) uint {
	switch v := variable % 100; {
	case v < 5:
		return 10
	case v < 15:
		return 30
	case v < 35:
		return 50
	case v < 65:
		return 70
	case v < 85:
		return 90
	case v < 95:
		return 110
	}
	return 150
}

// presentPower reads variable in tenths. The healing outcome deals no damage.
func presentPower(variable int) uint {
	switch v := variable % 10; {
	case v < 4:
		return 40
	case v < 7:
		return 80
	case v < 8:
		return 120
	}
	return 0
}

// trumpCardPower uses the PP left after this use.
func trumpCardPower(pp int) uint {
	switch pp {
	case 0:
		return 200
	case 1:
		return 80
	case 2:
		return 60
	case 3:
		return 50
	}
	return 40
}

func applyDoubler(power uint, user *Team, info *MoveData, target *Team, weather WeatherKind) uint {
	a := user.GetActivePokemon()
	d := target.GetActivePokemon()

	double := false
	switch info.Doubler {
	case DOUBLE_NONE:
	case DOUBLE_BRINE:
		double = d.Hp.Value*2 <= d.Hp.Max
	case DOUBLE_ASSURANCE:
		double = target.Damaged
	case DOUBLE_AVALANCHE:
		double = user.Damaged
	case DOUBLE_PAYBACK:
		double = target.Moved
	case DOUBLE_FACADE:
		double = a.Status == STATUS_BURN || a.Status == STATUS_PARA || a.Status.Poisoned()
	case DOUBLE_WEATHER_BALL:
		double = weather != WEATHER_NONE
	case DOUBLE_SMELLINGSALT:
		double = d.Status == STATUS_PARA
	case DOUBLE_WAKE_UP_SLAP:
		double = d.Status.Asleep()
	case DOUBLE_STOMP:
		double = d.Vol.Minimized
	case DOUBLE_VS_UNDERGROUND:
		double = d.Vol.Vanish == VANISH_DIG
	case DOUBLE_VS_UNDERWATER:
		double = d.Vol.Vanish == VANISH_DIVE
	case DOUBLE_VS_AIRBORNE:
		double = d.Vol.Vanish == VANISH_FLY
	case DOUBLE_SOLAR_BEAM:
		if weather != WEATHER_NONE && weather != WEATHER_SUN {
			return power / 2
		}
	default:
		panic("unhandled doubler for " + info.Name)
	}
	if double {
		return power * 2
	}
	return power
}

func attackerAbilityPower(power uint, a *Pokemon, d *Pokemon, info *MoveData, moveType Type) uint {
	if a.Ability == ABILITY_TECHNICIAN && power <= 60 {
		power = power * 3 / 2
	}
	if t, ok := a.Ability.PinchType(); ok && t == moveType && a.Hp.Value*3 <= a.Hp.Max {
		power = power * 3 / 2
	}
	if a.Ability == ABILITY_IRON_FIST && info.Has(FLAG_PUNCH) {
		power = power * 6 / 5
	}
	if a.Ability == ABILITY_RECKLESS && info.Recoil > 0 {
		power = power * 6 / 5
	}
	if a.Ability == ABILITY_RIVALRY {
		num, den := a.Gender.Rivalry(d.Gender)
		power = power * num / den
	}
	return power
}

func defenderAbilityPower(power uint, d *Pokemon, moveType Type) uint {
	switch d.Ability {
	case ABILITY_HEATPROOF:
		if moveType == TYPE_FIRE {
			power /= 2
		}
	case ABILITY_THICK_FAT:
		if moveType == TYPE_FIRE || moveType == TYPE_ICE {
			power /= 2
		}
	case ABILITY_DRY_SKIN:
		if moveType == TYPE_FIRE {
			power = power * 5 / 4
		}
	}
	return power
}
