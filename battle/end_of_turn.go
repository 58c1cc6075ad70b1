package battle

// Rules toggles the end of turn passes that not every format plays with.
type Rules struct {
	PerishSong bool
}

var DefaultRules = Rules{PerishSong: true}

// RunEndOfTurn runs every end of turn pass with DefaultRules.
func RunEndOfTurn(a, b *Team, weather *Weather) {
	RunEndOfTurnWithRules(a, b, weather, DefaultRules)
}

// RunEndOfTurnWithRules runs the end of turn passes in order. Each pass finishes for both
// sides before the next one starts.
func RunEndOfTurnWithRules(a, b *Team, weather *Weather, rules Rules) {
	eachSide(a, b, resetTurnFlags)
	eachSide(a, b, sideCountersPass)
	eachSide(a, b, wishPass)
	weatherPass(a, b, weather)
	eachSide(a, b, func(self, other *Team) { passivePass(self, other) })
	eachSide(a, b, statusPass)
	eachSide(a, b, func(self, other *Team) { commitmentPass(self, other, weather) })
	weather.Uproar = max(a.GetActivePokemon().Vol.Uproar, b.GetActivePokemon().Vol.Uproar)
	if rules.PerishSong {
		eachSide(a, b, perishPass)
	}

	endOfTurnLogger().V(1).Info("End of turn",
		"hp_a", a.GetActivePokemon().Hp.Value, "hp_b", b.GetActivePokemon().Hp.Value, "weather", weather.Kind)
}

func eachSide(a, b *Team, pass func(self, other *Team)) {
	pass(a, b)
	pass(b, a)
}

func resetTurnFlags(self, _ *Team) {
	self.Moved = false
	self.Damaged = false
	self.DamageTaken = 0
	self.DamageTakenPhysical = false

	v := &self.GetActivePokemon().Vol
	v.Flinch = false
	v.Protect = false
	v.Endure = false
	v.Roost = false
	v.DestinyBond = false
}

func sideCountersPass(self, _ *Team) {
	s := &self.Side
	for _, counter := range []*int{&s.Reflect, &s.LightScreen, &s.Safeguard, &s.Mist, &s.Tailwind, &s.LuckyChant} {
		decrement(counter)
	}
}

func wishPass(self, _ *Team) {
	if decrement(&self.Side.Wish) {
		self.GetActivePokemon().Heal(self.Side.WishHeal)
		self.Side.WishHeal = 0
	}
}

// weatherPass counts the weather down and applies what is left of it. Weather keeps
// counting down while an ability suppresses it.
func weatherPass(a, b *Team, weather *Weather) {
	pa, pb := a.GetActivePokemon(), b.GetActivePokemon()
	suppressed := weather.Suppressed(pa, pb)
	weather.decrement()
	if suppressed || weather.Kind == WEATHER_NONE {
		return
	}
	weatherResidual(pa, weather.Kind)
	weatherResidual(pb, weather.Kind)
}

func weatherResidual(p *Pokemon, kind WeatherKind) {
	if !p.Alive() {
		return
	}
	hidden := p.Vol.Vanish == VANISH_DIG || p.Vol.Vanish == VANISH_DIVE
	guarded := p.Ability.BlocksIndirectDamage()

	switch kind {
	case WEATHER_SANDSTORM:
		if hidden || guarded || p.Ability == ABILITY_SAND_VEIL {
			return
		}
		if !p.HasType(TYPE_ROCK) && !p.HasType(TYPE_GROUND) && !p.HasType(TYPE_STEEL) {
			p.DamageFraction(1, 16)
		}
	case WEATHER_HAIL:
		if p.Ability == ABILITY_ICE_BODY {
			p.HealFraction(1, 16)
			return
		}
		if hidden || guarded || p.Ability == ABILITY_SNOW_CLOAK || p.HasType(TYPE_ICE) {
			return
		}
		p.DamageFraction(1, 16)
	case WEATHER_RAIN:
		switch p.Ability {
		case ABILITY_RAIN_DISH:
			p.HealFraction(1, 16)
		case ABILITY_DRY_SKIN:
			p.HealFraction(1, 8)
		case ABILITY_HYDRATION:
			if p.Status != STATUS_NONE {
				p.Status = STATUS_NONE
				p.SleepCount = 0
			}
		}
	case WEATHER_SUN:
		if (p.Ability == ABILITY_DRY_SKIN || p.Ability == ABILITY_SOLAR_POWER) && !guarded {
			p.DamageFraction(1, 8)
		}
	}
	checkBerry(p)
}

func passivePass(self, other *Team) {
	p := self.GetActivePokemon()
	if !p.Alive() {
		return
	}
	guarded := p.Ability.BlocksIndirectDamage()

	if seeder := other.GetActivePokemon(); p.Vol.LeechSeed && seeder.Alive() && !guarded {
		drained := min(p.Hp.Value, max(1, p.Hp.Max/8))
		p.Damage(drained)
		if p.Ability == ABILITY_LIQUID_OOZE {
			seeder.Damage(drained)
		} else {
			seeder.Heal(drained)
		}
		endOfTurnLogger().V(1).Info("Leech Seed", "from", p.Name(), "to", seeder.Name(), "hp", drained)
	}
	if !p.Alive() {
		return
	}

	switch {
	case p.itemActive(ITEM_LEFTOVERS):
		p.HealFraction(1, 16)
	case p.itemActive(ITEM_BLACK_SLUDGE):
		if p.HasType(TYPE_POISON) {
			p.HealFraction(1, 16)
		} else if !guarded {
			p.DamageFraction(1, 8)
		}
	case p.itemActive(ITEM_STICKY_BARB):
		if !guarded {
			p.DamageFraction(1, 8)
		}
	}
	if p.Vol.Ingrain {
		p.HealFraction(1, 16)
	}
	if p.Vol.AquaRing {
		p.HealFraction(1, 16)
	}
	if p.Ability == ABILITY_SPEED_BOOST && p.Vol.ActiveTurns > 0 {
		p.ChangeStage(STAT_SPEED, 1)
	}
}

// statusPass applies residual damage. Toxic deals ToxicCount/16 of max HP, one more sixteenth
// each turn up to TOXIC_CAP.
func statusPass(self, _ *Team) {
	p := self.GetActivePokemon()
	if !p.Alive() {
		return
	}
	guarded := p.Ability.BlocksIndirectDamage()

	switch p.Status {
	case STATUS_BURN:
		if !guarded {
			if p.Ability == ABILITY_HEATPROOF {
				p.DamageFraction(1, 16)
			} else {
				p.DamageFraction(1, 8)
			}
		}
	case STATUS_POISON:
		switch {
		case p.Ability == ABILITY_POISON_HEAL:
			p.HealFraction(1, 8)
		case !guarded:
			p.DamageFraction(1, 8)
		}
	case STATUS_TOXIC:
		n := max(1, min(p.ToxicCount, TOXIC_CAP))
		switch {
		case p.Ability == ABILITY_POISON_HEAL:
			p.HealFraction(1, 8)
		case !guarded:
			p.DamageFraction(uint(n), 16)
		}
		p.ToxicCount = min(n+1, TOXIC_CAP)
	}

	if p.Vol.Nightmare {
		if !p.Status.Asleep() {
			p.Vol.Nightmare = false
		} else if !guarded {
			p.DamageFraction(1, 4)
		}
	}
	if p.Vol.Curse && !guarded {
		p.DamageFraction(1, 4)
	}
	if p.Vol.PartialTrap > 0 {
		if !guarded {
			p.DamageFraction(1, 16)
		}
		decrement(&p.Vol.PartialTrap)
	}
	checkBerry(p)
}

func commitmentPass(self, other *Team, weather *Weather) {
	p := self.GetActivePokemon()
	v := &p.Vol

	if decrement(&v.Rampage) && p.Alive() && p.Ability != ABILITY_OWN_TEMPO && v.Confusion == 0 {
		v.Confusion = CONFUSION_DEFAULT
		if self.ConfusionLength > 0 {
			v.Confusion = self.ConfusionLength
		}
		endOfTurnLogger().V(1).Info("Rampage ended in confusion", "pokemon", p.Name())
	}
	decrement(&v.Uproar)

	for _, counter := range []*int{&v.Taunt, &v.Encore, &v.Embargo, &v.HealBlock, &v.MagnetRise, &v.SlowStart} {
		decrement(counter)
	}
	if decrement(&v.Disable) {
		for i := range p.Moves {
			p.Moves[i].Disabled = false
		}
	}
	if decrement(&v.Yawn) {
		inflict(self, other, STATUS_SLEEP, weather, SLEEP_DEFAULT)
	}

	if p.Alive() {
		v.ActiveTurns++
	}
}

func perishPass(self, _ *Team) {
	p := self.GetActivePokemon()
	if decrement(&p.Vol.PerishSong) && p.Alive() {
		endOfTurnLogger().V(1).Info("Perish Song", "pokemon", p.Name())
		p.Faint()
	}
}
