package battle

// Blocked runs the checks that can stop user's active Pokemon from acting this turn. It
// consumes the counters it reads, so it must run exactly once per turn, right before ResolveMove.
func Blocked(user, target *Team, weather *Weather) bool {
	reason := blockReason(user, target, weather)
	if reason == "" {
		return false
	}
	p := user.GetActivePokemon()
	resolveLogger().V(1).Info("Blocked", "team", user.Name, "pokemon", p.Name(), "reason", reason)

	p.Vol.Rampage = 0
	p.Vol.Charging = false
	p.Vol.Vanish = VANISH_NONE
	if p.Alive() && len(p.Moves) > 0 {
		p.ActiveMove().TimesUsed = 0
	}
	user.Moved = true
	return true
}

func blockReason(user, target *Team, weather *Weather) string {
	p := user.GetActivePokemon()
	if !p.Alive() {
		return "fainted"
	}
	move := p.ActiveMove()
	info := move.Info
	if !move.HasPP() {
		info = &struggleData
	}

	if p.Vol.Recharging {
		p.Vol.Recharging = false
		return "recharging"
	}

	if p.Status.Asleep() {
		step := 1
		if p.Ability == ABILITY_EARLY_BIRD {
			step = 2
		}
		p.SleepCount -= step
		if p.SleepCount <= 0 {
			p.SleepCount = 0
			p.Status = STATUS_NONE
			p.Vol.Nightmare = false
		} else if !info.Has(FLAG_USABLE_ASLEEP) {
			return "asleep"
		}
	}

	if p.Status == STATUS_FREEZE {
		if !user.Thaw && !info.Has(FLAG_THAWS_USER) {
			return "frozen"
		}
		p.Status = STATUS_NONE
	}

	if p.Ability == ABILITY_TRUANT {
		if p.Vol.Loafing {
			p.Vol.Loafing = false
			return "loafing"
		}
	}

	if p.Vol.Flinch {
		return "flinched"
	}

	if p.Vol.Confusion > 0 {
		if decrement(&p.Vol.Confusion) {
			resolveLogger().V(1).Info("Snapped out of confusion", "pokemon", p.Name())
		} else if user.HitSelf {
			p.Damage(confusionDamage(user, weather))
			return "hurt itself in confusion"
		}
	}

	if p.Vol.Attract && user.Immobilized {
		return "immobilized by love"
	}
	if p.Status == STATUS_PARA && user.FullyParalyzed {
		return "fully paralyzed"
	}

	if p.Vol.Taunt > 0 && info.Class == CLASS_STATUS {
		return "taunted"
	}
	if move.Disabled && info != &struggleData {
		return "disabled"
	}
	if p.Vol.HealBlock > 0 && info.Effect.Kind == EFFECT_HEAL {
		return "heal blocked"
	}
	if weather.Gravity > 0 && info.Effect.Vanish == VANISH_FLY {
		return "grounded by gravity"
	}

	if p.Ability == ABILITY_TRUANT {
		p.Vol.Loafing = true
	}
	return ""
}

// confusionDamage is the typeless 40 power hit a confused Pokemon deals itself.
func confusionDamage(t *Team, weather *Weather) uint {
	hit := NewMove(&confusionHit)
	profile := profileFor(t, &hit, t, weather, confusionHit.Power)
	return RandomDamage(profile, t.ActiveMove().roll())
}

// Locked reports whether p has to repeat its selected move instead of choosing.
func (p *Pokemon) Locked() bool {
	v := &p.Vol
	if v.Vanish != VANISH_NONE || v.Charging || v.Rampage > 0 || v.Uproar > 0 || v.Bide > 0 || v.Encore > 0 {
		return true
	}
	return p.choiceLocked()
}

// choiceLocked is true once a choice item holder has used its selected move.
func (p *Pokemon) choiceLocked() bool {
	if p.Vol.Embargo > 0 || !p.Item.IsChoice() {
		return false
	}
	return p.SelectedMove < len(p.Moves) && p.Moves[p.SelectedMove].TimesUsed > 0
}

// Usable reports whether move slot index can be chosen this turn.
func (p *Pokemon) Usable(index int) bool {
	if index < 0 || index >= len(p.Moves) {
		return false
	}
	if p.Locked() {
		return index == p.SelectedMove
	}
	move := &p.Moves[index]
	if !move.HasPP() || move.Disabled {
		return false
	}
	return p.Vol.Taunt == 0 || move.Info.Class != CLASS_STATUS
}
