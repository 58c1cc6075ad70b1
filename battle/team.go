package battle

import "fmt"

// SideConditions are owned by one side of the field. Counters are turns remaining.
type SideConditions struct {
	Reflect     int
	LightScreen int
	Safeguard   int
	Mist        int
	Tailwind    int
	LuckyChant  int
	// Wish heals WishHeal HP at the end of the turn it reaches 0.
	Wish        int
	WishHeal    uint
	Spikes      int
	ToxicSpikes int
	StealthRock bool
}

const (
	SCREEN_TURNS      = 5
	TAILWIND_TURNS    = 3
	MAX_SPIKES        = 3
	MAX_TOXIC_SPIKES  = 2
	WISH_TURNS        = 2
	CONFUSION_DEFAULT = 3
)

// Team is one side of the battle. It owns its roster and its side conditions. The other
// side is only ever borrowed for the length of one call.
type Team struct {
	Name            string
	Roster          []Pokemon
	ActivePokeIndex int
	Side            SideConditions

	// Per-turn facts, cleared at the start of every end-of-turn pass.
	Moved               bool
	Damaged             bool
	DamageTaken         uint
	DamageTakenPhysical bool

	// Outcome flags for this side's next action, decided by the caller or RollOutcomes.
	Crit           bool
	Miss           bool
	Secondary      bool
	FullyParalyzed bool
	HitSelf        bool
	Thaw           bool
	Immobilized    bool
	// ConfusionLength is used when this side confuses a Pokemon. 0 means CONFUSION_DEFAULT.
	ConfusionLength int

	// Replacement is the roster index brought in when this side switches. -1 picks the first healthy Pokemon.
	Replacement int
}

func NewTeam(name string, roster []Pokemon) Team {
	if len(roster) == 0 || len(roster) > 6 {
		panic(fmt.Sprintf("team %s has %d pokemon, wants 1 to 6", name, len(roster)))
	}
	return Team{Name: name, Roster: roster, Replacement: -1}
}

func (t *Team) GetActivePokemon() *Pokemon {
	return &t.Roster[t.ActivePokeIndex]
}

func (t *Team) GetPokemon(index int) *Pokemon {
	return &t.Roster[index]
}

// ActiveMove is the move the active Pokemon has selected.
func (t *Team) ActiveMove() *Move {
	return t.GetActivePokemon().ActiveMove()
}

func (t *Team) GetAllAlivePokemon() []*Pokemon {
	alive := make([]*Pokemon, 0, len(t.Roster))
	for i := range t.Roster {
		if t.Roster[i].Alive() {
			alive = append(alive, &t.Roster[i])
		}
	}
	return alive
}

// Lost reports whether every Pokemon on the team has fainted.
func (t *Team) Lost() bool {
	for i := range t.Roster {
		if t.Roster[i].Alive() {
			return false
		}
	}
	return true
}

// replacementIndex resolves Replacement into a valid switch target, or -1 when there is none.
func (t *Team) replacementIndex() int {
	if r := t.Replacement; r >= 0 && r < len(t.Roster) && r != t.ActivePokeIndex && t.Roster[r].Alive() {
		return r
	}
	for i := range t.Roster {
		if i != t.ActivePokeIndex && t.Roster[i].Alive() {
			return i
		}
	}
	return -1
}

// CanSwitch reports whether the active Pokemon is free to switch out by choice.
func (t *Team) CanSwitch(other *Team, weather *Weather) bool {
	poke := t.GetActivePokemon()
	if t.replacementIndex() < 0 {
		return false
	}
	if poke.Vol.Ingrain || poke.Vol.MeanLook || poke.Vol.PartialTrap > 0 {
		return false
	}
	opponent := other.GetActivePokemon()
	return !opponent.Alive() || !opponent.Ability.BlocksSwitching(poke, weather)
}

// SwitchTo brings in the Pokemon at index. Baton Pass keeps stages and the passable volatiles.
// Entry hazards and switch-in abilities resolve against other.
func (t *Team) SwitchTo(index int, other *Team, weather *Weather, batonPass bool) {
	if index < 0 || index >= len(t.Roster) {
		panic(fmt.Sprintf("team %s: switch to %d of %d", t.Name, index, len(t.Roster)))
	}
	if index == t.ActivePokeIndex {
		return
	}

	outgoing := t.GetActivePokemon()
	stages := outgoing.stages()
	vol := outgoing.Vol.batonPass()
	outgoing.leaveField()

	t.ActivePokeIndex = index
	incoming := t.GetActivePokemon()
	if batonPass {
		incoming.setStages(stages)
		incoming.Vol = vol
	}

	internalLogger.V(1).Info("Switch", "team", t.Name, "out", outgoing.Name(), "in", incoming.Name(), "baton_pass", batonPass)

	t.applyHazards(weather)
	if incoming.Alive() {
		t.switchInAbility(other, weather)
	}
}

// leaveField resets everything that does not survive a switch.
func (p *Pokemon) leaveField() {
	if p.Ability == ABILITY_NATURAL_CURE {
		p.Status = STATUS_NONE
	}
	if p.Status == STATUS_TOXIC {
		p.ToxicCount = 1
	}
	p.ClearStages()
	p.Vol = Volatiles{}
	for i := range p.Moves {
		p.Moves[i].TimesUsed = 0
	}
}

func (t *Team) applyHazards(weather *Weather) {
	poke := t.GetActivePokemon()
	if poke.Ability.BlocksIndirectDamage() {
		return
	}

	if t.Side.StealthRock {
		t1, t2 := poke.Types()
		eff := TYPE_ROCK.AttackEffectiveness(t1) * TYPE_ROCK.AttackEffectiveness(t2)
		// eff is in quarters, so the base 1/8 becomes eff/32
		poke.DamageFraction(eff, 32)
	}

	if !poke.Grounded(weather) {
		return
	}
	switch t.Side.Spikes {
	case 1:
		poke.DamageFraction(1, 8)
	case 2:
		poke.DamageFraction(1, 6)
	case 3:
		poke.DamageFraction(1, 4)
	}

	if t.Side.ToxicSpikes > 0 {
		if poke.HasType(TYPE_POISON) {
			t.Side.ToxicSpikes = 0
			return
		}
		status := STATUS_POISON
		if t.Side.ToxicSpikes > 1 {
			status = STATUS_TOXIC
		}
		inflict(t, t, status, weather, 0)
	}
}

func (t *Team) switchInAbility(other *Team, weather *Weather) {
	poke := t.GetActivePokemon()
	opponent := other.GetActivePokemon()

	if kind, ok := poke.Ability.weatherSetter(); ok {
		weather.Set(kind, WEATHER_PERMANENT)
	}

	if poke.Ability == ABILITY_INTIMIDATE && opponent.Alive() && opponent.Vol.Substitute == 0 {
		if !opponent.Ability.BlocksStatDrops() && opponent.Ability != ABILITY_HYPER_CUTTER {
			opponent.ChangeStage(STAT_ATTACK, -1)
		}
	}

	if poke.Ability == ABILITY_SLOW_START {
		poke.Vol.SlowStart = 5
	}
}
