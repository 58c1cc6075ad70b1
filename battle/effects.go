package battle

import "fmt"

// EffectKind is the shape of what a move does besides dealing damage. Every move row has exactly one.
type EffectKind int

const (
	EFFECT_NONE EffectKind = iota
	EFFECT_BOOST_SELF
	EFFECT_BOOST_TARGET
	EFFECT_INFLICT
	EFFECT_FIELD
	EFFECT_SWAP
	EFFECT_SWITCH
	EFFECT_COMMIT
	EFFECT_VANISH
	EFFECT_CONDITIONAL
	EFFECT_HEAL
	EFFECT_CURE
	effectKindCount
)

var effectKindNames = [effectKindCount]string{
	EFFECT_NONE:         "none",
	EFFECT_BOOST_SELF:   "boost-self",
	EFFECT_BOOST_TARGET: "boost-target",
	EFFECT_INFLICT:      "inflict",
	EFFECT_FIELD:        "field",
	EFFECT_SWAP:         "swap",
	EFFECT_SWITCH:       "switch",
	EFFECT_COMMIT:       "commit",
	EFFECT_VANISH:       "vanish",
	EFFECT_CONDITIONAL:  "conditional",
	EFFECT_HEAL:         "heal",
	EFFECT_CURE:         "cure",
}

func (k EffectKind) String() string {
	if k < 0 || k >= effectKindCount {
		panic(fmt.Sprintf("unknown effect kind %d", int(k)))
	}
	return effectKindNames[k]
}

type Boost struct {
	Stat   Stat
	Stages int
}

type VolatileKind int

const (
	VOL_NONE VolatileKind = iota
	VOL_CONFUSION
	VOL_FLINCH
	VOL_LEECH_SEED
	VOL_ATTRACT
	VOL_TAUNT
	VOL_ENCORE
	VOL_DISABLE
	VOL_YAWN
	VOL_CURSE
	VOL_NIGHTMARE
	VOL_PERISH_SONG
	VOL_PARTIAL_TRAP
	VOL_MEAN_LOOK
	VOL_EMBARGO
	VOL_HEAL_BLOCK
	VOL_IDENTIFIED
	VOL_LOCK_ON
	VOL_SUBSTITUTE
	VOL_PROTECT
	VOL_ENDURE
	VOL_FOCUS_ENERGY
	VOL_INGRAIN
	VOL_AQUA_RING
	VOL_MAGNET_RISE
	VOL_DESTINY_BOND
	VOL_CHARGE
	VOL_MUD_SPORT
	VOL_WATER_SPORT
	VOL_STOCKPILE
	VOL_MINIMIZE
	VOL_DEFENSE_CURL
	volatileKindCount
)

type FieldKind int

const (
	FIELD_NONE FieldKind = iota
	FIELD_REFLECT
	FIELD_LIGHT_SCREEN
	FIELD_SAFEGUARD
	FIELD_MIST
	FIELD_TAILWIND
	FIELD_LUCKY_CHANT
	FIELD_WISH
	FIELD_SPIKES
	FIELD_TOXIC_SPIKES
	FIELD_STEALTH_ROCK
	FIELD_RAIN
	FIELD_SUN
	FIELD_SAND
	FIELD_HAIL
	FIELD_TRICK_ROOM
	FIELD_GRAVITY
	fieldKindCount
)

type SwapKind int

const (
	SWAP_NONE SwapKind = iota
	SWAP_POWER_TRICK
	SWAP_POWER
	SWAP_GUARD
	SWAP_HEART
	SWAP_ITEMS
	SWAP_ABILITIES
	SWAP_PAIN_SPLIT
	swapKindCount
)

type SwitchKind int

const (
	SWITCH_NONE SwitchKind = iota
	SWITCH_USER
	SWITCH_BATON_PASS
	SWITCH_FORCE_TARGET
	switchKindCount
)

type CommitKind int

const (
	COMMIT_NONE CommitKind = iota
	COMMIT_RAMPAGE
	COMMIT_UPROAR
	COMMIT_BIDE
	COMMIT_RECHARGE
	// Spends a turn charging before the move strikes.
	COMMIT_CHARGE
	commitKindCount
)

type VanishKind int

const (
	VANISH_NONE VanishKind = iota
	VANISH_DIG
	VANISH_DIVE
	VANISH_FLY
	VANISH_SHADOW_FORCE
	vanishKindCount
)

type ConditionalKind int

const (
	COND_NONE ConditionalKind = iota
	COND_REMOVE_SCREENS
	COND_KNOCK_OFF
	COND_THIEF
	COND_CURE_TARGET_PARA
	COND_WAKE_TARGET
	COND_RAPID_SPIN
	COND_TRI_ATTACK
	COND_SELF_KO
	COND_EAT_BERRY
	COND_CLEAR_STOCKPILE
	conditionalKindCount
)

type HealKind int

const (
	HEAL_NONE HealKind = iota
	HEAL_HALF
	HEAL_ROOST
	HEAL_WEATHER
	HEAL_REST
	HEAL_SWALLOW
	healKindCount
)

type CureKind int

const (
	CURE_NONE CureKind = iota
	CURE_SELF
	CURE_TEAM
	cureKindCount
)

// MoveEffect holds the effect shape of a move's row and its parameters. Only the
// field matching Kind is read, except Boosts which INFLICT may carry alongside a volatile.
type MoveEffect struct {
	Kind        EffectKind
	Boosts      []Boost
	Status      Status
	Volatile    VolatileKind
	Field       FieldKind
	Swap        SwapKind
	Switch      SwitchKind
	Commit      CommitKind
	Vanish      VanishKind
	Conditional ConditionalKind
	Heal        HealKind
	Cure        CureKind
}

func up(stat Stat, stages int) Boost {
	return Boost{stat, stages}
}

func down(stat Stat, stages int) Boost {
	return Boost{stat, -stages}
}

func selfBoost(boosts ...Boost) MoveEffect {
	return MoveEffect{Kind: EFFECT_BOOST_SELF, Boosts: boosts}
}

func targetBoost(boosts ...Boost) MoveEffect {
	return MoveEffect{Kind: EFFECT_BOOST_TARGET, Boosts: boosts}
}

func inflictStatus(status Status) MoveEffect {
	return MoveEffect{Kind: EFFECT_INFLICT, Status: status}
}

func inflictVolatile(kind VolatileKind, boosts ...Boost) MoveEffect {
	return MoveEffect{Kind: EFFECT_INFLICT, Volatile: kind, Boosts: boosts}
}

func fieldEffect(kind FieldKind) MoveEffect {
	return MoveEffect{Kind: EFFECT_FIELD, Field: kind}
}

func swapEffect(kind SwapKind) MoveEffect {
	return MoveEffect{Kind: EFFECT_SWAP, Swap: kind}
}

func switchEffect(kind SwitchKind) MoveEffect {
	return MoveEffect{Kind: EFFECT_SWITCH, Switch: kind}
}

func commitEffect(kind CommitKind) MoveEffect {
	return MoveEffect{Kind: EFFECT_COMMIT, Commit: kind}
}

func vanishEffect(kind VanishKind) MoveEffect {
	return MoveEffect{Kind: EFFECT_VANISH, Vanish: kind}
}

func conditionalEffect(kind ConditionalKind) MoveEffect {
	return MoveEffect{Kind: EFFECT_CONDITIONAL, Conditional: kind}
}

func healEffect(kind HealKind) MoveEffect {
	return MoveEffect{Kind: EFFECT_HEAL, Heal: kind}
}

func cureEffect(kind CureKind) MoveEffect {
	return MoveEffect{Kind: EFFECT_CURE, Cure: kind}
}

// validate reports a row whose shape has no handler or lacks the parameter its shape reads.
func (e MoveEffect) validate() error {
	if e.Kind < 0 || e.Kind >= effectKindCount {
		return fmt.Errorf("effect kind %d out of range", int(e.Kind))
	}
	if effectHandlers[e.Kind] == nil {
		return fmt.Errorf("effect kind %s has no handler", e.Kind)
	}
	for _, b := range e.Boosts {
		if b.Stat <= STAT_HP || b.Stat > STAT_EVASION || b.Stages == 0 {
			return fmt.Errorf("invalid boost %+v", b)
		}
	}

	missing := false
	switch e.Kind {
	case EFFECT_BOOST_SELF, EFFECT_BOOST_TARGET:
		missing = len(e.Boosts) == 0
	case EFFECT_INFLICT:
		missing = e.Status == STATUS_NONE && e.Volatile == VOL_NONE
		if e.Volatile < 0 || e.Volatile >= volatileKindCount {
			return fmt.Errorf("volatile %d out of range", int(e.Volatile))
		}
	case EFFECT_FIELD:
		missing = e.Field <= FIELD_NONE || e.Field >= fieldKindCount
	case EFFECT_SWAP:
		missing = e.Swap <= SWAP_NONE || e.Swap >= swapKindCount
	case EFFECT_SWITCH:
		missing = e.Switch <= SWITCH_NONE || e.Switch >= switchKindCount
	case EFFECT_COMMIT:
		missing = e.Commit <= COMMIT_NONE || e.Commit >= commitKindCount
	case EFFECT_VANISH:
		missing = e.Vanish <= VANISH_NONE || e.Vanish >= vanishKindCount
	case EFFECT_CONDITIONAL:
		missing = e.Conditional <= COND_NONE || e.Conditional >= conditionalKindCount
	case EFFECT_HEAL:
		missing = e.Heal <= HEAL_NONE || e.Heal >= healKindCount
	case EFFECT_CURE:
		missing = e.Cure <= CURE_NONE || e.Cure >= cureKindCount
	}
	if missing {
		return fmt.Errorf("effect %s is missing its parameter", e.Kind)
	}
	return nil
}
