package battle

import "fmt"

type Ability int

const (
	ABILITY_NONE Ability = iota
	ABILITY_ADAPTABILITY
	ABILITY_AIR_LOCK
	ABILITY_ARENA_TRAP
	ABILITY_BATTLE_ARMOR
	ABILITY_BLAZE
	ABILITY_CHLOROPHYLL
	ABILITY_CLEAR_BODY
	ABILITY_CLOUD_NINE
	ABILITY_COMPOUND_EYES
	ABILITY_DRIZZLE
	ABILITY_DROUGHT
	ABILITY_DRY_SKIN
	ABILITY_EARLY_BIRD
	ABILITY_FILTER
	ABILITY_FLASH_FIRE
	ABILITY_FLOWER_GIFT
	ABILITY_GUTS
	ABILITY_HEATPROOF
	ABILITY_HUGE_POWER
	ABILITY_HUSTLE
	ABILITY_HYDRATION
	ABILITY_HYPER_CUTTER
	ABILITY_ICE_BODY
	ABILITY_IMMUNITY
	ABILITY_INNER_FOCUS
	ABILITY_INSOMNIA
	ABILITY_INTIMIDATE
	ABILITY_IRON_FIST
	ABILITY_KEEN_EYE
	ABILITY_LEAF_GUARD
	ABILITY_LEVITATE
	ABILITY_LIMBER
	ABILITY_LIQUID_OOZE
	ABILITY_MAGIC_GUARD
	ABILITY_MAGMA_ARMOR
	ABILITY_MAGNET_PULL
	ABILITY_MARVEL_SCALE
	ABILITY_MOTOR_DRIVE
	ABILITY_NATURAL_CURE
	ABILITY_NO_GUARD
	ABILITY_OBLIVIOUS
	ABILITY_OVERGROW
	ABILITY_OWN_TEMPO
	ABILITY_POISON_HEAL
	ABILITY_PRESSURE
	ABILITY_PURE_POWER
	ABILITY_QUICK_FEET
	ABILITY_RAIN_DISH
	ABILITY_RECKLESS
	ABILITY_RIVALRY
	ABILITY_ROCK_HEAD
	ABILITY_SAND_STREAM
	ABILITY_SAND_VEIL
	ABILITY_SCRAPPY
	ABILITY_SERENE_GRACE
	ABILITY_SHADOW_TAG
	ABILITY_SHELL_ARMOR
	ABILITY_SIMPLE
	ABILITY_SLOW_START
	ABILITY_SNIPER
	ABILITY_SNOW_CLOAK
	ABILITY_SNOW_WARNING
	ABILITY_SOLAR_POWER
	ABILITY_SOLID_ROCK
	ABILITY_SOUNDPROOF
	ABILITY_SPEED_BOOST
	ABILITY_STALL
	ABILITY_STICKY_HOLD
	ABILITY_STURDY
	ABILITY_SUCTION_CUPS
	ABILITY_SUPER_LUCK
	ABILITY_SWARM
	ABILITY_SWIFT_SWIM
	ABILITY_SYNCHRONIZE
	ABILITY_TANGLED_FEET
	ABILITY_TECHNICIAN
	ABILITY_THICK_FAT
	ABILITY_TINTED_LENS
	ABILITY_TORRENT
	ABILITY_TRUANT
	ABILITY_UNBURDEN
	ABILITY_VITAL_SPIRIT
	ABILITY_VOLT_ABSORB
	ABILITY_WATER_ABSORB
	ABILITY_WATER_VEIL
	ABILITY_WHITE_SMOKE
	ABILITY_WONDER_GUARD
	abilityCount
)

var abilityNames = [abilityCount]string{
	ABILITY_NONE:          "none",
	ABILITY_ADAPTABILITY:  "adaptability",
	ABILITY_AIR_LOCK:      "air-lock",
	ABILITY_ARENA_TRAP:    "arena-trap",
	ABILITY_BATTLE_ARMOR:  "battle-armor",
	ABILITY_BLAZE:         "blaze",
	ABILITY_CHLOROPHYLL:   "chlorophyll",
	ABILITY_CLEAR_BODY:    "clear-body",
	ABILITY_CLOUD_NINE:    "cloud-nine",
	ABILITY_COMPOUND_EYES: "compound-eyes",
	ABILITY_DRIZZLE:       "drizzle",
	ABILITY_DROUGHT:       "drought",
	ABILITY_DRY_SKIN:      "dry-skin",
	ABILITY_EARLY_BIRD:    "early-bird",
	ABILITY_FILTER:        "filter",
	ABILITY_FLASH_FIRE:    "flash-fire",
	ABILITY_FLOWER_GIFT:   "flower-gift",
	ABILITY_GUTS:          "guts",
	ABILITY_HEATPROOF:     "heatproof",
	ABILITY_HUGE_POWER:    "huge-power",
	ABILITY_HUSTLE:        "hustle",
	ABILITY_HYDRATION:     "hydration",
	ABILITY_HYPER_CUTTER:  "hyper-cutter",
	ABILITY_ICE_BODY:      "ice-body",
	ABILITY_IMMUNITY:      "immunity",
	ABILITY_INNER_FOCUS:   "inner-focus",
	ABILITY_INSOMNIA:      "insomnia",
	ABILITY_INTIMIDATE:    "intimidate",
	ABILITY_IRON_FIST:     "iron-fist",
	ABILITY_KEEN_EYE:      "keen-eye",
	ABILITY_LEAF_GUARD:    "leaf-guard",
	ABILITY_LEVITATE:      "levitate",
	ABILITY_LIMBER:        "limber",
	ABILITY_LIQUID_OOZE:   "liquid-ooze",
	ABILITY_MAGIC_GUARD:   "magic-guard",
	ABILITY_MAGMA_ARMOR:   "magma-armor",
	ABILITY_MAGNET_PULL:   "magnet-pull",
	ABILITY_MARVEL_SCALE:  "marvel-scale",
	ABILITY_MOTOR_DRIVE:   "motor-drive",
	ABILITY_NATURAL_CURE:  "natural-cure",
	ABILITY_NO_GUARD:      "no-guard",
	ABILITY_OBLIVIOUS:     "oblivious",
	ABILITY_OVERGROW:      "overgrow",
	ABILITY_OWN_TEMPO:     "own-tempo",
	ABILITY_POISON_HEAL:   "poison-heal",
	ABILITY_PRESSURE:      "pressure",
	ABILITY_PURE_POWER:    "pure-power",
	ABILITY_QUICK_FEET:    "quick-feet",
	ABILITY_RAIN_DISH:     "rain-dish",
	ABILITY_RECKLESS:      "reckless",
	ABILITY_RIVALRY:       "rivalry",
	ABILITY_ROCK_HEAD:     "rock-head",
	ABILITY_SAND_STREAM:   "sand-stream",
	ABILITY_SAND_VEIL:     "sand-veil",
	ABILITY_SCRAPPY:       "scrappy",
	ABILITY_SERENE_GRACE:  "serene-grace",
	ABILITY_SHADOW_TAG:    "shadow-tag",
	ABILITY_SHELL_ARMOR:   "shell-armor",
	ABILITY_SIMPLE:        "simple",
	ABILITY_SLOW_START:    "slow-start",
	ABILITY_SNIPER:        "sniper",
	ABILITY_SNOW_CLOAK:    "snow-cloak",
	ABILITY_SNOW_WARNING:  "snow-warning",
	ABILITY_SOLAR_POWER:   "solar-power",
	ABILITY_SOLID_ROCK:    "solid-rock",
	ABILITY_SOUNDPROOF:    "soundproof",
	ABILITY_SPEED_BOOST:   "speed-boost",
	ABILITY_STALL:         "stall",
	ABILITY_STICKY_HOLD:   "sticky-hold",
	ABILITY_STURDY:        "sturdy",
	ABILITY_SUCTION_CUPS:  "suction-cups",
	ABILITY_SUPER_LUCK:    "super-luck",
	ABILITY_SWARM:         "swarm",
	ABILITY_SWIFT_SWIM:    "swift-swim",
	ABILITY_SYNCHRONIZE:   "synchronize",
	ABILITY_TANGLED_FEET:  "tangled-feet",
	ABILITY_TECHNICIAN:    "technician",
	ABILITY_THICK_FAT:     "thick-fat",
	ABILITY_TINTED_LENS:   "tinted-lens",
	ABILITY_TORRENT:       "torrent",
	ABILITY_TRUANT:        "truant",
	ABILITY_UNBURDEN:      "unburden",
	ABILITY_VITAL_SPIRIT:  "vital-spirit",
	ABILITY_VOLT_ABSORB:   "volt-absorb",
	ABILITY_WATER_ABSORB:  "water-absorb",
	ABILITY_WATER_VEIL:    "water-veil",
	ABILITY_WHITE_SMOKE:   "white-smoke",
	ABILITY_WONDER_GUARD:  "wonder-guard",
}

func init() {
	for i, name := range abilityNames {
		if name == "" {
			panic(fmt.Sprintf("ability %d has no name", i))
		}
	}
}

func (a Ability) String() string {
	if a < 0 || a >= abilityCount {
		panic(fmt.Sprintf("unknown ability %d", int(a)))
	}
	return abilityNames[a]
}

func AbilityByName(name string) (Ability, bool) {
	for i, n := range abilityNames {
		if n == name {
			return Ability(i), true
		}
	}
	return ABILITY_NONE, false
}

// SuppressesWeather reports abilities that negate every weather effect while they are on the field.
func (a Ability) SuppressesWeather() bool {
	return a == ABILITY_AIR_LOCK || a == ABILITY_CLOUD_NINE
}

func (a Ability) VoidsRecoil() bool {
	return a == ABILITY_ROCK_HEAD || a == ABILITY_MAGIC_GUARD
}

// BlocksIndirectDamage covers weather, status, hazards, Life Orb and Leech Seed.
func (a Ability) BlocksIndirectDamage() bool {
	return a == ABILITY_MAGIC_GUARD
}

func (a Ability) BlocksCrits() bool {
	return a == ABILITY_BATTLE_ARMOR || a == ABILITY_SHELL_ARMOR
}

func (a Ability) BlocksStatDrops() bool {
	return a == ABILITY_CLEAR_BODY || a == ABILITY_WHITE_SMOKE
}

// PinchType is the move type boosted by 50% once the holder is at 1/3 HP or less.
func (a Ability) PinchType() (Type, bool) {
	switch a {
	case ABILITY_BLAZE:
		return TYPE_FIRE, true
	case ABILITY_OVERGROW:
		return TYPE_GRASS, true
	case ABILITY_TORRENT:
		return TYPE_WATER, true
	case ABILITY_SWARM:
		return TYPE_BUG, true
	}
	return TYPE_TYPELESS, false
}

// BlocksSwitching reports whether a Pokemon with this ability keeps target from switching out.
func (a Ability) BlocksSwitching(target *Pokemon, weather *Weather) bool {
	switch a {
	case ABILITY_SHADOW_TAG:
		return target.Ability != ABILITY_SHADOW_TAG
	case ABILITY_ARENA_TRAP:
		return target.Grounded(weather)
	case ABILITY_MAGNET_PULL:
		return target.HasType(TYPE_STEEL)
	}
	return false
}

// weatherSetter is the weather an ability summons on switch-in.
func (a Ability) weatherSetter() (WeatherKind, bool) {
	switch a {
	case ABILITY_DRIZZLE:
		return WEATHER_RAIN, true
	case ABILITY_DROUGHT:
		return WEATHER_SUN, true
	case ABILITY_SAND_STREAM:
		return WEATHER_SANDSTORM, true
	case ABILITY_SNOW_WARNING:
		return WEATHER_HAIL, true
	}
	return WEATHER_NONE, false
}
