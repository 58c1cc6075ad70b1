package battle

import (
	"fmt"
	"strings"
)

const (
	MAX_IV    = 31
	MAX_LEVEL = 100
	// Effort values are stored in units of four effort points.
	MAX_EV       = 63
	MAX_TOTAL_EV = 127
	MAX_STAGE    = 6
	MIN_STAGE    = -6
	MIN_ROLL     = 85
	MAX_ROLL     = 100
	TOXIC_CAP    = 15
	PP_UNLIMITED = -1
)

type Stat int

const (
	STAT_HP Stat = iota
	STAT_ATTACK
	STAT_DEFENSE
	STAT_SPATTACK
	STAT_SPDEF
	STAT_SPEED
	STAT_ACCURACY
	STAT_EVASION
)

var statNames = [...]string{
	STAT_HP:       "hp",
	STAT_ATTACK:   "attack",
	STAT_DEFENSE:  "defense",
	STAT_SPATTACK: "special-attack",
	STAT_SPDEF:    "special-defense",
	STAT_SPEED:    "speed",
	STAT_ACCURACY: "accuracy",
	STAT_EVASION:  "evasion",
}

func (s Stat) String() string {
	if s < 0 || int(s) >= len(statNames) {
		panic(fmt.Sprintf("unknown stat %d", int(s)))
	}
	return statNames[s]
}

// StatByName accepts the names returned by Stat.String.
func StatByName(name string) (Stat, bool) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return 0, false
}

type Status int

const (
	STATUS_NONE Status = iota
	STATUS_BURN
	STATUS_FREEZE
	STATUS_PARA
	STATUS_POISON
	STATUS_TOXIC
	// Sleep caused by Rest. Counts down like sleep but was self-inflicted.
	STATUS_REST
	STATUS_SLEEP
)

var statusNames = [...]string{
	STATUS_NONE:   "none",
	STATUS_BURN:   "burn",
	STATUS_FREEZE: "freeze",
	STATUS_PARA:   "paralysis",
	STATUS_POISON: "poison",
	STATUS_TOXIC:  "toxic",
	STATUS_REST:   "rest",
	STATUS_SLEEP:  "sleep",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		panic(fmt.Sprintf("unknown status %d", int(s)))
	}
	return statusNames[s]
}

func (s Status) Asleep() bool {
	return s == STATUS_SLEEP || s == STATUS_REST
}

func (s Status) Poisoned() bool {
	return s == STATUS_POISON || s == STATUS_TOXIC
}

func StatusByName(name string) (Status, bool) {
	for i, n := range statusNames {
		if n == name {
			return Status(i), true
		}
	}
	return 0, false
}

type Gender int

const (
	GENDER_GENDERLESS Gender = iota
	GENDER_MALE
	GENDER_FEMALE
)

func GenderByName(name string) (Gender, bool) {
	switch strings.ToLower(name) {
	case "", "genderless", "none":
		return GENDER_GENDERLESS, true
	case "male", "m":
		return GENDER_MALE, true
	case "female", "f":
		return GENDER_FEMALE, true
	}
	return 0, false
}

// Rivalry returns the power multiplier, as num/den, Rivalry applies when a Pokemon of gender g
// attacks one of gender other. Genderless on either side is neutral.
func (g Gender) Rivalry(other Gender) (num uint, den uint) {
	if g == GENDER_GENDERLESS || other == GENDER_GENDERLESS {
		return 1, 1
	}
	if g == other {
		return 5, 4
	}
	return 3, 4
}

// Nature raises Up by 10% and lowers Down by 10%. Neutral natures have Up == Down.
type Nature struct {
	Name string
	Up   Stat
	Down Stat
}

func (n Nature) Neutral() bool {
	return n.Up == n.Down
}

// Modify applies the nature to a stat value with integer rounding.
func (n Nature) Modify(stat Stat, value uint) uint {
	if n.Neutral() {
		return value
	}
	switch stat {
	case n.Up:
		return value * 11 / 10
	case n.Down:
		return value * 9 / 10
	}
	return value
}

var (
	NATURE_HARDY   = Nature{"hardy", STAT_ATTACK, STAT_ATTACK}
	NATURE_LONELY  = Nature{"lonely", STAT_ATTACK, STAT_DEFENSE}
	NATURE_BRAVE   = Nature{"brave", STAT_ATTACK, STAT_SPEED}
	NATURE_ADAMANT = Nature{"adamant", STAT_ATTACK, STAT_SPATTACK}
	NATURE_NAUGHTY = Nature{"naughty", STAT_ATTACK, STAT_SPDEF}
	NATURE_BOLD    = Nature{"bold", STAT_DEFENSE, STAT_ATTACK}
	NATURE_DOCILE  = Nature{"docile", STAT_DEFENSE, STAT_DEFENSE}
	NATURE_RELAXED = Nature{"relaxed", STAT_DEFENSE, STAT_SPEED}
	NATURE_IMPISH  = Nature{"impish", STAT_DEFENSE, STAT_SPATTACK}
	NATURE_LAX     = Nature{"lax", STAT_DEFENSE, STAT_SPDEF}
	NATURE_TIMID   = Nature{"timid", STAT_SPEED, STAT_ATTACK}
	NATURE_HASTY   = Nature{"hasty", STAT_SPEED, STAT_DEFENSE}
	NATURE_SERIOUS = Nature{"serious", STAT_SPEED, STAT_SPEED}
	NATURE_JOLLY   = Nature{"jolly", STAT_SPEED, STAT_SPATTACK}
	NATURE_NAIVE   = Nature{"naive", STAT_SPEED, STAT_SPDEF}
	NATURE_MODEST  = Nature{"modest", STAT_SPATTACK, STAT_ATTACK}
	NATURE_MILD    = Nature{"mild", STAT_SPATTACK, STAT_DEFENSE}
	NATURE_QUIET   = Nature{"quiet", STAT_SPATTACK, STAT_SPEED}
	NATURE_BASHFUL = Nature{"bashful", STAT_SPATTACK, STAT_SPATTACK}
	NATURE_RASH    = Nature{"rash", STAT_SPATTACK, STAT_SPDEF}
	NATURE_CALM    = Nature{"calm", STAT_SPDEF, STAT_ATTACK}
	NATURE_GENTLE  = Nature{"gentle", STAT_SPDEF, STAT_DEFENSE}
	NATURE_SASSY   = Nature{"sassy", STAT_SPDEF, STAT_SPEED}
	NATURE_CAREFUL = Nature{"careful", STAT_SPDEF, STAT_SPATTACK}
	NATURE_QUIRKY  = Nature{"quirky", STAT_SPDEF, STAT_SPDEF}
)

var NATURES = [25]Nature{
	NATURE_HARDY, NATURE_LONELY, NATURE_BRAVE, NATURE_ADAMANT, NATURE_NAUGHTY,
	NATURE_BOLD, NATURE_DOCILE, NATURE_RELAXED, NATURE_IMPISH, NATURE_LAX,
	NATURE_TIMID, NATURE_HASTY, NATURE_SERIOUS, NATURE_JOLLY, NATURE_NAIVE,
	NATURE_MODEST, NATURE_MILD, NATURE_QUIET, NATURE_BASHFUL, NATURE_RASH,
	NATURE_CALM, NATURE_GENTLE, NATURE_SASSY, NATURE_CAREFUL, NATURE_QUIRKY,
}

func NatureByName(name string) (Nature, bool) {
	name = strings.ToLower(name)
	for _, n := range NATURES {
		if n.Name == name {
			return n, true
		}
	}
	return Nature{}, false
}

// applyStage scales value by the regular stat stage multiplier.
func applyStage(value uint, stage int) uint {
	if stage >= 0 {
		return value * uint(2+stage) / 2
	}
	return value * 2 / uint(2-stage)
}

// accuracyStage is the multiplier used for accuracy and evasion, in thirds.
func accuracyStage(value uint, stage int) uint {
	if stage >= 0 {
		return value * uint(3+stage) / 3
	}
	return value * 3 / uint(3-stage)
}

func clampStage(stage int) int {
	return max(MIN_STAGE, min(MAX_STAGE, stage))
}
