package battle

import (
	"fmt"
	"strings"
)

type Type int

const (
	TYPE_NORMAL Type = iota
	TYPE_FIGHTING
	TYPE_FLYING
	TYPE_POISON
	TYPE_GROUND
	TYPE_ROCK
	TYPE_BUG
	TYPE_GHOST
	TYPE_STEEL
	TYPE_FIRE
	TYPE_WATER
	TYPE_GRASS
	TYPE_ELECTRIC
	TYPE_PSYCHIC
	TYPE_ICE
	TYPE_DRAGON
	TYPE_DARK
	// Struggle and Curse. Never matches anything and is neutral against everything.
	TYPE_TYPELESS
)

const typeCount = int(TYPE_TYPELESS)

// Effectiveness is stored in halves: 0 immune, 1 resisted, 2 neutral, 4 super effective.
const (
	EFF_IMMUNE  = 0
	EFF_RESIST  = 1
	EFF_NEUTRAL = 2
	EFF_SUPER   = 4
)

type pokemonType struct {
	Name          string
	Effectiveness map[Type]uint
}

var typeData = [...]pokemonType{
	TYPE_NORMAL: {"normal", map[Type]uint{TYPE_ROCK: 1, TYPE_GHOST: 0, TYPE_STEEL: 1}},
	TYPE_FIGHTING: {"fighting", map[Type]uint{
		TYPE_NORMAL: 4, TYPE_FLYING: 1, TYPE_POISON: 1, TYPE_ROCK: 4, TYPE_BUG: 1, TYPE_GHOST: 0,
		TYPE_STEEL: 4, TYPE_PSYCHIC: 1, TYPE_ICE: 4, TYPE_DARK: 4,
	}},
	TYPE_FLYING: {"flying", map[Type]uint{
		TYPE_FIGHTING: 4, TYPE_ROCK: 1, TYPE_BUG: 4, TYPE_STEEL: 1, TYPE_GRASS: 4, TYPE_ELECTRIC: 1,
	}},
	TYPE_POISON: {"poison", map[Type]uint{
		TYPE_POISON: 1, TYPE_GROUND: 1, TYPE_ROCK: 1, TYPE_GHOST: 1, TYPE_STEEL: 0, TYPE_GRASS: 4,
	}},
	TYPE_GROUND: {"ground", map[Type]uint{
		TYPE_FLYING: 0, TYPE_POISON: 4, TYPE_ROCK: 4, TYPE_BUG: 1, TYPE_STEEL: 4, TYPE_FIRE: 4,
		TYPE_GRASS: 1, TYPE_ELECTRIC: 4,
	}},
	TYPE_ROCK: {"rock", map[Type]uint{
		TYPE_FIGHTING: 1, TYPE_FLYING: 4, TYPE_GROUND: 1, TYPE_BUG: 4, TYPE_STEEL: 1, TYPE_FIRE: 4,
		TYPE_ICE: 4,
	}},
	TYPE_BUG: {"bug", map[Type]uint{
		TYPE_FIGHTING: 1, TYPE_FLYING: 1, TYPE_POISON: 1, TYPE_GHOST: 1, TYPE_STEEL: 1, TYPE_FIRE: 1,
		TYPE_GRASS: 4, TYPE_PSYCHIC: 4, TYPE_DARK: 4,
	}},
	TYPE_GHOST: {"ghost", map[Type]uint{
		TYPE_NORMAL: 0, TYPE_GHOST: 4, TYPE_STEEL: 1, TYPE_PSYCHIC: 4, TYPE_DARK: 1,
	}},
	TYPE_STEEL: {"steel", map[Type]uint{
		TYPE_ROCK: 4, TYPE_STEEL: 1, TYPE_FIRE: 1, TYPE_WATER: 1, TYPE_ELECTRIC: 1, TYPE_ICE: 4,
	}},
	TYPE_FIRE: {"fire", map[Type]uint{
		TYPE_ROCK: 1, TYPE_BUG: 4, TYPE_STEEL: 4, TYPE_FIRE: 1, TYPE_WATER: 1, TYPE_GRASS: 4,
		TYPE_ICE: 4, TYPE_DRAGON: 1,
	}},
	TYPE_WATER: {"water", map[Type]uint{
		TYPE_GROUND: 4, TYPE_ROCK: 4, TYPE_FIRE: 4, TYPE_WATER: 1, TYPE_GRASS: 1, TYPE_DRAGON: 1,
	}},
	TYPE_GRASS: {"grass", map[Type]uint{
		TYPE_FLYING: 1, TYPE_POISON: 1, TYPE_GROUND: 4, TYPE_ROCK: 4, TYPE_BUG: 1, TYPE_STEEL: 1,
		TYPE_FIRE: 1, TYPE_WATER: 4, TYPE_GRASS: 1, TYPE_DRAGON: 1,
	}},
	TYPE_ELECTRIC: {"electric", map[Type]uint{
		TYPE_FLYING: 4, TYPE_GROUND: 0, TYPE_WATER: 4, TYPE_GRASS: 1, TYPE_ELECTRIC: 1, TYPE_DRAGON: 1,
	}},
	TYPE_PSYCHIC: {"psychic", map[Type]uint{
		TYPE_FIGHTING: 4, TYPE_POISON: 4, TYPE_STEEL: 1, TYPE_PSYCHIC: 1, TYPE_DARK: 0,
	}},
	TYPE_ICE: {"ice", map[Type]uint{
		TYPE_FLYING: 4, TYPE_GROUND: 4, TYPE_STEEL: 1, TYPE_FIRE: 1, TYPE_WATER: 1, TYPE_GRASS: 4,
		TYPE_ICE: 1, TYPE_DRAGON: 4,
	}},
	TYPE_DRAGON: {"dragon", map[Type]uint{TYPE_STEEL: 1, TYPE_DRAGON: 4}},
	TYPE_DARK: {"dark", map[Type]uint{
		TYPE_FIGHTING: 1, TYPE_GHOST: 4, TYPE_STEEL: 1, TYPE_PSYCHIC: 4, TYPE_DARK: 1,
	}},
	TYPE_TYPELESS: {"typeless", nil},
}

// typeChart is typeData flattened so the damage path never touches a map.
var typeChart = func() (chart [typeCount + 1][typeCount + 1]uint) {
	for attacking, data := range typeData {
		for defending := range chart[attacking] {
			eff, ok := data.Effectiveness[Type(defending)]
			if !ok {
				eff = EFF_NEUTRAL
			}
			chart[attacking][defending] = eff
		}
	}
	return chart
}()

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeData) {
		panic(fmt.Sprintf("unknown type %d", int(t)))
	}
	return typeData[t].Name
}

// AttackEffectiveness returns how effective a move of type t is against a single defending type, in halves.
func (t Type) AttackEffectiveness(defending Type) uint {
	return typeChart[t][defending]
}

func TypeByName(name string) (Type, bool) {
	name = strings.ToLower(name)
	for i, data := range typeData {
		if data.Name == name {
			return Type(i), true
		}
	}
	return 0, false
}
