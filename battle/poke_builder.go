package battle

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var builderLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "pokemon-builder").Logger()
	return &logger
}

type PokemonBuilder struct {
	poke Pokemon
	rng  *rand.Rand
}

// NewPokeBuilder starts a level 1 Pokemon with a neutral nature, no EVs or IVs and maximum happiness.
func NewPokeBuilder(species *Species, rng *rand.Rand) *PokemonBuilder {
	poke := Pokemon{
		Species:   species,
		Level:     1,
		Nature:    NATURE_HARDY,
		Happiness: 255,
	}

	return &PokemonBuilder{poke, rng}
}

// SetEvs takes EVs in 0 to 63 units, ordered HP, Attack, Defense, SpAttack, SpDef, Speed.
func (pb *PokemonBuilder) SetEvs(evs [6]uint) *PokemonBuilder {
	pb.poke.SetEvs(evs)

	builderLogger().Debug().
		Uint("HP", evs[0]).
		Uint("ATTACK", evs[1]).
		Uint("DEF", evs[2]).
		Uint("SPATTACK", evs[3]).
		Uint("SPDEF", evs[4]).
		Uint("SPEED", evs[5]).Msg("Setting EVs")

	return pb
}

func (pb *PokemonBuilder) SetIvs(ivs [6]uint) *PokemonBuilder {
	pb.poke.SetIvs(ivs)

	builderLogger().Debug().
		Uint("HP", ivs[0]).
		Uint("ATTACK", ivs[1]).
		Uint("DEF", ivs[2]).
		Uint("SPATTACK", ivs[3]).
		Uint("SPDEF", ivs[4]).
		Uint("SPEED", ivs[5]).Msg("Setting IVs")

	return pb
}

func (pb *PokemonBuilder) SetPerfectIvs() *PokemonBuilder {
	builderLogger().Debug().Msg("Setting Perfect IVS")
	return pb.SetIvs([6]uint{MAX_IV, MAX_IV, MAX_IV, MAX_IV, MAX_IV, MAX_IV})
}

func (pb *PokemonBuilder) SetRandomIvs() *PokemonBuilder {
	var ivs [6]uint
	for i := range ivs {
		ivs[i] = pb.rng.UintN(MAX_IV + 1)
	}

	builderLogger().Debug().Msg("Setting Random IVs")
	return pb.SetIvs(ivs)
}

// SetRandomEvs spends the whole EV budget, one unit at a time, on stats that still have room.
func (pb *PokemonBuilder) SetRandomEvs() *PokemonBuilder {
	var evs [6]uint
	for pool := MAX_TOTAL_EV; pool > 0; pool-- {
		open := lo.Filter([]int{0, 1, 2, 3, 4, 5}, func(i int, _ int) bool {
			return evs[i] < MAX_EV
		})
		if len(open) == 0 {
			break
		}
		evs[open[pb.rng.IntN(len(open))]]++
	}

	builderLogger().Debug().Msg("Setting Random EVs")
	pb.SetEvs(evs)

	builderLogger().Debug().Msgf("EV Total: %d", pb.poke.GetCurrentEvTotal())
	return pb
}

func (pb *PokemonBuilder) SetLevel(level uint) *PokemonBuilder {
	pb.poke.Level = level
	return pb
}

func (pb *PokemonBuilder) SetRandomLevel(low int, high int) *PokemonBuilder {
	n := uint(high - low)
	pb.poke.Level = pb.rng.UintN(n) + uint(low)
	return pb
}

func (pb *PokemonBuilder) SetNature(nature Nature) *PokemonBuilder {
	pb.poke.Nature = nature
	return pb
}

func (pb *PokemonBuilder) SetRandomNature() *PokemonBuilder {
	pb.poke.Nature = NATURES[pb.rng.IntN(len(NATURES))]
	return pb
}

func (pb *PokemonBuilder) SetNickname(name string) *PokemonBuilder {
	pb.poke.Nickname = name
	return pb
}

func (pb *PokemonBuilder) SetGender(gender Gender) *PokemonBuilder {
	pb.poke.Gender = gender
	return pb
}

func (pb *PokemonBuilder) SetHappiness(happiness uint) *PokemonBuilder {
	pb.poke.Happiness = happiness
	return pb
}

func (pb *PokemonBuilder) SetAbility(ability Ability) *PokemonBuilder {
	pb.poke.Ability = ability
	return pb
}

func (pb *PokemonBuilder) SetItem(item Item) *PokemonBuilder {
	pb.poke.Item = item
	return pb
}

func (pb *PokemonBuilder) SetMoves(moves ...Move) *PokemonBuilder {
	pb.poke.Moves = moves
	return pb
}

func (pb *PokemonBuilder) SetRandomMoves(possibleMoves []*MoveData) *PokemonBuilder {
	if len(possibleMoves) == 0 {
		builderLogger().Warn().Msg("This Pokemon was given no available moves to randomize with!")
		return pb
	}

	picked := lo.Map(pb.rng.Perm(len(possibleMoves))[:min(4, len(possibleMoves))], func(i int, _ int) *MoveData {
		return possibleMoves[i]
	})
	pb.poke.Moves = lo.Map(picked, func(info *MoveData, _ int) Move {
		return NewMove(info)
	})

	builderLogger().Debug().Strs("Moves", lo.Map(picked, func(info *MoveData, _ int) string {
		return info.Name
	})).Msg("Setting Random Moves")
	return pb
}

func (pb *PokemonBuilder) SetRandomAbility(possibleAbilities []Ability) *PokemonBuilder {
	if len(possibleAbilities) == 0 {
		builderLogger().Warn().Msg("This Pokemon was given no available abilities to randomize with!")
		return pb
	}
	pb.poke.Ability = possibleAbilities[pb.rng.IntN(len(possibleAbilities))]
	return pb
}

func (pb *PokemonBuilder) Build() Pokemon {
	pb.poke.ReCalcStats()
	pb.poke.Hp.Value = pb.poke.Hp.Max
	builderLogger().Debug().Str("species", pb.poke.Species.Name).Msg("Building pokemon")
	return pb.poke
}
