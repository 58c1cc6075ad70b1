package battle

import (
	"math/rand/v2"
	"testing"
)

var testRng = rand.New(rand.NewPCG(1, 2))

// getDummyPokemon builds a level 100 Pokemon with perfect IVs, no EVs and a neutral nature.
func getDummyPokemon(t *testing.T, species string, moves ...string) Pokemon {
	t.Helper()
	dex := DefaultDex()

	s, err := dex.Species(species)
	if err != nil {
		t.Fatalf("species %s: %s", species, err)
	}

	slots := make([]Move, 0, len(moves))
	for _, name := range moves {
		move, err := dex.NewMove(name)
		if err != nil {
			t.Fatalf("move %s: %s", name, err)
		}
		slots = append(slots, move)
	}

	return NewPokeBuilder(s, testRng).SetLevel(100).SetPerfectIvs().SetMoves(slots...).Build()
}

func getSimpleTeams(a Pokemon, b Pokemon) (*Team, *Team) {
	teamA := NewTeam("host", []Pokemon{a})
	teamB := NewTeam("peer", []Pokemon{b})
	return &teamA, &teamB
}

// getOracleTeams is a 252 EV Adamant Mew against a 252 EV Bold Mew, both at level 100.
func getOracleTeams(t *testing.T, moves ...string) (*Team, *Team) {
	t.Helper()
	attacker := getDummyPokemon(t, "mew", moves...)
	attacker.Nature = NATURE_ADAMANT
	attacker.SetEvs([6]uint{0, MAX_EV, 0, 0, 0, 0})
	attacker.ReCalcStats()

	defender := getDummyPokemon(t, "mew", "tackle")
	defender.Nature = NATURE_BOLD
	defender.SetEvs([6]uint{MAX_EV, 0, MAX_EV, 0, 0, 0})
	defender.ReCalcStats()

	return getSimpleTeams(attacker, defender)
}
