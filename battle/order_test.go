package battle

import (
	"math/rand/v2"
	"testing"
)

func TestSpeedDecidesOrder(t *testing.T) {
	fast, slow := getSimpleTeams(getDummyPokemon(t, "weavile", "crunch"), getDummyPokemon(t, "snorlax", "tackle"))
	weather := Weather{}

	if first, _ := TurnOrder(slow, fast, &weather, FirstTieBreaker); first != fast {
		t.Fatalf("faster pokemon should move first")
	}

	weather.TrickRoom = TRICK_ROOM_TURNS
	if first, _ := TurnOrder(fast, slow, &weather, FirstTieBreaker); first != slow {
		t.Fatalf("trick room should let the slower pokemon move first")
	}
}

func TestPriorityBeatsSpeed(t *testing.T) {
	fast, slow := getSimpleTeams(getDummyPokemon(t, "weavile", "crunch"), getDummyPokemon(t, "snorlax", "quick-attack"))
	weather := Weather{TrickRoom: TRICK_ROOM_TURNS}

	if first, _ := TurnOrder(fast, slow, &weather, FirstTieBreaker); first != slow {
		t.Fatalf("priority should win over speed")
	}

	// trick room does not touch priority brackets
	fast.GetActivePokemon().Moves[0] = NewMove(Must(DefaultDex().Move("ice-shard")))
	weather.TrickRoom = 0
	if first, _ := TurnOrder(fast, slow, &weather, FirstTieBreaker); first != fast {
		t.Fatalf("equal priority should fall back to speed")
	}
}

func TestMovesLastItems(t *testing.T) {
	fast, slow := getSimpleTeams(getDummyPokemon(t, "weavile", "crunch"), getDummyPokemon(t, "snorlax", "tackle"))
	weather := Weather{}
	fast.GetActivePokemon().Item = ITEM_LAGGING_TAIL

	if first, _ := TurnOrder(fast, slow, &weather, FirstTieBreaker); first != slow {
		t.Fatalf("lagging tail should move last")
	}
}

func TestParalysisAndTailwind(t *testing.T) {
	fast, slow := getSimpleTeams(getDummyPokemon(t, "weavile", "crunch"), getDummyPokemon(t, "snorlax", "tackle"))
	weather := Weather{}

	fast.GetActivePokemon().Status = STATUS_PARA
	if first, _ := TurnOrder(fast, slow, &weather, FirstTieBreaker); first != slow {
		t.Fatalf("paralysis should quarter speed")
	}

	fast.GetActivePokemon().Status = STATUS_NONE
	slow.Side.Tailwind = TAILWIND_TURNS
	slowSpeed := CalcSpeed(slow, WEATHER_NONE)
	slow.Side.Tailwind = 0
	if slowSpeed != 2*CalcSpeed(slow, WEATHER_NONE) {
		t.Fatalf("tailwind should double speed")
	}
}

func TestSpeedTieUsesTieBreaker(t *testing.T) {
	a, b := getSimpleTeams(getDummyPokemon(t, "mew", "tackle"), getDummyPokemon(t, "mew", "tackle"))
	weather := Weather{}

	if first, _ := TurnOrder(a, b, &weather, FirstTieBreaker); first != a {
		t.Fatalf("first tie breaker should keep the first team first")
	}
	if first, _ := TurnOrder(a, b, &weather, func(_, _ *Team) bool { return false }); first != b {
		t.Fatalf("tie breaker returning false should put the second team first")
	}

	rng := rand.New(rand.NewPCG(7, 7))
	seen := map[*Team]bool{}
	for range 64 {
		first, _ := TurnOrder(a, b, &weather, RandomTieBreaker(rng))
		seen[first] = true
	}
	if len(seen) != 2 {
		t.Fatalf("random tie breaker should pick both sides over 64 ties")
	}
}
