package battle

import "testing"

func TestPlayTurnGameOver(t *testing.T) {
	host, peer := getSimpleTeams(getDummyPokemon(t, "mew", "strength"), getDummyPokemon(t, "mew", "strength"))
	peer.GetActivePokemon().Hp.Value = 1
	weather := Weather{}

	result := PlayTurn(host, peer, &weather, FirstTieBreaker, Rules{})
	if result.Kind != RESULT_GAMEOVER {
		t.Fatalf("expected game over, got %d", result.Kind)
	}
	if result.Loser != peer {
		t.Fatalf("peer should have lost")
	}
	if len(result.Actions) != 2 || !result.Actions[1].Skipped {
		t.Fatalf("fainted second mover should be skipped: %+v", result.Actions)
	}
	if result.Actions[0].Damage != 1 {
		t.Fatalf("damage is capped at remaining hp, got %d", result.Actions[0].Damage)
	}
}

func TestPlayTurnForcesSwitch(t *testing.T) {
	host := NewTeam("host", []Pokemon{getDummyPokemon(t, "mew", "strength")})
	peer := NewTeam("peer", []Pokemon{
		getDummyPokemon(t, "mew", "strength"),
		getDummyPokemon(t, "snorlax", "tackle"),
	})
	peer.GetActivePokemon().Hp.Value = 1
	weather := Weather{}

	result := PlayTurn(&host, &peer, &weather, FirstTieBreaker, Rules{})
	if result.Kind != RESULT_FORCESWITCH {
		t.Fatalf("expected force switch, got %d", result.Kind)
	}
	if len(result.Fainted) != 1 || result.Fainted[0] != &peer {
		t.Fatalf("peer should need a replacement")
	}

	if !peer.ReplaceFainted(&host, &weather) {
		t.Fatalf("replacement should succeed")
	}
	if peer.GetActivePokemon().Species.Name != "snorlax" {
		t.Fatalf("expected snorlax to come in, got %s", peer.GetActivePokemon().Name())
	}
	if peer.ReplaceFainted(&host, &weather) {
		t.Fatalf("a healthy active pokemon is never replaced")
	}
}

func TestPlayTurnBothMove(t *testing.T) {
	host, peer := getSimpleTeams(getDummyPokemon(t, "weavile", "crunch"), getDummyPokemon(t, "snorlax", "tackle"))
	weather := Weather{}

	result := PlayTurn(host, peer, &weather, FirstTieBreaker, Rules{})
	if result.Kind != RESULT_RESOLVED {
		t.Fatalf("expected a resolved turn, got %d", result.Kind)
	}
	if result.Actions[0].Team != "host" || result.Actions[1].Team != "peer" {
		t.Fatalf("weavile should move before snorlax: %+v", result.Actions)
	}
	for _, action := range result.Actions {
		if action.Damage == 0 {
			t.Fatalf("%s should have dealt damage", action.Pokemon)
		}
	}
	if host.Moved || peer.Moved {
		t.Fatalf("turn flags should be reset after the end of turn")
	}
}
