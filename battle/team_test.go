package battle

import "testing"

func TestEntryHazards(t *testing.T) {
	weather := Weather{}
	other := NewTeam("peer", []Pokemon{getDummyPokemon(t, "mew", "tackle")})
	cases := []struct {
		species  string
		side     SideConditions
		hp       uint
		status   Status
		toxicOut int
	}{
		{"mew", SideConditions{StealthRock: true}, 341 - 42, STATUS_NONE, 0},
		{"mew", SideConditions{Spikes: 1}, 341 - 42, STATUS_NONE, 0},
		{"mew", SideConditions{Spikes: 3}, 341 - 85, STATUS_NONE, 0},
		// four times weak to rock and out of reach of spikes
		{"charizard", SideConditions{StealthRock: true, Spikes: 3}, 297 - 148, STATUS_NONE, 0},
		{"mew", SideConditions{ToxicSpikes: 1}, 341, STATUS_POISON, 1},
		{"mew", SideConditions{ToxicSpikes: 2}, 341, STATUS_TOXIC, 2},
		// grounded poison types soak up the spikes
		{"bulbasaur", SideConditions{ToxicSpikes: 2}, 231, STATUS_NONE, 0},
	}

	for _, c := range cases {
		team := NewTeam("host", []Pokemon{getDummyPokemon(t, "mew", "tackle"), getDummyPokemon(t, c.species, "tackle")})
		team.Side = c.side
		team.SwitchTo(1, &other, &weather, false)

		p := team.GetActivePokemon()
		if p.Hp.Value != c.hp || p.Status != c.status || team.Side.ToxicSpikes != c.toxicOut {
			t.Fatalf("%s into %+v: hp %d status %s toxic spikes %d", c.species, c.side, p.Hp.Value, p.Status, team.Side.ToxicSpikes)
		}
	}
}

func TestIntimidateOnSwitchIn(t *testing.T) {
	weather := Weather{}
	cases := []struct {
		ability    Ability
		substitute uint
		stage      int
	}{
		{ABILITY_NONE, 0, -1},
		{ABILITY_HYPER_CUTTER, 0, 0},
		{ABILITY_NONE, 50, 0},
	}

	for _, c := range cases {
		intimidator := getDummyPokemon(t, "gyarados", "tackle")
		intimidator.Ability = ABILITY_INTIMIDATE
		team := NewTeam("host", []Pokemon{getDummyPokemon(t, "mew", "tackle"), intimidator})
		other := NewTeam("peer", []Pokemon{getDummyPokemon(t, "mew", "tackle")})
		foe := other.GetActivePokemon()
		foe.Ability = c.ability
		foe.Vol.Substitute = c.substitute

		team.SwitchTo(1, &other, &weather, false)
		if foe.Attack.Stage != c.stage {
			t.Fatalf("intimidate against %s with sub %d: stage %d, want %d", c.ability, c.substitute, foe.Attack.Stage, c.stage)
		}
	}
}
