package battle

import "testing"

func TestHiddenPower(t *testing.T) {
	p := getDummyPokemon(t, "mew", "hidden-power")
	if kind, power := p.HiddenPower(); kind != TYPE_DARK || power != 70 {
		t.Fatalf("all 31 IVs: got %s %d", kind, power)
	}

	p.SetIvs([6]uint{30, 30, 30, 30, 30, 30})
	if kind, power := p.HiddenPower(); kind != TYPE_FIGHTING || power != 70 {
		t.Fatalf("all 30 IVs: got %s %d", kind, power)
	}

	p.SetIvs([6]uint{0, 0, 0, 0, 0, 0})
	if kind, power := p.HiddenPower(); kind != TYPE_FIGHTING || power != 30 {
		t.Fatalf("all 0 IVs: got %s %d", kind, power)
	}
}

func TestHiddenPowerMoveType(t *testing.T) {
	p := getDummyPokemon(t, "mew", "hidden-power")
	if kind := MoveType(&p, p.Moves[0].Info, WEATHER_NONE); kind != TYPE_DARK {
		t.Fatalf("hidden power should follow the IVs, got %s", kind)
	}
}

func TestFlail(t *testing.T) {
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "flail"), getDummyPokemon(t, "mew", "tackle"))
	weather := Weather{}

	cases := []struct {
		hp    uint
		power uint
	}{
		{1, 200},
		{user.GetActivePokemon().Hp.Max, 20},
		{user.GetActivePokemon().Hp.Max / 2, 40},
	}
	for _, c := range cases {
		user.GetActivePokemon().Hp.Value = c.hp
		if power := MovePower(user, target, &weather); power != c.power {
			t.Fatalf("flail at %d hp: expected %d, got %d", c.hp, c.power, power)
		}
	}
}

func TestTechnician(t *testing.T) {
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "tackle", "strength"), getDummyPokemon(t, "mew", "tackle"))
	weather := Weather{}
	user.GetActivePokemon().Ability = ABILITY_TECHNICIAN

	if power := MovePower(user, target, &weather); power != 52 {
		t.Fatalf("technician tackle: expected 52, got %d", power)
	}
	user.GetActivePokemon().SelectMove(1)
	if power := MovePower(user, target, &weather); power != 80 {
		t.Fatalf("technician does not touch strength, got %d", power)
	}
}

func TestWeatherBall(t *testing.T) {
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "weather-ball"), getDummyPokemon(t, "mew", "tackle"))
	weather := Weather{}
	p := user.GetActivePokemon()

	if power := MovePower(user, target, &weather); power != 50 {
		t.Fatalf("weather ball without weather: expected 50, got %d", power)
	}

	weather.Set(WEATHER_RAIN, WEATHER_MOVE_TURNS)
	if kind := MoveType(p, p.Moves[0].Info, weather.Active(p, target.GetActivePokemon())); kind != TYPE_WATER {
		t.Fatalf("weather ball in rain should be water, got %s", kind)
	}
	if power := MovePower(user, target, &weather); power != 100 {
		t.Fatalf("weather ball in rain: expected 100, got %d", power)
	}

	target.GetActivePokemon().Ability = ABILITY_CLOUD_NINE
	if power := MovePower(user, target, &weather); power != 50 {
		t.Fatalf("cloud nine should suppress weather ball, got %d", power)
	}
}
