package battle

import "testing"

func TestStatsNeverBelowOne(t *testing.T) {
	weathers := []WeatherKind{WEATHER_NONE, WEATHER_RAIN, WEATHER_SUN, WEATHER_SANDSTORM, WEATHER_HAIL}

	for _, species := range DefaultDex().AllSpecies() {
		poke := NewPokeBuilder(&species, testRng).SetLevel(1).Build()
		poke.Moves = []Move{NewMove(&struggleData)}
		poke.Status = STATUS_BURN
		for _, s := range []Stat{STAT_ATTACK, STAT_DEFENSE, STAT_SPATTACK, STAT_SPDEF, STAT_SPEED} {
			poke.ChangeStage(s, MIN_STAGE)
		}
		team := NewTeam("floor", []Pokemon{poke})
		p := team.GetActivePokemon()

		for _, w := range weathers {
			for _, crit := range []bool{false, true} {
				if CalcAttack(p, crit, w) < 1 || CalcSpAttack(p, crit, w) < 1 ||
					CalcDefense(p, crit, true) < 1 || CalcSpDefense(p, crit, w) < 1 {
					t.Fatalf("%s has a stat below 1 in %s", species.Name, w)
				}
			}
			p.Status = STATUS_PARA
			if CalcSpeed(&team, w) < 1 {
				t.Fatalf("%s has speed below 1 in %s", species.Name, w)
			}
			p.Status = STATUS_BURN
		}
	}
}

func TestStageZeroIsIdentity(t *testing.T) {
	for value := uint(1); value < 1000; value += 7 {
		if applyStage(value, 0) != value || accuracyStage(value, 0) != value {
			t.Fatalf("stage 0 changed %d", value)
		}
	}
}

func TestStagesAreMonotonic(t *testing.T) {
	previous := uint(0)
	for stage := MIN_STAGE; stage <= MAX_STAGE; stage++ {
		value := applyStage(100, stage)
		if value <= previous {
			t.Fatalf("stage %d gave %d, not above %d", stage, value, previous)
		}
		previous = value
	}
	if applyStage(100, MAX_STAGE) != 400 || applyStage(100, MIN_STAGE) != 25 {
		t.Fatalf("stage extremes should be 4x and 1/4")
	}
}

func TestChangeStageClamps(t *testing.T) {
	poke := getDummyPokemon(t, "mew", "swords-dance")

	if !poke.ChangeStage(STAT_ATTACK, 12) || poke.Stage(STAT_ATTACK) != MAX_STAGE {
		t.Fatalf("attack stage should clamp to %d, got %d", MAX_STAGE, poke.Stage(STAT_ATTACK))
	}
	if poke.ChangeStage(STAT_ATTACK, 2) {
		t.Fatalf("raising a maxed stage should report no change")
	}

	poke.Ability = ABILITY_SIMPLE
	poke.ChangeStage(STAT_SPEED, -1)
	if poke.Stage(STAT_SPEED) != -2 {
		t.Fatalf("simple should double stage changes, got %d", poke.Stage(STAT_SPEED))
	}
}

func TestHpFormula(t *testing.T) {
	poke := getDummyPokemon(t, "mew")
	poke.SetEvs([6]uint{MAX_EV, 0, 0, 0, 0, 0})
	poke.ReCalcStats()
	if poke.Hp.Max != 404 || poke.Hp.Value != 404 {
		t.Fatalf("mew hp should be 404/404, got %d/%d", poke.Hp.Value, poke.Hp.Max)
	}

	shedinja := getDummyPokemon(t, "shedinja")
	if shedinja.Hp.Max != 1 {
		t.Fatalf("shedinja should always have 1 hp, got %d", shedinja.Hp.Max)
	}
}

func TestNatureModifier(t *testing.T) {
	poke := getDummyPokemon(t, "mew")
	neutral := poke.Attack.RawValue

	poke.Nature = NATURE_ADAMANT
	poke.ReCalcStats()
	if poke.Attack.RawValue != neutral*11/10 {
		t.Fatalf("adamant should raise attack by 10%%: %d -> %d", neutral, poke.Attack.RawValue)
	}
	if poke.SpAttack.RawValue != neutral*9/10 {
		t.Fatalf("adamant should lower special attack by 10%%: %d -> %d", neutral, poke.SpAttack.RawValue)
	}
}

func TestBurnAndGuts(t *testing.T) {
	poke := getDummyPokemon(t, "machamp", "cross-chop")
	base := CalcAttack(&poke, false, WEATHER_NONE)

	poke.Status = STATUS_BURN
	if burned := CalcAttack(&poke, false, WEATHER_NONE); burned != base/2 {
		t.Fatalf("burn should halve attack: %d -> %d", base, burned)
	}

	poke.Ability = ABILITY_GUTS
	if guts := CalcAttack(&poke, false, WEATHER_NONE); guts != base*3/2 {
		t.Fatalf("guts should raise attack by half and ignore burn: %d -> %d", base, guts)
	}
}

func TestChanceToHit(t *testing.T) {
	user, target := getSimpleTeams(getDummyPokemon(t, "gengar", "hypnosis", "swords-dance"), getDummyPokemon(t, "mew"))
	weather := Weather{}

	if chance := ChanceToHit(user, target, &weather); chance != 60 {
		t.Fatalf("hypnosis should hit 60%% of the time, got %d", chance)
	}

	user.GetActivePokemon().AccuracyStage = -1
	if chance := ChanceToHit(user, target, &weather); chance != 45 {
		t.Fatalf("-1 accuracy should leave 45%%, got %d", chance)
	}

	user.GetActivePokemon().Ability = ABILITY_NO_GUARD
	if chance := ChanceToHit(user, target, &weather); chance != 100 {
		t.Fatalf("no guard should always hit, got %d", chance)
	}

	user.GetActivePokemon().SelectMove(1)
	user.GetActivePokemon().Ability = ABILITY_NONE
	if chance := ChanceToHit(user, target, &weather); chance != 100 {
		t.Fatalf("self targeting moves never miss, got %d", chance)
	}
}
