package battle

import "testing"

func TestDamageOracle(t *testing.T) {
	attacker, defender := getOracleTeams(t, "strength")
	weather := Weather{}

	if atk := attacker.GetActivePokemon().Attack.RawValue; atk != 328 {
		t.Fatalf("attack should be 328, got %d", atk)
	}
	if def := defender.GetActivePokemon().Def.RawValue; def != 328 {
		t.Fatalf("defense should be 328, got %d", def)
	}

	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage != 69 {
		t.Fatalf("damage at max roll should be 69, got %d", damage)
	}
	if damage := CalculateDamage(attacker, defender, &weather, MIN_ROLL); damage != 58 {
		t.Fatalf("damage at min roll should be 58, got %d", damage)
	}
}

func TestPhasesMatchCalculateDamage(t *testing.T) {
	attacker, defender := getOracleTeams(t, "strength")
	weather := Weather{}

	power := MovePower(attacker, defender, &weather)
	if power != 80 {
		t.Fatalf("strength power should be 80, got %d", power)
	}
	profile := KnownDamage(attacker, defender, &weather, power)
	for roll := uint(MIN_ROLL); roll <= MAX_ROLL; roll++ {
		if RandomDamage(profile, roll) != CalculateDamage(attacker, defender, &weather, roll) {
			t.Fatalf("phases disagree with CalculateDamage at roll %d", roll)
		}
	}

	low, high := profile.Range()
	if low != 58 || high != 69 {
		t.Fatalf("range should be 58-69, got %d-%d", low, high)
	}
}

func TestReflectAndCrit(t *testing.T) {
	attacker, defender := getOracleTeams(t, "strength")
	weather := Weather{}
	defender.Side.Reflect = SCREEN_TURNS

	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage != 35 {
		t.Fatalf("reflect damage should be 35, got %d", damage)
	}

	attacker.Crit = true
	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage != 138 {
		t.Fatalf("crit should ignore reflect and double for 138, got %d", damage)
	}

	defender.GetActivePokemon().Ability = ABILITY_SHELL_ARMOR
	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage != 35 {
		t.Fatalf("shell armor should block the crit, got %d", damage)
	}
}

func TestDamageNeverExceedsHp(t *testing.T) {
	attacker, defender := getOracleTeams(t, "strength")
	weather := Weather{}
	defender.GetActivePokemon().Hp.Value = 10

	for roll := uint(MIN_ROLL); roll <= MAX_ROLL; roll++ {
		if damage := CalculateDamage(attacker, defender, &weather, roll); damage > 10 {
			t.Fatalf("damage %d is above the defender's hp", damage)
		}
	}
}

func TestEndureAndFalseSwipeLeaveOneHp(t *testing.T) {
	weather := Weather{}

	attacker, defender := getOracleTeams(t, "strength")
	defender.GetActivePokemon().Hp.Value = 10
	defender.GetActivePokemon().Vol.Endure = true
	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage != 9 {
		t.Fatalf("endure should cap damage at 9, got %d", damage)
	}

	attacker, defender = getOracleTeams(t, "false-swipe")
	defender.GetActivePokemon().Hp.Value = 1
	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage != 0 {
		t.Fatalf("false swipe should not touch a pokemon at 1 hp, got %d", damage)
	}
	defender.GetActivePokemon().Hp.Value = 2
	if damage := CalculateDamage(attacker, defender, &weather, MIN_ROLL); damage != 1 {
		t.Fatalf("false swipe should deal 1 to a pokemon at 2 hp, got %d", damage)
	}
}

func TestTypeImmunity(t *testing.T) {
	attacker, _ := getOracleTeams(t, "strength", "earthquake")
	_, defender := getSimpleTeams(getDummyPokemon(t, "mew"), getDummyPokemon(t, "gengar", "tackle"))
	weather := Weather{}

	profile := KnownDamage(attacker, defender, &weather, MovePower(attacker, defender, &weather))
	if !profile.Immune || RandomDamage(profile, MAX_ROLL) != 0 {
		t.Fatalf("normal move should not affect ghost: %+v", profile)
	}

	attacker.GetActivePokemon().Ability = ABILITY_SCRAPPY
	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage == 0 {
		t.Fatalf("scrappy should let normal moves hit ghost")
	}

	attacker.GetActivePokemon().SelectMove(1)
	defender.GetActivePokemon().Ability = ABILITY_LEVITATE
	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage != 0 {
		t.Fatalf("levitate should dodge earthquake, got %d", damage)
	}
	weather.Gravity = GRAVITY_TURNS
	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage == 0 {
		t.Fatalf("gravity should ground a levitating pokemon")
	}
}

func TestStabAndEffectiveness(t *testing.T) {
	attacker, defender := getSimpleTeams(
		getDummyPokemon(t, "charizard", "flamethrower"),
		getDummyPokemon(t, "scizor", "tackle"),
	)
	weather := Weather{}

	profile := KnownDamage(attacker, defender, &weather, MovePower(attacker, defender, &weather))
	if profile.Stab != 3 {
		t.Fatalf("charizard flamethrower should get stab, got %d", profile.Stab)
	}
	if profile.Effectiveness() != 16 {
		t.Fatalf("fire against bug/steel should be 4x (16 quarters), got %d", profile.Effectiveness())
	}

	defender.GetActivePokemon().Ability = ABILITY_FILTER
	filtered := KnownDamage(attacker, defender, &weather, MovePower(attacker, defender, &weather))
	if filtered.Filter != 3 {
		t.Fatalf("filter should reduce super effective hits, got %d", filtered.Filter)
	}
	if RandomDamage(filtered, MAX_ROLL) >= RandomDamage(profile, MAX_ROLL) {
		t.Fatalf("filter should lower damage")
	}
}

func TestFixedDamage(t *testing.T) {
	attacker, defender := getOracleTeams(t, "seismic-toss", "super-fang", "horn-drill")
	weather := Weather{}

	if damage := CalculateDamage(attacker, defender, &weather, MIN_ROLL); damage != 100 {
		t.Fatalf("seismic toss should deal the user's level, got %d", damage)
	}

	attacker.GetActivePokemon().SelectMove(1)
	defender.GetActivePokemon().Hp.Value = 101
	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage != 50 {
		t.Fatalf("super fang should halve hp, got %d", damage)
	}

	attacker.GetActivePokemon().SelectMove(2)
	defender.GetActivePokemon().Ability = ABILITY_STURDY
	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage != 0 {
		t.Fatalf("sturdy should block a one hit KO, got %d", damage)
	}
}

func TestRandomDamageRejectsBadRoll(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("a roll below %d should panic", MIN_ROLL)
		}
	}()
	RandomDamage(DamageProfile{Amount: 10}, MIN_ROLL-1)
}

func TestRecoil(t *testing.T) {
	poke := getDummyPokemon(t, "staraptor", "brave-bird")
	full := poke.Hp.Value

	Recoil(&poke, 90, 3)
	if poke.Hp.Value != full-30 {
		t.Fatalf("recoil should be a third of 90, hp went %d -> %d", full, poke.Hp.Value)
	}

	poke.Ability = ABILITY_ROCK_HEAD
	before := poke.Hp.Value
	Recoil(&poke, 90, 3)
	if poke.Hp.Value != before {
		t.Fatalf("rock head should void recoil")
	}

	poke.Ability = ABILITY_NONE
	poke.Hp.Value = 5
	Recoil(&poke, 300, 3)
	if poke.Hp.Value != 0 {
		t.Fatalf("recoil should stop at 0 hp, got %d", poke.Hp.Value)
	}
}

func TestMeFirstBoostsBeforeCrit(t *testing.T) {
	attacker, defender := getOracleTeams(t, "strength")
	weather := Weather{}
	attacker.GetActivePokemon().Vol.MeFirst = true

	// 67 * 1.5 = 100, then +2
	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage != 102 {
		t.Fatalf("me first damage should be 102, got %d", damage)
	}
	attacker.Crit = true
	if damage := CalculateDamage(attacker, defender, &weather, MAX_ROLL); damage != 204 {
		t.Fatalf("me first crit should be 204, got %d", damage)
	}
}
