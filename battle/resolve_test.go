package battle

import "testing"

func TestBoostAtCapIsNoop(t *testing.T) {
	user, target := getSimpleTeams(getDummyPokemon(t, "scizor", "swords-dance"), getDummyPokemon(t, "mew", "tackle"))
	weather := Weather{}
	poke := user.GetActivePokemon()
	poke.Attack.Stage = MAX_STAGE

	if damage := ResolveMove(user, target, &weather); damage != 0 {
		t.Fatalf("swords dance should deal no damage, got %d", damage)
	}
	if poke.Attack.Stage != MAX_STAGE {
		t.Fatalf("attack stage should stay at %d, got %d", MAX_STAGE, poke.Attack.Stage)
	}
	if poke.Moves[0].PP != 29 {
		t.Fatalf("a no-op move still costs pp, got %d", poke.Moves[0].PP)
	}
	if !user.Moved {
		t.Fatalf("resolving a move should mark the side as moved")
	}
}

func TestInflictImmunities(t *testing.T) {
	weather := Weather{}
	cases := []struct {
		move   string
		target string
		status Status
	}{
		{"thunder-wave", "golem", STATUS_NONE},
		{"thunder-wave", "mew", STATUS_PARA},
		{"toxic", "skarmory", STATUS_NONE},
		{"toxic", "mew", STATUS_TOXIC},
		{"will-o-wisp", "charizard", STATUS_NONE},
		{"spore", "mew", STATUS_SLEEP},
	}

	for _, c := range cases {
		user, target := getSimpleTeams(getDummyPokemon(t, "mew", c.move), getDummyPokemon(t, c.target, "tackle"))
		ResolveMove(user, target, &weather)
		if status := target.GetActivePokemon().Status; status != c.status {
			t.Fatalf("%s on %s should leave %s, got %s", c.move, c.target, c.status, status)
		}
	}
}

func TestInflictRespectsExistingStatusAndSafeguard(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "toxic"), getDummyPokemon(t, "mew", "tackle"))

	target.GetActivePokemon().Status = STATUS_BURN
	ResolveMove(user, target, &weather)
	if target.GetActivePokemon().Status != STATUS_BURN {
		t.Fatalf("a second status should not replace the first")
	}

	target.GetActivePokemon().Status = STATUS_NONE
	target.Side.Safeguard = SCREEN_TURNS
	ResolveMove(user, target, &weather)
	if target.GetActivePokemon().Status != STATUS_NONE {
		t.Fatalf("safeguard should block status")
	}
}

func TestSubstitute(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "substitute"), getDummyPokemon(t, "mew", "toxic", "strength"))
	poke := user.GetActivePokemon()

	ResolveMove(user, target, &weather)
	cost := poke.Hp.Max / 4
	if poke.Vol.Substitute != cost || poke.Hp.Value != poke.Hp.Max-cost {
		t.Fatalf("substitute should cost %d hp, got sub %d hp %d", cost, poke.Vol.Substitute, poke.Hp.Value)
	}

	ResolveMove(target, user, &weather)
	if poke.Status != STATUS_NONE {
		t.Fatalf("substitute should block status moves")
	}

	target.GetActivePokemon().SelectMove(1)
	hp := poke.Hp.Value
	damage := ResolveMove(target, user, &weather)
	if poke.Hp.Value != hp {
		t.Fatalf("damage should go to the substitute, hp went %d -> %d", hp, poke.Hp.Value)
	}
	if damage == 0 || poke.Vol.Substitute != cost-damage {
		t.Fatalf("substitute should absorb %d, left with %d", damage, poke.Vol.Substitute)
	}
}

func TestProtect(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "strength"), getDummyPokemon(t, "mew", "protect"))

	ResolveMove(target, user, &weather)
	if damage := ResolveMove(user, target, &weather); damage != 0 {
		t.Fatalf("protect should block the hit, got %d", damage)
	}
	if !target.GetActivePokemon().FullHp() {
		t.Fatalf("protected pokemon took damage")
	}
}

func TestMissEndsResolution(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "tackle"), getDummyPokemon(t, "mew", "tackle"))
	user.Miss = true

	if damage := ResolveMove(user, target, &weather); damage != 0 {
		t.Fatalf("a missed move should deal nothing, got %d", damage)
	}
	if user.GetActivePokemon().Moves[0].PP != 34 {
		t.Fatalf("a missed move still costs pp")
	}
}

func TestPressureCostsTwoPP(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "strength"), getDummyPokemon(t, "mew", "tackle"))
	target.GetActivePokemon().Ability = ABILITY_PRESSURE

	ResolveMove(user, target, &weather)
	if pp := user.GetActivePokemon().Moves[0].PP; pp != 13 {
		t.Fatalf("pressure should cost 2 pp, left with %d", pp)
	}
}

func TestStruggleWithoutPP(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "tackle"), getDummyPokemon(t, "mew", "tackle"))
	poke := user.GetActivePokemon()
	poke.Moves[0].PP = 0

	if damage := ResolveMove(user, target, &weather); damage == 0 {
		t.Fatalf("struggle should deal damage")
	}
	if expected := poke.Hp.Max - poke.Hp.Max/4; poke.Hp.Value != expected {
		t.Fatalf("struggle recoil should leave %d hp, got %d", expected, poke.Hp.Value)
	}
	if poke.Moves[0].PP != 0 {
		t.Fatalf("struggle should not touch the slot pp")
	}
}

func TestConsecutiveUse(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "scizor", "fury-cutter", "swords-dance"), getDummyPokemon(t, "blissey", "tackle"))
	poke := user.GetActivePokemon()

	ResolveMove(user, target, &weather)
	ResolveMove(user, target, &weather)
	if poke.Moves[0].TimesUsed != 2 {
		t.Fatalf("fury cutter should count 2 uses, got %d", poke.Moves[0].TimesUsed)
	}
	if poke.Moves[0].Power != 20 {
		t.Fatalf("second fury cutter should have doubled power 20, got %d", poke.Moves[0].Power)
	}

	poke.SelectMove(1)
	ResolveMove(user, target, &weather)
	if poke.Moves[0].TimesUsed != 0 {
		t.Fatalf("using another move should reset the chain")
	}
}

func TestBideStoresAndReleases(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "blissey", "bide"), getDummyPokemon(t, "mew", "tackle"))
	poke := user.GetActivePokemon()

	ResolveMove(user, target, &weather)
	if poke.Vol.Bide != BIDE_TURNS {
		t.Fatalf("bide should start storing energy")
	}

	taken := ResolveMove(target, user, &weather)
	if damage := ResolveMove(user, target, &weather); damage != 0 {
		t.Fatalf("bide should still be storing, dealt %d", damage)
	}
	if damage := ResolveMove(user, target, &weather); damage != 2*taken {
		t.Fatalf("bide should release %d, got %d", 2*taken, damage)
	}
}

func TestFieldEffects(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "sandstorm", "reflect", "spikes", "trick-room"), getDummyPokemon(t, "mew", "tackle"))
	poke := user.GetActivePokemon()

	ResolveMove(user, target, &weather)
	if weather.Kind != WEATHER_SANDSTORM || weather.Turns != WEATHER_MOVE_TURNS {
		t.Fatalf("sandstorm should last %d turns, got %s/%d", WEATHER_MOVE_TURNS, weather.Kind, weather.Turns)
	}

	weather.Clear()
	poke.Item = ITEM_SMOOTH_ROCK
	poke.SelectMove(0)
	ResolveMove(user, target, &weather)
	if weather.Turns != WEATHER_ROCK_TURNS {
		t.Fatalf("smooth rock should extend sand to %d turns, got %d", WEATHER_ROCK_TURNS, weather.Turns)
	}

	poke.SelectMove(1)
	ResolveMove(user, target, &weather)
	if user.Side.Reflect != SCREEN_TURNS || target.Side.Reflect != 0 {
		t.Fatalf("reflect belongs to the user's side")
	}

	poke.SelectMove(2)
	for range 5 {
		ResolveMove(user, target, &weather)
	}
	if target.Side.Spikes != MAX_SPIKES {
		t.Fatalf("spikes should stack to %d, got %d", MAX_SPIKES, target.Side.Spikes)
	}

	poke.SelectMove(3)
	ResolveMove(user, target, &weather)
	if weather.TrickRoom != TRICK_ROOM_TURNS {
		t.Fatalf("trick room should start")
	}
	ResolveMove(user, target, &weather)
	if weather.TrickRoom != 0 {
		t.Fatalf("a second trick room should end it")
	}
}

func TestSleepCountsDownOnBlocked(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "tackle"), getDummyPokemon(t, "mew", "tackle"))
	poke := user.GetActivePokemon()
	poke.Status = STATUS_SLEEP
	poke.SleepCount = 2

	if !Blocked(user, target, &weather) {
		t.Fatalf("pokemon should stay asleep for the first turn")
	}
	if Blocked(user, target, &weather) {
		t.Fatalf("pokemon should wake up and act on the second turn")
	}
	if poke.Status != STATUS_NONE {
		t.Fatalf("pokemon should be awake, got %s", poke.Status)
	}
}

func TestParalysisAndConfusionUseOutcomeFlags(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "tackle"), getDummyPokemon(t, "mew", "tackle"))
	poke := user.GetActivePokemon()

	poke.Status = STATUS_PARA
	user.FullyParalyzed = true
	if !Blocked(user, target, &weather) {
		t.Fatalf("fully paralyzed pokemon should not act")
	}
	user.FullyParalyzed = false
	if Blocked(user, target, &weather) {
		t.Fatalf("paralyzed pokemon should act when not fully paralyzed")
	}

	poke.Status = STATUS_NONE
	poke.Vol.Confusion = 3
	user.HitSelf = true
	if !Blocked(user, target, &weather) || poke.FullHp() {
		t.Fatalf("confused pokemon should hurt itself")
	}
}

func TestMoveTableRowsHaveHandlers(t *testing.T) {
	for kind := EFFECT_NONE; kind < effectKindCount; kind++ {
		if effectHandlers[kind] == nil {
			t.Fatalf("effect kind %s has no handler", kind)
		}
	}
	for i := range moveTable {
		mustValidateMove(&moveTable[i])
	}
	if len(DefaultDex().MoveNames()) != len(moveTable) {
		t.Fatalf("dex should hold every move row")
	}
}

func TestBadMoveRowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("a status move with power should be rejected")
		}
	}()
	mustValidateMove(&MoveData{Name: "broken", Class: CLASS_STATUS, Power: 40, Effect: selfBoost(up(STAT_ATTACK, 1))})
}

func TestBatonPassKeepsStages(t *testing.T) {
	weather := Weather{}
	passer := getDummyPokemon(t, "mew", "baton-pass")
	passer.Attack.Stage = 2
	passer.Vol.Substitute = 50
	user := NewTeam("host", []Pokemon{passer, getDummyPokemon(t, "scizor", "bullet-punch")})
	target := NewTeam("peer", []Pokemon{getDummyPokemon(t, "mew", "tackle")})

	ResolveMove(&user, &target, &weather)
	if user.ActivePokeIndex != 1 {
		t.Fatalf("baton pass should bring in scizor, active is %d", user.ActivePokeIndex)
	}
	incoming := user.GetActivePokemon()
	if incoming.Attack.Stage != 2 || incoming.Vol.Substitute != 50 {
		t.Fatalf("baton pass should carry +2 attack and the substitute, got %d and %d", incoming.Attack.Stage, incoming.Vol.Substitute)
	}
	if user.Roster[0].Attack.Stage != 0 || user.Roster[0].Vol.Substitute != 0 {
		t.Fatalf("the passer should leave its stages behind")
	}
}

func TestUTurnSwitchesAfterDamage(t *testing.T) {
	weather := Weather{}
	scizor := getDummyPokemon(t, "scizor", "u-turn")
	scizor.Attack.Stage = 2
	user := NewTeam("host", []Pokemon{scizor, getDummyPokemon(t, "mew", "tackle")})
	target := NewTeam("peer", []Pokemon{getDummyPokemon(t, "mew", "tackle")})

	if damage := ResolveMove(&user, &target, &weather); damage == 0 {
		t.Fatalf("u-turn should deal damage before switching")
	}
	if user.ActivePokeIndex != 1 {
		t.Fatalf("u-turn should switch the user out")
	}
	if stage := user.GetActivePokemon().Attack.Stage; stage != 0 {
		t.Fatalf("u-turn should not pass stages, got %d", stage)
	}

	// nothing left to switch to
	alone := NewTeam("host", []Pokemon{getDummyPokemon(t, "scizor", "u-turn")})
	ResolveMove(&alone, &target, &weather)
	if alone.ActivePokeIndex != 0 {
		t.Fatalf("a lone pokemon stays in")
	}
}

func TestRoarForcesTargetOut(t *testing.T) {
	weather := Weather{}
	user := NewTeam("host", []Pokemon{getDummyPokemon(t, "mew", "roar")})
	target := NewTeam("peer", []Pokemon{getDummyPokemon(t, "mew", "tackle"), getDummyPokemon(t, "snorlax", "tackle")})

	target.GetActivePokemon().Vol.Ingrain = true
	ResolveMove(&user, &target, &weather)
	if target.ActivePokeIndex != 0 {
		t.Fatalf("ingrain should hold the target in place")
	}

	target.GetActivePokemon().Vol.Ingrain = false
	ResolveMove(&user, &target, &weather)
	if target.ActivePokeIndex != 1 {
		t.Fatalf("roar should drag out snorlax, active is %d", target.ActivePokeIndex)
	}
}

func TestDigVanishesThenStrikes(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "dig"), getDummyPokemon(t, "mew", "tackle", "earthquake"))
	digger := user.GetActivePokemon()

	if damage := ResolveMove(user, target, &weather); damage != 0 || digger.Vol.Vanish != VANISH_DIG {
		t.Fatalf("the first turn of dig should only vanish, got %d damage", damage)
	}
	if damage := ResolveMove(target, user, &weather); damage != 0 {
		t.Fatalf("tackle should miss a digging target, got %d", damage)
	}

	target.GetActivePokemon().SelectMove(1)
	if damage := ResolveMove(target, user, &weather); damage != 170 {
		t.Fatalf("earthquake should double against a digging target for 170, got %d", damage)
	}

	if damage := ResolveMove(user, target, &weather); damage != 69 {
		t.Fatalf("dig should strike for 69 on its second turn, got %d", damage)
	}
	if digger.Vol.Vanish != VANISH_NONE {
		t.Fatalf("dig should surface after striking")
	}
	if pp := digger.Moves[0].PP; pp != 9 {
		t.Fatalf("dig should cost one pp over both turns, got %d left", pp)
	}
}

func TestFlyDodgesAllButSkyMoves(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "fly"), getDummyPokemon(t, "mew", "tackle", "gust"))

	ResolveMove(user, target, &weather)
	if damage := ResolveMove(target, user, &weather); damage != 0 {
		t.Fatalf("tackle should miss a flying target, got %d", damage)
	}
	target.GetActivePokemon().SelectMove(1)
	if damage := ResolveMove(target, user, &weather); damage != 69 {
		t.Fatalf("gust should double against a flying target for 69, got %d", damage)
	}
}

func TestStageSwaps(t *testing.T) {
	weather := Weather{}
	cases := []struct {
		move      string
		userAtk   int
		userDef   int
		targetAtk int
		targetDef int
	}{
		{"heart-swap", -1, 1, 2, 0},
		{"power-swap", -1, 0, 2, 1},
		{"guard-swap", 2, 1, -1, 0},
	}

	for _, c := range cases {
		user, target := getSimpleTeams(getDummyPokemon(t, "mew", c.move), getDummyPokemon(t, "mew", "tackle"))
		u, d := user.GetActivePokemon(), target.GetActivePokemon()
		u.Attack.Stage = 2
		d.Attack.Stage = -1
		d.Def.Stage = 1

		ResolveMove(user, target, &weather)
		if u.Attack.Stage != c.userAtk || u.Def.Stage != c.userDef || d.Attack.Stage != c.targetAtk || d.Def.Stage != c.targetDef {
			t.Fatalf("%s left user %d/%d and target %d/%d", c.move, u.Attack.Stage, u.Def.Stage, d.Attack.Stage, d.Def.Stage)
		}
	}
}

func TestTrickSwapsItems(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "trick"), getDummyPokemon(t, "mew", "tackle"))
	u, d := user.GetActivePokemon(), target.GetActivePokemon()
	u.Item = ITEM_CHOICE_SCARF
	d.Item = ITEM_LEFTOVERS

	ResolveMove(user, target, &weather)
	if u.Item != ITEM_LEFTOVERS || d.Item != ITEM_CHOICE_SCARF {
		t.Fatalf("trick should swap items, got %s and %s", u.Item, d.Item)
	}

	d.Ability = ABILITY_STICKY_HOLD
	ResolveMove(user, target, &weather)
	if u.Item != ITEM_LEFTOVERS {
		t.Fatalf("sticky hold should keep the item")
	}
}

func TestPainSplitAveragesHp(t *testing.T) {
	weather := Weather{}
	user, target := getSimpleTeams(getDummyPokemon(t, "mew", "pain-split"), getDummyPokemon(t, "mew", "tackle"))
	u, d := user.GetActivePokemon(), target.GetActivePokemon()
	u.Hp.Value = 41

	ResolveMove(user, target, &weather)
	if u.Hp.Value != 191 || d.Hp.Value != 191 {
		t.Fatalf("pain split should leave both at 191, got %d and %d", u.Hp.Value, d.Hp.Value)
	}
}
