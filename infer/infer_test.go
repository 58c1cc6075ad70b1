package infer

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/nathanieltooley/porygon/battle"
)

var testRng = rand.New(rand.NewPCG(1, 2))

func getPokemon(t *testing.T, species string, moves ...string) battle.Pokemon {
	t.Helper()
	dex := battle.DefaultDex()

	s, err := dex.Species(species)
	if err != nil {
		t.Fatalf("species %s: %s", species, err)
	}
	slots := make([]battle.Move, 0, len(moves))
	for _, name := range moves {
		move, err := dex.NewMove(name)
		if err != nil {
			t.Fatalf("move %s: %s", name, err)
		}
		slots = append(slots, move)
	}
	return battle.NewPokeBuilder(s, testRng).SetLevel(100).SetPerfectIvs().SetMoves(slots...).Build()
}

// getView is a Mew attacking a 252 HP / 252 Def Bold Mew.
func getView(t *testing.T, moves ...string) View {
	t.Helper()
	defender := getPokemon(t, "mew", "tackle")
	defender.Nature = battle.NATURE_BOLD
	defender.SetEvs([6]uint{battle.MAX_EV, 0, battle.MAX_EV, 0, 0, 0})
	defender.ReCalcStats()

	attacker := battle.NewTeam("peer", []battle.Pokemon{getPokemon(t, "mew", moves...)})
	host := battle.NewTeam("host", []battle.Pokemon{defender})
	return View{Attacker: &attacker, Defender: &host, Weather: &battle.Weather{}}
}

func TestEvValues(t *testing.T) {
	values := evValues(16)
	if !slices.Equal(values, []uint{0, 16, 32, 48, 63}) {
		t.Fatalf("unexpected values %v", values)
	}
	if len(evValues(0)) != battle.MAX_EV+1 {
		t.Fatalf("a zero step should count by one")
	}
}

func TestGenerateRespectsEvTotal(t *testing.T) {
	candidates := Generate([]battle.Item{battle.ITEM_NONE}, []battle.Nature{battle.NATURE_HARDY}, 8)
	if len(candidates) == 0 {
		t.Fatalf("no candidates generated")
	}
	for _, c := range candidates {
		total := uint(0)
		for _, ev := range c.Evs {
			if ev > battle.MAX_EV {
				t.Fatalf("ev %d above cap", ev)
			}
			total += ev
		}
		if total > battle.MAX_TOTAL_EV {
			t.Fatalf("ev total %d above cap", total)
		}
		if c.Ivs != perfectIvs {
			t.Fatalf("generated candidates carry perfect ivs")
		}
	}
}

func TestFilterFindsTheAttacker(t *testing.T) {
	view := getView(t, "strength")
	candidates := Generate(
		[]battle.Item{battle.ITEM_NONE},
		[]battle.Nature{battle.NATURE_HARDY, battle.NATURE_ADAMANT, battle.NATURE_MODEST},
		battle.MAX_EV,
	)

	// 252 Atk Adamant Mew deals 69 to the Bold Mew at the top roll
	survivors := Filter(view, 69, candidates)
	if len(survivors) != 3 {
		t.Fatalf("expected 3 survivors, got %d: %+v", len(survivors), survivors)
	}
	for _, c := range survivors {
		if c.Nature != battle.NATURE_ADAMANT || c.Evs[1] != battle.MAX_EV {
			t.Fatalf("unexpected survivor %+v", c)
		}
	}
}

func TestChoiceBandExplainsTheSameHit(t *testing.T) {
	view := getView(t, "strength")
	candidates := Generate(
		[]battle.Item{battle.ITEM_CHOICE_BAND},
		[]battle.Nature{battle.NATURE_HARDY, battle.NATURE_ADAMANT},
		battle.MAX_EV,
	)

	survivors := Filter(view, 69, candidates)
	if len(survivors) != 8 {
		t.Fatalf("expected 8 survivors, got %d", len(survivors))
	}
	for _, c := range survivors {
		if c.Evs[1] != 0 {
			t.Fatalf("a banded 252 Atk Mew hits too hard: %+v", c)
		}
	}
}

func TestFilterIsIdempotentAndASubset(t *testing.T) {
	view := getView(t, "strength")
	candidates := Generate([]battle.Item{battle.ITEM_NONE, battle.ITEM_MUSCLE_BAND}, battle.NATURES[:], 8)
	before := slices.Clone(candidates)

	once := Filter(view, 60, candidates)
	twice := Filter(view, 60, once)

	if !slices.Equal(once, twice) {
		t.Fatalf("filtering twice changed the result: %d vs %d", len(once), len(twice))
	}
	if !slices.Equal(candidates, before) {
		t.Fatalf("filter mutated its input")
	}
	for _, c := range once {
		if !slices.Contains(candidates, c) {
			t.Fatalf("survivor %+v was not a candidate", c)
		}
	}
	if len(once) == 0 || len(once) == len(candidates) {
		t.Fatalf("expected a proper subset, got %d of %d", len(once), len(candidates))
	}
}

func TestFilterLeavesTeamsAlone(t *testing.T) {
	view := getView(t, "tackle", "strength")
	attacker := *view.Attacker.GetActivePokemon()
	defenderHp := view.Defender.GetActivePokemon().Hp.Value

	FilterAll(view, []Observation{{Move: 1, Damage: 69, DefenderHP: 100}}, Generate([]battle.Item{battle.ITEM_NONE}, battle.NATURES[:], 21))

	p := view.Attacker.GetActivePokemon()
	if p.SelectedMove != attacker.SelectedMove || p.Nature != attacker.Nature || p.Evs() != attacker.Evs() {
		t.Fatalf("attacker was modified")
	}
	if view.Defender.GetActivePokemon().Hp.Value != defenderHp {
		t.Fatalf("defender hp was modified")
	}
}

func TestFilterRespectsHpCap(t *testing.T) {
	view := getView(t, "strength")
	candidates := Generate([]battle.Item{battle.ITEM_NONE}, []battle.Nature{battle.NATURE_ADAMANT}, battle.MAX_EV)

	survivors := FilterAll(view, []Observation{{Damage: 10, DefenderHP: 10}}, candidates)
	if len(survivors) != len(candidates) {
		t.Fatalf("every candidate can deal the capped damage, got %d of %d", len(survivors), len(candidates))
	}
}

func TestFilterAllNarrows(t *testing.T) {
	view := getView(t, "tackle", "strength")
	candidates := Generate(
		[]battle.Item{battle.ITEM_NONE, battle.ITEM_CHOICE_BAND},
		[]battle.Nature{battle.NATURE_HARDY, battle.NATURE_ADAMANT},
		battle.MAX_EV,
	)

	first := FilterAll(view, []Observation{{Move: 1, Damage: 69}}, candidates)
	none := FilterAll(view, []Observation{{Move: 1, Damage: 69}, {Move: 1, Damage: 500}}, candidates)
	if len(first) == 0 {
		t.Fatalf("first observation should leave survivors")
	}
	if len(none) != 0 {
		t.Fatalf("an impossible observation should leave nothing, got %d", len(none))
	}
}

func TestHiddenPowerPartitionsByParity(t *testing.T) {
	view := getView(t, "hidden-power")
	spreads := HiddenPowerSpreads()
	if len(spreads) != 64 {
		t.Fatalf("expected 64 spreads, got %d", len(spreads))
	}
	candidates := WithHiddenPowerIVs(Generate([]battle.Item{battle.ITEM_NONE}, []battle.Nature{battle.NATURE_HARDY}, battle.MAX_EV), spreads)

	e := newEvaluator(view, 0)
	byParity := map[[6]uint]battle.Type{}
	types := map[battle.Type]bool{}
	for _, c := range candidates {
		profile := e.profile(c)
		var parity [6]uint
		for i, iv := range c.Ivs {
			parity[i] = iv & 1
		}
		if seen, ok := byParity[parity]; ok && seen != profile.Type {
			t.Fatalf("candidates sharing parity bits disagree on type: %s vs %s", seen, profile.Type)
		}
		byParity[parity] = profile.Type
		types[profile.Type] = true

		power := battle.MovePower(&e.attacker, &e.defender, view.Weather)
		if power != 70 {
			t.Fatalf("30 and 31 ivs always give 70 power, got %d", power)
		}
	}
	if len(types) != 16 {
		t.Fatalf("expected every hidden power type, got %d", len(types))
	}
}

func TestHiddenPowerObservationRejectsWrongTypes(t *testing.T) {
	view := getView(t, "hidden-power")
	observed := battle.CalculateDamage(view.Attacker, view.Defender, view.Weather, battle.MAX_ROLL)

	candidates := WithHiddenPowerIVs([]Candidate{{Item: battle.ITEM_NONE, Nature: battle.NATURE_HARDY, Ivs: perfectIvs}}, HiddenPowerSpreads())
	survivors := Filter(view, observed, candidates)

	if !slices.ContainsFunc(survivors, func(c Candidate) bool { return c.Ivs == perfectIvs }) {
		t.Fatalf("the true spread should survive")
	}
	for _, c := range survivors {
		p := *view.Attacker.GetActivePokemon()
		p.SetIvs(c.Ivs)
		if kind, _ := p.HiddenPower(); kind == battle.TYPE_FIGHTING {
			t.Fatalf("fighting is resisted by mew and cannot match a dark hit")
		}
	}
}

func TestGenerateStatsPlacesEvs(t *testing.T) {
	candidates := GenerateStats([]battle.Item{battle.ITEM_NONE}, []battle.Nature{battle.NATURE_MODEST}, battle.MAX_EV, SPECIAL_STATS)
	if len(candidates) != 7 {
		t.Fatalf("expected 7 spreads of 0 and 63 within the cap, got %d", len(candidates))
	}
	for _, c := range candidates {
		if c.Evs[battle.STAT_ATTACK] != 0 || c.Evs[battle.STAT_DEFENSE] != 0 || c.Evs[battle.STAT_SPDEF] != 0 {
			t.Fatalf("only hp, special attack and speed should vary: %v", c.Evs)
		}
	}
}

func TestPowerTrickSeparatesDefenseNatures(t *testing.T) {
	view := getView(t, "strength")
	view.Attacker.GetActivePokemon().Vol.PowerTrick = true

	hardy := Candidate{Item: battle.ITEM_NONE, Nature: battle.NATURE_HARDY, Ivs: perfectIvs}
	lax := Candidate{Item: battle.ITEM_NONE, Nature: battle.NATURE_LAX, Ivs: perfectIvs}

	// 236 Defense tops out at 50, Lax's 259 reaches 55
	survivors := Filter(view, 55, []Candidate{hardy, lax})
	if len(survivors) != 1 || survivors[0].Nature != battle.NATURE_LAX {
		t.Fatalf("expected only lax to survive, got %v", survivors)
	}
	survivors = Filter(view, 50, []Candidate{lax, hardy})
	if len(survivors) != 2 {
		t.Fatalf("both natures can deal 50, got %v", survivors)
	}
}
