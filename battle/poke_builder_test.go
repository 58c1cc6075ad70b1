package battle

import (
	"math/rand/v2"
	"testing"
)

func TestRandomEvsStayInBounds(t *testing.T) {
	species := Must(DefaultDex().Species("mew"))
	rng := rand.New(rand.NewPCG(9, 9))

	for range 50 {
		p := NewPokeBuilder(species, rng).SetRandomEvs().Build()
		if total := p.GetCurrentEvTotal(); total != MAX_TOTAL_EV {
			t.Fatalf("expected %d total EVs, got %d", MAX_TOTAL_EV, total)
		}
		for _, ev := range p.Evs() {
			if ev > MAX_EV {
				t.Fatalf("ev %d above %d", ev, MAX_EV)
			}
		}
	}
}

func TestBuilderDefaults(t *testing.T) {
	species := Must(DefaultDex().Species("mew"))
	p := NewPokeBuilder(species, testRng).SetMoves(NewMove(Must(DefaultDex().Move("tackle")))).Build()

	if p.Level != 1 || p.Nature != NATURE_HARDY || p.Happiness != 255 {
		t.Fatalf("unexpected defaults: level %d nature %v happiness %d", p.Level, p.Nature, p.Happiness)
	}
	if !p.FullHp() {
		t.Fatalf("built pokemon should be at full hp")
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("default pokemon should validate: %s", err)
	}
}

func TestRandomMovesPicksAtMostFour(t *testing.T) {
	species := Must(DefaultDex().Species("mew"))
	dex := DefaultDex()
	var pool []*MoveData
	for _, name := range dex.MoveNames()[:10] {
		pool = append(pool, Must(dex.Move(name)))
	}

	p := NewPokeBuilder(species, rand.New(rand.NewPCG(5, 6))).SetRandomMoves(pool).Build()
	if len(p.Moves) != 4 {
		t.Fatalf("expected 4 moves, got %d", len(p.Moves))
	}
	seen := map[string]bool{}
	for _, m := range p.Moves {
		if seen[m.Name()] {
			t.Fatalf("duplicate move %s", m.Name())
		}
		seen[m.Name()] = true
	}
}
