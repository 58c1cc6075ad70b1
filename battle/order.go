package battle

import (
	"cmp"
	"math/rand/v2"
)

// TieBreaker settles an exact Speed tie inside one priority bracket. It reports whether a moves first.
type TieBreaker func(a, b *Team) bool

// FirstTieBreaker always lets the first team move first.
func FirstTieBreaker(_, _ *Team) bool {
	return true
}

func RandomTieBreaker(rng *rand.Rand) TieBreaker {
	return func(_, _ *Team) bool {
		return rng.IntN(2) == 0
	}
}

// TurnOrder returns the two teams in the order their selected moves resolve.
func TurnOrder(a, b *Team, weather *Weather, tie TieBreaker) (*Team, *Team) {
	c := compareTurn(a, b, weather)
	if c == 0 {
		if tie == nil || tie(a, b) {
			c = 1
		} else {
			c = -1
		}
	}
	if c > 0 {
		return a, b
	}
	return b, a
}

// compareTurn is positive when a goes first.
func compareTurn(a, b *Team, weather *Weather) int {
	pa, pb := a.GetActivePokemon(), b.GetActivePokemon()

	priorComp := cmp.Compare(selectedPriority(pa), selectedPriority(pb))
	if priorComp != 0 {
		return priorComp
	}

	// moving last inside a bracket ignores speed and trick room
	lastA, lastB := movesLast(pa), movesLast(pb)
	if lastA != lastB {
		if lastA {
			return -1
		}
		return 1
	}

	active := weather.Active(pa, pb)
	aSpeed, bSpeed := CalcSpeed(a, active), CalcSpeed(b, active)
	speedComp := cmp.Compare(aSpeed, bSpeed)
	if weather.TrickRoom > 0 {
		speedComp = -speedComp
	}

	internalLogger.V(2).Info("Turn order",
		"a", a.Name, "b", b.Name,
		"aSpeed", aSpeed, "bSpeed", bSpeed,
		"compPriority", priorComp, "compSpeed", speedComp,
		"trick_room", weather.TrickRoom > 0,
	)
	return speedComp
}

func selectedPriority(p *Pokemon) int {
	move := p.ActiveMove()
	if !move.HasPP() {
		return struggleData.Priority
	}
	return move.Priority()
}

func movesLast(p *Pokemon) bool {
	return p.itemActive(ITEM_LAGGING_TAIL) || p.itemActive(ITEM_FULL_INCENSE) || p.Ability == ABILITY_STALL
}
