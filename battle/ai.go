package battle

import (
	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var aiLogger = func() logr.Logger {
	return internalLogger.WithName("ai_move_selection")
}

// rolls is every damage roll, lowest first.
var rolls = lo.RangeFrom[uint](MIN_ROLL, MAX_ROLL-MIN_ROLL+1)

// MoveScore is the damage one move slot is expected to deal, assuming no critical hit.
type MoveScore struct {
	Index    int
	Min      uint
	Max      uint
	Expected float64
}

// ScoreMoves scores every usable move of user against target. Phases one and two run once per
// move and only the roll varies.
func ScoreMoves(user, target *Team, weather *Weather) []MoveScore {
	p := user.GetActivePokemon()
	selected, crit := p.SelectedMove, user.Crit
	user.Crit = false
	defer func() {
		p.SelectedMove, user.Crit = selected, crit
	}()

	scores := make([]MoveScore, 0, len(p.Moves))
	for i := range p.Moves {
		if !p.Usable(i) {
			continue
		}
		p.SelectedMove = i
		move := &p.Moves[i]
		score := MoveScore{Index: i}

		if move.Info.Damaging() {
			profile := profileFor(user, move, target, weather, movePower(user, move, target, weather))
			damages := lo.Map(rolls, func(roll uint, _ int) uint {
				return RandomDamage(profile, roll)
			})
			score.Min, score.Max = damages[0], damages[len(damages)-1]
			hit := float64(ChanceToHit(user, target, weather)) / 100
			score.Expected = float64(lo.Sum(damages)) / float64(len(damages)) * hit
		}
		scores = append(scores, score)
	}
	return scores
}

// BestAttackingMove is the usable move with the highest expected damage, or -1 if nothing deals damage.
func BestAttackingMove(user, target *Team, weather *Weather) int {
	scores := lo.Filter(ScoreMoves(user, target, weather), func(s MoveScore, _ int) bool {
		return s.Expected > 0
	})
	if len(scores) == 0 {
		return -1
	}
	best := lo.MaxBy(scores, func(a, b MoveScore) bool {
		return a.Expected > b.Expected
	})
	aiLogger().V(1).Info("Best attacking move", "index", best.Index, "expected", best.Expected)
	return best.Index
}

// bestSlowingMove looks for a move that lowers target's Speed or paralyzes it.
func bestSlowingMove(user, target *Team) int {
	p := user.GetActivePokemon()
	opponent := target.GetActivePokemon()

	bestMove := -1
	var bestChance uint
	for i := range p.Moves {
		if !p.Usable(i) {
			continue
		}
		info := p.Moves[i].Info
		e := info.Effect

		slows := e.Kind == EFFECT_BOOST_TARGET && lo.ContainsBy(e.Boosts, func(b Boost) bool {
			return b.Stat == STAT_SPEED && b.Stages < 0
		})
		paralyzes := e.Kind == EFFECT_INFLICT && e.Status == STATUS_PARA && opponent.Status == STATUS_NONE
		if !slows && !paralyzes {
			continue
		}

		chance := info.Accuracy
		if chance == 0 {
			chance = 100
		}
		if info.Probability > 0 {
			chance = chance * info.Probability / 100
		}
		if chance > bestChance {
			bestMove, bestChance = i, chance
		}
	}
	return bestMove
}

// BestMove picks a move for user. A slower Pokemon tries to slow the target down first;
// otherwise, or if it cannot, it attacks. -1 means no move is usable.
func BestMove(user, target *Team, weather *Weather) int {
	p := user.GetActivePokemon()
	if !p.Alive() {
		return -1
	}
	if p.Locked() {
		return p.SelectedMove
	}

	active := weather.Active(p, target.GetActivePokemon())
	if CalcSpeed(user, active) < CalcSpeed(target, active) && weather.TrickRoom == 0 {
		if i := bestSlowingMove(user, target); i >= 0 {
			return i
		}
	}
	if i := BestAttackingMove(user, target, weather); i >= 0 {
		return i
	}

	for i := range p.Moves {
		if p.Usable(i) {
			return i
		}
	}
	return -1
}
