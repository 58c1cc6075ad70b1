package battle

const (
	RESULT_RESOLVED = iota + 1
	RESULT_GAMEOVER
	RESULT_FORCESWITCH
)

// ActionResult is what became of one side's selected move.
type ActionResult struct {
	Team    string
	Pokemon string
	Move    string
	// Skipped means the Pokemon fainted before its turn came.
	Skipped bool
	Blocked bool
	Damage  uint
}

// TurnResult is a single struct with a tag, Kind. Loser is set for RESULT_GAMEOVER and
// Fainted lists the teams that need a replacement for RESULT_FORCESWITCH.
type TurnResult struct {
	Kind    int
	Actions []ActionResult
	Loser   *Team
	Fainted []*Team
}

// PlayTurn resolves both selected moves in turn order and then the end of turn.
// Switching in a replacement after a faint is left to the caller, see Team.ReplaceFainted.
func PlayTurn(a, b *Team, weather *Weather, tie TieBreaker, rules Rules) TurnResult {
	first, second := TurnOrder(a, b, weather, tie)
	result := TurnResult{Kind: RESULT_RESOLVED, Actions: make([]ActionResult, 0, 2)}

	for _, side := range [2][2]*Team{{first, second}, {second, first}} {
		user, target := side[0], side[1]
		p := user.GetActivePokemon()
		move := p.ActiveMove()
		action := ActionResult{Team: user.Name, Pokemon: p.Name(), Move: move.Name()}
		if !move.HasPP() {
			action.Move = struggleData.Name
		}

		switch {
		case !p.Alive():
			action.Skipped = true
		case Blocked(user, target, weather):
			action.Blocked = true
		default:
			action.Damage = ResolveMove(user, target, weather)
		}
		result.Actions = append(result.Actions, action)
	}

	RunEndOfTurnWithRules(a, b, weather, rules)

	for _, t := range [2]*Team{a, b} {
		if t.Lost() {
			result.Kind = RESULT_GAMEOVER
			result.Loser = t
			return result
		}
	}
	for _, t := range [2]*Team{a, b} {
		if !t.GetActivePokemon().Alive() {
			result.Kind = RESULT_FORCESWITCH
			result.Fainted = append(result.Fainted, t)
		}
	}
	return result
}

// ReplaceFainted switches in Replacement, or the first healthy Pokemon, when the active one has fainted.
func (t *Team) ReplaceFainted(other *Team, weather *Weather) bool {
	if t.GetActivePokemon().Alive() {
		return false
	}
	index := t.replacementIndex()
	if index < 0 {
		return false
	}
	t.SwitchTo(index, other, weather, false)
	return true
}
