package main

import (
	"flag"
	"fmt"

	"github.com/nathanieltooley/porygon/battle"
	"github.com/nathanieltooley/porygon/internal/scenario"
)

func calcMain(args []string) error {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	crit := fs.Bool("crit", false, "assume critical hits")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: calc takes one scenario", errUsage)
	}

	s, err := scenario.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	printTable(sideTitle(&s.Host, &s.Peer), damageHeaders, damageRows(&s.Host, &s.Peer, &s.Weather, *crit))
	printTable(sideTitle(&s.Peer, &s.Host), damageHeaders, damageRows(&s.Peer, &s.Host, &s.Weather, *crit))
	return nil
}

var damageHeaders = []string{"Move", "Type", "Power", "Min", "Max", "% HP", "Expected"}

func sideTitle(user, target *battle.Team) string {
	return fmt.Sprintf("%s's %s vs %s's %s", user.Name, displayName(user.GetActivePokemon().Name()),
		target.Name, displayName(target.GetActivePokemon().Name()))
}

// damageRows lists every move of user's active Pokemon. Scoring runs on the
// current selection, so the selection is restored afterwards.
func damageRows(user, target *battle.Team, weather *battle.Weather, crit bool) [][]string {
	p := user.GetActivePokemon()
	d := target.GetActivePokemon()
	selected, wasCrit := p.SelectedMove, user.Crit
	defer func() {
		p.SelectedMove, user.Crit = selected, wasCrit
	}()

	expected := map[int]float64{}
	for _, score := range battle.ScoreMoves(user, target, weather) {
		expected[score.Index] = score.Expected
	}

	user.Crit = crit
	active := weather.Active(p, d)
	rows := make([][]string, 0, len(p.Moves))
	for i := range p.Moves {
		p.SelectMove(i)
		move := p.ActiveMove()

		power := battle.MovePower(user, target, weather)
		profile := battle.KnownDamage(user, target, weather, power)
		low, high := uint(0), uint(0)
		if move.Info.Damaging() {
			low, high = profile.Range()
		}

		rows = append(rows, []string{
			displayName(move.Name()),
			displayName(battle.MoveType(p, move.Info, active).String()),
			fmt.Sprint(power),
			fmt.Sprint(low),
			fmt.Sprint(high),
			percent(low, d.Hp.Max) + " - " + percent(high, d.Hp.Max),
			fmt.Sprintf("%.1f", expected[i]),
		})
	}
	return rows
}
