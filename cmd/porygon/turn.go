package main

import (
	"flag"
	"fmt"
	"math/rand/v2"

	"github.com/nathanieltooley/porygon/battle"
	"github.com/nathanieltooley/porygon/internal/config"
	"github.com/nathanieltooley/porygon/internal/scenario"
	"github.com/rs/zerolog/log"
)

func turnMain(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("turn", flag.ContinueOnError)
	turns := fs.Int("turns", 1, "turns to play, 0 plays until one side loses")
	seed := fs.Uint64("seed", 0, "random seed, 0 picks one")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: turn takes one scenario", errUsage)
	}

	s, err := scenario.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if *seed == 0 {
		pcg := battle.CreateRandomStateSeed()
		rng = battle.CreateRNG(&pcg)
	} else {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}
	tie := tieBreaker(cfg, rng)
	rules := battle.Rules{PerishSong: cfg.PerishSong}

	for turn := 1; *turns == 0 || turn <= *turns; turn++ {
		for _, side := range [2][2]*battle.Team{{&s.Host, &s.Peer}, {&s.Peer, &s.Host}} {
			user, target := side[0], side[1]
			if i := battle.BestMove(user, target, &s.Weather); i >= 0 {
				user.GetActivePokemon().SelectMove(i)
			}
			battle.RollOutcomes(rng, user, target, &s.Weather)
		}

		result := battle.PlayTurn(&s.Host, &s.Peer, &s.Weather, tie, rules)
		printTurn(turn, result, &s)
		log.Debug().Int("turn", turn).Int("result", result.Kind).Msg("Played turn")

		switch result.Kind {
		case battle.RESULT_GAMEOVER:
			fmt.Printf("%s has no Pokemon left\n", result.Loser.Name)
			return nil
		case battle.RESULT_FORCESWITCH:
			for _, t := range result.Fainted {
				other := &s.Host
				if t == &s.Host {
					other = &s.Peer
				}
				fainted := t.GetActivePokemon().Name()
				if t.ReplaceFainted(other, &s.Weather) {
					fmt.Printf("%s sends out %s for %s\n", t.Name, displayName(t.GetActivePokemon().Name()), displayName(fainted))
				}
			}
		}
	}
	return nil
}

func printTurn(turn int, result battle.TurnResult, s *scenario.Scenario) {
	rows := make([][]string, 0, len(result.Actions))
	for _, action := range result.Actions {
		outcome := fmt.Sprintf("%d damage", action.Damage)
		switch {
		case action.Skipped:
			outcome = "fainted before moving"
		case action.Blocked:
			outcome = "could not move"
		}
		rows = append(rows, []string{action.Team, displayName(action.Pokemon), displayName(action.Move), outcome})
	}
	printTable(fmt.Sprintf("Turn %d", turn), []string{"Team", "Pokemon", "Move", "Outcome"}, rows)

	hpRows := make([][]string, 0, 2)
	for _, t := range [2]*battle.Team{&s.Host, &s.Peer} {
		p := t.GetActivePokemon()
		hpRows = append(hpRows, []string{
			t.Name, displayName(p.Name()), fmt.Sprintf("%d/%d", p.Hp.Value, p.Hp.Max), percent(p.Hp.Value, p.Hp.Max), p.Status.String(),
		})
	}
	printTable("After the turn", []string{"Team", "Pokemon", "HP", "%", "Status"}, hpRows)
}
