package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/nathanieltooley/porygon/internal/config"
	"github.com/nathanieltooley/porygon/internal/obslog"
	"github.com/nathanieltooley/porygon/internal/scenario"
	"github.com/samber/lo"
)

func observeMain(ctx context.Context, cfg config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: observe needs add, list or clear", errUsage)
	}

	fs := flag.NewFlagSet("observe "+args[0], flag.ContinueOnError)
	opponent := fs.String("opponent", "", "observation log key, e.g. peer/mew")
	scenarioPath := fs.String("scenario", "", "scenario whose peer knows the move, required by add")
	move := fs.String("move", "", "move that dealt the damage")
	damage := fs.Uint("damage", 0, "damage dealt")
	crit := fs.Bool("crit", false, "the hit was critical")
	defenderHP := fs.Uint("defender-hp", 0, "defender HP before the hit, 0 for the scenario value")
	if err := fs.Parse(args[1:]); err != nil {
		return errUsage
	}

	l, err := obslog.Open(ctx, cfg.ObservationDB)
	if err != nil {
		return err
	}
	defer l.Close()

	switch args[0] {
	case "add":
		if *scenarioPath == "" || *move == "" {
			return fmt.Errorf("%w: add needs -scenario and -move", errUsage)
		}
		s, err := scenario.Load(*scenarioPath)
		if err != nil {
			return err
		}
		key := opponentKey(*opponent, &s.Peer)
		slot := scenario.MoveSlot(s.Peer.GetActivePokemon(), *move)
		if slot < 0 {
			return fmt.Errorf("%s does not know %q", s.Peer.GetActivePokemon().Name(), *move)
		}

		entry, err := l.Add(ctx, obslog.Entry{
			Opponent:   key,
			Move:       slot,
			MoveName:   s.Peer.GetActivePokemon().Moves[slot].Name(),
			Damage:     *damage,
			Crit:       *crit,
			DefenderHP: *defenderHP,
		})
		if err != nil {
			return err
		}
		fmt.Printf("recorded %s for %s\n", entry.ID, key)
	case "list":
		opponents := []string{*opponent}
		if *opponent == "" {
			if opponents, err = l.Opponents(ctx); err != nil {
				return err
			}
		}
		for _, o := range opponents {
			entries, err := l.List(ctx, o)
			if err != nil {
				return err
			}
			printTable(o, []string{"Recorded", "Move", "Damage", "Crit", "Defender HP"}, lo.Map(entries, func(e obslog.Entry, _ int) []string {
				return []string{
					e.Recorded.Format(time.DateTime), displayName(e.MoveName), fmt.Sprint(e.Damage), fmt.Sprint(e.Crit), fmt.Sprint(e.DefenderHP),
				}
			}))
		}
	case "clear":
		if *opponent == "" {
			return fmt.Errorf("%w: clear needs -opponent", errUsage)
		}
		removed, err := l.Clear(ctx, *opponent)
		if err != nil {
			return err
		}
		fmt.Printf("removed %d observations for %s\n", removed, *opponent)
	default:
		return fmt.Errorf("%w: unknown observe command %q", errUsage, args[0])
	}
	return nil
}
