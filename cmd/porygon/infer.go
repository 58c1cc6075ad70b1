package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/nathanieltooley/porygon/battle"
	"github.com/nathanieltooley/porygon/infer"
	"github.com/nathanieltooley/porygon/internal/config"
	"github.com/nathanieltooley/porygon/internal/obslog"
	"github.com/nathanieltooley/porygon/internal/scenario"
	"github.com/samber/lo"
)

// defaultItems are the held items that change an attacker's damage without depending on its species.
const defaultItems = "none,choice-band,choice-specs,life-orb,expert-belt,muscle-band,wise-glasses"

func inferMain(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("infer", flag.ContinueOnError)
	items := fs.String("items", defaultItems, "comma separated items to consider")
	natures := fs.String("natures", "", "comma separated natures to consider, empty for all")
	hiddenPower := fs.Bool("hidden-power", false, "also infer Hidden Power IVs")
	useLog := fs.Bool("log", true, "replay observations recorded for this opponent")
	opponent := fs.String("opponent", "", "observation log key, defaults to peer/<species>")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: infer takes one scenario", errUsage)
	}

	s, err := scenario.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	itemList, err := parseNames(*items, battle.ItemByName)
	if err != nil {
		return err
	}
	natureList := battle.NATURES[:]
	if *natures != "" {
		if natureList, err = parseNames(*natures, battle.NatureByName); err != nil {
			return err
		}
	}

	observations := s.Observations
	if *useLog {
		key := opponentKey(*opponent, &s.Peer)
		logged, err := loggedObservations(ctx, cfg, key, s.Peer.GetActivePokemon())
		if err != nil {
			return err
		}
		observations = append(observations, logged...)
	}
	if len(observations) == 0 {
		return fmt.Errorf("%w: nothing to infer from", obslog.ErrNoObservations)
	}

	// the first hit decides which offensive stat is worth enumerating
	stats := infer.PHYSICAL_STATS
	if s.Peer.GetActivePokemon().Moves[observations[0].Move].Info.Class == battle.CLASS_SPECIAL {
		stats = infer.SPECIAL_STATS
	}
	candidates := infer.GenerateStats(itemList, natureList, cfg.EVStep, stats)
	if *hiddenPower {
		candidates = infer.WithHiddenPowerIVs(candidates, infer.HiddenPowerSpreads())
	}
	total := len(candidates)

	view := infer.View{Attacker: &s.Peer, Defender: &s.Host, Weather: &s.Weather}
	survivors := infer.FilterAll(view, observations, candidates)

	fmt.Printf("%d of %d candidates fit %d observations\n", len(survivors), total, len(observations))
	if len(survivors) == 0 {
		return nil
	}
	printTable("Items and natures", []string{"Item", "Nature", "Candidates", "Attack EVs", "Sp. Atk EVs", "Speed EVs"}, summaryRows(survivors))
	return nil
}

func parseNames[T any](list string, byName func(string) (T, bool)) ([]T, error) {
	var out []T
	for _, name := range strings.Split(list, ",") {
		value, ok := byName(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("%w: %q", scenario.ErrUnknownName, name)
		}
		out = append(out, value)
	}
	return out, nil
}

func opponentKey(flagValue string, peer *battle.Team) string {
	if flagValue != "" {
		return flagValue
	}
	return peer.Name + "/" + peer.GetActivePokemon().Species.Name
}

func loggedObservations(ctx context.Context, cfg config.Config, key string, peer *battle.Pokemon) ([]infer.Observation, error) {
	l, err := obslog.Open(ctx, cfg.ObservationDB)
	if err != nil {
		return nil, err
	}
	defer l.Close()

	entries, err := l.List(ctx, key)
	if errors.Is(err, obslog.ErrNoObservations) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return replayEntries(peer, entries)
}

// replayEntries maps logged hits onto peer's move slots by name; the stored slot may come
// from a scenario with a different move list.
func replayEntries(peer *battle.Pokemon, entries []obslog.Entry) ([]infer.Observation, error) {
	observations := make([]infer.Observation, 0, len(entries))
	for _, e := range entries {
		slot := scenario.MoveSlot(peer, e.MoveName)
		if slot < 0 {
			return nil, fmt.Errorf("%w: %s does not know logged move %q", scenario.ErrUnknownName, peer.Name(), e.MoveName)
		}
		observation := e.Observation()
		observation.Move = slot
		observations = append(observations, observation)
	}
	return observations, nil
}

type summaryKey struct {
	item   string
	nature string
}

// summaryRows groups survivors by item and nature with the EV range left in each group.
func summaryRows(survivors []infer.Candidate) [][]string {
	groups := lo.GroupBy(survivors, func(c infer.Candidate) summaryKey {
		return summaryKey{c.Item.String(), c.Nature.Name}
	})
	keys := lo.Keys(groups)
	slices.SortFunc(keys, func(a, b summaryKey) int {
		if c := len(groups[b]) - len(groups[a]); c != 0 {
			return c
		}
		return strings.Compare(a.item+a.nature, b.item+b.nature)
	})

	evRange := func(cs []infer.Candidate, stat battle.Stat) string {
		evs := lo.Map(cs, func(c infer.Candidate, _ int) uint { return c.Evs[stat] * 4 })
		return fmt.Sprintf("%d-%d", lo.Min(evs), lo.Max(evs))
	}

	return lo.Map(keys, func(k summaryKey, _ int) []string {
		cs := groups[k]
		return []string{
			displayName(k.item), displayName(k.nature), fmt.Sprint(len(cs)),
			evRange(cs, battle.STAT_ATTACK), evRange(cs, battle.STAT_SPATTACK), evRange(cs, battle.STAT_SPEED),
		}
	})
}
