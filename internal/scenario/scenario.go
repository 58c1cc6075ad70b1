package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nathanieltooley/porygon/battle"
	"github.com/nathanieltooley/porygon/infer"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var ErrUnknownName = errors.New("unknown name")

// Stats is keyed by the stat names battle.Stat prints, e.g. "special-attack".
type Stats map[string]uint

type PokemonFile struct {
	Species  string   `yaml:"species"`
	Nickname string   `yaml:"nickname,omitempty"`
	Level    uint     `yaml:"level"`
	Nature   string   `yaml:"nature,omitempty"`
	Gender   string   `yaml:"gender,omitempty"`
	Ability  string   `yaml:"ability,omitempty"`
	Item     string   `yaml:"item,omitempty"`
	Moves    []string `yaml:"moves"`
	// Evs are effort points, 0 to 252 per stat and 510 in total as shown in game.
	Evs Stats `yaml:"evs,omitempty"`
	// Ivs default to 31.
	Ivs    Stats          `yaml:"ivs,omitempty"`
	// Stages are applied as boosts, so Simple doubles them.
	Stages map[string]int `yaml:"stages,omitempty"`
	Status string         `yaml:"status,omitempty"`
	// HpPercent is current HP as a percentage of max HP, 100 when unset.
	HpPercent *uint `yaml:"hp_percent,omitempty"`
}

type SideFile struct {
	Reflect     int  `yaml:"reflect,omitempty"`
	LightScreen int  `yaml:"light_screen,omitempty"`
	Safeguard   int  `yaml:"safeguard,omitempty"`
	Mist        int  `yaml:"mist,omitempty"`
	Tailwind    int  `yaml:"tailwind,omitempty"`
	LuckyChant  int  `yaml:"lucky_chant,omitempty"`
	Spikes      int  `yaml:"spikes,omitempty"`
	ToxicSpikes int  `yaml:"toxic_spikes,omitempty"`
	StealthRock bool `yaml:"stealth_rock,omitempty"`
}

type TeamFile struct {
	Name    string        `yaml:"name"`
	Pokemon []PokemonFile `yaml:"pokemon"`
	Side    SideFile      `yaml:"side,omitempty"`
}

type WeatherFile struct {
	Kind      string `yaml:"kind,omitempty"`
	Turns     int    `yaml:"turns,omitempty"`
	TrickRoom int    `yaml:"trick_room,omitempty"`
	Gravity   int    `yaml:"gravity,omitempty"`
}

// ObservationFile is a hit dealt by the peer's active Pokemon to the host's.
type ObservationFile struct {
	Move       string `yaml:"move"`
	Damage     uint   `yaml:"damage"`
	Crit       bool   `yaml:"crit,omitempty"`
	DefenderHP uint   `yaml:"defender_hp,omitempty"`
}

// File is a whole scenario: both teams, the field and what was seen of the peer.
type File struct {
	Host         TeamFile          `yaml:"host"`
	Peer         TeamFile          `yaml:"peer"`
	Weather      WeatherFile       `yaml:"weather,omitempty"`
	Observations []ObservationFile `yaml:"observations,omitempty"`
}

type Scenario struct {
	Host         battle.Team
	Peer         battle.Team
	Weather      battle.Weather
	Observations []infer.Observation
}

func Load(path string) (Scenario, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := Parse(contents, battle.DefaultDex())
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scenario and resolves every name through dex.
func Parse(contents []byte, dex *battle.Dex) (Scenario, error) {
	var file File
	if err := yaml.Unmarshal(contents, &file); err != nil {
		return Scenario{}, fmt.Errorf("parsing yaml: %w", err)
	}
	return file.Resolve(dex)
}

func (f File) Resolve(dex *battle.Dex) (Scenario, error) {
	host, err := f.Host.resolve(dex, "host")
	if err != nil {
		return Scenario{}, err
	}
	peer, err := f.Peer.resolve(dex, "peer")
	if err != nil {
		return Scenario{}, err
	}
	weather, err := f.Weather.resolve()
	if err != nil {
		return Scenario{}, err
	}

	attacker := peer.GetActivePokemon()
	observations := make([]infer.Observation, 0, len(f.Observations))
	for i, o := range f.Observations {
		slot := MoveSlot(attacker, o.Move)
		if slot < 0 {
			return Scenario{}, fmt.Errorf("observation %d: %s does not know %q", i+1, attacker.Name(), o.Move)
		}
		observations = append(observations, infer.Observation{
			Move:       slot,
			Crit:       o.Crit,
			DefenderHP: o.DefenderHP,
			Damage:     o.Damage,
		})
	}

	return Scenario{Host: host, Peer: peer, Weather: weather, Observations: observations}, nil
}

// MoveSlot finds the slot of the named move on p, or -1.
func MoveSlot(p *battle.Pokemon, name string) int {
	return lo.IndexOf(lo.Map(p.Moves, func(m battle.Move, _ int) string {
		return m.Name()
	}), normalize(name))
}

// normalize turns display names like "Hidden Power" into table names like "hidden-power".
func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func (t TeamFile) resolve(dex *battle.Dex, fallbackName string) (battle.Team, error) {
	if len(t.Pokemon) == 0 || len(t.Pokemon) > 6 {
		return battle.Team{}, fmt.Errorf("team %s: needs 1 to 6 pokemon, got %d", fallbackName, len(t.Pokemon))
	}

	roster := make([]battle.Pokemon, 0, len(t.Pokemon))
	for i, pf := range t.Pokemon {
		p, err := pf.resolve(dex)
		if err != nil {
			return battle.Team{}, fmt.Errorf("team %s, pokemon %d: %w", fallbackName, i+1, err)
		}
		roster = append(roster, p)
	}

	name := t.Name
	if name == "" {
		name = fallbackName
	}
	team := battle.NewTeam(name, roster)
	team.Side = battle.SideConditions{
		Reflect:     t.Side.Reflect,
		LightScreen: t.Side.LightScreen,
		Safeguard:   t.Side.Safeguard,
		Mist:        t.Side.Mist,
		Tailwind:    t.Side.Tailwind,
		LuckyChant:  t.Side.LuckyChant,
		Spikes:      min(t.Side.Spikes, battle.MAX_SPIKES),
		ToxicSpikes: min(t.Side.ToxicSpikes, battle.MAX_TOXIC_SPIKES),
		StealthRock: t.Side.StealthRock,
	}
	return team, nil
}

func lookup[T any](kind string, name string, byName func(string) (T, bool)) (T, error) {
	value, ok := byName(normalize(name))
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s %q", ErrUnknownName, kind, name)
	}
	return value, nil
}

// statArray orders stats the way battle.Pokemon.SetEvs expects.
func statArray(stats Stats, fill uint) ([6]uint, error) {
	out := [6]uint{fill, fill, fill, fill, fill, fill}
	for name, value := range stats {
		stat, err := lookup("stat", name, battle.StatByName)
		if err != nil {
			return out, err
		}
		if stat > battle.STAT_SPEED {
			return out, fmt.Errorf("%w: %s has no EVs or IVs", ErrUnknownName, name)
		}
		out[stat] = value
	}
	return out, nil
}

func (pf PokemonFile) resolve(dex *battle.Dex) (battle.Pokemon, error) {
	species, err := dex.Species(normalize(pf.Species))
	if err != nil {
		return battle.Pokemon{}, err
	}

	moves := make([]battle.Move, 0, len(pf.Moves))
	for _, name := range pf.Moves {
		move, err := dex.NewMove(normalize(name))
		if err != nil {
			return battle.Pokemon{}, err
		}
		moves = append(moves, move)
	}

	level := pf.Level
	if level == 0 {
		level = battle.MAX_LEVEL
	}
	builder := battle.NewPokeBuilder(species, nil).SetLevel(level).SetNickname(pf.Nickname).SetMoves(moves...)

	if pf.Nature != "" {
		nature, err := lookup("nature", pf.Nature, battle.NatureByName)
		if err != nil {
			return battle.Pokemon{}, err
		}
		builder.SetNature(nature)
	}
	if pf.Gender != "" {
		gender, err := lookup("gender", pf.Gender, battle.GenderByName)
		if err != nil {
			return battle.Pokemon{}, err
		}
		builder.SetGender(gender)
	}
	if pf.Ability != "" {
		ability, err := lookup("ability", pf.Ability, battle.AbilityByName)
		if err != nil {
			return battle.Pokemon{}, err
		}
		builder.SetAbility(ability)
	}
	if pf.Item != "" {
		item, err := lookup("item", pf.Item, battle.ItemByName)
		if err != nil {
			return battle.Pokemon{}, err
		}
		builder.SetItem(item)
	}

	effort, err := statArray(pf.Evs, 0)
	if err != nil {
		return battle.Pokemon{}, err
	}
	var evs [6]uint
	for i, points := range effort {
		evs[i] = points / 4
	}
	builder.SetEvs(evs)
	ivs, err := statArray(pf.Ivs, battle.MAX_IV)
	if err != nil {
		return battle.Pokemon{}, err
	}
	builder.SetIvs(ivs)

	p := builder.Build()

	if pf.HpPercent != nil {
		percent := min(*pf.HpPercent, 100)
		p.Hp.Value = p.Hp.Max * percent / 100
		if percent > 0 {
			p.Hp.Value = max(1, p.Hp.Value)
		}
	}
	if pf.Status != "" {
		status, err := lookup("status", pf.Status, battle.StatusByName)
		if err != nil {
			return battle.Pokemon{}, err
		}
		p.Status = status
		if status == battle.STATUS_TOXIC {
			p.ToxicCount = 1
		}
	}
	for name, change := range pf.Stages {
		stat, err := lookup("stat", name, battle.StatByName)
		if err != nil {
			return battle.Pokemon{}, err
		}
		if stat == battle.STAT_HP {
			return battle.Pokemon{}, fmt.Errorf("%w: hp has no stage", ErrUnknownName)
		}
		p.ChangeStage(stat, change)
	}

	if err := p.Validate(); err != nil {
		return battle.Pokemon{}, err
	}
	return p, nil
}

func (w WeatherFile) resolve() (battle.Weather, error) {
	weather := battle.Weather{TrickRoom: w.TrickRoom, Gravity: w.Gravity}
	if w.Kind == "" {
		return weather, nil
	}
	kind, err := lookup("weather", w.Kind, battle.WeatherByName)
	if err != nil {
		return weather, err
	}
	turns := w.Turns
	if turns == 0 {
		turns = battle.WEATHER_PERMANENT
	}
	weather.Set(kind, turns)
	return weather, nil
}
