package battle

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownMove    = errors.New("unknown move")
)

//go:embed data/species.csv
var speciesCSV []byte

// Species fixes base stats and typing. Type2 is TYPE_TYPELESS for single-typed species.
type Species struct {
	PokedexNumber uint
	Name          string
	Type1         Type
	Type2         Type
	Hp            uint
	Attack        uint
	Def           uint
	SpAttack      uint
	SpDef         uint
	Speed         uint
	// Weight in hectograms.
	Weight uint
}

func (s *Species) HasType(t Type) bool {
	return s.Type1 == t || (s.Type2 != TYPE_TYPELESS && s.Type2 == t)
}

// Dex is the immutable name to identity mapping used to build Pokemon and moves.
// Nothing in the engine reads it during play.
type Dex struct {
	species []Species
	moves   []MoveData
	byName  map[string]*Species
	moveMap map[string]*MoveData
}

// NewDex builds a Dex after checking every move row has a valid effect shape.
// A bad row is a programming error and panics.
func NewDex(species []Species, moves []MoveData) (*Dex, error) {
	dex := &Dex{
		species: append([]Species(nil), species...),
		moves:   append([]MoveData(nil), moves...),
		byName:  make(map[string]*Species, len(species)),
		moveMap: make(map[string]*MoveData, len(moves)),
	}

	for i := range dex.species {
		s := &dex.species[i]
		key := strings.ToLower(s.Name)
		if _, ok := dex.byName[key]; ok {
			return nil, fmt.Errorf("duplicate species %q", s.Name)
		}
		dex.byName[key] = s
	}

	for i := range dex.moves {
		m := &dex.moves[i]
		mustValidateMove(m)
		if _, ok := dex.moveMap[m.Name]; ok {
			return nil, fmt.Errorf("duplicate move %q", m.Name)
		}
		dex.moveMap[m.Name] = m
	}

	internalLogger.V(1).Info("Built dex", "species", len(dex.species), "moves", len(dex.moves))
	return dex, nil
}

func mustValidateMove(m *MoveData) {
	fail := func(format string, args ...any) {
		panic(fmt.Sprintf("move %q: %s", m.Name, fmt.Sprintf(format, args...)))
	}

	if m.Name == "" {
		fail("missing name")
	}
	if m.Type < 0 || m.Type > TYPE_TYPELESS {
		fail("type %d out of range", int(m.Type))
	}
	if m.PowerRule < 0 || m.PowerRule >= powerRuleCount {
		fail("power rule %d out of range", int(m.PowerRule))
	}
	if m.Doubler < 0 || m.Doubler >= doublerCount {
		fail("doubler %d out of range", int(m.Doubler))
	}
	if m.Fixed < 0 || m.Fixed >= fixedRuleCount {
		fail("fixed rule %d out of range", int(m.Fixed))
	}
	if m.Priority < -7 || m.Priority > 6 {
		fail("priority %d out of range", m.Priority)
	}
	if !m.Damaging() && (m.Power != 0 || m.PowerRule != POWER_BASE || m.Fixed != FIXED_NONE) {
		fail("status moves cannot deal damage")
	}
	if m.Accuracy > 100 || m.Probability > 100 {
		fail("accuracy or probability above 100")
	}
	if err := m.Effect.validate(); err != nil {
		fail("%v", err)
	}
}

// Species returns the species with the given name, ignoring case.
func (d *Dex) Species(name string) (*Species, error) {
	s, ok := d.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpecies, name)
	}
	return s, nil
}

func (d *Dex) SpeciesByPokedex(number uint) (*Species, error) {
	for i := range d.species {
		if d.species[i].PokedexNumber == number {
			return &d.species[i], nil
		}
	}
	return nil, fmt.Errorf("%w: #%d", ErrUnknownSpecies, number)
}

func (d *Dex) Move(name string) (*MoveData, error) {
	m, ok := d.moveMap[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMove, name)
	}
	return m, nil
}

// NewMove returns a ready-to-use move slot for the named move.
func (d *Dex) NewMove(name string) (Move, error) {
	info, err := d.Move(name)
	if err != nil {
		return Move{}, err
	}
	return NewMove(info), nil
}

func (d *Dex) AllSpecies() []Species {
	return append([]Species(nil), d.species...)
}

func (d *Dex) MoveNames() []string {
	names := make([]string, 0, len(d.moves))
	for _, m := range d.moves {
		names = append(names, m.Name)
	}
	return names
}

// LoadSpecies takes in the bytes of a csv file with a header row and the columns:
// PokedexNumber, Name, Type1, Type2, HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed, Weight.
// Type2 may be empty.
func LoadSpecies(fileBytes []byte) ([]Species, error) {
	csvReader := csv.NewReader(bytes.NewReader(fileBytes))
	if _, err := csvReader.Read(); err != nil {
		return nil, fmt.Errorf("reading species header: %w", err)
	}
	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading species rows: %w", err)
	}

	logger := internalLogger.WithName("load_species")
	speciesList := make([]Species, 0, len(rows))

	for i, row := range rows {
		if len(row) != 11 {
			return nil, fmt.Errorf("species row %d: expected 11 columns, got %d", i+1, len(row))
		}

		var numbers [8]uint
		for col, cell := range []string{row[0], row[4], row[5], row[6], row[7], row[8], row[9], row[10]} {
			n, err := strconv.ParseUint(cell, 10, 16)
			if err != nil {
				return nil, fmt.Errorf("species row %d (%s): %w", i+1, row[1], err)
			}
			numbers[col] = uint(n)
		}

		type1, ok := TypeByName(row[2])
		if !ok {
			return nil, fmt.Errorf("species row %d (%s): unknown type %q", i+1, row[1], row[2])
		}
		type2 := TYPE_TYPELESS
		if row[3] != "" {
			type2, ok = TypeByName(row[3])
			if !ok {
				return nil, fmt.Errorf("species row %d (%s): unknown type %q", i+1, row[1], row[3])
			}
		}

		s := Species{
			PokedexNumber: numbers[0],
			Name:          row[1],
			Type1:         type1,
			Type2:         type2,
			Hp:            numbers[1],
			Attack:        numbers[2],
			Def:           numbers[3],
			SpAttack:      numbers[4],
			SpDef:         numbers[5],
			Speed:         numbers[6],
			Weight:        numbers[7],
		}
		logger.V(2).Info("loaded species", "pokedex", s.PokedexNumber, "name", s.Name)
		speciesList = append(speciesList, s)
	}

	logger.V(1).Info("Loaded species", "count", len(speciesList))
	return speciesList, nil
}

// DefaultDex is built from the data embedded in the binary.
var DefaultDex = sync.OnceValue(func() *Dex {
	species := Must(LoadSpecies(speciesCSV))
	return Must(NewDex(species, moveTable))
})

// Must panics on err. Only for data shipped with the binary.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
