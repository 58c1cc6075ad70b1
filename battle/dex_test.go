package battle

import (
	"errors"
	"testing"
)

func TestSpeciesLookupIgnoresCase(t *testing.T) {
	s, err := DefaultDex().Species("Charizard")
	if err != nil {
		t.Fatalf("lookup failed: %s", err)
	}
	if s.Type1 != TYPE_FIRE || s.Type2 != TYPE_FLYING || s.Attack != 84 {
		t.Fatalf("unexpected charizard row: %+v", s)
	}
	if _, err := DefaultDex().Move("Flamethrower"); err != nil {
		t.Fatalf("move lookup failed: %s", err)
	}
}

func TestUnknownNames(t *testing.T) {
	if _, err := DefaultDex().Species("missingno"); !errors.Is(err, ErrUnknownSpecies) {
		t.Fatalf("expected ErrUnknownSpecies, got %v", err)
	}
	if _, err := DefaultDex().NewMove("splash dance"); !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("expected ErrUnknownMove, got %v", err)
	}
}

func TestSingleTypedSpecies(t *testing.T) {
	s := Must(DefaultDex().Species("snorlax"))
	if s.Type2 != TYPE_TYPELESS || !s.HasType(TYPE_NORMAL) || s.HasType(TYPE_TYPELESS) {
		t.Fatalf("snorlax should be pure normal: %+v", s)
	}
}

func TestLoadSpeciesRejectsBadRows(t *testing.T) {
	header := "dex,name,type1,type2,hp,attack,defense,special-attack,special-defense,speed,weight\n"

	if _, err := LoadSpecies([]byte(header + "1,bulbasaur,grass,poison,45,49,49,65,65,45,heavy\n")); err == nil {
		t.Fatalf("non numeric weight should fail")
	}
	if _, err := LoadSpecies([]byte(header + "1,bulbasaur,leaf,poison,45,49,49,65,65,45,69\n")); err == nil {
		t.Fatalf("unknown type should fail")
	}
	if _, err := LoadSpecies([]byte(header + "1,bulbasaur,grass,poison,45\n")); err == nil {
		t.Fatalf("short row should fail")
	}
	species, err := LoadSpecies([]byte(header + "1,bulbasaur,grass,,45,49,49,65,65,45,69\n"))
	if err != nil || len(species) != 1 || species[0].Type2 != TYPE_TYPELESS {
		t.Fatalf("valid row failed: %v %+v", err, species)
	}
}

func TestNewDexRejectsDuplicates(t *testing.T) {
	species := DefaultDex().AllSpecies()
	if _, err := NewDex(append(species, species[0]), nil); err == nil {
		t.Fatalf("duplicate species should fail")
	}
}
