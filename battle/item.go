package battle

import "fmt"

type Item int

const (
	ITEM_NONE Item = iota
	ITEM_BLACK_SLUDGE
	ITEM_BRIGHTPOWDER
	ITEM_CHOICE_BAND
	ITEM_CHOICE_SCARF
	ITEM_CHOICE_SPECS
	ITEM_DAMP_ROCK
	ITEM_DEEPSEASCALE
	ITEM_DEEPSEATOOTH
	ITEM_EXPERT_BELT
	ITEM_FOCUS_SASH
	ITEM_FULL_INCENSE
	ITEM_HEAT_ROCK
	ITEM_ICY_ROCK
	ITEM_IRON_BALL
	ITEM_LAGGING_TAIL
	ITEM_LAX_INCENSE
	ITEM_LEFTOVERS
	ITEM_LIFE_ORB
	ITEM_LIGHT_BALL
	ITEM_MACHO_BRACE
	ITEM_METAL_POWDER
	ITEM_METRONOME
	ITEM_MUSCLE_BAND
	ITEM_POWER_ANKLET
	ITEM_POWER_BAND
	ITEM_POWER_BELT
	ITEM_POWER_BRACER
	ITEM_POWER_LENS
	ITEM_POWER_WEIGHT
	ITEM_QUICK_POWDER
	ITEM_RAZOR_CLAW
	ITEM_SCOPE_LENS
	ITEM_SHELL_BELL
	ITEM_SMOOTH_ROCK
	ITEM_SOUL_DEW
	ITEM_STICKY_BARB
	ITEM_THICK_CLUB
	ITEM_WIDE_LENS
	ITEM_WISE_GLASSES
	ITEM_ZOOM_LENS
	// type boosting items
	ITEM_BLACK_BELT
	ITEM_BLACKGLASSES
	ITEM_CHARCOAL
	ITEM_DRAGON_FANG
	ITEM_HARD_STONE
	ITEM_MAGNET
	ITEM_METAL_COAT
	ITEM_MIRACLE_SEED
	ITEM_MYSTIC_WATER
	ITEM_NEVERMELTICE
	ITEM_POISON_BARB
	ITEM_SHARP_BEAK
	ITEM_SILK_SCARF
	ITEM_SILVERPOWDER
	ITEM_SOFT_SAND
	ITEM_SPELL_TAG
	ITEM_TWISTEDSPOON
	// berries
	ITEM_CHESTO_BERRY
	ITEM_LUM_BERRY
	ITEM_SITRUS_BERRY
	ITEM_BABIRI_BERRY
	ITEM_CHARTI_BERRY
	ITEM_CHILAN_BERRY
	ITEM_CHOPLE_BERRY
	ITEM_COBA_BERRY
	ITEM_COLBUR_BERRY
	ITEM_HABAN_BERRY
	ITEM_KASIB_BERRY
	ITEM_KEBIA_BERRY
	ITEM_OCCA_BERRY
	ITEM_PASSHO_BERRY
	ITEM_PAYAPA_BERRY
	ITEM_RINDO_BERRY
	ITEM_SHUCA_BERRY
	ITEM_TANGA_BERRY
	ITEM_WACAN_BERRY
	ITEM_YACHE_BERRY
	itemCount
)

type itemData struct {
	Name  string
	Fling uint
	// Boost is the move type this item powers up by 20%.
	Boost    Type
	HasBoost bool
	// Resist is the move type this berry halves.
	Resist      Type
	ResistBerry bool
	Berry       bool
	GiftType    Type
	GiftPower   uint
}

func plainItem(name string, fling uint) itemData {
	return itemData{Name: name, Fling: fling}
}

func typeItem(name string, t Type, fling uint) itemData {
	return itemData{Name: name, Fling: fling, Boost: t, HasBoost: true}
}

func berry(name string, giftType Type, giftPower uint) itemData {
	return itemData{Name: name, Fling: 10, Berry: true, GiftType: giftType, GiftPower: giftPower}
}

// Natural Gift uses the resisted type for every resist berry.
func resistBerry(name string, t Type) itemData {
	d := berry(name, t, 60)
	d.Resist = t
	d.ResistBerry = true
	return d
}

var itemTable = [itemCount]itemData{
	ITEM_NONE:          plainItem("none", 0),
	ITEM_BLACK_SLUDGE:  plainItem("black-sludge", 30),
	ITEM_BRIGHTPOWDER:  plainItem("brightpowder", 10),
	ITEM_CHOICE_BAND:   plainItem("choice-band", 10),
	ITEM_CHOICE_SCARF:  plainItem("choice-scarf", 10),
	ITEM_CHOICE_SPECS:  plainItem("choice-specs", 10),
	ITEM_DAMP_ROCK:     plainItem("damp-rock", 60),
	ITEM_DEEPSEASCALE:  plainItem("deepseascale", 30),
	ITEM_DEEPSEATOOTH:  plainItem("deepseatooth", 90),
	ITEM_EXPERT_BELT:   plainItem("expert-belt", 10),
	ITEM_FOCUS_SASH:    plainItem("focus-sash", 10),
	ITEM_FULL_INCENSE:  plainItem("full-incense", 10),
	ITEM_HEAT_ROCK:     plainItem("heat-rock", 60),
	ITEM_ICY_ROCK:      plainItem("icy-rock", 40),
	ITEM_IRON_BALL:     plainItem("iron-ball", 130),
	ITEM_LAGGING_TAIL:  plainItem("lagging-tail", 10),
	ITEM_LAX_INCENSE:   plainItem("lax-incense", 10),
	ITEM_LEFTOVERS:     plainItem("leftovers", 10),
	ITEM_LIFE_ORB:      plainItem("life-orb", 30),
	ITEM_LIGHT_BALL:    plainItem("light-ball", 30),
	ITEM_MACHO_BRACE:   plainItem("macho-brace", 60),
	ITEM_METAL_POWDER:  plainItem("metal-powder", 10),
	ITEM_METRONOME:     plainItem("metronome", 30),
	ITEM_MUSCLE_BAND:   plainItem("muscle-band", 10),
	ITEM_POWER_ANKLET:  plainItem("power-anklet", 70),
	ITEM_POWER_BAND:    plainItem("power-band", 70),
	ITEM_POWER_BELT:    plainItem("power-belt", 70),
	ITEM_POWER_BRACER:  plainItem("power-bracer", 70),
	ITEM_POWER_LENS:    plainItem("power-lens", 70),
	ITEM_POWER_WEIGHT:  plainItem("power-weight", 70),
	ITEM_QUICK_POWDER:  plainItem("quick-powder", 10),
	ITEM_RAZOR_CLAW:    plainItem("razor-claw", 80),
	ITEM_SCOPE_LENS:    plainItem("scope-lens", 30),
	ITEM_SHELL_BELL:    plainItem("shell-bell", 30),
	ITEM_SMOOTH_ROCK:   plainItem("smooth-rock", 10),
	ITEM_SOUL_DEW:      plainItem("soul-dew", 30),
	ITEM_STICKY_BARB:   plainItem("sticky-barb", 80),
	ITEM_THICK_CLUB:    plainItem("thick-club", 90),
	ITEM_WIDE_LENS:     plainItem("wide-lens", 10),
	ITEM_WISE_GLASSES:  plainItem("wise-glasses", 10),
	ITEM_ZOOM_LENS:     plainItem("zoom-lens", 10),
	ITEM_BLACK_BELT:    typeItem("black-belt", TYPE_FIGHTING, 30),
	ITEM_BLACKGLASSES:  typeItem("blackglasses", TYPE_DARK, 30),
	ITEM_CHARCOAL:      typeItem("charcoal", TYPE_FIRE, 30),
	ITEM_DRAGON_FANG:   typeItem("dragon-fang", TYPE_DRAGON, 70),
	ITEM_HARD_STONE:    typeItem("hard-stone", TYPE_ROCK, 100),
	ITEM_MAGNET:        typeItem("magnet", TYPE_ELECTRIC, 30),
	ITEM_METAL_COAT:    typeItem("metal-coat", TYPE_STEEL, 30),
	ITEM_MIRACLE_SEED:  typeItem("miracle-seed", TYPE_GRASS, 30),
	ITEM_MYSTIC_WATER:  typeItem("mystic-water", TYPE_WATER, 30),
	ITEM_NEVERMELTICE:  typeItem("nevermeltice", TYPE_ICE, 30),
	ITEM_POISON_BARB:   typeItem("poison-barb", TYPE_POISON, 70),
	ITEM_SHARP_BEAK:    typeItem("sharp-beak", TYPE_FLYING, 50),
	ITEM_SILK_SCARF:    typeItem("silk-scarf", TYPE_NORMAL, 10),
	ITEM_SILVERPOWDER:  typeItem("silverpowder", TYPE_BUG, 10),
	ITEM_SOFT_SAND:     typeItem("soft-sand", TYPE_GROUND, 10),
	ITEM_SPELL_TAG:     typeItem("spell-tag", TYPE_GHOST, 30),
	ITEM_TWISTEDSPOON:  typeItem("twistedspoon", TYPE_PSYCHIC, 30),
	ITEM_CHESTO_BERRY:  berry("chesto-berry", TYPE_WATER, 60),
	ITEM_LUM_BERRY:     berry("lum-berry", TYPE_FLYING, 60),
	ITEM_SITRUS_BERRY:  berry("sitrus-berry", TYPE_PSYCHIC, 60),
	ITEM_BABIRI_BERRY:  resistBerry("babiri-berry", TYPE_STEEL),
	ITEM_CHARTI_BERRY:  resistBerry("charti-berry", TYPE_ROCK),
	ITEM_CHILAN_BERRY:  resistBerry("chilan-berry", TYPE_NORMAL),
	ITEM_CHOPLE_BERRY:  resistBerry("chople-berry", TYPE_FIGHTING),
	ITEM_COBA_BERRY:    resistBerry("coba-berry", TYPE_FLYING),
	ITEM_COLBUR_BERRY:  resistBerry("colbur-berry", TYPE_DARK),
	ITEM_HABAN_BERRY:   resistBerry("haban-berry", TYPE_DRAGON),
	ITEM_KASIB_BERRY:   resistBerry("kasib-berry", TYPE_GHOST),
	ITEM_KEBIA_BERRY:   resistBerry("kebia-berry", TYPE_POISON),
	ITEM_OCCA_BERRY:    resistBerry("occa-berry", TYPE_FIRE),
	ITEM_PASSHO_BERRY:  resistBerry("passho-berry", TYPE_WATER),
	ITEM_PAYAPA_BERRY:  resistBerry("payapa-berry", TYPE_PSYCHIC),
	ITEM_RINDO_BERRY:   resistBerry("rindo-berry", TYPE_GRASS),
	ITEM_SHUCA_BERRY:   resistBerry("shuca-berry", TYPE_GROUND),
	ITEM_TANGA_BERRY:   resistBerry("tanga-berry", TYPE_BUG),
	ITEM_WACAN_BERRY:   resistBerry("wacan-berry", TYPE_ELECTRIC),
	ITEM_YACHE_BERRY:   resistBerry("yache-berry", TYPE_ICE),
}

func init() {
	for i, data := range itemTable {
		if data.Name == "" {
			panic(fmt.Sprintf("item %d has no table row", i))
		}
	}
}

func (i Item) data() *itemData {
	if i < 0 || i >= itemCount {
		panic(fmt.Sprintf("unknown item %d", int(i)))
	}
	return &itemTable[i]
}

func (i Item) String() string {
	return i.data().Name
}

func (i Item) FlingPower() uint {
	return i.data().Fling
}

func (i Item) IsBerry() bool {
	return i.data().Berry
}

// NaturalGift returns the type and power Natural Gift takes from this berry.
func (i Item) NaturalGift() (Type, uint, bool) {
	d := i.data()
	return d.GiftType, d.GiftPower, d.Berry
}

func (i Item) TypeBoost() (Type, bool) {
	d := i.data()
	return d.Boost, d.HasBoost
}

func (i Item) ResistedType() (Type, bool) {
	d := i.data()
	return d.Resist, d.ResistBerry
}

func (i Item) IsChoice() bool {
	return i == ITEM_CHOICE_BAND || i == ITEM_CHOICE_SCARF || i == ITEM_CHOICE_SPECS
}

// HalvesSpeed covers the Macho Brace family and Iron Ball.
func (i Item) HalvesSpeed() bool {
	switch i {
	case ITEM_MACHO_BRACE, ITEM_IRON_BALL, ITEM_POWER_ANKLET, ITEM_POWER_BAND, ITEM_POWER_BELT,
		ITEM_POWER_BRACER, ITEM_POWER_LENS, ITEM_POWER_WEIGHT:
		return true
	}
	return false
}

// extendsWeather is the weather whose duration this rock raises from 5 to 8 turns.
func (i Item) extendsWeather() WeatherKind {
	switch i {
	case ITEM_DAMP_ROCK:
		return WEATHER_RAIN
	case ITEM_HEAT_ROCK:
		return WEATHER_SUN
	case ITEM_SMOOTH_ROCK:
		return WEATHER_SANDSTORM
	case ITEM_ICY_ROCK:
		return WEATHER_HAIL
	}
	return WEATHER_NONE
}

func ItemByName(name string) (Item, bool) {
	for i, data := range itemTable {
		if data.Name == name {
			return Item(i), true
		}
	}
	return ITEM_NONE, false
}
