package battle

import (
	"errors"
	"fmt"
)

// StatValue is one of a Pokemon's stats. RawValue includes level, IV, EV and nature but not the stage.
type StatValue struct {
	RawValue uint
	Ev       uint
	Iv       uint
	Stage    int
}

// HpStat is a special version of StatValue without a stage.
type HpStat struct {
	Value uint
	Max   uint
	Ev    uint
	Iv    uint
}

// Volatiles are battle-scoped conditions that are lost when the Pokemon switches out,
// unless Baton Pass carries them. Counters count down to zero and are cleared at zero.
type Volatiles struct {
	Confusion   int
	Substitute  uint
	Taunt       int
	Encore      int
	Disable     int
	Yawn        int
	PerishSong  int
	PartialTrap int
	Embargo     int
	HealBlock   int
	MagnetRise  int
	Rampage     int
	Uproar      int
	Bide        int
	BideDamage  uint
	Stockpile   int
	SlowStart   int
	// turns spent on the field, used by Fake Out and Speed Boost
	ActiveTurns int

	Flinch      bool
	Protect     bool
	Endure      bool
	Recharging  bool
	Charging    bool
	Vanish      VanishKind
	LeechSeed   bool
	Curse       bool
	Nightmare   bool
	Attract     bool
	MeanLook    bool
	Identified  bool
	LockOn      bool
	FocusEnergy bool
	Ingrain     bool
	AquaRing    bool
	DestinyBond bool
	Charged     bool
	MudSport    bool
	WaterSport  bool
	Minimized   bool
	DefenseCurl bool
	PowerTrick  bool
	FlashFire   bool
	Roost       bool
	// Truant makes the Pokemon loaf on the turn after it acts.
	Loafing bool
	// Unburden doubles Speed after the held item is used up.
	Unburden bool
	// MeFirst boosts the next move by 50%.
	MeFirst bool
}

// batonPass keeps what Baton Pass transfers and drops the rest.
func (v Volatiles) batonPass() Volatiles {
	return Volatiles{
		Confusion:   v.Confusion,
		Substitute:  v.Substitute,
		PerishSong:  v.PerishSong,
		Embargo:     v.Embargo,
		HealBlock:   v.HealBlock,
		MagnetRise:  v.MagnetRise,
		LeechSeed:   v.LeechSeed,
		Curse:       v.Curse,
		MeanLook:    v.MeanLook,
		LockOn:      v.LockOn,
		FocusEnergy: v.FocusEnergy,
		Ingrain:     v.Ingrain,
		AquaRing:    v.AquaRing,
		PowerTrick:  v.PowerTrick,
	}
}

// Pokemon is a member of a team, together with everything it carries in battle.
type Pokemon struct {
	Species   *Species
	Nickname  string
	Level     uint
	Nature    Nature
	Gender    Gender
	Happiness uint
	Ability   Ability
	Item      Item
	Hp        HpStat
	Attack    StatValue
	Def       StatValue
	SpAttack  StatValue
	SpDef     StatValue
	RawSpeed  StatValue

	AccuracyStage int
	EvasionStage  int

	Status     Status
	SleepCount int
	ToxicCount int

	Moves        []Move
	SelectedMove int
	Vol          Volatiles
}

var (
	ErrNoMoves         = errors.New("a pokemon needs between 1 and 4 moves")
	ErrEvOutOfRange    = errors.New("ev out of range")
	ErrIvOutOfRange    = errors.New("iv out of range")
	ErrLevelOutOfRange = errors.New("level out of range")
)

func (p *Pokemon) Name() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Species.Name
}

// Validate checks the invariants of a team member built outside of the builder.
func (p *Pokemon) Validate() error {
	if len(p.Moves) == 0 || len(p.Moves) > 4 {
		return fmt.Errorf("%s: %w", p.Name(), ErrNoMoves)
	}
	if p.Level == 0 || p.Level > MAX_LEVEL {
		return fmt.Errorf("%s: %w: %d", p.Name(), ErrLevelOutOfRange, p.Level)
	}
	for _, iv := range p.Ivs() {
		if iv > MAX_IV {
			return fmt.Errorf("%s: %w: %d", p.Name(), ErrIvOutOfRange, iv)
		}
	}
	for _, ev := range p.Evs() {
		if ev > MAX_EV {
			return fmt.Errorf("%s: %w: %d", p.Name(), ErrEvOutOfRange, ev)
		}
	}
	if p.GetCurrentEvTotal() > MAX_TOTAL_EV {
		return fmt.Errorf("%s: %w: total %d", p.Name(), ErrEvOutOfRange, p.GetCurrentEvTotal())
	}
	if p.Hp.Value > p.Hp.Max {
		return fmt.Errorf("%s: hp %d above max %d", p.Name(), p.Hp.Value, p.Hp.Max)
	}
	return nil
}

// ReCalcStats derives every stat from species, level, IVs, EVs and nature. Current HP keeps its
// fraction of max HP, so a Pokemon at full health stays at full health.
func (p *Pokemon) ReCalcStats() {
	oldMax := p.Hp.Max
	if p.Species.Hp == 1 {
		p.Hp.Max = 1
	} else {
		p.Hp.Max = (2*p.Species.Hp+p.Hp.Iv+p.Hp.Ev)*p.Level/100 + p.Level + 10
	}
	switch {
	case oldMax == 0 || p.Hp.Value >= oldMax:
		p.Hp.Value = p.Hp.Max
	case p.Hp.Value > 0:
		p.Hp.Value = max(1, p.Hp.Max*p.Hp.Value/oldMax)
	}

	p.Attack.RawValue = calcStat(p.Species.Attack, p.Level, p.Attack.Iv, p.Attack.Ev, p.Nature, STAT_ATTACK)
	p.Def.RawValue = calcStat(p.Species.Def, p.Level, p.Def.Iv, p.Def.Ev, p.Nature, STAT_DEFENSE)
	p.SpAttack.RawValue = calcStat(p.Species.SpAttack, p.Level, p.SpAttack.Iv, p.SpAttack.Ev, p.Nature, STAT_SPATTACK)
	p.SpDef.RawValue = calcStat(p.Species.SpDef, p.Level, p.SpDef.Iv, p.SpDef.Ev, p.Nature, STAT_SPDEF)
	p.RawSpeed.RawValue = calcStat(p.Species.Speed, p.Level, p.RawSpeed.Iv, p.RawSpeed.Ev, p.Nature, STAT_SPEED)
}

func calcStat(base uint, level uint, iv uint, ev uint, nature Nature, stat Stat) uint {
	value := (2*base+iv+ev)*level/100 + 5
	return nature.Modify(stat, value)
}

// Evs are in the order HP, Attack, Defense, SpAttack, SpDef, Speed.
func (p *Pokemon) Evs() [6]uint {
	return [6]uint{p.Hp.Ev, p.Attack.Ev, p.Def.Ev, p.SpAttack.Ev, p.SpDef.Ev, p.RawSpeed.Ev}
}

func (p *Pokemon) Ivs() [6]uint {
	return [6]uint{p.Hp.Iv, p.Attack.Iv, p.Def.Iv, p.SpAttack.Iv, p.SpDef.Iv, p.RawSpeed.Iv}
}

func (p *Pokemon) SetEvs(evs [6]uint) {
	p.Hp.Ev, p.Attack.Ev, p.Def.Ev, p.SpAttack.Ev, p.SpDef.Ev, p.RawSpeed.Ev = evs[0], evs[1], evs[2], evs[3], evs[4], evs[5]
}

func (p *Pokemon) SetIvs(ivs [6]uint) {
	p.Hp.Iv, p.Attack.Iv, p.Def.Iv, p.SpAttack.Iv, p.SpDef.Iv, p.RawSpeed.Iv = ivs[0], ivs[1], ivs[2], ivs[3], ivs[4], ivs[5]
}

func (p *Pokemon) GetCurrentEvTotal() uint {
	total := uint(0)
	for _, ev := range p.Evs() {
		total += ev
	}
	return total
}

func (p *Pokemon) Alive() bool {
	return p.Hp.Value > 0
}

func (p *Pokemon) FullHp() bool {
	return p.Hp.Value == p.Hp.Max
}

// Damage lowers HP by dmg, stopping at 0.
func (p *Pokemon) Damage(dmg uint) {
	if dmg >= p.Hp.Value {
		p.Hp.Value = 0
		return
	}
	p.Hp.Value -= dmg
}

// DamageFraction removes num/den of max HP, at least 1.
func (p *Pokemon) DamageFraction(num uint, den uint) {
	p.Damage(max(1, p.Hp.Max*num/den))
}

// Heal raises HP by heal, stopping at max. Heal Block stops it entirely.
func (p *Pokemon) Heal(heal uint) {
	if p.Vol.HealBlock > 0 || !p.Alive() {
		return
	}
	p.Hp.Value = min(p.Hp.Max, p.Hp.Value+heal)
}

// HealFraction restores num/den of max HP, at least 1.
func (p *Pokemon) HealFraction(num uint, den uint) {
	p.Heal(max(1, p.Hp.Max*num/den))
}

func (p *Pokemon) Faint() {
	p.Hp.Value = 0
}

// Types returns the current typing. Roost removes Flying for the rest of the turn.
func (p *Pokemon) Types() (Type, Type) {
	t1, t2 := p.Species.Type1, p.Species.Type2
	if p.Vol.Roost {
		if t1 == TYPE_FLYING {
			t1 = t2
			t2 = TYPE_TYPELESS
			if t1 == TYPE_TYPELESS {
				t1 = TYPE_NORMAL
			}
		} else if t2 == TYPE_FLYING {
			t2 = TYPE_TYPELESS
		}
	}
	return t1, t2
}

func (p *Pokemon) HasType(t Type) bool {
	t1, t2 := p.Types()
	return t1 == t || (t2 != TYPE_TYPELESS && t2 == t)
}

// Grounded reports whether Ground moves, Spikes and Arena Trap reach the Pokemon.
func (p *Pokemon) Grounded(weather *Weather) bool {
	if weather.Gravity > 0 || p.Item == ITEM_IRON_BALL || p.Vol.Ingrain {
		return true
	}
	return !p.HasType(TYPE_FLYING) && p.Ability != ABILITY_LEVITATE && p.Vol.MagnetRise == 0
}

// ActiveMove is the selected move slot. A Pokemon with no moves has nothing to select, which is a programming error.
func (p *Pokemon) ActiveMove() *Move {
	if p.SelectedMove < 0 || p.SelectedMove >= len(p.Moves) {
		panic(fmt.Sprintf("%s: selected move %d out of %d", p.Name(), p.SelectedMove, len(p.Moves)))
	}
	return &p.Moves[p.SelectedMove]
}

// SelectMove picks the move slot the Pokemon uses next.
func (p *Pokemon) SelectMove(index int) {
	if index < 0 || index >= len(p.Moves) {
		panic(fmt.Sprintf("%s: move %d out of %d", p.Name(), index, len(p.Moves)))
	}
	p.SelectedMove = index
}

// stat returns the stage carrying record for s. HP, accuracy and evasion have none.
func (p *Pokemon) stat(s Stat) *StatValue {
	switch s {
	case STAT_ATTACK:
		return &p.Attack
	case STAT_DEFENSE:
		return &p.Def
	case STAT_SPATTACK:
		return &p.SpAttack
	case STAT_SPDEF:
		return &p.SpDef
	case STAT_SPEED:
		return &p.RawSpeed
	}
	panic(fmt.Sprintf("stat %s has no stage record", s))
}

func (p *Pokemon) Stage(s Stat) int {
	switch s {
	case STAT_ACCURACY:
		return p.AccuracyStage
	case STAT_EVASION:
		return p.EvasionStage
	}
	return p.stat(s).Stage
}

// ChangeStage moves a stage by change, doubled for Simple, clamped to [-6, 6].
// It reports whether the stage moved.
func (p *Pokemon) ChangeStage(s Stat, change int) bool {
	if p.Ability == ABILITY_SIMPLE {
		change *= 2
	}
	var stage *int
	switch s {
	case STAT_ACCURACY:
		stage = &p.AccuracyStage
	case STAT_EVASION:
		stage = &p.EvasionStage
	default:
		stage = &p.stat(s).Stage
	}
	old := *stage
	*stage = clampStage(old + change)
	return *stage != old
}

// ClearStages resets every stage to 0.
func (p *Pokemon) ClearStages() {
	p.Attack.Stage = 0
	p.Def.Stage = 0
	p.SpAttack.Stage = 0
	p.SpDef.Stage = 0
	p.RawSpeed.Stage = 0
	p.AccuracyStage = 0
	p.EvasionStage = 0
}

// stages copies the seven stage values in Stat order, skipping HP.
func (p *Pokemon) stages() [7]int {
	return [7]int{p.Attack.Stage, p.Def.Stage, p.SpAttack.Stage, p.SpDef.Stage, p.RawSpeed.Stage, p.AccuracyStage, p.EvasionStage}
}

func (p *Pokemon) setStages(s [7]int) {
	p.Attack.Stage, p.Def.Stage, p.SpAttack.Stage, p.SpDef.Stage, p.RawSpeed.Stage = s[0], s[1], s[2], s[3], s[4]
	p.AccuracyStage, p.EvasionStage = s[5], s[6]
}

// loseItem removes the held item, which also wakes Unburden.
func (p *Pokemon) loseItem() {
	if p.Item == ITEM_NONE {
		return
	}
	p.Item = ITEM_NONE
	if p.Ability == ABILITY_UNBURDEN {
		p.Vol.Unburden = true
	}
}

// itemActive reports whether the held item works. Embargo suppresses it.
func (p *Pokemon) itemActive(item Item) bool {
	return p.Item == item && p.Vol.Embargo == 0
}

// HiddenPower derives Hidden Power's type and power from the IVs.
// Bits are read in the order HP, Attack, Defense, Speed, SpAttack, SpDef.
func (p *Pokemon) HiddenPower() (Type, uint) {
	ivs := [6]uint{p.Hp.Iv, p.Attack.Iv, p.Def.Iv, p.RawSpeed.Iv, p.SpAttack.Iv, p.SpDef.Iv}
	typeSum, powerSum := uint(0), uint(0)
	for i, iv := range ivs {
		typeSum += (iv & 1) << i
		powerSum += ((iv >> 1) & 1) << i
	}
	return Type(typeSum*15/63) + TYPE_FIGHTING, powerSum*40/63 + 30
}
