package battle

type DamageClass int

const (
	CLASS_PHYSICAL DamageClass = iota
	CLASS_SPECIAL
	CLASS_STATUS
)

type Target int

const (
	TARGET_OPPONENT Target = iota
	TARGET_SELF
	// Moves that affect either side condition or the shared weather.
	TARGET_FIELD
)

type MoveFlags uint32

const (
	FLAG_CONTACT MoveFlags = 1 << iota
	FLAG_SOUND
	FLAG_PUNCH
	FLAG_HIGH_CRIT
	// The move leaves the target with at least 1 HP.
	FLAG_NON_LETHAL
	FLAG_THAWS_USER
	FLAG_USABLE_ASLEEP
	FLAG_RAIN_ACCURATE
	FLAG_HAIL_ACCURATE
	// Hits targets that are in the air from Fly or Bounce.
	FLAG_HITS_AIRBORNE
	FLAG_FIRST_TURN_ONLY
	// Halves the target's Defense for the damage calculation and faints the user.
	FLAG_SELF_DESTRUCT
	// Fails against targets immune to the move's type even though it deals no damage.
	FLAG_TYPE_IMMUNITY
	// Recoil is a quarter of the user's max HP instead of a part of the damage dealt.
	FLAG_MAX_HP_RECOIL
	FLAG_UNPROTECTABLE
)

// PowerRule computes base power from battle state. POWER_BASE uses the table value.
type PowerRule int

const (
	POWER_BASE PowerRule = iota
	POWER_CRUSH_GRIP
	POWER_ERUPTION
	POWER_FLAIL
	POWER_FLING
	POWER_RETURN
	POWER_FRUSTRATION
	POWER_WEIGHT
	POWER_GYRO_BALL
	POWER_HIDDEN_POWER
	POWER_MAGNITUDE
	POWER_NATURAL_GIFT
	POWER_PRESENT
	POWER_PUNISHMENT
	POWER_SPIT_UP
	POWER_TRUMP_CARD
	POWER_FURY_CUTTER
	POWER_ROLLOUT
	POWER_TRIPLE_KICK
	powerRuleCount
)

// ReadsUserHP reports rules whose result depends on the user's current or max HP.
func (r PowerRule) ReadsUserHP() bool {
	return r == POWER_ERUPTION || r == POWER_FLAIL
}

func (r PowerRule) ReadsUserSpeed() bool {
	return r == POWER_GYRO_BALL
}

// Doubler is a conditional power change applied after the power rule.
type Doubler int

const (
	DOUBLE_NONE Doubler = iota
	DOUBLE_BRINE
	DOUBLE_ASSURANCE
	DOUBLE_AVALANCHE
	DOUBLE_PAYBACK
	DOUBLE_FACADE
	DOUBLE_WEATHER_BALL
	DOUBLE_SMELLINGSALT
	DOUBLE_WAKE_UP_SLAP
	DOUBLE_STOMP
	DOUBLE_VS_UNDERGROUND
	DOUBLE_VS_UNDERWATER
	DOUBLE_VS_AIRBORNE
	// Solar Beam is halved in any weather other than sun.
	DOUBLE_SOLAR_BEAM
	doublerCount
)

// FixedRule moves skip the damage formula.
type FixedRule int

const (
	FIXED_NONE FixedRule = iota
	FIXED_LEVEL
	FIXED_20
	FIXED_40
	FIXED_HALF_HP
	FIXED_ENDEAVOR
	FIXED_PSYWAVE
	FIXED_OHKO
	FIXED_COUNTER
	FIXED_MIRROR_COAT
	FIXED_METAL_BURST
	FIXED_BIDE
	fixedRuleCount
)

// MoveData is one row of the move table.
type MoveData struct {
	Name     string
	Type     Type
	Class    DamageClass
	Target   Target
	Power    uint
	Accuracy uint // 0 never misses
	PP       int
	Priority int
	// Chance in percent that Effect applies. 0 means always.
	Probability uint
	Flags       MoveFlags
	PowerRule   PowerRule
	Doubler     Doubler
	Fixed       FixedRule
	// Drain is the percent of damage dealt that heals the user.
	Drain uint
	// Recoil is the divisor of damage dealt the user takes back.
	Recoil uint
	Effect MoveEffect
}

func (m *MoveData) Has(flag MoveFlags) bool {
	return m.Flags&flag != 0
}

// Damaging reports moves that go through the damage calculator.
func (m *MoveData) Damaging() bool {
	return m.Class != CLASS_STATUS
}

// Move is a move slot on a Pokemon.
type Move struct {
	Info *MoveData
	PP   int
	// Power is the base power computed for the latest use.
	Power     uint
	TimesUsed int
	Disabled  bool

	// Outcome inputs for the next use, set by the caller or by RollOutcomes.
	// Roll is the damage roll in [MIN_ROLL, MAX_ROLL]; 0 is read as MAX_ROLL.
	Roll uint
	// Variable selects the outcome of moves with a random component, such as
	// Magnitude's size or the status Tri Attack inflicts.
	Variable int
}

func NewMove(info *MoveData) Move {
	return Move{
		Info:  info,
		PP:    info.PP,
		Power: info.Power,
		Roll:  MAX_ROLL,
	}
}

func (m *Move) Name() string {
	return m.Info.Name
}

func (m *Move) Priority() int {
	return m.Info.Priority
}

func (m *Move) HasPP() bool {
	return m.PP == PP_UNLIMITED || m.PP > 0
}

func (m *Move) roll() uint {
	if m.Roll == 0 {
		return MAX_ROLL
	}
	return m.Roll
}

// decrementPP uses cost PP, never going below zero.
func (m *Move) decrementPP(cost int) {
	if m.PP == PP_UNLIMITED {
		return
	}
	m.PP = max(0, m.PP-cost)
}
