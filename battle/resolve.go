package battle

const (
	TAUNT_TURNS       = 3
	ENCORE_TURNS      = 3
	DISABLE_TURNS     = 4
	YAWN_TURNS        = 2
	PERISH_TURNS      = 4
	TRAP_TURNS        = 4
	EMBARGO_TURNS     = 5
	HEAL_BLOCK_TURNS  = 5
	MAGNET_RISE_TURNS = 5
	UPROAR_TURNS      = 3
	BIDE_TURNS        = 2
	REST_TURNS        = 3
	SLEEP_DEFAULT     = 3
	MAX_STOCKPILE     = 3
)

// moveContext is one use of a move. It borrows both teams for the length of ResolveMove.
type moveContext struct {
	user    *Team
	target  *Team
	weather *Weather
	move    *Move
	info    *MoveData
	poke    *Pokemon

	damage uint
	// a substitute took the hit, so nothing else reaches the target
	hitSubstitute bool
}

func (ctx *moveContext) attackPokemon() *Pokemon {
	return ctx.user.GetActivePokemon()
}

func (ctx *moveContext) defPokemon() *Pokemon {
	return ctx.target.GetActivePokemon()
}

// effectHandler applies the part of a move that is not damage. An effect that cannot apply does nothing.
type effectHandler func(ctx *moveContext)

// prepareHandler runs before anything can miss. Returning false ends the use there, as on
// the first turn of a two-turn move.
type prepareHandler func(ctx *moveContext) bool

var effectHandlers = [effectKindCount]effectHandler{
	EFFECT_NONE:         func(*moveContext) {},
	EFFECT_BOOST_SELF:   boostSelfHandler,
	EFFECT_BOOST_TARGET: boostTargetHandler,
	EFFECT_INFLICT:      inflictHandler,
	EFFECT_FIELD:        fieldHandler,
	EFFECT_SWAP:         swapHandler,
	EFFECT_SWITCH:       switchHandler,
	EFFECT_COMMIT:       commitHandler,
	EFFECT_VANISH:       func(*moveContext) {},
	EFFECT_CONDITIONAL:  conditionalHandler,
	EFFECT_HEAL:         healHandler,
	EFFECT_CURE:         cureHandler,
}

var prepareHandlers = [effectKindCount]prepareHandler{
	EFFECT_COMMIT: prepareCommit,
	EFFECT_VANISH: prepareVanish,
}

// ResolveMove executes the selected move of user's active Pokemon against target and returns the damage dealt.
// A move with no PP left becomes Struggle.
func ResolveMove(user, target *Team, weather *Weather) uint {
	poke := user.GetActivePokemon()
	move := poke.ActiveMove()
	if !move.HasPP() {
		struggle := NewMove(&struggleData)
		struggle.Roll, struggle.Variable = move.Roll, move.Variable
		move = &struggle
	}

	ctx := &moveContext{user: user, target: target, weather: weather, move: move, info: move.Info, poke: poke}
	ctx.run()
	user.Moved = true
	return ctx.damage
}

func (ctx *moveContext) run() {
	log := resolveLogger().WithValues("team", ctx.user.Name, "pokemon", ctx.poke.Name(), "move", ctx.info.Name)
	a := ctx.attackPokemon()
	d := ctx.defPokemon()

	ctx.spendPP()

	if prepare := prepareHandlers[ctx.info.Effect.Kind]; prepare != nil && !prepare(ctx) {
		log.V(1).Info("Preparing")
		return
	}

	if ctx.info.Target == TARGET_OPPONENT {
		if !d.Alive() {
			ctx.fail("no target")
			return
		}
		if d.Vol.Protect && !ctx.info.Has(FLAG_UNPROTECTABLE) {
			ctx.fail("protected")
			return
		}
		if !ctx.reachesVanished() {
			ctx.fail("target out of reach")
			return
		}
		chance := chanceToHit(ctx.user, ctx.target, ctx.weather, ctx.info)
		if chance == 0 || (chance < 100 && ctx.user.Miss) {
			ctx.fail("missed")
			return
		}
		if !ctx.info.Damaging() && d.Vol.Substitute > 0 && ctx.info.Effect.Kind != EFFECT_SWITCH {
			ctx.fail("blocked by substitute")
			return
		}
		if !ctx.info.Damaging() && ctx.info.Has(FLAG_TYPE_IMMUNITY) {
			moveType := MoveType(a, ctx.info, ctx.weather.Active(a, d))
			e1, e2 := effectiveness(moveType, a, d, ctx.weather)
			if e1*e2 == 0 || absorbs(d, moveType) {
				ctx.fail("no effect")
				return
			}
		}
	}

	if ctx.info.Has(FLAG_FIRST_TURN_ONLY) && a.Vol.ActiveTurns > 0 {
		ctx.fail("not the first turn")
		return
	}

	if ctx.info.Damaging() {
		ctx.move.Power = movePower(ctx.user, ctx.move, ctx.target, ctx.weather)
		if !ctx.strike() {
			ctx.fail("no effect")
			return
		}
	}

	if ctx.effectApplies() {
		log.V(1).Info("Effect", "kind", ctx.info.Effect.Kind)
		effectHandlers[ctx.info.Effect.Kind](ctx)
	}
	ctx.finish()
}

// spendPP charges one PP, two against Pressure. Turns that continue an earlier use are free.
func (ctx *moveContext) spendPP() {
	a := ctx.attackPokemon()
	if a.Vol.Vanish != VANISH_NONE || a.Vol.Charging || a.Vol.Rampage > 0 || a.Vol.Uproar > 0 || a.Vol.Bide > 0 {
		return
	}
	cost := 1
	if d := ctx.defPokemon(); d.Alive() && d.Ability == ABILITY_PRESSURE {
		cost = 2
	}
	ctx.move.decrementPP(cost)
}

func (ctx *moveContext) reachesVanished() bool {
	a := ctx.attackPokemon()
	d := ctx.defPokemon()
	if a.Ability == ABILITY_NO_GUARD || d.Ability == ABILITY_NO_GUARD || a.Vol.LockOn {
		return d.Vol.Vanish != VANISH_SHADOW_FORCE
	}
	switch d.Vol.Vanish {
	case VANISH_NONE:
		return true
	case VANISH_DIG:
		return ctx.info.Doubler == DOUBLE_VS_UNDERGROUND
	case VANISH_DIVE:
		return ctx.info.Doubler == DOUBLE_VS_UNDERWATER
	case VANISH_FLY:
		return ctx.info.Doubler == DOUBLE_VS_AIRBORNE || ctx.info.Has(FLAG_HITS_AIRBORNE)
	}
	return false
}

func (ctx *moveContext) effectApplies() bool {
	if ctx.info.Effect.Kind == EFFECT_NONE {
		return false
	}
	if ctx.hitSubstitute && touchesTarget(ctx.info) {
		return false
	}
	return ctx.info.Probability == 0 || ctx.user.Secondary
}

// touchesTarget reports effects that act on the opposing Pokemon rather than the user or the field.
func touchesTarget(info *MoveData) bool {
	switch info.Effect.Kind {
	case EFFECT_BOOST_TARGET:
		return true
	case EFFECT_INFLICT:
		return info.Target == TARGET_OPPONENT
	case EFFECT_CONDITIONAL:
		switch info.Effect.Conditional {
		case COND_SELF_KO, COND_CLEAR_STOCKPILE, COND_RAPID_SPIN:
			return false
		}
		return true
	}
	return false
}

// strike deals the damage of the move. It reports false when the move had no effect.
func (ctx *moveContext) strike() bool {
	d := ctx.defPokemon()
	profile := profileFor(ctx.user, ctx.move, ctx.target, ctx.weather, ctx.move.Power)
	if profile.Immune {
		if absorbs(d, profile.Type) {
			ctx.absorb()
		}
		return false
	}

	dmg := RandomDamage(profile, ctx.move.roll())
	ctx.applyDamage(dmg, profile)
	ctx.afterDamage()
	return true
}

// absorb gives the defender what its ability takes from a move it is immune to.
func (ctx *moveContext) absorb() {
	d := ctx.defPokemon()
	switch d.Ability {
	case ABILITY_VOLT_ABSORB, ABILITY_WATER_ABSORB, ABILITY_DRY_SKIN:
		d.HealFraction(1, 4)
	case ABILITY_MOTOR_DRIVE:
		d.ChangeStage(STAT_SPEED, 1)
	case ABILITY_FLASH_FIRE:
		d.Vol.FlashFire = true
	}
	resolveLogger().V(1).Info("Absorbed", "pokemon", d.Name(), "ability", d.Ability)
}

func (ctx *moveContext) applyDamage(dmg uint, profile DamageProfile) {
	a := ctx.attackPokemon()
	d := ctx.defPokemon()

	if d.Vol.Substitute > 0 {
		absorbed := min(dmg, d.Vol.Substitute)
		d.Vol.Substitute -= absorbed
		ctx.hitSubstitute = true
		ctx.damage = absorbed
		resolveLogger().V(1).Info("Substitute hit", "damage", absorbed, "remaining", d.Vol.Substitute)
		return
	}

	if dmg >= d.Hp.Value && d.FullHp() && d.Hp.Value > 1 && d.itemActive(ITEM_FOCUS_SASH) {
		dmg = d.Hp.Value - 1
		d.loseItem()
	}

	d.Damage(dmg)
	ctx.damage = dmg
	ctx.target.Damaged = true
	ctx.target.DamageTaken = dmg
	ctx.target.DamageTakenPhysical = ctx.info.Class == CLASS_PHYSICAL
	if d.Vol.Bide > 0 {
		d.Vol.BideDamage += dmg
	}
	if profile.ResistBerry > 1 {
		d.loseItem()
	}

	resolveLogger().Info("Damage", "attacker", a.Name(), "defender", d.Name(), "damage", dmg, "crit", profile.Crit)

	if !d.Alive() {
		if d.Vol.DestinyBond {
			a.Faint()
		}
		return
	}
	checkBerry(d)
}

// afterDamage covers drain, recoil and held items that react to the hit.
func (ctx *moveContext) afterDamage() {
	a := ctx.attackPokemon()
	d := ctx.defPokemon()

	if ctx.info.Drain > 0 && ctx.damage > 0 {
		drained := max(1, ctx.damage*ctx.info.Drain/100)
		if d.Ability == ABILITY_LIQUID_OOZE {
			a.Damage(drained)
		} else {
			a.Heal(drained)
		}
	}
	if ctx.info.Recoil > 0 {
		Recoil(a, ctx.damage, ctx.info.Recoil)
	}
	// Struggle recoil ignores Rock Head.
	if ctx.info.Has(FLAG_MAX_HP_RECOIL) {
		a.DamageFraction(1, 4)
	}
	if a.itemActive(ITEM_LIFE_ORB) && !a.Ability.BlocksIndirectDamage() {
		a.DamageFraction(1, 10)
	}
	if a.itemActive(ITEM_SHELL_BELL) && ctx.damage > 0 {
		a.Heal(max(1, ctx.damage/8))
	}
	if ctx.info.PowerRule == POWER_FLING || ctx.info.PowerRule == POWER_NATURAL_GIFT {
		a.loseItem()
	}
}

// fail ends the use without effect. It breaks any chain of consecutive uses.
func (ctx *moveContext) fail(reason string) {
	resolveLogger().V(1).Info("Move failed", "move", ctx.info.Name, "reason", reason)
	ctx.move.TimesUsed = 0
	a := ctx.attackPokemon()
	a.Vol.Rampage = 0
	a.Vol.Vanish = VANISH_NONE
	a.Vol.Charging = false
}

func (ctx *moveContext) finish() {
	a := ctx.attackPokemon()
	if a != ctx.poke {
		return
	}
	for i := range a.Moves {
		if &a.Moves[i] != ctx.move {
			a.Moves[i].TimesUsed = 0
		}
	}
	ctx.move.TimesUsed++
	if ctx.info.Target == TARGET_OPPONENT {
		a.Vol.LockOn = false
	}
	a.Vol.MeFirst = false
	if ctx.info.Type == TYPE_ELECTRIC && ctx.info.Damaging() {
		a.Vol.Charged = false
	}
}

func prepareVanish(ctx *moveContext) bool {
	a := ctx.attackPokemon()
	if a.Vol.Vanish != VANISH_NONE {
		a.Vol.Vanish = VANISH_NONE
		return true
	}
	a.Vol.Vanish = ctx.info.Effect.Vanish
	return false
}

func prepareCommit(ctx *moveContext) bool {
	a := ctx.attackPokemon()
	switch ctx.info.Effect.Commit {
	case COMMIT_CHARGE:
		if a.Vol.Charging || ctx.weather.Active(a, ctx.defPokemon()) == WEATHER_SUN {
			a.Vol.Charging = false
			return true
		}
		a.Vol.Charging = true
		return false
	case COMMIT_BIDE:
		if a.Vol.Bide == 0 {
			a.Vol.Bide = BIDE_TURNS
			a.Vol.BideDamage = 0
			return false
		}
		return decrement(&a.Vol.Bide)
	}
	return true
}

func boostSelfHandler(ctx *moveContext) {
	a := ctx.attackPokemon()
	for _, b := range ctx.info.Effect.Boosts {
		a.ChangeStage(b.Stat, b.Stages)
	}
}

func boostTargetHandler(ctx *moveContext) {
	d := ctx.defPokemon()
	if !d.Alive() {
		return
	}
	for _, b := range ctx.info.Effect.Boosts {
		if b.Stages < 0 && blocksDrop(ctx.target, b.Stat) {
			continue
		}
		d.ChangeStage(b.Stat, b.Stages)
	}
	if v := ctx.info.Effect.Volatile; v != VOL_NONE {
		applyVolatile(ctx, ctx.target, v)
	}
}

// blocksDrop reports whether the active Pokemon of t shrugs off a drop to stat.
func blocksDrop(t *Team, stat Stat) bool {
	p := t.GetActivePokemon()
	switch {
	case t.Side.Mist > 0, p.Ability.BlocksStatDrops():
		return true
	case p.Ability == ABILITY_HYPER_CUTTER:
		return stat == STAT_ATTACK
	case p.Ability == ABILITY_KEEN_EYE:
		return stat == STAT_ACCURACY
	}
	return false
}

func inflictHandler(ctx *moveContext) {
	e := ctx.info.Effect
	if e.Status != STATUS_NONE {
		inflict(ctx.target, ctx.user, e.Status, ctx.weather, sleepTurns(ctx.move.Variable))
		return
	}

	switch ctx.info.Target {
	case TARGET_SELF:
		if applyVolatile(ctx, ctx.user, e.Volatile) {
			for _, b := range e.Boosts {
				ctx.attackPokemon().ChangeStage(b.Stat, b.Stages)
			}
		}
	case TARGET_FIELD:
		applyVolatile(ctx, ctx.user, e.Volatile)
		applyVolatile(ctx, ctx.target, e.Volatile)
	default:
		applyVolatile(ctx, ctx.target, e.Volatile)
	}
}

// sleepTurns reads a move's variable as a sleep counter of 2 to 5, which keeps the
// Pokemon from moving for 1 to 4 turns.
func sleepTurns(variable int) int {
	return 2 + max(0, variable)%4
}

// applyVolatile gives the active Pokemon of t the volatile kind. It reports whether the
// volatile took hold, which decides if boosts that come with it apply.
func applyVolatile(ctx *moveContext, t *Team, kind VolatileKind) bool {
	p := t.GetActivePokemon()
	if !p.Alive() {
		return false
	}
	v := &p.Vol
	opponent := ctx.user.GetActivePokemon()

	switch kind {
	case VOL_CONFUSION:
		if v.Confusion > 0 || p.Ability == ABILITY_OWN_TEMPO {
			return false
		}
		v.Confusion = CONFUSION_DEFAULT
		if ctx.user.ConfusionLength > 0 {
			v.Confusion = ctx.user.ConfusionLength
		}
	case VOL_FLINCH:
		if p.Ability == ABILITY_INNER_FOCUS {
			return false
		}
		v.Flinch = true
	case VOL_LEECH_SEED:
		if v.LeechSeed || p.HasType(TYPE_GRASS) {
			return false
		}
		v.LeechSeed = true
	case VOL_ATTRACT:
		if v.Attract || p.Ability == ABILITY_OBLIVIOUS || p.Gender == GENDER_GENDERLESS || opponent.Gender == GENDER_GENDERLESS || p.Gender == opponent.Gender {
			return false
		}
		v.Attract = true
	case VOL_TAUNT:
		if v.Taunt > 0 {
			return false
		}
		v.Taunt = TAUNT_TURNS
	case VOL_ENCORE:
		if v.Encore > 0 || p.ActiveMove().TimesUsed == 0 {
			return false
		}
		v.Encore = ENCORE_TURNS
	case VOL_DISABLE:
		move := p.ActiveMove()
		if v.Disable > 0 || move.TimesUsed == 0 {
			return false
		}
		move.Disabled = true
		v.Disable = DISABLE_TURNS
	case VOL_YAWN:
		if v.Yawn > 0 || p.Status != STATUS_NONE {
			return false
		}
		v.Yawn = YAWN_TURNS
	case VOL_CURSE:
		if !p.HasType(TYPE_GHOST) {
			return true
		}
		target := ctx.defPokemon()
		if !target.Alive() || target.Vol.Curse {
			return false
		}
		p.DamageFraction(1, 2)
		target.Vol.Curse = true
		return false
	case VOL_NIGHTMARE:
		if v.Nightmare || !p.Status.Asleep() {
			return false
		}
		v.Nightmare = true
	case VOL_PERISH_SONG:
		if v.PerishSong > 0 || p.Ability == ABILITY_SOUNDPROOF {
			return false
		}
		v.PerishSong = PERISH_TURNS
	case VOL_PARTIAL_TRAP:
		if v.PartialTrap > 0 {
			return false
		}
		v.PartialTrap = TRAP_TURNS
	case VOL_MEAN_LOOK:
		v.MeanLook = true
	case VOL_EMBARGO:
		if v.Embargo > 0 {
			return false
		}
		v.Embargo = EMBARGO_TURNS
	case VOL_HEAL_BLOCK:
		if v.HealBlock > 0 {
			return false
		}
		v.HealBlock = HEAL_BLOCK_TURNS
	case VOL_IDENTIFIED:
		v.Identified = true
	case VOL_LOCK_ON:
		v.LockOn = true
	case VOL_SUBSTITUTE:
		cost := max(1, p.Hp.Max/4)
		if v.Substitute > 0 || p.Hp.Value <= cost {
			return false
		}
		p.Damage(cost)
		v.Substitute = cost
	case VOL_PROTECT:
		v.Protect = true
	case VOL_ENDURE:
		v.Endure = true
	case VOL_FOCUS_ENERGY:
		if v.FocusEnergy {
			return false
		}
		v.FocusEnergy = true
	case VOL_INGRAIN:
		if v.Ingrain {
			return false
		}
		v.Ingrain = true
	case VOL_AQUA_RING:
		if v.AquaRing {
			return false
		}
		v.AquaRing = true
	case VOL_MAGNET_RISE:
		if v.MagnetRise > 0 || v.Ingrain || ctx.weather.Gravity > 0 {
			return false
		}
		v.MagnetRise = MAGNET_RISE_TURNS
	case VOL_DESTINY_BOND:
		v.DestinyBond = true
	case VOL_CHARGE:
		v.Charged = true
	case VOL_MUD_SPORT:
		v.MudSport = true
	case VOL_WATER_SPORT:
		v.WaterSport = true
	case VOL_STOCKPILE:
		if v.Stockpile >= MAX_STOCKPILE {
			return false
		}
		v.Stockpile++
	case VOL_MINIMIZE:
		v.Minimized = true
	case VOL_DEFENSE_CURL:
		v.DefenseCurl = true
	default:
		panic("unhandled volatile for " + ctx.info.Name)
	}
	resolveLogger().V(1).Info("Volatile", "pokemon", p.Name(), "kind", int(kind))
	return true
}

// inflict is the single way a major status lands. It reports whether the status took hold.
func inflict(target, source *Team, status Status, weather *Weather, sleepTurns int) bool {
	p := target.GetActivePokemon()
	if !p.Alive() || p.Status != STATUS_NONE {
		return false
	}
	if target != source && target.Side.Safeguard > 0 {
		return false
	}
	active := weather.Active(p, source.GetActivePokemon())
	if p.Ability == ABILITY_LEAF_GUARD && active == WEATHER_SUN {
		return false
	}

	switch status {
	case STATUS_BURN:
		if p.HasType(TYPE_FIRE) || p.Ability == ABILITY_WATER_VEIL {
			return false
		}
	case STATUS_FREEZE:
		if p.HasType(TYPE_ICE) || p.Ability == ABILITY_MAGMA_ARMOR || active == WEATHER_SUN {
			return false
		}
	case STATUS_PARA:
		if p.Ability == ABILITY_LIMBER {
			return false
		}
	case STATUS_POISON, STATUS_TOXIC:
		if p.HasType(TYPE_POISON) || p.HasType(TYPE_STEEL) || p.Ability == ABILITY_IMMUNITY {
			return false
		}
	case STATUS_SLEEP, STATUS_REST:
		if p.Ability == ABILITY_INSOMNIA || p.Ability == ABILITY_VITAL_SPIRIT || weather.Uproar > 0 {
			return false
		}
	default:
		panic("cannot inflict status " + status.String())
	}

	p.Status = status
	switch status {
	case STATUS_TOXIC:
		p.ToxicCount = 1
	case STATUS_SLEEP, STATUS_REST:
		if sleepTurns <= 0 {
			sleepTurns = SLEEP_DEFAULT
		}
		p.SleepCount = sleepTurns
	}
	resolveLogger().V(1).Info("Status", "pokemon", p.Name(), "status", status)

	if p.Ability == ABILITY_SYNCHRONIZE && target != source {
		switch status {
		case STATUS_BURN, STATUS_PARA, STATUS_POISON, STATUS_TOXIC:
			inflict(source, target, status, weather, 0)
		}
	}
	checkBerry(p)
	return true
}

// checkBerry eats a held berry whose trigger is met.
func checkBerry(p *Pokemon) {
	if !p.Alive() || p.Vol.Embargo > 0 {
		return
	}
	switch p.Item {
	case ITEM_SITRUS_BERRY:
		if p.Hp.Value*2 > p.Hp.Max {
			return
		}
	case ITEM_LUM_BERRY:
		if p.Status == STATUS_NONE && p.Vol.Confusion == 0 {
			return
		}
	case ITEM_CHESTO_BERRY:
		if !p.Status.Asleep() {
			return
		}
	default:
		return
	}
	eatBerry(p, p.Item)
	p.loseItem()
}

// eatBerry applies the effect of berry to p without touching what p holds.
func eatBerry(p *Pokemon, berry Item) {
	switch berry {
	case ITEM_SITRUS_BERRY:
		p.HealFraction(1, 4)
	case ITEM_LUM_BERRY:
		p.Status = STATUS_NONE
		p.SleepCount = 0
		p.Vol.Confusion = 0
	case ITEM_CHESTO_BERRY:
		if p.Status.Asleep() {
			p.Status = STATUS_NONE
			p.SleepCount = 0
		}
	}
}

func fieldHandler(ctx *moveContext) {
	a := ctx.attackPokemon()
	own := &ctx.user.Side
	foe := &ctx.target.Side

	switch ctx.info.Effect.Field {
	case FIELD_REFLECT:
		startCounter(&own.Reflect, SCREEN_TURNS)
	case FIELD_LIGHT_SCREEN:
		startCounter(&own.LightScreen, SCREEN_TURNS)
	case FIELD_SAFEGUARD:
		startCounter(&own.Safeguard, SCREEN_TURNS)
	case FIELD_MIST:
		startCounter(&own.Mist, SCREEN_TURNS)
	case FIELD_TAILWIND:
		startCounter(&own.Tailwind, TAILWIND_TURNS)
	case FIELD_LUCKY_CHANT:
		startCounter(&own.LuckyChant, SCREEN_TURNS)
	case FIELD_WISH:
		if startCounter(&own.Wish, WISH_TURNS) {
			own.WishHeal = max(1, a.Hp.Max/2)
		}
	case FIELD_SPIKES:
		foe.Spikes = min(MAX_SPIKES, foe.Spikes+1)
	case FIELD_TOXIC_SPIKES:
		foe.ToxicSpikes = min(MAX_TOXIC_SPIKES, foe.ToxicSpikes+1)
	case FIELD_STEALTH_ROCK:
		foe.StealthRock = true
	case FIELD_RAIN:
		ctx.setWeather(WEATHER_RAIN)
	case FIELD_SUN:
		ctx.setWeather(WEATHER_SUN)
	case FIELD_SAND:
		ctx.setWeather(WEATHER_SANDSTORM)
	case FIELD_HAIL:
		ctx.setWeather(WEATHER_HAIL)
	case FIELD_TRICK_ROOM:
		if ctx.weather.TrickRoom > 0 {
			ctx.weather.TrickRoom = 0
		} else {
			ctx.weather.TrickRoom = TRICK_ROOM_TURNS
		}
	case FIELD_GRAVITY:
		if startCounter(&ctx.weather.Gravity, GRAVITY_TURNS) {
			for _, p := range []*Pokemon{a, ctx.defPokemon()} {
				p.Vol.MagnetRise = 0
				if p.Vol.Vanish == VANISH_FLY {
					p.Vol.Vanish = VANISH_NONE
				}
			}
		}
	default:
		panic("unhandled field effect for " + ctx.info.Name)
	}
}

// startCounter sets an idle counter to turns. A counter already running is left alone.
func startCounter(counter *int, turns int) bool {
	if *counter > 0 {
		return false
	}
	*counter = turns
	return true
}

func (ctx *moveContext) setWeather(kind WeatherKind) {
	turns := WEATHER_MOVE_TURNS
	if a := ctx.attackPokemon(); a.Vol.Embargo == 0 && a.Item.extendsWeather() == kind {
		turns = WEATHER_ROCK_TURNS
	}
	ctx.weather.Set(kind, turns)
}

func swapHandler(ctx *moveContext) {
	a := ctx.attackPokemon()
	d := ctx.defPokemon()

	switch ctx.info.Effect.Swap {
	case SWAP_POWER_TRICK:
		a.Vol.PowerTrick = !a.Vol.PowerTrick
	case SWAP_POWER:
		a.Attack.Stage, d.Attack.Stage = d.Attack.Stage, a.Attack.Stage
		a.SpAttack.Stage, d.SpAttack.Stage = d.SpAttack.Stage, a.SpAttack.Stage
	case SWAP_GUARD:
		a.Def.Stage, d.Def.Stage = d.Def.Stage, a.Def.Stage
		a.SpDef.Stage, d.SpDef.Stage = d.SpDef.Stage, a.SpDef.Stage
	case SWAP_HEART:
		stages := a.stages()
		a.setStages(d.stages())
		d.setStages(stages)
	case SWAP_ITEMS:
		if d.Ability == ABILITY_STICKY_HOLD || (a.Item == ITEM_NONE && d.Item == ITEM_NONE) {
			return
		}
		a.Item, d.Item = d.Item, a.Item
	case SWAP_ABILITIES:
		if a.Ability == ABILITY_WONDER_GUARD || d.Ability == ABILITY_WONDER_GUARD {
			return
		}
		a.Ability, d.Ability = d.Ability, a.Ability
	case SWAP_PAIN_SPLIT:
		shared := (a.Hp.Value + d.Hp.Value) / 2
		a.Hp.Value = min(shared, a.Hp.Max)
		d.Hp.Value = min(shared, d.Hp.Max)
	default:
		panic("unhandled swap for " + ctx.info.Name)
	}
}

func switchHandler(ctx *moveContext) {
	switch ctx.info.Effect.Switch {
	case SWITCH_USER, SWITCH_BATON_PASS:
		if !ctx.attackPokemon().Alive() {
			return
		}
		if index := ctx.user.replacementIndex(); index >= 0 {
			ctx.user.SwitchTo(index, ctx.target, ctx.weather, ctx.info.Effect.Switch == SWITCH_BATON_PASS)
		}
	case SWITCH_FORCE_TARGET:
		d := ctx.defPokemon()
		if !d.Alive() || d.Vol.Ingrain || d.Ability == ABILITY_SUCTION_CUPS {
			return
		}
		if index := ctx.target.replacementIndex(); index >= 0 {
			ctx.target.SwitchTo(index, ctx.user, ctx.weather, false)
		}
	default:
		panic("unhandled switch for " + ctx.info.Name)
	}
}

func commitHandler(ctx *moveContext) {
	a := ctx.attackPokemon()
	switch ctx.info.Effect.Commit {
	case COMMIT_RAMPAGE:
		if a.Vol.Rampage == 0 {
			a.Vol.Rampage = 2 + max(0, ctx.move.Variable)%2
		}
	case COMMIT_UPROAR:
		if a.Vol.Uproar == 0 {
			a.Vol.Uproar = UPROAR_TURNS
		}
		ctx.weather.Uproar = max(ctx.weather.Uproar, a.Vol.Uproar)
		for _, p := range []*Pokemon{a, ctx.defPokemon()} {
			if p.Status.Asleep() && p.Ability != ABILITY_SOUNDPROOF {
				p.Status = STATUS_NONE
				p.SleepCount = 0
			}
		}
	case COMMIT_BIDE:
		a.Vol.BideDamage = 0
	case COMMIT_RECHARGE:
		a.Vol.Recharging = true
	case COMMIT_CHARGE:
	default:
		panic("unhandled commitment for " + ctx.info.Name)
	}
}

func conditionalHandler(ctx *moveContext) {
	a := ctx.attackPokemon()
	d := ctx.defPokemon()

	switch ctx.info.Effect.Conditional {
	case COND_REMOVE_SCREENS:
		ctx.target.Side.Reflect = 0
		ctx.target.Side.LightScreen = 0
	case COND_KNOCK_OFF:
		if d.Ability != ABILITY_STICKY_HOLD {
			d.loseItem()
		}
	case COND_THIEF:
		if a.Item == ITEM_NONE && d.Item != ITEM_NONE && d.Ability != ABILITY_STICKY_HOLD {
			a.Item = d.Item
			d.loseItem()
		}
	case COND_CURE_TARGET_PARA:
		if d.Status == STATUS_PARA {
			d.Status = STATUS_NONE
		}
	case COND_WAKE_TARGET:
		if d.Status.Asleep() {
			d.Status = STATUS_NONE
			d.SleepCount = 0
		}
	case COND_RAPID_SPIN:
		ctx.user.Side.Spikes = 0
		ctx.user.Side.ToxicSpikes = 0
		ctx.user.Side.StealthRock = false
		a.Vol.LeechSeed = false
		a.Vol.PartialTrap = 0
	case COND_TRI_ATTACK:
		statuses := [...]Status{STATUS_BURN, STATUS_PARA, STATUS_FREEZE}
		inflict(ctx.target, ctx.user, statuses[max(0, ctx.move.Variable)%len(statuses)], ctx.weather, 0)
	case COND_SELF_KO:
		a.Faint()
	case COND_EAT_BERRY:
		if d.Item.IsBerry() && d.Ability != ABILITY_STICKY_HOLD {
			eatBerry(a, d.Item)
			d.loseItem()
		}
	case COND_CLEAR_STOCKPILE:
		clearStockpile(a)
	default:
		panic("unhandled conditional for " + ctx.info.Name)
	}
}

// clearStockpile releases the stockpile and the defenses it raised.
func clearStockpile(p *Pokemon) {
	if p.Vol.Stockpile == 0 {
		return
	}
	p.ChangeStage(STAT_DEFENSE, -p.Vol.Stockpile)
	p.ChangeStage(STAT_SPDEF, -p.Vol.Stockpile)
	p.Vol.Stockpile = 0
}

func healHandler(ctx *moveContext) {
	a := ctx.attackPokemon()

	switch ctx.info.Effect.Heal {
	case HEAL_HALF:
		a.HealFraction(1, 2)
	case HEAL_ROOST:
		a.HealFraction(1, 2)
		a.Vol.Roost = true
	case HEAL_WEATHER:
		switch ctx.weather.Active(a, ctx.defPokemon()) {
		case WEATHER_NONE:
			a.HealFraction(1, 2)
		case WEATHER_SUN:
			a.HealFraction(2, 3)
		default:
			a.HealFraction(1, 4)
		}
	case HEAL_REST:
		if a.FullHp() || a.Vol.HealBlock > 0 || a.Status == STATUS_REST {
			return
		}
		if a.Ability == ABILITY_INSOMNIA || a.Ability == ABILITY_VITAL_SPIRIT || ctx.weather.Uproar > 0 {
			return
		}
		a.Status = STATUS_REST
		a.SleepCount = REST_TURNS
		a.ToxicCount = 0
		a.Heal(a.Hp.Max)
	case HEAL_SWALLOW:
		switch a.Vol.Stockpile {
		case 0:
			return
		case 1:
			a.HealFraction(1, 4)
		case 2:
			a.HealFraction(1, 2)
		default:
			a.Heal(a.Hp.Max)
		}
		clearStockpile(a)
	default:
		panic("unhandled heal for " + ctx.info.Name)
	}
}

func cureHandler(ctx *moveContext) {
	switch ctx.info.Effect.Cure {
	case CURE_SELF:
		a := ctx.attackPokemon()
		if a.Status == STATUS_BURN || a.Status == STATUS_PARA || a.Status.Poisoned() {
			a.Status = STATUS_NONE
		}
	case CURE_TEAM:
		for i := range ctx.user.Roster {
			ctx.user.Roster[i].Status = STATUS_NONE
			ctx.user.Roster[i].SleepCount = 0
		}
	default:
		panic("unhandled cure for " + ctx.info.Name)
	}
}
