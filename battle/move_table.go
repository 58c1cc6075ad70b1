package battle

// struggleData is used whenever the selected move has no PP left.
var struggleData = MoveData{
	Name: "struggle", Type: TYPE_TYPELESS, Power: 50, PP: PP_UNLIMITED,
	Flags: FLAG_CONTACT | FLAG_MAX_HP_RECOIL,
}

// confusionHit is the typeless physical attack a confused Pokemon uses on itself.
var confusionHit = MoveData{Name: "confusion-hit", Type: TYPE_TYPELESS, Power: 40, PP: PP_UNLIMITED}

var moveTable = []MoveData{
	// normal
	{Name: "tackle", Type: TYPE_NORMAL, Power: 35, Accuracy: 95, PP: 35, Flags: FLAG_CONTACT},
	{Name: "strength", Type: TYPE_NORMAL, Power: 80, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT},
	{Name: "headbutt", Type: TYPE_NORMAL, Power: 70, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, Probability: 30, Effect: inflictVolatile(VOL_FLINCH)},
	{Name: "body-slam", Type: TYPE_NORMAL, Power: 85, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, Probability: 30, Effect: inflictStatus(STATUS_PARA)},
	{Name: "double-edge", Type: TYPE_NORMAL, Power: 120, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, Recoil: 3},
	{Name: "take-down", Type: TYPE_NORMAL, Power: 90, Accuracy: 85, PP: 20, Flags: FLAG_CONTACT, Recoil: 4},
	{Name: "return", Type: TYPE_NORMAL, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, PowerRule: POWER_RETURN},
	{Name: "frustration", Type: TYPE_NORMAL, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, PowerRule: POWER_FRUSTRATION},
	{Name: "facade", Type: TYPE_NORMAL, Power: 70, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, Doubler: DOUBLE_FACADE},
	{Name: "extremespeed", Type: TYPE_NORMAL, Power: 80, Accuracy: 100, PP: 5, Priority: 2, Flags: FLAG_CONTACT},
	{Name: "quick-attack", Type: TYPE_NORMAL, Power: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: FLAG_CONTACT},
	{Name: "fake-out", Type: TYPE_NORMAL, Power: 40, Accuracy: 100, PP: 10, Priority: 1, Flags: FLAG_CONTACT | FLAG_FIRST_TURN_ONLY, Effect: inflictVolatile(VOL_FLINCH)},
	{Name: "explosion", Type: TYPE_NORMAL, Power: 250, Accuracy: 100, PP: 5, Flags: FLAG_SELF_DESTRUCT, Effect: conditionalEffect(COND_SELF_KO)},
	{Name: "selfdestruct", Type: TYPE_NORMAL, Power: 200, Accuracy: 100, PP: 5, Flags: FLAG_SELF_DESTRUCT, Effect: conditionalEffect(COND_SELF_KO)},
	{Name: "false-swipe", Type: TYPE_NORMAL, Power: 40, Accuracy: 100, PP: 40, Flags: FLAG_CONTACT | FLAG_NON_LETHAL},
	{Name: "hyper-beam", Type: TYPE_NORMAL, Class: CLASS_SPECIAL, Power: 150, Accuracy: 90, PP: 5, Effect: commitEffect(COMMIT_RECHARGE)},
	{Name: "giga-impact", Type: TYPE_NORMAL, Power: 150, Accuracy: 90, PP: 5, Flags: FLAG_CONTACT, Effect: commitEffect(COMMIT_RECHARGE)},
	{Name: "crush-grip", Type: TYPE_NORMAL, Accuracy: 100, PP: 5, Flags: FLAG_CONTACT, PowerRule: POWER_CRUSH_GRIP},
	{Name: "wring-out", Type: TYPE_NORMAL, Class: CLASS_SPECIAL, Accuracy: 100, PP: 5, Flags: FLAG_CONTACT, PowerRule: POWER_CRUSH_GRIP},
	{Name: "flail", Type: TYPE_NORMAL, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, PowerRule: POWER_FLAIL},
	{Name: "present", Type: TYPE_NORMAL, Accuracy: 90, PP: 15, PowerRule: POWER_PRESENT},
	{Name: "rapid-spin", Type: TYPE_NORMAL, Power: 20, Accuracy: 100, PP: 40, Flags: FLAG_CONTACT, Effect: conditionalEffect(COND_RAPID_SPIN)},
	{Name: "thrash", Type: TYPE_NORMAL, Power: 90, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, Effect: commitEffect(COMMIT_RAMPAGE)},
	{Name: "uproar", Type: TYPE_NORMAL, Class: CLASS_SPECIAL, Power: 50, Accuracy: 100, PP: 10, Flags: FLAG_SOUND, Effect: commitEffect(COMMIT_UPROAR)},
	{Name: "bide", Type: TYPE_NORMAL, PP: 10, Priority: 1, Flags: FLAG_CONTACT, Fixed: FIXED_BIDE, Effect: commitEffect(COMMIT_BIDE)},
	{Name: "trump-card", Type: TYPE_NORMAL, Class: CLASS_SPECIAL, PP: 5, Flags: FLAG_CONTACT, PowerRule: POWER_TRUMP_CARD},
	{Name: "natural-gift", Type: TYPE_NORMAL, Accuracy: 100, PP: 15, PowerRule: POWER_NATURAL_GIFT},
	{Name: "hidden-power", Type: TYPE_NORMAL, Class: CLASS_SPECIAL, Accuracy: 100, PP: 15, PowerRule: POWER_HIDDEN_POWER},
	{Name: "weather-ball", Type: TYPE_NORMAL, Class: CLASS_SPECIAL, Power: 50, Accuracy: 100, PP: 10, Doubler: DOUBLE_WEATHER_BALL},
	{Name: "smellingsalt", Type: TYPE_NORMAL, Power: 60, Accuracy: 100, PP: 10, Flags: FLAG_CONTACT, Doubler: DOUBLE_SMELLINGSALT, Effect: conditionalEffect(COND_CURE_TARGET_PARA)},
	{Name: "stomp", Type: TYPE_NORMAL, Power: 65, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, Doubler: DOUBLE_STOMP, Probability: 30, Effect: inflictVolatile(VOL_FLINCH)},
	{Name: "spit-up", Type: TYPE_NORMAL, Class: CLASS_SPECIAL, Accuracy: 100, PP: 10, PowerRule: POWER_SPIT_UP, Effect: conditionalEffect(COND_CLEAR_STOCKPILE)},
	{Name: "tri-attack", Type: TYPE_NORMAL, Class: CLASS_SPECIAL, Power: 80, Accuracy: 100, PP: 10, Probability: 20, Effect: conditionalEffect(COND_TRI_ATTACK)},
	{Name: "sonicboom", Type: TYPE_NORMAL, Class: CLASS_SPECIAL, Accuracy: 90, PP: 20, Fixed: FIXED_20},
	{Name: "super-fang", Type: TYPE_NORMAL, Accuracy: 90, PP: 10, Flags: FLAG_CONTACT, Fixed: FIXED_HALF_HP},
	{Name: "endeavor", Type: TYPE_NORMAL, Accuracy: 100, PP: 5, Flags: FLAG_CONTACT, Fixed: FIXED_ENDEAVOR},
	{Name: "horn-drill", Type: TYPE_NORMAL, Accuracy: 30, PP: 5, Flags: FLAG_CONTACT, Fixed: FIXED_OHKO},
	{Name: "guillotine", Type: TYPE_NORMAL, Accuracy: 30, PP: 5, Flags: FLAG_CONTACT, Fixed: FIXED_OHKO},
	{Name: "snore", Type: TYPE_NORMAL, Class: CLASS_SPECIAL, Power: 40, Accuracy: 100, PP: 15, Flags: FLAG_SOUND | FLAG_USABLE_ASLEEP, Probability: 30, Effect: inflictVolatile(VOL_FLINCH)},
	{Name: "swords-dance", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 30, Effect: selfBoost(up(STAT_ATTACK, 2))},
	{Name: "double-team", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 15, Effect: selfBoost(up(STAT_EVASION, 1))},
	{Name: "minimize", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 20, Effect: inflictVolatile(VOL_MINIMIZE, up(STAT_EVASION, 1))},
	{Name: "defense-curl", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 40, Effect: inflictVolatile(VOL_DEFENSE_CURL, up(STAT_DEFENSE, 1))},
	{Name: "growl", Type: TYPE_NORMAL, Class: CLASS_STATUS, Accuracy: 100, PP: 40, Flags: FLAG_SOUND, Effect: targetBoost(down(STAT_ATTACK, 1))},
	{Name: "screech", Type: TYPE_NORMAL, Class: CLASS_STATUS, Accuracy: 85, PP: 40, Flags: FLAG_SOUND, Effect: targetBoost(down(STAT_DEFENSE, 2))},
	{Name: "charm", Type: TYPE_NORMAL, Class: CLASS_STATUS, Accuracy: 100, PP: 20, Effect: targetBoost(down(STAT_ATTACK, 2))},
	{Name: "swagger", Type: TYPE_NORMAL, Class: CLASS_STATUS, Accuracy: 90, PP: 15, Effect: MoveEffect{Kind: EFFECT_BOOST_TARGET, Boosts: []Boost{up(STAT_ATTACK, 2)}, Volatile: VOL_CONFUSION}},
	{Name: "focus-energy", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 30, Effect: inflictVolatile(VOL_FOCUS_ENERGY)},
	{Name: "substitute", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Effect: inflictVolatile(VOL_SUBSTITUTE)},
	{Name: "protect", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Priority: 4, Effect: inflictVolatile(VOL_PROTECT)},
	{Name: "endure", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Priority: 4, Effect: inflictVolatile(VOL_ENDURE)},
	{Name: "recover", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Effect: healEffect(HEAL_HALF)},
	{Name: "softboiled", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Effect: healEffect(HEAL_HALF)},
	{Name: "slack-off", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Effect: healEffect(HEAL_HALF)},
	{Name: "milk-drink", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Effect: healEffect(HEAL_HALF)},
	{Name: "swallow", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Effect: healEffect(HEAL_SWALLOW)},
	{Name: "stockpile", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 20, Effect: inflictVolatile(VOL_STOCKPILE, up(STAT_DEFENSE, 1), up(STAT_SPDEF, 1))},
	{Name: "wish", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 10, Effect: fieldEffect(FIELD_WISH)},
	{Name: "heal-bell", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 5, Flags: FLAG_SOUND, Effect: cureEffect(CURE_TEAM)},
	{Name: "refresh", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 20, Effect: cureEffect(CURE_SELF)},
	{Name: "baton-pass", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 40, Effect: switchEffect(SWITCH_BATON_PASS)},
	{Name: "roar", Type: TYPE_NORMAL, Class: CLASS_STATUS, PP: 20, Priority: -6, Flags: FLAG_SOUND | FLAG_UNPROTECTABLE, Effect: switchEffect(SWITCH_FORCE_TARGET)},
	{Name: "whirlwind", Type: TYPE_NORMAL, Class: CLASS_STATUS, PP: 20, Priority: -6, Flags: FLAG_UNPROTECTABLE, Effect: switchEffect(SWITCH_FORCE_TARGET)},
	{Name: "yawn", Type: TYPE_NORMAL, Class: CLASS_STATUS, PP: 10, Effect: inflictVolatile(VOL_YAWN)},
	{Name: "attract", Type: TYPE_NORMAL, Class: CLASS_STATUS, Accuracy: 100, PP: 15, Effect: inflictVolatile(VOL_ATTRACT)},
	{Name: "encore", Type: TYPE_NORMAL, Class: CLASS_STATUS, Accuracy: 100, PP: 5, Effect: inflictVolatile(VOL_ENCORE)},
	{Name: "disable", Type: TYPE_NORMAL, Class: CLASS_STATUS, Accuracy: 80, PP: 20, Effect: inflictVolatile(VOL_DISABLE)},
	{Name: "mean-look", Type: TYPE_NORMAL, Class: CLASS_STATUS, PP: 5, Effect: inflictVolatile(VOL_MEAN_LOOK)},
	{Name: "perish-song", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 5, Flags: FLAG_SOUND, Effect: inflictVolatile(VOL_PERISH_SONG)},
	{Name: "sing", Type: TYPE_NORMAL, Class: CLASS_STATUS, Accuracy: 55, PP: 15, Flags: FLAG_SOUND, Effect: inflictStatus(STATUS_SLEEP)},
	{Name: "glare", Type: TYPE_NORMAL, Class: CLASS_STATUS, Accuracy: 75, PP: 30, Effect: inflictStatus(STATUS_PARA)},
	{Name: "foresight", Type: TYPE_NORMAL, Class: CLASS_STATUS, PP: 40, Effect: inflictVolatile(VOL_IDENTIFIED)},
	{Name: "odor-sleuth", Type: TYPE_NORMAL, Class: CLASS_STATUS, PP: 40, Effect: inflictVolatile(VOL_IDENTIFIED)},
	{Name: "lock-on", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 5, Effect: inflictVolatile(VOL_LOCK_ON)},
	{Name: "mind-reader", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 5, Effect: inflictVolatile(VOL_LOCK_ON)},
	{Name: "lucky-chant", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 30, Effect: fieldEffect(FIELD_LUCKY_CHANT)},
	{Name: "safeguard", Type: TYPE_NORMAL, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 25, Effect: fieldEffect(FIELD_SAFEGUARD)},
	{Name: "pain-split", Type: TYPE_NORMAL, Class: CLASS_STATUS, PP: 20, Effect: swapEffect(SWAP_PAIN_SPLIT)},
	{Name: "curse", Type: TYPE_TYPELESS, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Effect: inflictVolatile(VOL_CURSE, up(STAT_ATTACK, 1), up(STAT_DEFENSE, 1), down(STAT_SPEED, 1))},

	// fighting
	{Name: "close-combat", Type: TYPE_FIGHTING, Power: 120, Accuracy: 100, PP: 5, Flags: FLAG_CONTACT, Effect: selfBoost(down(STAT_DEFENSE, 1), down(STAT_SPDEF, 1))},
	{Name: "superpower", Type: TYPE_FIGHTING, Power: 120, Accuracy: 100, PP: 5, Flags: FLAG_CONTACT, Effect: selfBoost(down(STAT_ATTACK, 1), down(STAT_DEFENSE, 1))},
	{Name: "hammer-arm", Type: TYPE_FIGHTING, Power: 100, Accuracy: 90, PP: 10, Flags: FLAG_CONTACT | FLAG_PUNCH, Effect: selfBoost(down(STAT_SPEED, 1))},
	{Name: "brick-break", Type: TYPE_FIGHTING, Power: 75, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, Effect: conditionalEffect(COND_REMOVE_SCREENS)},
	{Name: "cross-chop", Type: TYPE_FIGHTING, Power: 100, Accuracy: 80, PP: 5, Flags: FLAG_CONTACT | FLAG_HIGH_CRIT},
	{Name: "mach-punch", Type: TYPE_FIGHTING, Power: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: FLAG_CONTACT | FLAG_PUNCH},
	{Name: "drain-punch", Type: TYPE_FIGHTING, Power: 60, Accuracy: 100, PP: 5, Flags: FLAG_CONTACT | FLAG_PUNCH, Drain: 50},
	{Name: "sky-uppercut", Type: TYPE_FIGHTING, Power: 85, Accuracy: 90, PP: 15, Flags: FLAG_CONTACT | FLAG_PUNCH | FLAG_HITS_AIRBORNE},
	{Name: "submission", Type: TYPE_FIGHTING, Power: 80, Accuracy: 80, PP: 25, Flags: FLAG_CONTACT, Recoil: 4},
	{Name: "low-kick", Type: TYPE_FIGHTING, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, PowerRule: POWER_WEIGHT},
	{Name: "triple-kick", Type: TYPE_FIGHTING, Power: 10, Accuracy: 90, PP: 10, Flags: FLAG_CONTACT, PowerRule: POWER_TRIPLE_KICK},
	{Name: "revenge", Type: TYPE_FIGHTING, Power: 60, Accuracy: 100, PP: 10, Priority: -4, Flags: FLAG_CONTACT, Doubler: DOUBLE_AVALANCHE},
	{Name: "wake-up-slap", Type: TYPE_FIGHTING, Power: 60, Accuracy: 100, PP: 10, Flags: FLAG_CONTACT, Doubler: DOUBLE_WAKE_UP_SLAP, Effect: conditionalEffect(COND_WAKE_TARGET)},
	{Name: "reversal", Type: TYPE_FIGHTING, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, PowerRule: POWER_FLAIL},
	{Name: "seismic-toss", Type: TYPE_FIGHTING, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, Fixed: FIXED_LEVEL},
	{Name: "counter", Type: TYPE_FIGHTING, Accuracy: 100, PP: 20, Priority: -5, Flags: FLAG_CONTACT, Fixed: FIXED_COUNTER},
	{Name: "aura-sphere", Type: TYPE_FIGHTING, Class: CLASS_SPECIAL, Power: 90, PP: 20},
	{Name: "focus-blast", Type: TYPE_FIGHTING, Class: CLASS_SPECIAL, Power: 120, Accuracy: 70, PP: 5, Probability: 10, Effect: targetBoost(down(STAT_SPDEF, 1))},
	{Name: "vacuum-wave", Type: TYPE_FIGHTING, Class: CLASS_SPECIAL, Power: 40, Accuracy: 100, PP: 30, Priority: 1},
	{Name: "detect", Type: TYPE_FIGHTING, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 5, Priority: 4, Effect: inflictVolatile(VOL_PROTECT)},
	{Name: "bulk-up", Type: TYPE_FIGHTING, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 20, Effect: selfBoost(up(STAT_ATTACK, 1), up(STAT_DEFENSE, 1))},

	// flying
	{Name: "brave-bird", Type: TYPE_FLYING, Power: 120, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, Recoil: 3},
	{Name: "air-slash", Type: TYPE_FLYING, Class: CLASS_SPECIAL, Power: 75, Accuracy: 95, PP: 20, Probability: 30, Effect: inflictVolatile(VOL_FLINCH)},
	{Name: "aerial-ace", Type: TYPE_FLYING, Power: 60, PP: 20, Flags: FLAG_CONTACT},
	{Name: "gust", Type: TYPE_FLYING, Class: CLASS_SPECIAL, Power: 40, Accuracy: 100, PP: 35, Flags: FLAG_HITS_AIRBORNE, Doubler: DOUBLE_VS_AIRBORNE},
	{Name: "fly", Type: TYPE_FLYING, Power: 90, Accuracy: 95, PP: 15, Flags: FLAG_CONTACT, Effect: vanishEffect(VANISH_FLY)},
	{Name: "bounce", Type: TYPE_FLYING, Power: 85, Accuracy: 85, PP: 5, Flags: FLAG_CONTACT, Effect: vanishEffect(VANISH_FLY)},
	{Name: "roost", Type: TYPE_FLYING, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Effect: healEffect(HEAL_ROOST)},
	{Name: "tailwind", Type: TYPE_FLYING, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 30, Effect: fieldEffect(FIELD_TAILWIND)},

	// poison
	{Name: "sludge-bomb", Type: TYPE_POISON, Class: CLASS_SPECIAL, Power: 90, Accuracy: 100, PP: 10, Probability: 30, Effect: inflictStatus(STATUS_POISON)},
	{Name: "poison-jab", Type: TYPE_POISON, Power: 80, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, Probability: 30, Effect: inflictStatus(STATUS_POISON)},
	{Name: "gunk-shot", Type: TYPE_POISON, Power: 120, Accuracy: 70, PP: 5, Probability: 30, Effect: inflictStatus(STATUS_POISON)},
	{Name: "toxic", Type: TYPE_POISON, Class: CLASS_STATUS, Accuracy: 85, PP: 10, Effect: inflictStatus(STATUS_TOXIC)},
	{Name: "toxic-spikes", Type: TYPE_POISON, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 20, Effect: fieldEffect(FIELD_TOXIC_SPIKES)},

	// ground
	{Name: "earthquake", Type: TYPE_GROUND, Power: 100, Accuracy: 100, PP: 10, Doubler: DOUBLE_VS_UNDERGROUND},
	{Name: "magnitude", Type: TYPE_GROUND, Accuracy: 100, PP: 30, PowerRule: POWER_MAGNITUDE, Doubler: DOUBLE_VS_UNDERGROUND},
	{Name: "earth-power", Type: TYPE_GROUND, Class: CLASS_SPECIAL, Power: 90, Accuracy: 100, PP: 10, Probability: 10, Effect: targetBoost(down(STAT_SPDEF, 1))},
	{Name: "dig", Type: TYPE_GROUND, Power: 80, Accuracy: 100, PP: 10, Flags: FLAG_CONTACT, Effect: vanishEffect(VANISH_DIG)},
	{Name: "fissure", Type: TYPE_GROUND, Accuracy: 30, PP: 5, Fixed: FIXED_OHKO},
	{Name: "sand-attack", Type: TYPE_GROUND, Class: CLASS_STATUS, Accuracy: 100, PP: 15, Effect: targetBoost(down(STAT_ACCURACY, 1))},
	{Name: "spikes", Type: TYPE_GROUND, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 20, Effect: fieldEffect(FIELD_SPIKES)},
	{Name: "mud-sport", Type: TYPE_GROUND, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 15, Effect: inflictVolatile(VOL_MUD_SPORT)},

	// rock
	{Name: "stone-edge", Type: TYPE_ROCK, Power: 100, Accuracy: 80, PP: 5, Flags: FLAG_HIGH_CRIT},
	{Name: "rock-slide", Type: TYPE_ROCK, Power: 75, Accuracy: 90, PP: 10, Probability: 30, Effect: inflictVolatile(VOL_FLINCH)},
	{Name: "head-smash", Type: TYPE_ROCK, Power: 150, Accuracy: 80, PP: 5, Flags: FLAG_CONTACT, Recoil: 2},
	{Name: "rollout", Type: TYPE_ROCK, Power: 30, Accuracy: 90, PP: 20, Flags: FLAG_CONTACT, PowerRule: POWER_ROLLOUT},
	{Name: "ancientpower", Type: TYPE_ROCK, Class: CLASS_SPECIAL, Power: 60, Accuracy: 100, PP: 5, Probability: 10, Effect: selfBoost(up(STAT_ATTACK, 1), up(STAT_DEFENSE, 1), up(STAT_SPATTACK, 1), up(STAT_SPDEF, 1), up(STAT_SPEED, 1))},
	{Name: "stealth-rock", Type: TYPE_ROCK, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 20, Effect: fieldEffect(FIELD_STEALTH_ROCK)},
	{Name: "rock-polish", Type: TYPE_ROCK, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 20, Effect: selfBoost(up(STAT_SPEED, 2))},
	{Name: "sandstorm", Type: TYPE_ROCK, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 10, Effect: fieldEffect(FIELD_SAND)},

	// bug
	{Name: "u-turn", Type: TYPE_BUG, Power: 70, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, Effect: switchEffect(SWITCH_USER)},
	{Name: "x-scissor", Type: TYPE_BUG, Power: 80, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT},
	{Name: "megahorn", Type: TYPE_BUG, Power: 120, Accuracy: 85, PP: 10, Flags: FLAG_CONTACT},
	{Name: "bug-bite", Type: TYPE_BUG, Power: 60, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, Effect: conditionalEffect(COND_EAT_BERRY)},
	{Name: "fury-cutter", Type: TYPE_BUG, Power: 10, Accuracy: 95, PP: 20, Flags: FLAG_CONTACT, PowerRule: POWER_FURY_CUTTER},
	{Name: "signal-beam", Type: TYPE_BUG, Class: CLASS_SPECIAL, Power: 75, Accuracy: 100, PP: 15, Probability: 10, Effect: inflictVolatile(VOL_CONFUSION)},
	{Name: "bug-buzz", Type: TYPE_BUG, Class: CLASS_SPECIAL, Power: 90, Accuracy: 100, PP: 10, Flags: FLAG_SOUND, Probability: 10, Effect: targetBoost(down(STAT_SPDEF, 1))},

	// ghost
	{Name: "shadow-ball", Type: TYPE_GHOST, Class: CLASS_SPECIAL, Power: 80, Accuracy: 100, PP: 15, Probability: 20, Effect: targetBoost(down(STAT_SPDEF, 1))},
	{Name: "shadow-sneak", Type: TYPE_GHOST, Power: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: FLAG_CONTACT},
	{Name: "shadow-force", Type: TYPE_GHOST, Power: 120, Accuracy: 100, PP: 5, Flags: FLAG_CONTACT | FLAG_UNPROTECTABLE, Effect: vanishEffect(VANISH_SHADOW_FORCE)},
	{Name: "night-shade", Type: TYPE_GHOST, Class: CLASS_SPECIAL, Accuracy: 100, PP: 15, Fixed: FIXED_LEVEL},
	{Name: "confuse-ray", Type: TYPE_GHOST, Class: CLASS_STATUS, Accuracy: 100, PP: 10, Effect: inflictVolatile(VOL_CONFUSION)},
	{Name: "destiny-bond", Type: TYPE_GHOST, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 5, Effect: inflictVolatile(VOL_DESTINY_BOND)},
	{Name: "nightmare", Type: TYPE_GHOST, Class: CLASS_STATUS, Accuracy: 100, PP: 15, Effect: inflictVolatile(VOL_NIGHTMARE)},

	// steel
	{Name: "iron-head", Type: TYPE_STEEL, Power: 80, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, Probability: 30, Effect: inflictVolatile(VOL_FLINCH)},
	{Name: "bullet-punch", Type: TYPE_STEEL, Power: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: FLAG_CONTACT | FLAG_PUNCH},
	{Name: "meteor-mash", Type: TYPE_STEEL, Power: 100, Accuracy: 85, PP: 10, Flags: FLAG_CONTACT | FLAG_PUNCH, Probability: 20, Effect: selfBoost(up(STAT_ATTACK, 1))},
	{Name: "flash-cannon", Type: TYPE_STEEL, Class: CLASS_SPECIAL, Power: 80, Accuracy: 100, PP: 10, Probability: 10, Effect: targetBoost(down(STAT_SPDEF, 1))},
	{Name: "gyro-ball", Type: TYPE_STEEL, Accuracy: 100, PP: 5, Flags: FLAG_CONTACT, PowerRule: POWER_GYRO_BALL},
	{Name: "metal-burst", Type: TYPE_STEEL, Accuracy: 100, PP: 10, Fixed: FIXED_METAL_BURST},
	{Name: "iron-defense", Type: TYPE_STEEL, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 15, Effect: selfBoost(up(STAT_DEFENSE, 2))},

	// fire
	{Name: "flamethrower", Type: TYPE_FIRE, Class: CLASS_SPECIAL, Power: 95, Accuracy: 100, PP: 15, Probability: 10, Effect: inflictStatus(STATUS_BURN)},
	{Name: "fire-blast", Type: TYPE_FIRE, Class: CLASS_SPECIAL, Power: 120, Accuracy: 85, PP: 5, Probability: 10, Effect: inflictStatus(STATUS_BURN)},
	{Name: "overheat", Type: TYPE_FIRE, Class: CLASS_SPECIAL, Power: 140, Accuracy: 90, PP: 5, Effect: selfBoost(down(STAT_SPATTACK, 2))},
	{Name: "eruption", Type: TYPE_FIRE, Class: CLASS_SPECIAL, Power: 150, Accuracy: 100, PP: 5, PowerRule: POWER_ERUPTION},
	{Name: "fire-punch", Type: TYPE_FIRE, Power: 75, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT | FLAG_PUNCH, Probability: 10, Effect: inflictStatus(STATUS_BURN)},
	{Name: "flare-blitz", Type: TYPE_FIRE, Power: 120, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT | FLAG_THAWS_USER, Recoil: 3, Probability: 10, Effect: inflictStatus(STATUS_BURN)},
	{Name: "flame-wheel", Type: TYPE_FIRE, Power: 60, Accuracy: 100, PP: 25, Flags: FLAG_CONTACT | FLAG_THAWS_USER, Probability: 10, Effect: inflictStatus(STATUS_BURN)},
	{Name: "sacred-fire", Type: TYPE_FIRE, Power: 100, Accuracy: 95, PP: 5, Flags: FLAG_THAWS_USER, Probability: 50, Effect: inflictStatus(STATUS_BURN)},
	{Name: "will-o-wisp", Type: TYPE_FIRE, Class: CLASS_STATUS, Accuracy: 75, PP: 15, Effect: inflictStatus(STATUS_BURN)},
	{Name: "sunny-day", Type: TYPE_FIRE, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 5, Effect: fieldEffect(FIELD_SUN)},

	// water
	{Name: "surf", Type: TYPE_WATER, Class: CLASS_SPECIAL, Power: 95, Accuracy: 100, PP: 15, Doubler: DOUBLE_VS_UNDERWATER},
	{Name: "hydro-pump", Type: TYPE_WATER, Class: CLASS_SPECIAL, Power: 120, Accuracy: 80, PP: 5},
	{Name: "water-spout", Type: TYPE_WATER, Class: CLASS_SPECIAL, Power: 150, Accuracy: 100, PP: 5, PowerRule: POWER_ERUPTION},
	{Name: "brine", Type: TYPE_WATER, Class: CLASS_SPECIAL, Power: 65, Accuracy: 100, PP: 10, Doubler: DOUBLE_BRINE},
	{Name: "whirlpool", Type: TYPE_WATER, Class: CLASS_SPECIAL, Power: 15, Accuracy: 70, PP: 15, Doubler: DOUBLE_VS_UNDERWATER, Effect: inflictVolatile(VOL_PARTIAL_TRAP)},
	{Name: "waterfall", Type: TYPE_WATER, Power: 80, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, Probability: 20, Effect: inflictVolatile(VOL_FLINCH)},
	{Name: "aqua-jet", Type: TYPE_WATER, Power: 40, Accuracy: 100, PP: 20, Priority: 1, Flags: FLAG_CONTACT},
	{Name: "crabhammer", Type: TYPE_WATER, Power: 90, Accuracy: 85, PP: 10, Flags: FLAG_CONTACT | FLAG_HIGH_CRIT},
	{Name: "dive", Type: TYPE_WATER, Power: 80, Accuracy: 100, PP: 10, Flags: FLAG_CONTACT, Effect: vanishEffect(VANISH_DIVE)},
	{Name: "rain-dance", Type: TYPE_WATER, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 5, Effect: fieldEffect(FIELD_RAIN)},
	{Name: "aqua-ring", Type: TYPE_WATER, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 20, Effect: inflictVolatile(VOL_AQUA_RING)},
	{Name: "water-sport", Type: TYPE_WATER, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 15, Effect: inflictVolatile(VOL_WATER_SPORT)},

	// grass
	{Name: "energy-ball", Type: TYPE_GRASS, Class: CLASS_SPECIAL, Power: 80, Accuracy: 100, PP: 10, Probability: 10, Effect: targetBoost(down(STAT_SPDEF, 1))},
	{Name: "giga-drain", Type: TYPE_GRASS, Class: CLASS_SPECIAL, Power: 60, Accuracy: 100, PP: 10, Drain: 50},
	{Name: "leaf-storm", Type: TYPE_GRASS, Class: CLASS_SPECIAL, Power: 140, Accuracy: 90, PP: 5, Effect: selfBoost(down(STAT_SPATTACK, 2))},
	{Name: "solarbeam", Type: TYPE_GRASS, Class: CLASS_SPECIAL, Power: 120, Accuracy: 100, PP: 10, Doubler: DOUBLE_SOLAR_BEAM, Effect: commitEffect(COMMIT_CHARGE)},
	{Name: "petal-dance", Type: TYPE_GRASS, Class: CLASS_SPECIAL, Power: 90, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, Effect: commitEffect(COMMIT_RAMPAGE)},
	{Name: "grass-knot", Type: TYPE_GRASS, Class: CLASS_SPECIAL, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, PowerRule: POWER_WEIGHT},
	{Name: "leaf-blade", Type: TYPE_GRASS, Power: 90, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT | FLAG_HIGH_CRIT},
	{Name: "seed-bomb", Type: TYPE_GRASS, Power: 80, Accuracy: 100, PP: 15},
	{Name: "wood-hammer", Type: TYPE_GRASS, Power: 120, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, Recoil: 3},
	{Name: "leech-seed", Type: TYPE_GRASS, Class: CLASS_STATUS, Accuracy: 90, PP: 10, Effect: inflictVolatile(VOL_LEECH_SEED)},
	{Name: "spore", Type: TYPE_GRASS, Class: CLASS_STATUS, Accuracy: 100, PP: 15, Effect: inflictStatus(STATUS_SLEEP)},
	{Name: "sleep-powder", Type: TYPE_GRASS, Class: CLASS_STATUS, Accuracy: 75, PP: 15, Effect: inflictStatus(STATUS_SLEEP)},
	{Name: "stun-spore", Type: TYPE_GRASS, Class: CLASS_STATUS, Accuracy: 75, PP: 30, Effect: inflictStatus(STATUS_PARA)},
	{Name: "synthesis", Type: TYPE_GRASS, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 5, Effect: healEffect(HEAL_WEATHER)},
	{Name: "ingrain", Type: TYPE_GRASS, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 20, Effect: inflictVolatile(VOL_INGRAIN)},
	{Name: "aromatherapy", Type: TYPE_GRASS, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 5, Effect: cureEffect(CURE_TEAM)},

	// electric
	{Name: "thunderbolt", Type: TYPE_ELECTRIC, Class: CLASS_SPECIAL, Power: 95, Accuracy: 100, PP: 15, Probability: 10, Effect: inflictStatus(STATUS_PARA)},
	{Name: "thunder", Type: TYPE_ELECTRIC, Class: CLASS_SPECIAL, Power: 120, Accuracy: 70, PP: 10, Flags: FLAG_RAIN_ACCURATE | FLAG_HITS_AIRBORNE, Probability: 30, Effect: inflictStatus(STATUS_PARA)},
	{Name: "discharge", Type: TYPE_ELECTRIC, Class: CLASS_SPECIAL, Power: 80, Accuracy: 100, PP: 15, Probability: 30, Effect: inflictStatus(STATUS_PARA)},
	{Name: "charge-beam", Type: TYPE_ELECTRIC, Class: CLASS_SPECIAL, Power: 50, Accuracy: 90, PP: 10, Probability: 70, Effect: selfBoost(up(STAT_SPATTACK, 1))},
	{Name: "thunderpunch", Type: TYPE_ELECTRIC, Power: 75, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT | FLAG_PUNCH, Probability: 10, Effect: inflictStatus(STATUS_PARA)},
	{Name: "volt-tackle", Type: TYPE_ELECTRIC, Power: 120, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, Recoil: 3},
	{Name: "thunder-wave", Type: TYPE_ELECTRIC, Class: CLASS_STATUS, Accuracy: 100, PP: 20, Flags: FLAG_TYPE_IMMUNITY, Effect: inflictStatus(STATUS_PARA)},
	{Name: "charge", Type: TYPE_ELECTRIC, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 20, Effect: inflictVolatile(VOL_CHARGE, up(STAT_SPDEF, 1))},
	{Name: "magnet-rise", Type: TYPE_ELECTRIC, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Effect: inflictVolatile(VOL_MAGNET_RISE)},

	// psychic
	{Name: "psychic", Type: TYPE_PSYCHIC, Class: CLASS_SPECIAL, Power: 90, Accuracy: 100, PP: 10, Probability: 10, Effect: targetBoost(down(STAT_SPDEF, 1))},
	{Name: "psycho-cut", Type: TYPE_PSYCHIC, Power: 70, Accuracy: 100, PP: 20, Flags: FLAG_HIGH_CRIT},
	{Name: "zen-headbutt", Type: TYPE_PSYCHIC, Power: 80, Accuracy: 90, PP: 15, Flags: FLAG_CONTACT, Probability: 20, Effect: inflictVolatile(VOL_FLINCH)},
	{Name: "psywave", Type: TYPE_PSYCHIC, Class: CLASS_SPECIAL, Accuracy: 80, PP: 15, Fixed: FIXED_PSYWAVE},
	{Name: "mirror-coat", Type: TYPE_PSYCHIC, Class: CLASS_SPECIAL, Accuracy: 100, PP: 20, Priority: -5, Fixed: FIXED_MIRROR_COAT},
	{Name: "calm-mind", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 20, Effect: selfBoost(up(STAT_SPATTACK, 1), up(STAT_SPDEF, 1))},
	{Name: "agility", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 30, Effect: selfBoost(up(STAT_SPEED, 2))},
	{Name: "hypnosis", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, Accuracy: 60, PP: 20, Effect: inflictStatus(STATUS_SLEEP)},
	{Name: "rest", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Effect: healEffect(HEAL_REST)},
	{Name: "reflect", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 20, Effect: fieldEffect(FIELD_REFLECT)},
	{Name: "light-screen", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 30, Effect: fieldEffect(FIELD_LIGHT_SCREEN)},
	{Name: "trick-room", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 5, Priority: -7, Effect: fieldEffect(FIELD_TRICK_ROOM)},
	{Name: "gravity", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 5, Effect: fieldEffect(FIELD_GRAVITY)},
	{Name: "power-trick", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 10, Effect: swapEffect(SWAP_POWER_TRICK)},
	{Name: "power-swap", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, PP: 10, Effect: swapEffect(SWAP_POWER)},
	{Name: "guard-swap", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, PP: 10, Effect: swapEffect(SWAP_GUARD)},
	{Name: "heart-swap", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, PP: 10, Effect: swapEffect(SWAP_HEART)},
	{Name: "trick", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, Accuracy: 100, PP: 10, Effect: swapEffect(SWAP_ITEMS)},
	{Name: "skill-swap", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, PP: 10, Effect: swapEffect(SWAP_ABILITIES)},
	{Name: "heal-block", Type: TYPE_PSYCHIC, Class: CLASS_STATUS, Accuracy: 100, PP: 15, Effect: inflictVolatile(VOL_HEAL_BLOCK)},

	// ice
	{Name: "ice-beam", Type: TYPE_ICE, Class: CLASS_SPECIAL, Power: 95, Accuracy: 100, PP: 10, Probability: 10, Effect: inflictStatus(STATUS_FREEZE)},
	{Name: "blizzard", Type: TYPE_ICE, Class: CLASS_SPECIAL, Power: 120, Accuracy: 70, PP: 5, Flags: FLAG_HAIL_ACCURATE, Probability: 10, Effect: inflictStatus(STATUS_FREEZE)},
	{Name: "ice-punch", Type: TYPE_ICE, Power: 75, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT | FLAG_PUNCH, Probability: 10, Effect: inflictStatus(STATUS_FREEZE)},
	{Name: "ice-shard", Type: TYPE_ICE, Power: 40, Accuracy: 100, PP: 30, Priority: 1},
	{Name: "avalanche", Type: TYPE_ICE, Power: 60, Accuracy: 100, PP: 10, Priority: -4, Flags: FLAG_CONTACT, Doubler: DOUBLE_AVALANCHE},
	{Name: "ice-ball", Type: TYPE_ICE, Power: 30, Accuracy: 90, PP: 20, Flags: FLAG_CONTACT, PowerRule: POWER_ROLLOUT},
	{Name: "sheer-cold", Type: TYPE_ICE, Class: CLASS_SPECIAL, Accuracy: 30, PP: 5, Fixed: FIXED_OHKO},
	{Name: "hail", Type: TYPE_ICE, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 10, Effect: fieldEffect(FIELD_HAIL)},
	{Name: "mist", Type: TYPE_ICE, Class: CLASS_STATUS, Target: TARGET_FIELD, PP: 30, Effect: fieldEffect(FIELD_MIST)},

	// dragon
	{Name: "outrage", Type: TYPE_DRAGON, Power: 120, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, Effect: commitEffect(COMMIT_RAMPAGE)},
	{Name: "dragon-claw", Type: TYPE_DRAGON, Power: 80, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT},
	{Name: "dragon-pulse", Type: TYPE_DRAGON, Class: CLASS_SPECIAL, Power: 90, Accuracy: 100, PP: 10},
	{Name: "draco-meteor", Type: TYPE_DRAGON, Class: CLASS_SPECIAL, Power: 140, Accuracy: 90, PP: 5, Effect: selfBoost(down(STAT_SPATTACK, 2))},
	{Name: "twister", Type: TYPE_DRAGON, Class: CLASS_SPECIAL, Power: 40, Accuracy: 100, PP: 20, Flags: FLAG_HITS_AIRBORNE, Doubler: DOUBLE_VS_AIRBORNE, Probability: 20, Effect: inflictVolatile(VOL_FLINCH)},
	{Name: "dragon-rage", Type: TYPE_DRAGON, Class: CLASS_SPECIAL, Accuracy: 100, PP: 10, Fixed: FIXED_40},
	{Name: "dragon-dance", Type: TYPE_DRAGON, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 20, Effect: selfBoost(up(STAT_ATTACK, 1), up(STAT_SPEED, 1))},

	// dark
	{Name: "crunch", Type: TYPE_DARK, Power: 80, Accuracy: 100, PP: 15, Flags: FLAG_CONTACT, Probability: 20, Effect: targetBoost(down(STAT_DEFENSE, 1))},
	{Name: "dark-pulse", Type: TYPE_DARK, Class: CLASS_SPECIAL, Power: 80, Accuracy: 100, PP: 15, Probability: 20, Effect: inflictVolatile(VOL_FLINCH)},
	{Name: "sucker-punch", Type: TYPE_DARK, Power: 80, Accuracy: 100, PP: 5, Priority: 1, Flags: FLAG_CONTACT},
	{Name: "knock-off", Type: TYPE_DARK, Power: 20, Accuracy: 100, PP: 20, Flags: FLAG_CONTACT, Effect: conditionalEffect(COND_KNOCK_OFF)},
	{Name: "thief", Type: TYPE_DARK, Power: 40, Accuracy: 100, PP: 10, Flags: FLAG_CONTACT, Effect: conditionalEffect(COND_THIEF)},
	{Name: "assurance", Type: TYPE_DARK, Power: 50, Accuracy: 100, PP: 10, Flags: FLAG_CONTACT, Doubler: DOUBLE_ASSURANCE},
	{Name: "payback", Type: TYPE_DARK, Power: 50, Accuracy: 100, PP: 10, Flags: FLAG_CONTACT, Doubler: DOUBLE_PAYBACK},
	{Name: "punishment", Type: TYPE_DARK, Accuracy: 100, PP: 5, Flags: FLAG_CONTACT, PowerRule: POWER_PUNISHMENT},
	{Name: "fling", Type: TYPE_DARK, Accuracy: 100, PP: 10, PowerRule: POWER_FLING},
	{Name: "taunt", Type: TYPE_DARK, Class: CLASS_STATUS, Accuracy: 100, PP: 20, Effect: inflictVolatile(VOL_TAUNT)},
	{Name: "nasty-plot", Type: TYPE_DARK, Class: CLASS_STATUS, Target: TARGET_SELF, PP: 20, Effect: selfBoost(up(STAT_SPATTACK, 2))},
	{Name: "embargo", Type: TYPE_DARK, Class: CLASS_STATUS, Accuracy: 100, PP: 15, Effect: inflictVolatile(VOL_EMBARGO)},
}
