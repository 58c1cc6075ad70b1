package battle

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

func CreateRandomStateSeed() rand.PCG {
	var randBytes [16]byte
	_, err := cryptoRand.Read(randBytes[:])
	if err != nil {
		// crypto/rand only fails when the OS has no entropy source at all
		panic(err)
	}

	return *rand.NewPCG(binary.LittleEndian.Uint64(randBytes[0:8]), binary.LittleEndian.Uint64(randBytes[8:]))
}

func CreateRNG(seed *rand.PCG) *rand.Rand {
	return rand.New(seed)
}

// critOdds is the 1 in n chance of a critical hit at each crit stage.
var critOdds = [...]int{16, 8, 4, 3, 2}

// RollOutcomes decides every random outcome of user's next action against target and stores
// it on user and its selected move. Callers that enumerate outcomes set the flags themselves.
func RollOutcomes(rng *rand.Rand, user, target *Team, weather *Weather) {
	p := user.GetActivePokemon()
	move := p.ActiveMove()
	info := move.Info
	if !move.HasPP() {
		info = &struggleData
	}

	user.Crit = rng.IntN(critOdds[CritStage(user)]) == 0
	user.Miss = uint(rng.IntN(100)) >= chanceToHit(user, target, weather, info)

	probability := info.Probability
	if p.Ability == ABILITY_SERENE_GRACE {
		probability *= 2
	}
	user.Secondary = probability == 0 || uint(rng.IntN(100)) < probability

	user.FullyParalyzed = rng.IntN(4) == 0
	user.HitSelf = rng.IntN(2) == 0
	user.Immobilized = rng.IntN(2) == 0
	user.Thaw = rng.IntN(5) == 0
	user.ConfusionLength = 2 + rng.IntN(4)

	move.Roll = MIN_ROLL + uint(rng.IntN(MAX_ROLL-MIN_ROLL+1))
	move.Variable = rng.IntN(100)
}
