package testutil

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Seed of the generator used by RandomUUIDs, fixed so that failures can be
// reproduced.
const Seed = 0x5eed

// RandomUUIDs returns n pseudo random UUIDs. Version and variant bits are
// left random on purpose: the codec must not depend on them.
// The same n always yields the same UUIDs.
func RandomUUIDs(n int) []uuid.UUID {
	rng := rand.New(rand.NewPCG(Seed, uint64(n)))

	ids := make([]uuid.UUID, n)
	for i := range ids {
		for j := range ids[i] {
			ids[i][j] = byte(rng.Uint32())
		}
	}

	return ids
}

// EdgeUUIDs returns UUIDs whose byte patterns tend to hide permutation bugs:
// all zeros, all ones, palindromes and a strictly increasing sequence.
func EdgeUUIDs() []uuid.UUID {
	return []uuid.UUID{
		uuid.Nil,
		uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"),
		uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff"),
		uuid.MustParse("01020304-0506-0708-0807-060504030201"),
		uuid.MustParse("00000000-0000-0000-ffff-ffffffffffff"),
		uuid.MustParse("ffffffff-ffff-ffff-0000-000000000000"),
		uuid.MustParse("0f0e0d0c-0b0a-0908-0706-050403020100"),
		uuid.MustParse("a0a0a0a0-a0a0-a0a0-a0a0-a0a0a0a0a0a0"),
	}
}
