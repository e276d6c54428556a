package probably

import (
	"github.com/dchest/siphash"
	"github.com/spaolacci/murmur3"
)

// Hasher maps an item's content bytes to a 64 bit digest.
//
// A Hasher must be deterministic: the same bytes always produce the same
// digest. Cryptographic strength is not required.
type Hasher func(data []byte) uint64

// SipHasher returns a SipHash-2-4 Hasher keyed with k0 and k1.
func SipHasher(k0, k1 uint64) Hasher {
	return func(data []byte) uint64 {
		return siphash.Hash(k0, k1, data)
	}
}

// Murmur3Hasher returns a Hasher yielding the first 64 bits of the 128 bit
// x64 MurmurHash3 of the data.
func Murmur3Hasher(seed uint32) Hasher {
	return func(data []byte) uint64 {
		return murmur3.Sum64WithSeed(data, seed)
	}
}

func hashKey[K Key](h Hasher, item K) uint64 {
	return h([]byte(item))
}
