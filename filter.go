package probably

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/datatrails/go-datatrails-common/logger"
)

// Filter is a fixed size, single hash function Bloom filter.
//
// Each item maps to exactly one bit, at hash(item) mod capacity. A Filter is
// not safe for concurrent use; see Synchronized.
//
// A Filter must be created with New. The zero value has no bit array and
// panics on use.
type Filter[K Key] struct {
	bits     *bitset.BitSet
	capacity uint64
	hasher   Hasher
	log      logger.Logger
}

// New returns an empty Filter with capacity bits.
//
// New panics with ErrZeroCapacity if capacity is 0, and with
// ErrCapacityOverflow if capacity can not be addressed on this platform.
func New[K Key](capacity uint64, opts ...Option) *Filter[K] {
	if err := CheckCapacity(capacity); err != nil {
		panic(err)
	}
	o := newOptions(opts...)

	f := &Filter[K]{
		bits:     bitset.New(CapacitySafeCast(capacity)),
		capacity: capacity,
		hasher:   o.hasher,
		log:      o.log,
	}
	if f.log != nil {
		f.log.Debugf("probably.New: capacity=%d, bytes=%d", capacity, f.SizeBytes())
	}
	return f
}

func (f *Filter[K]) offset(item K) uint {
	return uint(hashKey(f.hasher, item) % f.capacity)
}

// Set marks item as present.
func (f *Filter[K]) Set(item K) {
	f.bits.Set(f.offset(item))
}

// Check returns false if item is definitely absent and true if it may be
// present.
func (f *Filter[K]) Check(item K) bool {
	return f.bits.Test(f.offset(item))
}

// CheckAndSet returns what Check(item) would have returned before the call,
// then marks item as present.
func (f *Filter[K]) CheckAndSet(item K) bool {
	i := f.offset(item)
	seen := f.bits.Test(i)
	f.bits.Set(i)
	return seen
}

// Clear resets every bit. The capacity is unchanged.
func (f *Filter[K]) Clear() {
	if f.log != nil {
		f.log.Debugf("probably.Clear: capacity=%d, dropped=%d", f.capacity, f.Count())
	}
	f.bits.ClearAll()
}

// Capacity returns the number of bits in the filter.
func (f *Filter[K]) Capacity() uint64 { return f.capacity }

// Count returns the number of set bits.
func (f *Filter[K]) Count() uint64 { return uint64(f.bits.Count()) }

// LoadFactor returns the fraction of bits that are set.
func (f *Filter[K]) LoadFactor() float64 {
	return float64(f.Count()) / float64(f.capacity)
}

// FalsePositiveRate returns the probability that Check reports a never
// inserted item as present. With a single hash function this is the load
// factor.
func (f *Filter[K]) FalsePositiveRate() float64 { return f.LoadFactor() }

// SizeBytes returns the number of bytes needed to hold the bit array.
func (f *Filter[K]) SizeBytes() uint64 { return BitsetBytes(f.capacity) }
