package probably

import "errors"

const (
	// DefaultSipK0 and DefaultSipK1 are the SipHash keys used when no hasher
	// option is given.
	DefaultSipK0 uint64 = 0
	DefaultSipK1 uint64 = 0
)

var (
	ErrZeroCapacity     = errors.New("probably: capacity must be greater than zero")
	ErrCapacityOverflow = errors.New("probably: capacity overflows supported range")
	ErrNilEncoder       = errors.New("probably: encoder must not be nil")
)

// Key is the set of item types a Filter accepts. An item is hashed by its
// content bytes, so equal items always map to the same offset.
type Key interface {
	~string | ~[]byte
}
