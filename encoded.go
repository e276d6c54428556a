package probably

// Encoder maps an item to the bytes that identify it. Equal items must encode
// to equal bytes.
type Encoder[T any] func(item T) []byte

// EncodedFilter is a Filter over items of any type. Each item is converted to
// bytes by an Encoder and the bytes are hashed as for Filter[[]byte].
type EncodedFilter[T any] struct {
	f      *Filter[[]byte]
	encode Encoder[T]
}

// NewEncoded returns an empty EncodedFilter with capacity bits.
//
// It panics as New does, and with ErrNilEncoder if encode is nil.
func NewEncoded[T any](capacity uint64, encode Encoder[T], opts ...Option) *EncodedFilter[T] {
	if encode == nil {
		panic(ErrNilEncoder)
	}
	return &EncodedFilter[T]{f: New[[]byte](capacity, opts...), encode: encode}
}

// Set marks item as present.
func (e *EncodedFilter[T]) Set(item T) { e.f.Set(e.encode(item)) }

// Check returns false if item is definitely absent.
func (e *EncodedFilter[T]) Check(item T) bool { return e.f.Check(e.encode(item)) }

// CheckAndSet returns the prior Check result, then marks item as present.
func (e *EncodedFilter[T]) CheckAndSet(item T) bool { return e.f.CheckAndSet(e.encode(item)) }

// Clear resets every bit.
func (e *EncodedFilter[T]) Clear() { e.f.Clear() }

// Filter returns the underlying byte keyed filter, for its observers.
func (e *EncodedFilter[T]) Filter() *Filter[[]byte] { return e.f }
