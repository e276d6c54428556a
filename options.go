package probably

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

type options struct {
	hasher Hasher
	log    logger.Logger
}

// Option configures a Filter at construction.
type Option func(*options)

// WithHasher sets the hash function. The default is
// SipHasher(DefaultSipK0, DefaultSipK1).
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

// WithSipKeys keys the default SipHash hasher.
func WithSipKeys(k0, k1 uint64) Option {
	return func(o *options) {
		o.hasher = SipHasher(k0, k1)
	}
}

// WithLogger enables debug logging of construction and Clear. Set and Check
// never log. A nil logger, including a nil *logger.WrappedLogger, leaves
// logging disabled.
func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		if log == nil {
			return
		}
		if wl, ok := log.(*logger.WrappedLogger); ok && wl == nil {
			return
		}
		o.log = log
	}
}

func newOptions(opts ...Option) options {
	o := options{
		hasher: SipHasher(DefaultSipK0, DefaultSipK1),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
