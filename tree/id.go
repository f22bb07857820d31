package tree

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDFunc produces node identifiers. Every call must return a value never
// returned before within the process.
type IDFunc func() string

// UUIDs returns random version 4 UUIDs.
func UUIDs() IDFunc {
	return uuid.NewString
}

// Counter returns identifiers of the form salt-1, salt-2, ... It is safe for
// concurrent use.
func Counter(salt string) IDFunc {
	var n atomic.Uint64
	return func() string {
		return salt + "-" + strconv.FormatUint(n.Add(1), 10)
	}
}

var defaultIDs = UUIDs()

type Option func(*options)

type options struct {
	ids IDFunc
}

// WithIDs sets the identifier source used for newly created nodes.
func WithIDs(f IDFunc) Option {
	return func(o *options) { o.ids = f }
}

func buildOptions(opts []Option) *options {
	o := &options{ids: defaultIDs}
	for _, opt := range opts {
		opt(o)
	}
	if o.ids == nil {
		o.ids = defaultIDs
	}
	return o
}
