package mapper

import (
	"io"
)

// Options controls how the mapping builder resolves each footprint.
type Options struct {
	AcceptExact bool // use an exact outline match without asking (default: true)
	AutoMap     bool // try the auto-mapping rules before asking (default: false)
	KeepUnknown bool // keep unresolved footprints instead of asking (default: false)

	// Out receives one progress line per decided footprint. Nil discards.
	Out io.Writer
}

// DefaultOptions returns Options matching the command-line defaults.
func DefaultOptions() *Options {
	return &Options{
		AcceptExact: true,
		AutoMap:     false,
		KeepUnknown: false,
	}
}

// Validate fills in defaults for unset fields.
func (o *Options) Validate() error {
	if o.Out == nil {
		o.Out = io.Discard
	}
	return nil
}
