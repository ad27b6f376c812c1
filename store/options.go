package store

// Options is shared by the store implementations. Each implementation
// ignores the fields it has no use for.
type Options struct {
	Format Format
	// FailIfExists makes Put fail with ErrExists rather than overwrite.
	FailIfExists bool
	// Prefix is prepended to blob names.
	Prefix string
	// Tags are added to every blob written.
	Tags map[string]string
}

// Option is a generic option type used for store implementations.
// Implementations type assert to their options target and ignore options
// that do not apply.
type Option func(any)

func WithFormat(format Format) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Format = format
		}
	}
}

func WithFailIfExists() Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.FailIfExists = true
		}
	}
}

func WithPrefix(prefix string) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Prefix = prefix
		}
	}
}

func WithTags(tags map[string]string) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Tags = tags
		}
	}
}

func newOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
