package config

// DefaultRootName and FormatVersion describe the root element of
// configuration files.
const (
	DefaultRootName = "nodeconf"
	FormatVersion   = "1.1"
	AttrVersion     = "version"
)

type options struct {
	writable      bool
	rootName      string
	ignoreVersion bool
}

type Option func(*options)

// Writable permits Set, Delete and Save.
func Writable() Option {
	return func(o *options) { o.writable = true }
}

// RootName sets the expected name of the root element of a file.
func RootName(name string) Option {
	return func(o *options) { o.rootName = name }
}

// IgnoreVersion accepts files whatever their version attribute.
func IgnoreVersion() Option {
	return func(o *options) { o.ignoreVersion = true }
}

func optsFrom(opts ...Option) *options {
	o := &options{rootName: DefaultRootName}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type setOpts struct {
	index    int
	override bool
}

type SetOption func(*setOpts)

// At addresses the index-th value of a path. -1 appends.
func At(index int) SetOption {
	return func(o *setOpts) { o.index = index }
}

func Append() SetOption {
	return At(-1)
}

// AllowTypeOverride lets Set replace a value by one of a different type.
func AllowTypeOverride() SetOption {
	return func(o *setOpts) { o.override = true }
}
