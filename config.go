package lexcompat

// Option configures a Config.
type Option func(*Config)

// Config holds the knobs the transform depends on. Currently a single
// field: the dedent algorithm's tab width defaults to 8, but it's kept
// as a field rather than a hardcoded literal so that one magic number is
// overridable for experimentation without touching the algorithm itself.
type Config struct {
	TabWidth int
}

// DefaultConfig returns the transform's default configuration.
func DefaultConfig() Config {
	return Config{TabWidth: 8}
}

// WithTabWidth overrides the dedent tab-stop width.
func WithTabWidth(n int) Option {
	return func(c *Config) {
		c.TabWidth = n
	}
}

func resolveConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
