package mergepatch

// DefaultMaxBodySize is the default limit for patch bodies (1 MB).
const DefaultMaxBodySize = 1 << 20

// Config holds binding settings loadable with config.Load.
type Config struct {
	MaxBodySize  int64 `env:"PATCH_MAX_BODY_SIZE" envDefault:"1048576"`
	AllowUnknown bool  `env:"PATCH_ALLOW_UNKNOWN" envDefault:"false"`
}

func DefaultConfig() Config {
	return Config{MaxBodySize: DefaultMaxBodySize}
}

func (c Config) maxBodySize() int64 {
	if c.MaxBodySize <= 0 {
		return DefaultMaxBodySize
	}
	return c.MaxBodySize
}
