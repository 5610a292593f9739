package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts how Load reads the environment.
type Option func(*options)

type options struct {
	prefix string
	files  []string
}

// WithPrefix prepends prefix to every env key of the struct, so one type can
// be loaded for several components, e.g. "ADMIN_" + "PASSWORD_MIN_LENGTH".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given dotenv files before parsing. Unlike the default
// .env, missing files are an error. Existing variables are never overridden.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = append(o.files, files...) }
}

type cacheKey struct {
	typ    reflect.Type
	prefix string
}

var (
	mu    sync.Mutex
	cache = make(map[cacheKey]any)

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using env struct tags. Each type
// and prefix pair is parsed once; later calls get the cached copy.
//
//	var policy validator.PasswordPolicy
//	if err := config.Load(&policy); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.files) > 0 {
		if err := godotenv.Load(o.files...); err != nil {
			return errors.Join(ErrEnvFile, err)
		}
	}

	key := cacheKey{typ: reflect.TypeFor[T](), prefix: o.prefix}

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
