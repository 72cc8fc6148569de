// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files:
//
//	type Config struct {
//	    Env       environment.Environment `env:"APP_ENV" envDefault:"development"`
//	    LogLevel  slog.Level              `env:"LOG_LEVEL" envDefault:"info"`
//	    Precision int                     `env:"CALC_PRECISION" envDefault:"2"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Fields whose types implement encoding.TextUnmarshaler are decoded through it.
//
// Each config type is parsed once per process and cached; ResetCache clears
// the cache, which tests use after changing the environment. Errors wrap the
// sentinels ErrParsingConfig, ErrLoadingEnvFile and ErrNilPointer.
package config
