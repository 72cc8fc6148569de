// Package environment names the deployment stage calckit runs in
// (development, staging, production).
//
// Environment implements encoding.TextUnmarshaler, so it can be a field of a
// config struct loaded from APP_ENV, and Parse accepts the short aliases
// dev, stage and prod:
//
//	type Config struct {
//	    Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//
// logger.WithEnvironment picks output defaults from it.
package environment
