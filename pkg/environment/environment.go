package environment

import (
	"errors"
	"fmt"
	"strings"
)

// Environment is the deployment stage calckit runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ErrUnknownEnvironment is returned by Parse for unrecognised names.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Parse resolves a name or its short alias (dev, stage, prod), case-insensitively.
func Parse(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return Development, nil
	case "staging", "stage":
		return Staging, nil
	case "production", "prod":
		return Production, nil
	default:
		return "", errors.Join(ErrUnknownEnvironment, fmt.Errorf("environment %q", s))
	}
}

// UnmarshalText lets env and flag parsers decode an Environment.
func (e *Environment) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e Environment) String() string { return string(e) }

func (e Environment) IsProduction() bool { return e == Production }
func (e Environment) IsStaging() bool    { return e == Staging }
