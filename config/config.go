// Package config holds the externally supplied game parameters: grid size,
// tick interval, the food placement attempt cap and the random seed.
package config

import (
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/0wafi0/ng-snake/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// Defaults, overridable through the environment.
var (
	Width        = getEnvInt("SNAKE_WIDTH", 20)
	Height       = getEnvInt("SNAKE_HEIGHT", 20)
	TickInterval = time.Duration(getEnvInt("SNAKE_TICK_MS", 100)) * time.Millisecond
	FoodAttempts = getEnvInt("SNAKE_FOOD_ATTEMPTS", rules.DefaultFoodAttempts)
	Seed         = getEnvInt64("SNAKE_SEED", 0)
)

// Config is the configuration of a game session.
type Config struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Tick         time.Duration `yaml:"tick"`
	FoodAttempts int           `yaml:"food_attempts"`
	// Seed for the food placement random source, 0 picks a time based seed.
	Seed int64 `yaml:"seed"`
}

// Default returns the configuration built from the environment defaults.
func Default() Config {
	return Config{
		Width:        Width,
		Height:       Height,
		Tick:         TickInterval,
		FoodAttempts: FoodAttempts,
		Seed:         Seed,
	}
}

// LoadFile reads a YAML file over the defaults. Keys missing from the file
// keep their default value.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := ioutil.ReadFile(path) // nolint: gosec
	if err != nil {
		return cfg, errors.Wrap(err, "unable to read config file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "unable to parse config file %s", path)
	}
	return cfg, nil
}

// Bounds returns the grid size.
func (c Config) Bounds() rules.Bounds {
	return rules.Bounds{Width: c.Width, Height: c.Height}
}

// TickRate converts the tick interval into a limiter rate. A zero or
// negative interval means ticks are not throttled.
func (c Config) TickRate() rate.Limit {
	if c.Tick <= 0 {
		return rate.Inf
	}
	return rate.Every(c.Tick)
}

// Limiter returns a limiter releasing one tick per interval.
func (c Config) Limiter() *rate.Limiter {
	return rate.NewLimiter(c.TickRate(), 1)
}

// SeedOrNow returns the configured seed, or a time based one when unset.
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Validate checks the configuration can start a game.
func (c Config) Validate() error {
	if err := c.Bounds().Validate(); err != nil {
		return err
	}
	if c.FoodAttempts < 0 {
		return errors.Errorf("config: food attempts must not be negative, got %d", c.FoodAttempts)
	}
	return nil
}

func getEnvInt(varName string, defaults int) int {
	return int(parseEnv(varName, int64(defaults), 32))
}

func getEnvInt64(varName string, defaults int64) int64 {
	return parseEnv(varName, defaults, 64)
}

func parseEnv(varName string, defaults int64, bitSize int) int64 {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, bitSize)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"Var":     varName,
			"Default": defaults,
		}).Warn("ignoring invalid environment value")
		return defaults
	}
	return intVal
}
