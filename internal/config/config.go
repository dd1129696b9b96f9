package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production     bool          `env:"PRODUCTION" envDefault:"false"`
	Port           string        `env:"PORT" envDefault:"80"`
	PostgresUrl    string        `env:"POSTGRES_URL"`
	RedisUrl       string        `env:"REDIS_URL" envDefault:"redis:6379"`
	ActiveCacheTTL time.Duration `env:"ACTIVE_CACHE_TTL" envDefault:"60s"`
	CalendarName   string        `env:"CALENDAR_NAME" envDefault:"Event Scheduler"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func RedisURL() string {
	return conf.RedisUrl
}

func ActiveCacheTTL() time.Duration {
	return conf.ActiveCacheTTL
}

func CalendarName() string {
	return conf.CalendarName
}
