package configs

import "time"

// Redis holds configuration for the media handle cache. Addr accepts either
// a redis:// URL or a plain host:port. HandleTTL bounds how long a resolved
// platform handle stays cached; zero disables expiry.
type Redis struct {
	Addr      string        `env:"ADDRESS" envDefault:"localhost:6379"`
	HandleTTL time.Duration `env:"HANDLE_TTL" envDefault:"720h"`
}
