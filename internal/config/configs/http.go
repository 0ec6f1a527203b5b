package configs

import "time"

// HTTP defines configuration for the HTTP server. Only the listen port and
// the graceful shutdown window are configurable; the service always binds
// all interfaces.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	// ShutdownTimeout bounds how long in-flight requests may finish after a
	// termination signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
