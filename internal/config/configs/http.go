package configs

import "time"

// HTTP configures the planner API server.
type HTTP struct {
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds graceful shutdown; in-flight plans that take
	// longer are cut off.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
