package configs

import (
	"fmt"
	"time"
)

// HTTP configures the editor API server. It listens on every interface.
type HTTP struct {
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	// ShutdownTimeout bounds the drain after SIGINT or SIGTERM. Saves still
	// running when it expires end with the process.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Addr is the listen address for http.Server.
func (c HTTP) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
