package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	AppHost string `validate:"required"`
	AppPort string `validate:"required,numeric"`

	LogLevel string `validate:"oneof=debug info warn error fatal"`

	ShutdownTimeout time.Duration `validate:"gt=0"`
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppHost:         getenv("APP_HOST", "0.0.0.0"),
		AppPort:         getenv("APP_PORT", "3000"),
		LogLevel:        getenv("LOG_LEVEL", "debug"),
		ShutdownTimeout: 10 * time.Second,
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.ShutdownTimeout = d
		}
	}
	return c
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return fmt.Errorf("invalid config field %s (%s)", ve[0].Field(), ve[0].Tag())
		}
		return err
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err)
	}
	return nil
}

func (c *Config) Addr() string { return net.JoinHostPort(c.AppHost, c.AppPort) }
