package config

import (
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

const defaultTokenTTL = 30 * time.Minute

type Config struct {
	Database pg.Options
	App      struct {
		Host        string
		Port        int
		LogQueries  bool
		SlowQueryMs int
	}
	Auth struct {
		SecretKey                string
		AccessTokenExpireMinutes int
	}
	Owner struct {
		Name     string
		Password string
	}
}

// TokenTTL returns the access token lifetime, 30 minutes when unset.
func (c Config) TokenTTL() time.Duration {
	if c.Auth.AccessTokenExpireMinutes <= 0 {
		return defaultTokenTTL
	}

	return time.Duration(c.Auth.AccessTokenExpireMinutes) * time.Minute
}

// SlowQuery returns the duration after which a statement is reported as slow.
// Zero disables the report.
func (c Config) SlowQuery() time.Duration {
	if c.App.SlowQueryMs <= 0 {
		return 0
	}

	return time.Duration(c.App.SlowQueryMs) * time.Millisecond
}

// Overrides holds values taken from flags or the environment. Empty values keep
// what the TOML file set.
type Overrides struct {
	DatabaseURL     string
	MaxConns        int
	MaxConnLifetime string
	SecretKey       string
	OwnerName       string
	OwnerPassword   string
}

func (c *Config) Apply(o Overrides) error {
	if o.DatabaseURL != "" {
		opt, err := pg.ParseURL(o.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to parse database URL: %w", err)
		}
		opt.MaxRetries = 3
		c.Database = *opt
	}

	if o.MaxConns > 0 {
		c.Database.PoolSize = o.MaxConns
	}

	if o.MaxConnLifetime != "" {
		lifetime, err := time.ParseDuration(o.MaxConnLifetime)
		if err != nil {
			return fmt.Errorf("failed to parse DB_MAX_CONN_LIFETIME: %w", err)
		}
		c.Database.MaxConnAge = lifetime
	}

	if o.SecretKey != "" {
		c.Auth.SecretKey = o.SecretKey
	}
	if o.OwnerName != "" {
		c.Owner.Name = o.OwnerName
	}
	if o.OwnerPassword != "" {
		c.Owner.Password = o.OwnerPassword
	}

	return nil
}

// Validate reports settings the service cannot start without.
func (c Config) Validate() error {
	switch {
	case c.Database.Addr == "" && c.Database.Database == "":
		return fmt.Errorf("database connection is not configured")
	case c.Auth.SecretKey == "":
		return fmt.Errorf("auth secret key is not configured")
	case c.Owner.Name == "" || c.Owner.Password == "":
		return fmt.Errorf("owner credentials are not configured")
	}

	return nil
}
