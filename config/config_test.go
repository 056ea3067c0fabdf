package config

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[Database]
Addr = "localhost:5432"
User = "blog"
Password = "blog"
Database = "blog_portal"
PoolSize = 5

[App]
Host = "0.0.0.0"
Port = 8000
LogQueries = true
SlowQueryMs = 250

[Auth]
SecretKey = "from-file"
AccessTokenExpireMinutes = 15

[Owner]
Name = "admin"
Password = "admin"
`

func TestDecode(t *testing.T) {
	var cfg Config
	_, err := toml.Decode(sample, &cfg)
	require.NoError(t, err)

	assert.Equal(t, "localhost:5432", cfg.Database.Addr)
	assert.Equal(t, 8000, cfg.App.Port)
	assert.True(t, cfg.App.LogQueries)
	assert.Equal(t, 250*time.Millisecond, cfg.SlowQuery())
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL())
	assert.Equal(t, "admin", cfg.Owner.Name)
	assert.NoError(t, cfg.Validate())
}

func TestTokenTTLDefault(t *testing.T) {
	assert.Equal(t, 30*time.Minute, Config{}.TokenTTL())
}

func TestApply(t *testing.T) {
	var cfg Config
	_, err := toml.Decode(sample, &cfg)
	require.NoError(t, err)

	err = cfg.Apply(Overrides{
		DatabaseURL:     "postgres://u:p@db:5433/other?sslmode=disable",
		MaxConns:        12,
		MaxConnLifetime: "90s",
		SecretKey:       "from-env",
	})
	require.NoError(t, err)

	assert.Equal(t, "db:5433", cfg.Database.Addr)
	assert.Equal(t, "other", cfg.Database.Database)
	assert.Equal(t, 12, cfg.Database.PoolSize)
	assert.Equal(t, 90*time.Second, cfg.Database.MaxConnAge)
	assert.Equal(t, "from-env", cfg.Auth.SecretKey)
	assert.Equal(t, "admin", cfg.Owner.Name)

	assert.Error(t, cfg.Apply(Overrides{DatabaseURL: "mysql://nope"}))
	assert.Error(t, cfg.Apply(Overrides{MaxConnLifetime: "soon"}))
}

func TestValidate(t *testing.T) {
	var cfg Config
	assert.Error(t, cfg.Validate())

	cfg.Database.Addr = "localhost:5432"
	assert.Error(t, cfg.Validate())

	cfg.Auth.SecretKey = "k"
	assert.Error(t, cfg.Validate())

	cfg.Owner.Name, cfg.Owner.Password = "admin", "admin"
	assert.NoError(t, cfg.Validate())
}
