package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// JWTSecret signs and verifies the bearer tokens issued by the account feature.
	JWTSecret string `mapstructure:"jwt_secret" default:""`
	// TokenTTLMinutes is the lifetime of issued access tokens.
	TokenTTLMinutes int `mapstructure:"token_ttl_minutes" default:"1440"`
}

const (
	// DefaultTokenTTL is used when TokenTTLMinutes is not positive.
	DefaultTokenTTL = 24 * time.Hour
)

// TokenTTL returns the configured token lifetime, falling back to DefaultTokenTTL.
func (c Config) TokenTTL() time.Duration {
	if c.TokenTTLMinutes <= 0 {
		return DefaultTokenTTL
	}
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// HasSecret reports whether a JWT secret is configured.
func (c Config) HasSecret() bool {
	return c.JWTSecret != ""
}
