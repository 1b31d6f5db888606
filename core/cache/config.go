package cache

import "time"

// Config holds configuration for the catalog snapshot cache.
type Config struct {
	// TTLSeconds is the time-to-live of cached entries. Zero disables caching.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"300"`
	// RedisAddr selects the Redis backend when set (host:port). Empty uses process memory.
	RedisAddr string `mapstructure:"redis_addr" default:""`
	// RedisPassword authenticates against Redis.
	RedisPassword string `mapstructure:"redis_password" default:""`
	// RedisDB is the Redis logical database index.
	RedisDB int `mapstructure:"redis_db" default:"0"`
}

// TTL returns the configured time-to-live.
func (c Config) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TTLSeconds) * time.Second
}
