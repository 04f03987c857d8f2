package config

import "time"

type RateLimitConfig struct {
	Enabled     bool
	Burst       int
	RefillEvery time.Duration
	TTL         time.Duration
}

func LoadRateLimitConfig() RateLimitConfig {
	def := RateLimitConfig{
		Enabled:     envBool("RATE_LIMIT_ENABLED", true),
		Burst:       envInt("RATE_LIMIT_BURST", 60),
		RefillEvery: envDur("RATE_LIMIT_REFILL_EVERY", time.Second),
		TTL:         envDur("RATE_LIMIT_TTL", 10*time.Minute),
	}
	if def.Burst < 1 {
		def.Burst = 1
	}
	if def.RefillEvery <= 0 {
		def.RefillEvery = time.Second
	}
	minTTL := 5 * def.RefillEvery
	if def.TTL < minTTL {
		def.TTL = minTTL
	}
	return def
}
