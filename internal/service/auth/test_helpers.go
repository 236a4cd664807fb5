package auth

import "time"

// NewTestJWTService creates a JWT service with fixed secrets, lifetimes,
// and an injectable clock for predictable testing. Not for production use.
func NewTestJWTService(
	accessSecret, refreshSecret string,
	accessLifetime, refreshLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		accessKey:       []byte(accessSecret),
		refreshKey:      []byte(refreshSecret),
		accessLifetime:  accessLifetime,
		refreshLifetime: refreshLifetime,
		timeFunc:        timeFunc,
		clockSkew:       0, // No leeway so expiry tests are exact
	}
}
