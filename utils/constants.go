package utils

import "time"

// Redis key prefixes.
const (
	IdentityCachePrefix = "identity:"
)

// Cache TTLs.
const (
	IdentityCacheTTL = 15 * time.Minute
)
