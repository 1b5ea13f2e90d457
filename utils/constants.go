// File: utils/constants.go
package utils

import "time"

// DateCachePrefix is the prefix for cached calendar date sets.
const DateCachePrefix = "avail:dates:"

// DateCacheTTL bounds how stale a cached calendar date set may get. The
// projection is non-authoritative, so a short TTL is enough.
const DateCacheTTL = 30 * time.Second
