package normalizer

// CacheKey exposes the result cache key for tests.
func CacheKey(command string, opts Options) string {
	return opts.cacheKey(command)
}
