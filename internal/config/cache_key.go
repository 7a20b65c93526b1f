package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ContactRateKey returns the Redis counter key for a client's contact
// submissions within the given window bucket.
func (r *CacheKeyStruct) ContactRateKey(clientIP string, bucket int64) string {
	return fmt.Sprintf("ratelimit:contact:%s:%d", clientIP, bucket)
}

var CacheKey = NewCacheKeyStruct()
