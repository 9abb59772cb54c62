// Package cache provides the bounded caches used by the raster backend for
// shaped text lines and decoded images.
//
// Cache[K, V] is a thread-safe cache with a soft limit. When an insert
// takes it past the limit, the least recently used quarter of the entries
// is evicted.
//
//	images := cache.New[string, image.Image](32)
//	img, err := images.GetOrCreate(src, func() (image.Image, error) {
//	    return decode(src)
//	})
//
// Cache must not be copied after creation (it contains a mutex).
package cache
