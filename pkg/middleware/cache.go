package middleware

import (
	"bytes"
	"fmt"
	"net/http"

	"food-ordering/pkg/cache"

	"go.uber.org/zap"
)

// cacheWriter buffers the response body so a successful reply can be stored
type cacheWriter struct {
	http.ResponseWriter
	statusCode int
	buf        bytes.Buffer
}

func (cw *cacheWriter) WriteHeader(code int) {
	cw.statusCode = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cacheWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// CacheResponse serves read-only endpoints through the response cache. A hit
// replays the stored body without touching the data source; a miss captures
// the outcome and stores it only when the handler answered 200. Both paths
// carry the max-age directive and an X-Cache indicator.
func CacheResponse(store *cache.Cache, ttlSeconds int, logger *zap.Logger) func(http.Handler) http.Handler {
	maxAge := fmt.Sprintf("public, max-age=%d", ttlSeconds)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.URL.RequestURI()

			if body, ok := store.Get(key); ok {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Cache-Control", maxAge)
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(body)
				return
			}

			w.Header().Set("Cache-Control", maxAge)
			w.Header().Set("X-Cache", "MISS")

			cw := &cacheWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(cw, r)

			// Only successful reads are cached
			if cw.statusCode == http.StatusOK {
				store.Set(key, cw.buf.Bytes(), ttlSeconds)
				logger.Debug("Response cached",
					zap.String("key", key),
					zap.Int("ttl_seconds", ttlSeconds),
					zap.Int("bytes", cw.buf.Len()),
				)
			}
		})
	}
}
