package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	internalRedis "drivelog/internal/redis"
)

const idempotencyHeader = "Idempotency-Key"

// responseWriter wraps gin.ResponseWriter to capture the response.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response for a repeated POST that
// carries the same Idempotency-Key. Cache failures never fail the request.
func IdempotencyMiddleware(cache internalRedis.ResponseCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := c.Request.URL.Path + ":" + key

		cached, err := cache.Get(ctx, cacheKey)
		if err != nil {
			LoggerFrom(c).WithError(err).Warn("idempotency lookup failed")
		}
		if cached != nil {
			for k, v := range cached.Headers {
				for _, val := range v {
					c.Header(k, val)
				}
			}
			c.Header("Idempotent-Replayed", "true")
			c.Data(cached.StatusCode, "application/json", cached.Body)
			c.Abort()
			return
		}

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = w

		c.Next()

		// Only successful or client-error responses are replayable.
		status := c.Writer.Status()
		if status >= 200 && status < 500 {
			resp := &internalRedis.CachedResponse{
				StatusCode: status,
				Body:       w.body.Bytes(),
				Headers:    extractResponseHeaders(c),
			}
			if err := cache.Set(ctx, cacheKey, resp); err != nil {
				LoggerFrom(c).WithError(err).Warn("idempotency store failed")
			}
		}
	}
}

// extractResponseHeaders keeps the headers worth replaying.
func extractResponseHeaders(c *gin.Context) http.Header {
	headers := make(http.Header)
	if ct := c.Writer.Header().Get("Content-Type"); ct != "" {
		headers.Set("Content-Type", ct)
	}
	return headers
}
