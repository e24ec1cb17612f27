package middleware

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lilfrek386-a11y/library/pkg/cache"
)

// CacheOptions configures the response cache wrapper for one read endpoint.
// The expiry, namespace, and key builder are visible at the route
// registration site.
type CacheOptions struct {
	Cache     cache.Cache
	Keys      *cache.KeyBuilder
	Namespace string
	TTL       time.Duration

	// ElementParam names the path parameter carrying the entity id
	// (e.g. "id"). Empty for collection endpoints.
	ElementParam string
}

// cachedResponse is the serialized payload stored per cache entry.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// CacheResponse serves read endpoints from the cache when possible.
// On a miss the downstream response is captured and stored under the
// derived key with the configured TTL. Cache failures are logged and the
// request proceeds uncached; the cache is best-effort.
func CacheResponse(opts CacheOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := deriveKey(opts, c)
		if !ok {
			// Unparsable element id; let the handler reject it.
			c.Next()
			return
		}

		ctx := c.Request.Context()

		var cached cachedResponse
		found, err := opts.Cache.Get(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Cache lookup failed")
		}
		if found {
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		entry := cachedResponse{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		}
		if err := opts.Cache.Set(ctx, key, entry, opts.TTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Cache store failed")
		}
	}
}

// deriveKey builds the cache key from the request. Returns ok=false when the
// element path parameter is present but not a valid integer id.
func deriveKey(opts CacheOptions, c *gin.Context) (string, bool) {
	var elementID *int64
	if opts.ElementParam != "" {
		id, err := strconv.ParseInt(c.Param(opts.ElementParam), 10, 64)
		if err != nil {
			return "", false
		}
		elementID = &id
	}

	pathParams := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		pathParams[p.Key] = p.Value
	}

	query := c.Request.URL.Query()
	extras := make(map[string]interface{}, len(query))
	for k, v := range query {
		if len(v) == 1 {
			extras[k] = v[0]
		} else {
			extras[k] = v
		}
	}

	return opts.Keys.Build(opts.Namespace, elementID, c.HandlerName(), pathParams, extras), true
}

// bodyCaptureWriter tees the response body so it can be stored after the
// handler runs.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
