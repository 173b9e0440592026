package middleware

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/gin-gonic/gin"
)

// VisitorKey is the gin context key holding the hashed client identifier
const VisitorKey = "visitor"

var untrackedPrefixes = []string{"/static/", "/images/", "/favicon", "/metrics", "/healthz"}

// IPHasher turns client IPs into stable, non-reversible identifiers for the
// lifetime of the process
type IPHasher struct {
	salt string
}

// NewIPHasher creates a hasher with a random per-process salt
func NewIPHasher() (*IPHasher, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return &IPHasher{salt: hex.EncodeToString(b)}, nil
}

// Hash returns the truncated salted SHA-256 of ip
func (h *IPHasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// VisitorTracking counts page views per route and exposes the hashed client
// id to handlers. Static assets and internal endpoints are skipped, and
// requests sending DNT: 1 are never counted.
func VisitorTracking(h *IPHasher, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(VisitorKey, h.Hash(c.ClientIP()))

		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		route := c.FullPath()
		if route == "" || c.Writer.Status() >= 400 {
			return
		}
		m.PageViews.WithLabelValues(route).Inc()
	}
}

// Visitor returns the hashed client id set by VisitorTracking
func Visitor(c *gin.Context) string {
	return c.GetString(VisitorKey)
}
