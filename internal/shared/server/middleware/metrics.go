package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records per-route request counts and latency.
type RequestObserver interface {
	ObserveRequest(route string, status int, duration time.Duration)
}

// Metrics reports every request to obs, labelled by the matched route
// template so path parameters do not explode label cardinality.
func Metrics(obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if obs == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.ObserveRequest(route, c.Writer.Status(), time.Since(start))
	}
}
