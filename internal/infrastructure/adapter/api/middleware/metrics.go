package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// RequestObserver records finished HTTP requests
type RequestObserver interface {
	ObserveRequest(method, route, status string)
}

// Metrics counts requests by route template so secret paths never become label values
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
