// Package http assembles the gin engine from the feature modules.
package http

import "github.com/gin-gonic/gin"

// Module is a feature area that mounts routes on the shared router.
type Module interface {
	Name() string
	RegisterRoutes(ctx RouterContext)
}

// RouterContext carries the route groups and shared middleware a module may
// attach to.
type RouterContext struct {
	Engine *gin.Engine
	API    *gin.RouterGroup

	// ImportRateLimit guards endpoints that trigger outbound fetches.
	ImportRateLimit gin.HandlerFunc
}
