package main

import (
	"net/http"
	"strings"

	"github.com/abhishek622/entrystore/pkg/response"
	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	switch {
	case app.Config.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case app.Config.IsDevelopment():
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.RequestIDMiddleware())
	r.Use(app.LoggerMiddleware())
	r.Use(app.CORSMiddleware())

	r.GET("/healthz", app.Handler.Health)

	api := r.Group("/api")
	{
		api.GET("/entries", app.Handler.ListEntries)
		api.POST("/entries", app.Handler.CreateEntry)
		api.DELETE("/entries/:id", app.Handler.DeleteEntry)
	}

	r.NoRoute(app.staticHandler())

	return r
}

// staticHandler serves the browser client for any GET that no API route claimed.
func (app *application) staticHandler() gin.HandlerFunc {
	files := http.FileServer(http.FS(app.Static))
	return func(c *gin.Context) {
		method := c.Request.Method
		if (method != http.MethodGet && method != http.MethodHead) || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.NotFound(c, "")
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}
