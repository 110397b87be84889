// ABOUTME: Echo server construction: middleware chain and route table
package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	appmiddleware "definex/middleware"
)

// NewHTTPServer creates and configures the Echo HTTP server.
func NewHTTPServer(deps *Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Custom error handler for consistent error responses
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler(deps.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmiddleware.RequestIDMiddleware())
	e.Use(appmiddleware.LoggingMiddleware(deps.Logger))

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// API routes
	api := e.Group("/api")
	api.POST("/lookup", deps.LookupHandler.HandleLookup)
	api.GET("/dictionary/:locale/:entry", deps.DictionaryHandler.HandleDefine)
	api.GET("/llm/:entry", deps.LLMHandler.HandleDefine)
	api.GET("/translate/:sentence", deps.LLMHandler.HandleTranslate)
	api.GET("/tts/:text", deps.TTSHandler.HandleSynthesizeGet)
	api.POST("/tts", deps.TTSHandler.HandleSynthesizePost)
	api.GET("/saved", deps.SavedHandler.HandleList)
	api.POST("/saved", deps.SavedHandler.HandleSave)
	api.DELETE("/saved", deps.SavedHandler.HandleUnsave)
	api.GET("/cache/stats", deps.CacheHandler.HandleStats)
	api.GET("/cache/clear", deps.CacheHandler.HandleClear)
	api.GET("/v1/health", deps.HealthHandler.HandleHealth)

	return e
}

// StartHTTPServer starts the HTTP server in a goroutine.
func StartHTTPServer(e *echo.Echo, port int, log *slog.Logger) {
	go func() {
		addr := fmt.Sprintf(":%d", port)
		log.Info("starting HTTP server", "port", port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()
}
