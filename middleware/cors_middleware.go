// middleware/cors_middleware.go
package middleware

import (
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// GlobalCORS creates the CORS middleware. The admin console sends credentials,
// so a wildcard origin is not allowed; origins come from FRONTEND_URL plus the
// local dev servers.
func GlobalCORS() echo.MiddlewareFunc {
	origins := []string{
		"http://localhost:5173", // Vite dev server
		"http://localhost:3000",
	}

	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		origins = append(origins, strings.TrimRight(frontend, "/"))
	}
	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "HEAD", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           86400,
	})
}
