// controllers/log_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowventory/backend/repositories"
)

// LogController serves the audit trail, read-only
type LogController struct {
	logs repositories.LogRepository
}

// NewLogController creates a new log controller
func NewLogController(logs repositories.LogRepository) *LogController {
	return &LogController{logs: logs}
}

// GetRecentLogs returns the most recent audit entries, newest first
func (lc *LogController) GetRecentLogs(c echo.Context) error {
	logs, err := lc.logs.ListRecent(c.Request().Context(), repositories.MaxRecentLogs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}
