package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version 应用版本
const Version = "1.0.0"

// StatusResponse 系统状态响应
type StatusResponse struct {
	Name           string  `json:"name"`
	Version        string  `json:"version"`
	MatchThreshold float64 `json:"matchThreshold"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Name:           "salescope",
		Version:        Version,
		MatchThreshold: h.analysis.Threshold,
	})
}
