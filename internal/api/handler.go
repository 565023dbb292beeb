package api

import (
	"github.com/gin-gonic/gin"

	"salescope/internal/analyzer"
	"salescope/internal/config"
)

// Handler API 处理器
type Handler struct {
	cfg       *config.AppConfig
	analysis  analyzer.Config
	downloads *downloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(cfg *config.AppConfig) *Handler {
	ac := analyzer.DefaultConfig()
	if cfg.Analyzer.MatchThreshold > 0 {
		ac.Threshold = cfg.Analyzer.MatchThreshold
	}

	return &Handler{
		cfg:       cfg,
		analysis:  ac,
		downloads: newDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 上传分析
	router.POST("/analyze", h.Analyze)

	// 生成文档下载
	router.GET("/download/:token", h.Download)
}
