package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetdesk-backend/shared/utils/cache"
)

// GetCacheStats returns cache statistics
// @Summary Get cache statistics
// @Description Get statistics about the file listing cache
// @Tags cache
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Cache statistics"
// @Failure 503 {object} map[string]string "Cache manager not available"
// @Failure 500 {object} map[string]interface{} "Failed to get cache stats"
// @Router /cache/stats [get]
func GetCacheStats(c *gin.Context) {
	cacheManager := cache.GetCacheManager()
	if cacheManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Cache manager not available",
		})
		return
	}

	stats, err := cacheManager.GetCacheStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get cache stats",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cache_stats": stats,
		"service":     "asset",
	})
}
