package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"hospitality/services/report"
	"hospitality/utils"

	"github.com/gin-gonic/gin"
)

const (
	roomStatsCacheKey = "stats:rooms"
	roomStatsCacheTTL = 30 * time.Second
)

// StatsHandler serves operational reports. The occupancy snapshot is cached
// briefly in Redis; dashboards poll it and the counts tolerate being a few
// seconds stale.
type StatsHandler struct {
	Reports report.ReportService
}

// RoomStats returns the occupancy snapshot.
func (h *StatsHandler) RoomStats(c *gin.Context) {
	ctx := context.Background()
	cache := utils.GetCacheClient()

	if data, err := cache.Get(ctx, roomStatsCacheKey).Result(); err == nil {
		var stats report.RoomStats
		if err := json.Unmarshal([]byte(data), &stats); err == nil {
			c.JSON(http.StatusOK, stats)
			return
		}
	}

	stats, err := h.Reports.GetRoomStats()
	if err != nil {
		respondError(c, err)
		return
	}

	if b, err := json.Marshal(stats); err == nil {
		_ = cache.Set(ctx, roomStatsCacheKey, b, roomStatsCacheTTL).Err()
	}
	c.JSON(http.StatusOK, stats)
}
