package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OfflineStatus 离线队列积压情况
// GET /api/offline
func (h *Handler) OfflineStatus(c *gin.Context) {
	if sess := h.currentSession(c); sess == nil {
		return
	}

	pending, err := h.queue.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取离线队列失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": pending})
}

// SyncOffline 手动触发离线队列回放（面板的"同步离线货运"按钮）
// POST /api/offline/sync
// 与周期任务走同一条回放路径，成功后返回入库条数
func (h *Handler) SyncOffline(c *gin.Context) {
	if sess := h.currentSession(c); sess == nil {
		return
	}

	synced, err := h.queue.Sync(h.store)
	if err != nil {
		h.log.Warn("manual offline sync failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "同步失败，请稍后重试"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced": synced})
}
