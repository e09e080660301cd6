package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devahmed4965/CheckerApp/internal/service/excel"
	"github.com/devahmed4965/CheckerApp/internal/store"
)

// GetShipment 按单号查询历史库中的最新记录
// GET /api/shipments/:id
func (h *Handler) GetShipment(c *gin.Context) {
	id := excel.NormalizeID(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少单号"})
		return
	}

	shipment, err := h.store.GetShipmentByShipmentID(id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "未找到该单号"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询失败"})
		return
	}
	c.JSON(http.StatusOK, shipment)
}

// ClearShipments 清空全部货运数据（经理批量清除）
// POST /api/shipments/clear
func (h *Handler) ClearShipments(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	if err := h.store.DeleteAllShipments(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "清空数据失败"})
		return
	}
	sess.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "货运数据已清空"})
}
