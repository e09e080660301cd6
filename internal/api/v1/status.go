package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devahmed4965/CheckerApp/internal/store"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	DatabaseOK     bool  `json:"databaseOk"`
	TotalShipments int64 `json:"totalShipments"`
	CheckedCount   int64 `json:"checkedCount"`
	SessionTotal   int   `json:"sessionTotal"`   // 当前会话工作集大小（未登录为 0）
	SessionPending int   `json:"sessionPending"` // 当前会话未检查数
}

// GetStatus 获取系统状态
// GET /api/status
// 不要求登录；携带有效令牌时附带会话统计
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{}

	if err := h.store.Ping(); err == nil {
		resp.DatabaseOK = true
		total, checked, err := h.store.CountShipments()
		if err == nil {
			resp.TotalShipments = total
			resp.CheckedCount = checked
		}
	}

	if token := c.GetHeader(sessionTokenHeader); token != "" {
		if sess, ok := h.registry.Get(token); ok {
			resp.SessionTotal = sess.Count()
			resp.SessionPending = len(sess.Remaining())
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetVersion 客户端更新检查
// GET /api/version?companyId=
// 返回公司配置的版本清单地址，客户端自行比对
func (h *Handler) GetVersion(c *gin.Context) {
	companyID, _ := strconv.ParseUint(c.Query("companyId"), 10, 32)
	if companyID == 0 {
		c.JSON(http.StatusOK, gin.H{"versionUrl": ""})
		return
	}

	company, err := h.store.GetCompany(uint(companyID))
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "公司不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"versionUrl": company.VersionURL})
}
