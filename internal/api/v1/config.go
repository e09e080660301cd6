package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devahmed4965/CheckerApp/internal/store"
)

// ExcelSettingsResponse 公司 Excel 导入设置
type ExcelSettingsResponse struct {
	IDColumn       string `json:"idColumn"`
	StatusColumn   string `json:"statusColumn"`
	LineStatuses   string `json:"lineStatuses"`   // 逗号分隔
	ReturnStatuses string `json:"returnStatuses"` // 逗号分隔
}

// GetExcelSettings 获取公司的 Excel 导入设置
// GET /api/config/excel
func (h *Handler) GetExcelSettings(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	if sess.CompanyID == 0 {
		c.JSON(http.StatusOK, ExcelSettingsResponse{})
		return
	}

	company, err := h.store.GetCompany(sess.CompanyID)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusOK, ExcelSettingsResponse{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取配置失败"})
		return
	}

	c.JSON(http.StatusOK, ExcelSettingsResponse{
		IDColumn:       company.ExcelIDColumn,
		StatusColumn:   company.ExcelStatusColumn,
		LineStatuses:   company.ExcelLineStatuses,
		ReturnStatuses: company.ExcelReturnStatuses,
	})
}

// UpdateExcelSettingsRequest 更新 Excel 导入设置请求
type UpdateExcelSettingsRequest struct {
	IDColumn       string `json:"idColumn"`
	StatusColumn   string `json:"statusColumn"`
	LineStatuses   string `json:"lineStatuses"`
	ReturnStatuses string `json:"returnStatuses"`
}

// UpdateExcelSettings 更新公司的 Excel 导入设置
// PATCH /api/config/excel
func (h *Handler) UpdateExcelSettings(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}
	if sess.CompanyID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "当前账号未绑定公司"})
		return
	}

	var req UpdateExcelSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	err := h.store.UpdateExcelSettings(sess.CompanyID, req.IDColumn, req.StatusColumn, req.LineStatuses, req.ReturnStatuses)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "公司不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新配置失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "配置更新成功"})
}
