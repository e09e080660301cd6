package v1

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devahmed4965/CheckerApp/internal/service/excel"
)

// ExportSession 导出当前工作集为检查结果工作簿
// POST /api/session/export
// 生成文件后返回一次性下载地址
func (h *Handler) ExportSession(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	recs := sess.Records()
	rows := make([]excel.ExportRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, excel.ExportRow{
			ID:      rec.ID,
			Status:  rec.Status.Storage(),
			Checked: rec.Checked,
		})
	}

	file, err := excel.ExportInspection(rows, sess.Unmatched(), sess.EmployeeName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成导出文件失败: " + err.Error()})
		return
	}
	defer file.Close()

	fileName := excel.DefaultExportName(sess.SourceFile())
	tempPath := filepath.Join(h.exportsDir, fmt.Sprintf("checkerapp_export_%d.xlsx", time.Now().UnixNano()))
	if err := file.SaveAs(tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写入导出文件失败: " + err.Error()})
		_ = os.Remove(tempPath)
		return
	}

	token := h.downloads.issue(tempPath, fileName, 10*time.Minute)

	c.JSON(http.StatusOK, gin.H{
		"downloadUrl": fmt.Sprintf("/api/export/download/%s", token),
		"fileName":    fileName,
	})
}

// DownloadExport 下载导出的工作簿（一次性）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 token"})
		return
	}

	ticket, ok := h.downloads.redeem(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接已失效"})
		return
	}

	if _, err := os.Stat(ticket.filePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "导出文件不存在"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ticket.fileName))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(ticket.filePath)

	_ = os.Remove(ticket.filePath)
}
