package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devahmed4965/CheckerApp/internal/importer"
	"github.com/devahmed4965/CheckerApp/internal/service/excel"
)

// ImportManifest 导入货运清单 (SSE 流式响应)
// POST /api/session/import
// 可选表单字段 idColumn/statusColumn：两者都提供时跳过自动列解析；
// offline=true 时批次写入离线队列而非数据库
func (h *Handler) ImportManifest(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的表单数据"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	uploadedFile := files[0]

	// 保存到临时目录
	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fmt.Sprintf("checkerapp_import_%d_%s", time.Now().Unix(), uploadedFile.Filename))

	if err := c.SaveUploadedFile(uploadedFile, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败"})
		return
	}
	defer os.Remove(tempFilePath)

	cfg, err := h.store.ImportConfigForCompany(sess.CompanyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取导入配置失败"})
		return
	}

	// 设置 SSE 响应头
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	progressChan := h.coordinator.Import(importer.ImportOptions{
		FilePath:     tempFilePath,
		ManualID:     c.PostForm("idColumn"),
		ManualStatus: c.PostForm("statusColumn"),
		Offline:      c.PostForm("offline") == "true",
		Session:      sess,
		Config:       cfg,
	})

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "不支持流式响应"})
		return
	}

	for event := range progressChan {
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}

		// SSE 格式: data: {json}\n\n
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}

// InspectManifestColumns 读取清单表头（手动选列时的第一步）
// POST /api/session/import/columns
// 上传文件，返回第一个工作表的表头列表供面板展示
func (h *Handler) InspectManifestColumns(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的表单数据"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fmt.Sprintf("checkerapp_inspect_%d_%s", time.Now().Unix(), files[0].Filename))
	if err := c.SaveUploadedFile(files[0], tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败"})
		return
	}
	defer os.Remove(tempFilePath)

	manifest, err := excel.OpenManifest(tempFilePath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取文件失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"headers": manifest.Headers,
		"rows":    manifest.RowCount(),
	})
}
