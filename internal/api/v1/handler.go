package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devahmed4965/CheckerApp/internal/importer"
	"github.com/devahmed4965/CheckerApp/internal/offline"
	"github.com/devahmed4965/CheckerApp/internal/service/checker"
	"github.com/devahmed4965/CheckerApp/internal/store"
)

// sessionTokenHeader 登录后客户端在每个请求上携带的令牌头
const sessionTokenHeader = "X-Session-Token"

// Handler V1 API 处理器
type Handler struct {
	store       *store.Store
	registry    *checker.Registry
	coordinator *importer.Coordinator
	queue       *offline.Queue
	downloads   *exportDownloadStore
	exportsDir  string
	log         *zap.Logger
}

// NewHandler 创建 V1 API 处理器
func NewHandler(store *store.Store, registry *checker.Registry, coordinator *importer.Coordinator, queue *offline.Queue, exportsDir string, log *zap.Logger) *Handler {
	return &Handler{
		store:       store,
		registry:    registry,
		coordinator: coordinator,
		queue:       queue,
		downloads:   newExportDownloadStore(),
		exportsDir:  exportsDir,
		log:         log,
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 登录
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)

	// 员工管理
	router.POST("/employees", h.CreateEmployee)
	router.GET("/employees", h.ListEmployees)
	router.PATCH("/employees/:id", h.UpdateEmployee)
	router.DELETE("/employees/:id", h.DeleteEmployee)

	// 货运记录（全量历史库）
	router.GET("/shipments/:id", h.GetShipment)
	router.POST("/shipments/clear", h.ClearShipments)

	// 面板会话（当前批次工作集）
	router.POST("/session/shipments", h.AddManualShipments)
	router.GET("/session/shipments", h.ListSessionShipments)
	router.POST("/session/import", h.ImportManifest)
	router.POST("/session/import/columns", h.InspectManifestColumns)
	router.POST("/session/check", h.Check)
	router.POST("/session/undo", h.Undo)
	router.GET("/session/unmatched", h.ListUnmatched)
	router.POST("/session/mark-checked", h.MarkChecked)
	router.POST("/session/mark-unchecked", h.MarkUnchecked)

	// 导出
	router.POST("/session/export", h.ExportSession)
	router.GET("/export/download/:token", h.DownloadExport)

	// 离线队列
	router.GET("/offline", h.OfflineStatus)
	router.POST("/offline/sync", h.SyncOffline)

	// 考勤
	router.POST("/attendance", h.RecordAttendance)

	// 配置与报表
	router.GET("/config/excel", h.GetExcelSettings)
	router.PATCH("/config/excel", h.UpdateExcelSettings)
	router.GET("/reports/monthly", h.MonthlyReport)

	// 任务
	router.GET("/tasks", h.ListTasks)
	router.POST("/tasks", h.CreateTask)

	// 系统
	router.GET("/status", h.GetStatus)
	router.GET("/version", h.GetVersion)
}

// currentSession 从请求令牌取回面板会话
// 令牌缺失或失效时写 401 并返回 nil，调用方直接 return
func (h *Handler) currentSession(c *gin.Context) *checker.Session {
	token := c.GetHeader(sessionTokenHeader)
	if token == "" {
		token = c.Query("token")
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
		return nil
	}
	sess, ok := h.registry.Get(token)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "会话已失效，请重新登录"})
		return nil
	}
	return sess
}
