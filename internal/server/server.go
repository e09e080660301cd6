package server

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	v1 "github.com/devahmed4965/CheckerApp/internal/api/v1"
	"github.com/devahmed4965/CheckerApp/internal/config"
	"github.com/devahmed4965/CheckerApp/internal/importer"
	"github.com/devahmed4965/CheckerApp/internal/offline"
	"github.com/devahmed4965/CheckerApp/internal/service/checker"
	"github.com/devahmed4965/CheckerApp/internal/store"
)

// sessionIdleTTL 空闲面板会话的保留时长
const sessionIdleTTL = 12 * time.Hour

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.Store
	queue  *offline.Queue
	cron   *cron.Cron
	log    *zap.Logger
	v1     *v1.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, log *zap.Logger) (*Server, error) {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	st, err := store.Open(cfg.Database.URL, dataDir)
	if err != nil {
		return nil, err
	}

	queue := offline.NewQueue(dataDir, log)
	coordinator := importer.NewCoordinator(st, queue, log)
	registry := checker.NewRegistry(sessionIdleTTL)
	exportsDir := filepath.Join(dataDir, "exports")

	v1Handler := v1.NewHandler(st, registry, coordinator, queue, exportsDir, log)

	s := &Server{
		router: gin.Default(),
		store:  st,
		queue:  queue,
		log:    log,
		v1:     v1Handler,
	}

	s.setupRoutes(devMode)
	s.setupCron(cfg.Offline.SyncSpec)

	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Session-Token")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// V1 API 路由
	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	if devMode {
		// 开发模式：代理到前端开发服务器
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		s.router.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"service": "CheckerApp",
				"api":     "/api",
			})
		})
	}
}

// setupCron 注册离线队列的周期回放任务
// spec 为空时关闭自动同步
func (s *Server) setupCron(spec string) {
	if spec == "" {
		return
	}

	s.cron = cron.New()
	_, err := s.cron.AddFunc(spec, func() {
		n, err := s.queue.Sync(s.store)
		if err != nil {
			s.log.Warn("offline sync failed", zap.Error(err))
			return
		}
		if n > 0 {
			s.log.Info("offline sync flushed entries", zap.Int("count", n))
		}
	})
	if err != nil {
		s.log.Warn("failed to schedule offline sync", zap.String("spec", spec), zap.Error(err))
		s.cron = nil
		return
	}
	s.cron.Start()
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 停止周期任务并关闭存储
func (s *Server) Close() error {
	if s.cron != nil {
		s.cron.Stop()
	}
	return s.store.Close()
}

// GetStore 获取存储（用于测试）
func (s *Server) GetStore() *store.Store {
	return s.store
}
