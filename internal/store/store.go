package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/devahmed4965/CheckerApp/internal/model"
)

// 调用方按结果分支，不做错误字符串匹配
var (
	// ErrNotFound 记录不存在（预期结果，不是故障）
	ErrNotFound = errors.New("record not found")
	// ErrStoreUnavailable 数据库不可达或提交失败
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrDuplicateUsername 用户名已存在
	ErrDuplicateUsername = errors.New("username already exists")
)

// Store 数据库存储层
// 所有操作使用短连接语义：单次调用内完成读写与提交
type Store struct {
	db *gorm.DB
}

// Open 打开数据库连接
// databaseURL 非空时连接 Postgres，否则使用数据目录下的 SQLite 文件
func Open(databaseURL, dataDir string) (*Store, error) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		dbPath := filepath.Join(dataDir, "checkerapp.db")
		dialector = sqlite.Open(dbPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	// 初始化数据库结构
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return store, nil
}

// migrate 初始化数据库结构
func (s *Store) migrate() error {
	return s.db.AutoMigrate(
		&model.Company{},
		&model.Employee{},
		&model.Shipment{},
		&model.EmployeeActivity{},
		&model.UnmatchedShipment{},
		&model.Attendance{},
		&model.OperationTask{},
	)
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping 检查数据库可达性
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return ErrStoreUnavailable
	}
	if err := sqlDB.Ping(); err != nil {
		return ErrStoreUnavailable
	}
	return nil
}

// DB 获取原始 gorm 连接（用于事务等高级操作）
func (s *Store) DB() *gorm.DB {
	return s.db
}

// mapErr 把 gorm 错误映射为存储层结果
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
