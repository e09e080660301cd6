package offline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/devahmed4965/CheckerApp/internal/model"
	"github.com/devahmed4965/CheckerApp/internal/store"
)

// Entry 离线缓存中的一条货运记录
// 字段名与历史缓存文件保持一致，旧文件可直接读入
type Entry struct {
	ID            string `json:"ID"`
	Status        string `json:"Status"`
	Checked       bool   `json:"Checked"`
	EmployeeID    uint   `json:"employee_id"`
	Imported      bool   `json:"imported"`
	InspectedDate string `json:"inspected_date,omitempty"`
}

// Queue 数据库不可用时的本地落盘队列
// 以 JSON 数组整体读写；Sync 成功后清空文件。
type Queue struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

// NewQueue 创建离线队列，缓存文件位于数据目录下
func NewQueue(dataDir string, log *zap.Logger) *Queue {
	return &Queue{
		path: filepath.Join(dataDir, "offline_queue.json"),
		log:  log,
	}
}

// Path 缓存文件路径
func (q *Queue) Path() string {
	return q.path
}

// Load 读取当前缓存的全部条目
// 文件不存在视为空队列
func (q *Queue) Load() ([]Entry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.loadLocked()
}

func (q *Queue) loadLocked() ([]Entry, error) {
	data, err := os.ReadFile(q.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read offline queue: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse offline queue: %w", err)
	}
	return entries, nil
}

// Append 把一批条目追加到缓存文件
func (q *Queue) Append(entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	existing, err := q.loadLocked()
	if err != nil {
		return err
	}
	existing = append(existing, entries...)
	return q.writeLocked(existing)
}

// Count 当前缓存条目数
func (q *Queue) Count() (int, error) {
	entries, err := q.Load()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Sync 把缓存条目整体回放到数据库，成功后清空文件
// 回放过程中任一条失败则保留整个文件，下个周期重试
func (q *Queue) Sync(s *store.Store) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entries, err := q.loadLocked()
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	shipments := make([]model.Shipment, 0, len(entries))
	for _, e := range entries {
		sh := model.Shipment{
			ShipmentID: e.ID,
			Status:     e.Status,
			Checked:    e.Checked,
			Imported:   e.Imported,
		}
		if e.EmployeeID != 0 {
			empID := e.EmployeeID
			sh.EmployeeID = &empID
		}
		if e.InspectedDate != "" {
			if t, perr := time.Parse(time.RFC3339, e.InspectedDate); perr == nil {
				sh.InspectedDate = &t
			}
		}
		shipments = append(shipments, sh)
	}

	if err := s.BatchInsertShipments(shipments); err != nil {
		return 0, fmt.Errorf("failed to replay offline queue: %w", err)
	}

	if err := q.writeLocked(nil); err != nil {
		// 数据已入库但文件没清掉，下次回放会产生重复，记下来便于排查
		q.log.Warn("offline queue synced but truncate failed", zap.Error(err))
		return len(entries), err
	}

	q.log.Info("offline queue synced", zap.Int("entries", len(entries)))
	return len(entries), nil
}

func (q *Queue) writeLocked(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode offline queue: %w", err)
	}
	if err := os.WriteFile(q.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write offline queue: %w", err)
	}
	return nil
}
