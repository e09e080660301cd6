package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/devahmed4965/CheckerApp/internal/model"
	"github.com/devahmed4965/CheckerApp/internal/offline"
	"github.com/devahmed4965/CheckerApp/internal/service/checker"
	"github.com/devahmed4965/CheckerApp/internal/service/excel"
	"github.com/devahmed4965/CheckerApp/internal/store"
)

// Coordinator 清单导入协调器
type Coordinator struct {
	store *store.Store
	queue *offline.Queue
	log   *zap.Logger
}

// NewCoordinator 创建导入协调器
func NewCoordinator(store *store.Store, queue *offline.Queue, log *zap.Logger) *Coordinator {
	return &Coordinator{
		store: store,
		queue: queue,
		log:   log,
	}
}

// ImportOptions 导入选项
type ImportOptions struct {
	FilePath     string
	ManualID     string // 非空时跳过自动列解析
	ManualStatus string
	Offline      bool // 操作员选择离线模式：整批写入离线队列，不尝试落库
	Session      *checker.Session
	Config       model.ImportConfig
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"`    // start/info/progress/warning/done/error
	Message   string      `json:"message"` // 事件消息
	Data      interface{} `json:"data"`    // 附加数据
	Timestamp time.Time   `json:"timestamp"`
}

// ImportReport 导入结果汇总
type ImportReport struct {
	Filename     string        `json:"filename"`
	TotalRows    int           `json:"total_rows"`
	ImportedRows int           `json:"imported_rows"`
	SkippedRows  int           `json:"skipped_rows"`
	LineRows     int           `json:"line_rows"`
	ReturnRows   int           `json:"return_rows"`
	OtherRows    int           `json:"other_rows"`
	IDColumn     string        `json:"id_column"`
	StatusColumn string        `json:"status_column"`
	Offline      bool          `json:"offline"` // 批次进入离线队列（离线模式或数据库不可用）
	Duration     time.Duration `json:"duration"`
}

// Import 执行导入，返回进度通道
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

// doImport 执行导入逻辑
// 列解析失败时整批中止：不写库、不动工作集，发送 error 事件后返回
func (c *Coordinator) doImport(opts ImportOptions, progressChan chan ProgressEvent) {
	startTime := time.Now()

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "start",
		Message: "开始导入货运清单",
		Data: map[string]string{
			"filename": filepath.Base(opts.FilePath),
		},
		Timestamp: time.Now(),
	})

	manifest, err := excel.OpenManifest(opts.FilePath)
	if err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("打开文件失败: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	mapping, err := c.resolveColumns(manifest.Headers, opts)
	if err != nil {
		var missing *excel.MissingColumnError
		if errors.As(err, &missing) {
			c.sendProgress(progressChan, ProgressEvent{
				Type:    "error",
				Message: fmt.Sprintf("无法识别必需列: %s", missing.Field),
				Data: map[string]interface{}{
					"field":   missing.Field,
					"headers": manifest.Headers,
				},
				Timestamp: time.Now(),
			})
			return
		}
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("列解析失败: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "info",
		Message: fmt.Sprintf("列绑定: 单号 -> %q, 状态 -> %q", mapping.IDColumn, mapping.StatusColumn),
		Data: map[string]string{
			"id_column":     mapping.IDColumn,
			"status_column": mapping.StatusColumn,
		},
		Timestamp: time.Now(),
	})

	rawRows, err := manifest.Rows(mapping)
	if err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("读取数据行失败: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	report := &ImportReport{
		Filename:     filepath.Base(opts.FilePath),
		TotalRows:    len(rawRows),
		IDColumn:     mapping.IDColumn,
		StatusColumn: mapping.StatusColumn,
	}

	var recs []checker.Record
	var shipments []model.Shipment
	for i, raw := range rawRows {
		row, ok := excel.NormalizeRow(raw.ID, raw.Status)
		if !ok {
			report.SkippedRows++
			continue
		}

		status := excel.Classify(row.Status, opts.Config)
		switch status.Kind {
		case model.StatusLine:
			report.LineRows++
		case model.StatusReturn:
			report.ReturnRows++
		default:
			report.OtherRows++
		}

		empID := opts.Session.EmployeeID
		recs = append(recs, checker.Record{
			ID:              row.ID,
			Status:          status,
			Imported:        true,
			OwnerEmployeeID: empID,
		})
		shipments = append(shipments, model.Shipment{
			ShipmentID: row.ID,
			Status:     status.Storage(),
			Imported:   true,
			EmployeeID: &empID,
		})
		report.ImportedRows++

		if (i+1)%500 == 0 {
			c.sendProgress(progressChan, ProgressEvent{
				Type:    "progress",
				Message: fmt.Sprintf("已处理 %d/%d 行", i+1, len(rawRows)),
				Data: map[string]int{
					"processed": i + 1,
					"total":     len(rawRows),
				},
				Timestamp: time.Now(),
			})
		}
	}

	// 工作集先行：批量落库失败不回滚面板，员工可以继续检查
	opts.Session.AppendBatch(recs)
	opts.Session.SetSourceFile(report.Filename)

	if err := c.persistBatch(shipments, opts, report, progressChan); err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("保存批次失败: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	report.Duration = time.Since(startTime)

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "done",
		Message:   fmt.Sprintf("导入完成: %d 行入库, %d 行跳过", report.ImportedRows, report.SkippedRows),
		Data:      report,
		Timestamp: time.Now(),
	})
}

// resolveColumns 按选项选择自动或手动列解析
func (c *Coordinator) resolveColumns(headers []string, opts ImportOptions) (excel.ColumnMapping, error) {
	if opts.ManualID != "" && opts.ManualStatus != "" {
		return excel.ResolveManualColumns(headers, opts.ManualID, opts.ManualStatus)
	}
	return excel.ResolveColumns(headers, opts.Config)
}

// persistBatch 批次落库
// 操作员选择离线模式时整批直接进离线队列；
// 在线路径下数据库不可用时自动降级到同一队列
func (c *Coordinator) persistBatch(shipments []model.Shipment, opts ImportOptions, report *ImportReport, progressChan chan ProgressEvent) error {
	if len(shipments) == 0 {
		return nil
	}

	if opts.Offline {
		if qerr := c.queueBatch(shipments); qerr != nil {
			return fmt.Errorf("offline queue failed: %w", qerr)
		}
		report.Offline = true
		c.log.Info("offline mode requested, batch queued", zap.Int("entries", len(shipments)))
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "info",
			Message:   fmt.Sprintf("离线模式：%d 行已写入离线队列", len(shipments)),
			Timestamp: time.Now(),
		})
		return nil
	}

	err := c.store.BatchInsertShipments(shipments)
	if err == nil {
		if aerr := c.store.CreateActivity(opts.Session.EmployeeID, report.Filename, report.ImportedRows); aerr != nil {
			c.log.Warn("failed to record import activity", zap.Error(aerr))
		}
		return nil
	}

	if !errors.Is(err, store.ErrStoreUnavailable) {
		return err
	}

	if qerr := c.queueBatch(shipments); qerr != nil {
		return fmt.Errorf("database unavailable and offline queue failed: %w", qerr)
	}

	report.Offline = true
	c.log.Warn("database unavailable, batch queued offline",
		zap.Int("entries", len(shipments)), zap.Error(err))
	c.sendProgress(progressChan, ProgressEvent{
		Type:      "warning",
		Message:   fmt.Sprintf("数据库不可用，%d 行已写入离线队列", len(shipments)),
		Timestamp: time.Now(),
	})
	return nil
}

// queueBatch 把批次转成离线条目写入队列文件，周期任务或手动同步负责回放
func (c *Coordinator) queueBatch(shipments []model.Shipment) error {
	entries := make([]offline.Entry, 0, len(shipments))
	for _, sh := range shipments {
		entry := offline.Entry{
			ID:       sh.ShipmentID,
			Status:   sh.Status,
			Checked:  sh.Checked,
			Imported: sh.Imported,
		}
		if sh.EmployeeID != nil {
			entry.EmployeeID = *sh.EmployeeID
		}
		entries = append(entries, entry)
	}
	return c.queue.Append(entries)
}

// sendProgress 发送进度事件
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
		// 通道已满，丢弃事件
	}
}
