package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devahmed4965/CheckerApp/internal/model"
	"github.com/devahmed4965/CheckerApp/internal/offline"
	"github.com/devahmed4965/CheckerApp/internal/service/checker"
	"github.com/devahmed4965/CheckerApp/internal/service/excel"
)

// ManualShipmentsRequest 手动录入请求
// 面板的 Line/Return 粘贴框：每行一个单号，同一状态
type ManualShipmentsRequest struct {
	IDs     []string `json:"ids" binding:"required"`
	Status  string   `json:"status" binding:"required"` // Line 或 Return
	Offline bool     `json:"offline"`                   // true 时批次写入离线队列而非数据库
}

// AddManualShipments 手动录入一批单号
// POST /api/session/shipments
func (h *Handler) AddManualShipments(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var req ManualShipmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	var status model.Status
	switch model.StatusKind(req.Status) {
	case model.StatusLine:
		status = model.LineStatus()
	case model.StatusReturn:
		status = model.ReturnStatus()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "状态必须是 Line 或 Return"})
		return
	}

	empID := sess.EmployeeID
	added := 0
	var shipments []model.Shipment
	for _, rawID := range req.IDs {
		row, ok := excel.NormalizeRow(rawID, req.Status)
		if !ok {
			continue
		}
		sess.Append(checker.Record{
			ID:              row.ID,
			Status:          status,
			OwnerEmployeeID: empID,
		})
		shipments = append(shipments, model.Shipment{
			ShipmentID: row.ID,
			Status:     status.Storage(),
			EmployeeID: &empID,
		})
		added++
	}

	if req.Offline {
		entries := make([]offline.Entry, 0, len(shipments))
		for _, sh := range shipments {
			entries = append(entries, offline.Entry{
				ID:         sh.ShipmentID,
				Status:     sh.Status,
				EmployeeID: empID,
			})
		}
		if err := h.queue.Append(entries); err != nil {
			h.log.Warn("failed to queue manual shipments", zap.Error(err))
		}
		c.JSON(http.StatusOK, gin.H{"added": added, "offline": true})
		return
	}

	if err := h.store.BatchInsertShipments(shipments); err != nil {
		// 工作集已更新，落库失败只记日志（与导入路径同一口径）
		h.log.Warn("failed to persist manual shipments", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"added": added})
}

// CheckRequest 检查请求
type CheckRequest struct {
	ID string `json:"id" binding:"required"`
}

// CheckResponse 检查响应
type CheckResponse struct {
	Matched bool           `json:"matched"`
	Signal  checker.Signal `json:"signal"`
	Record  *sessionRecord `json:"record,omitempty"`
}

// Check 扫描检查一个单号
// POST /api/session/check
// 空白输入直接拒绝；命中时同步更新历史库中该单号的最新一行；
// 未命中时落一条未匹配审计
func (h *Handler) Check(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if excel.NormalizeID(req.ID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "单号不能为空"})
		return
	}

	now := time.Now()
	result := sess.Check(req.ID, sess.EmployeeID, now)

	if result.Matched {
		if err := h.store.MarkShipmentChecked(result.Record.ID, sess.EmployeeID, now); err != nil {
			h.log.Warn("failed to persist check", zap.String("shipment", result.Record.ID), zap.Error(err))
		}
		rec := toSessionRecord(result.Record)
		c.JSON(http.StatusOK, CheckResponse{Matched: true, Signal: result.Signal, Record: &rec})
		return
	}

	if err := h.store.CreateUnmatched(excel.NormalizeID(req.ID), sess.EmployeeID); err != nil {
		h.log.Warn("failed to persist unmatched", zap.String("shipment", req.ID), zap.Error(err))
	}
	c.JSON(http.StatusOK, CheckResponse{Matched: false, Signal: checker.SignalUnmatched})
}

// Undo 撤销最近一次检查
// POST /api/session/undo
func (h *Handler) Undo(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	rec, err := sess.Undo()
	if err != nil {
		if err == checker.ErrNothingToUndo {
			c.JSON(http.StatusOK, gin.H{"undone": false, "message": "没有可撤销的操作"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "撤销失败"})
		return
	}

	if err := h.store.RestoreShipmentCheckState(rec.ID, rec.Checked, rec.InspectedAt, rec.InspectedBy); err != nil {
		h.log.Warn("failed to persist undo", zap.String("shipment", rec.ID), zap.Error(err))
	}

	out := toSessionRecord(rec)
	c.JSON(http.StatusOK, gin.H{"undone": true, "record": out})
}

// sessionRecord 工作集记录的 JSON 视图
type sessionRecord struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Checked     bool       `json:"checked"`
	InspectedAt *time.Time `json:"inspectedAt,omitempty"`
	Imported    bool       `json:"imported"`
}

func toSessionRecord(rec checker.Record) sessionRecord {
	return sessionRecord{
		ID:          rec.ID,
		Status:      rec.Status.Storage(),
		Checked:     rec.Checked,
		InspectedAt: rec.InspectedAt,
		Imported:    rec.Imported,
	}
}

// ListSessionShipments 列出工作集记录
// GET /api/session/shipments?q=
// q 非空时按单号子串过滤（实时搜索框）
func (h *Handler) ListSessionShipments(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var recs []checker.Record
	if q := c.Query("q"); q != "" {
		recs = sess.Filter(q)
	} else {
		recs = sess.Records()
	}

	out := make([]sessionRecord, 0, len(recs))
	checked := 0
	for _, rec := range recs {
		if rec.Checked {
			checked++
		}
		out = append(out, toSessionRecord(rec))
	}

	c.JSON(http.StatusOK, gin.H{
		"shipments": out,
		"total":     len(out),
		"checked":   checked,
	})
}

// ListUnmatched 列出未匹配单号
// GET /api/session/unmatched
func (h *Handler) ListUnmatched(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}
	unmatched := sess.Unmatched()
	c.JSON(http.StatusOK, gin.H{
		"unmatched": unmatched,
		"total":     len(unmatched),
	})
}

// MarkRequest 管理标记请求
type MarkRequest struct {
	ID string `json:"id" binding:"required"`
}

// MarkChecked 管理操作：强制把单号标记为已检查
// POST /api/session/mark-checked
func (h *Handler) MarkChecked(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var req MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	now := time.Now()
	affected := sess.MarkChecked(req.ID, sess.EmployeeID, now)
	if affected > 0 {
		if err := h.store.MarkShipmentChecked(excel.NormalizeID(req.ID), sess.EmployeeID, now); err != nil {
			h.log.Warn("failed to persist mark-checked", zap.String("shipment", req.ID), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"affected": affected})
}

// MarkUnchecked 管理操作：重置单号为未检查并清空检查信息
// POST /api/session/mark-unchecked
func (h *Handler) MarkUnchecked(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var req MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	affected := sess.MarkUnchecked(req.ID)
	if affected > 0 {
		if err := h.store.MarkShipmentUnchecked(excel.NormalizeID(req.ID)); err != nil {
			h.log.Warn("failed to persist mark-unchecked", zap.String("shipment", req.ID), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"affected": affected})
}
