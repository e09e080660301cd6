package checker

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/devahmed4965/CheckerApp/internal/model"
	"github.com/devahmed4965/CheckerApp/internal/service/excel"
)

// ErrNothingToUndo 撤销栈为空
var ErrNothingToUndo = errors.New("nothing to undo")

// Signal 检查结果信号，调用方据此触发不同的提示音/提示色
type Signal string

const (
	SignalLine      Signal = "Line"
	SignalReturn    Signal = "Return"
	SignalOther     Signal = "Other"
	SignalUnmatched Signal = "Unmatched"
)

// Record 工作集中的一条货运记录
// 工作集是当前面板会话的内存集合，与全量历史落库数据相互独立
type Record struct {
	ID              string // 已规范化（小写、去空白）的单号
	Status          model.Status
	Checked         bool
	InspectedAt     *time.Time
	InspectedBy     *uint
	Imported        bool
	OwnerEmployeeID uint
}

// undoEntry 单层撤销条目：只记录最近一次检查动作之前的状态
type undoEntry struct {
	rec             *Record
	prevChecked     bool
	prevInspectedAt *time.Time
	prevInspectedBy *uint
}

// Session 面板会话
// 持有导入批次的工作集、未匹配列表与撤销状态。
// 会话由 HTTP 请求并发访问，内部用互斥锁保护。
type Session struct {
	mu sync.Mutex

	EmployeeID   uint
	EmployeeName string
	CompanyID    uint

	records   []*Record
	index     map[string][]*Record // 规范化单号 -> 插入顺序的记录列表
	unmatched []string
	undo      *undoEntry

	sourceFile string
}

// NewSession 创建面板会话
func NewSession(employeeID uint, employeeName string, companyID uint) *Session {
	return &Session{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		CompanyID:    companyID,
		index:        make(map[string][]*Record),
	}
}

// Append 把记录加入工作集并更新索引
// 重复单号不去重：同一单号允许多条记录并存
func (s *Session) Append(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(rec)
}

func (s *Session) appendLocked(rec Record) {
	r := rec
	s.records = append(s.records, &r)
	s.index[r.ID] = append(s.index[r.ID], &r)
}

// AppendBatch 批量加入记录
func (s *Session) AppendBatch(recs []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range recs {
		s.appendLocked(rec)
	}
}

// SetSourceFile 记录最近一次导入的来源文件名（用于默认导出名与审计）
func (s *Session) SetSourceFile(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sourceFile = name
}

// SourceFile 最近一次导入的来源文件名
func (s *Session) SourceFile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sourceFile
}

// Count 工作集记录总数
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// CheckResult 单次检查的结果
type CheckResult struct {
	Matched bool
	Signal  Signal
	Record  Record // Matched 时为更新后的记录快照
}

// Check 检查循环的核心操作
// 输入原始单号，按导入时相同的规则规范化后在工作集索引中查找。
// 同一单号存在多条记录时的决胜规则：优先取最早插入且未检查的一条，
// 全部已检查时取最早插入的一条重新盖时间戳（确定性，替代历史实现
// 依赖插入顺序的首个命中）。
// 命中：置 checked、盖检查时间与检查人、压入单层撤销条目；
// 未命中：单号追加到未匹配列表。
// 规范化后为空的输入直接忽略：不查找、不进未匹配列表。
func (s *Session) Check(rawID string, inspectedBy uint, now time.Time) CheckResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := excel.NormalizeID(rawID)
	if id == "" {
		return CheckResult{Matched: false, Signal: SignalUnmatched}
	}
	candidates := s.index[id]
	if len(candidates) == 0 {
		s.unmatched = append(s.unmatched, id)
		return CheckResult{Matched: false, Signal: SignalUnmatched}
	}

	target := candidates[0]
	for _, c := range candidates {
		if !c.Checked {
			target = c
			break
		}
	}

	// 单层撤销：每次成功检查覆盖上一条
	s.undo = &undoEntry{
		rec:             target,
		prevChecked:     target.Checked,
		prevInspectedAt: target.InspectedAt,
		prevInspectedBy: target.InspectedBy,
	}

	at := now
	by := inspectedBy
	target.Checked = true
	target.InspectedAt = &at
	target.InspectedBy = &by

	return CheckResult{
		Matched: true,
		Signal:  signalFor(target.Status),
		Record:  *target,
	}
}

// Undo 撤销最近一次检查动作
// 恢复该记录此前的 (checked, inspected_at, inspected_by)；
// 栈空时返回 ErrNothingToUndo，不产生任何副作用。
func (s *Session) Undo() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.undo == nil {
		return Record{}, ErrNothingToUndo
	}

	entry := s.undo
	entry.rec.Checked = entry.prevChecked
	entry.rec.InspectedAt = entry.prevInspectedAt
	entry.rec.InspectedBy = entry.prevInspectedBy
	s.undo = nil

	return *entry.rec, nil
}

// MarkUnchecked 管理操作：把单号对应的全部记录重置为未检查
// 返回受影响的记录数；同时清空撤销栈（栈里可能引用被重置的记录）
func (s *Session) MarkUnchecked(rawID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := excel.NormalizeID(rawID)
	affected := 0
	for _, rec := range s.index[id] {
		if rec.Checked {
			affected++
		}
		rec.Checked = false
		rec.InspectedAt = nil
		rec.InspectedBy = nil
	}
	if affected > 0 {
		s.undo = nil
	}
	return affected
}

// MarkChecked 管理操作：把单号对应的全部记录置为已检查
func (s *Session) MarkChecked(rawID string, inspectedBy uint, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := excel.NormalizeID(rawID)
	affected := 0
	for _, rec := range s.index[id] {
		if !rec.Checked {
			affected++
		}
		at := now
		by := inspectedBy
		rec.Checked = true
		rec.InspectedAt = &at
		rec.InspectedBy = &by
	}
	return affected
}

// Records 工作集快照（插入顺序）
func (s *Session) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, *r)
	}
	return out
}

// Remaining 尚未检查的记录快照
func (s *Session) Remaining() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Record
	for _, r := range s.records {
		if !r.Checked {
			out = append(out, *r)
		}
	}
	return out
}

// Filter 按单号子串过滤（实时搜索框）
func (s *Session) Filter(query string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := excel.NormalizeID(query)
	var out []Record
	for _, r := range s.records {
		if q == "" || strings.Contains(r.ID, q) {
			out = append(out, *r)
		}
	}
	return out
}

// Find 按单号查找首条记录
func (s *Session) Find(rawID string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := excel.NormalizeID(rawID)
	candidates := s.index[id]
	if len(candidates) == 0 {
		return Record{}, false
	}
	return *candidates[0], true
}

// Unmatched 未匹配单号列表快照
func (s *Session) Unmatched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.unmatched))
	copy(out, s.unmatched)
	return out
}

// Clear 清空工作集（导出完成后重新开始）
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.index = make(map[string][]*Record)
	s.unmatched = nil
	s.undo = nil
	s.sourceFile = ""
}

func signalFor(status model.Status) Signal {
	switch status.Kind {
	case model.StatusLine:
		return SignalLine
	case model.StatusReturn:
		return SignalReturn
	default:
		return SignalOther
	}
}
