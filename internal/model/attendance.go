package model

import "time"

// CheckType 考勤打卡类型
type CheckType string

const (
	CheckIn  CheckType = "check-in"
	CheckOut CheckType = "check-out"
)

// Attendance 考勤记录
type Attendance struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employeeId"`
	Timestamp  time.Time `gorm:"autoCreateTime" json:"timestamp"`
	CheckType  CheckType `gorm:"size:50;not null" json:"checkType"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

// TableName 指定表名
func (Attendance) TableName() string {
	return "attendance"
}

// TaskStatus 任务状态
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// OperationTask 运营任务
type OperationTask struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"size:1024" json:"description"`
	Status      TaskStatus `gorm:"size:50;default:pending" json:"status"`
	CreatedBy   uint       `json:"createdBy"`
	AssignedTo  uint       `gorm:"index" json:"assignedTo"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`

	Creator  *Employee `gorm:"foreignKey:CreatedBy" json:"-"`
	Assignee *Employee `gorm:"foreignKey:AssignedTo" json:"-"`
}

// TableName 指定表名
func (OperationTask) TableName() string {
	return "operation_tasks"
}
