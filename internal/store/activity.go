package store

import (
	"time"

	"github.com/devahmed4965/CheckerApp/internal/model"
)

// CreateActivity 记录一次批量导入审计条目
func (s *Store) CreateActivity(employeeID uint, sheetName string, shipmentCount int) error {
	activity := model.EmployeeActivity{
		EmployeeID:    employeeID,
		SheetName:     sheetName,
		ShipmentCount: shipmentCount,
	}
	return mapErr(s.db.Create(&activity).Error)
}

// CreateUnmatched 记录未匹配单号审计行
func (s *Store) CreateUnmatched(shipmentID string, employeeID uint) error {
	unmatched := model.UnmatchedShipment{
		ShipmentID: shipmentID,
		EmployeeID: employeeID,
	}
	return mapErr(s.db.Create(&unmatched).Error)
}

// ListUnmatchedBetween 列出时间段内的未匹配记录
func (s *Store) ListUnmatchedBetween(from, to time.Time) ([]model.UnmatchedShipment, error) {
	var records []model.UnmatchedShipment
	err := s.db.Where("date >= ? AND date <= ?", from, to).
		Order("date").
		Find(&records).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return records, nil
}

// CreateAttendance 记录考勤打卡
func (s *Store) CreateAttendance(record *model.Attendance) error {
	return mapErr(s.db.Create(record).Error)
}

// ListAttendanceBetween 列出时间段内的考勤记录
func (s *Store) ListAttendanceBetween(from, to time.Time) ([]model.Attendance, error) {
	var records []model.Attendance
	err := s.db.Where("timestamp >= ? AND timestamp <= ?", from, to).
		Order("timestamp").
		Find(&records).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return records, nil
}

// CreateTask 创建运营任务
func (s *Store) CreateTask(task *model.OperationTask) error {
	return mapErr(s.db.Create(task).Error)
}

// ListTasksByAssignee 列出指派给某员工的任务
func (s *Store) ListTasksByAssignee(employeeID uint) ([]model.OperationTask, error) {
	var tasks []model.OperationTask
	err := s.db.Where("assigned_to = ?", employeeID).
		Order("created_at").
		Find(&tasks).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return tasks, nil
}
