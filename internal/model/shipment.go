package model

import "time"

// Shipment 货运记录
// shipment_id 允许重复：同一单号可能在多个批次中出现
type Shipment struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ShipmentID    string     `gorm:"size:255;not null;index" json:"shipmentId"`
	Status        string     `gorm:"size:50;not null" json:"status"`
	Checked       bool       `gorm:"default:false" json:"checked"`
	Imported      bool       `gorm:"default:false" json:"imported"`
	EmployeeID    *uint      `json:"employeeId"`    // 录入/导入人
	InspectedDate *time.Time `json:"inspectedDate"` // checked 置真时写入
	InspectedBy   *uint      `json:"inspectedBy"`   // 实际扫描确认的员工

	Employee  *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
	Inspector *Employee `gorm:"foreignKey:InspectedBy" json:"-"`
}

// TableName 指定表名
func (Shipment) TableName() string {
	return "shipments"
}

// UnmatchedShipment 未匹配单号审计记录
// 操作员扫描到工作集中不存在的单号时落库
type UnmatchedShipment struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ShipmentID string    `gorm:"size:255;not null" json:"shipmentId"`
	Date       time.Time `gorm:"autoCreateTime" json:"date"`
	EmployeeID uint      `gorm:"not null" json:"employeeId"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

// TableName 指定表名
func (UnmatchedShipment) TableName() string {
	return "unmatched_shipments"
}

// EmployeeActivity 批次导入审计条目
// 每完成一次批量导入写一条：员工 + 来源文件名 + 成功行数
type EmployeeActivity struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID    uint   `gorm:"not null" json:"employeeId"`
	SheetName     string `gorm:"size:255;not null" json:"sheetName"`
	ShipmentCount int    `gorm:"not null" json:"shipmentCount"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

// TableName 指定表名
func (EmployeeActivity) TableName() string {
	return "employee_activities"
}
