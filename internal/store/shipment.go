package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/devahmed4965/CheckerApp/internal/model"
)

// BatchInsertShipments 批量插入货运记录
// 整批一个事务：提交失败时所有行回滚
func (s *Store) BatchInsertShipments(shipments []model.Shipment) error {
	if len(shipments) == 0 {
		return nil
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(shipments, 200).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// CreateShipment 插入单条货运记录
func (s *Store) CreateShipment(shipment *model.Shipment) error {
	return mapErr(s.db.Create(shipment).Error)
}

// GetShipmentByShipmentID 按单号查询最近一条记录
// 单号允许重复，取最新插入的一条（与历史行为一致）
func (s *Store) GetShipmentByShipmentID(shipmentID string) (*model.Shipment, error) {
	var shipment model.Shipment
	err := s.db.Where("shipment_id = ?", shipmentID).
		Order("id DESC").
		First(&shipment).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &shipment, nil
}

// MarkShipmentChecked 把单号对应的最新记录置为已检查
// 找不到对应行不算错误：工作集可能包含尚未落库的离线行
func (s *Store) MarkShipmentChecked(shipmentID string, inspectedBy uint, at time.Time) error {
	shipment, err := s.GetShipmentByShipmentID(shipmentID)
	if err != nil {
		if err == ErrNotFound {
			return nil
		}
		return err
	}
	updates := map[string]interface{}{
		"checked":        true,
		"inspected_date": at,
		"inspected_by":   inspectedBy,
	}
	return mapErr(s.db.Model(shipment).Updates(updates).Error)
}

// MarkShipmentUnchecked 管理操作：撤销检查标记并清空检查信息
func (s *Store) MarkShipmentUnchecked(shipmentID string) error {
	shipment, err := s.GetShipmentByShipmentID(shipmentID)
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"checked":        false,
		"inspected_date": nil,
		"inspected_by":   nil,
	}
	return mapErr(s.db.Model(shipment).Updates(updates).Error)
}

// RestoreShipmentCheckState 撤销操作：恢复检查前的状态
func (s *Store) RestoreShipmentCheckState(shipmentID string, checked bool, inspectedDate *time.Time, inspectedBy *uint) error {
	shipment, err := s.GetShipmentByShipmentID(shipmentID)
	if err != nil {
		if err == ErrNotFound {
			return nil
		}
		return err
	}
	updates := map[string]interface{}{
		"checked":        checked,
		"inspected_date": inspectedDate,
		"inspected_by":   inspectedBy,
	}
	return mapErr(s.db.Model(shipment).Updates(updates).Error)
}

// DeleteAllShipments 清空全部货运数据（管理员批量清除）
func (s *Store) DeleteAllShipments() error {
	return mapErr(s.db.Where("1 = 1").Delete(&model.Shipment{}).Error)
}

// CountShipments 统计货运总数与已检查数
func (s *Store) CountShipments() (total, checked int64, err error) {
	if err = s.db.Model(&model.Shipment{}).Count(&total).Error; err != nil {
		return 0, 0, mapErr(err)
	}
	if err = s.db.Model(&model.Shipment{}).Where("checked = ?", true).Count(&checked).Error; err != nil {
		return 0, 0, mapErr(err)
	}
	return total, checked, nil
}

// CountInspectedBetween 统计员工在时间段内完成检查的数量
func (s *Store) CountInspectedBetween(employeeID uint, from, to time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&model.Shipment{}).
		Where("employee_id = ? AND checked = ? AND inspected_date >= ? AND inspected_date <= ?",
			employeeID, true, from, to).
		Count(&count).Error
	if err != nil {
		return 0, mapErr(err)
	}
	return count, nil
}

// CountImportedBetween 统计员工在时间段内导入且已检查的数量
func (s *Store) CountImportedBetween(employeeID uint, from, to time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&model.Shipment{}).
		Where("employee_id = ? AND imported = ? AND inspected_date IS NOT NULL AND inspected_date >= ? AND inspected_date <= ?",
			employeeID, true, from, to).
		Count(&count).Error
	if err != nil {
		return 0, mapErr(err)
	}
	return count, nil
}
