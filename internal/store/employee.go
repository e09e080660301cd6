package store

import "github.com/devahmed4965/CheckerApp/internal/model"

// GetEmployeeByUsername 按用户名查询员工
func (s *Store) GetEmployeeByUsername(username string) (*model.Employee, error) {
	var employee model.Employee
	if err := s.db.Where("username = ?", username).First(&employee).Error; err != nil {
		return nil, mapErr(err)
	}
	return &employee, nil
}

// GetEmployee 按 ID 查询员工
func (s *Store) GetEmployee(id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := s.db.First(&employee, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &employee, nil
}

// CreateEmployee 创建员工，用户名必须唯一
func (s *Store) CreateEmployee(employee *model.Employee) error {
	existing, err := s.GetEmployeeByUsername(employee.Username)
	if err != nil && err != ErrNotFound {
		return err
	}
	if existing != nil {
		return ErrDuplicateUsername
	}
	return mapErr(s.db.Create(employee).Error)
}

// ListEmployees 列出全部员工
func (s *Store) ListEmployees() ([]model.Employee, error) {
	var employees []model.Employee
	if err := s.db.Order("id").Find(&employees).Error; err != nil {
		return nil, mapErr(err)
	}
	return employees, nil
}

// ListEmployeesByRole 按角色列出员工
func (s *Store) ListEmployeesByRole(role model.Role) ([]model.Employee, error) {
	var employees []model.Employee
	if err := s.db.Where("role = ?", role).Order("id").Find(&employees).Error; err != nil {
		return nil, mapErr(err)
	}
	return employees, nil
}

// UpdateEmployee 更新员工信息
func (s *Store) UpdateEmployee(employee *model.Employee) error {
	return mapErr(s.db.Save(employee).Error)
}

// DeleteEmployee 删除员工
func (s *Store) DeleteEmployee(id uint) error {
	result := s.db.Delete(&model.Employee{}, id)
	if result.Error != nil {
		return mapErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
