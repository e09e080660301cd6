package model

import "golang.org/x/crypto/bcrypt"

// Role 员工角色
type Role string

const (
	RoleOwner    Role = "owner"    // 所有者：全局统计、经理管理
	RoleManager  Role = "manager"  // 经理：员工管理、报表、清空数据
	RoleEmployee Role = "employee" // 员工：检查循环
)

// Employee 员工账号
type Employee struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Username     string `gorm:"size:255;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"size:50;not null;default:employee" json:"role"`
	CompanyID    *uint  `json:"companyId"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// TableName 指定表名
func (Employee) TableName() string {
	return "employees"
}

// SetPassword 生成并保存 bcrypt 哈希
func (e *Employee) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.PasswordHash = string(hash)
	return nil
}

// CheckPassword 校验明文密码
func (e *Employee) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) == nil
}
