package store

import "github.com/devahmed4965/CheckerApp/internal/model"

// GetCompany 按 ID 查询公司
func (s *Store) GetCompany(id uint) (*model.Company, error) {
	var company model.Company
	if err := s.db.First(&company, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &company, nil
}

// SaveCompany 创建或更新公司
func (s *Store) SaveCompany(company *model.Company) error {
	return mapErr(s.db.Save(company).Error)
}

// UpdateExcelSettings 更新公司的 Excel 导入设置
func (s *Store) UpdateExcelSettings(companyID uint, idColumn, statusColumn, lineStatuses, returnStatuses string) error {
	company, err := s.GetCompany(companyID)
	if err != nil {
		return err
	}
	company.ExcelIDColumn = idColumn
	company.ExcelStatusColumn = statusColumn
	company.ExcelLineStatuses = lineStatuses
	company.ExcelReturnStatuses = returnStatuses
	return mapErr(s.db.Save(company).Error)
}

// ImportConfigForCompany 读取公司的导入配置
// companyID 为 0 或公司不存在时返回默认配置（所有者账号不绑定公司）
func (s *Store) ImportConfigForCompany(companyID uint) (model.ImportConfig, error) {
	if companyID == 0 {
		return model.DefaultImportConfig(), nil
	}
	company, err := s.GetCompany(companyID)
	if err == ErrNotFound {
		return model.DefaultImportConfig(), nil
	}
	if err != nil {
		return model.ImportConfig{}, err
	}
	return company.ImportConfig(), nil
}
