package model

// Company 公司配置
// Excel 相关字段为逗号分隔文本，读取时解析为 ImportConfig
type Company struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	VersionURL string `gorm:"size:255" json:"versionUrl"` // 客户端更新检查地址

	// Excel 导入设置
	ExcelIDColumn       string `gorm:"size:255" json:"excelIdColumn"`       // 手动指定的单号列（可空）
	ExcelStatusColumn   string `gorm:"size:255" json:"excelStatusColumn"`   // 手动指定的状态列（可空）
	ExcelLineStatuses   string `gorm:"size:255" json:"excelLineStatuses"`   // Line 关键词，逗号分隔
	ExcelReturnStatuses string `gorm:"size:255" json:"excelReturnStatuses"` // Return 关键词，逗号分隔

	// 考勤：工作时间与地理围栏
	WorkingStart string  `gorm:"size:10" json:"workingStart"` // 如 "08:00"
	WorkingEnd   string  `gorm:"size:10" json:"workingEnd"`   // 如 "17:00"
	GeoLatitude  float64 `json:"geoLatitude"`
	GeoLongitude float64 `json:"geoLongitude"`
	GeoRadius    float64 `json:"geoRadius"` // 围栏半径（米），0 表示不限制
}

// TableName 指定表名
func (Company) TableName() string {
	return "companies"
}

// ImportConfig 解析出该公司的导入配置
// 未配置手动列时使用默认别名做模糊匹配
func (c *Company) ImportConfig() ImportConfig {
	cfg := DefaultImportConfig()
	cfg.LineKeywords = KeywordSet(c.ExcelLineStatuses)
	cfg.ReturnKeywords = KeywordSet(c.ExcelReturnStatuses)
	if c.ExcelIDColumn != "" {
		// 手动配置的列名放到别名最前面
		cfg.IDColumnAliases = append([]string{c.ExcelIDColumn}, cfg.IDColumnAliases...)
	}
	if c.ExcelStatusColumn != "" {
		cfg.StatusColumnAliases = append([]string{c.ExcelStatusColumn}, cfg.StatusColumnAliases...)
	}
	return cfg
}
