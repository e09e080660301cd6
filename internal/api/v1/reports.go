package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// EmployeeMonthlyReport 员工月度统计
type EmployeeMonthlyReport struct {
	EmployeeID uint   `json:"employeeId"`
	Name       string `json:"name"`
	Inspected  int64  `json:"inspected"` // 当月完成检查数
	Imported   int64  `json:"imported"`  // 当月导入且已检查数
}

// MonthlyReport 月度按员工统计
// GET /api/reports/monthly?year=2026&month=8
// 缺省为当前月份
func (h *Handler) MonthlyReport(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if v := c.Query("year"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			year = parsed
		}
	}
	if v := c.Query("month"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 12 {
			month = parsed
		}
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	employees, err := h.store.ListEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询员工失败"})
		return
	}

	reports := make([]EmployeeMonthlyReport, 0, len(employees))
	for _, emp := range employees {
		inspected, err := h.store.CountInspectedBetween(emp.ID, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "统计失败"})
			return
		}
		imported, err := h.store.CountImportedBetween(emp.ID, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "统计失败"})
			return
		}
		reports = append(reports, EmployeeMonthlyReport{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Inspected:  inspected,
			Imported:   imported,
		})
	}

	unmatched, err := h.store.ListUnmatchedBetween(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "统计失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":      year,
		"month":     month,
		"employees": reports,
		"unmatched": len(unmatched),
	})
}
