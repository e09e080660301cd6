package v1

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devahmed4965/CheckerApp/internal/model"
	"github.com/devahmed4965/CheckerApp/internal/store"
)

// AttendanceRequest 考勤打卡请求
type AttendanceRequest struct {
	CheckType string   `json:"checkType" binding:"required"` // check-in 或 check-out
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// RecordAttendance 考勤打卡
// POST /api/attendance
// 公司配置了地理围栏时校验打卡位置在半径内
func (h *Handler) RecordAttendance(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	checkType := model.CheckType(req.CheckType)
	if checkType != model.CheckIn && checkType != model.CheckOut {
		c.JSON(http.StatusBadRequest, gin.H{"error": "打卡类型必须是 check-in 或 check-out"})
		return
	}

	if sess.CompanyID != 0 {
		company, err := h.store.GetCompany(sess.CompanyID)
		if err != nil && err != store.ErrNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "查询公司配置失败"})
			return
		}
		if company != nil && company.GeoRadius > 0 {
			if req.Latitude == nil || req.Longitude == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "该公司要求定位打卡"})
				return
			}
			dist := haversineMeters(company.GeoLatitude, company.GeoLongitude, *req.Latitude, *req.Longitude)
			if dist > company.GeoRadius {
				c.JSON(http.StatusForbidden, gin.H{
					"error":    "不在打卡范围内",
					"distance": math.Round(dist),
				})
				return
			}
		}
	}

	record := &model.Attendance{
		EmployeeID: sess.EmployeeID,
		CheckType:  checkType,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}
	if err := h.store.CreateAttendance(record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "记录考勤失败"})
		return
	}
	c.JSON(http.StatusCreated, record)
}

// haversineMeters 两个经纬度点之间的球面距离（米）
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadius = 6371000.0

	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadius * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
