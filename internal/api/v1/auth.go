package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devahmed4965/CheckerApp/internal/model"
	"github.com/devahmed4965/CheckerApp/internal/store"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	CompanyID uint   `json:"companyId"` // 非所有者必填
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token      string     `json:"token"`
	EmployeeID uint       `json:"employeeId"`
	Name       string     `json:"name"`
	Role       model.Role `json:"role"`
	CompanyID  uint       `json:"companyId"`
}

// Login 登录并创建面板会话
// POST /api/login
// 校验 bcrypt 密码；非所有者账号必须提交与账号一致的公司 ID
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	employee, err := h.store.GetEmployeeByUsername(req.Username)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "用户名或密码错误"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询账号失败"})
		return
	}

	if !employee.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户名或密码错误"})
		return
	}

	// 所有者不绑定公司，其他角色必须匹配
	companyID := uint(0)
	if employee.CompanyID != nil {
		companyID = *employee.CompanyID
	}
	if employee.Role != model.RoleOwner && req.CompanyID != companyID {
		c.JSON(http.StatusForbidden, gin.H{"error": "公司编号不匹配"})
		return
	}

	token, _ := h.registry.Create(employee.ID, employee.Name, companyID)

	c.JSON(http.StatusOK, LoginResponse{
		Token:      token,
		EmployeeID: employee.ID,
		Name:       employee.Name,
		Role:       employee.Role,
		CompanyID:  companyID,
	})
}

// Logout 注销令牌并丢弃工作集
// POST /api/logout
func (h *Handler) Logout(c *gin.Context) {
	token := c.GetHeader(sessionTokenHeader)
	if token != "" {
		h.registry.Delete(token)
	}
	c.JSON(http.StatusOK, gin.H{"message": "已退出登录"})
}
