package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devahmed4965/CheckerApp/internal/model"
	"github.com/devahmed4965/CheckerApp/internal/store"
)

// CreateEmployeeRequest 创建员工请求
type CreateEmployeeRequest struct {
	Name      string `json:"name" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role"`
	CompanyID *uint  `json:"companyId"`
}

// CreateEmployee 创建员工账号
// POST /api/employees
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	role := model.RoleEmployee
	switch model.Role(req.Role) {
	case model.RoleOwner, model.RoleManager, model.RoleEmployee:
		role = model.Role(req.Role)
	case "":
		// 默认普通员工
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的角色"})
		return
	}

	employee := &model.Employee{
		Name:      req.Name,
		Username:  req.Username,
		Role:      role,
		CompanyID: req.CompanyID,
	}
	if err := employee.SetPassword(req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "密码处理失败"})
		return
	}

	if err := h.store.CreateEmployee(employee); err != nil {
		if err == store.ErrDuplicateUsername {
			c.JSON(http.StatusConflict, gin.H{"error": "用户名已存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建员工失败"})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// ListEmployees 列出员工
// GET /api/employees?role=
func (h *Handler) ListEmployees(c *gin.Context) {
	var (
		employees []model.Employee
		err       error
	)
	if role := c.Query("role"); role != "" {
		employees, err = h.store.ListEmployeesByRole(model.Role(role))
	} else {
		employees, err = h.store.ListEmployees()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询员工失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees, "total": len(employees)})
}

// UpdateEmployeeRequest 更新员工请求，空字段不修改
type UpdateEmployeeRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateEmployee 更新员工信息
// PATCH /api/employees/:id
func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的员工编号"})
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	employee, err := h.store.GetEmployee(uint(id))
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "员工不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询员工失败"})
		return
	}

	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.Role != "" {
		employee.Role = model.Role(req.Role)
	}
	if req.Password != "" {
		if err := employee.SetPassword(req.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "密码处理失败"})
			return
		}
	}

	if err := h.store.UpdateEmployee(employee); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新员工失败"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee 删除员工
// DELETE /api/employees/:id
func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的员工编号"})
		return
	}

	if err := h.store.DeleteEmployee(uint(id)); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "员工不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除员工失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "员工已删除"})
}
